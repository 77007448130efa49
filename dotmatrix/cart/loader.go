package cart

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Open loads a cartridge from a file. Plain .gb/.gbc images are read as-is;
// .zip, .7z and .gz archives are unwrapped transparently (first entry wins).
func Open(path string) (*Cartridge, error) {
	data, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	return New(data, nil)
}

func loadImage(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cart: opening ROM: %w", err)
	}

	var decoder io.Reader
	switch filepath.Ext(path) {
	case ".zip":
		r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("cart: reading zip archive: %w", err)
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("cart: zip archive %q is empty", path)
		}
		decoder, err = r.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("cart: reading zip archive: %w", err)
		}
	case ".7z":
		r, err := sevenZipReader(data)
		if err != nil {
			return nil, fmt.Errorf("cart: reading 7z archive: %w", err)
		}
		decoder = r
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("cart: reading gzip stream: %w", err)
		}
		decoder = r
	default:
		return data, nil
	}

	unpacked, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("cart: unpacking %q: %w", path, err)
	}
	return unpacked, nil
}
