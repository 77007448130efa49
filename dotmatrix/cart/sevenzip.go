package cart

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bodgit/sevenzip"
)

func sevenZipReader(data []byte) (io.Reader, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	if len(r.File) == 0 {
		return nil, fmt.Errorf("archive is empty")
	}
	return r.File[0].Open()
}
