package cart

import "errors"

// Construction and battery-file errors. Runtime bus accesses never fail;
// invalid accesses read or swallow 0xFF instead.
var (
	// ErrFileTooSmall is returned when the ROM image is smaller than the
	// two-bank minimum.
	ErrFileTooSmall = errors.New("cart: ROM image smaller than 32KiB")
	// ErrLogoMismatch is returned when the boot logo bytes do not match.
	ErrLogoMismatch = errors.New("cart: header logo mismatch")
	// ErrChecksumMismatch is returned when the header checksum is invalid.
	ErrChecksumMismatch = errors.New("cart: header checksum mismatch")
	// ErrUnsupportedMBC is returned for cartridge type bytes this core
	// does not implement (MMM01, MBC6, MBC7, camera, HuC...).
	ErrUnsupportedMBC = errors.New("cart: unsupported cartridge type")
	// ErrSizeMismatch is returned when the file size disagrees with the
	// header's declared ROM size, or a size byte is out of range for the
	// declared controller.
	ErrSizeMismatch = errors.New("cart: ROM/RAM size mismatch")
	// ErrRAMFileSizeMismatch is returned when a battery RAM file does not
	// match the cartridge's RAM size.
	ErrRAMFileSizeMismatch = errors.New("cart: RAM file size mismatch")
)
