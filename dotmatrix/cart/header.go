package cart

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	headerStart = 0x100
	headerEnd   = 0x150

	logoAddress           = 0x104
	titleAddress          = 0x134
	cgbFlagAddress        = 0x143
	newLicenseCodeAddress = 0x144
	sgbFlagAddress        = 0x146
	cartridgeTypeAddress  = 0x147
	romSizeAddress        = 0x148
	ramSizeAddress        = 0x149
	destinationAddress    = 0x14A
	oldLicenseCodeAddress = 0x14B
	versionNumberAddress  = 0x14C
	headerChecksumAddress = 0x14D
	globalChecksumAddress = 0x14E

	titleLength = 15
)

// nintendoLogo is the fixed bitmap the boot ROM compares against bytes
// 0x104-0x133 of the header.
var nintendoLogo = [48]uint8{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
	0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Type is the cartridge type byte at 0x147.
type Type uint8

// Cartridge type bytes implemented by this core.
const (
	ROM                  Type = 0x00
	MBC1                 Type = 0x01
	MBC1RAM              Type = 0x02
	MBC1RAMBattery       Type = 0x03
	MBC2                 Type = 0x05
	MBC2Battery          Type = 0x06
	ROMRAM               Type = 0x08
	ROMRAMBattery        Type = 0x09
	MBC3TimerBattery     Type = 0x0F
	MBC3TimerRAMBattery  Type = 0x10
	MBC3                 Type = 0x11
	MBC3RAM              Type = 0x12
	MBC3RAMBattery       Type = 0x13
	MBC5                 Type = 0x19
	MBC5RAM              Type = 0x1A
	MBC5RAMBattery       Type = 0x1B
	MBC5Rumble           Type = 0x1C
	MBC5RumbleRAM        Type = 0x1D
	MBC5RumbleRAMBattery Type = 0x1E
)

func (t Type) String() string {
	switch t {
	case ROM:
		return "ROM"
	case MBC1:
		return "MBC1"
	case MBC1RAM:
		return "MBC1+RAM"
	case MBC1RAMBattery:
		return "MBC1+RAM+BATTERY"
	case MBC2:
		return "MBC2"
	case MBC2Battery:
		return "MBC2+BATTERY"
	case ROMRAM:
		return "ROM+RAM"
	case ROMRAMBattery:
		return "ROM+RAM+BATTERY"
	case MBC3TimerBattery:
		return "MBC3+TIMER+BATTERY"
	case MBC3TimerRAMBattery:
		return "MBC3+TIMER+RAM+BATTERY"
	case MBC3:
		return "MBC3"
	case MBC3RAM:
		return "MBC3+RAM"
	case MBC3RAMBattery:
		return "MBC3+RAM+BATTERY"
	case MBC5:
		return "MBC5"
	case MBC5RAM:
		return "MBC5+RAM"
	case MBC5RAMBattery:
		return "MBC5+RAM+BATTERY"
	case MBC5Rumble:
		return "MBC5+RUMBLE"
	case MBC5RumbleRAM:
		return "MBC5+RUMBLE+RAM"
	case MBC5RumbleRAMBattery:
		return "MBC5+RUMBLE+RAM+BATTERY"
	default:
		return fmt.Sprintf("UNKNOWN(0x%02X)", uint8(t))
	}
}

// romSizes maps header byte 0x148 to the ROM size in bytes.
var romSizes = []int{
	0x00: 32 * 1024,
	0x01: 64 * 1024,
	0x02: 128 * 1024,
	0x03: 256 * 1024,
	0x04: 512 * 1024,
	0x05: 1024 * 1024,
	0x06: 2 * 1024 * 1024,
	0x07: 4 * 1024 * 1024,
	0x08: 8 * 1024 * 1024,
}

// ramSizes maps header byte 0x149 to the external RAM size in bytes.
var ramSizes = []int{
	0x00: 0,
	0x01: 2 * 1024,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// Header is a parsed view over the 80-byte cartridge header at 0x100.
type Header struct {
	Title          string
	CGBFlag        uint8
	SGBFlag        uint8
	NewLicensee    string
	OldLicensee    uint8
	Type           Type
	ROMSizeByte    uint8
	RAMSizeByte    uint8
	Destination    uint8
	Version        uint8
	HeaderChecksum uint8
	GlobalChecksum uint16
}

// parseHeader reads the header fields out of a ROM image. The image must be
// at least headerEnd bytes long.
func parseHeader(rom []byte) *Header {
	title := rom[titleAddress : titleAddress+titleLength]
	if i := bytes.IndexByte(title, 0); i >= 0 {
		title = title[:i]
	}

	return &Header{
		Title:          strings.TrimRight(string(title), "\x00 "),
		CGBFlag:        rom[cgbFlagAddress],
		SGBFlag:        rom[sgbFlagAddress],
		NewLicensee:    string(rom[newLicenseCodeAddress : newLicenseCodeAddress+2]),
		OldLicensee:    rom[oldLicenseCodeAddress],
		Type:           Type(rom[cartridgeTypeAddress]),
		ROMSizeByte:    rom[romSizeAddress],
		RAMSizeByte:    rom[ramSizeAddress],
		Destination:    rom[destinationAddress],
		Version:        rom[versionNumberAddress],
		HeaderChecksum: rom[headerChecksumAddress],
		GlobalChecksum: (uint16(rom[globalChecksumAddress]) << 8) | uint16(rom[globalChecksumAddress+1]),
	}
}

// ROMSize returns the ROM size in bytes declared by the header, or 0 for an
// unrecognized size byte.
func (h *Header) ROMSize() int {
	if int(h.ROMSizeByte) >= len(romSizes) {
		return 0
	}
	return romSizes[h.ROMSizeByte]
}

// RAMSize returns the external RAM size in bytes declared by the header, or
// -1 for an unrecognized size byte.
func (h *Header) RAMSize() int {
	if int(h.RAMSizeByte) >= len(ramSizes) {
		return -1
	}
	return ramSizes[h.RAMSizeByte]
}

// SupportsCGB reports whether bit 7 of the CGB flag is set.
func (h *Header) SupportsCGB() bool {
	return h.CGBFlag&0x80 != 0
}

// RequiresCGB reports whether the cartridge declares itself CGB-only.
func (h *Header) RequiresCGB() bool {
	return h.CGBFlag&0xC0 == 0xC0
}

func (h *Header) String() string {
	return fmt.Sprintf("%s (%s, ROM %dKiB, RAM %dKiB, v%d)",
		h.Title, h.Type, h.ROMSize()/1024, max(h.RAMSize(), 0)/1024, h.Version)
}

// headerChecksum computes the checksum over bytes 0x134-0x14C, which must
// match header byte 0x14D.
func headerChecksum(rom []byte) uint8 {
	var sum uint8
	for i := titleAddress; i <= 0x14C; i++ {
		sum = sum - rom[i] - 1
	}
	return sum
}

// validateHeader checks the fixed logo bytes and the header checksum.
func validateHeader(rom []byte, h *Header) error {
	if !bytes.Equal(rom[logoAddress:logoAddress+len(nintendoLogo)], nintendoLogo[:]) {
		return ErrLogoMismatch
	}
	if sum := headerChecksum(rom); sum != h.HeaderChecksum {
		return fmt.Errorf("%w: computed 0x%02X, header declares 0x%02X",
			ErrChecksumMismatch, sum, h.HeaderChecksum)
	}
	return nil
}

// features are the derived capabilities a type-specific validator settles.
type features struct {
	hasBattery bool
	hasTimer   bool
	hasRumble  bool
}

// validateType enforces the per-controller ROM/RAM size rules and derives
// the cartridge's battery/timer/rumble capabilities.
func validateType(h *Header) (features, error) {
	var f features
	switch h.Type {
	case ROM, ROMRAM, ROMRAMBattery:
		if h.ROMSizeByte != 0x00 {
			return f, fmt.Errorf("%w: basic cartridge must be 32KiB", ErrSizeMismatch)
		}
		if h.RAMSizeByte != 0x00 && h.RAMSizeByte != 0x02 {
			return f, fmt.Errorf("%w: basic cartridge supports 0 or 8KiB RAM", ErrSizeMismatch)
		}
		f.hasBattery = h.Type == ROMRAMBattery && h.RAMSizeByte != 0x00

	case MBC1, MBC1RAM, MBC1RAMBattery:
		if h.ROMSizeByte > 0x06 {
			return f, fmt.Errorf("%w: MBC1 supports up to 2MiB ROM", ErrSizeMismatch)
		}
		if h.ROMSizeByte <= 0x04 {
			if h.RAMSizeByte > 0x03 {
				return f, fmt.Errorf("%w: MBC1 with ROM <= 512KiB supports up to 32KiB RAM", ErrSizeMismatch)
			}
		} else if h.RAMSizeByte > 0x02 {
			return f, fmt.Errorf("%w: MBC1 with ROM > 512KiB supports up to 8KiB RAM", ErrSizeMismatch)
		}
		f.hasBattery = h.Type == MBC1RAMBattery && h.RAMSizeByte != 0x00

	case MBC2, MBC2Battery:
		if h.ROMSizeByte > 0x03 {
			return f, fmt.Errorf("%w: MBC2 supports up to 256KiB ROM", ErrSizeMismatch)
		}
		// The 512x4-bit on-chip RAM is not declared in the header.
		if h.RAMSizeByte != 0x00 {
			return f, fmt.Errorf("%w: MBC2 must declare no external RAM", ErrSizeMismatch)
		}
		f.hasBattery = h.Type == MBC2Battery

	case MBC3, MBC3RAM, MBC3RAMBattery, MBC3TimerBattery, MBC3TimerRAMBattery:
		if h.ROMSizeByte > 0x06 {
			return f, fmt.Errorf("%w: MBC3 supports up to 2MiB ROM", ErrSizeMismatch)
		}
		if h.RAMSizeByte > 0x03 || h.RAMSizeByte == 0x01 {
			return f, fmt.Errorf("%w: MBC3 supports 0, 8 or 32KiB RAM", ErrSizeMismatch)
		}
		f.hasBattery = h.Type == MBC3RAMBattery ||
			h.Type == MBC3TimerBattery || h.Type == MBC3TimerRAMBattery
		f.hasTimer = (h.Type == MBC3TimerBattery || h.Type == MBC3TimerRAMBattery) &&
			f.hasBattery

	case MBC5, MBC5RAM, MBC5RAMBattery, MBC5Rumble, MBC5RumbleRAM, MBC5RumbleRAMBattery:
		if h.ROMSizeByte > 0x08 {
			return f, fmt.Errorf("%w: MBC5 supports up to 8MiB ROM", ErrSizeMismatch)
		}
		switch h.RAMSizeByte {
		case 0x00, 0x02, 0x03, 0x04:
		default:
			return f, fmt.Errorf("%w: MBC5 supports 0, 8, 32 or 128KiB RAM", ErrSizeMismatch)
		}
		f.hasBattery = h.Type == MBC5RAMBattery || h.Type == MBC5RumbleRAMBattery
		f.hasRumble = h.Type == MBC5Rumble || h.Type == MBC5RumbleRAM ||
			h.Type == MBC5RumbleRAMBattery

	default:
		return f, fmt.Errorf("%w: %s", ErrUnsupportedMBC, h.Type)
	}

	return f, nil
}
