// Package cart implements DMG/CGB cartridges: header parsing and
// validation, the memory-bank-controller family (none, MBC1, MBC2,
// MBC3+RTC, MBC5+rumble) and battery-backed RAM persistence.
package cart

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/cespare/xxhash"
)

// Cartridge owns an immutable ROM image, an optional external RAM buffer
// sized from the header, the parsed header and the banking controller.
type Cartridge struct {
	rom []uint8
	ram []uint8

	header *Header
	mbc    MBC
	hash   string

	hasBattery bool
	hasTimer   bool
	hasRumble  bool
}

// mbc2RAMSize is the on-chip 512x4-bit RAM, stored one nibble per byte.
const mbc2RAMSize = 512

// New builds a cartridge from a raw ROM image, validating the header and
// the per-controller size rules. The RTC of timer-equipped cartridges uses
// now as its time source (nil selects the real clock).
func New(rom []byte, now Clock) (*Cartridge, error) {
	if len(rom) < 2*romBankSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrFileTooSmall, len(rom))
	}

	header := parseHeader(rom)
	if err := validateHeader(rom, header); err != nil {
		return nil, err
	}
	if header.ROMSize() != len(rom) {
		return nil, fmt.Errorf("%w: header declares %d bytes, image is %d bytes",
			ErrSizeMismatch, header.ROMSize(), len(rom))
	}
	if header.RAMSize() < 0 {
		return nil, fmt.Errorf("%w: unrecognized RAM size byte 0x%02X",
			ErrSizeMismatch, header.RAMSizeByte)
	}

	feat, err := validateType(header)
	if err != nil {
		return nil, err
	}

	c := &Cartridge{
		rom:        rom,
		header:     header,
		hash:       hexHash(rom),
		hasBattery: feat.hasBattery,
		hasTimer:   feat.hasTimer,
		hasRumble:  feat.hasRumble,
	}

	switch {
	case header.Type == MBC2 || header.Type == MBC2Battery:
		c.ram = make([]uint8, mbc2RAMSize)
	case header.RAMSize() > 0:
		c.ram = make([]uint8, header.RAMSize())
	}

	switch header.Type {
	case ROM, ROMRAM, ROMRAMBattery:
		c.mbc = NewNoMBC(c.rom, c.ram)
	case MBC1, MBC1RAM, MBC1RAMBattery:
		c.mbc = NewMBC1(c.rom, c.ram)
	case MBC2, MBC2Battery:
		c.mbc = NewMBC2(c.rom, c.ram)
	case MBC3, MBC3RAM, MBC3RAMBattery, MBC3TimerBattery, MBC3TimerRAMBattery:
		c.mbc = NewMBC3(c.rom, c.ram, feat.hasTimer, now)
	case MBC5, MBC5RAM, MBC5RAMBattery, MBC5Rumble, MBC5RumbleRAM, MBC5RumbleRAMBattery:
		c.mbc = NewMBC5(c.rom, c.ram, feat.hasRumble)
	}

	return c, nil
}

func hexHash(rom []byte) string {
	sum := xxhash.Sum64(rom)
	var b [8]byte
	for i := range b {
		b[i] = byte(sum >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}

// Header returns the parsed cartridge header.
func (c *Cartridge) Header() *Header {
	return c.header
}

// Title returns the cartridge title from the header.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Hash returns a hex-encoded xxhash of the ROM image, suitable for naming
// the battery save file.
func (c *Cartridge) Hash() string {
	return c.hash
}

// HasBattery reports whether the cartridge's RAM is battery backed.
func (c *Cartridge) HasBattery() bool {
	return c.hasBattery
}

// HasTimer reports whether the cartridge carries an RTC.
func (c *Cartridge) HasTimer() bool {
	return c.hasTimer
}

// HasRumble reports whether the cartridge carries a rumble motor.
func (c *Cartridge) HasRumble() bool {
	return c.hasRumble
}

// ReadROM reads from the 0x0000-0x7FFF region through the controller.
func (c *Cartridge) ReadROM(address uint16) uint8 {
	return c.mbc.ReadROM(address)
}

// WriteROM routes a 0x0000-0x7FFF write to the controller's banking
// registers. The bus reports such writes as uncommitted (0xFF).
func (c *Cartridge) WriteROM(address uint16, value uint8) uint8 {
	c.mbc.WriteROM(address, value)
	return 0xFF
}

// ReadRAM reads from the external RAM window; address is relative to
// 0xA000.
func (c *Cartridge) ReadRAM(address uint16) uint8 {
	return c.mbc.ReadRAM(address)
}

// WriteRAM writes into the external RAM window; address is relative to
// 0xA000. Returns the committed byte.
func (c *Cartridge) WriteRAM(address uint16, value uint8) uint8 {
	return c.mbc.WriteRAM(address, value)
}

// LoadRAMFile restores the external RAM buffer from a battery save file.
// Cartridges without a battery are skipped unless force is set; a missing
// file is not an error (fresh cartridge).
func (c *Cartridge) LoadRAMFile(path string, force bool) error {
	if len(c.ram) == 0 || (!c.hasBattery && !force) {
		return nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cart: loading RAM: %w", err)
	}
	if len(data) != len(c.ram) {
		return fmt.Errorf("%w: expected %d bytes, file has %d",
			ErrRAMFileSizeMismatch, len(c.ram), len(data))
	}

	copy(c.ram, data)
	return nil
}

// SaveRAMFile dumps the external RAM buffer to a battery save file.
// Cartridges without a battery are skipped unless force is set.
func (c *Cartridge) SaveRAMFile(path string, force bool) error {
	if len(c.ram) == 0 || (!c.hasBattery && !force) {
		return nil
	}
	if err := os.WriteFile(path, c.ram, 0o644); err != nil {
		return fmt.Errorf("cart: saving RAM: %w", err)
	}
	return nil
}
