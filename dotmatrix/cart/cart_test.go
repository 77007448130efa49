package cart

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid basic cartridge", func(t *testing.T) {
		c, err := New(testROM(t, ROM, 0x00, 0x00), nil)
		require.NoError(t, err)
		assert.Equal(t, "TESTCART", c.Title())
		assert.False(t, c.HasBattery())
		assert.Len(t, c.Hash(), 16)
	})

	t.Run("too small", func(t *testing.T) {
		_, err := New(make([]byte, 0x4000), nil)
		assert.ErrorIs(t, err, ErrFileTooSmall)
	})

	t.Run("declared size must match image size", func(t *testing.T) {
		rom := testROM(t, MBC1, 0x01, 0x00) // header says 64KiB
		_, err := New(rom[:0x8000], nil)
		assert.ErrorIs(t, err, ErrSizeMismatch)
	})

	t.Run("unsupported type", func(t *testing.T) {
		rom := testROM(t, Type(0x0B), 0x00, 0x00)
		_, err := New(rom, nil)
		assert.ErrorIs(t, err, ErrUnsupportedMBC)
	})

	t.Run("MBC2 allocates its on-chip RAM", func(t *testing.T) {
		c, err := New(testROM(t, MBC2Battery, 0x00, 0x00), nil)
		require.NoError(t, err)
		c.WriteROM(0x0000, 0x0A)
		c.WriteRAM(0, 0x09)
		assert.Equal(t, uint8(0xF9), c.ReadRAM(0))
	})
}

func TestROMWriteContract(t *testing.T) {
	// Basic cartridges have no banking registers; writes to the ROM range
	// change nothing and report open bus.
	rom := testROM(t, ROM, 0x00, 0x00)
	rom[0x7FFF] = 0xA5
	rom[headerChecksumAddress] = headerChecksum(rom)

	c, err := New(rom, nil)
	require.NoError(t, err)

	assert.Equal(t, uint8(0xA5), c.ReadROM(0x7FFF))
	assert.Equal(t, uint8(0xFF), c.WriteROM(0x7FFF, 0x33))
	assert.Equal(t, uint8(0xA5), c.ReadROM(0x7FFF))
}

func TestBatteryFiles(t *testing.T) {
	newBatteryCart := func(t *testing.T) *Cartridge {
		c, err := New(testROM(t, MBC1RAMBattery, 0x00, 0x02), nil)
		require.NoError(t, err)
		c.WriteROM(0x0000, 0x0A)
		return c
	}

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "battery.sav")

		c := newBatteryCart(t)
		c.WriteRAM(0x0000, 0x12)
		c.WriteRAM(0x1FFF, 0x34)
		require.NoError(t, c.SaveRAMFile(path, false))

		restored := newBatteryCart(t)
		require.NoError(t, restored.LoadRAMFile(path, false))
		assert.Equal(t, uint8(0x12), restored.ReadRAM(0x0000))
		assert.Equal(t, uint8(0x34), restored.ReadRAM(0x1FFF))
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		c := newBatteryCart(t)
		assert.NoError(t, c.LoadRAMFile(filepath.Join(t.TempDir(), "absent.sav"), false))
	})

	t.Run("size mismatch", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "short.sav")
		require.NoError(t, os.WriteFile(path, make([]byte, 16), 0o644))

		c := newBatteryCart(t)
		assert.ErrorIs(t, c.LoadRAMFile(path, false), ErrRAMFileSizeMismatch)
	})

	t.Run("no battery means no save unless forced", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nobatt.sav")
		c, err := New(testROM(t, MBC1RAM, 0x00, 0x02), nil)
		require.NoError(t, err)

		require.NoError(t, c.SaveRAMFile(path, false))
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))

		require.NoError(t, c.SaveRAMFile(path, true))
		_, statErr = os.Stat(path)
		assert.NoError(t, statErr)
	})
}

func TestOpen(t *testing.T) {
	rom := testROM(t, ROM, 0x00, 0x00)

	t.Run("plain file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.gb")
		require.NoError(t, os.WriteFile(path, rom, 0o644))

		c, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, "TESTCART", c.Title())
	})

	t.Run("zip archive", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.zip")
		f, err := os.Create(path)
		require.NoError(t, err)

		w := zip.NewWriter(f)
		entry, err := w.Create("test.gb")
		require.NoError(t, err)
		_, err = entry.Write(rom)
		require.NoError(t, err)
		require.NoError(t, w.Close())
		require.NoError(t, f.Close())

		c, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, "TESTCART", c.Title())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "nope.gb"))
		assert.Error(t, err)
	})
}
