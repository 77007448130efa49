package cart

import "testing"

func TestMBC5(t *testing.T) {
	t.Run("bank 0 is selectable", func(t *testing.T) {
		mbc := NewMBC5(bankedROM(64), nil, false)
		mbc.WriteROM(0x2000, 0x00)
		if got := mbc.ReadROM(0x4000); got != 0 {
			t.Errorf("bank = %d; want 0", got)
		}
	})

	t.Run("9-bit bank number", func(t *testing.T) {
		mbc := NewMBC5(bankedROM(512), nil, false) // 8MiB

		mbc.WriteROM(0x2000, 0x34)
		mbc.WriteROM(0x3000, 0x01)
		// Bank 0x134. The fill pattern wraps at 256, so compare modulo.
		if got := mbc.ReadROM(0x4000); got != uint8(0x134%256) {
			t.Errorf("bank low byte = 0x%02X; want 0x%02X", got, uint8(0x134%256))
		}

		mbc.WriteROM(0x3000, 0x00)
		if got := mbc.ReadROM(0x4000); got != 0x34 {
			t.Errorf("bank = 0x%02X; want 0x34", got)
		}
	})

	t.Run("bank masked to ROM size", func(t *testing.T) {
		mbc := NewMBC5(bankedROM(8), nil, false) // 128KiB
		mbc.WriteROM(0x2000, 0x0B)
		if got := mbc.ReadROM(0x4000); got != 3 {
			t.Errorf("bank = %d; want 3 (11 masked to 8 banks)", got)
		}
	})

	t.Run("RAM banking", func(t *testing.T) {
		mbc := NewMBC5(bankedROM(2), make([]uint8, 128*1024), false)
		mbc.WriteROM(0x0000, 0x0A)

		for bank := uint8(0); bank < 16; bank++ {
			mbc.WriteROM(0x4000, bank)
			mbc.WriteRAM(0, 0x30+bank)
		}
		for bank := uint8(0); bank < 16; bank++ {
			mbc.WriteROM(0x4000, bank)
			if got := mbc.ReadRAM(0); got != 0x30+bank {
				t.Errorf("bank %d read = 0x%02X; want 0x%02X", bank, got, 0x30+bank)
			}
		}
	})

	t.Run("rumble reserves bit 3", func(t *testing.T) {
		mbc := NewMBC5(bankedROM(2), make([]uint8, 64*1024), true)
		mbc.WriteROM(0x0000, 0x0A)

		mbc.WriteROM(0x4000, 0x02)
		mbc.WriteRAM(0, 0x77)

		// Bit 3 drives the motor, so bank 0x0A aliases bank 2.
		mbc.WriteROM(0x4000, 0x0A)
		if got := mbc.ReadRAM(0); got != 0x77 {
			t.Errorf("rumble-masked bank read = 0x%02X; want 0x77", got)
		}
	})
}
