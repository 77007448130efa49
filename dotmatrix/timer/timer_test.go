package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emilos/go-dotmatrix/dotmatrix/addr"
)

func newTestTimer() *Timer {
	t := New()
	t.Reset(true) // divider at zero
	return t
}

func TestDIV(t *testing.T) {
	tm := newTestTimer()

	for i := 0; i < 256; i++ {
		tm.Tick()
	}
	assert.Equal(t, uint8(1), tm.Read(addr.DIV))

	// Any write resets the divider; the value is ignored.
	assert.Equal(t, uint8(0x00), tm.Write(addr.DIV, 0xAB))
	assert.Equal(t, uint8(0), tm.Read(addr.DIV))

	tm.Tick()
	assert.Equal(t, uint8(0), tm.Read(addr.DIV), "divider advances below the visible byte")
}

func TestDMGSeed(t *testing.T) {
	tm := New()
	tm.Reset(false)
	assert.Equal(t, uint8(0xAB), tm.Read(addr.DIV))
}

func TestTIMAPeriods(t *testing.T) {
	periods := map[uint8]int{
		0x00: 1024,
		0x01: 16,
		0x02: 64,
		0x03: 256,
	}

	for clockSelect, period := range periods {
		tm := newTestTimer()
		tm.Write(addr.TAC, 0x04|clockSelect)

		for i := 0; i < period; i++ {
			assert.Equal(t, uint8(0), tm.Read(addr.TIMA), "select %d ticked early at cycle %d", clockSelect, i)
			tm.Tick()
		}
		assert.Equal(t, uint8(1), tm.Read(addr.TIMA), "select %d period", clockSelect)
	}
}

func TestTIMAPeriodsDoubleSpeed(t *testing.T) {
	tm := newTestTimer()
	tm.SetDoubleSpeed(true)
	tm.Write(addr.TAC, 0x05) // 16-cycle period, halved

	for i := 0; i < 8; i++ {
		tm.Tick()
	}
	assert.Equal(t, uint8(1), tm.Read(addr.TIMA))
}

func TestTIMADisabled(t *testing.T) {
	tm := newTestTimer()
	tm.Write(addr.TAC, 0x01) // enable bit clear

	for i := 0; i < 4096; i++ {
		tm.Tick()
	}
	assert.Equal(t, uint8(0), tm.Read(addr.TIMA))
}

func TestOverflow(t *testing.T) {
	tm := newTestTimer()

	interrupts := 0
	overflows := 0
	tm.RequestInterrupt = func() { interrupts++ }
	tm.OnOverflow = func() { overflows++ }

	tm.Write(addr.TMA, 0xFD)
	tm.Write(addr.TIMA, 0xFF)
	tm.Write(addr.TAC, 0x05)

	for i := 0; i < 16; i++ {
		tm.Tick()
	}

	assert.Equal(t, uint8(0xFD), tm.Read(addr.TIMA), "reloaded from TMA")
	assert.Equal(t, 1, interrupts)
	assert.Equal(t, 1, overflows)
}

func TestTACMask(t *testing.T) {
	tm := newTestTimer()
	tm.Write(addr.TAC, 0xFF)
	assert.Equal(t, uint8(0xFF), tm.Read(addr.TAC))
	tm.Write(addr.TAC, 0x02)
	assert.Equal(t, uint8(0xFA), tm.Read(addr.TAC))
}

func TestUnmappedAddress(t *testing.T) {
	tm := newTestTimer()
	assert.Equal(t, uint8(0xFF), tm.Read(0xFF00))
	assert.Equal(t, uint8(0xFF), tm.Write(0xFF00, 0x12))
}
