// Package cpu implements the Sharp LR35902-style processor: the full base
// and CB-prefixed instruction sets with per-machine-cycle bus timing,
// interrupt servicing, HALT/STOP semantics (halt bug included) and the CGB
// double-speed switch.
package cpu

import (
	"errors"
	"fmt"

	"github.com/emilos/go-dotmatrix/dotmatrix/addr"
	"github.com/emilos/go-dotmatrix/dotmatrix/bit"
)

// ErrUnknownOpcode is returned by Tick when a fetched opcode has no
// implementation. The instruction-execute hook observes the failure before
// Tick returns.
var ErrUnknownOpcode = errors.New("cpu: unknown opcode")

// Bus is the CPU's view of the address space. Read returns the byte on the
// bus; Write returns the byte actually committed.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8) uint8
}

// speedSwitchCycles is the machine-cycle pause the CGB takes while
// switching speeds after an armed STOP.
const speedSwitchCycles = 2050

// interruptMask covers the five wired interrupt lines.
const interruptMask = 0x1F

// CPU holds the register file, the interrupt state and the transient
// halt/stop flags, plus the hosted IF/IE/KEY0/KEY1 hardware registers.
type CPU struct {
	bus   Bus
	clock func(machineCycles int)

	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8
	sp   uint16
	pc   uint16

	ime        bool
	imePending bool

	halted         bool
	stopped        bool
	haltBug        bool
	switchingSpeed bool

	cgbMode bool

	iflags uint8
	ie     uint8
	key0   uint8
	key1   uint8

	opcodeAddr uint16
	opcode     uint16

	// OnFetch is invoked after each opcode fetch; returning false skips
	// execution, leaving only the fetch cycles consumed.
	OnFetch func(pc uint16, opcode uint16) bool
	// OnExecute is invoked after each dispatch with its outcome.
	OnExecute func(pc uint16, opcode uint16, ok bool)
	// OnInterrupt is invoked after an interrupt has been serviced.
	OnInterrupt func(interrupt int)
	// OnRestart is invoked when an RST instruction jumps to its vector.
	OnRestart func(vector uint16)
	// OnDIVReset is invoked when STOP zeroes the divider.
	OnDIVReset func()
	// OnSpeedSwitch is invoked after a completed CGB speed switch.
	OnSpeedSwitch func(double bool)
}

// New creates a CPU attached to the given bus and machine-cycle sink.
func New(bus Bus, clock func(machineCycles int)) *CPU {
	cpu := &CPU{bus: bus, clock: clock}
	cpu.Reset(false)
	return cpu
}

// Reset restores power-on state for the given console mode.
func (c *CPU) Reset(cgbMode bool) {
	c.a, c.f = 0, 0
	c.b, c.c = 0, 0
	c.d, c.e = 0, 0
	c.h, c.l = 0, 0
	c.sp = 0
	c.pc = 0
	c.ime = false
	c.imePending = false
	c.halted = false
	c.stopped = false
	c.haltBug = false
	c.switchingSpeed = false
	c.cgbMode = cgbMode
	c.iflags = 0
	c.ie = 0
	c.key0 = 0
	c.key1 = 0
}

func (c *CPU) tick(machineCycles int) {
	if c.clock != nil {
		c.clock(machineCycles)
	}
}

func (c *CPU) readByte(address uint16) uint8 {
	value := c.bus.Read(address)
	c.tick(1)
	return value
}

func (c *CPU) writeByte(address uint16, value uint8) {
	c.bus.Write(address, value)
	c.tick(1)
}

func (c *CPU) fetchByte() uint8 {
	value := c.readByte(c.pc)
	c.pc++
	return value
}

func (c *CPU) fetchWord() uint16 {
	low := c.fetchByte()
	high := c.fetchByte()
	return bit.Combine(high, low)
}

// Tick services a pending interrupt, then fetches, decodes and executes one
// instruction. A stopped CPU does nothing; a halted CPU burns one machine
// cycle per call until an enabled interrupt becomes pending.
func (c *CPU) Tick() error {
	if c.stopped {
		return nil
	}

	if c.halted {
		if c.anyInterruptPending() {
			c.halted = false
		} else {
			c.tick(1)
			return nil
		}
	}

	c.serviceInterrupt()

	c.fetchOpcode()

	allowExecution := true
	if c.OnFetch != nil {
		allowExecution = c.OnFetch(c.opcodeAddr, c.opcode)
	}

	// EI takes effect one instruction late: only a pending enable that was
	// already armed before this instruction is promoted afterwards.
	pendingBefore := c.imePending

	if allowExecution {
		err := c.execute()
		if c.OnExecute != nil {
			c.OnExecute(c.opcodeAddr, c.opcode, err == nil)
		}
		if err != nil {
			return err
		}
	}

	if pendingBefore && c.imePending {
		c.ime = true
		c.imePending = false
	}

	return nil
}

// fetchOpcode reads the next opcode, latching the halt bug: the fetched
// byte is consumed but PC does not advance, so a prefix byte is seen twice.
func (c *CPU) fetchOpcode() {
	c.opcodeAddr = c.pc

	opcode := c.readByte(c.pc)
	if c.haltBug {
		c.haltBug = false
	} else {
		c.pc++
	}

	if opcode == 0xCB {
		prefixed := c.readByte(c.pc)
		c.pc++
		c.opcode = 0xCB00 | uint16(prefixed)
	} else {
		c.opcode = uint16(opcode)
	}
}

func (c *CPU) execute() error {
	var op Opcode
	if c.opcode&0xFF00 == 0xCB00 {
		op = opcodeCBTable[uint8(c.opcode)]
	} else {
		op = opcodeTable[uint8(c.opcode)]
	}

	if op == nil {
		return fmt.Errorf("%w: 0x%04X at 0x%04X", ErrUnknownOpcode, c.opcode, c.opcodeAddr)
	}
	return op(c)
}

func (c *CPU) anyInterruptPending() bool {
	return c.ie&c.iflags&interruptMask != 0
}

// serviceInterrupt dispatches the highest-priority pending enabled
// interrupt, if the master enable allows it. At most one interrupt is
// serviced per call.
func (c *CPU) serviceInterrupt() {
	if !c.ime {
		return
	}

	for interrupt := 0; interrupt < 5; interrupt++ {
		mask := uint8(1) << interrupt
		if c.iflags&mask == 0 || c.ie&mask == 0 {
			continue
		}

		c.iflags &^= mask
		c.ime = false
		c.halted = false
		c.haltBug = false

		c.tick(2)
		c.sp--
		c.writeByte(c.sp, bit.High(c.pc))
		c.sp--
		c.writeByte(c.sp, bit.Low(c.pc))
		c.pc = addr.InterruptVector(interrupt)
		c.tick(1)

		if c.OnInterrupt != nil {
			c.OnInterrupt(interrupt)
		}
		return
	}
}

// enterHalt applies the three HALT entry cases. With IME off and an enabled
// interrupt already pending the CPU does not halt; instead the next opcode
// fetch skips its PC increment (the halt bug).
func (c *CPU) enterHalt() {
	if c.ime {
		c.halted = true
		c.haltBug = false
		return
	}

	if c.anyInterruptPending() {
		c.halted = false
		c.haltBug = true
	} else {
		c.halted = true
		c.haltBug = false
	}
}

// enterStop zeroes the divider, then either performs the CGB speed switch
// (when armed) or enters the stopped state.
func (c *CPU) enterStop() {
	if c.OnDIVReset != nil {
		c.OnDIVReset()
	}

	if c.cgbMode && c.key1&0x01 != 0 {
		c.key1 &^= 0x01
		c.switchingSpeed = true
		c.tick(speedSwitchCycles)
		c.switchingSpeed = false
		c.key1 ^= 0x80
		if c.OnSpeedSwitch != nil {
			c.OnSpeedSwitch(c.key1&0x80 != 0)
		}
		return
	}

	c.stopped = true
}

// RequestInterrupt raises the given interrupt line in IF.
func (c *CPU) RequestInterrupt(interrupt int) {
	c.iflags |= uint8(1) << interrupt & interruptMask
}

// Halted reports whether the CPU is in the HALT state.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether the CPU is in the STOP state.
func (c *CPU) Stopped() bool { return c.stopped }

// Resume clears the STOP state.
func (c *CPU) Resume() { c.stopped = false }

// SwitchingSpeed reports whether a CGB speed switch is in progress.
func (c *CPU) SwitchingSpeed() bool { return c.switchingSpeed }

// DoubleSpeed reports whether the CGB is running in double-speed mode.
func (c *CPU) DoubleSpeed() bool { return c.key1&0x80 != 0 }

// IME reports the interrupt master enable flag.
func (c *CPU) IME() bool { return c.ime }

// SetIME overrides the interrupt master enable flag.
func (c *CPU) SetIME(enabled bool) { c.ime = enabled }

// Hosted hardware registers. The unwired bits of IF/IE read as 1; KEY0 and
// KEY1 exist only on CGB and read open bus on DMG.

// ReadIF reads the interrupt flag register.
func (c *CPU) ReadIF() uint8 {
	return c.iflags&interruptMask | 0xE0
}

// WriteIF writes the interrupt flag register and returns the committed byte.
func (c *CPU) WriteIF(value uint8) uint8 {
	c.iflags = value & interruptMask
	return c.ReadIF()
}

// ReadIE reads the interrupt enable register.
func (c *CPU) ReadIE() uint8 {
	return c.ie&interruptMask | 0xE0
}

// WriteIE writes the interrupt enable register and returns the committed byte.
func (c *CPU) WriteIE(value uint8) uint8 {
	c.ie = value & interruptMask
	return c.ReadIE()
}

// ReadKEY0 reads the DMG-compatibility register.
func (c *CPU) ReadKEY0() uint8 {
	if !c.cgbMode {
		return 0xFF
	}
	return 0xFB | c.key0&0x04
}

// WriteKEY0 discards the write; the boot ROM has closed the window before
// software runs.
func (c *CPU) WriteKEY0(value uint8) uint8 {
	return c.ReadKEY0()
}

// ReadKEY1 reads the speed switch register.
func (c *CPU) ReadKEY1() uint8 {
	if !c.cgbMode {
		return 0xFF
	}
	return c.key1&0x80 | 0x7E | c.key1&0x01
}

// WriteKEY1 arms or disarms the speed switch; only bit 0 is writable.
func (c *CPU) WriteKEY1(value uint8) uint8 {
	if c.cgbMode {
		c.key1 = c.key1&^0x01 | value&0x01
	}
	return c.ReadKEY1()
}
