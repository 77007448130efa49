package cpu

import "github.com/emilos/go-dotmatrix/dotmatrix/bit"

// Flag is one of the four flags held in the F register.
type Flag uint8

const (
	zeroFlag      Flag = 0x80
	subFlag       Flag = 0x40
	halfCarryFlag Flag = 0x20
	carryFlag     Flag = 0x10
)

// condition is a branching condition for JR/JP/CALL/RET.
type condition uint8

const (
	condNone condition = iota
	condNZ
	condZ
	condNC
	condC
)

func (c *CPU) setFlag(flag Flag) {
	c.f |= uint8(flag)
}

func (c *CPU) resetFlag(flag Flag) {
	c.f &^= uint8(flag)
}

func (c *CPU) setFlagToCondition(flag Flag, value bool) {
	if value {
		c.setFlag(flag)
	} else {
		c.resetFlag(flag)
	}
}

func (c *CPU) isSetFlag(flag Flag) bool {
	return c.f&uint8(flag) != 0
}

// flagToBit returns 1 if the flag is set, 0 otherwise.
func (c *CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}
	return 0
}

func (c *CPU) checkCondition(cond condition) bool {
	switch cond {
	case condNone:
		return true
	case condNZ:
		return !c.isSetFlag(zeroFlag)
	case condZ:
		return c.isSetFlag(zeroFlag)
	case condNC:
		return !c.isSetFlag(carryFlag)
	case condC:
		return c.isSetFlag(carryFlag)
	}
	return false
}

// Register pairs. The low nibble of F is not wired and always reads zero.

func (c *CPU) getAF() uint16 {
	return bit.Combine(c.a, c.f&0xF0)
}

func (c *CPU) setAF(value uint16) {
	c.a = bit.High(value)
	c.f = bit.Low(value) & 0xF0
}

func (c *CPU) getBC() uint16 {
	return bit.Combine(c.b, c.c)
}

func (c *CPU) setBC(value uint16) {
	c.b = bit.High(value)
	c.c = bit.Low(value)
}

func (c *CPU) getDE() uint16 {
	return bit.Combine(c.d, c.e)
}

func (c *CPU) setDE(value uint16) {
	c.d = bit.High(value)
	c.e = bit.Low(value)
}

func (c *CPU) getHL() uint16 {
	return bit.Combine(c.h, c.l)
}

func (c *CPU) setHL(value uint16) {
	c.h = bit.High(value)
	c.l = bit.Low(value)
}

// Exported register access, for hosts, tests and trace consumers.

// AF returns the combined accumulator/flags pair.
func (c *CPU) AF() uint16 { return c.getAF() }

// SetAF writes the accumulator/flags pair, masking the unwired flag bits.
func (c *CPU) SetAF(value uint16) { c.setAF(value) }

// BC returns the BC register pair.
func (c *CPU) BC() uint16 { return c.getBC() }

// SetBC writes the BC register pair.
func (c *CPU) SetBC(value uint16) { c.setBC(value) }

// DE returns the DE register pair.
func (c *CPU) DE() uint16 { return c.getDE() }

// SetDE writes the DE register pair.
func (c *CPU) SetDE(value uint16) { c.setDE(value) }

// HL returns the HL register pair.
func (c *CPU) HL() uint16 { return c.getHL() }

// SetHL writes the HL register pair.
func (c *CPU) SetHL(value uint16) { c.setHL(value) }

// SP returns the stack pointer.
func (c *CPU) SP() uint16 { return c.sp }

// SetSP writes the stack pointer.
func (c *CPU) SetSP(value uint16) { c.sp = value }

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.pc }

// SetPC writes the program counter.
func (c *CPU) SetPC(value uint16) { c.pc = value }
