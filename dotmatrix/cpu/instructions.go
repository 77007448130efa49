package cpu

import "github.com/emilos/go-dotmatrix/dotmatrix/bit"

// Shared instruction bodies. Every memory access charges its machine cycle
// through readByte/writeByte; purely internal cycles are charged explicitly
// at the call sites.

// Stack.

func (c *CPU) pushWord(value uint16) {
	c.sp--
	c.writeByte(c.sp, bit.High(value))
	c.sp--
	c.writeByte(c.sp, bit.Low(value))
}

func (c *CPU) popWord() uint16 {
	low := c.readByte(c.sp)
	c.sp++
	high := c.readByte(c.sp)
	c.sp++
	return bit.Combine(high, low)
}

func (c *CPU) push(value uint16) {
	c.pushWord(value)
	c.tick(1)
}

// Branching.

func (c *CPU) jr(cond condition) {
	offset := int8(c.fetchByte())
	if c.checkCondition(cond) {
		c.pc = uint16(int32(c.pc) + int32(offset))
		c.tick(1)
	}
}

func (c *CPU) jp(cond condition) {
	address := c.fetchWord()
	if c.checkCondition(cond) {
		c.pc = address
		c.tick(1)
	}
}

func (c *CPU) call(cond condition) {
	address := c.fetchWord()
	if c.checkCondition(cond) {
		c.pushWord(c.pc)
		c.pc = address
		c.tick(1)
	}
}

func (c *CPU) ret() {
	c.pc = c.popWord()
	c.tick(1)
}

// retCond charges the condition-evaluation cycle that unconditional RET
// does not pay.
func (c *CPU) retCond(cond condition) {
	c.tick(1)
	if c.checkCondition(cond) {
		c.ret()
	}
}

func (c *CPU) reti() {
	c.ret()
	// RETI restores the master enable immediately, without EI's delay.
	c.ime = true
	c.imePending = false
}

func (c *CPU) rst(vector uint16) {
	c.pushWord(c.pc)
	c.pc = vector
	c.tick(1)
	if c.OnRestart != nil {
		c.OnRestart(vector)
	}
}

// 8-bit arithmetic and logic.

func (c *CPU) addToA(value uint8, withCarry bool) {
	var carry uint16
	if withCarry && c.isSetFlag(carryFlag) {
		carry = 1
	}

	a := c.a
	result := uint16(a) + uint16(value) + carry
	c.a = uint8(result)

	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, uint16(a&0xF)+uint16(value&0xF)+carry > 0xF)
	c.setFlagToCondition(carryFlag, result > 0xFF)
}

func (c *CPU) subFromA(value uint8, withCarry, store bool) {
	var carry int16
	if withCarry && c.isSetFlag(carryFlag) {
		carry = 1
	}

	a := c.a
	result := int16(a) - int16(value) - carry
	if store {
		c.a = uint8(result)
	}

	c.setFlagToCondition(zeroFlag, uint8(result) == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, int16(a&0xF)-int16(value&0xF)-carry < 0)
	c.setFlagToCondition(carryFlag, result < 0)
}

func (c *CPU) and(value uint8) {
	c.a &= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) or(value uint8) {
	c.a |= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) xor(value uint8) {
	c.a ^= value
	c.setFlagToCondition(zeroFlag, c.a == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) inc(r *uint8) {
	*r++
	c.setFlagToCondition(zeroFlag, *r == 0)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, *r&0xF == 0)
}

func (c *CPU) dec(r *uint8) {
	*r--
	c.setFlagToCondition(zeroFlag, *r == 0)
	c.setFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, *r&0xF == 0xF)
}

// 16-bit arithmetic.

func (c *CPU) addToHL(value uint16) {
	hl := c.getHL()
	result := uint32(hl) + uint32(value)
	c.setHL(uint16(result))

	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (hl&0x0FFF)+(value&0x0FFF) > 0x0FFF)
	c.setFlagToCondition(carryFlag, result > 0xFFFF)
}

// offsetSP computes SP plus a signed offset with ADD SP,s8 flag semantics:
// half-carry and carry come from the low byte addition, Z and N clear.
func (c *CPU) offsetSP(offset int8) uint16 {
	sp := c.sp
	result := sp + uint16(int16(offset))

	c.resetFlag(zeroFlag)
	c.resetFlag(subFlag)
	c.setFlagToCondition(halfCarryFlag, (sp&0x0F)+uint16(uint8(offset)&0x0F) > 0x0F)
	c.setFlagToCondition(carryFlag, (sp&0xFF)+uint16(uint8(offset)) > 0xFF)
	return result
}

// Rotates, shifts and bit operations. These set Z from the result (the
// CB-prefixed semantics); the A-register forms clear Z afterwards.

func (c *CPU) rlc(r *uint8) {
	value := *r
	carry := value >> 7
	value = value<<1 | carry
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

func (c *CPU) rrc(r *uint8) {
	value := *r
	carry := value & 1
	value = value>>1 | carry<<7
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

func (c *CPU) rl(r *uint8) {
	value := *r
	oldCarry := c.flagToBit(carryFlag)
	carry := value >> 7
	value = value<<1 | oldCarry
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

func (c *CPU) rr(r *uint8) {
	value := *r
	oldCarry := c.flagToBit(carryFlag)
	carry := value & 1
	value = value>>1 | oldCarry<<7
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

func (c *CPU) sla(r *uint8) {
	value := *r
	carry := value >> 7
	value <<= 1
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

func (c *CPU) sra(r *uint8) {
	value := *r
	carry := value & 1
	value = value>>1 | value&0x80
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

func (c *CPU) swap(r *uint8) {
	value := *r<<4 | *r>>4
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.resetFlag(carryFlag)
}

func (c *CPU) srl(r *uint8) {
	value := *r
	carry := value & 1
	value >>= 1
	*r = value

	c.setFlagToCondition(zeroFlag, value == 0)
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry == 1)
}

func (c *CPU) bitTest(index, value uint8) {
	c.setFlagToCondition(zeroFlag, !bit.IsSet(index, value))
	c.resetFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

// A-register rotate forms: same operation, Z always cleared.

func (c *CPU) rlca() {
	c.rlc(&c.a)
	c.resetFlag(zeroFlag)
}

func (c *CPU) rrca() {
	c.rrc(&c.a)
	c.resetFlag(zeroFlag)
}

func (c *CPU) rla() {
	c.rl(&c.a)
	c.resetFlag(zeroFlag)
}

func (c *CPU) rra() {
	c.rr(&c.a)
	c.resetFlag(zeroFlag)
}

// CPU control.

func (c *CPU) daa() {
	a := c.a
	carry := c.isSetFlag(carryFlag)

	var correction uint8
	if c.isSetFlag(halfCarryFlag) || (!c.isSetFlag(subFlag) && a&0x0F > 0x09) {
		correction |= 0x06
	}
	if carry || (!c.isSetFlag(subFlag) && a > 0x99) {
		correction |= 0x60
		carry = true
	}

	if c.isSetFlag(subFlag) {
		a -= correction
	} else {
		a += correction
	}
	c.a = a

	c.setFlagToCondition(zeroFlag, a == 0)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, carry)
}

func (c *CPU) cpl() {
	c.a = ^c.a
	c.setFlag(subFlag)
	c.setFlag(halfCarryFlag)
}

func (c *CPU) scf() {
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlag(carryFlag)
}

func (c *CPU) ccf() {
	c.resetFlag(subFlag)
	c.resetFlag(halfCarryFlag)
	c.setFlagToCondition(carryFlag, !c.isSetFlag(carryFlag))
}

func (c *CPU) di() {
	c.ime = false
	c.imePending = false
}

func (c *CPU) ei() {
	c.imePending = true
}
