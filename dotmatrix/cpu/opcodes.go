package cpu

import "github.com/emilos/go-dotmatrix/dotmatrix/bit"

// NOP
// 0x00:
func opcode0x00(c *CPU) error {
	return nil
}

// LD BC, d16
// 0x01:
func opcode0x01(c *CPU) error {
	c.setBC(c.fetchWord())
	return nil
}

// LD (BC), A
// 0x02:
func opcode0x02(c *CPU) error {
	c.writeByte(c.getBC(), c.a)
	return nil
}

// INC BC
// 0x03:
func opcode0x03(c *CPU) error {
	c.setBC(c.getBC() + 1)
	c.tick(1)
	return nil
}

// INC B
// 0x04:
func opcode0x04(c *CPU) error {
	c.inc(&c.b)
	return nil
}

// DEC B
// 0x05:
func opcode0x05(c *CPU) error {
	c.dec(&c.b)
	return nil
}

// LD B, d8
// 0x06:
func opcode0x06(c *CPU) error {
	c.b = c.fetchByte()
	return nil
}

// RLCA
// 0x07:
func opcode0x07(c *CPU) error {
	c.rlca()
	return nil
}

// LD (a16), SP
// 0x08:
func opcode0x08(c *CPU) error {
	address := c.fetchWord()
	c.writeByte(address, bit.Low(c.sp))
	c.writeByte(address+1, bit.High(c.sp))
	return nil
}

// ADD HL, BC
// 0x09:
func opcode0x09(c *CPU) error {
	c.addToHL(c.getBC())
	c.tick(1)
	return nil
}

// LD A, (BC)
// 0x0A:
func opcode0x0A(c *CPU) error {
	c.a = c.readByte(c.getBC())
	return nil
}

// DEC BC
// 0x0B:
func opcode0x0B(c *CPU) error {
	c.setBC(c.getBC() - 1)
	c.tick(1)
	return nil
}

// INC C
// 0x0C:
func opcode0x0C(c *CPU) error {
	c.inc(&c.c)
	return nil
}

// DEC C
// 0x0D:
func opcode0x0D(c *CPU) error {
	c.dec(&c.c)
	return nil
}

// LD C, d8
// 0x0E:
func opcode0x0E(c *CPU) error {
	c.c = c.fetchByte()
	return nil
}

// RRCA
// 0x0F:
func opcode0x0F(c *CPU) error {
	c.rrca()
	return nil
}

// STOP
// 0x10:
func opcode0x10(c *CPU) error {
	c.fetchByte()
	c.enterStop()
	return nil
}

// LD DE, d16
// 0x11:
func opcode0x11(c *CPU) error {
	c.setDE(c.fetchWord())
	return nil
}

// LD (DE), A
// 0x12:
func opcode0x12(c *CPU) error {
	c.writeByte(c.getDE(), c.a)
	return nil
}

// INC DE
// 0x13:
func opcode0x13(c *CPU) error {
	c.setDE(c.getDE() + 1)
	c.tick(1)
	return nil
}

// INC D
// 0x14:
func opcode0x14(c *CPU) error {
	c.inc(&c.d)
	return nil
}

// DEC D
// 0x15:
func opcode0x15(c *CPU) error {
	c.dec(&c.d)
	return nil
}

// LD D, d8
// 0x16:
func opcode0x16(c *CPU) error {
	c.d = c.fetchByte()
	return nil
}

// RLA
// 0x17:
func opcode0x17(c *CPU) error {
	c.rla()
	return nil
}

// JR r8
// 0x18:
func opcode0x18(c *CPU) error {
	c.jr(condNone)
	return nil
}

// ADD HL, DE
// 0x19:
func opcode0x19(c *CPU) error {
	c.addToHL(c.getDE())
	c.tick(1)
	return nil
}

// LD A, (DE)
// 0x1A:
func opcode0x1A(c *CPU) error {
	c.a = c.readByte(c.getDE())
	return nil
}

// DEC DE
// 0x1B:
func opcode0x1B(c *CPU) error {
	c.setDE(c.getDE() - 1)
	c.tick(1)
	return nil
}

// INC E
// 0x1C:
func opcode0x1C(c *CPU) error {
	c.inc(&c.e)
	return nil
}

// DEC E
// 0x1D:
func opcode0x1D(c *CPU) error {
	c.dec(&c.e)
	return nil
}

// LD E, d8
// 0x1E:
func opcode0x1E(c *CPU) error {
	c.e = c.fetchByte()
	return nil
}

// RRA
// 0x1F:
func opcode0x1F(c *CPU) error {
	c.rra()
	return nil
}

// JR NZ, r8
// 0x20:
func opcode0x20(c *CPU) error {
	c.jr(condNZ)
	return nil
}

// LD HL, d16
// 0x21:
func opcode0x21(c *CPU) error {
	c.setHL(c.fetchWord())
	return nil
}

// LD (HL+), A
// 0x22:
func opcode0x22(c *CPU) error {
	c.writeByte(c.getHL(), c.a)
	c.setHL(c.getHL() + 1)
	return nil
}

// INC HL
// 0x23:
func opcode0x23(c *CPU) error {
	c.setHL(c.getHL() + 1)
	c.tick(1)
	return nil
}

// INC H
// 0x24:
func opcode0x24(c *CPU) error {
	c.inc(&c.h)
	return nil
}

// DEC H
// 0x25:
func opcode0x25(c *CPU) error {
	c.dec(&c.h)
	return nil
}

// LD H, d8
// 0x26:
func opcode0x26(c *CPU) error {
	c.h = c.fetchByte()
	return nil
}

// DAA
// 0x27:
func opcode0x27(c *CPU) error {
	c.daa()
	return nil
}

// JR Z, r8
// 0x28:
func opcode0x28(c *CPU) error {
	c.jr(condZ)
	return nil
}

// ADD HL, HL
// 0x29:
func opcode0x29(c *CPU) error {
	c.addToHL(c.getHL())
	c.tick(1)
	return nil
}

// LD A, (HL+)
// 0x2A:
func opcode0x2A(c *CPU) error {
	c.a = c.readByte(c.getHL())
	c.setHL(c.getHL() + 1)
	return nil
}

// DEC HL
// 0x2B:
func opcode0x2B(c *CPU) error {
	c.setHL(c.getHL() - 1)
	c.tick(1)
	return nil
}

// INC L
// 0x2C:
func opcode0x2C(c *CPU) error {
	c.inc(&c.l)
	return nil
}

// DEC L
// 0x2D:
func opcode0x2D(c *CPU) error {
	c.dec(&c.l)
	return nil
}

// LD L, d8
// 0x2E:
func opcode0x2E(c *CPU) error {
	c.l = c.fetchByte()
	return nil
}

// CPL
// 0x2F:
func opcode0x2F(c *CPU) error {
	c.cpl()
	return nil
}

// JR NC, r8
// 0x30:
func opcode0x30(c *CPU) error {
	c.jr(condNC)
	return nil
}

// LD SP, d16
// 0x31:
func opcode0x31(c *CPU) error {
	c.sp = c.fetchWord()
	return nil
}

// LD (HL-), A
// 0x32:
func opcode0x32(c *CPU) error {
	c.writeByte(c.getHL(), c.a)
	c.setHL(c.getHL() - 1)
	return nil
}

// INC SP
// 0x33:
func opcode0x33(c *CPU) error {
	c.sp++
	c.tick(1)
	return nil
}

// INC (HL)
// 0x34:
func opcode0x34(c *CPU) error {
	address := c.getHL()
	value := c.readByte(address)
	c.inc(&value)
	c.writeByte(address, value)
	return nil
}

// DEC (HL)
// 0x35:
func opcode0x35(c *CPU) error {
	address := c.getHL()
	value := c.readByte(address)
	c.dec(&value)
	c.writeByte(address, value)
	return nil
}

// LD (HL), d8
// 0x36:
func opcode0x36(c *CPU) error {
	value := c.fetchByte()
	c.writeByte(c.getHL(), value)
	return nil
}

// SCF
// 0x37:
func opcode0x37(c *CPU) error {
	c.scf()
	return nil
}

// JR C, r8
// 0x38:
func opcode0x38(c *CPU) error {
	c.jr(condC)
	return nil
}

// ADD HL, SP
// 0x39:
func opcode0x39(c *CPU) error {
	c.addToHL(c.sp)
	c.tick(1)
	return nil
}

// LD A, (HL-)
// 0x3A:
func opcode0x3A(c *CPU) error {
	c.a = c.readByte(c.getHL())
	c.setHL(c.getHL() - 1)
	return nil
}

// DEC SP
// 0x3B:
func opcode0x3B(c *CPU) error {
	c.sp--
	c.tick(1)
	return nil
}

// INC A
// 0x3C:
func opcode0x3C(c *CPU) error {
	c.inc(&c.a)
	return nil
}

// DEC A
// 0x3D:
func opcode0x3D(c *CPU) error {
	c.dec(&c.a)
	return nil
}

// LD A, d8
// 0x3E:
func opcode0x3E(c *CPU) error {
	c.a = c.fetchByte()
	return nil
}

// CCF
// 0x3F:
func opcode0x3F(c *CPU) error {
	c.ccf()
	return nil
}

// LD B, B
// 0x40:
func opcode0x40(c *CPU) error {
	c.b = c.b
	return nil
}

// LD B, C
// 0x41:
func opcode0x41(c *CPU) error {
	c.b = c.c
	return nil
}

// LD B, D
// 0x42:
func opcode0x42(c *CPU) error {
	c.b = c.d
	return nil
}

// LD B, E
// 0x43:
func opcode0x43(c *CPU) error {
	c.b = c.e
	return nil
}

// LD B, H
// 0x44:
func opcode0x44(c *CPU) error {
	c.b = c.h
	return nil
}

// LD B, L
// 0x45:
func opcode0x45(c *CPU) error {
	c.b = c.l
	return nil
}

// LD B, (HL)
// 0x46:
func opcode0x46(c *CPU) error {
	c.b = c.readByte(c.getHL())
	return nil
}

// LD B, A
// 0x47:
func opcode0x47(c *CPU) error {
	c.b = c.a
	return nil
}

// LD C, B
// 0x48:
func opcode0x48(c *CPU) error {
	c.c = c.b
	return nil
}

// LD C, C
// 0x49:
func opcode0x49(c *CPU) error {
	c.c = c.c
	return nil
}

// LD C, D
// 0x4A:
func opcode0x4A(c *CPU) error {
	c.c = c.d
	return nil
}

// LD C, E
// 0x4B:
func opcode0x4B(c *CPU) error {
	c.c = c.e
	return nil
}

// LD C, H
// 0x4C:
func opcode0x4C(c *CPU) error {
	c.c = c.h
	return nil
}

// LD C, L
// 0x4D:
func opcode0x4D(c *CPU) error {
	c.c = c.l
	return nil
}

// LD C, (HL)
// 0x4E:
func opcode0x4E(c *CPU) error {
	c.c = c.readByte(c.getHL())
	return nil
}

// LD C, A
// 0x4F:
func opcode0x4F(c *CPU) error {
	c.c = c.a
	return nil
}

// LD D, B
// 0x50:
func opcode0x50(c *CPU) error {
	c.d = c.b
	return nil
}

// LD D, C
// 0x51:
func opcode0x51(c *CPU) error {
	c.d = c.c
	return nil
}

// LD D, D
// 0x52:
func opcode0x52(c *CPU) error {
	c.d = c.d
	return nil
}

// LD D, E
// 0x53:
func opcode0x53(c *CPU) error {
	c.d = c.e
	return nil
}

// LD D, H
// 0x54:
func opcode0x54(c *CPU) error {
	c.d = c.h
	return nil
}

// LD D, L
// 0x55:
func opcode0x55(c *CPU) error {
	c.d = c.l
	return nil
}

// LD D, (HL)
// 0x56:
func opcode0x56(c *CPU) error {
	c.d = c.readByte(c.getHL())
	return nil
}

// LD D, A
// 0x57:
func opcode0x57(c *CPU) error {
	c.d = c.a
	return nil
}

// LD E, B
// 0x58:
func opcode0x58(c *CPU) error {
	c.e = c.b
	return nil
}

// LD E, C
// 0x59:
func opcode0x59(c *CPU) error {
	c.e = c.c
	return nil
}

// LD E, D
// 0x5A:
func opcode0x5A(c *CPU) error {
	c.e = c.d
	return nil
}

// LD E, E
// 0x5B:
func opcode0x5B(c *CPU) error {
	c.e = c.e
	return nil
}

// LD E, H
// 0x5C:
func opcode0x5C(c *CPU) error {
	c.e = c.h
	return nil
}

// LD E, L
// 0x5D:
func opcode0x5D(c *CPU) error {
	c.e = c.l
	return nil
}

// LD E, (HL)
// 0x5E:
func opcode0x5E(c *CPU) error {
	c.e = c.readByte(c.getHL())
	return nil
}

// LD E, A
// 0x5F:
func opcode0x5F(c *CPU) error {
	c.e = c.a
	return nil
}

// LD H, B
// 0x60:
func opcode0x60(c *CPU) error {
	c.h = c.b
	return nil
}

// LD H, C
// 0x61:
func opcode0x61(c *CPU) error {
	c.h = c.c
	return nil
}

// LD H, D
// 0x62:
func opcode0x62(c *CPU) error {
	c.h = c.d
	return nil
}

// LD H, E
// 0x63:
func opcode0x63(c *CPU) error {
	c.h = c.e
	return nil
}

// LD H, H
// 0x64:
func opcode0x64(c *CPU) error {
	c.h = c.h
	return nil
}

// LD H, L
// 0x65:
func opcode0x65(c *CPU) error {
	c.h = c.l
	return nil
}

// LD H, (HL)
// 0x66:
func opcode0x66(c *CPU) error {
	c.h = c.readByte(c.getHL())
	return nil
}

// LD H, A
// 0x67:
func opcode0x67(c *CPU) error {
	c.h = c.a
	return nil
}

// LD L, B
// 0x68:
func opcode0x68(c *CPU) error {
	c.l = c.b
	return nil
}

// LD L, C
// 0x69:
func opcode0x69(c *CPU) error {
	c.l = c.c
	return nil
}

// LD L, D
// 0x6A:
func opcode0x6A(c *CPU) error {
	c.l = c.d
	return nil
}

// LD L, E
// 0x6B:
func opcode0x6B(c *CPU) error {
	c.l = c.e
	return nil
}

// LD L, H
// 0x6C:
func opcode0x6C(c *CPU) error {
	c.l = c.h
	return nil
}

// LD L, L
// 0x6D:
func opcode0x6D(c *CPU) error {
	c.l = c.l
	return nil
}

// LD L, (HL)
// 0x6E:
func opcode0x6E(c *CPU) error {
	c.l = c.readByte(c.getHL())
	return nil
}

// LD L, A
// 0x6F:
func opcode0x6F(c *CPU) error {
	c.l = c.a
	return nil
}

// LD (HL), B
// 0x70:
func opcode0x70(c *CPU) error {
	c.writeByte(c.getHL(), c.b)
	return nil
}

// LD (HL), C
// 0x71:
func opcode0x71(c *CPU) error {
	c.writeByte(c.getHL(), c.c)
	return nil
}

// LD (HL), D
// 0x72:
func opcode0x72(c *CPU) error {
	c.writeByte(c.getHL(), c.d)
	return nil
}

// LD (HL), E
// 0x73:
func opcode0x73(c *CPU) error {
	c.writeByte(c.getHL(), c.e)
	return nil
}

// LD (HL), H
// 0x74:
func opcode0x74(c *CPU) error {
	c.writeByte(c.getHL(), c.h)
	return nil
}

// LD (HL), L
// 0x75:
func opcode0x75(c *CPU) error {
	c.writeByte(c.getHL(), c.l)
	return nil
}

// HALT
// 0x76:
func opcode0x76(c *CPU) error {
	c.enterHalt()
	return nil
}

// LD (HL), A
// 0x77:
func opcode0x77(c *CPU) error {
	c.writeByte(c.getHL(), c.a)
	return nil
}

// LD A, B
// 0x78:
func opcode0x78(c *CPU) error {
	c.a = c.b
	return nil
}

// LD A, C
// 0x79:
func opcode0x79(c *CPU) error {
	c.a = c.c
	return nil
}

// LD A, D
// 0x7A:
func opcode0x7A(c *CPU) error {
	c.a = c.d
	return nil
}

// LD A, E
// 0x7B:
func opcode0x7B(c *CPU) error {
	c.a = c.e
	return nil
}

// LD A, H
// 0x7C:
func opcode0x7C(c *CPU) error {
	c.a = c.h
	return nil
}

// LD A, L
// 0x7D:
func opcode0x7D(c *CPU) error {
	c.a = c.l
	return nil
}

// LD A, (HL)
// 0x7E:
func opcode0x7E(c *CPU) error {
	c.a = c.readByte(c.getHL())
	return nil
}

// LD A, A
// 0x7F:
func opcode0x7F(c *CPU) error {
	c.a = c.a
	return nil
}

// ADD A, B
// 0x80:
func opcode0x80(c *CPU) error {
	c.addToA(c.b, false)
	return nil
}

// ADD A, C
// 0x81:
func opcode0x81(c *CPU) error {
	c.addToA(c.c, false)
	return nil
}

// ADD A, D
// 0x82:
func opcode0x82(c *CPU) error {
	c.addToA(c.d, false)
	return nil
}

// ADD A, E
// 0x83:
func opcode0x83(c *CPU) error {
	c.addToA(c.e, false)
	return nil
}

// ADD A, H
// 0x84:
func opcode0x84(c *CPU) error {
	c.addToA(c.h, false)
	return nil
}

// ADD A, L
// 0x85:
func opcode0x85(c *CPU) error {
	c.addToA(c.l, false)
	return nil
}

// ADD A, (HL)
// 0x86:
func opcode0x86(c *CPU) error {
	c.addToA(c.readByte(c.getHL()), false)
	return nil
}

// ADD A, A
// 0x87:
func opcode0x87(c *CPU) error {
	c.addToA(c.a, false)
	return nil
}

// ADC A, B
// 0x88:
func opcode0x88(c *CPU) error {
	c.addToA(c.b, true)
	return nil
}

// ADC A, C
// 0x89:
func opcode0x89(c *CPU) error {
	c.addToA(c.c, true)
	return nil
}

// ADC A, D
// 0x8A:
func opcode0x8A(c *CPU) error {
	c.addToA(c.d, true)
	return nil
}

// ADC A, E
// 0x8B:
func opcode0x8B(c *CPU) error {
	c.addToA(c.e, true)
	return nil
}

// ADC A, H
// 0x8C:
func opcode0x8C(c *CPU) error {
	c.addToA(c.h, true)
	return nil
}

// ADC A, L
// 0x8D:
func opcode0x8D(c *CPU) error {
	c.addToA(c.l, true)
	return nil
}

// ADC A, (HL)
// 0x8E:
func opcode0x8E(c *CPU) error {
	c.addToA(c.readByte(c.getHL()), true)
	return nil
}

// ADC A, A
// 0x8F:
func opcode0x8F(c *CPU) error {
	c.addToA(c.a, true)
	return nil
}

// SUB B
// 0x90:
func opcode0x90(c *CPU) error {
	c.subFromA(c.b, false, true)
	return nil
}

// SUB C
// 0x91:
func opcode0x91(c *CPU) error {
	c.subFromA(c.c, false, true)
	return nil
}

// SUB D
// 0x92:
func opcode0x92(c *CPU) error {
	c.subFromA(c.d, false, true)
	return nil
}

// SUB E
// 0x93:
func opcode0x93(c *CPU) error {
	c.subFromA(c.e, false, true)
	return nil
}

// SUB H
// 0x94:
func opcode0x94(c *CPU) error {
	c.subFromA(c.h, false, true)
	return nil
}

// SUB L
// 0x95:
func opcode0x95(c *CPU) error {
	c.subFromA(c.l, false, true)
	return nil
}

// SUB (HL)
// 0x96:
func opcode0x96(c *CPU) error {
	c.subFromA(c.readByte(c.getHL()), false, true)
	return nil
}

// SUB A
// 0x97:
func opcode0x97(c *CPU) error {
	c.subFromA(c.a, false, true)
	return nil
}

// SBC A, B
// 0x98:
func opcode0x98(c *CPU) error {
	c.subFromA(c.b, true, true)
	return nil
}

// SBC A, C
// 0x99:
func opcode0x99(c *CPU) error {
	c.subFromA(c.c, true, true)
	return nil
}

// SBC A, D
// 0x9A:
func opcode0x9A(c *CPU) error {
	c.subFromA(c.d, true, true)
	return nil
}

// SBC A, E
// 0x9B:
func opcode0x9B(c *CPU) error {
	c.subFromA(c.e, true, true)
	return nil
}

// SBC A, H
// 0x9C:
func opcode0x9C(c *CPU) error {
	c.subFromA(c.h, true, true)
	return nil
}

// SBC A, L
// 0x9D:
func opcode0x9D(c *CPU) error {
	c.subFromA(c.l, true, true)
	return nil
}

// SBC A, (HL)
// 0x9E:
func opcode0x9E(c *CPU) error {
	c.subFromA(c.readByte(c.getHL()), true, true)
	return nil
}

// SBC A, A
// 0x9F:
func opcode0x9F(c *CPU) error {
	c.subFromA(c.a, true, true)
	return nil
}

// AND B
// 0xA0:
func opcode0xA0(c *CPU) error {
	c.and(c.b)
	return nil
}

// AND C
// 0xA1:
func opcode0xA1(c *CPU) error {
	c.and(c.c)
	return nil
}

// AND D
// 0xA2:
func opcode0xA2(c *CPU) error {
	c.and(c.d)
	return nil
}

// AND E
// 0xA3:
func opcode0xA3(c *CPU) error {
	c.and(c.e)
	return nil
}

// AND H
// 0xA4:
func opcode0xA4(c *CPU) error {
	c.and(c.h)
	return nil
}

// AND L
// 0xA5:
func opcode0xA5(c *CPU) error {
	c.and(c.l)
	return nil
}

// AND (HL)
// 0xA6:
func opcode0xA6(c *CPU) error {
	c.and(c.readByte(c.getHL()))
	return nil
}

// AND A
// 0xA7:
func opcode0xA7(c *CPU) error {
	c.and(c.a)
	return nil
}

// XOR B
// 0xA8:
func opcode0xA8(c *CPU) error {
	c.xor(c.b)
	return nil
}

// XOR C
// 0xA9:
func opcode0xA9(c *CPU) error {
	c.xor(c.c)
	return nil
}

// XOR D
// 0xAA:
func opcode0xAA(c *CPU) error {
	c.xor(c.d)
	return nil
}

// XOR E
// 0xAB:
func opcode0xAB(c *CPU) error {
	c.xor(c.e)
	return nil
}

// XOR H
// 0xAC:
func opcode0xAC(c *CPU) error {
	c.xor(c.h)
	return nil
}

// XOR L
// 0xAD:
func opcode0xAD(c *CPU) error {
	c.xor(c.l)
	return nil
}

// XOR (HL)
// 0xAE:
func opcode0xAE(c *CPU) error {
	c.xor(c.readByte(c.getHL()))
	return nil
}

// XOR A
// 0xAF:
func opcode0xAF(c *CPU) error {
	c.xor(c.a)
	return nil
}

// OR B
// 0xB0:
func opcode0xB0(c *CPU) error {
	c.or(c.b)
	return nil
}

// OR C
// 0xB1:
func opcode0xB1(c *CPU) error {
	c.or(c.c)
	return nil
}

// OR D
// 0xB2:
func opcode0xB2(c *CPU) error {
	c.or(c.d)
	return nil
}

// OR E
// 0xB3:
func opcode0xB3(c *CPU) error {
	c.or(c.e)
	return nil
}

// OR H
// 0xB4:
func opcode0xB4(c *CPU) error {
	c.or(c.h)
	return nil
}

// OR L
// 0xB5:
func opcode0xB5(c *CPU) error {
	c.or(c.l)
	return nil
}

// OR (HL)
// 0xB6:
func opcode0xB6(c *CPU) error {
	c.or(c.readByte(c.getHL()))
	return nil
}

// OR A
// 0xB7:
func opcode0xB7(c *CPU) error {
	c.or(c.a)
	return nil
}

// CP B
// 0xB8:
func opcode0xB8(c *CPU) error {
	c.subFromA(c.b, false, false)
	return nil
}

// CP C
// 0xB9:
func opcode0xB9(c *CPU) error {
	c.subFromA(c.c, false, false)
	return nil
}

// CP D
// 0xBA:
func opcode0xBA(c *CPU) error {
	c.subFromA(c.d, false, false)
	return nil
}

// CP E
// 0xBB:
func opcode0xBB(c *CPU) error {
	c.subFromA(c.e, false, false)
	return nil
}

// CP H
// 0xBC:
func opcode0xBC(c *CPU) error {
	c.subFromA(c.h, false, false)
	return nil
}

// CP L
// 0xBD:
func opcode0xBD(c *CPU) error {
	c.subFromA(c.l, false, false)
	return nil
}

// CP (HL)
// 0xBE:
func opcode0xBE(c *CPU) error {
	c.subFromA(c.readByte(c.getHL()), false, false)
	return nil
}

// CP A
// 0xBF:
func opcode0xBF(c *CPU) error {
	c.subFromA(c.a, false, false)
	return nil
}

// RET NZ
// 0xC0:
func opcode0xC0(c *CPU) error {
	c.retCond(condNZ)
	return nil
}

// POP BC
// 0xC1:
func opcode0xC1(c *CPU) error {
	c.setBC(c.popWord())
	return nil
}

// JP NZ, a16
// 0xC2:
func opcode0xC2(c *CPU) error {
	c.jp(condNZ)
	return nil
}

// JP a16
// 0xC3:
func opcode0xC3(c *CPU) error {
	c.jp(condNone)
	return nil
}

// CALL NZ, a16
// 0xC4:
func opcode0xC4(c *CPU) error {
	c.call(condNZ)
	return nil
}

// PUSH BC
// 0xC5:
func opcode0xC5(c *CPU) error {
	c.push(c.getBC())
	return nil
}

// ADD A, d8
// 0xC6:
func opcode0xC6(c *CPU) error {
	c.addToA(c.fetchByte(), false)
	return nil
}

// RST 00H
// 0xC7:
func opcode0xC7(c *CPU) error {
	c.rst(0x00)
	return nil
}

// RET Z
// 0xC8:
func opcode0xC8(c *CPU) error {
	c.retCond(condZ)
	return nil
}

// RET
// 0xC9:
func opcode0xC9(c *CPU) error {
	c.ret()
	return nil
}

// JP Z, a16
// 0xCA:
func opcode0xCA(c *CPU) error {
	c.jp(condZ)
	return nil
}

// CALL Z, a16
// 0xCC:
func opcode0xCC(c *CPU) error {
	c.call(condZ)
	return nil
}

// CALL a16
// 0xCD:
func opcode0xCD(c *CPU) error {
	c.call(condNone)
	return nil
}

// ADC A, d8
// 0xCE:
func opcode0xCE(c *CPU) error {
	c.addToA(c.fetchByte(), true)
	return nil
}

// RST 08H
// 0xCF:
func opcode0xCF(c *CPU) error {
	c.rst(0x08)
	return nil
}

// RET NC
// 0xD0:
func opcode0xD0(c *CPU) error {
	c.retCond(condNC)
	return nil
}

// POP DE
// 0xD1:
func opcode0xD1(c *CPU) error {
	c.setDE(c.popWord())
	return nil
}

// JP NC, a16
// 0xD2:
func opcode0xD2(c *CPU) error {
	c.jp(condNC)
	return nil
}

// CALL NC, a16
// 0xD4:
func opcode0xD4(c *CPU) error {
	c.call(condNC)
	return nil
}

// PUSH DE
// 0xD5:
func opcode0xD5(c *CPU) error {
	c.push(c.getDE())
	return nil
}

// SUB d8
// 0xD6:
func opcode0xD6(c *CPU) error {
	c.subFromA(c.fetchByte(), false, true)
	return nil
}

// RST 10H
// 0xD7:
func opcode0xD7(c *CPU) error {
	c.rst(0x10)
	return nil
}

// RET C
// 0xD8:
func opcode0xD8(c *CPU) error {
	c.retCond(condC)
	return nil
}

// RETI
// 0xD9:
func opcode0xD9(c *CPU) error {
	c.reti()
	return nil
}

// JP C, a16
// 0xDA:
func opcode0xDA(c *CPU) error {
	c.jp(condC)
	return nil
}

// CALL C, a16
// 0xDC:
func opcode0xDC(c *CPU) error {
	c.call(condC)
	return nil
}

// SBC A, d8
// 0xDE:
func opcode0xDE(c *CPU) error {
	c.subFromA(c.fetchByte(), true, true)
	return nil
}

// RST 18H
// 0xDF:
func opcode0xDF(c *CPU) error {
	c.rst(0x18)
	return nil
}

// LDH (a8), A
// 0xE0:
func opcode0xE0(c *CPU) error {
	c.writeByte(0xFF00|uint16(c.fetchByte()), c.a)
	return nil
}

// POP HL
// 0xE1:
func opcode0xE1(c *CPU) error {
	c.setHL(c.popWord())
	return nil
}

// LD (C), A
// 0xE2:
func opcode0xE2(c *CPU) error {
	c.writeByte(0xFF00|uint16(c.c), c.a)
	return nil
}

// PUSH HL
// 0xE5:
func opcode0xE5(c *CPU) error {
	c.push(c.getHL())
	return nil
}

// AND d8
// 0xE6:
func opcode0xE6(c *CPU) error {
	c.and(c.fetchByte())
	return nil
}

// RST 20H
// 0xE7:
func opcode0xE7(c *CPU) error {
	c.rst(0x20)
	return nil
}

// ADD SP, r8
// 0xE8:
func opcode0xE8(c *CPU) error {
	offset := int8(c.fetchByte())
	c.sp = c.offsetSP(offset)
	c.tick(2)
	return nil
}

// JP HL
// 0xE9:
func opcode0xE9(c *CPU) error {
	c.pc = c.getHL()
	return nil
}

// LD (a16), A
// 0xEA:
func opcode0xEA(c *CPU) error {
	c.writeByte(c.fetchWord(), c.a)
	return nil
}

// XOR d8
// 0xEE:
func opcode0xEE(c *CPU) error {
	c.xor(c.fetchByte())
	return nil
}

// RST 28H
// 0xEF:
func opcode0xEF(c *CPU) error {
	c.rst(0x28)
	return nil
}

// LDH A, (a8)
// 0xF0:
func opcode0xF0(c *CPU) error {
	c.a = c.readByte(0xFF00 | uint16(c.fetchByte()))
	return nil
}

// POP AF
// 0xF1:
func opcode0xF1(c *CPU) error {
	c.setAF(c.popWord())
	return nil
}

// LD A, (C)
// 0xF2:
func opcode0xF2(c *CPU) error {
	c.a = c.readByte(0xFF00 | uint16(c.c))
	return nil
}

// DI
// 0xF3:
func opcode0xF3(c *CPU) error {
	c.di()
	return nil
}

// PUSH AF
// 0xF5:
func opcode0xF5(c *CPU) error {
	c.push(c.getAF())
	return nil
}

// OR d8
// 0xF6:
func opcode0xF6(c *CPU) error {
	c.or(c.fetchByte())
	return nil
}

// RST 30H
// 0xF7:
func opcode0xF7(c *CPU) error {
	c.rst(0x30)
	return nil
}

// LD HL, SP+r8
// 0xF8:
func opcode0xF8(c *CPU) error {
	offset := int8(c.fetchByte())
	c.setHL(c.offsetSP(offset))
	c.tick(1)
	return nil
}

// LD SP, HL
// 0xF9:
func opcode0xF9(c *CPU) error {
	c.sp = c.getHL()
	c.tick(1)
	return nil
}

// LD A, (a16)
// 0xFA:
func opcode0xFA(c *CPU) error {
	c.a = c.readByte(c.fetchWord())
	return nil
}

// EI
// 0xFB:
func opcode0xFB(c *CPU) error {
	c.ei()
	return nil
}

// CP d8
// 0xFE:
func opcode0xFE(c *CPU) error {
	c.subFromA(c.fetchByte(), false, false)
	return nil
}

// RST 38H
// 0xFF:
func opcode0xFF(c *CPU) error {
	c.rst(0x38)
	return nil
}
