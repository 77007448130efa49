package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoads(t *testing.T) {
	t.Run("LD r, r", func(t *testing.T) {
		tc := newTestCPU()
		tc.b = 0x42
		tc.load(0x78) // LD A, B
		cycles := tc.step(t)
		assert.Equal(t, uint8(0x42), tc.a)
		assert.Equal(t, 1, cycles)
	})

	t.Run("LD r, d8", func(t *testing.T) {
		tc := newTestCPU()
		tc.load(0x06, 0x99) // LD B, 0x99
		cycles := tc.step(t)
		assert.Equal(t, uint8(0x99), tc.b)
		assert.Equal(t, 2, cycles)
	})

	t.Run("LD (HL), r and back", func(t *testing.T) {
		tc := newTestCPU()
		tc.setHL(0xC000)
		tc.a = 0x5A
		tc.load(0x77, 0x7E) // LD (HL), A; LD A, (HL)
		cycles := tc.step(t)
		assert.Equal(t, uint8(0x5A), tc.bus.mem[0xC000])
		assert.Equal(t, 2, cycles)

		tc.a = 0
		cycles = tc.step(t)
		assert.Equal(t, uint8(0x5A), tc.a)
		assert.Equal(t, 2, cycles)
	})

	t.Run("LD rr, d16", func(t *testing.T) {
		tc := newTestCPU()
		tc.load(0x21, 0xCD, 0xAB) // LD HL, 0xABCD
		cycles := tc.step(t)
		assert.Equal(t, uint16(0xABCD), tc.getHL())
		assert.Equal(t, 3, cycles)
	})

	t.Run("LD (HL+), A advances HL", func(t *testing.T) {
		tc := newTestCPU()
		tc.setHL(0xC000)
		tc.a = 0x11
		tc.load(0x22)
		tc.step(t)
		assert.Equal(t, uint8(0x11), tc.bus.mem[0xC000])
		assert.Equal(t, uint16(0xC001), tc.getHL())
	})

	t.Run("LD A, (HL-) walks down", func(t *testing.T) {
		tc := newTestCPU()
		tc.setHL(0xC005)
		tc.bus.mem[0xC005] = 0x77
		tc.load(0x3A)
		tc.step(t)
		assert.Equal(t, uint8(0x77), tc.a)
		assert.Equal(t, uint16(0xC004), tc.getHL())
	})

	t.Run("LDH (a8), A", func(t *testing.T) {
		tc := newTestCPU()
		tc.a = 0x3C
		tc.load(0xE0, 0x80) // LDH (0x80), A
		cycles := tc.step(t)
		assert.Equal(t, uint8(0x3C), tc.bus.mem[0xFF80])
		assert.Equal(t, 3, cycles)
	})

	t.Run("LD A, (C)", func(t *testing.T) {
		tc := newTestCPU()
		tc.c = 0x81
		tc.bus.mem[0xFF81] = 0x66
		tc.load(0xF2)
		cycles := tc.step(t)
		assert.Equal(t, uint8(0x66), tc.a)
		assert.Equal(t, 2, cycles)
	})

	t.Run("LD (a16), SP", func(t *testing.T) {
		tc := newTestCPU()
		tc.sp = 0xBEEF
		tc.load(0x08, 0x00, 0xC0) // LD (0xC000), SP
		cycles := tc.step(t)
		assert.Equal(t, uint8(0xEF), tc.bus.mem[0xC000])
		assert.Equal(t, uint8(0xBE), tc.bus.mem[0xC001])
		assert.Equal(t, 5, cycles)
	})
}

func TestArithmetic(t *testing.T) {
	flags := func(tc *testCPU) (z, n, h, cy bool) {
		return tc.isSetFlag(zeroFlag), tc.isSetFlag(subFlag),
			tc.isSetFlag(halfCarryFlag), tc.isSetFlag(carryFlag)
	}

	tests := []struct {
		name   string
		setup  func(*testCPU)
		code   []uint8
		wantA  uint8
		wantZ  bool
		wantN  bool
		wantH  bool
		wantC  bool
		cycles int
	}{
		{
			name:  "ADD half carry",
			setup: func(tc *testCPU) { tc.a = 0x0F; tc.b = 0x01 },
			code:  []uint8{0x80}, wantA: 0x10, wantH: true, cycles: 1,
		},
		{
			name:  "ADD full carry to zero",
			setup: func(tc *testCPU) { tc.a = 0xFF; tc.b = 0x01 },
			code:  []uint8{0x80}, wantA: 0x00, wantZ: true, wantH: true, wantC: true, cycles: 1,
		},
		{
			name:  "ADC uses carry in",
			setup: func(tc *testCPU) { tc.a = 0x00; tc.b = 0x00; tc.setFlag(carryFlag) },
			code:  []uint8{0x88}, wantA: 0x01, cycles: 1,
		},
		{
			name:  "SUB borrow",
			setup: func(tc *testCPU) { tc.a = 0x00; tc.b = 0x01 },
			code:  []uint8{0x90}, wantA: 0xFF, wantN: true, wantH: true, wantC: true, cycles: 1,
		},
		{
			name:  "SBC carry in",
			setup: func(tc *testCPU) { tc.a = 0x02; tc.b = 0x01; tc.setFlag(carryFlag) },
			code:  []uint8{0x98}, wantA: 0x00, wantZ: true, wantN: true, cycles: 1,
		},
		{
			name:  "AND sets half carry",
			setup: func(tc *testCPU) { tc.a = 0xF0; tc.b = 0x0F },
			code:  []uint8{0xA0}, wantA: 0x00, wantZ: true, wantH: true, cycles: 1,
		},
		{
			name:  "XOR clears",
			setup: func(tc *testCPU) { tc.a = 0xFF; tc.b = 0xFF },
			code:  []uint8{0xA8}, wantA: 0x00, wantZ: true, cycles: 1,
		},
		{
			name:  "OR",
			setup: func(tc *testCPU) { tc.a = 0xF0; tc.b = 0x0F },
			code:  []uint8{0xB0}, wantA: 0xFF, cycles: 1,
		},
		{
			name:  "CP leaves A alone",
			setup: func(tc *testCPU) { tc.a = 0x42; tc.b = 0x42 },
			code:  []uint8{0xB8}, wantA: 0x42, wantZ: true, wantN: true, cycles: 1,
		},
		{
			name:  "ADD (HL)",
			setup: func(tc *testCPU) { tc.a = 0x01; tc.setHL(0xC000); tc.bus.mem[0xC000] = 0x02 },
			code:  []uint8{0x86}, wantA: 0x03, cycles: 2,
		},
		{
			name:  "ADD d8",
			setup: func(tc *testCPU) { tc.a = 0x01 },
			code:  []uint8{0xC6, 0x05}, wantA: 0x06, cycles: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCPU()
			tt.setup(tc)
			tc.load(tt.code...)
			cycles := tc.step(t)

			assert.Equal(t, tt.wantA, tc.a, "A")
			z, n, h, cy := flags(tc)
			assert.Equal(t, tt.wantZ, z, "Z")
			assert.Equal(t, tt.wantN, n, "N")
			assert.Equal(t, tt.wantH, h, "H")
			assert.Equal(t, tt.wantC, cy, "C")
			assert.Equal(t, tt.cycles, cycles, "cycles")
		})
	}
}

func TestIncDec(t *testing.T) {
	t.Run("INC wraps and keeps carry", func(t *testing.T) {
		tc := newTestCPU()
		tc.a = 0xFF
		tc.setFlag(carryFlag)
		tc.load(0x3C)
		tc.step(t)
		assert.Equal(t, uint8(0), tc.a)
		assert.True(t, tc.isSetFlag(zeroFlag))
		assert.True(t, tc.isSetFlag(halfCarryFlag))
		assert.True(t, tc.isSetFlag(carryFlag), "INC leaves C untouched")
	})

	t.Run("DEC half borrow", func(t *testing.T) {
		tc := newTestCPU()
		tc.b = 0x10
		tc.load(0x05)
		tc.step(t)
		assert.Equal(t, uint8(0x0F), tc.b)
		assert.True(t, tc.isSetFlag(subFlag))
		assert.True(t, tc.isSetFlag(halfCarryFlag))
	})

	t.Run("INC (HL)", func(t *testing.T) {
		tc := newTestCPU()
		tc.setHL(0xC000)
		tc.bus.mem[0xC000] = 0x41
		tc.load(0x34)
		cycles := tc.step(t)
		assert.Equal(t, uint8(0x42), tc.bus.mem[0xC000])
		assert.Equal(t, 3, cycles)
	})

	t.Run("INC rr touches no flags", func(t *testing.T) {
		tc := newTestCPU()
		tc.setBC(0xFFFF)
		tc.f = 0
		tc.load(0x03)
		cycles := tc.step(t)
		assert.Equal(t, uint16(0), tc.getBC())
		assert.Equal(t, uint8(0), tc.f)
		assert.Equal(t, 2, cycles)
	})
}

func TestSixteenBitArithmetic(t *testing.T) {
	t.Run("ADD HL, rr", func(t *testing.T) {
		tc := newTestCPU()
		tc.setHL(0x0FFF)
		tc.setBC(0x0001)
		tc.setFlag(zeroFlag)
		tc.load(0x09)
		cycles := tc.step(t)
		assert.Equal(t, uint16(0x1000), tc.getHL())
		assert.True(t, tc.isSetFlag(zeroFlag), "Z unchanged")
		assert.False(t, tc.isSetFlag(subFlag))
		assert.True(t, tc.isSetFlag(halfCarryFlag), "carry out of bit 11")
		assert.False(t, tc.isSetFlag(carryFlag))
		assert.Equal(t, 2, cycles)
	})

	t.Run("ADD HL, rr full carry", func(t *testing.T) {
		tc := newTestCPU()
		tc.setHL(0x8000)
		tc.setDE(0x8000)
		tc.load(0x19)
		tc.step(t)
		assert.Equal(t, uint16(0), tc.getHL())
		assert.True(t, tc.isSetFlag(carryFlag))
	})

	t.Run("ADD SP, r8", func(t *testing.T) {
		tc := newTestCPU()
		tc.sp = 0xFFF8
		tc.load(0xE8, 0x08)
		cycles := tc.step(t)
		assert.Equal(t, uint16(0x0000), tc.sp)
		assert.False(t, tc.isSetFlag(zeroFlag), "Z forced clear")
		assert.True(t, tc.isSetFlag(halfCarryFlag))
		assert.True(t, tc.isSetFlag(carryFlag))
		assert.Equal(t, 4, cycles)
	})

	t.Run("ADD SP negative offset", func(t *testing.T) {
		tc := newTestCPU()
		tc.sp = 0x0100
		tc.load(0xE8, 0xFF) // SP - 1
		tc.step(t)
		assert.Equal(t, uint16(0x00FF), tc.sp)
	})

	t.Run("LD HL, SP+r8", func(t *testing.T) {
		tc := newTestCPU()
		tc.sp = 0xC000
		tc.load(0xF8, 0x02)
		cycles := tc.step(t)
		assert.Equal(t, uint16(0xC002), tc.getHL())
		assert.Equal(t, uint16(0xC000), tc.sp, "SP unchanged")
		assert.Equal(t, 3, cycles)
	})

	t.Run("LD SP, HL", func(t *testing.T) {
		tc := newTestCPU()
		tc.setHL(0xD000)
		tc.load(0xF9)
		cycles := tc.step(t)
		assert.Equal(t, uint16(0xD000), tc.sp)
		assert.Equal(t, 2, cycles)
	})
}

func TestStack(t *testing.T) {
	t.Run("PUSH then POP restores rr and SP", func(t *testing.T) {
		tc := newTestCPU()
		tc.setBC(0x1234)
		tc.sp = 0xDFF0
		tc.load(0xC5, 0xC1) // PUSH BC; POP BC

		cycles := tc.step(t)
		assert.Equal(t, 4, cycles, "PUSH")
		assert.Equal(t, uint16(0xDFEE), tc.sp)
		assert.Equal(t, uint8(0x12), tc.bus.mem[0xDFEF], "high byte pushed first")
		assert.Equal(t, uint8(0x34), tc.bus.mem[0xDFEE])

		tc.setBC(0)
		cycles = tc.step(t)
		assert.Equal(t, 3, cycles, "POP")
		assert.Equal(t, uint16(0x1234), tc.getBC())
		assert.Equal(t, uint16(0xDFF0), tc.sp)
	})

	t.Run("POP AF masks the low nibble", func(t *testing.T) {
		tc := newTestCPU()
		tc.sp = 0xC000
		tc.bus.mem[0xC000] = 0xFF // flags byte
		tc.bus.mem[0xC001] = 0x12
		tc.load(0xF1)
		tc.step(t)
		assert.Equal(t, uint16(0x12F0), tc.getAF())
	})
}

func TestBranches(t *testing.T) {
	t.Run("JR taken costs the extra cycle", func(t *testing.T) {
		tc := newTestCPU()
		tc.load(0x18, 0x05) // JR +5
		cycles := tc.step(t)
		assert.Equal(t, uint16(0x0107), tc.pc)
		assert.Equal(t, 3, cycles)
	})

	t.Run("JR backwards", func(t *testing.T) {
		tc := newTestCPU()
		tc.load(0x18, 0xFE) // JR -2: loop to self
		tc.step(t)
		assert.Equal(t, uint16(0x0100), tc.pc)
	})

	t.Run("JR not taken", func(t *testing.T) {
		tc := newTestCPU()
		tc.setFlag(zeroFlag)
		tc.load(0x20, 0x05) // JR NZ
		cycles := tc.step(t)
		assert.Equal(t, uint16(0x0102), tc.pc)
		assert.Equal(t, 2, cycles)
	})

	t.Run("JP", func(t *testing.T) {
		tc := newTestCPU()
		tc.load(0xC3, 0x00, 0xC0)
		cycles := tc.step(t)
		assert.Equal(t, uint16(0xC000), tc.pc)
		assert.Equal(t, 4, cycles)
	})

	t.Run("JP cc not taken", func(t *testing.T) {
		tc := newTestCPU()
		tc.load(0xDA, 0x00, 0xC0) // JP C
		cycles := tc.step(t)
		assert.Equal(t, uint16(0x0103), tc.pc)
		assert.Equal(t, 3, cycles)
	})

	t.Run("JP HL", func(t *testing.T) {
		tc := newTestCPU()
		tc.setHL(0xC123)
		tc.load(0xE9)
		cycles := tc.step(t)
		assert.Equal(t, uint16(0xC123), tc.pc)
		assert.Equal(t, 1, cycles)
	})

	t.Run("CALL and RET round trip", func(t *testing.T) {
		tc := newTestCPU()
		tc.sp = 0xDFF0
		tc.load(0xCD, 0x00, 0xC0) // CALL 0xC000
		tc.bus.mem[0xC000] = 0xC9 // RET

		cycles := tc.step(t)
		assert.Equal(t, uint16(0xC000), tc.pc)
		assert.Equal(t, uint16(0xDFEE), tc.sp)
		assert.Equal(t, 6, cycles, "CALL")

		cycles = tc.step(t)
		assert.Equal(t, uint16(0x0103), tc.pc, "returns past the CALL")
		assert.Equal(t, uint16(0xDFF0), tc.sp)
		assert.Equal(t, 4, cycles, "RET")
	})

	t.Run("conditional RET pays the condition cycle", func(t *testing.T) {
		tc := newTestCPU()
		tc.setFlag(zeroFlag)
		tc.load(0xC0) // RET NZ, not taken
		cycles := tc.step(t)
		assert.Equal(t, 2, cycles)

		tc.pc = 0x0100
		tc.sp = 0xC000
		tc.bus.mem[0xC000] = 0x00
		tc.bus.mem[0xC001] = 0xD0
		tc.load(0xC8) // RET Z, taken
		cycles = tc.step(t)
		assert.Equal(t, uint16(0xD000), tc.pc)
		assert.Equal(t, 5, cycles)
	})

	t.Run("RST", func(t *testing.T) {
		tc := newTestCPU()
		tc.sp = 0xDFF0
		var vectors []uint16
		tc.OnRestart = func(vector uint16) { vectors = append(vectors, vector) }
		tc.load(0xEF) // RST 28H

		cycles := tc.step(t)
		assert.Equal(t, uint16(0x0028), tc.pc)
		assert.Equal(t, 4, cycles)
		assert.Equal(t, []uint16{0x0028}, vectors)
		assert.Equal(t, uint8(0x01), tc.bus.mem[0xDFEF], "return address high")
		assert.Equal(t, uint8(0x01), tc.bus.mem[0xDFEE], "return address low")
	})
}

func TestDAA(t *testing.T) {
	// Each case runs the arithmetic instruction then DAA, the way real
	// BCD code does.
	tests := []struct {
		name  string
		a, b  uint8
		opSub bool
		want  uint8
		wantC bool
	}{
		{name: "15 + 27 = 42", a: 0x15, b: 0x27, want: 0x42},
		{name: "09 + 01 = 10", a: 0x09, b: 0x01, want: 0x10},
		{name: "90 + 10 = 00 carry", a: 0x90, b: 0x10, want: 0x00, wantC: true},
		{name: "99 + 01 = 00 carry", a: 0x99, b: 0x01, want: 0x00, wantC: true},
		{name: "42 - 13 = 29", a: 0x42, b: 0x13, opSub: true, want: 0x29},
		{name: "20 - 05 = 15", a: 0x20, b: 0x05, opSub: true, want: 0x15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCPU()
			tc.a = tt.a
			tc.b = tt.b
			if tt.opSub {
				tc.load(0x90, 0x27) // SUB B; DAA
			} else {
				tc.load(0x80, 0x27) // ADD A, B; DAA
			}
			tc.step(t)
			tc.step(t)
			assert.Equal(t, tt.want, tc.a)
			assert.Equal(t, tt.wantC, tc.isSetFlag(carryFlag))
		})
	}
}

func TestControl(t *testing.T) {
	t.Run("CPL", func(t *testing.T) {
		tc := newTestCPU()
		tc.a = 0x35
		tc.load(0x2F)
		tc.step(t)
		assert.Equal(t, uint8(0xCA), tc.a)
		assert.True(t, tc.isSetFlag(subFlag))
		assert.True(t, tc.isSetFlag(halfCarryFlag))
	})

	t.Run("SCF and CCF", func(t *testing.T) {
		tc := newTestCPU()
		tc.load(0x37, 0x3F, 0x3F)
		tc.step(t)
		assert.True(t, tc.isSetFlag(carryFlag))
		tc.step(t)
		assert.False(t, tc.isSetFlag(carryFlag))
		tc.step(t)
		assert.True(t, tc.isSetFlag(carryFlag))
	})
}

func TestRotatesAndShifts(t *testing.T) {
	t.Run("RLCA clears Z", func(t *testing.T) {
		tc := newTestCPU()
		tc.a = 0x80
		tc.load(0x07)
		tc.step(t)
		assert.Equal(t, uint8(0x01), tc.a)
		assert.True(t, tc.isSetFlag(carryFlag))
		assert.False(t, tc.isSetFlag(zeroFlag))
	})

	t.Run("RRA rotates through carry", func(t *testing.T) {
		tc := newTestCPU()
		tc.a = 0x01
		tc.load(0x1F, 0x1F) // RRA; RRA
		tc.step(t)
		assert.Equal(t, uint8(0x00), tc.a)
		assert.True(t, tc.isSetFlag(carryFlag))
		tc.step(t)
		assert.Equal(t, uint8(0x80), tc.a)
		assert.False(t, tc.isSetFlag(carryFlag))
	})

	t.Run("CB RLC sets Z", func(t *testing.T) {
		tc := newTestCPU()
		tc.b = 0x00
		tc.load(0xCB, 0x00) // RLC B
		cycles := tc.step(t)
		assert.True(t, tc.isSetFlag(zeroFlag))
		assert.Equal(t, 2, cycles)
	})

	t.Run("CB SRA keeps the sign bit", func(t *testing.T) {
		tc := newTestCPU()
		tc.d = 0x82
		tc.load(0xCB, 0x2A) // SRA D
		tc.step(t)
		assert.Equal(t, uint8(0xC1), tc.d)
	})

	t.Run("CB SRL shifts in zero", func(t *testing.T) {
		tc := newTestCPU()
		tc.a = 0x81
		tc.load(0xCB, 0x3F) // SRL A
		tc.step(t)
		assert.Equal(t, uint8(0x40), tc.a)
		assert.True(t, tc.isSetFlag(carryFlag))
	})

	t.Run("CB SWAP", func(t *testing.T) {
		tc := newTestCPU()
		tc.e = 0xAB
		tc.load(0xCB, 0x33) // SWAP E
		tc.step(t)
		assert.Equal(t, uint8(0xBA), tc.e)
	})

	t.Run("CB (HL) read-modify-write", func(t *testing.T) {
		tc := newTestCPU()
		tc.setHL(0xC000)
		tc.bus.mem[0xC000] = 0x01
		tc.load(0xCB, 0x06) // RLC (HL)
		cycles := tc.step(t)
		assert.Equal(t, uint8(0x02), tc.bus.mem[0xC000])
		assert.Equal(t, 4, cycles)
	})
}

func TestBitOps(t *testing.T) {
	t.Run("BIT", func(t *testing.T) {
		tc := newTestCPU()
		tc.h = 0x80
		tc.load(0xCB, 0x7C, 0xCB, 0x74) // BIT 7, H; BIT 6, H
		tc.step(t)
		assert.False(t, tc.isSetFlag(zeroFlag))
		assert.True(t, tc.isSetFlag(halfCarryFlag))
		tc.step(t)
		assert.True(t, tc.isSetFlag(zeroFlag))
	})

	t.Run("BIT (HL) costs three cycles", func(t *testing.T) {
		tc := newTestCPU()
		tc.setHL(0xC000)
		tc.load(0xCB, 0x46) // BIT 0, (HL)
		cycles := tc.step(t)
		assert.Equal(t, 3, cycles)
	})

	t.Run("RES and SET", func(t *testing.T) {
		tc := newTestCPU()
		tc.l = 0xFF
		tc.load(0xCB, 0x85, 0xCB, 0xC5) // RES 0, L; SET 0, L
		tc.step(t)
		assert.Equal(t, uint8(0xFE), tc.l)
		tc.step(t)
		assert.Equal(t, uint8(0xFF), tc.l)
	})

	t.Run("SET (HL)", func(t *testing.T) {
		tc := newTestCPU()
		tc.setHL(0xC000)
		tc.load(0xCB, 0xFE) // SET 7, (HL)
		cycles := tc.step(t)
		assert.Equal(t, uint8(0x80), tc.bus.mem[0xC000])
		assert.Equal(t, 4, cycles)
	})
}

func TestNOPTiming(t *testing.T) {
	tc := newTestCPU()
	tc.load(0x00)
	cycles := tc.step(t)
	assert.Equal(t, 1, cycles)
	assert.Equal(t, uint16(0x0101), tc.pc)
}

func TestEveryDefinedOpcodeDispatches(t *testing.T) {
	// The eleven unwired base opcodes and the 0xCB prefix are the only nil
	// table entries.
	illegal := map[uint8]bool{
		0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true,
		0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
	}

	for code := 0; code < 256; code++ {
		fn := opcodeTable[code]
		if code == 0xCB {
			require.Nil(t, fn, "0xCB is dispatched through the prefix table")
			continue
		}
		if illegal[uint8(code)] {
			require.Nil(t, fn, "opcode 0x%02X should be unwired", code)
		} else {
			require.NotNil(t, fn, "opcode 0x%02X missing", code)
		}
	}

	for code := 0; code < 256; code++ {
		require.NotNil(t, opcodeCBTable[code], "CB opcode 0x%02X missing", code)
	}
}
