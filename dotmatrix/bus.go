package dotmatrix

import (
	"fmt"
	"log/slog"

	"github.com/emilos/go-dotmatrix/dotmatrix/addr"
)

// Read routes a bus read to the owning component and reports the observed
// byte through the bus-read callback. Unmapped or access-denied regions
// read open bus (0xFF).
func (ctx *Context) Read(address uint16) uint8 {
	value := ctx.busRead(address)
	if ctx.OnBusRead != nil {
		ctx.OnBusRead(ctx, address, value)
	}
	return value
}

// Write routes a bus write to the owning component and returns the byte
// actually committed (0xFF if rejected). The bus-write callback observes
// both the requested and the committed byte.
func (ctx *Context) Write(address uint16, value uint8) uint8 {
	actual := ctx.busWrite(address, value)
	if ctx.OnBusWrite != nil {
		ctx.OnBusWrite(ctx, address, value, actual)
	}
	return actual
}

func (ctx *Context) busRead(address uint16) uint8 {
	switch {
	case address <= addr.ROMEnd:
		if ctx.cart == nil {
			slog.Warn("bus read from ROM with no cartridge", "addr", fmt.Sprintf("0x%04X", address))
			return 0xFF
		}
		return ctx.cart.ReadROM(address)

	case address <= addr.VRAMEnd:
		return ctx.peripheralRead(ctx.Video, address)

	case address <= addr.ExtRAMEnd:
		if ctx.cart == nil {
			return 0xFF
		}
		return ctx.cart.ReadRAM(address - addr.ExtRAMStart)

	case address <= addr.WRAMEnd:
		return ctx.mem.ReadWRAM(address - addr.WRAMStart)

	case address <= addr.EchoEnd:
		return ctx.mem.ReadWRAM(address - addr.EchoStart)

	case address <= addr.OAMEnd:
		return ctx.peripheralRead(ctx.Video, address)

	case address <= addr.UnusedEnd:
		// Prohibited region.
		return 0xFF

	case address >= addr.HRAMStart && address <= addr.HRAMEnd:
		return ctx.mem.ReadHRAM(address - addr.HRAMStart)

	case address == addr.IE:
		return ctx.cpu.ReadIE()

	default:
		return ctx.readIO(address)
	}
}

func (ctx *Context) busWrite(address uint16, value uint8) uint8 {
	switch {
	case address <= addr.ROMEnd:
		if ctx.cart == nil {
			slog.Warn("bus write to ROM with no cartridge",
				"addr", fmt.Sprintf("0x%04X", address), "value", fmt.Sprintf("0x%02X", value))
			return 0xFF
		}
		return ctx.cart.WriteROM(address, value)

	case address <= addr.VRAMEnd:
		return ctx.peripheralWrite(ctx.Video, address, value)

	case address <= addr.ExtRAMEnd:
		if ctx.cart == nil {
			return 0xFF
		}
		return ctx.cart.WriteRAM(address-addr.ExtRAMStart, value)

	case address <= addr.WRAMEnd:
		ctx.mem.WriteWRAM(address-addr.WRAMStart, value)
		return value

	case address <= addr.EchoEnd:
		ctx.mem.WriteWRAM(address-addr.EchoStart, value)
		return value

	case address <= addr.OAMEnd:
		return ctx.peripheralWrite(ctx.Video, address, value)

	case address <= addr.UnusedEnd:
		// Prohibited region: writes are discarded.
		return 0xFF

	case address >= addr.HRAMStart && address <= addr.HRAMEnd:
		ctx.mem.WriteHRAM(address-addr.HRAMStart, value)
		return value

	case address == addr.IE:
		return ctx.cpu.WriteIE(value)

	default:
		return ctx.writeIO(address, value)
	}
}

// readIO dispatches the I/O register page (0xFF00-0xFF7F). Registers this
// core does not own are forwarded to the IO peripheral.
func (ctx *Context) readIO(address uint16) uint8 {
	switch address {
	case addr.DIV, addr.TIMA, addr.TMA, addr.TAC:
		return ctx.timer.Read(address)
	case addr.IF:
		return ctx.cpu.ReadIF()
	case addr.KEY0:
		return ctx.cpu.ReadKEY0()
	case addr.KEY1:
		return ctx.cpu.ReadKEY1()
	case addr.SVBK:
		return ctx.mem.ReadSVBK()
	}
	return ctx.peripheralRead(ctx.IO, address)
}

func (ctx *Context) writeIO(address uint16, value uint8) uint8 {
	switch address {
	case addr.DIV, addr.TIMA, addr.TMA, addr.TAC:
		return ctx.timer.Write(address, value)
	case addr.IF:
		return ctx.cpu.WriteIF(value)
	case addr.KEY0:
		return ctx.cpu.WriteKEY0(value)
	case addr.KEY1:
		return ctx.cpu.WriteKEY1(value)
	case addr.SVBK:
		return ctx.mem.WriteSVBK(value)
	}
	return ctx.peripheralWrite(ctx.IO, address, value)
}

func (ctx *Context) peripheralRead(p Peripheral, address uint16) uint8 {
	if p == nil {
		return 0xFF
	}
	return p.Read(address)
}

func (ctx *Context) peripheralWrite(p Peripheral, address uint16, value uint8) uint8 {
	if p == nil {
		return 0xFF
	}
	return p.Write(address, value)
}
