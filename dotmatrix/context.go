// Package dotmatrix is an emulator core for the original monochrome Game
// Boy (DMG) and Game Boy Color (CGB). A Context wires the CPU, timer,
// internal RAM and an attached cartridge to a 16-bit address bus; the host
// drives it one CPU tick at a time and observes bus traffic through
// callbacks. The PPU, APU, DMA, serial link and joypad are external
// collaborators reached through peripheral ports.
package dotmatrix

import (
	"errors"

	"github.com/emilos/go-dotmatrix/dotmatrix/addr"
	"github.com/emilos/go-dotmatrix/dotmatrix/cart"
	"github.com/emilos/go-dotmatrix/dotmatrix/cpu"
	"github.com/emilos/go-dotmatrix/dotmatrix/memory"
	"github.com/emilos/go-dotmatrix/dotmatrix/timer"
)

// ErrNoCartridge is returned by Tick when no cartridge is attached.
var ErrNoCartridge = errors.New("dotmatrix: no cartridge attached")

// Peripheral is an external collaborator mapped into the address space.
// Read returns the byte on the bus; Write returns the byte actually
// committed.
type Peripheral interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8) uint8
}

// Context owns one instance of every core component plus the optionally
// attached cartridge. Contexts are passed explicitly; the library keeps no
// process-wide current context.
type Context struct {
	cpu   *cpu.CPU
	timer *timer.Timer
	mem   *memory.Memory
	cart  *cart.Cartridge

	cgbMode bool

	// Video handles VRAM (0x8000-0x9FFF) and OAM (0xFE00-0xFE9F); nil
	// reads open bus.
	Video Peripheral
	// IO handles the I/O-page registers this core does not own; nil reads
	// open bus.
	IO Peripheral

	// UserData is an arbitrary host value carried by the context.
	UserData any

	// OnBusRead observes every completed bus read.
	OnBusRead func(ctx *Context, address uint16, value uint8)
	// OnBusWrite observes every completed bus write along with the byte
	// actually committed.
	OnBusWrite func(ctx *Context, address uint16, value, actual uint8)
	// OnInstructionFetch may veto execution of the fetched instruction,
	// reducing it to NOP semantics (fetch cycles only).
	OnInstructionFetch func(ctx *Context, pc uint16, opcode uint16) bool
	// OnInstructionExecute observes each dispatched instruction and
	// whether it decoded successfully.
	OnInstructionExecute func(ctx *Context, pc uint16, opcode uint16, ok bool)
	// OnInterruptService observes each serviced interrupt.
	OnInterruptService func(ctx *Context, interrupt int)
	// OnRestartVector observes RST jumps.
	OnRestartVector func(ctx *Context, vector uint16)
	// OnTimerOverflow observes TIMA overflow reloads.
	OnTimerOverflow func(ctx *Context)
}

// New creates a context with all components in DMG power-on state and no
// cartridge attached.
func New() *Context {
	ctx := &Context{
		timer: timer.New(),
		mem:   memory.New(),
	}
	ctx.cpu = cpu.New(ctx, ctx.consumeMachineCycles)

	ctx.timer.RequestInterrupt = func() {
		ctx.cpu.RequestInterrupt(addr.TimerInterrupt)
	}
	ctx.timer.OnOverflow = func() {
		if ctx.OnTimerOverflow != nil {
			ctx.OnTimerOverflow(ctx)
		}
	}

	ctx.cpu.OnDIVReset = ctx.timer.ResetDivider
	ctx.cpu.OnSpeedSwitch = ctx.timer.SetDoubleSpeed
	ctx.cpu.OnFetch = func(pc uint16, opcode uint16) bool {
		if ctx.OnInstructionFetch == nil {
			return true
		}
		return ctx.OnInstructionFetch(ctx, pc, opcode)
	}
	ctx.cpu.OnExecute = func(pc uint16, opcode uint16, ok bool) {
		if ctx.OnInstructionExecute != nil {
			ctx.OnInstructionExecute(ctx, pc, opcode, ok)
		}
	}
	ctx.cpu.OnInterrupt = func(interrupt int) {
		if ctx.OnInterruptService != nil {
			ctx.OnInterruptService(ctx, interrupt)
		}
	}
	ctx.cpu.OnRestart = func(vector uint16) {
		if ctx.OnRestartVector != nil {
			ctx.OnRestartVector(ctx, vector)
		}
	}

	return ctx
}

// consumeMachineCycles is the CPU's cycle sink: every machine cycle
// advances the timer, except while the CPU is stopped or mid-speed-switch.
func (ctx *Context) consumeMachineCycles(machineCycles int) {
	if ctx.cpu.Stopped() || ctx.cpu.SwitchingSpeed() {
		return
	}
	for i := 0; i < machineCycles; i++ {
		ctx.timer.Tick()
	}
}

// Attach inserts a cartridge and re-initializes the components. CGB mode is
// derived from the cartridge header's CGB flag.
func (ctx *Context) Attach(c *cart.Cartridge) {
	ctx.cart = c
	ctx.cgbMode = c.Header().SupportsCGB()
	ctx.reset()
}

// Detach removes the cartridge and resets the components to DMG state.
func (ctx *Context) Detach() {
	ctx.cart = nil
	ctx.cgbMode = false
	ctx.reset()
}

func (ctx *Context) reset() {
	ctx.cpu.Reset(ctx.cgbMode)
	ctx.timer.Reset(ctx.cgbMode)
	ctx.mem.Reset(ctx.cgbMode)
}

// Tick advances the emulation by one CPU instruction (or one idle machine
// cycle while halted). All other components advance through the machine
// cycles the instruction consumes.
func (ctx *Context) Tick() error {
	if ctx.cart == nil {
		return ErrNoCartridge
	}
	return ctx.cpu.Tick()
}

// CPU returns the processor.
func (ctx *Context) CPU() *cpu.CPU { return ctx.cpu }

// Timer returns the timer unit.
func (ctx *Context) Timer() *timer.Timer { return ctx.timer }

// Memory returns the internal RAM.
func (ctx *Context) Memory() *memory.Memory { return ctx.mem }

// Cartridge returns the attached cartridge, or nil.
func (ctx *Context) Cartridge() *cart.Cartridge { return ctx.cart }

// CGBMode reports whether the context runs in Game Boy Color mode.
func (ctx *Context) CGBMode() bool { return ctx.cgbMode }
