// Command dotmatrix runs the emulator core headlessly: it attaches a ROM,
// drives the CPU for a fixed number of ticks and persists battery-backed
// cartridge RAM. Frame presentation, audio and input are host concerns and
// are not provided here.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/emilos/go-dotmatrix/dotmatrix"
	"github.com/emilos/go-dotmatrix/dotmatrix/cart"
)

func main() {
	app := cli.NewApp()
	app.Name = "dotmatrix"
	app.Description = "A DMG/CGB emulator core runner"
	app.Usage = "dotmatrix [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file (.gb/.gbc, or a .zip/.7z/.gz archive)",
		},
		cli.IntFlag{
			Name:  "ticks",
			Usage: "Number of CPU ticks to run",
			Value: 1_000_000,
		},
		cli.StringFlag{
			Name:  "save-dir",
			Usage: "Directory for battery save files (default: ROM directory)",
		},
		cli.BoolFlag{
			Name:  "no-battery",
			Usage: "Skip battery RAM persistence",
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "Log every executed instruction at debug level",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	if c.Bool("trace") {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(handler))
	}

	cartridge, err := cart.Open(romPath)
	if err != nil {
		return err
	}
	slog.Info("Loaded cartridge",
		"header", cartridge.Header().String(),
		"hash", cartridge.Hash(),
		"battery", cartridge.HasBattery())

	ctx := dotmatrix.New()
	ctx.Attach(cartridge)

	savePath := savePath(c.String("save-dir"), romPath, cartridge)
	if !c.Bool("no-battery") {
		if err := cartridge.LoadRAMFile(savePath, false); err != nil {
			return err
		}
	}

	if c.Bool("trace") {
		ctx.OnInstructionExecute = func(_ *dotmatrix.Context, pc uint16, opcode uint16, ok bool) {
			slog.Debug("executed", "pc", fmt.Sprintf("0x%04X", pc),
				"opcode", fmt.Sprintf("0x%04X", opcode), "ok", ok)
		}
	}

	ticks := c.Int("ticks")
	for i := 0; i < ticks; i++ {
		if err := ctx.Tick(); err != nil {
			slog.Error("Emulation stopped", "tick", i, "error", err)
			break
		}
		if ctx.CPU().Stopped() {
			slog.Info("CPU stopped", "tick", i)
			break
		}
	}

	if !c.Bool("no-battery") {
		if err := cartridge.SaveRAMFile(savePath, false); err != nil {
			return err
		}
	}

	cpu := ctx.CPU()
	fmt.Printf("AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X\n",
		cpu.AF(), cpu.BC(), cpu.DE(), cpu.HL(), cpu.SP(), cpu.PC())
	return nil
}

// savePath derives the battery save file location: an explicit directory if
// given, otherwise alongside the ROM, named after the image hash.
func savePath(dir, romPath string, c *cart.Cartridge) string {
	if dir == "" {
		dir = filepath.Dir(romPath)
	}
	return filepath.Join(dir, c.Hash()+".sav")
}
