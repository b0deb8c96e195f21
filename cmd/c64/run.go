package main

import (
	"fmt"

	"github.com/kondrak/rust64-sub000/cartridgeloader"
	"github.com/kondrak/rust64-sub000/gui/sdl"
	"github.com/kondrak/rust64-sub000/hardware"
	"github.com/kondrak/rust64-sub000/hardware/cartridge"
	"github.com/spf13/cobra"
)

var runScale int

var runCmd = &cobra.Command{
	Use:   "run [cartridge]",
	Short: "run the emulator, optionally loading a cartridge or ROM image",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&runScale, "scale", 2, "integer pixel scale for the display window")
}

func runRun(cmd *cobra.Command, args []string) error {
	m := hardware.New()
	if err := loadROMs(m.Memory, romDir); err != nil {
		return err
	}

	if len(args) == 1 {
		ld, err := cartridgeloader.NewLoaderFromFilename(args[0])
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		cart, err := cartridge.Load(ld)
		if err != nil {
			return fmt.Errorf("run: %w", err)
		}
		// cartridge lines must be set before Reset: the reset vector fetch
		// at $FFFC/$FFFD depends on which bank (RAM, KERNAL or cartridge
		// ROM) is visible, and that's decided by EXROM/GAME.
		cart.WriteInto(m.Memory)
	}
	m.Reset()

	g, err := sdl.NewGUI(m, int32(runScale))
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}
	defer g.Close()

	return g.Run()
}
