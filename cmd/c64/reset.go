package main

import (
	"fmt"
	"os"

	"github.com/kondrak/rust64-sub000/hardware"
	"github.com/spf13/cobra"
)

// resetFrames is how many frames reset runs before declaring the ROM set
// healthy; a KERNAL that hasn't reached its idle loop by then is treated as
// stuck rather than merely slow to boot.
const resetFrames = 120

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "boot a ROM set to the KERNAL reset vector and report whether the CPU jams",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func runReset(cmd *cobra.Command, args []string) error {
	m := hardware.New()
	if err := loadROMs(m.Memory, romDir); err != nil {
		return err
	}
	m.Reset()

	for i := 0; i < resetFrames; i++ {
		m.RunFrame()
		if m.CPU.Killed {
			pc := m.CPU.PC.Address()
			fmt.Fprintf(os.Stderr, "cpu jammed at $%04X after %d frames\n", pc, i+1)
			os.Exit(1)
		}
	}

	fmt.Println("reset ok")
	return nil
}
