// Command c64 is the emulator's command line entry point: run launches the
// SDL front end against a ROM set and an optional cartridge, reset checks
// that a ROM set boots to a KERNAL reset without jamming, version prints
// the build version, and dump-audio renders synthesized SID output to a
// wav file for offline inspection.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
