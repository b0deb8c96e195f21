package main

import "github.com/spf13/cobra"

const currentReleaseVersion = "v0.1.0"

var romDir string

// rootCmd is the base for all c64 subcommands.
var rootCmd = &cobra.Command{
	Use:   "c64 [command]",
	Short: "c64 is a cycle-accurate Commodore 64 emulator",
	Long:  "c64 is a cycle-accurate Commodore 64 emulator",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&romDir, "roms", "", "directory holding basic.rom/chargen.rom/kernal.rom (default: resource directory)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpAudioCmd)
}
