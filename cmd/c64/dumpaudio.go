package main

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/kondrak/rust64-sub000/cartridgeloader"
	"github.com/kondrak/rust64-sub000/hardware"
	"github.com/kondrak/rust64-sub000/hardware/cartridge"
	"github.com/spf13/cobra"
)

var dumpAudioSeconds float64
var dumpAudioOut string

// dumpAudioCmd runs a cartridge headless for a fixed duration and renders
// whatever the SID produced to a wav file, so SID output can be inspected
// or diffed without an SDL audio device.
var dumpAudioCmd = &cobra.Command{
	Use:   "dump-audio [cartridge]",
	Short: "run a cartridge headless and render SID output to a wav file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDumpAudio,
}

func init() {
	dumpAudioCmd.Flags().Float64Var(&dumpAudioSeconds, "seconds", 5, "how many seconds of audio to render")
	dumpAudioCmd.Flags().StringVar(&dumpAudioOut, "out", "dump.wav", "output wav file path")
}

const sampleRate = 44100

func runDumpAudio(cmd *cobra.Command, args []string) error {
	m := hardware.New()
	if err := loadROMs(m.Memory, romDir); err != nil {
		return err
	}

	ld, err := cartridgeloader.NewLoaderFromFilename(args[0])
	if err != nil {
		return fmt.Errorf("dump-audio: %w", err)
	}
	cart, err := cartridge.Load(ld)
	if err != nil {
		return fmt.Errorf("dump-audio: %w", err)
	}
	cart.WriteInto(m.Memory)
	m.Reset()

	frames := int(dumpAudioSeconds * 50) // PAL frame rate
	samples := make([]int16, sampleRate/50)
	pcm := make([]int, 0, frames*len(samples))
	for i := 0; i < frames; i++ {
		m.RunFrame()
		if m.CPU.Killed {
			break
		}
		m.SID.Synthesize(samples)
		for _, s := range samples {
			pcm = append(pcm, int(s))
		}
	}

	out, err := os.Create(dumpAudioOut)
	if err != nil {
		return fmt.Errorf("dump-audio: %w", err)
	}
	defer out.Close()

	enc := wav.NewEncoder(out, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           pcm,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("dump-audio: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("dump-audio: %w", err)
	}

	fmt.Printf("wrote %d samples to %s\n", len(pcm), dumpAudioOut)
	return nil
}
