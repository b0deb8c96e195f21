// Package sdl is the SDL2-backed front end: it owns the window, the
// renderer, the audio device and the keyboard event pump, and otherwise
// knows nothing about 6502 opcodes or VIC-II cycle timing. Every frame it
// asks hardware.Machine to run to the next vblank, blits the resulting
// pixel buffer, and queues whatever PCM the SID produced in the meantime.
package sdl

import (
	"fmt"

	"github.com/kondrak/rust64-sub000/gui/sdlaudio"
	"github.com/kondrak/rust64-sub000/hardware"
	"github.com/kondrak/rust64-sub000/hardware/keyboard"
	"github.com/kondrak/rust64-sub000/logger"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	screenWidth  = 320
	screenHeight = 200
)

// GUI drives one emulation session in its own SDL window.
type GUI struct {
	Machine *hardware.Machine
	Keys    *keyboard.Keyboard

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	audioDevice sdl.AudioDeviceID
	audioPrefs  *sdlaudio.Preferences
	audioBuf    []int16

	fpsLimiter *fpsLimiter

	scale int32
}

// NewGUI opens a window sized for the given integer pixel scale and an SDL
// audio device matched to the SID's fixed 44.1kHz mono output.
func NewGUI(m *hardware.Machine, scale int32) (*GUI, error) {
	if scale < 1 {
		scale = 2
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	g := &GUI{
		Machine: m,
		Keys:    keyboard.New(m.CIA1),
		scale:   scale,
	}

	var err error
	g.window, err = sdl.CreateWindow("rust64", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		screenWidth*scale, screenHeight*scale, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	g.renderer, err = sdl.CreateRenderer(g.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	g.texture, err = g.renderer.CreateTexture(sdl.PIXELFORMAT_ARGB8888, sdl.TEXTUREACCESS_STREAMING, screenWidth, screenHeight)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	g.audioPrefs, err = sdlaudio.NewPreferences()
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	spec := &sdl.AudioSpec{Freq: 44100, Format: sdl.AUDIO_S16SYS, Channels: 1, Samples: 1024}
	g.audioDevice, err = sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	sdl.PauseAudioDevice(g.audioDevice, false)
	g.audioBuf = make([]int16, 44100/50) // one PAL frame's worth of samples at 44.1kHz/50fps

	g.fpsLimiter, err = newFPSLimiter(50)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return g, nil
}

// Close releases every SDL resource the GUI opened.
func (g *GUI) Close() {
	sdl.CloseAudioDevice(g.audioDevice)
	g.texture.Destroy()
	g.renderer.Destroy()
	g.window.Destroy()
	sdl.Quit()
}

// Run drives the emulation until the window is closed or the CPU jams,
// returning the halting program counter in the latter case.
func (g *GUI) Run() error {
	for {
		if quit := g.pumpEvents(); quit {
			return nil
		}

		g.Machine.RunFrame()
		if g.Machine.CPU.Killed {
			pc := g.Machine.CPU.PC.Address()
			logger.Logf("sdl", "cpu halted at $%04X", pc)
			return fmt.Errorf("sdl: cpu jammed at $%04X", pc)
		}

		if err := g.blitFrame(); err != nil {
			return err
		}
		g.queueAudio()

		g.fpsLimiter.wait()
	}
}

func (g *GUI) blitFrame() error {
	pixels, pitch, err := g.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	frame := &g.Machine.VIC.Frame
	for y := 0; y < screenHeight; y++ {
		row := pixels[y*pitch : y*pitch+screenWidth*4]
		for x := 0; x < screenWidth; x++ {
			c := frame[y][x]
			off := x * 4
			row[off+0] = byte(c)
			row[off+1] = byte(c >> 8)
			row[off+2] = byte(c >> 16)
			row[off+3] = byte(c >> 24)
		}
	}
	g.texture.Unlock()

	g.renderer.Clear()
	if err := g.renderer.Copy(g.texture, nil, nil); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	g.renderer.Present()
	return nil
}

func (g *GUI) queueAudio() {
	if g.audioPrefs.Mute.Get() {
		return
	}
	g.Machine.SID.Synthesize(g.audioBuf)

	gain := float32(g.audioPrefs.Volume.Get()) / 100
	scaled := make([]int16, len(g.audioBuf))
	for i, s := range g.audioBuf {
		scaled[i] = int16(float32(s) * gain)
	}

	buf := make([]byte, len(scaled)*2)
	for i, s := range scaled {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}
	if err := sdl.QueueAudio(g.audioDevice, buf); err != nil {
		logger.Logf("sdl", "audio queue: %v", err)
	}
}

func (g *GUI) pumpEvents() (quit bool) {
	for {
		e := sdl.PollEvent()
		if e == nil {
			return false
		}
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			g.handleKey(ev)
		}
	}
}

func (g *GUI) handleKey(ev *sdl.KeyboardEvent) {
	k, ok := sdlKeymap[ev.Keysym.Sym]
	if !ok {
		return
	}
	if ev.State == sdl.PRESSED {
		g.Keys.KeyDown(k)
	} else {
		g.Keys.KeyUp(k)
	}
}
