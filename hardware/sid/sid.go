// Package sid implements the 6581/8580 Sound Interface Device: three
// oscillator/envelope voices, ring and hard-sync modulation, a shared
// 2-pole IIR filter and the master volume register that the "volume
// register digi" trick abuses for sample playback.
//
// The SID does not run on the CPU's per-cycle Step; the real chip paces
// itself from its own clock and the CPU only ever pokes its registers.
// Synthesize advances the chip in blocks, called from the host audio
// callback rather than from Machine.Step, and is safe to call from a
// different goroutine than the one driving the CPU as long as the two
// never overlap (the Machine's audio sink is expected to hold a lock
// around both register writes and Synthesize calls).
package sid

// clockHz is the PAL SID clock; Synthesize converts a requested sample rate
// into how many of these clocks elapse per output sample.
const clockHz = 985248

// FilterType selects which combination of the biquad's outputs the mixer
// exposes, from $D418 bits 4-6.
type FilterType int

const (
	FilterNone FilterType = iota
	FilterLowpass
	FilterBandpass
	FilterLowBandpass
	FilterHighpass
	FilterNotch
	FilterHighBandpass
	FilterAll
)

// digiRingSize is the length of the master-volume history ring; programs
// that rewrite $D418's volume nibble every few cycles ("digi" playback)
// rely on samples further back in time than a single audio block, so the
// ring keeps the last 624 recorded volume values.
const digiRingSize = 624

// SID is one 6581/8580 instance.
type SID struct {
	voices [3]voice

	volume    uint8
	muteV3    bool
	filterSel [3]bool // which voices route through the filter
	filter    filterState

	lastByte uint8

	digiRing [digiRingSize]uint8
	digiIdx  int

	clockAccum uint32 // fractional SID clocks owed since the last Synthesize sample
}

// New constructs a SID at its documented power-on state (every register
// zero, filter off).
func New() *SID {
	s := &SID{}
	s.Reset()
	return s
}

// Reset silences every voice and clears the filter state.
func (s *SID) Reset() {
	for i := range s.voices {
		s.voices[i] = voice{}
		s.voices[i].attackAdd = egTable[0]
		s.voices[i].decaySub = egTable[0]
		s.voices[i].releaseSub = egTable[0]
	}
	s.voices[0].modulator, s.voices[0].modulatee = 2, 1
	s.voices[1].modulator, s.voices[1].modulatee = 0, 2
	s.voices[2].modulator, s.voices[2].modulatee = 1, 0

	s.volume = 0
	s.muteV3 = false
	s.filterSel = [3]bool{}
	s.filter = filterState{}
	s.filter.recalculate()
	s.digiRing = [digiRingSize]uint8{}
	s.digiIdx = 0
	s.lastByte = 0
}

// IORead implements the SID's 32-byte register window ($D400-$D41F,
// mirrored every 0x20 bytes by the caller). Almost every register is
// write-only on real silicon and returns the bus's last-driven value;
// $D419/$D41A (paddles) and $D41B/$D41C (oscillator 3 / envelope 3
// readback) are the exceptions.
func (s *SID) IORead(offset uint16) uint8 {
	switch offset {
	case 0x19, 0x1A: // POTX/POTY: no paddles wired up, float high
		return 0xFF
	case 0x1B: // OSC3: top 8 bits of voice 3's waveform counter
		return uint8(s.voices[2].wfCount >> 16)
	case 0x1C: // ENV3: voice 3's current envelope level
		return uint8(s.voices[2].level >> 16)
	default:
		return s.lastByte
	}
}

// IOWrite implements the SID's register window.
func (s *SID) IOWrite(offset uint16, val uint8) {
	s.lastByte = val

	if offset >= 0x20 {
		s.IOWrite(offset%0x20, val)
		return
	}

	if offset < 0x15 {
		v := &s.voices[offset/7]
		s.writeVoice(v, offset%7, val)
		return
	}

	switch offset {
	case 0x15:
		s.filter.cutoff = s.filter.cutoff&0x7F8 | uint16(val&0x07)
		s.filter.recalculate()
	case 0x16:
		s.filter.cutoff = s.filter.cutoff&0x007 | uint16(val)<<3
		s.filter.recalculate()
	case 0x17:
		s.filterSel[0] = val&0x01 != 0
		s.filterSel[1] = val&0x02 != 0
		s.filterSel[2] = val&0x04 != 0
		if r := val >> 4; r != s.filter.resonance {
			s.filter.resonance = r
			s.filter.recalculate()
		}
	case 0x18:
		s.volume = val & 0x0F
		s.muteV3 = val&0x80 != 0
		if t := FilterType((val >> 4) & 0x07); t != s.filter.kind {
			s.filter.kind = t
			s.filter.xn1, s.filter.xn2, s.filter.yn1, s.filter.yn2 = 0, 0, 0, 0
			s.filter.recalculate()
		}
	}
}

func (s *SID) writeVoice(v *voice, reg uint16, val uint8) {
	switch reg {
	case 0x00:
		v.freq = v.freq&0xFF00 | uint16(val)
		v.wfAdd = sidCyclesPerSample * uint32(v.freq)
	case 0x01:
		v.freq = v.freq&0x00FF | uint16(val)<<8
		v.wfAdd = sidCyclesPerSample * uint32(v.freq)
	case 0x02:
		v.pulseWidth = v.pulseWidth&0x0F00 | uint16(val)
	case 0x03:
		v.pulseWidth = v.pulseWidth&0x00FF | uint16(val&0x0F)<<8
	case 0x04:
		s.writeControl(v, val)
	case 0x05:
		v.attackAdd = egTable[val>>4]
		v.decaySub = egTable[val&0x0F]
	case 0x06:
		v.sustainLevel = uint32(val>>4) * 0x111111
		v.releaseSub = egTable[val&0x0F]
	}
}

func (s *SID) writeControl(v *voice, val uint8) {
	v.wave = waveform((val >> 4) & 0x0F)

	gate := val&0x01 != 0
	sync := val&0x02 != 0
	ring := val&0x04 != 0
	test := val&0x08 != 0

	if gate != v.gate {
		if gate {
			v.state = stateAttack
		} else if v.state != stateIdle {
			v.state = stateRelease
		}
		v.gate = gate
	}
	v.sync = sync
	v.ring = ring
	v.test = test
	if test {
		v.wfCount = 0
	}
}
