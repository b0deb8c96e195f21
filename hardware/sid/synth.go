package sid

// sidCyclesPerSample is how many SID clocks elapse per output sample at the
// fixed 44.1kHz this package renders at; wfAdd for each voice is derived
// from it so the oscillator phase rate tracks the programmed frequency
// regardless of how often Synthesize is called.
const sidCyclesPerSample = clockHz / sampleFreq

// SampleVolume records the current master-volume nibble into the digi ring,
// for programs that play back digitised samples by rewriting $D418's
// volume field far faster than the audio output's own sample rate.
// Nothing in this repository calls it (Machine's scheduler does not), and
// Synthesize does not read the ring: each output sample is scaled by the
// volume value current when that sample is rendered.
func (s *SID) SampleVolume() {
	s.digiRing[s.digiIdx] = s.volume
	s.digiIdx = (s.digiIdx + 1) % digiRingSize
}

// Synthesize renders len(dest) mono 16-bit samples at 44.1kHz into dest,
// advancing all three voices' oscillators and envelopes and running the
// shared filter. It is the only entry point that mutates audio-rate state;
// register writes from IOWrite only ever change targets this reads.
func (s *SID) Synthesize(dest []int16) {
	for i := range dest {
		dest[i] = s.nextSample()
	}
}

func (s *SID) nextSample() int16 {
	var unfiltered, filtered float64

	for i := range s.voices {
		v := &s.voices[i]
		v.advanceEnvelope()

		if i == 2 && s.muteV3 {
			continue
		}

		prev := v.wfCount
		if !v.test {
			v.wfCount += v.wfAdd
		}
		if v.sync && v.wfCount > 0x1000000 {
			s.voices[v.modulatee].wfCount = 0
		}
		v.wfCount &= 0xFFFFFF

		if (prev^v.wfCount)&0x100000 != 0 {
			v.clockNoise()
		}

		out := v.output(s.voices[v.modulator].wfCount)
		envelope := (float64(v.level) * float64(s.volume)) / float64(0xFFFFFF*0xF)
		centred := float64(int32(out)^0x8000) * envelope

		if s.filterSel[i] {
			filtered += centred
		} else {
			unfiltered += centred
		}
	}

	filtered = s.filter.apply(filtered)
	total := (unfiltered + filtered) / 4
	if total > 32767 {
		total = 32767
	}
	if total < -32768 {
		total = -32768
	}
	return int16(total)
}
