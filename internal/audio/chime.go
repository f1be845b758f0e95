package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// note is one tone in a chime sequence.
type note struct {
	freq float64
	dur  time.Duration
}

// chime streams a fixed sequence of sine tones, each with a short
// attack/release envelope so note boundaries don't click. The streamer
// ends after the last note; the mixer drops finished streamers itself.
type chime struct {
	sr    beep.SampleRate
	notes []note
	// per-note sample counts, precomputed
	lengths []int
	idx     int
	pos     int
}

func newChime(sr beep.SampleRate, notes []note) *chime {
	c := &chime{sr: sr, notes: notes, lengths: make([]int, len(notes))}
	for i, n := range notes {
		c.lengths[i] = sr.N(n.dur)
	}
	return c
}

func (c *chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.idx >= len(c.notes) {
			return i, i > 0
		}
		length := c.lengths[c.idx]
		nt := c.notes[c.idx]

		t := float64(c.pos) / float64(c.sr)
		sample := 0.25 * math.Sin(2*math.Pi*nt.freq*t)
		sample *= envelope(c.pos, length, c.sr)

		samples[i][0] = sample
		samples[i][1] = sample

		c.pos++
		if c.pos >= length {
			c.idx++
			c.pos = 0
		}
	}
	return len(samples), true
}

func (c *chime) Err() error {
	return nil
}

// envelope ramps 5 ms in and out of a note.
func envelope(pos, length int, sr beep.SampleRate) float64 {
	ramp := sr.N(5 * time.Millisecond)
	if ramp == 0 {
		return 1
	}
	if pos < ramp {
		return float64(pos) / float64(ramp)
	}
	if rem := length - pos; rem < ramp {
		return float64(rem) / float64(ramp)
	}
	return 1
}
