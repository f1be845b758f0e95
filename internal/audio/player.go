// Package audio plays short feedback chimes through the speaker. All of
// it is best-effort: when the audio device cannot be opened, or sound is
// disabled in config, every call is a silent no-op. Sound must never
// block or fail navigation.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and mixes feedback chimes into it.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	disabled    bool
}

// NewPlayer creates a Player. Call Init before use; an uninitialized
// player swallows every Play call.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Failure leaves the player permanently
// disabled and is reported once so the caller can log it.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || p.disabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.disabled = true
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetEnabled toggles sound at runtime.
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.disabled = !on
}

// Close silences the mixer. The speaker itself has no close; dropping
// all streamers is enough to stop output.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// PlayAdvance plays the short navigation blip.
func (p *Player) PlayAdvance() {
	p.play(newChime(sampleRate, []note{
		{freq: 880, dur: 60 * time.Millisecond},
	}))
}

// PlayPass plays the rising pass jingle.
func (p *Player) PlayPass() {
	p.play(newChime(sampleRate, []note{
		{freq: 523.25, dur: 120 * time.Millisecond}, // C5
		{freq: 659.25, dur: 120 * time.Millisecond}, // E5
		{freq: 783.99, dur: 200 * time.Millisecond}, // G5
	}))
}

// PlayFail plays the falling fail tone.
func (p *Player) PlayFail() {
	p.play(newChime(sampleRate, []note{
		{freq: 392.00, dur: 160 * time.Millisecond}, // G4
		{freq: 311.13, dur: 240 * time.Millisecond}, // Eb4
	}))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.disabled {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
