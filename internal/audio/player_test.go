package audio

import (
	"testing"
	"time"
)

func TestUninitializedPlayerIsSilentNoOp(t *testing.T) {
	p := NewPlayer()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("play without init panicked: %v", r)
		}
	}()

	p.PlayAdvance()
	p.PlayPass()
	p.PlayFail()
	p.SetEnabled(false)
	p.PlayPass()
	p.Close()
}

func TestInitFailureDisablesPlayer(t *testing.T) {
	p := NewPlayer()

	// Speaker init may fail in headless environments; either way the
	// player must stay usable.
	if err := p.Init(); err != nil {
		t.Logf("speaker init failed (expected without an audio device): %v", err)
		if err2 := p.Init(); err2 != nil {
			t.Errorf("second Init after failure should be a no-op, got %v", err2)
		}
	}
	p.PlayAdvance()
	p.Close()
}

func TestChimeStreamEnds(t *testing.T) {
	c := newChime(sampleRate, []note{
		{freq: 440, dur: 10 * time.Millisecond},
		{freq: 880, dur: 10 * time.Millisecond},
	})

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := c.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > sampleRate.N(time.Second) {
			t.Fatal("chime never ended")
		}
	}

	want := sampleRate.N(20 * time.Millisecond)
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestChimeSamplesBounded(t *testing.T) {
	c := newChime(sampleRate, []note{{freq: 523.25, dur: 50 * time.Millisecond}})
	buf := make([][2]float64, 4096)
	for {
		n, ok := c.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if v := buf[i][ch]; v > 1 || v < -1 {
					t.Fatalf("sample %v out of range", v)
				}
			}
		}
		if !ok {
			return
		}
	}
}
