package nav

import (
	"testing"
	"time"

	"github.com/npradeep/joule/internal/phase"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestInit_DefaultsToFirstPhase(t *testing.T) {
	c := New()
	c.Init("")
	if c.Current() != phase.Hook {
		t.Errorf("Current = %s, want hook", c.Current())
	}
}

func TestInit_ValidResumeHint(t *testing.T) {
	c := New()
	c.Init("play")
	if c.Current() != phase.Play {
		t.Errorf("Current = %s, want play", c.Current())
	}
	// Idempotent with the same hint.
	c.Init("play")
	if c.Current() != phase.Play {
		t.Errorf("Current after re-init = %s, want play", c.Current())
	}
}

func TestInit_InvalidResumeHint(t *testing.T) {
	c := New()
	c.Init("definitely-not-a-phase")
	if c.Current() != phase.Hook {
		t.Errorf("Current = %s, want hook", c.Current())
	}
}

func TestGoTo_RejectsRapidRepeat(t *testing.T) {
	clk := newFakeClock()
	c := NewWithClock(clk.now)

	if !c.GoTo(phase.Predict) {
		t.Fatal("first GoTo should be accepted")
	}
	clk.advance(100 * time.Millisecond)
	if c.GoTo(phase.Play) {
		t.Error("second GoTo within 200ms should be rejected")
	}
	if c.Current() != phase.Predict {
		t.Errorf("Current = %s, want predict", c.Current())
	}

	clk.advance(SettleDelay)
	if !c.GoTo(phase.Play) {
		t.Error("GoTo after settle delay should be accepted")
	}
}

func TestGoTo_InFlightBlocksEvenAfterDebounce(t *testing.T) {
	clk := newFakeClock()
	c := NewWithClock(clk.now)

	c.GoTo(phase.Predict)
	clk.advance(250 * time.Millisecond) // past debounce, inside settle window
	if c.GoTo(phase.Play) {
		t.Error("GoTo inside settle window should be rejected")
	}
}

func TestGoTo_InvalidTargetSilentlyIgnored(t *testing.T) {
	clk := newFakeClock()
	c := NewWithClock(clk.now)

	if c.GoTo(phase.Phase("garbage")) {
		t.Error("invalid target should be rejected")
	}
	// A rejected move must not reset the debounce timer.
	if !c.GoTo(phase.Predict) {
		t.Error("valid GoTo after invalid one should be accepted")
	}
}

func TestNextBack_Boundaries(t *testing.T) {
	clk := newFakeClock()
	c := NewWithClock(clk.now)

	if c.Back() {
		t.Error("Back at first phase should be a no-op")
	}

	c.Init("mastery")
	clk.advance(time.Second)
	if c.Next() {
		t.Error("Next at last phase should be a no-op")
	}
}

func TestNext_WalksWholeFlow(t *testing.T) {
	clk := newFakeClock()
	c := NewWithClock(clk.now)

	for i := 0; i < phase.Count-1; i++ {
		clk.advance(time.Second)
		if !c.Next() {
			t.Fatalf("Next failed at step %d (%s)", i, c.Current())
		}
	}
	if c.Current() != phase.Mastery {
		t.Errorf("Current = %s, want mastery", c.Current())
	}
	pos, total := c.Position()
	if pos != 10 || total != 10 {
		t.Errorf("Position = %d/%d, want 10/10", pos, total)
	}
}

func TestSyncExternal_AppliedExactlyOnce(t *testing.T) {
	c := New()

	if !c.SyncExternal("twist_play") {
		t.Fatal("first sync with valid differing hint should apply")
	}
	if c.Current() != phase.TwistPlay {
		t.Errorf("Current = %s, want twist_play", c.Current())
	}
	if c.SyncExternal("test") {
		t.Error("second sync should not apply")
	}
	if c.Current() != phase.TwistPlay {
		t.Errorf("Current changed by second sync: %s", c.Current())
	}
}

func TestSyncExternal_BypassesDebounce(t *testing.T) {
	clk := newFakeClock()
	c := NewWithClock(clk.now)

	c.GoTo(phase.Predict)
	// Immediately after a user navigation, user GoTo is blocked but an
	// external sync is not.
	if !c.SyncExternal("review") {
		t.Error("external sync should bypass debounce")
	}
}

func TestSyncExternal_IgnoresInvalidAndCurrent(t *testing.T) {
	c := New()
	if c.SyncExternal("bogus") {
		t.Error("invalid hint should be ignored")
	}
	if c.SyncExternal("hook") {
		t.Error("hint equal to current phase should be ignored")
	}
	// Neither attempt should have consumed the one-shot.
	if !c.SyncExternal("test") {
		t.Error("valid hint after ignored ones should apply")
	}
}
