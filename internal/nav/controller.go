package nav

import (
	"time"

	"github.com/npradeep/joule/internal/phase"
)

const (
	// MinNavInterval is the minimum spacing between accepted navigations.
	MinNavInterval = 200 * time.Millisecond

	// SettleDelay holds the in-flight flag after an accepted navigation,
	// absorbing screen transition time.
	SettleDelay = 350 * time.Millisecond
)

// Controller owns the current phase and serializes navigation. Rapid
// repeated calls (double-press, re-entry during a transition) collapse
// into a single phase change.
type Controller struct {
	current       phase.Phase
	lastAccepted  time.Time
	inFlightUntil time.Time
	resumeUsed    bool

	now func() time.Time
}

// New creates a Controller positioned at the first phase.
func New() *Controller {
	return &Controller{
		current: phase.First(),
		now:     time.Now,
	}
}

// NewWithClock creates a Controller with an injected clock for tests.
func NewWithClock(now func() time.Time) *Controller {
	c := New()
	c.now = now
	return c
}

// Init positions the controller at resumeHint when it names a valid phase,
// otherwise at the first phase. Calling it again with the same hint is a
// no-op. Init does not count as a user navigation.
func (c *Controller) Init(resumeHint string) {
	if phase.IsValid(resumeHint) {
		c.current = phase.Phase(resumeHint)
		return
	}
	c.current = phase.First()
}

// Current returns the phase the module is in.
func (c *Controller) Current() phase.Phase {
	return c.current
}

// Position returns the one-based position of the current phase and the
// total phase count.
func (c *Controller) Position() (int, int) {
	return phase.IndexOf(c.current) + 1, phase.Count
}

// InFlight reports whether a navigation is still settling.
func (c *Controller) InFlight() bool {
	return c.now().Before(c.inFlightUntil)
}

// GoTo moves to target. Returns false, without error, when the target is
// invalid, a navigation is in flight, or the debounce interval has not
// elapsed. Invalid targets are rejected silently because phase names may
// come from untrusted persisted state.
func (c *Controller) GoTo(target phase.Phase) bool {
	if phase.IndexOf(target) < 0 {
		return false
	}
	now := c.now()
	if now.Before(c.inFlightUntil) {
		return false
	}
	if !c.lastAccepted.IsZero() && now.Sub(c.lastAccepted) < MinNavInterval {
		return false
	}

	c.current = target
	c.lastAccepted = now
	c.inFlightUntil = now.Add(SettleDelay)
	return true
}

// Next advances to the following phase. No-op at the last phase.
func (c *Controller) Next() bool {
	next, ok := phase.Next(c.current)
	if !ok {
		return false
	}
	return c.GoTo(next)
}

// Back returns to the preceding phase. No-op at the first phase.
func (c *Controller) Back() bool {
	prev, ok := phase.Prev(c.current)
	if !ok {
		return false
	}
	return c.GoTo(prev)
}

// SyncExternal adopts a phase hint supplied by the host after mount, e.g.
// from a loaded session. It applies at most once per controller, bypasses
// the debounce, and is ignored when the hint is invalid or already current.
func (c *Controller) SyncExternal(hint string) bool {
	if c.resumeUsed {
		return false
	}
	if !phase.IsValid(hint) {
		return false
	}
	target := phase.Phase(hint)
	if target == c.current {
		return false
	}
	c.current = target
	c.resumeUsed = true
	return true
}
