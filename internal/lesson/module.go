// Package lesson composes the phase controller, simulation kernel,
// prediction and gallery trackers, and quiz engine into one generic
// module driven by a topic record. Screens talk to a Module; they never
// reach into the components directly.
package lesson

import (
	"time"

	"github.com/npradeep/joule/internal/gallery"
	"github.com/npradeep/joule/internal/kernel"
	"github.com/npradeep/joule/internal/nav"
	"github.com/npradeep/joule/internal/phase"
	"github.com/npradeep/joule/internal/predict"
	"github.com/npradeep/joule/internal/quiz"
	"github.com/npradeep/joule/internal/topic"
)

// Options configures a Module at construction.
type Options struct {
	// ResumePhase positions the module at a saved phase. Invalid values
	// fall back to the first phase.
	ResumePhase string

	// Emit receives module events. Nil disables emission.
	Emit EmitFunc

	// Callbacks fire once at quiz submission.
	Callbacks Callbacks

	// Clock overrides time.Now for tests.
	Clock func() time.Time
}

// Module is one running lesson: a topic record plus the live state of
// every component. All methods are single-goroutine; the TUI event loop
// is the only caller.
type Module struct {
	topic topic.Topic
	nav   *nav.Controller
	kern  kernel.Kernel

	prediction      *predict.Tracker
	twistPrediction *predict.Tracker
	gallery         *gallery.Tracker
	quiz            *quiz.Engine

	simulating bool
	emit       EmitFunc
	callbacks  Callbacks
	now        func() time.Time
}

// New builds a Module for a topic.
func New(tp topic.Topic, opts Options) *Module {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	var nc *nav.Controller
	if opts.Clock != nil {
		nc = nav.NewWithClock(opts.Clock)
	} else {
		nc = nav.New()
	}
	nc.Init(opts.ResumePhase)

	m := &Module{
		topic:           tp,
		nav:             nc,
		kern:            tp.NewKernel(),
		prediction:      &predict.Tracker{},
		twistPrediction: &predict.Tracker{},
		gallery:         &gallery.Tracker{},
		quiz:            quiz.NewEngine(tp.PassThreshold),
		emit:            opts.Emit,
		callbacks:       opts.Callbacks,
		now:             now,
	}
	m.syncSimulating()
	return m
}

// Topic returns the topic record driving this module.
func (m *Module) Topic() topic.Topic {
	return m.topic
}

// Phase returns the current phase.
func (m *Module) Phase() phase.Phase {
	return m.nav.Current()
}

// Position returns the one-based phase position and the total count.
func (m *Module) Position() (int, int) {
	return m.nav.Position()
}

// PhaseLabel returns the topic's display label for the current phase.
func (m *Module) PhaseLabel() string {
	return m.topic.Label(m.nav.Current())
}

// NextAllowed reports whether the current phase permits advancing.
// Prediction phases require a choice, the transfer phase requires the
// full gallery viewed, and the test phase requires a submitted quiz.
func (m *Module) NextAllowed() bool {
	switch m.nav.Current() {
	case phase.Predict:
		return m.prediction.HasAnswered()
	case phase.TwistPredict:
		return m.twistPrediction.HasAnswered()
	case phase.Transfer:
		return m.gallery.IsComplete(len(m.topic.Applications))
	case phase.Test:
		return m.quiz.Submitted()
	case phase.Mastery:
		return false
	default:
		return true
	}
}

// Advance moves to the next phase when gating and the navigation
// debounce both allow it.
func (m *Module) Advance() bool {
	if !m.NextAllowed() {
		return false
	}
	from := m.nav.Current()
	if !m.nav.Next() {
		return false
	}
	m.phaseChanged(from)
	return true
}

// Back returns to the previous phase. Never gated; a learner may always
// revisit earlier screens.
func (m *Module) Back() bool {
	from := m.nav.Current()
	if !m.nav.Back() {
		return false
	}
	m.phaseChanged(from)
	return true
}

// GoTo jumps to an arbitrary phase, subject to the navigation debounce.
// The host uses this for menu-driven jumps; gating is not applied.
func (m *Module) GoTo(target phase.Phase) bool {
	from := m.nav.Current()
	if !m.nav.GoTo(target) {
		return false
	}
	m.phaseChanged(from)
	return true
}

// SyncExternal adopts a late-arriving resume hint, at most once.
func (m *Module) SyncExternal(hint string) bool {
	from := m.nav.Current()
	if !m.nav.SyncExternal(hint) {
		return false
	}
	m.phaseChanged(from)
	return true
}

// phaseChanged runs the shared phase-entry work after any accepted
// navigation: kernel lifecycle, the simulating flag, and events.
func (m *Module) phaseChanged(from phase.Phase) {
	cur := m.nav.Current()
	if cur == phase.Play || cur == phase.TwistPlay {
		m.kern.Reset()
	}
	m.syncSimulating()

	pos, total := m.nav.Position()
	m.fire(EventPhaseChange, map[string]any{
		"from":     string(from),
		"to":       string(cur),
		"position": pos,
		"total":    total,
	})
	if cur == phase.Mastery && m.quiz.Passed() {
		m.fire(EventMasteryReached, map[string]any{
			"score": m.quiz.Score(),
			"total": quiz.NumQuestions,
		})
	}
}

// syncSimulating ties the simulating flag to the current phase. Kernels
// with no timer period stay off even in play phases.
func (m *Module) syncSimulating() {
	cur := m.nav.Current()
	m.simulating = (cur == phase.Play || cur == phase.TwistPlay) &&
		m.kern.TickInterval() > 0
}

// Simulating reports whether the host should be driving TickSim.
func (m *Module) Simulating() bool {
	return m.simulating
}

// TickSim advances the kernel by dtMs of simulated time. A tick that
// arrives after the module left a play phase is dropped; timer
// cancellation is cooperative, so late fires are expected.
func (m *Module) TickSim(dtMs float64) {
	if !m.simulating {
		return
	}
	m.kern.Tick(dtMs)
}

// Kernel exposes the simulation kernel for parameter display.
func (m *Module) Kernel() kernel.Kernel {
	return m.kern
}

// Status derives the kernel's render-ready snapshot.
func (m *Module) Status() kernel.Status {
	return m.kern.Status()
}

// SetParam clamps and stores a kernel parameter, then reports the
// applied value.
func (m *Module) SetParam(name string, value float64) {
	m.kern.SetParam(name, value)
	m.fire(EventParamChanged, map[string]any{
		"param": name,
		"value": m.kern.Param(name),
	})
}

// ChoosePrediction records an option for whichever prediction slot the
// current phase owns. Outside the two prediction phases it is a no-op.
func (m *Module) ChoosePrediction(optionID string) {
	var slot string
	var t *predict.Tracker
	var p topic.Prediction
	switch m.nav.Current() {
	case phase.Predict:
		slot, t, p = "predict", m.prediction, m.topic.Predict
	case phase.TwistPredict:
		slot, t, p = "twist_predict", m.twistPrediction, m.topic.TwistPredict
	default:
		return
	}
	t.Choose(optionID)
	if !t.HasAnswered() {
		return
	}
	m.fire(EventPredictionMade, map[string]any{
		"slot":    slot,
		"option":  t.Chosen(),
		"correct": t.IsCorrect(p.CorrectID),
	})
}

// Prediction returns the tracker for the first prediction slot.
func (m *Module) Prediction() *predict.Tracker {
	return m.prediction
}

// TwistPrediction returns the tracker for the twist prediction slot.
func (m *Module) TwistPrediction() *predict.Tracker {
	return m.twistPrediction
}

// MarkViewed records a gallery entry as seen.
func (m *Module) MarkViewed(index int) {
	if index < 0 || index >= len(m.topic.Applications) {
		return
	}
	m.gallery.MarkViewed(index)
	m.fire(EventGalleryViewed, map[string]any{
		"index":  index,
		"viewed": m.gallery.ViewedCount(),
		"total":  len(m.topic.Applications),
	})
}

// Gallery returns the gallery tracker for read access.
func (m *Module) Gallery() *gallery.Tracker {
	return m.gallery
}

// SetQuizAnswer records an answer for a question slot.
func (m *Module) SetQuizAnswer(questionIndex int, optionID string) {
	m.quiz.SetAnswer(questionIndex, optionID)
}

// SubmitQuiz scores the quiz against the topic's answer key. On the
// first successful submission it emits the quiz event and fires exactly
// one of the pass/fail callbacks.
func (m *Module) SubmitQuiz() bool {
	if !m.quiz.Submit(m.topic.QuizKey()) {
		return false
	}
	m.fire(EventQuizSubmitted, map[string]any{
		"score":  m.quiz.Score(),
		"total":  quiz.NumQuestions,
		"passed": m.quiz.Passed(),
	})
	if m.quiz.Passed() {
		if m.callbacks.OnPass != nil {
			m.callbacks.OnPass()
		}
	} else if m.callbacks.OnFail != nil {
		m.callbacks.OnFail()
	}
	return true
}

// Quiz returns the quiz engine for read access.
func (m *Module) Quiz() *quiz.Engine {
	return m.quiz
}

func (m *Module) fire(t EventType, details map[string]any) {
	if m.emit == nil {
		return
	}
	m.emit(Event{
		Type:       t,
		TopicID:    m.topic.ID,
		TopicTitle: m.topic.Title,
		Details:    details,
		Timestamp:  m.now(),
	})
}
