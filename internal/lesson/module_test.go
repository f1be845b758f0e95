package lesson

import (
	"testing"
	"time"

	"github.com/npradeep/joule/internal/phase"
	"github.com/npradeep/joule/internal/quiz"
	"github.com/npradeep/joule/internal/topic"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func testTopic(t *testing.T, id string) topic.Topic {
	t.Helper()
	tp, ok := topic.NewRegistry().Get(id)
	if !ok {
		t.Fatalf("builtin topic %q missing", id)
	}
	return tp
}

// stepClock moves past both the settle delay and the debounce window so
// the next navigation is accepted.
func stepClock(c *fakeClock) {
	c.advance(500 * time.Millisecond)
}

func newModule(t *testing.T, id string, opts Options) (*Module, *fakeClock) {
	t.Helper()
	clk := &fakeClock{t: time.Unix(1000, 0)}
	opts.Clock = clk.now
	return New(testTopic(t, id), opts), clk
}

func TestNew_StartsAtHook(t *testing.T) {
	m, _ := newModule(t, "disk-seek", Options{})
	if m.Phase() != phase.Hook {
		t.Errorf("Phase() = %q, want hook", m.Phase())
	}
	pos, total := m.Position()
	if pos != 1 || total != phase.Count {
		t.Errorf("Position() = %d/%d, want 1/%d", pos, total, phase.Count)
	}
}

func TestNew_ResumeHint(t *testing.T) {
	m, _ := newModule(t, "disk-seek", Options{ResumePhase: "play"})
	if m.Phase() != phase.Play {
		t.Errorf("Phase() = %q, want play", m.Phase())
	}

	// Garbage hints fall back to the first phase.
	m, _ = newModule(t, "disk-seek", Options{ResumePhase: "warp"})
	if m.Phase() != phase.Hook {
		t.Errorf("Phase() = %q, want hook for invalid hint", m.Phase())
	}
}

func TestAdvance_GatedOnPrediction(t *testing.T) {
	m, clk := newModule(t, "disk-seek", Options{})
	stepClock(clk)
	if !m.Advance() {
		t.Fatal("hook should advance freely")
	}
	stepClock(clk)

	if m.Advance() {
		t.Error("predict phase advanced without a choice")
	}
	m.ChoosePrediction("b")
	if !m.Advance() {
		t.Error("predict phase should advance after a choice")
	}
	if m.Phase() != phase.Play {
		t.Errorf("Phase() = %q, want play", m.Phase())
	}
}

func TestAdvance_Debounced(t *testing.T) {
	m, clk := newModule(t, "disk-seek", Options{})
	stepClock(clk)
	if !m.Advance() {
		t.Fatal("first advance rejected")
	}
	// Immediately again: still in flight.
	if m.Advance() {
		t.Error("second advance accepted during settle window")
	}
	if m.Phase() != phase.Predict {
		t.Errorf("Phase() = %q, want predict", m.Phase())
	}
}

func TestSimulatingFollowsPhase(t *testing.T) {
	m, clk := newModule(t, "thermal-throttle", Options{ResumePhase: "predict"})
	if m.Simulating() {
		t.Error("simulating outside a play phase")
	}
	m.ChoosePrediction("b")
	stepClock(clk)
	if !m.Advance() {
		t.Fatal("advance to play rejected")
	}
	if !m.Simulating() {
		t.Error("thermal kernel should simulate in the play phase")
	}
	stepClock(clk)
	if !m.Back() {
		t.Fatal("back rejected")
	}
	if m.Simulating() {
		t.Error("simulating after leaving the play phase")
	}
}

func TestSimulating_StatelessKernelStaysOff(t *testing.T) {
	m, _ := newModule(t, "antenna-gain", Options{ResumePhase: "play"})
	if m.Simulating() {
		t.Error("antenna kernel has no timer and must not simulate")
	}
}

func TestTickSim_DroppedWhenNotSimulating(t *testing.T) {
	m, _ := newModule(t, "thermal-throttle", Options{ResumePhase: "play"})
	m.SetParam("workload", 100)
	before, _ := m.Status().Metric("temperature_c")

	// A late timer fire after the phase ended must not mutate state.
	m.nav.Init("review")
	m.syncSimulating()
	for i := 0; i < 100; i++ {
		m.TickSim(50)
	}
	after, _ := m.Status().Metric("temperature_c")
	if before != after {
		t.Errorf("temperature moved from %v to %v while not simulating", before, after)
	}
}

func TestChoosePrediction_RoutedBySlot(t *testing.T) {
	m, _ := newModule(t, "disk-seek", Options{ResumePhase: "twist_predict"})
	m.ChoosePrediction("c")
	if m.Prediction().HasAnswered() {
		t.Error("twist choice landed in the first prediction slot")
	}
	if m.TwistPrediction().Chosen() != "c" {
		t.Errorf("twist chosen = %q, want c", m.TwistPrediction().Chosen())
	}

	// Outside prediction phases the call is ignored.
	m, _ = newModule(t, "disk-seek", Options{ResumePhase: "review"})
	m.ChoosePrediction("a")
	if m.Prediction().HasAnswered() || m.TwistPrediction().HasAnswered() {
		t.Error("choice recorded outside a prediction phase")
	}
}

func TestTransferGatedOnGallery(t *testing.T) {
	m, clk := newModule(t, "disk-seek", Options{ResumePhase: "transfer"})
	stepClock(clk)
	total := len(m.Topic().Applications)
	for i := 0; i < total-1; i++ {
		m.MarkViewed(i)
		if m.Advance() {
			t.Fatalf("advanced with %d of %d cards viewed", i+1, total)
		}
	}
	m.MarkViewed(total - 1)
	if !m.Advance() {
		t.Error("full gallery should unlock the test phase")
	}
}

func TestSubmitQuiz_CallbacksFireOnce(t *testing.T) {
	var passes, fails int
	m, _ := newModule(t, "disk-seek", Options{
		Callbacks: Callbacks{
			OnPass: func() { passes++ },
			OnFail: func() { fails++ },
		},
	})

	key := m.Topic().QuizKey()
	for i := 0; i < quiz.NumQuestions; i++ {
		m.SetQuizAnswer(i, key[i])
	}
	if !m.SubmitQuiz() {
		t.Fatal("submit rejected with all answers set")
	}
	if m.SubmitQuiz() {
		t.Error("resubmission should be rejected")
	}
	if passes != 1 || fails != 0 {
		t.Errorf("passes=%d fails=%d, want 1/0", passes, fails)
	}
}

func TestSubmitQuiz_FailCallback(t *testing.T) {
	var passes, fails int
	m, _ := newModule(t, "disk-seek", Options{
		Callbacks: Callbacks{
			OnPass: func() { passes++ },
			OnFail: func() { fails++ },
		},
	})

	key := m.Topic().QuizKey()
	for i := 0; i < quiz.NumQuestions; i++ {
		// Answer everything wrong by picking a different id.
		wrong := "a"
		if key[i] == "a" {
			wrong = "b"
		}
		m.SetQuizAnswer(i, wrong)
	}
	if !m.SubmitQuiz() {
		t.Fatal("submit rejected")
	}
	if passes != 0 || fails != 1 {
		t.Errorf("passes=%d fails=%d, want 0/1", passes, fails)
	}
}

func TestEvents_Emitted(t *testing.T) {
	var got []Event
	m, clk := newModule(t, "thermal-throttle", Options{
		Emit: func(e Event) { got = append(got, e) },
	})
	stepClock(clk)

	m.Advance()             // hook -> predict
	m.ChoosePrediction("b") // prediction_made
	m.SetParam("workload", 80)
	m.MarkViewed(0)

	types := map[EventType]int{}
	for _, e := range got {
		types[e.Type]++
		if e.TopicID != "thermal-throttle" {
			t.Errorf("event TopicID = %q", e.TopicID)
		}
		if e.Timestamp.IsZero() {
			t.Error("event missing timestamp")
		}
	}
	for _, want := range []EventType{EventPhaseChange, EventPredictionMade, EventParamChanged, EventGalleryViewed} {
		if types[want] == 0 {
			t.Errorf("no %s event emitted", want)
		}
	}
}

func TestMasteryEventOnPassedEntry(t *testing.T) {
	var mastery int
	m, clk := newModule(t, "disk-seek", Options{
		Emit: func(e Event) {
			if e.Type == EventMasteryReached {
				mastery++
			}
		},
	})
	m.SyncExternal("test")
	key := m.Topic().QuizKey()
	for i := range key {
		m.SetQuizAnswer(i, key[i])
	}
	m.SubmitQuiz()
	stepClock(clk)
	if !m.Advance() {
		t.Fatal("submitted quiz should unlock mastery")
	}
	if m.Phase() != phase.Mastery {
		t.Fatalf("Phase() = %q, want mastery", m.Phase())
	}
	if mastery != 1 {
		t.Errorf("mastery events = %d, want 1", mastery)
	}
}

func TestSyncExternal_AppliesOnce(t *testing.T) {
	m, _ := newModule(t, "disk-seek", Options{})
	if !m.SyncExternal("review") {
		t.Fatal("first sync rejected")
	}
	if m.SyncExternal("test") {
		t.Error("second sync accepted")
	}
	if m.Phase() != phase.Review {
		t.Errorf("Phase() = %q, want review", m.Phase())
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	m, clk := newModule(t, "disk-seek", Options{})
	m.SyncExternal("predict")
	m.ChoosePrediction("b")
	stepClock(clk)
	m.Advance()
	m.MarkViewed(1)
	m.MarkViewed(3)
	m.SetQuizAnswer(0, "a")
	m.SetQuizAnswer(4, "c")

	snap := m.Snapshot()

	var events int
	restored := New(testTopic(t, "disk-seek"), Options{
		Emit: func(Event) { events++ },
	})
	restored.Restore(snap)

	if events != 0 {
		t.Errorf("restore emitted %d events, want 0", events)
	}
	if restored.Phase() != phase.Play {
		t.Errorf("restored phase = %q, want play", restored.Phase())
	}
	if restored.Prediction().Chosen() != "b" {
		t.Errorf("restored prediction = %q", restored.Prediction().Chosen())
	}
	if !restored.Gallery().IsViewed(1) || !restored.Gallery().IsViewed(3) || restored.Gallery().IsViewed(0) {
		t.Error("restored gallery set mismatch")
	}
	if restored.Quiz().Answer(0) != "a" || restored.Quiz().Answer(4) != "c" {
		t.Error("restored quiz answers mismatch")
	}
}

func TestRestore_RecomputesScore(t *testing.T) {
	m, _ := newModule(t, "disk-seek", Options{})
	key := m.Topic().QuizKey()
	for i := range key {
		m.SetQuizAnswer(i, key[i])
	}
	m.SubmitQuiz()
	snap := m.Snapshot()
	snap.QuizScore = 3 // tampered snapshot

	restored := New(testTopic(t, "disk-seek"), Options{})
	restored.Restore(snap)
	if !restored.Quiz().Submitted() {
		t.Fatal("restore dropped submission")
	}
	if restored.Quiz().Score() != quiz.NumQuestions {
		t.Errorf("restored score = %d, want %d", restored.Quiz().Score(), quiz.NumQuestions)
	}
}

// Full walkthrough: hook to mastery with two predictions, a full
// gallery, and a passing quiz.
func TestWalkthrough(t *testing.T) {
	m, clk := newModule(t, "thermal-throttle", Options{})

	step := func(want phase.Phase) {
		t.Helper()
		stepClock(clk)
		if !m.Advance() {
			t.Fatalf("advance to %q rejected at %q", want, m.Phase())
		}
		if m.Phase() != want {
			t.Fatalf("Phase() = %q, want %q", m.Phase(), want)
		}
	}

	step(phase.Predict)
	m.ChoosePrediction("a")
	step(phase.Play)
	m.SetParam("workload", 90)
	for i := 0; i < 20; i++ {
		m.TickSim(50)
	}
	step(phase.Review)
	step(phase.TwistPredict)
	m.ChoosePrediction("c")
	step(phase.TwistPlay)
	step(phase.TwistReview)
	step(phase.Transfer)
	for i := 0; i < len(m.Topic().Applications); i++ {
		m.MarkViewed(i)
	}
	step(phase.Test)
	key := m.Topic().QuizKey()
	for i := range key {
		m.SetQuizAnswer(i, key[i])
	}
	if !m.SubmitQuiz() {
		t.Fatal("submit rejected")
	}
	step(phase.Mastery)

	stepClock(clk)
	if m.Advance() {
		t.Error("mastery is the last phase")
	}
	if !m.Quiz().Passed() {
		t.Error("perfect score should pass")
	}
}
