package lesson

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/npradeep/joule/internal/lesson"
	"github.com/npradeep/joule/internal/phase"
	"github.com/npradeep/joule/internal/store"
	"github.com/npradeep/joule/internal/topic"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	lessonEvents []store.LessonEventData
	quizEvents   []store.QuizEventData
}

func (m *mockEventRepo) AppendLessonEvent(_ context.Context, data store.LessonEventData) error {
	m.lessonEvents = append(m.lessonEvents, data)
	return nil
}
func (m *mockEventRepo) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) QueryQuizAttempts(_ context.Context, _ store.QueryOpts) ([]store.QuizAttemptRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QuizStats(_ context.Context, _ string) (store.TopicQuizStats, error) {
	return store.TopicQuizStats{}, nil
}
func (m *mockEventRepo) CountLessonEvents(_ context.Context, _, _ string) (int, error) {
	return 0, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

// step clears both the debounce and settle windows.
func (c *fakeClock) step() { c.t = c.t.Add(500 * time.Millisecond) }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testTopic(t *testing.T) topic.Topic {
	t.Helper()
	tp, ok := topic.NewRegistry().Get("disk-seek")
	if !ok {
		t.Fatal("disk-seek topic missing from registry")
	}
	return tp
}

// testLessonScreen builds a screen whose module runs on a fake clock so
// navigation debounce can be stepped deterministically.
func testLessonScreen(t *testing.T) (*LessonScreen, *mockEventRepo, *mockSnapshotRepo, *fakeClock) {
	t.Helper()
	tp := testTopic(t)
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	clk := &fakeClock{t: time.Unix(1000, 0)}

	s := New(tp, eventRepo, snapRepo, nil)
	s.mod = engine.New(tp, engine.Options{
		Emit:  s.persistEvent,
		Clock: clk.now,
	})
	s.rebuildPhaseUI()
	return s, eventRepo, snapRepo, clk
}

// goTo walks the module to a phase directly, bypassing gating the way a
// restored snapshot would.
func goTo(t *testing.T, s *LessonScreen, clk *fakeClock, target phase.Phase) {
	t.Helper()
	clk.step()
	if !s.mod.GoTo(target) {
		t.Fatalf("GoTo(%s) rejected", target)
	}
	s.rebuildPhaseUI()
	clk.step()
}

func TestLessonScreen_TitleAndBadge(t *testing.T) {
	s, _, _, _ := testLessonScreen(t)
	if s.Title() == "" {
		t.Error("expected a topic title")
	}
	if s.Badge() == "" {
		t.Error("expected a phase badge")
	}
}

func TestLessonScreen_HookAdvances(t *testing.T) {
	s, eventRepo, snapRepo, clk := testLessonScreen(t)
	clk.step()

	s.Update(specialKey(tea.KeyEnter))

	if got := s.mod.Phase(); got != phase.Predict {
		t.Errorf("phase = %s, want %s", got, phase.Predict)
	}
	if len(eventRepo.lessonEvents) != 1 {
		t.Fatalf("lesson events = %d, want 1", len(eventRepo.lessonEvents))
	}
	if eventRepo.lessonEvents[0].EventType != "phase_change" {
		t.Errorf("event type = %q, want phase_change", eventRepo.lessonEvents[0].EventType)
	}
	if len(snapRepo.snapshots) == 0 {
		t.Error("expected a snapshot after advancing")
	}
}

func TestLessonScreen_PredictGatesAdvance(t *testing.T) {
	s, _, _, clk := testLessonScreen(t)
	clk.step()
	s.Update(specialKey(tea.KeyEnter)) // hook -> predict
	clk.step()

	s.Update(specialKey(tea.KeyEnter)) // locks the highlighted option
	if !s.mod.Prediction().HasAnswered() {
		t.Fatal("expected prediction recorded after enter")
	}

	clk.step()
	s.Update(specialKey(tea.KeyEnter)) // now advances
	if got := s.mod.Phase(); got != phase.Play {
		t.Errorf("phase = %s, want %s", got, phase.Play)
	}
}

func TestLessonScreen_PredictChoiceNavigation(t *testing.T) {
	s, _, _, clk := testLessonScreen(t)
	clk.step()
	s.Update(specialKey(tea.KeyEnter))
	clk.step()

	s.Update(keyPress('j'))
	s.Update(specialKey(tea.KeyEnter))

	want := s.mod.Topic().Predict.Options[1].ID
	if got := s.mod.Prediction().Chosen(); got != want {
		t.Errorf("chosen = %q, want %q", got, want)
	}
}

func TestLessonScreen_QuitConfirm(t *testing.T) {
	s, _, snapRepo, _ := testLessonScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	if !s.showQuitConfirm {
		t.Fatal("expected quit confirmation after esc")
	}

	s.Update(keyPress('n'))
	if s.showQuitConfirm {
		t.Fatal("expected dialog dismissed by n")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a pop command after confirming")
	}
	if len(snapRepo.snapshots) == 0 {
		t.Error("expected progress saved on leave")
	}
}

func TestLessonScreen_TransferGatedOnGallery(t *testing.T) {
	s, _, _, clk := testLessonScreen(t)
	goTo(t, s, clk, phase.Transfer)

	s.Update(keyPress('n'))
	if got := s.mod.Phase(); got != phase.Transfer {
		t.Fatalf("advanced with unread cards, phase = %s", got)
	}

	apps := len(s.mod.Topic().Applications)
	for i := 0; i < apps; i++ {
		s.Update(specialKey(tea.KeyEnter))
		s.Update(keyPress('j'))
	}
	if !s.mod.Gallery().IsComplete(apps) {
		t.Fatal("expected all cards viewed")
	}

	clk.step()
	s.Update(keyPress('n'))
	if got := s.mod.Phase(); got != phase.Test {
		t.Errorf("phase = %s, want %s", got, phase.Test)
	}
}

func TestLessonScreen_QuizSubmitRecordsResult(t *testing.T) {
	s, eventRepo, snapRepo, clk := testLessonScreen(t)
	goTo(t, s, clk, phase.Test)

	questions := s.mod.Topic().Questions
	for range questions {
		q := questions[s.qIdx]
		correct := q.CorrectID()
		for i, o := range q.Options {
			if o.ID == correct {
				s.optIdx = i
			}
		}
		s.Update(specialKey(tea.KeyEnter))
	}
	if !s.mod.Quiz().AllAnswered() {
		t.Fatal("expected every question answered")
	}

	s.Update(keyPress('s'))
	if !s.mod.Quiz().Submitted() {
		t.Fatal("expected quiz submitted")
	}
	if got := s.mod.Quiz().Score(); got != len(questions) {
		t.Errorf("score = %d, want %d", got, len(questions))
	}

	if len(eventRepo.quizEvents) != 1 {
		t.Fatalf("quiz events = %d, want 1", len(eventRepo.quizEvents))
	}
	if !eventRepo.quizEvents[0].Passed {
		t.Error("expected a passing quiz event")
	}

	snap := snapRepo.snapshots[len(snapRepo.snapshots)-1]
	prog := snap.Data.Topics[s.mod.Topic().ID]
	if prog == nil {
		t.Fatal("expected topic progress in snapshot")
	}
	if prog.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", prog.Attempts)
	}
	if !prog.Passed {
		t.Error("expected progress marked passed")
	}
	if prog.BestScore != len(questions) {
		t.Errorf("best score = %d, want %d", prog.BestScore, len(questions))
	}
}

func TestLessonScreen_SimTickStopsOutsidePlay(t *testing.T) {
	s, _, _, _ := testLessonScreen(t)
	s.simActive = true

	_, cmd := s.Update(simTickMsg(time.Now()))
	if cmd != nil {
		t.Error("expected no re-arm outside a play phase")
	}
	if s.simActive {
		t.Error("expected the tick chain marked stopped")
	}
}

func TestLessonScreen_SimTickRearmsWhilePlaying(t *testing.T) {
	s, _, _, clk := testLessonScreen(t)
	goTo(t, s, clk, phase.Play)

	cmd := s.armSim()
	if cmd == nil {
		t.Fatal("expected a tick command in the play phase")
	}

	_, cmd = s.Update(simTickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected the tick chain to re-arm")
	}
	if s.spark == nil || s.spark.Len() == 0 {
		t.Error("expected a metric sample pushed")
	}
}

func TestLessonScreen_ResumeFromSnapshot(t *testing.T) {
	tp := testTopic(t)
	snapRepo := &mockSnapshotRepo{}

	// Seed progress as a previous run would have left it.
	st := engine.State{Phase: phase.Play, Prediction: tp.Predict.Options[0].ID}
	raw, err := json.Marshal(st)
	if err != nil {
		t.Fatal(err)
	}
	data := store.NewSnapshotData()
	prog := data.Topic(tp.ID)
	prog.ResumePhase = string(phase.Play)
	prog.Lesson = raw
	_ = snapRepo.Save(context.Background(), &store.Snapshot{Timestamp: time.Now(), Data: data})

	s := New(tp, nil, snapRepo, nil)
	if got := s.mod.Phase(); got != phase.Play {
		t.Errorf("resumed phase = %s, want %s", got, phase.Play)
	}
	if !s.mod.Prediction().HasAnswered() {
		t.Error("expected the saved prediction restored")
	}
	if !s.mod.Simulating() {
		t.Error("expected simulation live after resuming into play")
	}
}

func TestLessonScreen_ViewEveryPhase(t *testing.T) {
	s, _, _, clk := testLessonScreen(t)
	for _, p := range phase.Order() {
		if p != s.mod.Phase() {
			goTo(t, s, clk, p)
		}
		if v := s.View(100, 30); v == "" {
			t.Errorf("empty view for phase %s", p)
		}
	}
}

func TestLessonScreen_KeyHintsPerPhase(t *testing.T) {
	s, _, _, clk := testLessonScreen(t)
	for _, p := range []phase.Phase{phase.Hook, phase.Play, phase.Transfer, phase.Test, phase.Mastery} {
		if p != s.mod.Phase() {
			goTo(t, s, clk, p)
		}
		if len(s.KeyHints()) == 0 {
			t.Errorf("no key hints for phase %s", p)
		}
	}
}
