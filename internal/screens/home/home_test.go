package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/npradeep/joule/internal/router"
	"github.com/npradeep/joule/internal/store"
	"github.com/npradeep/joule/internal/topic"
)

type mockEventRepo struct{}

func (m *mockEventRepo) AppendLessonEvent(_ context.Context, _ store.LessonEventData) error {
	return nil
}
func (m *mockEventRepo) AppendQuizEvent(_ context.Context, _ store.QuizEventData) error {
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

type mockSnapshotRepo struct {
	snap *store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snap = snap
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	return m.snap, nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestHomeScreen_MenuHasAllTopics(t *testing.T) {
	reg := topic.NewRegistry()
	h := New(reg, &mockEventRepo{}, &mockSnapshotRepo{}, nil)

	// Topics plus the progress and quit entries.
	want := reg.Len() + 2
	if got := len(h.menu.Items); got != want {
		t.Errorf("menu items = %d, want %d", got, want)
	}
}

func TestHomeScreen_BadgesFromSnapshot(t *testing.T) {
	reg := topic.NewRegistry()
	topics := reg.All()

	data := store.NewSnapshotData()
	prog := data.Topic(topics[0].ID)
	prog.Passed = true
	prog.BestScore = 9
	prog.Attempts = 2
	snapRepo := &mockSnapshotRepo{snap: &store.Snapshot{Timestamp: time.Now(), Data: data}}

	h := New(reg, &mockEventRepo{}, snapRepo, nil)

	if h.passedCount != 1 {
		t.Errorf("passedCount = %d, want 1", h.passedCount)
	}
	if h.menu.Items[0].Badge != "✓ passed" {
		t.Errorf("badge = %q, want %q", h.menu.Items[0].Badge, "✓ passed")
	}
}

func TestHomeScreen_EnterOpensLesson(t *testing.T) {
	reg := topic.NewRegistry()
	h := New(reg, &mockEventRepo{}, &mockSnapshotRepo{}, nil)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command for the selected topic")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a PushScreenMsg")
	}
}

func TestHomeScreen_View(t *testing.T) {
	reg := topic.NewRegistry()
	h := New(reg, &mockEventRepo{}, &mockSnapshotRepo{}, nil)
	h.SetUpdateNote("v1.2.3")

	if v := h.View(100, 30); v == "" {
		t.Error("expected non-empty view")
	}
}
