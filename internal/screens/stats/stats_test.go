package stats

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/npradeep/joule/internal/router"
	"github.com/npradeep/joule/internal/store"
	"github.com/npradeep/joule/internal/topic"
)

type mockEventRepo struct {
	stats    map[string]store.TopicQuizStats
	attempts map[string][]store.QuizAttemptRecord
}

func (m *mockEventRepo) AppendLessonEvent(_ context.Context, _ store.LessonEventData) error {
	return nil
}
func (m *mockEventRepo) AppendQuizEvent(_ context.Context, _ store.QuizEventData) error {
	return nil
}
func (m *mockEventRepo) QueryQuizAttempts(_ context.Context, opts store.QueryOpts) ([]store.QuizAttemptRecord, error) {
	return m.attempts[opts.TopicID], nil
}
func (m *mockEventRepo) QuizStats(_ context.Context, topicID string) (store.TopicQuizStats, error) {
	return m.stats[topicID], nil
}
func (m *mockEventRepo) CountLessonEvents(_ context.Context, _, _ string) (int, error) {
	return 0, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testStatsScreen() (*StatsScreen, *topic.Registry) {
	reg := topic.NewRegistry()
	first := reg.All()[0]
	repo := &mockEventRepo{
		stats: map[string]store.TopicQuizStats{
			first.ID: {Attempts: 2, BestScore: 8, Passed: true},
		},
		attempts: map[string][]store.QuizAttemptRecord{
			first.ID: {
				{Timestamp: time.Now(), TopicID: first.ID, Score: 8, Total: 10, Passed: true},
				{Timestamp: time.Now().Add(-time.Hour), TopicID: first.ID, Score: 5, Total: 10},
			},
		},
	}
	return New(reg, repo), reg
}

func TestStatsScreen_LoadsAllTopics(t *testing.T) {
	s, reg := testStatsScreen()

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	msg, ok := cmd().(statsLoadedMsg)
	if !ok {
		t.Fatal("expected statsLoadedMsg")
	}
	if msg.Err != nil {
		t.Fatalf("load error: %v", msg.Err)
	}
	if len(msg.Topics) != reg.Len() {
		t.Errorf("loaded topics = %d, want %d", len(msg.Topics), reg.Len())
	}

	s.Update(msg)
	if !s.loaded {
		t.Error("expected screen marked loaded")
	}
	if v := s.View(100, 30); v == "" {
		t.Error("expected non-empty view")
	}
}

func TestStatsScreen_NavigationAndExpand(t *testing.T) {
	s, _ := testStatsScreen()
	cmd := s.Init()
	s.Update(cmd())

	s.Update(keyPress('j'))
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}

	s.Update(specialKey(tea.KeyEnter))
	if !s.expanded[1] {
		t.Error("expected row expanded")
	}

	_, popCmd := s.Update(specialKey(tea.KeyEscape))
	if popCmd == nil {
		t.Fatal("expected a pop command on esc")
	}
	if _, ok := popCmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
