package store

import (
	"context"
	"testing"
	"time"
)

// openTestStore opens a named in-memory database. Naming it after the
// test keeps parallel tests from sharing state.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAndCountLessonEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LessonEventData{
		{TopicID: "disk-seek", TopicTitle: "Disk Seek", EventType: "phase_change",
			Details: map[string]any{"from": "hook", "to": "predict"}},
		{TopicID: "disk-seek", TopicTitle: "Disk Seek", EventType: "phase_change",
			Details: map[string]any{"from": "predict", "to": "play"}},
		{TopicID: "disk-seek", TopicTitle: "Disk Seek", EventType: "prediction_made",
			Details: map[string]any{"slot": "predict", "option": "b"}},
		{TopicID: "antenna-gain", TopicTitle: "Antenna Gain", EventType: "phase_change"},
	}
	for i, e := range events {
		if err := repo.AppendLessonEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	n, err := repo.CountLessonEvents(ctx, "disk-seek", "phase_change")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Errorf("phase_change count = %d, want 2", n)
	}

	n, err = repo.CountLessonEvents(ctx, "disk-seek", "")
	if err != nil {
		t.Fatalf("count all: %v", err)
	}
	if n != 3 {
		t.Errorf("all-type count = %d, want 3", n)
	}
}

func TestQuizAttemptsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	scores := []int{4, 6, 8}
	for _, sc := range scores {
		err := repo.AppendQuizEvent(ctx, QuizEventData{
			TopicID:       "thermal-throttle",
			Score:         sc,
			Total:         10,
			PassThreshold: 7,
			Passed:        sc >= 7,
		})
		if err != nil {
			t.Fatalf("append score %d: %v", sc, err)
		}
	}

	records, err := repo.QueryQuizAttempts(ctx, QueryOpts{TopicID: "thermal-throttle"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Score != 8 || records[2].Score != 4 {
		t.Errorf("records not newest-first: %+v", records)
	}

	limited, err := repo.QueryQuizAttempts(ctx, QueryOpts{TopicID: "thermal-throttle", Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 || limited[0].Score != 8 {
		t.Errorf("limit=1 should return the newest attempt, got %+v", limited)
	}
}

func TestQuizStatsAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No attempts yet.
	stats, err := repo.QuizStats(ctx, "disk-seek")
	if err != nil {
		t.Fatalf("stats (empty): %v", err)
	}
	if stats.Attempts != 0 || stats.BestScore != 0 || stats.Passed {
		t.Errorf("empty stats = %+v", stats)
	}

	for _, sc := range []int{5, 9, 7} {
		err := repo.AppendQuizEvent(ctx, QuizEventData{
			TopicID: "disk-seek", Score: sc, Total: 10, PassThreshold: 7, Passed: sc >= 7,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err = repo.QuizStats(ctx, "disk-seek")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Attempts != 3 {
		t.Errorf("attempts = %d, want 3", stats.Attempts)
	}
	if stats.BestScore != 9 {
		t.Errorf("best = %d, want 9", stats.BestScore)
	}
	if !stats.Passed {
		t.Error("passed should be true once any attempt passes")
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	data := NewSnapshotData()
	prog := data.Topic("disk-seek")
	prog.ResumePhase = "review"
	prog.BestScore = 8
	prog.Attempts = 2
	prog.Passed = true
	prog.LastPlayedAt = time.Now().UTC().Truncate(time.Second)

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{Sequence: 42, Timestamp: now, Data: data})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	got := snap.Data.Topics["disk-seek"]
	if got == nil {
		t.Fatal("topic progress missing after round trip")
	}
	if got.ResumePhase != "review" || got.BestScore != 8 || !got.Passed {
		t.Errorf("topic progress = %+v", got)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      NewSnapshotData(),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      NewSnapshotData(),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      NewSnapshotData(),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"lesson_events", "quiz_events", "snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
