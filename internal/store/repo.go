package store

import (
	"context"
	"encoding/json"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	TopicID string // restrict to one topic ("" = all)
	Limit   int    // max results (0 = unlimited)
	After   int64  // sequence > After
}

// LessonEventData captures one module notification for appending.
type LessonEventData struct {
	TopicID    string
	TopicTitle string
	EventType  string
	Details    map[string]any
}

// QuizEventData captures one quiz submission for appending.
type QuizEventData struct {
	TopicID       string
	Score         int
	Total         int
	PassThreshold int
	Passed        bool
}

// QuizAttemptRecord is one historical quiz submission.
type QuizAttemptRecord struct {
	Sequence  int64
	Timestamp time.Time
	TopicID   string
	Score     int
	Total     int
	Passed    bool
}

// TopicQuizStats aggregates a topic's quiz history.
type TopicQuizStats struct {
	Attempts  int
	BestScore int
	Passed    bool
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLessonEvent records a module notification.
	AppendLessonEvent(ctx context.Context, data LessonEventData) error

	// AppendQuizEvent records a quiz submission.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// QueryQuizAttempts returns quiz submissions, newest first.
	QueryQuizAttempts(ctx context.Context, opts QueryOpts) ([]QuizAttemptRecord, error)

	// QuizStats aggregates the quiz history for one topic.
	QuizStats(ctx context.Context, topicID string) (TopicQuizStats, error)

	// CountLessonEvents returns how many events of one type a topic has
	// recorded. An empty eventType counts all of the topic's events.
	CountLessonEvents(ctx context.Context, topicID, eventType string) (int, error)
}

// TopicProgress is the per-topic slice of a snapshot.
type TopicProgress struct {
	ResumePhase  string    `json:"resume_phase"`
	BestScore    int       `json:"best_score"`
	Attempts     int       `json:"attempts"`
	Passed       bool      `json:"passed"`
	LastPlayedAt time.Time `json:"last_played_at"`

	// Lesson carries the serialized in-lesson state (predictions,
	// gallery views, quiz answers). The store treats it as opaque.
	Lesson json.RawMessage `json:"lesson,omitempty"`
}

// SnapshotData captures per-topic progress at a point in time.
type SnapshotData struct {
	Version int                       `json:"version"`
	Topics  map[string]*TopicProgress `json:"topics"`
}

// SnapshotVersion is the current SnapshotData schema version.
const SnapshotVersion = 1

// NewSnapshotData returns an empty snapshot at the current version.
func NewSnapshotData() SnapshotData {
	return SnapshotData{
		Version: SnapshotVersion,
		Topics:  make(map[string]*TopicProgress),
	}
}

// Topic returns the progress entry for a topic, creating it if absent.
func (d *SnapshotData) Topic(id string) *TopicProgress {
	if d.Topics == nil {
		d.Topics = make(map[string]*TopicProgress)
	}
	tp := d.Topics[id]
	if tp == nil {
		tp = &TopicProgress{}
		d.Topics[id] = tp
	}
	return tp
}

// Snapshot represents a point-in-time capture of lesson progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
