package store

import (
	"context"
	"fmt"

	"github.com/npradeep/joule/ent"
	"github.com/npradeep/joule/ent/quizevent"
)

func (r *eventRepo) AppendQuizEvent(ctx context.Context, data QuizEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizEvent.Create().
		SetSequence(seqNum).
		SetTopicID(data.TopicID).
		SetScore(data.Score).
		SetTotal(data.Total).
		SetPassThreshold(data.PassThreshold).
		SetPassed(data.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryQuizAttempts(ctx context.Context, opts QueryOpts) ([]QuizAttemptRecord, error) {
	query := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldSequence))
	if opts.TopicID != "" {
		query = query.Where(quizevent.TopicID(opts.TopicID))
	}
	if opts.After > 0 {
		query = query.Where(quizevent.SequenceGT(opts.After))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}

	records := make([]QuizAttemptRecord, len(events))
	for i, e := range events {
		records[i] = QuizAttemptRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			TopicID:   e.TopicID,
			Score:     e.Score,
			Total:     e.Total,
			Passed:    e.Passed,
		}
	}
	return records, nil
}

func (r *eventRepo) QuizStats(ctx context.Context, topicID string) (TopicQuizStats, error) {
	events, err := r.client.QuizEvent.Query().
		Where(quizevent.TopicID(topicID)).
		All(ctx)
	if err != nil {
		return TopicQuizStats{}, fmt.Errorf("query quiz stats: %w", err)
	}

	var stats TopicQuizStats
	stats.Attempts = len(events)
	for _, e := range events {
		if e.Score > stats.BestScore {
			stats.BestScore = e.Score
		}
		if e.Passed {
			stats.Passed = true
		}
	}
	return stats, nil
}
