package store

import (
	"context"
	"fmt"

	"github.com/npradeep/joule/ent"
	"github.com/npradeep/joule/ent/lessonevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLessonEvent(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetTopicID(data.TopicID).
		SetTopicTitle(data.TopicTitle).
		SetEventType(data.EventType)
	if len(data.Details) > 0 {
		builder = builder.SetDetails(data.Details)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}

func (r *eventRepo) CountLessonEvents(ctx context.Context, topicID, eventType string) (int, error) {
	query := r.client.LessonEvent.Query().
		Where(lessonevent.TopicID(topicID))
	if eventType != "" {
		query = query.Where(lessonevent.EventType(eventType))
	}
	n, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count lesson events: %w", err)
	}
	return n, nil
}
