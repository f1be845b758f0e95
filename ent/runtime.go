// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/npradeep/joule/ent/lessonevent"
	"github.com/npradeep/joule/ent/quizevent"
	"github.com/npradeep/joule/ent/schema"
	"github.com/npradeep/joule/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lessoneventMixin := schema.LessonEvent{}.Mixin()
	lessoneventMixinFields0 := lessoneventMixin[0].Fields()
	_ = lessoneventMixinFields0
	lessoneventFields := schema.LessonEvent{}.Fields()
	_ = lessoneventFields
	// lessoneventDescTimestamp is the schema descriptor for timestamp field.
	lessoneventDescTimestamp := lessoneventMixinFields0[1].Descriptor()
	// lessonevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	lessonevent.DefaultTimestamp = lessoneventDescTimestamp.Default.(func() time.Time)
	// lessoneventDescTopicID is the schema descriptor for topic_id field.
	lessoneventDescTopicID := lessoneventFields[0].Descriptor()
	// lessonevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	lessonevent.TopicIDValidator = lessoneventDescTopicID.Validators[0].(func(string) error)
	// lessoneventDescTopicTitle is the schema descriptor for topic_title field.
	lessoneventDescTopicTitle := lessoneventFields[1].Descriptor()
	// lessonevent.TopicTitleValidator is a validator for the "topic_title" field. It is called by the builders before save.
	lessonevent.TopicTitleValidator = lessoneventDescTopicTitle.Validators[0].(func(string) error)
	// lessoneventDescEventType is the schema descriptor for event_type field.
	lessoneventDescEventType := lessoneventFields[2].Descriptor()
	// lessonevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	lessonevent.EventTypeValidator = lessoneventDescEventType.Validators[0].(func(string) error)
	quizeventMixin := schema.QuizEvent{}.Mixin()
	quizeventMixinFields0 := quizeventMixin[0].Fields()
	_ = quizeventMixinFields0
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventMixinFields0[1].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
	// quizeventDescTopicID is the schema descriptor for topic_id field.
	quizeventDescTopicID := quizeventFields[0].Descriptor()
	// quizevent.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	quizevent.TopicIDValidator = quizeventDescTopicID.Validators[0].(func(string) error)
	// quizeventDescScore is the schema descriptor for score field.
	quizeventDescScore := quizeventFields[1].Descriptor()
	// quizevent.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	quizevent.ScoreValidator = quizeventDescScore.Validators[0].(func(int) error)
	// quizeventDescTotal is the schema descriptor for total field.
	quizeventDescTotal := quizeventFields[2].Descriptor()
	// quizevent.TotalValidator is a validator for the "total" field. It is called by the builders before save.
	quizevent.TotalValidator = quizeventDescTotal.Validators[0].(func(int) error)
	// quizeventDescPassThreshold is the schema descriptor for pass_threshold field.
	quizeventDescPassThreshold := quizeventFields[3].Descriptor()
	// quizevent.PassThresholdValidator is a validator for the "pass_threshold" field. It is called by the builders before save.
	quizevent.PassThresholdValidator = quizeventDescPassThreshold.Validators[0].(func(int) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
