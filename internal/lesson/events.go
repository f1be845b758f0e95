package lesson

import "time"

// EventType identifies a notification emitted by a Module.
type EventType string

const (
	EventPhaseChange    EventType = "phase_change"
	EventPredictionMade EventType = "prediction_made"
	EventParamChanged   EventType = "param_changed"
	EventGalleryViewed  EventType = "gallery_viewed"
	EventQuizSubmitted  EventType = "quiz_submitted"
	EventMasteryReached EventType = "mastery_reached"
)

// Event is the payload delivered to the emission hook. The module fires
// events and forgets them; nothing in the engine depends on an observer
// being attached.
type Event struct {
	Type       EventType
	TopicID    string
	TopicTitle string
	Details    map[string]any
	Timestamp  time.Time
}

// EmitFunc receives module events. It must not call back into the Module.
type EmitFunc func(Event)

// Callbacks are host hooks fired exactly once, at quiz submission.
type Callbacks struct {
	OnPass func()
	OnFail func()
}
