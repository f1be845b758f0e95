// Package topic defines the immutable per-lesson content record: phase
// labels, prediction sets, gallery applications, quiz questions and the
// kernel the play phases run. The engine receives a Topic and emits
// render-ready state; it never interprets the content itself.
package topic

import (
	"fmt"

	"github.com/npradeep/joule/internal/kernel"
	"github.com/npradeep/joule/internal/phase"
	"github.com/npradeep/joule/internal/quiz"
)

// Kind selects which simulation kernel a topic runs.
type Kind string

const (
	KindSeek    Kind = "seek"
	KindThermal Kind = "thermal"
	KindAntenna Kind = "antenna"
)

// NumApplications is the fixed gallery size.
const NumApplications = 4

// Option is one selectable answer.
type Option struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Correct bool   `json:"correct,omitempty"`
}

// Prediction is one of the two guess-before-you-play screens.
type Prediction struct {
	Prompt    string   `json:"prompt"`
	Options   []Option `json:"options"`
	CorrectID string   `json:"correct_id"`
}

// Question is one quiz entry. Exactly one option carries Correct.
type Question struct {
	ID          string   `json:"id"`
	Scenario    string   `json:"scenario"`
	Prompt      string   `json:"prompt"`
	Options     []Option `json:"options"`
	Explanation string   `json:"explanation"`
}

// CorrectID returns the id of the correct option, or "" when the
// question is malformed.
func (q Question) CorrectID() string {
	for _, o := range q.Options {
		if o.Correct {
			return o.ID
		}
	}
	return ""
}

// Stat is one headline figure on an application card.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Application is one real-world gallery card on the transfer screen.
type Application struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Stats       []Stat `json:"stats"`
}

// Topic is the full content record for one micro-lesson.
type Topic struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Tagline string `json:"tagline"`
	Kind    Kind   `json:"kind"`

	// PhaseLabels holds the ten screen labels, aligned with phase.Order.
	PhaseLabels []string `json:"phase_labels"`

	Hook          string     `json:"hook"`
	Predict       Prediction `json:"predict"`
	PlayHint      string     `json:"play_hint"`
	Review        string     `json:"review"`
	TwistPredict  Prediction `json:"twist_predict"`
	TwistPlayHint string     `json:"twist_play_hint"`
	TwistReview   string     `json:"twist_review"`

	Applications []Application `json:"applications"`
	Questions    []Question    `json:"questions"`

	PassThreshold int `json:"pass_threshold"`
}

// NewKernel constructs the simulation kernel for this topic.
func (t Topic) NewKernel() kernel.Kernel {
	switch t.Kind {
	case KindThermal:
		return kernel.NewThermal()
	case KindAntenna:
		return kernel.NewAntenna()
	default:
		return kernel.NewSeek()
	}
}

// Label returns the screen label for p, falling back to the phase name.
func (t Topic) Label(p phase.Phase) string {
	i := phase.IndexOf(p)
	if i >= 0 && i < len(t.PhaseLabels) && t.PhaseLabels[i] != "" {
		return t.PhaseLabels[i]
	}
	return string(p)
}

// QuizKey returns the correct option id per question slot.
func (t Topic) QuizKey() [quiz.NumQuestions]string {
	var key [quiz.NumQuestions]string
	for i := 0; i < len(t.Questions) && i < quiz.NumQuestions; i++ {
		key[i] = t.Questions[i].CorrectID()
	}
	return key
}

// Validate checks the structural invariants of a topic record. Built-in
// topics are validated by tests; loaded topic files are validated at load.
func (t Topic) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("topic id is empty")
	}
	if t.Title == "" {
		return fmt.Errorf("topic %s: title is empty", t.ID)
	}
	switch t.Kind {
	case KindSeek, KindThermal, KindAntenna:
	default:
		return fmt.Errorf("topic %s: unknown kernel kind %q", t.ID, t.Kind)
	}
	if len(t.PhaseLabels) != phase.Count {
		return fmt.Errorf("topic %s: %d phase labels, want %d", t.ID, len(t.PhaseLabels), phase.Count)
	}
	for i, p := range []Prediction{t.Predict, t.TwistPredict} {
		if err := p.validate(); err != nil {
			return fmt.Errorf("topic %s: prediction %d: %w", t.ID, i+1, err)
		}
	}
	if len(t.Applications) != NumApplications {
		return fmt.Errorf("topic %s: %d applications, want %d", t.ID, len(t.Applications), NumApplications)
	}
	if len(t.Questions) != quiz.NumQuestions {
		return fmt.Errorf("topic %s: %d questions, want %d", t.ID, len(t.Questions), quiz.NumQuestions)
	}
	for _, q := range t.Questions {
		correct := 0
		for _, o := range q.Options {
			if o.Correct {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("topic %s: question %s: %d correct options, want exactly 1", t.ID, q.ID, correct)
		}
		if len(q.Options) < 2 {
			return fmt.Errorf("topic %s: question %s: needs at least 2 options", t.ID, q.ID)
		}
	}
	if t.PassThreshold < 1 || t.PassThreshold > quiz.NumQuestions {
		return fmt.Errorf("topic %s: pass threshold %d out of range", t.ID, t.PassThreshold)
	}
	return nil
}

func (p Prediction) validate() error {
	if len(p.Options) < 2 {
		return fmt.Errorf("needs at least 2 options")
	}
	found := false
	for _, o := range p.Options {
		if o.ID == p.CorrectID {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("correct id %q not among options", p.CorrectID)
	}
	return nil
}

// standardLabels is the default label set shared by the built-in topics.
func standardLabels() []string {
	return []string{
		"The Setup",
		"Make Your Call",
		"Run It",
		"What Happened",
		"The Twist",
		"Run the Twist",
		"Twist Explained",
		"Out in the World",
		"Prove It",
		"Mastery",
	}
}
