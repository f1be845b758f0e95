package lesson

import (
	"github.com/npradeep/joule/internal/phase"
	"github.com/npradeep/joule/internal/quiz"
)

// State is the host-facing snapshot of a module's progress. It carries
// everything needed to resume a lesson later; kernel state is deliberately
// excluded since play phases restart their simulation fresh.
type State struct {
	Phase           phase.Phase
	Prediction      string
	TwistPrediction string
	GalleryViewed   []int
	QuizAnswers     [quiz.NumQuestions]string
	QuizSubmitted   bool
	QuizScore       int
}

// Snapshot captures the current progress as one atomic value.
func (m *Module) Snapshot() State {
	s := State{
		Phase:           m.nav.Current(),
		Prediction:      m.prediction.Chosen(),
		TwistPrediction: m.twistPrediction.Chosen(),
		GalleryViewed:   m.gallery.Viewed(),
		QuizSubmitted:   m.quiz.Submitted(),
		QuizScore:       m.quiz.Score(),
	}
	for i := 0; i < quiz.NumQuestions; i++ {
		s.QuizAnswers[i] = m.quiz.Answer(i)
	}
	return s
}

// Restore replaces the module's progress with a previously captured
// snapshot. It fires no events or callbacks; a restore is replay, not
// learner activity. The quiz score is recomputed from the restored
// answers rather than trusted from the snapshot.
func (m *Module) Restore(s State) {
	m.prediction.Reset()
	if s.Prediction != "" {
		m.prediction.Choose(s.Prediction)
	}
	m.twistPrediction.Reset()
	if s.TwistPrediction != "" {
		m.twistPrediction.Choose(s.TwistPrediction)
	}

	m.gallery.Reset()
	for _, idx := range s.GalleryViewed {
		m.gallery.MarkViewed(idx)
	}

	m.quiz.Reset()
	for i, id := range s.QuizAnswers {
		if id != "" {
			m.quiz.SetAnswer(i, id)
		}
	}
	if s.QuizSubmitted {
		m.quiz.Submit(m.topic.QuizKey())
	}

	m.nav.Init(string(s.Phase))
	m.kern.Reset()
	m.syncSimulating()
}
