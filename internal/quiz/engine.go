// Package quiz scores the ten-question test at the end of a lesson.
package quiz

// NumQuestions is the fixed quiz length.
const NumQuestions = 10

// DefaultPassThreshold is the minimum score counted as a pass when a
// topic does not declare its own.
const DefaultPassThreshold = 7

// Engine holds the answer slots and the one-way submission state.
type Engine struct {
	answers       [NumQuestions]string
	submitted     bool
	score         int
	passThreshold int
}

// NewEngine creates an engine with the given pass threshold. A threshold
// outside 1..NumQuestions falls back to the default.
func NewEngine(passThreshold int) *Engine {
	if passThreshold < 1 || passThreshold > NumQuestions {
		passThreshold = DefaultPassThreshold
	}
	return &Engine{passThreshold: passThreshold}
}

// SetAnswer records the chosen option for a question, replacing any prior
// answer. Out-of-range indices and calls after submission are no-ops.
func (e *Engine) SetAnswer(questionIndex int, optionID string) {
	if e.submitted || questionIndex < 0 || questionIndex >= NumQuestions || optionID == "" {
		return
	}
	e.answers[questionIndex] = optionID
}

// Answer returns the recorded option for a question, or "" if unset.
func (e *Engine) Answer(questionIndex int) string {
	if questionIndex < 0 || questionIndex >= NumQuestions {
		return ""
	}
	return e.answers[questionIndex]
}

// AnsweredCount returns the number of answered slots.
func (e *Engine) AnsweredCount() int {
	n := 0
	for _, a := range e.answers {
		if a != "" {
			n++
		}
	}
	return n
}

// AllAnswered reports whether every slot is set.
func (e *Engine) AllAnswered() bool {
	return e.AnsweredCount() == NumQuestions
}

// Submit scores the answers against correctIDs and locks the engine.
// It returns false without scoring when slots are missing or the quiz was
// already submitted; re-submission requires an explicit Reset.
func (e *Engine) Submit(correctIDs [NumQuestions]string) bool {
	if e.submitted || !e.AllAnswered() {
		return false
	}
	score := 0
	for i, a := range e.answers {
		if a == correctIDs[i] {
			score++
		}
	}
	e.score = score
	e.submitted = true
	return true
}

// Submitted reports whether the quiz has been scored.
func (e *Engine) Submitted() bool {
	return e.submitted
}

// Score returns the scored result; zero before submission.
func (e *Engine) Score() int {
	return e.score
}

// PassThreshold returns the minimum passing score.
func (e *Engine) PassThreshold() int {
	return e.passThreshold
}

// Passed reports whether the submitted score meets the threshold.
func (e *Engine) Passed() bool {
	return e.submitted && e.score >= e.passThreshold
}

// Reset clears all answers and the submitted flag, allowing a retake.
func (e *Engine) Reset() {
	e.answers = [NumQuestions]string{}
	e.submitted = false
	e.score = 0
}
