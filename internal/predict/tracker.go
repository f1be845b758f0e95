// Package predict records the learner's committed guess for a prediction
// screen. One tracker serves one prediction slot; a module holds two, one
// for the initial prediction and one for the twist.
package predict

// Tracker holds a single chosen option id. The choice is overwritable
// until the phase advances; the host simply stops routing choices to the
// tracker once it does.
type Tracker struct {
	chosen string
}

// Choose records optionID, replacing any prior choice. Empty ids are
// ignored so a stray event cannot clear a committed answer.
func (t *Tracker) Choose(optionID string) {
	if optionID == "" {
		return
	}
	t.chosen = optionID
}

// Chosen returns the recorded option id, or "" before any choice.
func (t *Tracker) Chosen() string {
	return t.chosen
}

// HasAnswered reports whether a choice has been made. It gates the next
// control on prediction phases.
func (t *Tracker) HasAnswered() bool {
	return t.chosen != ""
}

// IsCorrect compares the recorded choice against the topic's answer key.
func (t *Tracker) IsCorrect(correctID string) bool {
	return t.chosen != "" && t.chosen == correctID
}

// Reset clears the recorded choice.
func (t *Tracker) Reset() {
	t.chosen = ""
}
