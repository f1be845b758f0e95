package phase

// Phase identifies one of the ten screens in the guided-discovery flow.
type Phase string

const (
	Hook         Phase = "hook"
	Predict      Phase = "predict"
	Play         Phase = "play"
	Review       Phase = "review"
	TwistPredict Phase = "twist_predict"
	TwistPlay    Phase = "twist_play"
	TwistReview  Phase = "twist_review"
	Transfer     Phase = "transfer"
	Test         Phase = "test"
	Mastery      Phase = "mastery"
)

// order is the fixed flow. It never changes at runtime.
var order = [...]Phase{
	Hook,
	Predict,
	Play,
	Review,
	TwistPredict,
	TwistPlay,
	TwistReview,
	Transfer,
	Test,
	Mastery,
}

// Count is the number of phases in the flow.
const Count = len(order)

// Order returns the full phase sequence as a fresh slice.
func Order() []Phase {
	out := make([]Phase, Count)
	copy(out[:], order[:])
	return out
}

// IndexOf returns the zero-based position of p, or -1 if p is not a phase.
func IndexOf(p Phase) int {
	for i, q := range order {
		if q == p {
			return i
		}
	}
	return -1
}

// Next returns the phase following p. The second return is false at the
// last phase or for an unknown p.
func Next(p Phase) (Phase, bool) {
	i := IndexOf(p)
	if i < 0 || i >= Count-1 {
		return "", false
	}
	return order[i+1], true
}

// Prev returns the phase preceding p. The second return is false at the
// first phase or for an unknown p.
func Prev(p Phase) (Phase, bool) {
	i := IndexOf(p)
	if i <= 0 {
		return "", false
	}
	return order[i-1], true
}

// First returns the entry phase of the flow.
func First() Phase {
	return order[0]
}

// Last returns the final phase of the flow.
func Last() Phase {
	return order[Count-1]
}

// IsValid reports whether candidate names a known phase. Candidates may
// come from persisted state, so unknown strings are expected input.
func IsValid(candidate string) bool {
	return IndexOf(Phase(candidate)) >= 0
}
