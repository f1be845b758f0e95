// Package gallery tracks which real-world application cards the learner
// has opened on the transfer screen. The next phase unlocks only once
// every card has been viewed at least once, in any order.
package gallery

// Tracker is a set of viewed card indices.
type Tracker struct {
	viewed map[int]struct{}
}

// MarkViewed records that the card at index has been opened. Repeats are
// idempotent; negative indices are ignored.
func (t *Tracker) MarkViewed(index int) {
	if index < 0 {
		return
	}
	if t.viewed == nil {
		t.viewed = make(map[int]struct{})
	}
	t.viewed[index] = struct{}{}
}

// IsViewed reports whether the card at index has been opened.
func (t *Tracker) IsViewed(index int) bool {
	_, ok := t.viewed[index]
	return ok
}

// ViewedCount returns the number of distinct cards opened.
func (t *Tracker) ViewedCount() int {
	return len(t.viewed)
}

// Viewed returns the viewed indices, unordered.
func (t *Tracker) Viewed() []int {
	out := make([]int, 0, len(t.viewed))
	for i := range t.viewed {
		out = append(out, i)
	}
	return out
}

// IsComplete reports whether every one of totalCount cards has been
// viewed.
func (t *Tracker) IsComplete(totalCount int) bool {
	return len(t.viewed) >= totalCount
}

// Reset forgets all viewed cards.
func (t *Tracker) Reset() {
	t.viewed = nil
}
