package gallery

import "testing"

func TestTracker_ProperSubsetIncomplete(t *testing.T) {
	var tr Tracker
	const total = 4

	if tr.IsComplete(total) {
		t.Error("empty tracker should be incomplete")
	}
	for i := 0; i < total-1; i++ {
		tr.MarkViewed(i)
		if tr.IsComplete(total) {
			t.Errorf("complete after only %d of %d viewed", i+1, total)
		}
	}
	tr.MarkViewed(total - 1)
	if !tr.IsComplete(total) {
		t.Error("expected complete after all cards viewed")
	}
}

func TestTracker_RepeatsAndOrderIrrelevant(t *testing.T) {
	var tr Tracker
	for _, i := range []int{3, 1, 1, 0, 3, 2, 0} {
		tr.MarkViewed(i)
	}
	if tr.ViewedCount() != 4 {
		t.Errorf("ViewedCount = %d, want 4", tr.ViewedCount())
	}
	if !tr.IsComplete(4) {
		t.Error("expected complete regardless of order or repeats")
	}
}

func TestTracker_NegativeIndexIgnored(t *testing.T) {
	var tr Tracker
	tr.MarkViewed(-1)
	if tr.ViewedCount() != 0 {
		t.Error("negative index should be ignored")
	}
}

func TestTracker_IsViewed(t *testing.T) {
	var tr Tracker
	tr.MarkViewed(2)
	if !tr.IsViewed(2) {
		t.Error("card 2 should be viewed")
	}
	if tr.IsViewed(0) {
		t.Error("card 0 should not be viewed")
	}
}

func TestTracker_Reset(t *testing.T) {
	var tr Tracker
	tr.MarkViewed(0)
	tr.MarkViewed(1)
	tr.Reset()
	if tr.ViewedCount() != 0 {
		t.Error("reset should clear viewed set")
	}
}
