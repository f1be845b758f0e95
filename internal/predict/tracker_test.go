package predict

import "testing"

func TestTracker_ChooseAndOverwrite(t *testing.T) {
	var tr Tracker
	if tr.HasAnswered() {
		t.Error("fresh tracker should not have answered")
	}

	tr.Choose("a")
	if !tr.HasAnswered() {
		t.Error("expected answered after choose")
	}
	if tr.Chosen() != "a" {
		t.Errorf("Chosen = %q, want a", tr.Chosen())
	}

	tr.Choose("c") // overwritable until the phase advances
	if tr.Chosen() != "c" {
		t.Errorf("Chosen = %q, want c", tr.Chosen())
	}
}

func TestTracker_EmptyChoiceIgnored(t *testing.T) {
	var tr Tracker
	tr.Choose("b")
	tr.Choose("")
	if tr.Chosen() != "b" {
		t.Errorf("empty choice cleared answer: %q", tr.Chosen())
	}
}

func TestTracker_IsCorrect(t *testing.T) {
	var tr Tracker
	if tr.IsCorrect("a") {
		t.Error("unanswered tracker can never be correct")
	}
	tr.Choose("a")
	if !tr.IsCorrect("a") {
		t.Error("matching choice should be correct")
	}
	if tr.IsCorrect("b") {
		t.Error("non-matching choice should be incorrect")
	}
}

func TestTracker_Reset(t *testing.T) {
	var tr Tracker
	tr.Choose("d")
	tr.Reset()
	if tr.HasAnswered() {
		t.Error("reset tracker should not have answered")
	}
}
