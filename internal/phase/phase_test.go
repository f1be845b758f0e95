package phase

import "testing"

func TestOrder_TenPhases(t *testing.T) {
	got := Order()
	if len(got) != 10 {
		t.Fatalf("Order() len = %d, want 10", len(got))
	}
	if got[0] != Hook {
		t.Errorf("first phase = %s, want hook", got[0])
	}
	if got[9] != Mastery {
		t.Errorf("last phase = %s, want mastery", got[9])
	}
}

func TestNextPrev_RoundTrip(t *testing.T) {
	for _, p := range Order() {
		prev, ok := Prev(p)
		if !ok {
			continue // boundary
		}
		back, ok := Next(prev)
		if !ok {
			t.Fatalf("Next(Prev(%s)) missing", p)
		}
		if back != p {
			t.Errorf("Next(Prev(%s)) = %s, want %s", p, back, p)
		}
	}
}

func TestNext_Boundaries(t *testing.T) {
	if _, ok := Next(Mastery); ok {
		t.Error("Next(mastery) should not exist")
	}
	if _, ok := Prev(Hook); ok {
		t.Error("Prev(hook) should not exist")
	}
	if _, ok := Next("bogus"); ok {
		t.Error("Next of unknown phase should not exist")
	}
}

func TestIndexOf(t *testing.T) {
	tests := []struct {
		p    Phase
		want int
	}{
		{Hook, 0},
		{Play, 2},
		{TwistPredict, 4},
		{Transfer, 7},
		{Test, 8},
		{Mastery, 9},
		{"nonsense", -1},
	}
	for _, tt := range tests {
		if got := IndexOf(tt.p); got != tt.want {
			t.Errorf("IndexOf(%s) = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("play") {
		t.Error("play should be valid")
	}
	if IsValid("PLAY") {
		t.Error("phase names are case-sensitive")
	}
	if IsValid("") {
		t.Error("empty string is not a phase")
	}
}
