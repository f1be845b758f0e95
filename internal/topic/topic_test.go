package topic

import (
	"testing"

	"github.com/npradeep/joule/internal/kernel"
	"github.com/npradeep/joule/internal/phase"
)

func TestBuiltins_AllValid(t *testing.T) {
	for _, tp := range builtins() {
		if err := tp.Validate(); err != nil {
			t.Errorf("built-in topic %s invalid: %v", tp.ID, err)
		}
	}
}

func TestBuiltins_KernelKindsMatch(t *testing.T) {
	r := NewRegistry()

	seek, _ := r.Get("disk-seek")
	if _, ok := seek.NewKernel().(*kernel.Seek); !ok {
		t.Error("disk-seek should build a Seek kernel")
	}

	thermal, _ := r.Get("thermal-throttle")
	if _, ok := thermal.NewKernel().(*kernel.Thermal); !ok {
		t.Error("thermal-throttle should build a Thermal kernel")
	}

	antenna, _ := r.Get("antenna-gain")
	if _, ok := antenna.NewKernel().(*kernel.Antenna); !ok {
		t.Error("antenna-gain should build an Antenna kernel")
	}
}

func TestQuizKey_OneCorrectPerSlot(t *testing.T) {
	for _, tp := range builtins() {
		key := tp.QuizKey()
		for i, id := range key {
			if id == "" {
				t.Errorf("topic %s: question %d has no correct option", tp.ID, i)
			}
		}
	}
}

func TestLabel_FallsBackToPhaseName(t *testing.T) {
	tp := diskSeek()
	if tp.Label(phase.Hook) != "The Setup" {
		t.Errorf("Label(hook) = %q", tp.Label(phase.Hook))
	}

	tp.PhaseLabels = nil
	if tp.Label(phase.Test) != "test" {
		t.Errorf("fallback label = %q, want test", tp.Label(phase.Test))
	}
}

func TestValidate_RejectsBadTopics(t *testing.T) {
	base := diskSeek()

	tests := []struct {
		name   string
		mutate func(*Topic)
	}{
		{"empty id", func(t *Topic) { t.ID = "" }},
		{"unknown kind", func(t *Topic) { t.Kind = "plasma" }},
		{"wrong label count", func(t *Topic) { t.PhaseLabels = t.PhaseLabels[:5] }},
		{"nine questions", func(t *Topic) { t.Questions = t.Questions[:9] }},
		{"three applications", func(t *Topic) { t.Applications = t.Applications[:3] }},
		{"zero threshold", func(t *Topic) { t.PassThreshold = 0 }},
		{"no correct option", func(t *Topic) {
			opts := make([]Option, len(t.Questions[0].Options))
			copy(opts, t.Questions[0].Options)
			for i := range opts {
				opts[i].Correct = false
			}
			t.Questions[0].Options = opts
		}},
		{"prediction correct id missing", func(t *Topic) { t.Predict.CorrectID = "zz" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := base
			tt.mutate(&tp)
			if err := tp.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRegistry_AddAndGet(t *testing.T) {
	r := NewRegistry()
	if r.Len() != 3 {
		t.Fatalf("registry has %d topics, want 3 built-ins", r.Len())
	}

	custom := antennaGain()
	custom.ID = "custom-antenna"
	if err := r.Add(custom); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, ok := r.Get("custom-antenna"); !ok {
		t.Error("custom topic not retrievable")
	}

	bad := custom
	bad.Questions = nil
	if err := r.Add(bad); err == nil {
		t.Error("Add should reject an invalid topic")
	}
}
