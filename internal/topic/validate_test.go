package topic

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// fileTopic builds a valid topic document for file-loading tests.
func fileTopic(t *testing.T) []byte {
	t.Helper()
	tp := thermalThrottle()
	tp.ID = "from-file"
	raw, err := json.Marshal(tp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestParseJSON_ValidDocument(t *testing.T) {
	tp, err := ParseJSON(fileTopic(t))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if tp.ID != "from-file" {
		t.Errorf("ID = %q, want from-file", tp.ID)
	}
	if tp.Kind != KindThermal {
		t.Errorf("Kind = %q, want thermal", tp.Kind)
	}
}

func TestParseJSON_RejectsInvalidJSON(t *testing.T) {
	if _, err := ParseJSON([]byte("{not json")); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestParseJSON_SchemaRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing id", func(m map[string]any) { delete(m, "id") }},
		{"bad kind", func(m map[string]any) { m["kind"] = "fusion" }},
		{"threshold too high", func(m map[string]any) { m["pass_threshold"] = 11 }},
		{"labels wrong length", func(m map[string]any) { m["phase_labels"] = []string{"only", "two"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc map[string]any
			if err := json.Unmarshal(fileTopic(t), &doc); err != nil {
				t.Fatal(err)
			}
			tt.mutate(doc)
			raw, _ := json.Marshal(doc)
			if _, err := ParseJSON(raw); err == nil {
				t.Error("expected schema rejection")
			}
		})
	}
}

func TestLoadDir_SkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "good.json"), fileTopic(t), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	errs := LoadDir(r, dir)
	if len(errs) != 1 {
		t.Errorf("got %d load errors, want 1 (the broken file)", len(errs))
	}
	if _, ok := r.Get("from-file"); !ok {
		t.Error("good topic file should have been loaded")
	}
}

func TestLoadDir_MissingDirIsNotAnError(t *testing.T) {
	r := NewRegistry()
	if errs := LoadDir(r, filepath.Join(t.TempDir(), "nope")); len(errs) != 0 {
		t.Errorf("missing dir produced errors: %v", errs)
	}
}
