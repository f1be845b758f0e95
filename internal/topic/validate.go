package topic

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// topicSchema is the JSON Schema a topic file must satisfy. Structural
// rules live here; cross-field rules (exactly one correct option, label
// count) are enforced by Topic.Validate afterwards.
const topicSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "title", "kind", "phase_labels", "hook", "predict", "twist_predict", "applications", "questions", "pass_threshold"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "title": {"type": "string", "minLength": 1},
    "tagline": {"type": "string"},
    "kind": {"enum": ["seek", "thermal", "antenna"]},
    "phase_labels": {
      "type": "array",
      "items": {"type": "string"},
      "minItems": 10,
      "maxItems": 10
    },
    "hook": {"type": "string"},
    "predict": {"$ref": "#/$defs/prediction"},
    "play_hint": {"type": "string"},
    "review": {"type": "string"},
    "twist_predict": {"$ref": "#/$defs/prediction"},
    "twist_play_hint": {"type": "string"},
    "twist_review": {"type": "string"},
    "applications": {
      "type": "array",
      "minItems": 4,
      "maxItems": 4,
      "items": {
        "type": "object",
        "required": ["title", "description"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "stats": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["label", "value"],
              "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "questions": {
      "type": "array",
      "minItems": 10,
      "maxItems": 10,
      "items": {
        "type": "object",
        "required": ["id", "prompt", "options"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "scenario": {"type": "string"},
          "prompt": {"type": "string", "minLength": 1},
          "options": {"$ref": "#/$defs/options"},
          "explanation": {"type": "string"}
        }
      }
    },
    "pass_threshold": {"type": "integer", "minimum": 1, "maximum": 10}
  },
  "$defs": {
    "prediction": {
      "type": "object",
      "required": ["prompt", "options", "correct_id"],
      "properties": {
        "prompt": {"type": "string", "minLength": 1},
        "options": {"$ref": "#/$defs/options"},
        "correct_id": {"type": "string", "minLength": 1}
      }
    },
    "options": {
      "type": "array",
      "minItems": 2,
      "items": {
        "type": "object",
        "required": ["id", "label"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "label": {"type": "string", "minLength": 1},
          "correct": {"type": "boolean"}
        }
      }
    }
  }
}`

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

// schema compiles the embedded topic schema once.
func schema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(topicSchema), &parsed); err != nil {
			compileSchemaError = fmt.Errorf("parse topic schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://topic.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileSchemaError = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile(url)
	})
	return compiledSchema, compileSchemaError
}

// ParseJSON validates raw topic JSON against the schema and the semantic
// rules, returning the decoded topic.
func ParseJSON(raw []byte) (Topic, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Topic{}, fmt.Errorf("invalid JSON: %w", err)
	}

	s, err := schema()
	if err != nil {
		return Topic{}, err
	}
	if err := s.Validate(parsed); err != nil {
		return Topic{}, fmt.Errorf("schema validation: %w", err)
	}

	var t Topic
	if err := json.Unmarshal(raw, &t); err != nil {
		return Topic{}, fmt.Errorf("decode topic: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Topic{}, err
	}
	return t, nil
}

// LoadFile reads and validates one topic file.
func LoadFile(path string) (Topic, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Topic{}, fmt.Errorf("read topic file: %w", err)
	}
	t, err := ParseJSON(raw)
	if err != nil {
		return Topic{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// LoadDir loads every *.json topic in dir into the registry. Malformed
// files are skipped and reported in the returned slice; a missing dir is
// not an error.
func LoadDir(r *Registry, dir string) []error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return []error{fmt.Errorf("read topic dir: %w", err)}
	}

	var errs []error
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		t, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := r.Add(t); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name(), err))
		}
	}
	return errs
}
