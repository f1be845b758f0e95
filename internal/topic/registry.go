package topic

import "sort"

// builtins returns the topics compiled into the binary.
func builtins() []Topic {
	return []Topic{
		diskSeek(),
		thermalThrottle(),
		antennaGain(),
	}
}

// Registry holds the topics available to the app: built-ins plus any
// loaded from topic files.
type Registry struct {
	topics map[string]Topic
}

// NewRegistry creates a registry seeded with the built-in topics.
func NewRegistry() *Registry {
	r := &Registry{topics: make(map[string]Topic)}
	for _, t := range builtins() {
		r.topics[t.ID] = t
	}
	return r
}

// Add registers t, replacing any topic with the same id. Invalid topics
// are rejected.
func (r *Registry) Add(t Topic) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.topics[t.ID] = t
	return nil
}

// Get returns the topic with the given id.
func (r *Registry) Get(id string) (Topic, bool) {
	t, ok := r.topics[id]
	return t, ok
}

// All returns every registered topic, sorted by title for stable menus.
func (r *Registry) All() []Topic {
	out := make([]Topic, 0, len(r.topics))
	for _, t := range r.topics {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// Len returns the number of registered topics.
func (r *Registry) Len() int {
	return len(r.topics)
}
