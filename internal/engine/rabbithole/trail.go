package rabbithole

import "slices"

// Trail is the breadcrumb history of one explorer session. It is not safe for
// concurrent use; each client keeps its own.
type Trail struct {
	topics []string
}

// NewTrail starts a trail from existing breadcrumbs, dropping empty entries.
func NewTrail(topics ...string) *Trail {
	t := &Trail{}
	for _, name := range topics {
		t.Visit(name)
	}
	return t
}

// Visit appends name unless it is empty or repeats the last topic.
func (t *Trail) Visit(name string) {
	if name == "" {
		return
	}
	if n := len(t.topics); n > 0 && key(t.topics[n-1]) == key(name) {
		return
	}
	t.topics = append(t.topics, name)
}

// Back drops the current topic and returns the one before it.
// With one or no topics left there is nowhere to go and the trail is unchanged.
func (t *Trail) Back() (string, bool) {
	if len(t.topics) <= 1 {
		return "", false
	}
	t.topics = t.topics[:len(t.topics)-1]
	return t.topics[len(t.topics)-1], true
}

// Topics returns a copy of the breadcrumbs, oldest first.
func (t *Trail) Topics() []string {
	return slices.Clone(t.topics)
}

// Clear empties the trail.
func (t *Trail) Clear() {
	t.topics = nil
}
