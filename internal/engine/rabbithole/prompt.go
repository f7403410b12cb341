package rabbithole

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.trai.ch/atlas/internal/core/domain"
	"go.trai.ch/zerr"
)

// Kinds are the connection types a narrated topic may use.
var Kinds = []string{"engineering", "math", "science", "history", "people", "society", "military", "culture", "trade"}

const topicPrompt = `Topic: "%s"

Generate a brief summary (2-3 sentences) and 5-6 related "rabbit hole" topics that someone curious about %s might want to explore next.

For each rabbit hole, include:
- Topic name
- Type (%s)
- A compelling question that makes people want to click

Return only JSON:
{"summary": "...", "connections": [{"topic": "...", "type": "...", "question": "..."}]}`

// Prompt builds the narration request for a topic.
func Prompt(topic string) string {
	return fmt.Sprintf(topicPrompt, topic, topic, strings.Join(Kinds, ", "))
}

// ParseTopic decodes a narrated answer. Markdown code fences around the JSON are ignored.
func ParseTopic(name, text string) (domain.Topic, error) {
	raw := strings.TrimSpace(text)
	if i := strings.Index(raw, "{"); i >= 0 {
		raw = raw[i:]
	}
	if i := strings.LastIndex(raw, "}"); i >= 0 {
		raw = raw[:i+1]
	}

	var doc struct {
		Summary     string              `json:"summary"`
		Connections []domain.Connection `json:"connections"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return domain.Topic{}, zerr.With(zerr.Wrap(domain.ErrEmptyResponse, "narrated topic is not JSON"), "topic", name)
	}
	if strings.TrimSpace(doc.Summary) == "" {
		return domain.Topic{}, zerr.With(zerr.Wrap(domain.ErrEmptyResponse, "narrated topic has no summary"), "topic", name)
	}

	conns := make([]domain.Connection, 0, len(doc.Connections))
	for _, c := range doc.Connections {
		if strings.TrimSpace(c.Topic) == "" {
			continue
		}
		conns = append(conns, c)
	}
	return domain.Topic{Name: name, Summary: doc.Summary, Connections: conns, Generated: true}, nil
}
