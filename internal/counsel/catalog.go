// Package counsel holds the fixed counseling content: the topic catalog and
// the keyword resolver used for free-text messages.
package counsel

import (
	"fmt"
)

// TopicEntry is one counseling topic. ID is the display label shown on the
// topic button; Slug is the short name used in URLs.
type TopicEntry struct {
	ID    string `json:"id"`
	Slug  string `json:"slug"`
	Reply string `json:"reply"`
}

var defaultTopics = []TopicEntry{
	{
		ID:    "🏠 Isolation & Homesickness",
		Slug:  "isolation",
		Reply: "It's natural to feel homesick 💙. Try writing journals or video calling family to feel connected.",
	},
	{
		ID:    "😴 Sleep & Circadian Issues",
		Slug:  "sleep",
		Reply: "Good sleep is vital 😴. Avoid screens before bed, use relaxation breathing, and keep a sleep schedule.",
	},
	{
		ID:    "😟 Stress & Anxiety",
		Slug:  "stress",
		Reply: "Stress is tough 😟. Let's try a 4-7-8 breathing exercise: inhale 4s, hold 7s, exhale 8s.",
	},
	{
		ID:    "🧠 Cognitive Function",
		Slug:  "cognitive",
		Reply: "To sharpen focus 🧠, try memory games, short breaks, and hydration.",
	},
	{
		ID:    "🤝 Crew Relationships",
		Slug:  "relationships",
		Reply: "Relationships are key 🤝. Try active listening and weekly group check-ins.",
	},
	{
		ID:    "📉 Performance Concerns",
		Slug:  "performance",
		Reply: "Performance dips happen 📉. Track small wins, adjust routine, and seek peer feedback.",
	},
	{
		ID:    "🌍 Earth Communication",
		Slug:  "communication",
		Reply: "Missing Earth 🌍? Regularly share audio/video logs, it helps reduce loneliness.",
	},
	{
		ID:    "💬 General Chat",
		Slug:  "general",
		Reply: "I'm always here 💬. Tell me, how are you feeling now?",
	},
}

// Catalog is an immutable, ordered set of topics.
type Catalog struct {
	topics []TopicEntry
	byID   map[string]int
	bySlug map[string]int
}

// NewCatalog builds a catalog from entries in display order. Duplicate IDs or
// slugs keep the first occurrence.
func NewCatalog(entries []TopicEntry) *Catalog {
	c := &Catalog{
		topics: make([]TopicEntry, 0, len(entries)),
		byID:   make(map[string]int, len(entries)),
		bySlug: make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := c.byID[e.ID]; dup {
			continue
		}
		if _, dup := c.bySlug[e.Slug]; dup {
			continue
		}
		c.byID[e.ID] = len(c.topics)
		c.bySlug[e.Slug] = len(c.topics)
		c.topics = append(c.topics, e)
	}
	return c
}

// DefaultCatalog returns the eight standard counseling topics.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultTopics)
}

// List returns all topics in display order.
func (c *Catalog) List() []TopicEntry {
	out := make([]TopicEntry, len(c.topics))
	copy(out, c.topics)
	return out
}

// Len returns the number of topics.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Reply returns the canned reply for a topic label.
func (c *Catalog) Reply(id string) (string, error) {
	i, ok := c.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTopic, id)
	}
	return c.topics[i].Reply, nil
}

// BySlug returns the topic with the given slug.
func (c *Catalog) BySlug(slug string) (TopicEntry, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return TopicEntry{}, fmt.Errorf("%w: %q", ErrUnknownTopic, slug)
	}
	return c.topics[i], nil
}
