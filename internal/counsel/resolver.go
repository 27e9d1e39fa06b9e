package counsel

import (
	"strings"
)

// FallbackReply is returned when no keyword rule matches.
const FallbackReply = "Interesting! Tell me more..."

// FallbackRule names the outcome of a resolution where no rule matched.
const FallbackRule = "fallback"

// Predicate reports whether a rule applies to already lowercased input.
type Predicate func(normalized string) bool

// Contains matches when the input contains any of subs.
// Subs must be lowercase.
func Contains(subs ...string) Predicate {
	return func(normalized string) bool {
		for _, s := range subs {
			if strings.Contains(normalized, s) {
				return true
			}
		}
		return false
	}
}

// Rule pairs a predicate with the reply it produces.
type Rule struct {
	Name  string
	Match Predicate
	Reply string
}

// Resolution is the outcome of resolving one message.
type Resolution struct {
	Rule  string `json:"rule"`
	Reply string `json:"reply"`
}

// Matched reports whether a rule other than the fallback produced the reply.
func (r Resolution) Matched() bool {
	return r.Rule != FallbackRule
}

// DefaultRules is the keyword table, in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:  "hello",
			Match: Contains("hello"),
			Reply: "Hi astronaut! 🚀 How’s your day going?",
		},
		{
			Name:  "stress",
			Match: Contains("stress"),
			Reply: "I understand stress can be overwhelming 😟. Want to try a relaxation technique?",
		},
		{
			Name:  "isro",
			Match: Contains("isro"),
			Reply: "🚀 ISRO (Indian Space Research Organisation) is India's national space agency, known for Chandrayaan & Mangalyaan!",
		},
		{
			Name:  "maitri",
			Match: Contains("maitri", "counselor"),
			Reply: "🌌 MAITRI is your AI Counselor — supporting astronauts emotionally & mentally during space missions 💙",
		},
	}
}

// Resolver maps free text to a reply. First matching rule wins.
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	rules    []Rule
	fallback string
}

// NewResolver creates a resolver over a copy of rules.
func NewResolver(rules []Rule, fallback string) *Resolver {
	r := make([]Rule, len(rules))
	copy(r, rules)
	return &Resolver{rules: r, fallback: fallback}
}

// DefaultResolver returns a resolver over DefaultRules and FallbackReply.
func DefaultResolver() *Resolver {
	return NewResolver(DefaultRules(), FallbackReply)
}

// Resolve returns the reply for input.
func (r *Resolver) Resolve(input string) string {
	return r.Explain(input).Reply
}

// Explain returns the reply for input along with the name of the rule that
// produced it.
func (r *Resolver) Explain(input string) Resolution {
	normalized := strings.ToLower(input)
	for _, rule := range r.rules {
		if rule.Match(normalized) {
			return Resolution{Rule: rule.Name, Reply: rule.Reply}
		}
	}
	return Resolution{Rule: FallbackRule, Reply: r.fallback}
}

// RuleNames returns the rule names in evaluation order.
func (r *Resolver) RuleNames() []string {
	names := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		names = append(names, rule.Name)
	}
	return names
}
