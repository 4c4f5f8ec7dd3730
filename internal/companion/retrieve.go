package companion

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// Topic gates map utterance vocabulary to fact categories. A fact is relevant
// when its category belongs to a gate that fired on the utterance.
var topicGates = []struct {
	pattern    *regexp.Regexp
	categories []FactCategory
}{
	{regexp.MustCompile(`work|job|career|boss`), []FactCategory{FactWork}},
	{regexp.MustCompile(`date|dating|relationship|ex|partner`), []FactCategory{FactRelationship, FactPattern}},
	{regexp.MustCompile(`boundary|boundaries|limit|comfortable`), []FactCategory{FactBoundary}},
}

// RelevantFacts returns the subset of facts on the utterance's current topic,
// in their existing storage order. No re-ranking.
func RelevantFacts(utterance string, facts []MemoryFact) []MemoryFact {
	text := strings.ToLower(utterance)
	var open []FactCategory
	for _, gate := range topicGates {
		if gate.pattern.MatchString(text) {
			open = append(open, gate.categories...)
		}
	}
	if len(open) == 0 {
		return nil
	}
	return lo.Filter(facts, func(m MemoryFact, _ int) bool {
		return lo.Contains(open, m.Category)
	})
}
