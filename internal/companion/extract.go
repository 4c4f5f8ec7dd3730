package companion

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// factProbe is one independent extraction rule: a trigger, an optional capture
// for the salient span, and a dedup key checked against facts of the same
// category. Probes never see each other's output within a pass.
type factProbe struct {
	category FactCategory
	trigger  *regexp.Regexp
	capture  *regexp.Regexp // optional; first non-empty group is the span
	exclude  *regexp.Regexp // optional veto applied after the trigger
	minLen   int            // minimum capture length, 0 = no minimum
	format   func(span string) string
	static   string // fact text for probes that capture nothing
	dedupKey string // substring matched against same-category facts; empty = use the captured span
}

// Probe table. Order does not matter: probes are mutually independent and a
// single utterance may mint several facts across categories.
var factProbes = []factProbe{
	{
		category: FactWork,
		trigger:  regexp.MustCompile(`i work (as|at|in)|my job|i'm a |i am a `),
		capture:  regexp.MustCompile(`(?:work ((?:as|at|in)[^.,!?]*)|job is ([^.,!?]+)|i'm a ([^.,!?]+)|i am a ([^.,!?]+))`),
		format:   func(span string) string { return "Works " + span },
	},
	{
		category: FactPersonal,
		trigger:  regexp.MustCompile(`my name is|call me|i'm `),
		exclude:  regexp.MustCompile(`feeling`),
		capture:  regexp.MustCompile(`(?:my name is|call me|i'm )\s*([a-zA-Z]+)`),
		minLen:   3,
		format:   func(span string) string { return "Name: " + span },
		dedupKey: "name",
	},
	{
		category: FactPersonal,
		trigger:  regexp.MustCompile(`i'm \d+|i am \d+|years old`),
		capture:  regexp.MustCompile(`(?:i'm|i am)\s*(\d+)|(\d+)\s*years old`),
		format:   func(span string) string { return span + " years old" },
		dedupKey: "years old",
	},
	{
		category: FactPersonal,
		trigger:  regexp.MustCompile(`i live in|living in|moved to|based in`),
		capture:  regexp.MustCompile(`(?:live in|living in|moved to|based in)\s*([a-zA-Z\s]+?)(?:\.|,|!|\?|$)`),
		format:   func(span string) string { return "Lives in " + span },
		dedupKey: "lives in",
	},
	{
		category: FactRelationship,
		trigger:  regexp.MustCompile(`my ex|broke up|relationship ended|past relationship`),
		static:   "Has mentioned a previous relationship",
		dedupKey: "previous relationship",
	},
	{
		category: FactPattern,
		trigger:  regexp.MustCompile(`tired of dating|dating is exhausting|burned out|dating burnout|over dating apps`),
		static:   "Experiencing dating burnout",
		dedupKey: "dating burnout",
	},
	{
		category: FactPreference,
		trigger:  regexp.MustCompile(`late at night|can't sleep|nighttime|before bed`),
		static:   "Often chats late at night",
		dedupKey: "late at night",
	},
	{
		category: FactBoundary,
		trigger:  regexp.MustCompile(`i don't like|makes me uncomfortable|not okay with|boundary|off limits`),
		capture:  regexp.MustCompile(`(?:don't like|uncomfortable|not okay with|boundary about)\s+([^.,!?]+)`),
		format:   func(span string) string { return "Boundary: " + span },
	},
	{
		category: FactPattern,
		trigger:  regexp.MustCompile(`people pleaser|can't say no|always saying yes|put others first`),
		static:   "Notices people-pleasing tendencies",
		dedupKey: "people-pleasing",
	},
}

// ExtractFacts runs every probe against the utterance and returns the newly
// minted facts. Extraction never edits or removes existing facts; a probe
// failure is contained and the remaining probes still run.
func (e *Engine) ExtractFacts(utterance string, existing []MemoryFact) []MemoryFact {
	newFacts := []MemoryFact{}
	if strings.TrimSpace(utterance) == "" {
		return newFacts
	}
	text := strings.ToLower(utterance)
	now := e.now()

	for i, probe := range factProbes {
		fact, err := runProbe(probe, text, existing, now)
		if err != nil {
			e.log.Warn("fact probe failed", "probe", i, "category", probe.category, "err", err)
			continue
		}
		if fact != nil {
			newFacts = append(newFacts, *fact)
		}
	}
	return newFacts
}

// runProbe applies one probe. A panic inside the probe is treated the same as
// a pattern miss so one bad pattern cannot starve the others.
func runProbe(probe factProbe, text string, existing []MemoryFact, now time.Time) (fact *MemoryFact, err error) {
	defer func() {
		if r := recover(); r != nil {
			fact = nil
			err = fmt.Errorf("probe panic: %v", r)
		}
	}()

	if !probe.trigger.MatchString(text) {
		return nil, nil
	}
	if probe.exclude != nil && probe.exclude.MatchString(text) {
		return nil, nil
	}

	factText := probe.static
	dedupKey := probe.dedupKey
	if probe.capture != nil {
		span := firstGroup(probe.capture.FindStringSubmatch(text))
		span = strings.TrimSpace(span)
		if span == "" || len(span) < probe.minLen {
			return nil, nil
		}
		factText = probe.format(span)
		if dedupKey == "" {
			dedupKey = span
		}
	}
	if factText == "" {
		return nil, nil
	}

	// Unanchored substring containment against same-category facts. Known to
	// both over- and under-suppress near-duplicates; kept as specified.
	key := strings.ToLower(dedupKey)
	suppressed := lo.SomeBy(existing, func(m MemoryFact) bool {
		return m.Category == probe.category && strings.Contains(strings.ToLower(m.Fact), key)
	})
	if suppressed {
		return nil, nil
	}

	return &MemoryFact{
		ID:        uuid.NewString(),
		Category:  probe.category,
		Fact:      factText,
		CreatedAt: now,
	}, nil
}

// firstGroup returns the first non-empty capture group of a submatch result.
func firstGroup(groups []string) string {
	for i := 1; i < len(groups); i++ {
		if groups[i] != "" {
			return groups[i]
		}
	}
	return ""
}
