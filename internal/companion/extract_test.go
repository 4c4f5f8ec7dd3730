package companion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractWorkFact(t *testing.T) {
	e := New(nil)

	facts := e.ExtractFacts("I work as a nurse", nil)

	require.Len(t, facts, 1)
	assert.Equal(t, FactWork, facts[0].Category)
	assert.Equal(t, "Works as a nurse", facts[0].Fact)
	assert.NotEmpty(t, facts[0].ID)
	assert.False(t, facts[0].CreatedAt.IsZero())
}

func TestExtractFacts(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		category  FactCategory
		fact      string
	}{
		{"name", "my name is maya", FactPersonal, "Name: maya"},
		{"age", "I'm 28 and figuring things out", FactPersonal, "28 years old"},
		{"age suffix form", "I turned thirty, well, 30 years old last week", FactPersonal, "30 years old"},
		{"location", "I live in portland, by the way", FactPersonal, "Lives in portland"},
		{"relationship", "my ex used to say that too", FactRelationship, "Has mentioned a previous relationship"},
		{"dating burnout", "honestly I'm so over dating apps", FactPattern, "Experiencing dating burnout"},
		{"night owl", "I always end up here late at night", FactPreference, "Often chats late at night"},
		{"boundary", "I'm not okay with surprise visits", FactBoundary, "Boundary: surprise visits"},
		{"people pleasing", "I'm such a people pleaser", FactPattern, "Notices people-pleasing tendencies"},
	}
	e := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := e.ExtractFacts(tt.utterance, nil)
			require.NotEmpty(t, facts, "no fact extracted")
			var found bool
			for _, f := range facts {
				if f.Category == tt.category && f.Fact == tt.fact {
					found = true
				}
			}
			assert.True(t, found, "expected %s/%q in %v", tt.category, tt.fact, facts)
		})
	}
}

func TestExtractSeveralFactsInOnePass(t *testing.T) {
	e := New(nil)

	facts := e.ExtractFacts("my ex and I broke up and now I'm tired of dating", nil)

	categories := map[FactCategory]bool{}
	for _, f := range facts {
		categories[f.Category] = true
	}
	assert.True(t, categories[FactRelationship])
	assert.True(t, categories[FactPattern])
}

func TestExtractIsIdempotentWithDedup(t *testing.T) {
	e := New(nil)
	utterances := []string{
		"I work as a nurse",
		"my name is maya",
		"my ex used to say that",
		"I'm tired of dating",
		"I can't sleep, it's late at night again",
		"I'm not okay with being interrupted",
	}
	for _, u := range utterances {
		first := e.ExtractFacts(u, nil)
		require.NotEmpty(t, first, "first pass of %q extracted nothing", u)

		second := e.ExtractFacts(u, first)
		assert.Empty(t, second, "second pass of %q should be fully suppressed", u)
	}
}

func TestExtractNameSkipsFeelings(t *testing.T) {
	e := New(nil)

	// "i'm " looks like a name trigger; the feeling veto must stop it.
	facts := e.ExtractFacts("i'm feeling great", nil)
	for _, f := range facts {
		assert.NotContains(t, f.Fact, "Name:")
	}
}

func TestExtractShortNameRejected(t *testing.T) {
	e := New(nil)

	// Two letters or fewer is noise ("i'm ok"), not a name.
	facts := e.ExtractFacts("i'm ok I guess", nil)
	for _, f := range facts {
		assert.NotContains(t, f.Fact, "Name:")
	}
}

func TestExtractDedupIsSubstringContainment(t *testing.T) {
	e := New(nil)
	existing := []MemoryFact{
		{ID: "1", Category: FactWork, Fact: "Works as a nurse in the ICU"},
	}

	// The captured span is contained in the existing fact, so it is
	// suppressed even though the phrasing differs.
	facts := e.ExtractFacts("I work as a nurse", existing)
	assert.Empty(t, facts)

	// Same text under a different category does not suppress.
	other := []MemoryFact{
		{ID: "2", Category: FactPersonal, Fact: "Works as a nurse"},
	}
	facts = e.ExtractFacts("I work as a nurse", other)
	assert.Len(t, facts, 1)
}

func TestExtractNeverMutatesExisting(t *testing.T) {
	e := New(nil)
	existing := []MemoryFact{
		{ID: "1", Category: FactWork, Fact: "Works as a barista"},
	}

	_ = e.ExtractFacts("I work as a nurse and I live in denver", existing)

	require.Len(t, existing, 1)
	assert.Equal(t, "Works as a barista", existing[0].Fact)
}

func TestExtractEmptyUtterance(t *testing.T) {
	e := New(nil)
	assert.Empty(t, e.ExtractFacts("", nil))
	assert.Empty(t, e.ExtractFacts("   ", nil))
}
