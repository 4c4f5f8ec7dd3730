package companion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelevantFacts(t *testing.T) {
	facts := []MemoryFact{
		{ID: "1", Category: FactWork, Fact: "Works as a nurse"},
		{ID: "2", Category: FactPattern, Fact: "Experiencing dating burnout"},
		{ID: "3", Category: FactBoundary, Fact: "Boundary: surprise visits"},
		{ID: "4", Category: FactRelationship, Fact: "Has mentioned a previous relationship"},
		{ID: "5", Category: FactPreference, Fact: "Often chats late at night"},
	}

	tests := []struct {
		name      string
		utterance string
		wantIDs   []string
	}{
		{"work gate", "my job has been stressful", []string{"1"}},
		{"dating gate opens relationship and pattern", "I ran into my ex", []string{"2", "4"}},
		{"boundary gate", "I want to set a boundary", []string{"3"}},
		{"no gate fires", "the weather is nice", nil},
		{"preference facts have no gate", "late at night again", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelevantFacts(tt.utterance, facts)
			var ids []string
			for _, f := range got {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRelevantFactsKeepStorageOrder(t *testing.T) {
	facts := []MemoryFact{
		{ID: "a", Category: FactPattern, Fact: "first"},
		{ID: "b", Category: FactRelationship, Fact: "second"},
		{ID: "c", Category: FactPattern, Fact: "third"},
	}
	got := RelevantFacts("thinking about dating again", facts)
	ids := make([]string, 0, len(got))
	for _, f := range got {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}
