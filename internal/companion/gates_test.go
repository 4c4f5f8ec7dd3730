package companion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSafeWord(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		safeWord  string
		want      bool
	}{
		{"exact", "pause", "pause", true},
		{"substring", "can we pause for a second", "pause", true},
		{"case insensitive", "PAUSE right now", "pause", true},
		{"mixed case safe word", "let's take a break", "Break", true},
		{"no match", "keep going", "pause", false},
		{"empty safe word never matches", "anything", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchSafeWord(tt.utterance, tt.safeWord))
		})
	}
}

func TestSafeWordShortCircuits(t *testing.T) {
	e := New(nil)
	profile := &UserProfile{
		Boundaries: Boundaries{SafeWord: "pineapple"},
	}

	reply := e.Respond("ok PINEAPPLE, too much", nil, profile)

	assert.Equal(t, ToneGrounding, reply.Tone)
	assert.Equal(t, MoodNeutral, reply.DetectedMood)
	assert.Contains(t, strings.ToLower(reply.Text), "pineapple")
	// Bypasses the whole pipeline: no facts, no session bookkeeping.
	assert.Empty(t, profile.Memories)
	assert.Empty(t, profile.Sessions)
}

func TestCrisisReplyCarriesAllResources(t *testing.T) {
	e := New(nil)
	profile := &UserProfile{}

	reply := e.Respond("I feel hopeless, I want to kill myself", nil, profile)

	require.Equal(t, ToneGrounding, reply.Tone)
	assert.Equal(t, MoodDistressed, reply.DetectedMood)
	// The template is atomic: all three resource lines, verbatim.
	assert.Contains(t, reply.Text, CrisisLifelineLine)
	assert.Contains(t, reply.Text, CrisisTextLine)
	assert.Contains(t, reply.Text, CrisisDirectoryLine)
}

func TestDistressedWithoutCrisisLexiconIsNotCrisis(t *testing.T) {
	// The distressed mood lexicon is broader than the crisis lexicon.
	assert.Equal(t, MoodDistressed, ClassifyMood("I'm so overwhelmed and anxious"))
	assert.False(t, IsCrisis(MoodDistressed, "I'm so overwhelmed and anxious"))
}

func TestCrisisRequiresDistressedMood(t *testing.T) {
	// Lexicon hit alone is not enough; the mood must classify as distressed.
	assert.False(t, IsCrisis(MoodNeutral, "that game made me want to end it all, haha"))
}
