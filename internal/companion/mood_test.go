package companion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyMood(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      Mood
	}{
		{"empty", "", MoodNeutral},
		{"plain statement", "I went to the store today", MoodNeutral},
		{"distressed", "I'm so overwhelmed and anxious", MoodDistressed},
		{"distressed beats excited", "I'm scared but haha whatever", MoodDistressed},
		{"playful marker", "haha that was fun", MoodExcited},
		{"superlative marker", "omg so good!!", MoodExcited},
		{"curious", "I've been wondering, what if I tried something new", MoodCurious},
		{"low", "I'm drained and burned out", MoodLow},
		{"excited beats low", "lol I'm exhausted but it was fun", MoodExcited},
		{"capitalization ignored", "I Feel HOPELESS", MoodDistressed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMood(tt.utterance))
		})
	}
}

func TestClassifyMoodDeterministic(t *testing.T) {
	inputs := []string{
		"I'm so overwhelmed",
		"haha amazing",
		"curious about everything",
		"feeling pretty low and stuck",
		"nothing special",
	}
	for _, in := range inputs {
		first := ClassifyMood(in)
		for i := 0; i < 50; i++ {
			assert.Equal(t, first, ClassifyMood(in), "mood drifted for %q", in)
		}
	}
}
