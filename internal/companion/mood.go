package companion

import (
	"regexp"
	"strings"
)

// Mood lexicons, evaluated in fixed priority order: distressed > excited >
// curious > low > neutral default. First match wins. The two excited lexicons
// form a single priority tier.
var (
	distressedLexicon  = regexp.MustCompile(`hurt|crying|can't take|overwhelmed|anxious|panic|scared|afraid|alone|empty|hopeless|suicidal|self harm`)
	playfulLexicon     = regexp.MustCompile(`haha|lol|excited|fun|love it|amazing|can't wait|yay|!\s*!`)
	superlativeLexicon = regexp.MustCompile(`!!|so good|so excited|omg|love`)
	curiousLexicon     = regexp.MustCompile(`curious|wonder|thinking about|what if|exploring|trying to understand|figuring out`)
	lowLexicon         = regexp.MustCompile(`tired|exhausted|drained|sad|depressed|down|low|burned out|burnout|lonely|lost|stuck`)
)

// ClassifyMood maps an utterance to exactly one mood. Pure and deterministic:
// the same text always yields the same mood.
func ClassifyMood(utterance string) Mood {
	text := strings.ToLower(utterance)
	if text == "" {
		return MoodNeutral
	}
	switch {
	case distressedLexicon.MatchString(text):
		return MoodDistressed
	case playfulLexicon.MatchString(text), superlativeLexicon.MatchString(text):
		return MoodExcited
	case curiousLexicon.MatchString(text):
		return MoodCurious
	case lowLexicon.MatchString(text):
		return MoodLow
	default:
		return MoodNeutral
	}
}
