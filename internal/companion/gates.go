package companion

import (
	"fmt"
	"regexp"
	"strings"
)

// MatchSafeWord reports whether the utterance contains the safe word as a
// case-insensitive substring. The safe-word check has absolute priority over
// every other stage of the pipeline.
func MatchSafeWord(utterance, safeWord string) bool {
	if safeWord == "" {
		return false
	}
	return strings.Contains(strings.ToLower(utterance), strings.ToLower(safeWord))
}

func safeWordReply(safeWord string) string {
	return fmt.Sprintf("I hear you saying %q. I'm pausing right here. You're in complete control. Would you like to change topics, slow down, or take a break? What would feel better right now?", safeWord)
}

// crisisLexicon is a small, fixed set of literal self-harm phrases. It is
// deliberately narrower than the distressed mood lexicon: a distressed mood
// alone never triggers the crisis reply.
var crisisLexicon = regexp.MustCompile(`(?i)suicidal|kill myself|end it all|self harm|hurt myself|not worth living`)

// IsCrisis reports whether the utterance requires the crisis-resource reply.
func IsCrisis(mood Mood, utterance string) bool {
	return mood == MoodDistressed && crisisLexicon.MatchString(utterance)
}

// Crisis resource lines. The reply template is atomic: either all three lines
// appear verbatim or the sentinel did not fire at all.
const (
	CrisisLifelineLine  = "• National Suicide Prevention Lifeline: 988 (US)"
	CrisisTextLine      = "• Crisis Text Line: Text HOME to 741741"
	CrisisDirectoryLine = "• International Association for Suicide Prevention: https://www.iasp.info/resources/Crisis_Centres/"
)

func crisisReply() string {
	return "I'm really concerned about what you just shared. You deserve real, immediate support. Please reach out to a crisis helpline:\n\n" +
		CrisisLifelineLine + "\n" +
		CrisisTextLine + "\n" +
		CrisisDirectoryLine + "\n\n" +
		"I'm here to listen, but you need and deserve professional help right now. Can you reach out to one of these resources?"
}
