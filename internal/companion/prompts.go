package companion

// Guided conversation prompts, grouped by theme. Used by the chat surface to
// offer the user a starting point between exchanges.
type PromptCategory string

const (
	PromptCheckIns      PromptCategory = "check_ins"
	PromptBoundaries    PromptCategory = "boundaries"
	PromptDesires       PromptCategory = "desires"
	PromptPatterns      PromptCategory = "patterns"
	PromptSelfDiscovery PromptCategory = "self_discovery"
)

var guidedPrompts = map[PromptCategory][]string{
	PromptCheckIns: {
		"How are you feeling about dating right now?",
		"What's been on your mind lately?",
		"Is there anything you've been wanting to explore or talk through?",
		"How's your energy today—are you feeling drained or energized?",
		"What's one thing that would make today feel better?",
	},
	PromptBoundaries: {
		"What's one boundary you've been wanting to set but haven't yet?",
		"Where in your life do you feel most comfortable saying 'no'? Where is it hardest?",
		"How do you feel when someone crosses a boundary of yours?",
		"What would it look like to protect your energy more intentionally?",
	},
	PromptDesires: {
		"What does intimacy look like for you in an ideal relationship?",
		"What are you craving—emotionally, physically, or spiritually?",
		"If you could design your perfect relationship, what would it include?",
		"What brings you genuine pleasure and joy?",
	},
	PromptPatterns: {
		"What patterns are you noticing in your relationships or dating life?",
		"Is there a version of yourself you keep showing up as that doesn't feel authentic?",
		"What old belief about yourself are you ready to let go of?",
		"What keeps coming up for you lately?",
	},
	PromptSelfDiscovery: {
		"What version of yourself are you becoming?",
		"What makes you feel most like yourself?",
		"If you weren't afraid, what would you do differently?",
		"What do you know to be true about yourself, even on hard days?",
	},
}

// GuidedPrompt returns one prompt from the category's pool, chosen with the
// engine's random source. Unknown categories fall back to check-ins.
func (e *Engine) GuidedPrompt(category PromptCategory) string {
	pool, ok := guidedPrompts[category]
	if !ok {
		pool = guidedPrompts[PromptCheckIns]
	}
	return pool[e.rng.Intn(len(pool))]
}

// ShouldOfferCheckIn reports whether the surface should offer a check-in
// prompt at this point of the session. Fires every 12th message.
func ShouldOfferCheckIn(messageCount int) bool {
	return messageCount > 0 && messageCount%12 == 0
}
