package companion

import "time"

// Mood is the classifier-assigned emotional state of a user utterance.
type Mood string

const (
	MoodDistressed Mood = "distressed"
	MoodExcited    Mood = "excited"
	MoodCurious    Mood = "curious"
	MoodLow        Mood = "low"
	MoodNeutral    Mood = "neutral"
)

// Tone is the emotional register of a companion reply.
type Tone string

const (
	ToneSupportive  Tone = "supportive"
	ToneReflective  Tone = "reflective"
	ToneExploratory Tone = "exploratory"
	ToneValidating  Tone = "validating"
	ToneGrounding   Tone = "grounding"
	ToneIntimate    Tone = "intimate"
)

// FactCategory classifies a long-term memory fact. Closed set.
type FactCategory string

const (
	FactPersonal     FactCategory = "personal"
	FactWork         FactCategory = "work"
	FactRelationship FactCategory = "relationship"
	FactPreference   FactCategory = "preference"
	FactBoundary     FactCategory = "boundary"
	FactPattern      FactCategory = "pattern"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderCompanion Sender = "companion"
)

// MemoryFact is a durable, categorized snippet of user information extracted
// from conversation. Created only by the extractor, never mutated in place.
type MemoryFact struct {
	ID        string       `json:"id"`
	Category  FactCategory `json:"category"`
	Fact      string       `json:"fact"`
	CreatedAt time.Time    `json:"created_at"`
}

// Session is one calendar day of activity. MessageCount only grows within a day.
type Session struct {
	Date         time.Time `json:"date"`
	MessageCount int       `json:"message_count"`
}

// Message is one turn in the conversation. Immutable once created.
// Companion messages always carry Tone and DetectedMood.
type Message struct {
	ID           string    `json:"id"`
	Sender       Sender    `json:"sender"`
	Text         string    `json:"text"`
	Timestamp    time.Time `json:"timestamp"`
	Tone         Tone      `json:"tone,omitempty"`
	DetectedMood Mood      `json:"detected_mood,omitempty"`
}

// Boundaries holds the user-defined limits the engine must honor.
type Boundaries struct {
	SafeWord        string   `json:"safe_word"`
	OffLimitsTopics []string `json:"off_limits_topics,omitempty"`
}

// ChatPace controls how long the companion "thinks" before replying.
type ChatPace string

const (
	PaceSlow   ChatPace = "slow"
	PaceMedium ChatPace = "medium"
	PaceFast   ChatPace = "fast"
)

// Preferences are user-controlled engine switches.
type Preferences struct {
	SexualWellnessEnabled bool     `json:"sexual_wellness_enabled"`
	ChatPace              ChatPace `json:"chat_pace"`
	CloudSync             bool     `json:"cloud_sync"`
}

// DefaultSafeWord is used when the profile carries no safe word.
const DefaultSafeWord = "pause"

// UserProfile is the single mutable aggregate the engine touches. The engine
// only appends to Memories and updates the last Session.
type UserProfile struct {
	Name        string       `json:"name,omitempty"`
	Boundaries  Boundaries   `json:"boundaries"`
	Preferences Preferences  `json:"preferences"`
	Memories    []MemoryFact `json:"memories"`
	Sessions    []Session    `json:"sessions"`
}

// Normalize repairs a malformed profile in place: missing collections become
// empty, an empty safe word falls back to the default, an unknown pace becomes
// medium. Never fails; a broken profile shape must not abort a reply.
func (p *UserProfile) Normalize() {
	if p.Memories == nil {
		p.Memories = []MemoryFact{}
	}
	if p.Sessions == nil {
		p.Sessions = []Session{}
	}
	if p.Boundaries.SafeWord == "" {
		p.Boundaries.SafeWord = DefaultSafeWord
	}
	switch p.Preferences.ChatPace {
	case PaceSlow, PaceMedium, PaceFast:
	default:
		p.Preferences.ChatPace = PaceMedium
	}
}

// FactsByCategory returns the profile's facts of one category in storage order.
func (p *UserProfile) FactsByCategory(c FactCategory) []MemoryFact {
	var out []MemoryFact
	for _, m := range p.Memories {
		if m.Category == c {
			out = append(out, m)
		}
	}
	return out
}
