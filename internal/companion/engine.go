package companion

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Engine turns one user utterance into one companion reply. It is stateless
// across calls: every reply is computed fresh from the utterance, the history,
// and a profile snapshot. The only profile state it touches is Memories
// (append-only) and the last Session's counter.
//
// Processing order per utterance: safe-word gate, crisis gate, mood
// classification, fact extraction, relevance retrieval, synthesis, cadence.
// The two gates short-circuit; everything past them runs together.
type Engine struct {
	templates *TemplateSet
	rng       *rand.Rand
	log       *log.Logger
	now       func() time.Time
}

// New creates an engine with the stock template pools and a time-seeded
// random source.
func New(logger *log.Logger) *Engine {
	return NewWithSource(logger, DefaultTemplates(), rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource creates an engine with explicit templates and random source so
// tests can force deterministic template selection.
func NewWithSource(logger *log.Logger, templates *TemplateSet, src rand.Source) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	if templates == nil {
		templates = DefaultTemplates()
	}
	return &Engine{
		templates: templates,
		rng:       rand.New(src),
		log:       logger,
		now:       time.Now,
	}
}

// SetClock overrides the engine's time source. Tests only.
func (e *Engine) SetClock(now func() time.Time) {
	if now != nil {
		e.now = now
	}
}

// Respond classifies the utterance and produces exactly one companion reply.
// Side effects on profile: extracted facts appended to Memories and the
// session counter updated, except on safe-word and crisis turns, which
// short-circuit the pipeline. Respond never fails: any internal fault becomes
// a generic supportive reply.
func (e *Engine) Respond(utterance string, history []Message, profile *UserProfile) Message {
	now := e.now()
	profile.Normalize()

	// Absolute priority: the safe word halts everything, including extraction.
	if MatchSafeWord(utterance, profile.Boundaries.SafeWord) {
		e.log.Info("safe word received")
		return e.companionMessage(safeWordReply(profile.Boundaries.SafeWord), ToneGrounding, MoodNeutral, now)
	}

	mood := ClassifyMood(utterance)

	if IsCrisis(mood, utterance) {
		e.log.Warn("crisis lexicon matched, emitting resource reply")
		return e.companionMessage(crisisReply(), ToneGrounding, mood, now)
	}

	// Extraction always runs past the gates, whatever reply path follows.
	if fresh := e.ExtractFacts(utterance, profile.Memories); len(fresh) > 0 {
		e.log.Info("extracted facts", "count", len(fresh))
		profile.Memories = append(profile.Memories, fresh...)
	}

	relevant := RelevantFacts(utterance, profile.Memories)
	text, tone, outMood := e.synthesize(utterance, mood, profile, relevant, now)
	RecordExchange(profile, now)

	return e.companionMessage(text, tone, outMood, now)
}

// Welcome builds the onboarding greeting shown once after setup completes.
func (e *Engine) Welcome(name string) Message {
	if name == "" {
		name = "there"
	}
	text := strings.ReplaceAll(e.templates.Welcome, "{who}", name)
	return e.companionMessage(text, ToneSupportive, MoodNeutral, e.now())
}

func (e *Engine) companionMessage(text string, tone Tone, mood Mood, now time.Time) Message {
	return Message{
		ID:           uuid.NewString(),
		Sender:       SenderCompanion,
		Text:         text,
		Timestamp:    now,
		Tone:         tone,
		DetectedMood: mood,
	}
}
