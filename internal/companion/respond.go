package companion

import (
	"regexp"
	"strings"
	"time"
)

// Intent lexicons for the synthesizer cascade.
var (
	greetingPattern      = regexp.MustCompile(`^(hi|hello|hey|good morning|good evening)`)
	selfDiscoveryPattern = regexp.MustCompile(`who am i|what do i want|my purpose|discover myself|lost|confused|don't know`)
	datingPattern        = regexp.MustCompile(`dating|relationship|partner|love|romance|men|burnout|tired|exhaust`)
	boundariesPattern    = regexp.MustCompile(`boundary|boundaries|no|can't say no|people pleasing|put myself first`)
	desiresPattern       = regexp.MustCompile(`want|desire|need|crave|wish|fantasy|sexual|intimacy`)
	emotionalPattern     = regexp.MustCompile(`feel|feeling|emotion|sad|happy|angry|frustrated|overwhelmed|anxious`)
	wellnessPattern      = regexp.MustCompile(`sex|sexual|arousal|turned on|desire|fantasy|fantasies|intimate|intimacy|pleasure|orgasm`)
)

// intentInput is the snapshot one cascade evaluation works over.
type intentInput struct {
	text        string // lowered utterance
	mood        Mood
	profile     *UserProfile
	relevant    []MemoryFact
	prevSession *Session
}

// intentRule is one cascade entry: a predicate and a reply builder with a
// statically assigned tone. Rules are evaluated top to bottom, first match
// wins, and the final rule matches unconditionally, so exactly one fires.
type intentRule struct {
	name  string
	tone  Tone
	match func(in intentInput) bool
	build func(in intentInput, t *TemplateSet, pick func([]string) string) string
}

var intentCascade = []intentRule{
	{
		name: "greeting",
		tone: ToneSupportive,
		match: func(in intentInput) bool {
			return greetingPattern.MatchString(in.text)
		},
		build: func(in intentInput, t *TemplateSet, pick func([]string) string) string {
			switch {
			case in.prevSession != nil && len(in.relevant) > 0:
				reply := fillName(t.GreetingMemory, in.profile.Name)
				return strings.ReplaceAll(reply, "{memory}", strings.ToLower(in.relevant[0].Fact))
			case in.prevSession != nil:
				return fillName(t.GreetingReturning, in.profile.Name)
			default:
				return fillName(t.GreetingFirstTime, in.profile.Name)
			}
		},
	},
	{
		name: "distressed",
		tone: ToneGrounding,
		match: func(in intentInput) bool {
			return in.mood == MoodDistressed
		},
		build: func(in intentInput, t *TemplateSet, pick func([]string) string) string {
			return pick(t.Distressed)
		},
	},
	{
		// Gated by the sexual wellness preference: when the switch is off the
		// lexicon match is ignored and the utterance falls through.
		name: "sexual_wellness",
		tone: ToneIntimate,
		match: func(in intentInput) bool {
			return in.profile.Preferences.SexualWellnessEnabled && wellnessPattern.MatchString(in.text)
		},
		build: func(in intentInput, t *TemplateSet, pick func([]string) string) string {
			return pick(t.SexualWellness)
		},
	},
	{
		name: "self_discovery",
		tone: ToneReflective,
		match: func(in intentInput) bool {
			return selfDiscoveryPattern.MatchString(in.text)
		},
		build: func(in intentInput, t *TemplateSet, pick func([]string) string) string {
			return fillName(pick(t.SelfDiscovery), in.profile.Name)
		},
	},
	{
		name: "dating_burnout",
		tone: ToneValidating,
		match: func(in intentInput) bool {
			return datingPattern.MatchString(in.text)
		},
		build: func(in intentInput, t *TemplateSet, pick func([]string) string) string {
			prefix := ""
			for _, m := range in.profile.Memories {
				if strings.Contains(m.Fact, "dating burnout") {
					prefix = t.BurnoutAck
					break
				}
			}
			return strings.ReplaceAll(pick(t.DatingBurnout), "{prefix}", prefix)
		},
	},
	{
		name: "boundaries",
		tone: ToneExploratory,
		match: func(in intentInput) bool {
			return boundariesPattern.MatchString(in.text)
		},
		build: func(in intentInput, t *TemplateSet, pick func([]string) string) string {
			context := ""
			if known := in.profile.FactsByCategory(FactBoundary); len(known) > 0 {
				context = strings.ReplaceAll(t.BoundaryAck, "{memory}", strings.ToLower(known[0].Fact))
			}
			return strings.ReplaceAll(pick(t.Boundaries), "{context}", context)
		},
	},
	{
		name: "desires",
		tone: ToneExploratory,
		match: func(in intentInput) bool {
			return desiresPattern.MatchString(in.text)
		},
		build: func(in intentInput, t *TemplateSet, pick func([]string) string) string {
			return pick(t.Desires)
		},
	},
	{
		name: "emotional",
		tone: ToneValidating,
		match: func(in intentInput) bool {
			return emotionalPattern.MatchString(in.text) || in.mood == MoodLow
		},
		build: func(in intentInput, t *TemplateSet, pick func([]string) string) string {
			return fillName(pick(t.Emotional), in.profile.Name)
		},
	},
	{
		name: "curious_excited",
		tone: ToneExploratory,
		match: func(in intentInput) bool {
			return in.mood == MoodCurious || in.mood == MoodExcited
		},
		build: func(in intentInput, t *TemplateSet, pick func([]string) string) string {
			return pick(t.CuriousExcited)
		},
	},
	{
		name:  "reflective_fallback",
		tone:  ToneReflective,
		match: func(in intentInput) bool { return true },
		build: func(in intentInput, t *TemplateSet, pick func([]string) string) string {
			return pick(t.Fallback)
		},
	},
}

// fillName substitutes the optional ", <name>" suffix.
func fillName(template, name string) string {
	suffix := ""
	if name != "" {
		suffix = ", " + name
	}
	return strings.ReplaceAll(template, "{name}", suffix)
}

// synthesize picks exactly one intent category and builds the reply text. Any
// panic while building is converted to the generic supportive reply; synthesis
// never fails out to the caller.
func (e *Engine) synthesize(utterance string, mood Mood, profile *UserProfile, relevant []MemoryFact, now time.Time) (text string, tone Tone, outMood Mood) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("synthesis recovered", "err", r)
			text = e.templates.Generic
			tone = ToneSupportive
			outMood = MoodNeutral
		}
	}()

	in := intentInput{
		text:        strings.ToLower(utterance),
		mood:        mood,
		profile:     profile,
		relevant:    relevant,
		prevSession: previousSession(profile, now),
	}
	pick := func(pool []string) string { return pool[e.rng.Intn(len(pool))] }

	for _, rule := range intentCascade {
		if !rule.match(in) {
			continue
		}
		e.log.Debug("intent selected", "intent", rule.name, "mood", mood)
		return rule.build(in, e.templates, pick), rule.tone, mood
	}
	// Unreachable: the fallback rule always matches.
	return e.templates.Generic, ToneSupportive, mood
}
