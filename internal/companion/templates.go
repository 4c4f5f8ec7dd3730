package companion

// Template pools for the synthesizer. Immutable configuration: pools are built
// once and injected, never mutated at runtime. Placeholders:
//
//	{who}     user's name, or "there"
//	{name}    optional ", <name>" suffix
//	{memory}  most relevant fact, lowercased
//	{prefix}  burnout acknowledgment, or empty
//	{context} boundary acknowledgment, or empty
type TemplateSet struct {
	Welcome           string
	GreetingFirstTime string
	GreetingReturning string
	GreetingMemory    string
	Distressed        []string
	SexualWellness    []string
	SelfDiscovery     []string
	DatingBurnout     []string
	BurnoutAck        string
	Boundaries        []string
	BoundaryAck       string
	Desires           []string
	Emotional         []string
	CuriousExcited    []string
	Fallback          []string
	Generic           string
}

// DefaultTemplates returns the stock reply pools.
func DefaultTemplates() *TemplateSet {
	return &TemplateSet{
		Welcome: "Hi {who}, I'm Eli. I'm really glad you're here. This is your space—judgment-free, at your own pace. I'm here to listen, remember, and help you explore whatever's on your mind. How are you feeling right now?",

		GreetingFirstTime: "Hi{name}! I'm so glad you're here. What's on your heart today?",
		GreetingReturning: "Welcome back{name}! I've been thinking about our last conversation. How are you feeling today?",
		GreetingMemory:    "Hi{name}! Good to see you again. Last time we talked about {memory}. How have you been since then?",

		Distressed: []string{
			"I can feel how much pain you're in right now, and I want you to know I'm here with you. You don't have to carry this alone. Take a breath with me—can you tell me what you need in this moment?",
			"That sounds incredibly hard. Your feelings are completely valid. Before we continue, I want to make sure you're safe and have support. Are you in a safe place right now?",
			"I'm really hearing the weight of what you're going through. It takes strength to share this. What would help you feel even a little bit more grounded right now?",
		},

		SexualWellness: []string{
			"This is a brave space to explore what you desire. There's no shame here—your sexuality is yours to understand and celebrate. What aspect of this feels most important to explore right now?",
			"I appreciate you sharing this with me. Your desires matter, and understanding them is part of knowing yourself fully. What would it feel like to honor what you're feeling?",
			"You're allowed to want what you want. Sexual wellness is about agency, pleasure, and knowing your own body and mind. What boundaries or desires are you curious about?",
			"Thank you for trusting me with this. Exploring your sexuality—fantasies, boundaries, what turns you on—is healthy and empowering. Where would you like to start?",
		},

		SelfDiscovery: []string{
			"That's such a powerful question to sit with{name}. It takes courage to admit when we feel lost. What if, instead of trying to find all the answers right now, we explore what feels true in this moment? What's one thing you know about yourself that hasn't changed?",
			"You're in a season of becoming, and that can feel disorienting. But here's what I notice: you're asking the questions. That's where discovery begins. What part of yourself are you most curious about right now?",
			"Not knowing is actually a really honest place to be. Many people pretend they have it all figured out, but you're brave enough to sit in the uncertainty. What if this confusion is making space for something new to emerge?",
		},

		BurnoutAck: "I remember you mentioned feeling burned out before. ",
		DatingBurnout: []string{
			"{prefix}Dating burnout is so real, and it makes sense that you're feeling this way. The constant performance, the disappointments—it's exhausting. What would it feel like to take the pressure off for a while and just focus on what you actually enjoy?",
			"{prefix}It sounds like dating has been draining rather than nourishing. That's important information. What would change if you shifted from 'finding someone' to 'discovering what I actually want'? You deserve relationships that energize you, not deplete you.",
			"{prefix}I hear you. The burnout is valid. Sometimes we need to step back and remember that being single isn't a problem to solve—it's a space where you get to be fully yourself. What parts of your life feel most alive to you right now?",
		},

		BoundaryAck: " I remember you've mentioned boundaries around {memory}.",
		Boundaries: []string{
			"Setting boundaries is one of the most loving things you can do—for yourself and others.{context} It's hard at first, especially if you've been conditioned to please. What's one small boundary you'd like to practice?",
			"Boundaries aren't walls—they're clarity.{context} They help you honor your needs while still showing up in relationships. Where do you notice you need more protection or space in your life?",
			"Saying no is a complete sentence, even though it doesn't always feel that way.{context} What makes it hard for you to say no? Let's explore what's underneath that.",
		},

		Desires: []string{
			"Desire is such valuable information. It shows us what we're drawn to, what we value, what we need. There's no shame in wanting. What desires feel most important for you to honor right now?",
			"Exploring what you want—emotionally, relationally, in all parts of your life—is an act of self-love. You're allowed to want things, to have needs, to dream. What part of your desires feels safe to explore today?",
			"Your desires matter. Not just in relationships, but in every part of your life. What would it look like to give yourself permission to pursue what truly lights you up?",
		},

		Emotional: []string{
			"Thank you for sharing how you're feeling{name}. Your emotions are valid, and they're giving you important information. What does this feeling need from you right now?",
			"I'm here with you in this{name}. Feelings can be intense, but they're also temporary. You're allowed to feel exactly what you're feeling. What would help you feel supported right now?",
			"It takes strength to sit with difficult emotions{name}. You're not running from them—you're here, feeling them. That's brave. What's this feeling trying to tell you?",
		},

		CuriousExcited: []string{
			"I love your energy around this! Tell me more—what's sparking this curiosity?",
			"This sounds like an important exploration for you. What's drawing you to think about this right now?",
			"I can feel your excitement! What would it mean to lean into this feeling?",
		},

		Fallback: []string{
			"I'm listening. Tell me more about that.",
			"That sounds really significant. What stands out to you most about what you just shared?",
			"I hear you. What would it mean to honor what you're experiencing right now?",
			"Thank you for trusting me with this. What feels most important for you to explore about this?",
			"There's wisdom in what you're saying. What do you notice when you sit with these thoughts?",
		},

		Generic: "I'm here and listening. Tell me more about what's on your mind.",
	}
}
