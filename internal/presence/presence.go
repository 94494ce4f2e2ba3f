// Package presence is the voice-presence layer: an ordered sequence of pure
// text-rewriting passes applied to every outgoing reply. Pass order is fixed
// and part of the contract: emotional intelligence, then conversational
// pauses, then contextual empathy, then the personality suffix.
//
// Anywhere a pass picks among candidate phrasings it uses pick, a stable
// FNV-1a selector over the input text, so identical input always yields
// byte-identical output.
package presence

import (
	"hash/fnv"
	"strings"

	"github.com/erikmg100/sesame-retell-integration/internal/classify"
	"github.com/erikmg100/sesame-retell-integration/internal/types"
)

// Pass rewrites reply text using the recent transcript context. Passes must
// no-op on empty text and never panic on odd context entries.
type Pass func(text string, ctx []types.Utterance, callID string) string

// Pipeline applies its passes in order.
type Pipeline struct {
	passes []Pass
}

// New returns the standard four-pass pipeline.
func New() *Pipeline {
	return &Pipeline{passes: []Pass{
		emotionalIntelligence,
		conversationalDynamics,
		contextualAwareness,
		personalityConsistency,
	}}
}

// Enhance runs the full pipeline over a base reply.
func (p *Pipeline) Enhance(text string, ctx []types.Utterance, callID string) string {
	if text == "" {
		return text
	}
	for _, pass := range p.passes {
		text = pass(text, ctx, callID)
	}
	return text
}

// recentContext joins the content of the last two utterances. Entries with
// no content contribute empty strings, nothing more.
func recentContext(ctx []types.Utterance) string {
	if len(ctx) > 2 {
		ctx = ctx[len(ctx)-2:]
	}
	parts := make([]string, 0, len(ctx))
	for _, u := range ctx {
		parts = append(parts, u.Content)
	}
	return strings.Join(parts, " ")
}

// pick is the stable phrase selector: FNV-1a 32-bit of seed, mod the
// candidate count. Stable across runs and platforms; do not swap for a
// salted or randomized hash.
func pick(candidates []string, seed string) string {
	h := fnv.New32a()
	h.Write([]byte(seed))
	return candidates[h.Sum32()%uint32(len(candidates))]
}

// emotionalIntelligence wraps the reply for the dominant detected emotion.
// Detection returns a set; precedence picks at most one rewrite.
func emotionalIntelligence(text string, ctx []types.Utterance, _ string) string {
	if text == "" || len(ctx) == 0 {
		return text
	}
	emotions := classify.DetectEmotions(recentContext(ctx))
	if len(emotions) == 0 {
		return text
	}
	switch emotions[0] {
	case classify.EmotionTrauma:
		return "I can hear this has been really difficult for you... " + text + " Take your time, there's no rush."
	case classify.EmotionFrustration:
		return "I understand your frustration... " + text + " We're here to help make this easier for you."
	case classify.EmotionConfusion:
		return "Let me help clarify this for you. " + text + " Does that make more sense?"
	case classify.EmotionUrgency:
		return "I understand this is urgent for you. " + text + " We'll move as quickly as we can."
	}
	return text
}

// conversationalDynamics stretches sentence boundaries into spoken pauses.
func conversationalDynamics(text string, _ []types.Utterance, _ string) string {
	if text == "" {
		return text
	}
	return strings.ReplaceAll(text, ". ", "... ")
}

var empathyOpeners = []string{
	"I'm so sorry to hear that happened to you",
	"That sounds really difficult",
	"I can only imagine how that must feel",
	"That must have been scary",
}

var hardshipWords = []string{"accident", "injured", "hurt", "pain"}
var severityWords = []string{"severe", "serious", "hospital", "surgery"}

// contextualAwareness prefixes empathy when the recent context mentions an
// incident, with a fixed stronger line for severe situations.
func contextualAwareness(text string, ctx []types.Utterance, _ string) string {
	if text == "" || len(ctx) == 0 {
		return text
	}
	recent := recentContext(ctx)
	lower := strings.ToLower(recent)
	for _, w := range hardshipWords {
		if strings.Contains(lower, w) {
			return pick(empathyOpeners, recent) + ". " + text
		}
	}
	for _, w := range severityWords {
		if strings.Contains(lower, w) {
			return "Oh my gosh, that sounds awful I'm sorry. " + text
		}
	}
	return text
}

var encouragements = []string{
	"you made the right call",
	"I'm here to help you through this",
	"we're going to take good care of you",
}

// personalityConsistency closes longer replies with one of Gabbi's
// encouraging lines, unless the reply already carries one.
func personalityConsistency(text string, _ []types.Utterance, _ string) string {
	if len(text) <= 80 {
		return text
	}
	lower := strings.ToLower(text)
	for _, phrase := range encouragements {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return text
		}
	}
	return text + " And " + pick(encouragements, text) + "."
}
