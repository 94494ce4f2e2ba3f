// Package classify maps free-text caller utterances onto the small closed
// label sets the intake flow runs on. Everything here is keyword heuristics:
// lower-case the input, test fixed keyword lists as substrings, first list
// wins. No model calls, no side effects.
package classify

import "strings"

// Track is the classified case category. It decides which slot sequence the
// dialogue collects; the vocabularies of the two tracks never mix.
type Track string

const (
	TrackPersonalInjury  Track = "personal_injury"
	TrackNoFault         Track = "no_fault"
	TrackOutsidePractice Track = "outside_practice"
	TrackUnknown         Track = "unknown"
)

// trackRules are evaluated in order; the first rule with a keyword hit wins.
var trackRules = []struct {
	label    Track
	keywords []string
}{
	{TrackPersonalInjury, []string{"accident", "injured", "hurt", "car", "truck", "motorcycle", "slip", "fall", "crash"}},
	{TrackNoFault, []string{"no fault", "no-fault", "insurance", "practice", "healthcare", "provider", "denied", "benefits"}},
	{TrackOutsidePractice, []string{"divorce", "criminal", "family", "real estate", "bankruptcy", "immigration"}},
}

// IdentifyTrack classifies an utterance into an intake track.
func IdentifyTrack(utterance string) Track {
	lower := strings.ToLower(utterance)
	for _, r := range trackRules {
		if containsAny(lower, r.keywords) {
			return r.label
		}
	}
	return TrackUnknown
}

// explicitInjuryWords are the stronger signals that let the flow skip the
// open "what kind of matter" question and go straight to confirmation.
var explicitInjuryWords = []string{"accident", "injured", "car", "truck"}

// MentionsAccident reports whether the caller already named the incident
// outright, not just something adjacent to it.
func MentionsAccident(utterance string) bool {
	return containsAny(strings.ToLower(utterance), explicitInjuryWords)
}

var injuryEvidenceWords = []string{"injured", "hurt", "pain", "hospital", "doctor", "medical"}

// MentionsInjury is the personal-injury qualification check: did the caller
// describe actual injuries or medical care.
func MentionsInjury(utterance string) bool {
	return containsAny(strings.ToLower(utterance), injuryEvidenceWords)
}

// Emotion labels detected in intake calls. Declaration order is also the
// precedence order consumers use when several apply at once.
type Emotion string

const (
	EmotionTrauma      Emotion = "trauma"
	EmotionFrustration Emotion = "frustration"
	EmotionConfusion   Emotion = "confusion"
	EmotionUrgency     Emotion = "urgency"
)

var emotionRules = []struct {
	label    Emotion
	keywords []string
}{
	{EmotionTrauma, []string{"accident", "injured", "scared", "traumatic", "hospital", "emergency"}},
	{EmotionFrustration, []string{"frustrated", "angry", "denied", "refused", "unfair", "ridiculous"}},
	{EmotionConfusion, []string{"confused", "understand", "explain", "what", "how", "why"}},
	{EmotionUrgency, []string{"urgent", "quickly", "asap", "immediately", "deadline", "statute"}},
}

// DetectEmotions returns every matching emotion, in precedence order.
// Unlike track classification this is a set: a caller can be both hurt and
// angry in the same breath.
func DetectEmotions(content string) []Emotion {
	lower := strings.ToLower(content)
	var out []Emotion
	for _, r := range emotionRules {
		if containsAny(lower, r.keywords) {
			out = append(out, r.label)
		}
	}
	return out
}

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
