package presence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erikmg100/sesame-retell-integration/internal/types"
)

func caller(content string) types.Utterance {
	return types.Utterance{Role: types.RoleCaller, Content: content}
}

func TestEnhance_Deterministic(t *testing.T) {
	p := New()
	ctx := []types.Utterance{caller("I was hurt in the accident and it was scary")}
	text := "Can you briefly explain the situation?"

	first := p.Enhance(text, ctx, "call-a")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, p.Enhance(text, ctx, "call-a"))
	}
}

func TestEnhance_EmptyTextNoOp(t *testing.T) {
	p := New()
	assert.Equal(t, "", p.Enhance("", []types.Utterance{caller("accident")}, "call-a"))
}

func TestEnhance_NoContextLeavesPrefixesOff(t *testing.T) {
	p := New()
	got := p.Enhance("Hi, this is Gabbi, the AI receptionist at TonaLaw. How can I help you?", nil, "call-a")
	assert.Equal(t, "Hi, this is Gabbi, the AI receptionist at TonaLaw... How can I help you?", got)
}

func TestConversationalDynamics_PauseInsertion(t *testing.T) {
	got := conversationalDynamics("One. Two. Three.", nil, "")
	assert.Equal(t, "One... Two... Three.", got)
}

func TestContextualAwareness(t *testing.T) {
	t.Run("hardship context gets a stable empathy opener", func(t *testing.T) {
		ctx := []types.Utterance{caller("my back hurt after the fall")}
		got := contextualAwareness("Where and when did the accident happen?", ctx, "")

		opener := strings.SplitN(got, ". ", 2)[0]
		assert.Contains(t, empathyOpeners, opener)
		assert.Equal(t, got, contextualAwareness("Where and when did the accident happen?", ctx, ""))
	})

	t.Run("severe context gets the fixed stronger line", func(t *testing.T) {
		ctx := []types.Utterance{caller("they rushed him into surgery")}
		got := contextualAwareness("I see.", ctx, "")
		assert.True(t, strings.HasPrefix(got, "Oh my gosh, that sounds awful I'm sorry. "))
	})

	t.Run("only the last two utterances count", func(t *testing.T) {
		ctx := []types.Utterance{
			caller("there was an accident"),
			caller("anyway"),
			caller("never mind that"),
		}
		got := contextualAwareness("Okay.", ctx, "")
		assert.Equal(t, "Okay.", got)
	})

	t.Run("empty content entries are harmless", func(t *testing.T) {
		ctx := []types.Utterance{{Role: types.RoleCaller}, {}}
		assert.Equal(t, "Okay.", contextualAwareness("Okay.", ctx, ""))
	})
}

func TestEmotionalIntelligence(t *testing.T) {
	t.Run("trauma outranks frustration", func(t *testing.T) {
		ctx := []types.Utterance{caller("I'm angry and frustrated about the accident")}
		got := emotionalIntelligence("Okay.", ctx, "")
		assert.True(t, strings.HasPrefix(got, "I can hear this has been really difficult for you... "))
		assert.True(t, strings.HasSuffix(got, "Take your time, there's no rush."))
	})

	t.Run("frustration alone", func(t *testing.T) {
		ctx := []types.Utterance{caller("the insurer denied everything, it's ridiculous")}
		got := emotionalIntelligence("Okay.", ctx, "")
		assert.True(t, strings.HasPrefix(got, "I understand your frustration... "))
	})

	t.Run("no context is a no-op", func(t *testing.T) {
		assert.Equal(t, "Okay.", emotionalIntelligence("Okay.", nil, ""))
	})
}

func TestPersonalityConsistency(t *testing.T) {
	t.Run("short replies untouched", func(t *testing.T) {
		assert.Equal(t, "Okay.", personalityConsistency("Okay.", nil, ""))
	})

	t.Run("long replies get one stable encouragement", func(t *testing.T) {
		long := strings.Repeat("We will review every detail of your claim. ", 3)
		got := personalityConsistency(long, nil, "")
		require.NotEqual(t, long, got)

		matched := 0
		for _, e := range encouragements {
			if strings.Contains(got, "And "+e+".") {
				matched++
			}
		}
		assert.Equal(t, 1, matched)
		assert.Equal(t, got, personalityConsistency(long, nil, ""))
	})

	t.Run("no doubled encouragement", func(t *testing.T) {
		text := "Again, I'm very sorry to hear about your situation but you made the right call. I'm transferring you now."
		assert.Equal(t, text, personalityConsistency(text, nil, ""))
	})
}

func TestPick_Stable(t *testing.T) {
	candidates := []string{"a", "b", "c"}
	assert.Equal(t, pick(candidates, "seed"), pick(candidates, "seed"))
}
