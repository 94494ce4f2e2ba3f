package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifyTrack(t *testing.T) {
	cases := []struct {
		name      string
		utterance string
		want      Track
	}{
		{"car accident", "I was in a car accident last week", TrackPersonalInjury},
		{"slip and fall", "I slipped at the grocery store and fell", TrackPersonalInjury},
		{"no-fault collection", "Our practice has denied no-fault claims piling up", TrackNoFault},
		{"medical provider", "We are a medical provider with denied benefits", TrackNoFault},
		{"divorce", "I need help with my divorce", TrackOutsidePractice},
		{"immigration", "It's an immigration question", TrackOutsidePractice},
		{"smalltalk", "hello there", TrackUnknown},
		{"empty", "", TrackUnknown},
		{"case insensitive", "MY TRUCK WAS HIT", TrackPersonalInjury},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IdentifyTrack(tc.utterance))
		})
	}
}

func TestIdentifyTrack_PriorityOrder(t *testing.T) {
	// Personal-injury keywords outrank no-fault keywords when both appear.
	got := IdentifyTrack("my insurance denied the claim after the accident")
	assert.Equal(t, TrackPersonalInjury, got)
}

func TestIdentifyTrack_Idempotent(t *testing.T) {
	in := "I got hurt in a motorcycle crash"
	first := IdentifyTrack(in)
	second := IdentifyTrack(in)
	assert.Equal(t, first, second)
}

func TestMentionsAccident(t *testing.T) {
	assert.True(t, MentionsAccident("a car hit me"))
	assert.True(t, MentionsAccident("I was INJURED at work"))
	// "slip" classifies as personal injury but is not an explicit mention
	assert.False(t, MentionsAccident("I slipped on ice"))
}

func TestMentionsInjury(t *testing.T) {
	assert.True(t, MentionsInjury("I went to the hospital with back pain"))
	assert.False(t, MentionsInjury("no, everyone was fine"))
}

func TestDetectEmotions(t *testing.T) {
	t.Run("returns a set in precedence order", func(t *testing.T) {
		got := DetectEmotions("I'm so frustrated, the accident left me scared")
		require.Len(t, got, 2)
		assert.Equal(t, EmotionTrauma, got[0])
		assert.Equal(t, EmotionFrustration, got[1])
	})

	t.Run("single match", func(t *testing.T) {
		got := DetectEmotions("please move quickly, there's a deadline")
		require.Len(t, got, 1)
		assert.Equal(t, EmotionUrgency, got[0])
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, DetectEmotions("good morning"))
	})

	t.Run("idempotent", func(t *testing.T) {
		in := "I'm confused, can you explain"
		assert.Equal(t, DetectEmotions(in), DetectEmotions(in))
	})
}
