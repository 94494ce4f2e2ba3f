// Package dialogue is the per-call intake state machine. One parameterized
// core: the tracks (slot order, prompts, qualification rule) are data, so the
// same Advance loop serves personal-injury and no-fault intake.
package dialogue

import (
	"github.com/erikmg100/sesame-retell-integration/internal/classify"
	"github.com/erikmg100/sesame-retell-integration/internal/knowledge"
	"github.com/erikmg100/sesame-retell-integration/internal/session"
)

// SlotDef names a slot and the question that asks for it. The question is
// spoken when the previous slot in order gets stored.
type SlotDef struct {
	Name string
	Ask  string
}

// TrackDef is everything track-specific. IntakeSlots are collected in
// StateCollecting, QualifySlots in the track's qualifying state; Resolve
// decides the terminal transition once the last qualify slot is stored.
type TrackDef struct {
	Track           classify.Track
	ConfirmReply    string // spoken when the track is evident in the very first utterance
	IntakeSlots     []SlotDef
	QualifyingState session.State
	QualifySlots    []SlotDef
	Resolve         func(lastInput string) (session.State, string)
}

// Config parameterizes a Flow. Template text lives here, not in control flow.
type Config struct {
	Greeting     string
	OpenQuestion string
	DeclineReply string
	DefaultReply string
	Reminder     string
	Tracks       map[classify.Track]*TrackDef
	AnswerFAQ    func(utterance string) string
}

const (
	caseTypeSlot = "case_type"

	piConfirm    = "Okay got it so to confirm, you are calling about a personal injury matter, right?"
	piNameAsk    = "Let me start by getting your first and last name. Do you mind spelling your full name slowly and clearly for me?"
	phoneAsk     = "And to confirm, is the number you are calling us from the best number to reach you at?"
	piTransfer   = "Okay so what I'd like to do now is transfer you over to my colleague who will help you with the next steps. Again, I'm very sorry to hear about your situation but you made the right call. I'm transferring you now."
	piNotQualify = "I understand. Since there were no injuries, this might not qualify for a personal injury case. However, I'd be happy to discuss other options or see if there's anything else I can help you with."

	nfConfirm  = "We appreciate you calling us at Tona Law. I understand you're calling about no-fault collection. What is the name of your practice?"
	nfNameAsk  = "What is the name of your practice?"
	nfTransfer = "Thank you for that information. Let me transfer you to one of our attorneys who specializes in no-fault collection cases. They'll be able to help you with the next steps."
)

// DefaultConfig is the Tona Law intake flow.
func DefaultConfig() Config {
	return Config{
		Greeting:     "Hi, this is Gabbi, the AI receptionist at TonaLaw. How can I help you?",
		OpenQuestion: "We appreciate you calling us at Tona Law. What kind of matter can I assist you with?",
		DeclineReply: "I appreciate you calling us, but we actually don't handle these types of cases. I recommend you contact a law firm that specializes in that area. Is there anything else I can help you with?",
		DefaultReply: "I want to make sure I understand you correctly. Could you please repeat that for me?",
		Reminder:     "I'm still here if you need a moment to think or if you'd like to continue. Take your time.",
		AnswerFAQ:    knowledge.AnswerFAQ,
		Tracks: map[classify.Track]*TrackDef{
			classify.TrackPersonalInjury: {
				Track:        classify.TrackPersonalInjury,
				ConfirmReply: piConfirm,
				IntakeSlots: []SlotDef{
					{Name: "name", Ask: piNameAsk},
					{Name: "phone_confirmed", Ask: phoneAsk},
				},
				QualifyingState: session.StateQualifyingInjury,
				QualifySlots: []SlotDef{
					{Name: "situation", Ask: "Can you briefly explain the situation?"},
					{Name: "location_time", Ask: "Where and when did the accident happen?"},
					{Name: "injuries", Ask: "Can you please describe the injuries from the accident?"},
				},
				Resolve: func(lastInput string) (session.State, string) {
					if classify.MentionsInjury(lastInput) {
						return session.StateReadyTransfer, piTransfer
					}
					return session.StateNotQualified, piNotQualify
				},
			},
			classify.TrackNoFault: {
				Track:        classify.TrackNoFault,
				ConfirmReply: nfConfirm,
				IntakeSlots: []SlotDef{
					{Name: "name", Ask: nfNameAsk},
					{Name: "phone_confirmed", Ask: phoneAsk},
				},
				QualifyingState: session.StateQualifyingNoFault,
				QualifySlots: []SlotDef{
					{Name: "provider_type", Ask: "Thank you. What type of healthcare provider are you?"},
					{Name: "accepts_no_fault", Ask: "Do you currently accept No-Fault Insurance in your practice as a form of payment?"},
					{Name: "outstanding_amount", Ask: "What is your estimate of the dollar amount outstanding to date in wrongly denied no fault benefits?"},
				},
				Resolve: func(string) (session.State, string) {
					return session.StateReadyTransfer, nfTransfer
				},
			},
		},
	}
}
