package dialogue

import (
	"github.com/erikmg100/sesame-retell-integration/internal/classify"
	"github.com/erikmg100/sesame-retell-integration/internal/session"
)

// Flow advances call sessions through the intake states. It is stateless
// itself; all call state lives on the session, so one Flow serves every call.
type Flow struct {
	cfg Config
}

func NewFlow(cfg Config) *Flow {
	return &Flow{cfg: cfg}
}

// Greeting is the fixed opener for a call with no transcript yet.
func (f *Flow) Greeting() string { return f.cfg.Greeting }

// Reminder is the fixed re-engagement line for a silent caller.
func (f *Flow) Reminder() string { return f.cfg.Reminder }

// Advance consumes one caller utterance, mutates the session (slot record
// and state, unconditionally, no undo) and returns the base reply template.
// Replies here are literals; enhancement happens downstream.
func (f *Flow) Advance(s *session.Session, input string) string {
	switch s.State {
	case session.StateGreeting:
		return f.fromGreeting(s, input)
	case session.StateIdentifyingIntent:
		if reply, ok := f.fromIdentifying(s, input); ok {
			return reply
		}
	case session.StateCollecting:
		if reply, ok := f.collect(s, input, f.track(s).IntakeSlots, f.enterQualifying); ok {
			return reply
		}
	case session.StateQualifyingInjury, session.StateQualifyingNoFault:
		if reply, ok := f.collect(s, input, f.track(s).QualifySlots, f.resolve); ok {
			return reply
		}
	}

	// Terminal states and anything unmatched above: FAQ table, then the
	// fixed clarification. Never an error surface.
	if answer := f.cfg.AnswerFAQ(input); answer != "" {
		return answer
	}
	return f.cfg.DefaultReply
}

// fromGreeting handles the first caller utterance.
func (f *Flow) fromGreeting(s *session.Session, input string) string {
	s.State = session.StateIdentifyingIntent

	track := classify.IdentifyTrack(input)
	switch track {
	case classify.TrackPersonalInjury:
		// Only skip ahead when the caller named the incident outright.
		if classify.MentionsAccident(input) {
			f.enterCollecting(s, track)
			return f.cfg.Tracks[track].ConfirmReply
		}
		return f.cfg.OpenQuestion
	case classify.TrackNoFault:
		f.enterCollecting(s, track)
		return f.cfg.Tracks[track].ConfirmReply
	case classify.TrackOutsidePractice:
		s.State = session.StateOutOfScope
		return f.cfg.DeclineReply
	default:
		return f.cfg.OpenQuestion
	}
}

// fromIdentifying re-runs track classification on every utterance until one
// sticks. Returns ok=false when the input stays unclassifiable so the caller
// falls through to FAQ matching.
func (f *Flow) fromIdentifying(s *session.Session, input string) (string, bool) {
	track := classify.IdentifyTrack(input)
	switch track {
	case classify.TrackPersonalInjury, classify.TrackNoFault:
		f.enterCollecting(s, track)
		return f.cfg.Tracks[track].IntakeSlots[0].Ask, true
	case classify.TrackOutsidePractice:
		s.State = session.StateOutOfScope
		return f.cfg.DeclineReply, true
	}
	return "", false
}

// collect stores input into the first unfilled slot and returns the next
// slot's question. done runs when the last slot of the block just filled.
func (f *Flow) collect(s *session.Session, input string, slots []SlotDef, done func(*session.Session, string) string) (string, bool) {
	for i, def := range slots {
		if s.Filled(def.Name) {
			continue
		}
		s.SetSlot(def.Name, input)
		if i+1 < len(slots) {
			return slots[i+1].Ask, true
		}
		return done(s, input), true
	}
	return "", false
}

func (f *Flow) enterCollecting(s *session.Session, track classify.Track) {
	s.Track = track
	s.State = session.StateCollecting
	s.SetSlot(caseTypeSlot, string(track))
}

// enterQualifying runs when the intake block completes.
func (f *Flow) enterQualifying(s *session.Session, _ string) string {
	td := f.track(s)
	s.State = td.QualifyingState
	return td.QualifySlots[0].Ask
}

// resolve runs when the qualify block completes and picks the terminal state.
func (f *Flow) resolve(s *session.Session, lastInput string) string {
	state, reply := f.track(s).Resolve(lastInput)
	s.State = state
	return reply
}

func (f *Flow) track(s *session.Session) *TrackDef {
	return f.cfg.Tracks[s.Track]
}
