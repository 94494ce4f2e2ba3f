// Package session owns all per-call state. Sessions live only in process
// memory; absence from the registry means "never seen".
package session

import (
	"time"

	"github.com/erikmg100/sesame-retell-integration/internal/classify"
	"github.com/erikmg100/sesame-retell-integration/internal/types"
)

// State is the dialogue position of one call. Exactly one per session.
type State string

const (
	StateGreeting          State = "greeting"
	StateIdentifyingIntent State = "identifying_intent"
	StateCollecting        State = "collecting_slots"
	StateQualifyingInjury  State = "qualifying_personal_injury"
	StateQualifyingNoFault State = "qualifying_no_fault"
	StateReadyTransfer     State = "ready_transfer"
	StateNotQualified      State = "not_qualified"
	StateOutOfScope        State = "out_of_scope"
)

// Terminal reports whether no further forward transition exists. Terminal
// sessions still answer FAQs and fall back to the default prompt.
func (s State) Terminal() bool {
	switch s {
	case StateReadyTransfer, StateNotQualified, StateOutOfScope:
		return true
	}
	return false
}

// MemoryWindow bounds the recent-transcript window kept per call.
const MemoryWindow = 10

// Slot is one collected intake field. Order of collection is preserved.
type Slot struct {
	Name  string
	Value string
}

// Session is the per-call record. All mutation happens inside
// Registry.Update so a concurrent reader never sees a half-applied change.
type Session struct {
	CallID       string
	State        State
	Track        classify.Track
	Slots        []Slot
	Memory       []types.Utterance
	StartedAt    time.Time
	MessageCount int
}

// Filled reports whether the named slot has a non-empty value. Presence,
// not content, is what drives the next question.
func (s *Session) Filled(name string) bool {
	for _, sl := range s.Slots {
		if sl.Name == name && sl.Value != "" {
			return true
		}
	}
	return false
}

// SetSlot records a value for name. A filled slot is never overwritten: the
// flow has no correction path, the first non-empty answer sticks.
func (s *Session) SetSlot(name, value string) {
	for i, sl := range s.Slots {
		if sl.Name == name {
			if sl.Value == "" {
				s.Slots[i].Value = value
			}
			return
		}
	}
	s.Slots = append(s.Slots, Slot{Name: name, Value: value})
}

// SlotValue returns the recorded value, or "".
func (s *Session) SlotValue(name string) string {
	for _, sl := range s.Slots {
		if sl.Name == name {
			return sl.Value
		}
	}
	return ""
}

// SetMemory replaces the transcript window, keeping the last MemoryWindow
// utterances.
func (s *Session) SetMemory(transcript []types.Utterance) {
	if len(transcript) > MemoryWindow {
		transcript = transcript[len(transcript)-MemoryWindow:]
	}
	s.Memory = append(s.Memory[:0], transcript...)
}
