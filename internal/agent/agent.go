// Package agent dispatches Retell transcript events to the dialogue flow and
// the presence pipeline, and owns the per-call lifecycle around the registry.
package agent

import (
	"time"

	"github.com/erikmg100/sesame-retell-integration/internal/crm"
	"github.com/erikmg100/sesame-retell-integration/internal/dialogue"
	"github.com/erikmg100/sesame-retell-integration/internal/export"
	"github.com/erikmg100/sesame-retell-integration/internal/logger"
	"github.com/erikmg100/sesame-retell-integration/internal/presence"
	"github.com/erikmg100/sesame-retell-integration/internal/session"
	"github.com/erikmg100/sesame-retell-integration/internal/types"
)

type Agent struct {
	registry *session.Registry
	flow     *dialogue.Flow
	voice    *presence.Pipeline
	notifier *crm.Notifier // nil-safe, optional
	intake   *export.Log   // nil-safe, optional
}

func New(reg *session.Registry, flow *dialogue.Flow, voice *presence.Pipeline, notifier *crm.Notifier, intake *export.Log) *Agent {
	return &Agent{
		registry: reg,
		flow:     flow,
		voice:    voice,
		notifier: notifier,
		intake:   intake,
	}
}

// ConnectGreeting is the unsolicited frame sent right after the websocket
// upgrade, before Retell asks for anything. Does not touch session state;
// the flow still treats the caller's first utterance as the opener.
func (a *Agent) ConnectGreeting(callID string) *types.Reply {
	content := a.voice.Enhance(a.flow.Greeting(), nil, callID)
	return types.NewReply(0, content)
}

// HandleEvent processes one inbound event and returns the reply frame, or
// nil when the event kind produces none. A panic anywhere in classification
// or enhancement is contained here: the event is dropped, the session and
// connection live on.
func (a *Agent) HandleEvent(callID string, ev types.Event) (reply *types.Reply) {
	log := logger.New().WithCall(callID).WithField("interaction", ev.InteractionType)

	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", r).Error("event handling panicked, dropping event")
			reply = nil
		}
	}()

	switch ev.InteractionType {
	case types.InteractionUpdateOnly:
		a.handleUpdate(callID, ev)
		return nil

	case types.InteractionResponseRequired:
		return a.handleResponse(callID, ev)

	case types.InteractionReminderRequired:
		content := a.voice.Enhance(a.flow.Reminder(), ev.Transcript, callID)
		return types.NewReply(ev.ResponseID, content)

	default:
		log.Warn("unknown interaction type, ignoring")
		return nil
	}
}

func (a *Agent) handleUpdate(callID string, ev types.Event) {
	if len(ev.Transcript) == 0 {
		return
	}
	a.registry.Update(callID, func(s *session.Session) {
		s.SetMemory(ev.Transcript)
	})
}

func (a *Agent) handleResponse(callID string, ev types.Event) *types.Reply {
	if len(ev.Transcript) == 0 {
		// First interaction on the call: fixed greeting, no context yet.
		a.registry.GetOrCreate(callID)
		content := a.voice.Enhance(a.flow.Greeting(), nil, callID)
		return types.NewReply(ev.ResponseID, content)
	}

	var (
		content string
		lead    *crm.Lead
	)
	a.registry.Update(callID, func(s *session.Session) {
		s.MessageCount++

		last := ev.Transcript[len(ev.Transcript)-1]
		prior := ev.Transcript[:len(ev.Transcript)-1]

		wasTerminal := s.State == session.StateReadyTransfer
		base := a.flow.Advance(s, last.Content)
		content = a.voice.Enhance(base, prior, callID)
		s.SetMemory(ev.Transcript)

		if !wasTerminal && s.State == session.StateReadyTransfer {
			lead = leadFrom(s)
		}
	})

	if lead != nil && a.notifier != nil {
		a.notifier.DeliverAsync(*lead)
	}

	return types.NewReply(ev.ResponseID, content)
}

// EndCall releases the call's session and flushes an intake record. Safe for
// ids that were never seen or already removed.
func (a *Agent) EndCall(callID string) {
	s := a.registry.Remove(callID)
	if s == nil || a.intake == nil {
		return
	}

	collected := make([]export.Field, 0, len(s.Slots))
	for _, sl := range s.Slots {
		collected = append(collected, export.Field{Name: sl.Name, Value: sl.Value})
	}
	a.intake.Append(export.IntakeRecord{
		CallID:    s.CallID,
		Track:     string(s.Track),
		Outcome:   string(s.State),
		Collected: collected,
		StartedAt: s.StartedAt,
		Duration:  time.Since(s.StartedAt),
		Messages:  s.MessageCount,
	})
}

// ActiveCalls is the live session count for health and stats surfaces.
func (a *Agent) ActiveCalls() int {
	return a.registry.Count()
}

// CallDetails is the per-call view for /stats.
func (a *Agent) CallDetails() map[string]session.CallInfo {
	return a.registry.Snapshot()
}

func leadFrom(s *session.Session) *crm.Lead {
	fields := make(map[string]string, len(s.Slots))
	for _, sl := range s.Slots {
		fields[sl.Name] = sl.Value
	}
	return &crm.Lead{
		CallID:     s.CallID,
		Track:      string(s.Track),
		Fields:     fields,
		CapturedAt: time.Now(),
	}
}
