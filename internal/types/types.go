package types

// Interaction types Retell sends over the LLM websocket.
const (
	InteractionUpdateOnly       = "update_only"
	InteractionResponseRequired = "response_required"
	InteractionReminderRequired = "reminder_required"
)

// Transcript roles.
const (
	RoleCaller = "user"
	RoleAgent  = "agent"
)

// Utterance is a single transcript turn. Immutable once appended.
type Utterance struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Event is an inbound frame from Retell.
// ResponseID is opaque to us and echoed back verbatim.
type Event struct {
	InteractionType string      `json:"interaction_type"`
	Transcript      []Utterance `json:"transcript"`
	ResponseID      any         `json:"response_id"`
}

// Reply is an outbound frame. update_only events never produce one.
type Reply struct {
	ResponseID      any    `json:"response_id"`
	Content         string `json:"content"`
	ContentComplete bool   `json:"content_complete"`
	EndCall         bool   `json:"end_call"`
}

// NewReply builds the standard non-terminating reply frame.
func NewReply(responseID any, content string) *Reply {
	return &Reply{
		ResponseID:      responseID,
		Content:         content,
		ContentComplete: true,
		EndCall:         false,
	}
}
