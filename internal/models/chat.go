package models

// ChatRole distinguishes who produced a turn.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatTurn is one entry of a session's append-only conversation history.
// Assistant turns additionally carry the response segmented into bullets.
type ChatTurn struct {
	Role    ChatRole `json:"role"`
	Text    string   `json:"text"`
	Bullets []string `json:"bullets,omitempty"`
}
