package models

// Chat message senders.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// ChatMessage is one entry of the conversation log. Assistant messages may
// carry a thinking trace; Pending marks the transient placeholder that a
// streaming exchange rewrites in place until it terminates.
type ChatMessage struct {
	Sender   string `json:"sender"`
	Text     string `json:"text"`
	Thinking string `json:"thinking,omitempty"`
	Pending  bool   `json:"pending,omitempty"`
}
