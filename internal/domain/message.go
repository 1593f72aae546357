package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Turn is the wire form of a message: what the chat route accepts and returns.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Message is a turn as held by a conversation.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func (m Message) Turn() Turn {
	return Turn{Role: m.Role, Content: m.Content}
}

// Clip is one finalized recording.
type Clip struct {
	Name        string
	ContentType string
	Data        []byte
}
