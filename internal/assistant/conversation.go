// Package assistant holds the client side of the chat: the conversation, the
// panel that hosts it and voice capture feeding its input.
package assistant

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/trtech123/tos/internal/domain"
)

const (
	Greeting = "שלום! אני עוזר הטיסות החכם שלך. איך אוכל לעזור לך היום?"
	// Apology replaces a reply that came back without content.
	Apology = "מצטער, לא הצלחתי להבין. אנא נסה שוב."
)

// ChatClient sends the whole history and returns the assistant turn.
type ChatClient interface {
	Chat(ctx context.Context, turns []domain.Turn) (*domain.Turn, error)
}

// Conversation is an append-only message list plus the pending input line.
// At most one reply is awaited at a time.
type Conversation struct {
	mu       sync.Mutex
	client   ChatClient
	messages []domain.Message
	input    string
	pending  bool
	now      func() time.Time
}

type ConversationOption func(*Conversation)

// WithGreeting starts the conversation with the assistant's greeting, as the
// floating widget does.
func WithGreeting() ConversationOption {
	return func(c *Conversation) {
		c.messages = append(c.messages, c.newMessage(domain.RoleAssistant, Greeting))
	}
}

func withClock(now func() time.Time) ConversationOption {
	return func(c *Conversation) {
		c.now = now
	}
}

func NewConversation(client ChatClient, opts ...ConversationOption) *Conversation {
	c := &Conversation{
		client: client,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Conversation) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Message(nil), c.messages...)
}

// Last returns the newest message, or false for an empty conversation.
func (c *Conversation) Last() (domain.Message, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.messages) == 0 {
		return domain.Message{}, false
	}
	return c.messages[len(c.messages)-1], true
}

func (c *Conversation) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// SetInput replaces the pending input; transcriptions land here too.
func (c *Conversation) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = text
}

func (c *Conversation) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// CanSend reports whether Send would do anything right now.
func (c *Conversation) CanSend() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.pending && strings.TrimSpace(c.input) != ""
}

// Send appends the pending input as a user message, clears the input and waits
// for the reply. It returns ErrEmptyMessage for blank input and ErrReplyPending
// while an earlier reply is outstanding; neither changes the conversation. When
// the request fails the user message stays and no assistant message is added.
func (c *Conversation) Send(ctx context.Context) (*domain.Message, error) {
	await, err := c.Begin()
	if err != nil {
		return nil, err
	}
	return await(ctx)
}

// Begin does the synchronous half of Send: the user message is appended and the
// conversation marked pending before Begin returns. The returned function makes
// the request and records the reply; it must be called exactly once.
func (c *Conversation) Begin() (func(ctx context.Context) (*domain.Message, error), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending {
		return nil, domain.ErrReplyPending
	}
	if strings.TrimSpace(c.input) == "" {
		return nil, domain.ErrEmptyMessage
	}

	c.messages = append(c.messages, c.newMessage(domain.RoleUser, c.input))
	c.input = ""
	c.pending = true
	turns := make([]domain.Turn, len(c.messages))
	for i, m := range c.messages {
		turns[i] = m.Turn()
	}

	return func(ctx context.Context) (*domain.Message, error) {
		reply, err := c.client.Chat(ctx, turns)
		return c.finish(reply, err)
	}, nil
}

func (c *Conversation) finish(reply *domain.Turn, err error) (*domain.Message, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	if err != nil {
		return nil, err
	}

	content := ""
	if reply != nil {
		content = reply.Content
	}
	if content == "" {
		content = Apology
	}

	msg := c.newMessage(domain.RoleAssistant, content)
	c.messages = append(c.messages, msg)
	return &msg, nil
}

func (c *Conversation) newMessage(role domain.Role, content string) domain.Message {
	return domain.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: c.now(),
	}
}
