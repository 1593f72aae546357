package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/trtech123/tos/internal/domain"
	"github.com/trtech123/tos/internal/metrics"
)

// CompletionRequest is one stateless call to a language model.
type CompletionRequest struct {
	System      string
	Turns       []domain.Turn
	Temperature float32
	MaxTokens   int
}

// Model is a hosted language model. Implementations map provider failures to
// domain.ErrUnauthorized, domain.ErrEmptyReply or *domain.UpstreamError.
type Model interface {
	Complete(ctx context.Context, req CompletionRequest) (*domain.Turn, error)
}

type ChatUseCase interface {
	Reply(ctx context.Context, turns []domain.Turn) (*domain.Turn, error)
}

type Options struct {
	Temperature float32
	MaxTokens   int
	Prompt      PromptConfig
}

type ChatService struct {
	model Model
	opts  Options
	now   func() time.Time
}

func NewChatService(model Model, opts Options) *ChatService {
	return &ChatService{
		model: model,
		opts:  opts,
		now:   time.Now,
	}
}

// Reply sends the whole history behind the system instruction and returns the
// assistant turn. Exactly one upstream call is made per valid request.
func (s *ChatService) Reply(ctx context.Context, turns []domain.Turn) (reply *domain.Turn, err error) {
	if err := ValidateTurns(turns); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() { metrics.ObserveGateway(metrics.GatewayChat, start, err) }()

	reply, err = s.model.Complete(ctx, CompletionRequest{
		System:      SystemPrompt(s.opts.Prompt, s.now()),
		Turns:       turns,
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	if reply == nil {
		return nil, domain.ErrEmptyReply
	}
	reply.Role = domain.RoleAssistant
	return reply, nil
}

// ValidateTurns rejects a missing history and turns with a role other than user or
// assistant. The system turn is never taken from the caller.
func ValidateTurns(turns []domain.Turn) error {
	if turns == nil {
		return fmt.Errorf("messages array is required: %w", domain.ErrInvalidInput)
	}
	for i, turn := range turns {
		if turn.Role != domain.RoleUser && turn.Role != domain.RoleAssistant {
			return fmt.Errorf("message %d has role %q: %w", i, turn.Role, domain.ErrInvalidInput)
		}
	}
	return nil
}

var _ ChatUseCase = (*ChatService)(nil)
