// Package llm adapts hosted model providers to the chat and transcription gateways.
package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"github.com/trtech123/tos/config"
	"github.com/trtech123/tos/internal/domain"
	"github.com/trtech123/tos/internal/service/chat"
	"github.com/trtech123/tos/internal/service/transcribe"
)

const invalidRequestError = "invalid_request_error"

type OpenAIClient struct {
	client             *openai.Client
	chatModel          string
	transcriptionModel string
}

func NewOpenAIClient(cfg config.OpenAIConfig) *OpenAIClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client:             openai.NewClientWithConfig(clientConfig),
		chatModel:          cfg.ChatModel,
		transcriptionModel: cfg.TranscriptionModel,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, req chat.CompletionRequest) (*domain.Turn, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Turns)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: req.System,
	})
	for _, turn := range req.Turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.chatModel,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, classifyOpenAIError("chat completion", err)
	}
	if len(resp.Choices) == 0 {
		return nil, domain.ErrEmptyReply
	}

	return &domain.Turn{
		Role:    domain.RoleAssistant,
		Content: resp.Choices[0].Message.Content,
	}, nil
}

func (c *OpenAIClient) Transcribe(ctx context.Context, req transcribe.Request) (string, error) {
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    c.transcriptionModel,
		Reader:   bytes.NewReader(req.Clip.Data),
		FilePath: req.Clip.Name,
		Language: req.Language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", classifyOpenAIError("transcription", err)
	}
	return resp.Text, nil
}

// classifyOpenAIError maps provider failures onto the gateway error kinds. An
// invalid-request error is reported as unauthorized: a bad key and a rejected
// payload look the same to the caller.
func classifyOpenAIError(op string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Type == invalidRequestError || apiErr.HTTPStatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%s: %s: %w", op, apiErr.Message, domain.ErrUnauthorized)
		}
		return &domain.UpstreamError{Op: op, Err: errors.New(apiErr.Message)}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", op, domain.ErrUnauthorized)
	}

	return &domain.UpstreamError{Op: op, Err: err}
}

var (
	_ chat.Model       = (*OpenAIClient)(nil)
	_ transcribe.Model = (*OpenAIClient)(nil)
)
