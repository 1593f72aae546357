package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/trtech123/tos/config"
	"github.com/trtech123/tos/internal/domain"
	"github.com/trtech123/tos/internal/service/chat"
	"google.golang.org/genai"
)

// GeminiClient serves the chat gateway from Gemini when chat.provider is "gemini".
// Transcription always stays on OpenAI.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig) (*GeminiClient, error) {
	return newGeminiClient(ctx, cfg, nil)
}

func newGeminiClient(ctx context.Context, cfg config.GeminiConfig, httpOptions *genai.HTTPOptions) (*GeminiClient, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if httpOptions != nil {
		clientConfig.HTTPOptions = *httpOptions
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: cfg.Model}, nil
}

func (c *GeminiClient) Complete(ctx context.Context, req chat.CompletionRequest) (*domain.Turn, error) {
	contents := make([]*genai.Content, 0, len(req.Turns))
	for _, turn := range req.Turns {
		role := genai.Role(genai.RoleUser)
		if turn.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Content, role))
	}

	temperature := req.Temperature
	generateConfig := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		MaxOutputTokens:   int32(req.MaxTokens),
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, generateConfig)
	if err != nil {
		return nil, classifyGeminiError(err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, domain.ErrEmptyReply
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}

	return &domain.Turn{Role: domain.RoleAssistant, Content: text.String()}, nil
}

func classifyGeminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return classifyGeminiAPIError(apiErr)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return classifyGeminiAPIError(*apiErrPtr)
	}
	return &domain.UpstreamError{Op: "gemini generate", Err: err}
}

func classifyGeminiAPIError(apiErr genai.APIError) error {
	switch apiErr.Code {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusBadRequest:
		return fmt.Errorf("gemini generate: %s: %w", apiErr.Message, domain.ErrUnauthorized)
	}
	return &domain.UpstreamError{Op: "gemini generate", Err: errors.New(apiErr.Message)}
}

var _ chat.Model = (*GeminiClient)(nil)
