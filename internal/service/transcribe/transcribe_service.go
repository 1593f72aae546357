package transcribe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/trtech123/tos/internal/domain"
	"github.com/trtech123/tos/internal/metrics"
)

const defaultClipName = "recording.webm"

type Request struct {
	Clip     domain.Clip
	Language string
}

// Model is a hosted speech-to-text service.
type Model interface {
	Transcribe(ctx context.Context, req Request) (string, error)
}

type TranscribeUseCase interface {
	Transcribe(ctx context.Context, clip domain.Clip) (string, error)
}

type TranscribeService struct {
	model    Model
	language string
}

func NewTranscribeService(model Model, language string) *TranscribeService {
	return &TranscribeService{model: model, language: language}
}

// Transcribe forwards one clip upstream and returns its text. The language is
// fixed by configuration, never by the caller.
func (s *TranscribeService) Transcribe(ctx context.Context, clip domain.Clip) (text string, err error) {
	if len(clip.Data) == 0 {
		return "", fmt.Errorf("no audio file provided: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(clip.Name) == "" {
		clip.Name = defaultClipName
	}

	start := time.Now()
	defer func() { metrics.ObserveGateway(metrics.GatewayTranscribe, start, err) }()

	return s.model.Transcribe(ctx, Request{Clip: clip, Language: s.language})
}

var _ TranscribeUseCase = (*TranscribeService)(nil)
