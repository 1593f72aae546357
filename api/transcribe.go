package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trtech123/tos/internal/domain"
	"github.com/trtech123/tos/internal/service/transcribe"
)

// maxClipBytes matches the upload limit of the transcription provider.
const maxClipBytes = 25 << 20

var errClipTooLarge = errors.New("audio clip too large")

type TranscribeHandler struct {
	service      transcribe.TranscribeUseCase
	maxClipBytes int64
}

func NewTranscribeHandler(service transcribe.TranscribeUseCase) *TranscribeHandler {
	return &TranscribeHandler{service: service, maxClipBytes: maxClipBytes}
}

func (h *TranscribeHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.transcribe)
}

func (h *TranscribeHandler) transcribe(c *gin.Context) {
	clip, err := readClip(c, h.maxClipBytes)
	if errors.Is(err, errClipTooLarge) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Audio file is too large (max %d MB)", h.maxClipBytes>>20)})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
		return
	}

	text, err := h.service.Transcribe(c.Request.Context(), clip)
	if err != nil {
		log.Printf("transcription failed: %v", err)
		writeTranscribeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

func readClip(c *gin.Context, limit int64) (domain.Clip, error) {
	header, err := c.FormFile("audio")
	if err != nil {
		return domain.Clip{}, err
	}
	if header.Size > limit {
		return domain.Clip{}, fmt.Errorf("clip of %d bytes: %w", header.Size, errClipTooLarge)
	}

	file, err := header.Open()
	if err != nil {
		return domain.Clip{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.Clip{}, err
	}

	return domain.Clip{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func writeTranscribeError(c *gin.Context, err error) {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No audio file provided"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key or audio file. Please check your OpenAI API key."})
	case errors.As(err, &upstream):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transcribe audio", "details": upstream.Detail()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to transcribe audio", "details": err.Error()})
	}
}
