package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trtech123/tos/internal/domain"
	"github.com/trtech123/tos/internal/service/chat"
)

type ChatHandler struct {
	service chat.ChatUseCase
}

type chatRequest struct {
	Messages []domain.Turn `json:"messages"`
}

type chatResponse struct {
	Message string      `json:"message"`
	Role    domain.Role `json:"role"`
}

func NewChatHandler(service chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.reply)
}

func (h *ChatHandler) reply(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: messages array is required"})
		return
	}

	reply, err := h.service.Reply(c.Request.Context(), req.Messages)
	if err != nil {
		log.Printf("chat request failed: %v", err)
		writeChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, chatResponse{Message: reply.Content, Role: reply.Role})
}

func writeChatError(c *gin.Context, err error) {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: messages array is required"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key or request. Please check your OpenAI API key."})
	case errors.Is(err, domain.ErrEmptyReply):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No response from OpenAI"})
	case errors.As(err, &upstream):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat request", "details": upstream.Detail()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat request", "details": err.Error()})
	}
}
