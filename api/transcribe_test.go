package api

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trtech123/tos/internal/domain"
)

// MockTranscribeUseCase is a mock implementation of transcribe.TranscribeUseCase
type MockTranscribeUseCase struct {
	mock.Mock
}

func (m *MockTranscribeUseCase) Transcribe(ctx context.Context, clip domain.Clip) (string, error) {
	args := m.Called(ctx, clip)
	return args.String(0), args.Error(1)
}

func postAudio(t *testing.T, handler *TranscribeHandler, field string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "recording.webm")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/transcribe", &body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	handler.transcribe(c)
	return w
}

func TestTranscribeHandler_transcribe(t *testing.T) {
	mockService := &MockTranscribeUseCase{}
	handler := NewTranscribeHandler(mockService)
	mockService.On("Transcribe", mock.Anything, mock.MatchedBy(func(clip domain.Clip) bool {
		return clip.Name == "recording.webm" && string(clip.Data) == "webm"
	})).Return("אני רוצה לטוס לברצלונה", nil)

	w := postAudio(t, handler, "audio", []byte("webm"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "אני רוצה לטוס לברצלונה", decodeBody(t, w)["text"])
	mockService.AssertExpectations(t)
}

func TestTranscribeHandler_transcribe_NoAudio(t *testing.T) {
	mockService := &MockTranscribeUseCase{}
	handler := NewTranscribeHandler(mockService)

	w := postAudio(t, handler, "file", []byte("webm"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No audio file provided", decodeBody(t, w)["error"])
	mockService.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}

func TestTranscribeHandler_transcribe_TooLarge(t *testing.T) {
	mockService := &MockTranscribeUseCase{}
	handler := NewTranscribeHandler(mockService)
	handler.maxClipBytes = 1 << 20

	w := postAudio(t, handler, "audio", bytes.Repeat([]byte{0x1a}, 1<<20+1))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Audio file is too large (max 1 MB)", decodeBody(t, w)["error"])
	mockService.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything)
}

func TestTranscribeHandler_transcribe_Errors(t *testing.T) {
	mockService := &MockTranscribeUseCase{}
	handler := NewTranscribeHandler(mockService)
	mockService.On("Transcribe", mock.Anything, mock.Anything).Return("", domain.ErrUnauthorized).Once()
	mockService.On("Transcribe", mock.Anything, mock.Anything).
		Return("", &domain.UpstreamError{Op: "transcription", Err: errors.New("Audio file is too short")}).Once()

	w := postAudio(t, handler, "audio", []byte("webm"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postAudio(t, handler, "audio", []byte("webm"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Failed to transcribe audio", body["error"])
	assert.Equal(t, "Audio file is too short", body["details"])
}
