package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trtech123/tos/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(Config{BaseURL: server.URL + "/", SessionID: "sess-1"})
	require.NoError(t, err)
	return c
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestClient_Chat(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, "sess-1", r.Header.Get(SessionHeader))

		var body chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []domain.Turn{{Role: domain.RoleUser, Content: "שלום"}}, body.Messages)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"message":"היי","role":"assistant"}`)
	})

	reply, err := c.Chat(context.Background(), []domain.Turn{{Role: domain.RoleUser, Content: "שלום"}})

	require.NoError(t, err)
	assert.Equal(t, &domain.Turn{Role: domain.RoleAssistant, Content: "היי"}, reply)
}

func TestClient_Chat_ErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"Failed to process chat request","details":"model overloaded"}`)
	})

	_, err := c.Chat(context.Background(), nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to process chat request", apiErr.Message)
	assert.Equal(t, "model overloaded", apiErr.Details)
}

func TestClient_Chat_Unauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"Invalid API key or request. Please check your OpenAI API key."}`)
	})

	_, err := c.Chat(context.Background(), []domain.Turn{})

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestClient_Transcribe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/transcribe", r.URL.Path)
		file, header, err := r.FormFile("audio")
		if !assert.NoError(t, err) {
			return
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		assert.Equal(t, "recording.webm", header.Filename)
		assert.Equal(t, "audio/webm", header.Header.Get("Content-Type"))
		assert.Equal(t, []byte("clip"), data)

		_, _ = io.WriteString(w, `{"text":"לאן טסים"}`)
	})

	text, err := c.Transcribe(context.Background(), domain.Clip{Name: "recording.webm", ContentType: "audio/webm", Data: []byte("clip")})

	require.NoError(t, err)
	assert.Equal(t, "לאן טסים", text)
}

func TestClient_Checkout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/checkout", r.URL.Path)
		assert.Equal(t, "תל אביב", r.URL.Query().Get("from"))
		assert.Equal(t, "1050", r.URL.Query().Get("price"))
		assert.False(t, r.URL.Query().Has("date"))

		_, _ = io.WriteString(w, `{"flight":{"from":"תל אביב","to":"לרנקה"},"flight_source":"link","flight_price":1050,"hotel_price":0,"taxes":110,"insurance":50,"total":1210}`)
	})

	quote, err := c.Checkout(context.Background(), domain.CheckoutParams{From: "תל אביב", To: "לרנקה", Price: "1050"})

	require.NoError(t, err)
	assert.Equal(t, domain.FlightSourceLink, quote.FlightSource)
	assert.Equal(t, int64(1210), quote.Total)
	assert.Equal(t, "לרנקה", quote.Flight.To)
}
