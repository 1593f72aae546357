// Package client talks to the tos HTTP API on behalf of the terminal chat.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/trtech123/tos/internal/domain"
)

const SessionHeader = "X-Session-Id"

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("status %d: %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets callers match the server's error kinds with errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return domain.ErrInvalidInput
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return nil
}

type Config struct {
	BaseURL    string
	SessionID  string
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
}

func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("client: base url is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("client: invalid base url %q: %w", cfg.BaseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		sessionID:  cfg.SessionID,
		httpClient: httpClient,
	}, nil
}

type chatRequest struct {
	Messages []domain.Turn `json:"messages"`
}

type chatResponse struct {
	Message string      `json:"message"`
	Role    domain.Role `json:"role"`
}

// Chat posts the whole history to /api/chat.
func (c *Client) Chat(ctx context.Context, turns []domain.Turn) (*domain.Turn, error) {
	if turns == nil {
		turns = []domain.Turn{}
	}
	payload, err := json.Marshal(chatRequest{Messages: turns})
	if err != nil {
		return nil, fmt.Errorf("client: failed to marshal chat request: %w", err)
	}

	var resp chatResponse
	if err := c.do(ctx, http.MethodPost, "/api/chat", "application/json", bytes.NewReader(payload), &resp); err != nil {
		return nil, err
	}

	role := resp.Role
	if role == "" {
		role = domain.RoleAssistant
	}
	return &domain.Turn{Role: role, Content: resp.Message}, nil
}

// Transcribe uploads a clip to /api/transcribe as the multipart field "audio".
func (c *Client) Transcribe(ctx context.Context, clip domain.Clip) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="audio"; filename=%q`, clip.Name))
	contentType := clip.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("client: failed to create audio part: %w", err)
	}
	if _, err := part.Write(clip.Data); err != nil {
		return "", fmt.Errorf("client: failed to write audio part: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("client: failed to close multipart body: %w", err)
	}

	var resp struct {
		Text string `json:"text"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/transcribe", writer.FormDataContentType(), &body, &resp); err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Checkout fetches the quote for the given navigation parameters.
func (c *Client) Checkout(ctx context.Context, params domain.CheckoutParams) (*domain.Quote, error) {
	query := url.Values{}
	for key, value := range map[string]string{
		"from":    params.From,
		"to":      params.To,
		"date":    params.Date,
		"airline": params.Airline,
		"price":   params.Price,
	} {
		if value != "" {
			query.Set(key, value)
		}
	}

	path := "/api/checkout"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var quote domain.Quote
	if err := c.do(ctx, http.MethodGet, path, "", nil, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("client: failed to build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.sessionID != "" {
		req.Header.Set(SessionHeader, c.sessionID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("client: failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		if json.Unmarshal(data, &errBody) == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
			apiErr.Details = errBody.Details
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("client: failed to decode response: %w", err)
	}
	return nil
}
