package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("upstream rejected the api key or request")
	ErrEmptyReply       = errors.New("no response from model")
	ErrMicrophoneDenied = errors.New("microphone permission denied")
	ErrNotFound         = errors.New("not found")
	ErrNoFlightSelected = errors.New("no flight selected")
	ErrNoHotelSelected  = errors.New("no hotel selected")
	ErrVersionConflict  = errors.New("selection was modified concurrently")
	ErrReplyPending     = errors.New("previous message is still waiting for a reply")
	ErrEmptyMessage     = errors.New("message is empty")
)

// UpstreamError carries a failure reported by the language-model or transcription provider.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Detail is the upstream message passed through to API clients.
func (e *UpstreamError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}
