package assistant

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/trtech123/tos/internal/domain"
)

type RecorderState int

const (
	StateIdle RecorderState = iota
	StateRecording
	StateFinalizing
)

func (s RecorderState) String() string {
	switch s {
	case StateRecording:
		return "recording"
	case StateFinalizing:
		return "finalizing"
	default:
		return "idle"
	}
}

// Device is an acquired microphone. Fragments yields audio in arrival order and
// is closed once the device stops; Release stops it.
type Device interface {
	Fragments() <-chan []byte
	Release() error
}

type Microphone interface {
	// Acquire returns an error wrapping domain.ErrMicrophoneDenied when the
	// device cannot be used.
	Acquire(ctx context.Context) (Device, error)
}

type Transcriber interface {
	Transcribe(ctx context.Context, clip domain.Clip) (string, error)
}

// InputSink receives a successful transcription.
type InputSink interface {
	SetInput(text string)
}

// Recorder runs the voice capture cycle Idle -> Recording -> Finalizing -> Idle.
type Recorder struct {
	mu          sync.Mutex
	mic         Microphone
	transcriber Transcriber
	sink        InputSink
	clipName    string
	contentType string

	state     RecorderState
	device    Device
	fragments [][]byte
	collected chan struct{}
}

type RecorderOption func(*Recorder)

// WithClipFormat names the uploaded clip; the default is recording.webm as audio/webm.
func WithClipFormat(name, contentType string) RecorderOption {
	return func(r *Recorder) {
		r.clipName = name
		r.contentType = contentType
	}
}

func NewRecorder(mic Microphone, transcriber Transcriber, sink InputSink, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		mic:         mic,
		transcriber: transcriber,
		sink:        sink,
		clipName:    "recording.webm",
		contentType: "audio/webm",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) State() RecorderState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start acquires the microphone and begins buffering. It is a no-op unless the
// recorder is idle. A denied microphone leaves the recorder idle.
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateIdle {
		return nil
	}

	device, err := r.mic.Acquire(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrMicrophoneDenied) {
			err = fmt.Errorf("%w: %v", domain.ErrMicrophoneDenied, err)
		}
		return err
	}

	r.state = StateRecording
	r.device = device
	r.fragments = nil
	r.collected = make(chan struct{})
	go r.collect(device.Fragments(), r.collected)
	return nil
}

func (r *Recorder) collect(fragments <-chan []byte, done chan<- struct{}) {
	defer close(done)
	for fragment := range fragments {
		if len(fragment) == 0 {
			continue
		}
		r.mu.Lock()
		r.fragments = append(r.fragments, fragment)
		r.mu.Unlock()
	}
}

// Stop releases the device, uploads the buffered clip and returns the
// transcription. Non-empty text overwrites the sink's input; a failure leaves it
// alone. Stop is a no-op unless the recorder is recording.
func (r *Recorder) Stop(ctx context.Context) (string, error) {
	r.mu.Lock()
	if r.state != StateRecording {
		r.mu.Unlock()
		return "", nil
	}
	r.state = StateFinalizing
	device, collected := r.device, r.collected
	r.device = nil
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.state = StateIdle
		r.fragments = nil
		r.mu.Unlock()
	}()

	if err := device.Release(); err != nil {
		log.Printf("WARNING: failed to release microphone: %v", err)
	}
	<-collected

	r.mu.Lock()
	clip := domain.Clip{
		Name:        r.clipName,
		ContentType: r.contentType,
		Data:        bytes.Join(r.fragments, nil),
	}
	r.mu.Unlock()

	text, err := r.transcriber.Transcribe(ctx, clip)
	if err != nil {
		return "", err
	}
	if text != "" {
		r.sink.SetInput(text)
	}
	return text, nil
}
