package assistant

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/trtech123/tos/internal/domain"
)

const defaultFragmentSize = 16 * 1024

// FileMicrophone plays back a recorded clip as if it were captured live, in
// fragments of FragmentSize bytes. Like a browser recorder flushing its last
// chunk on stop, the whole clip is delivered before Fragments closes, so the
// channel must be drained for Release to return.
type FileMicrophone struct {
	Path         string
	FragmentSize int
}

func (m FileMicrophone) Acquire(ctx context.Context) (Device, error) {
	if m.Path == "" {
		return nil, fmt.Errorf("%w: no audio file configured", domain.ErrMicrophoneDenied)
	}
	file, err := os.Open(m.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMicrophoneDenied, err)
	}

	size := m.FragmentSize
	if size <= 0 {
		size = defaultFragmentSize
	}

	d := &fileDevice{
		file: file,
		out:  make(chan []byte),
		done: make(chan struct{}),
	}
	go d.stream(size)
	return d, nil
}

type fileDevice struct {
	file *os.File
	out  chan []byte
	done chan struct{}
	once sync.Once
	err  error
}

func (d *fileDevice) Fragments() <-chan []byte {
	return d.out
}

func (d *fileDevice) stream(size int) {
	defer close(d.done)
	defer close(d.out)

	buf := make([]byte, size)
	for {
		n, err := d.file.Read(buf)
		if n > 0 {
			fragment := append([]byte(nil), buf[:n]...)
			d.out <- fragment
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			d.err = err
			return
		}
	}
}

func (d *fileDevice) Release() error {
	d.once.Do(func() {
		<-d.done
		if err := d.file.Close(); err != nil && d.err == nil {
			d.err = err
		}
	})
	return d.err
}
