package assistant

import (
	"context"
	"sync"

	"github.com/trtech123/tos/internal/chatlink"
)

// Navigator moves the user to a link target, e.g. the checkout screen.
type Navigator interface {
	Navigate(ctx context.Context, url string) error
}

// Panel is the surface hosting a conversation. The floating widget opens and
// closes; the full-screen variant is always open.
type Panel struct {
	mu     sync.Mutex
	nav    Navigator
	widget bool
	open   bool
}

func NewPanel(nav Navigator, widget bool) *Panel {
	return &Panel{
		nav:    nav,
		widget: widget,
		open:   !widget,
	}
}

func (p *Panel) IsWidget() bool {
	return p.widget
}

func (p *Panel) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

func (p *Panel) Open() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = true
}

func (p *Panel) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.widget {
		p.open = false
	}
}

func (p *Panel) Toggle() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.widget {
		p.open = !p.open
	}
}

// Follow navigates to a link segment. The widget closes before navigating.
func (p *Panel) Follow(ctx context.Context, link chatlink.Segment) error {
	if !link.IsLink() {
		return nil
	}
	p.Close()
	return p.nav.Navigate(ctx, link.URL)
}
