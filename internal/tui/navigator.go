package tui

import (
	"context"
	"sync"

	"github.com/trtech123/tos/internal/chatlink"
	"github.com/trtech123/tos/internal/domain"
)

type CheckoutFetcher interface {
	Checkout(ctx context.Context, params domain.CheckoutParams) (*domain.Quote, error)
}

// CheckoutNavigator "navigates" to a checkout link by fetching its quote.
type CheckoutNavigator struct {
	fetcher CheckoutFetcher

	mu    sync.Mutex
	quote *domain.Quote
}

func NewCheckoutNavigator(fetcher CheckoutFetcher) *CheckoutNavigator {
	return &CheckoutNavigator{fetcher: fetcher}
}

func (n *CheckoutNavigator) Navigate(ctx context.Context, url string) error {
	params, err := chatlink.CheckoutParams(url)
	if err != nil {
		return err
	}
	quote, err := n.fetcher.Checkout(ctx, params)
	if err != nil {
		return err
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.quote = quote
	return nil
}

// Quote is the result of the last successful navigation.
func (n *CheckoutNavigator) Quote() *domain.Quote {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.quote
}
