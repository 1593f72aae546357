// Package session holds the booking selection of each browsing session.
//
// A selection lives only as long as its session: the memory driver keeps it
// for the life of the process, the redis driver until the idle TTL expires.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/trtech123/tos/internal/domain"
)

type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeRedis  StoreType = "redis"
)

var ErrInvalidStoreType = errors.New("unknown session store type")

// Store persists selections keyed by session id.
type Store interface {
	// Get returns nil, nil when the session has no selection yet.
	Get(ctx context.Context, id string) (*domain.Selection, error)
	// Create stores a new selection with Version 1. It returns
	// domain.ErrVersionConflict when the session already has one.
	Create(ctx context.Context, sel *domain.Selection) error
	// Update replaces the selection if its Version still matches the stored one,
	// then increments Version. It returns domain.ErrVersionConflict otherwise.
	Update(ctx context.Context, sel *domain.Selection) error
	Delete(ctx context.Context, id string) error
	Close() error
}

type storeConfig struct {
	redisClient *redis.Client
	ttl         time.Duration
	now         func() time.Time
}

type StoreOption func(*storeConfig)

func WithRedisClient(client *redis.Client) StoreOption {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithTTL sets how long an idle session is kept by the redis driver.
func WithTTL(ttl time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.ttl = ttl
	}
}

func withClock(now func() time.Time) StoreOption {
	return func(c *storeConfig) {
		c.now = now
	}
}

func NewStore(storeType StoreType, opts ...StoreOption) (Store, error) {
	cfg := &storeConfig{now: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}

	switch storeType {
	case StoreTypeMemory:
		return newMemoryStore(cfg.now), nil
	case StoreTypeRedis:
		if cfg.redisClient == nil {
			return nil, errors.New("redis session store requires a client")
		}
		ttl := cfg.ttl
		if ttl <= 0 {
			ttl = 2 * time.Hour
		}
		return newRedisStore(cfg.redisClient, ttl, cfg.now), nil
	default:
		return nil, ErrInvalidStoreType
	}
}
