package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/trtech123/tos/internal/domain"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

func newRedisStore(client *redis.Client, ttl time.Duration, now func() time.Time) *redisStore {
	return &redisStore{client: client, ttl: ttl, now: now}
}

func (s *redisStore) Get(ctx context.Context, id string) (*domain.Selection, error) {
	key := selectionKey(id)
	val, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sel domain.Selection
	if err := json.Unmarshal(val, &sel); err != nil {
		return nil, err
	}

	// sliding expiry: an active session stays alive
	_ = s.client.Expire(ctx, key, s.ttl).Err()
	return &sel, nil
}

func (s *redisStore) Create(ctx context.Context, sel *domain.Selection) error {
	now := s.now()
	sel.CreatedAt = now
	sel.UpdatedAt = now
	sel.Version = 1

	val, err := json.Marshal(sel)
	if err != nil {
		return err
	}
	created, err := s.client.SetNX(ctx, selectionKey(sel.SessionID), val, s.ttl).Result()
	if err != nil {
		return err
	}
	if !created {
		return domain.ErrVersionConflict
	}
	return nil
}

func (s *redisStore) Update(ctx context.Context, sel *domain.Selection) error {
	key := selectionKey(sel.SessionID)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		val, err := tx.Get(ctx, key).Bytes()
		if err == redis.Nil {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}

		var stored domain.Selection
		if err := json.Unmarshal(val, &stored); err != nil {
			return err
		}
		if stored.Version != sel.Version {
			return domain.ErrVersionConflict
		}

		next := *sel
		next.Version++
		next.UpdatedAt = s.now()
		payload, err := json.Marshal(&next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		if err == nil {
			*sel = next
		}
		return err
	}, key)
	return conflictOnTxFailure(err)
}

// conflictOnTxFailure reports a lost WATCH race the same way as a stale version.
func conflictOnTxFailure(err error) error {
	if errors.Is(err, redis.TxFailedErr) {
		return domain.ErrVersionConflict
	}
	return err
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, selectionKey(id)).Err()
}

func (s *redisStore) Close() error {
	return nil
}

func selectionKey(id string) string {
	return "session:selection:" + id
}
