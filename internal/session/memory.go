package session

import (
	"context"
	"sync"
	"time"

	"github.com/trtech123/tos/internal/domain"
)

type memoryStore struct {
	mu         sync.RWMutex
	selections map[string]domain.Selection
	now        func() time.Time
}

func newMemoryStore(now func() time.Time) *memoryStore {
	return &memoryStore{selections: make(map[string]domain.Selection), now: now}
}

func (s *memoryStore) Get(ctx context.Context, id string) (*domain.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.selections[id]
	if !ok {
		return nil, nil
	}
	return &stored, nil
}

func (s *memoryStore) Create(ctx context.Context, sel *domain.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.selections[sel.SessionID]; ok {
		return domain.ErrVersionConflict
	}

	now := s.now()
	sel.CreatedAt = now
	sel.UpdatedAt = now
	sel.Version = 1
	s.selections[sel.SessionID] = *sel
	return nil
}

func (s *memoryStore) Update(ctx context.Context, sel *domain.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.selections[sel.SessionID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != sel.Version {
		return domain.ErrVersionConflict
	}

	sel.Version++
	sel.UpdatedAt = s.now()
	s.selections[sel.SessionID] = *sel
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.selections, id)
	return nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selections = make(map[string]domain.Selection)
	return nil
}
