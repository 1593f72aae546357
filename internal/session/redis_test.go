package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trtech123/tos/internal/domain"
)

func newTestRedisStore(t *testing.T, ttl time.Duration, opts ...StoreOption) (Store, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	opts = append([]StoreOption{WithRedisClient(client), WithTTL(ttl)}, opts...)
	store, err := NewStore(StoreTypeRedis, opts...)
	require.NoError(t, err)
	return store, server
}

func TestRedisStore_Lifecycle(t *testing.T) {
	fixed := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	store, server := newTestRedisStore(t, time.Hour, withClock(func() time.Time { return fixed }))
	ctx := context.Background()

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)

	sel := &domain.Selection{SessionID: "s1"}
	require.NoError(t, store.Create(ctx, sel))
	assert.Equal(t, int64(1), sel.Version)
	assert.Equal(t, fixed, sel.CreatedAt)
	assert.True(t, server.Exists(selectionKey("s1")))
	assert.Equal(t, time.Hour, server.TTL(selectionKey("s1")))

	loaded, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	loaded.SelectedFlight = &domain.Flight{ID: 1, Price: "₪890"}
	loaded.ShowHotelOffers = true
	require.NoError(t, store.Update(ctx, loaded))
	assert.Equal(t, int64(2), loaded.Version)

	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, again.ShowHotelOffers)
	assert.Equal(t, int64(1), again.SelectedFlight.ID)
	assert.Equal(t, int64(2), again.Version)

	require.NoError(t, store.Delete(ctx, "s1"))
	gone, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.False(t, server.Exists(selectionKey("s1")))
}

func TestRedisStore_GetSlidesExpiry(t *testing.T) {
	store, server := newTestRedisStore(t, 10*time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Selection{SessionID: "s1"}))

	server.FastForward(8 * time.Minute)
	assert.Equal(t, 2*time.Minute, server.TTL(selectionKey("s1")))

	sel, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, sel)
	assert.Equal(t, 10*time.Minute, server.TTL(selectionKey("s1")))

	server.FastForward(11 * time.Minute)
	expired, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestRedisStore_CreateTwice(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Selection{SessionID: "s1", ShowHotelOffers: true}))
	err := store.Create(ctx, &domain.Selection{SessionID: "s1"})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	stored, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, stored.ShowHotelOffers)
}

func TestRedisStore_VersionConflict(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Selection{SessionID: "s1"}))

	first, _ := store.Get(ctx, "s1")
	second, _ := store.Get(ctx, "s1")

	first.SelectedHotel = &domain.Hotel{ID: 3}
	require.NoError(t, store.Update(ctx, first))

	second.SelectedHotel = &domain.Hotel{ID: 1}
	assert.ErrorIs(t, store.Update(ctx, second), domain.ErrVersionConflict)

	stored, _ := store.Get(ctx, "s1")
	assert.Equal(t, int64(3), stored.SelectedHotel.ID)
}

func TestRedisStore_ConcurrentUpdatesHaveOneWinner(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Selection{SessionID: "s1"}))

	const writers = 8
	errs := make([]error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		sel, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		sel.SelectedHotel = &domain.Hotel{ID: int64(i + 1)}

		wg.Add(1)
		go func(i int, sel *domain.Selection) {
			defer wg.Done()
			errs[i] = store.Update(ctx, sel)
		}(i, sel)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrVersionConflict)
	}
	assert.Equal(t, 1, winners)

	stored, _ := store.Get(ctx, "s1")
	assert.Equal(t, int64(2), stored.Version)
}

func TestRedisStore_UpdateMissing(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)

	err := store.Update(context.Background(), &domain.Selection{SessionID: "nope", Version: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRedisStore_DefaultTTL(t *testing.T) {
	store, server := newTestRedisStore(t, 0)

	require.NoError(t, store.Create(context.Background(), &domain.Selection{SessionID: "s1"}))
	assert.Equal(t, 2*time.Hour, server.TTL(selectionKey("s1")))
}

func TestConflictOnTxFailure(t *testing.T) {
	assert.ErrorIs(t, conflictOnTxFailure(redis.TxFailedErr), domain.ErrVersionConflict)
	assert.NoError(t, conflictOnTxFailure(nil))

	boom := errors.New("connection reset")
	assert.Equal(t, boom, conflictOnTxFailure(boom))
	assert.ErrorIs(t, conflictOnTxFailure(domain.ErrNotFound), domain.ErrNotFound)
}
