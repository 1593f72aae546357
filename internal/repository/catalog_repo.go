package repository

import (
	"context"
	"fmt"

	"github.com/trtech123/tos/internal/domain"
)

type CatalogRepository interface {
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	GetFlight(ctx context.Context, id int64) (*domain.Flight, error)
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	GetHotel(ctx context.Context, id int64) (*domain.Hotel, error)
}

// MemoryCatalogRepository serves a fixed, read-only set of flights and hotels.
type MemoryCatalogRepository struct {
	flights []domain.Flight
	hotels  []domain.Hotel
}

func NewMemoryCatalogRepository(flights []domain.Flight, hotels []domain.Hotel) CatalogRepository {
	return &MemoryCatalogRepository{flights: flights, hotels: hotels}
}

func (r *MemoryCatalogRepository) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	out := make([]domain.Flight, len(r.flights))
	copy(out, r.flights)
	return out, nil
}

func (r *MemoryCatalogRepository) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	for _, f := range r.flights {
		if f.ID == id {
			flight := f
			return &flight, nil
		}
	}
	return nil, fmt.Errorf("flight %d: %w", id, domain.ErrNotFound)
}

func (r *MemoryCatalogRepository) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	out := make([]domain.Hotel, len(r.hotels))
	copy(out, r.hotels)
	return out, nil
}

func (r *MemoryCatalogRepository) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	for _, h := range r.hotels {
		if h.ID == id {
			hotel := h
			hotel.Amenities = append([]string(nil), h.Amenities...)
			return &hotel, nil
		}
	}
	return nil, fmt.Errorf("hotel %d: %w", id, domain.ErrNotFound)
}

var _ CatalogRepository = (*MemoryCatalogRepository)(nil)
