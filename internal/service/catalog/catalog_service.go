package catalog

import (
	"context"

	"github.com/trtech123/tos/internal/domain"
	"github.com/trtech123/tos/internal/repository"
)

type CatalogUseCase interface {
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	GetFlight(ctx context.Context, id int64) (*domain.Flight, error)
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	GetHotel(ctx context.Context, id int64) (*domain.Hotel, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	GetHotels(ctx context.Context) ([]domain.Hotel, error)
	SetHotels(ctx context.Context, hotels []domain.Hotel) error
}

type CatalogService struct {
	repo  repository.CatalogRepository
	cache Cache
}

// NewCatalogService accepts a nil cache.
func NewCatalogService(repo repository.CatalogRepository, cache Cache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.ListFlights(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *CatalogService) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetFlight(ctx, id)
}

func (s *CatalogService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetHotels(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	hotels, err := s.repo.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetHotels(ctx, hotels)
	}
	return hotels, nil
}

func (s *CatalogService) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	return s.repo.GetHotel(ctx, id)
}

var _ CatalogUseCase = (*CatalogService)(nil)
