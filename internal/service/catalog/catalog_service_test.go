package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/trtech123/tos/internal/domain"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCatalogRepository) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockCatalogRepository) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockCatalogRepository) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockCache) SetHotels(ctx context.Context, hotels []domain.Hotel) error {
	args := m.Called(ctx, hotels)
	return args.Error(0)
}

func sampleFlights() []domain.Flight {
	return []domain.Flight{{ID: 1, Airline: "אל על", Price: "₪890"}}
}

func sampleHotels() []domain.Hotel {
	return []domain.Hotel{{ID: 3, Name: "סאן ריזורט לרנקה", TotalPrice: "₪1,860", Nights: 3}}
}

func TestCatalogService_ListFlights_CacheMiss(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockRepo, mockCache)
	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), nil).Once()
	mockRepo.On("ListFlights", ctx).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.ListFlights(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListFlights_CacheHit(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockRepo, mockCache)
	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(flights, nil).Once()

	result, err := service.ListFlights(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockRepo.AssertNotCalled(t, "ListFlights")
	mockCache.AssertNotCalled(t, "SetFlights")
}

func TestCatalogService_ListFlights_CacheError(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockRepo, mockCache)
	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), errors.New("cache error")).Once()
	mockRepo.On("ListFlights", ctx).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.ListFlights(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_ListFlights_RepositoryError(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockRepo, mockCache)
	ctx := context.Background()
	expectedErr := errors.New("database error")

	mockCache.On("GetFlights", ctx).Return(([]domain.Flight)(nil), nil).Once()
	mockRepo.On("ListFlights", ctx).Return([]domain.Flight{}, expectedErr).Once()

	result, err := service.ListFlights(ctx)

	assert.Equal(t, expectedErr, err)
	assert.Nil(t, result)
	mockCache.AssertNotCalled(t, "SetFlights")
}

func TestCatalogService_ListHotels_CacheMiss(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockRepo, mockCache)
	ctx := context.Background()
	hotels := sampleHotels()

	mockCache.On("GetHotels", ctx).Return(([]domain.Hotel)(nil), nil).Once()
	mockRepo.On("ListHotels", ctx).Return(hotels, nil).Once()
	mockCache.On("SetHotels", ctx, hotels).Return(nil).Once()

	result, err := service.ListHotels(ctx)

	assert.NoError(t, err)
	assert.Equal(t, hotels, result)
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_NoCache(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	service := NewCatalogService(mockRepo, nil)
	ctx := context.Background()
	hotels := sampleHotels()

	mockRepo.On("ListHotels", ctx).Return(hotels, nil).Once()

	result, err := service.ListHotels(ctx)

	assert.NoError(t, err)
	assert.Equal(t, hotels, result)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_GetHotel_NotFound(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	service := NewCatalogService(mockRepo, nil)
	ctx := context.Background()

	mockRepo.On("GetHotel", ctx, int64(9)).Return(nil, domain.ErrNotFound).Once()

	result, err := service.GetHotel(ctx, 9)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, result)
}
