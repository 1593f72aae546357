package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trtech123/tos/internal/domain"
)

const (
	flightColumns = `id, airline, logo, departure_time, departure_airport, departure_city, arrival_time, arrival_airport, arrival_city, duration, stops, price, class`
	hotelColumns  = `id, name, image, rating, location, amenities, price_per_night, total_price, nights`
)

// PGCatalogRepository reads the reference catalog from PostgreSQL. It never writes.
type PGCatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) CatalogRepository {
	return &PGCatalogRepository{db: db}
}

func (r *PGCatalogRepository) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGCatalogRepository) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	f, err := scanFlight(r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("flight %d: %w", id, domain.ErrNotFound)
	}
	return f, err
}

func (r *PGCatalogRepository) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.Query(ctx, `SELECT `+hotelColumns+` FROM hotels ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, *h)
	}
	return hotels, rows.Err()
}

func (r *PGCatalogRepository) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	h, err := scanHotel(r.db.QueryRow(ctx, `SELECT `+hotelColumns+` FROM hotels WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("hotel %d: %w", id, domain.ErrNotFound)
	}
	return h, err
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Airline, &f.Logo,
		&f.Departure.Time, &f.Departure.Airport, &f.Departure.City,
		&f.Arrival.Time, &f.Arrival.Airport, &f.Arrival.City,
		&f.Duration, &f.Stops, &f.Price, &f.Class); err != nil {
		return nil, err
	}
	return &f, nil
}

func scanHotel(row pgx.Row) (*domain.Hotel, error) {
	var h domain.Hotel
	if err := row.Scan(&h.ID, &h.Name, &h.Image, &h.Rating, &h.Location, &h.Amenities, &h.PricePerNight, &h.TotalPrice, &h.Nights); err != nil {
		return nil, err
	}
	return &h, nil
}

var _ CatalogRepository = (*PGCatalogRepository)(nil)
