package booking

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/trtech123/tos/internal/domain"
	"github.com/trtech123/tos/internal/kafka"
	"github.com/trtech123/tos/internal/session"
)

const dateLayout = "2006-01-02"

type BookingUseCase interface {
	Selection(ctx context.Context, sessionID string) (*domain.Selection, error)
	SelectFlight(ctx context.Context, sessionID string, flightID int64) (*domain.Selection, error)
	SelectHotel(ctx context.Context, sessionID string, hotelID int64) (*domain.Selection, error)
	Continue(ctx context.Context, sessionID string) (*domain.Selection, error)
	Skip(ctx context.Context, sessionID string) (*domain.Selection, error)
	Reset(ctx context.Context, sessionID string) error
	Checkout(ctx context.Context, sessionID string, params domain.CheckoutParams) (*domain.Quote, error)
}

type Catalog interface {
	GetFlight(ctx context.Context, id int64) (*domain.Flight, error)
	GetHotel(ctx context.Context, id int64) (*domain.Hotel, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Pricing holds the fixed checkout surcharges and the fallback flight price.
type Pricing struct {
	Taxes              int64
	Insurance          int64
	DefaultFlightPrice int64
}

type BookingService struct {
	store              session.Store
	catalog            Catalog
	producer           Producer
	pricing            Pricing
	bookingTopic       string
	notificationsTopic string
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

// WithProducer enables booking events; without it the flow publishes nothing.
func WithProducer(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(store session.Store, catalog Catalog, pricing Pricing, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		store:   store,
		catalog: catalog,
		pricing: pricing,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Selection returns the session's selection, or an empty one if nothing was chosen yet.
func (s *BookingService) Selection(ctx context.Context, sessionID string) (*domain.Selection, error) {
	sel, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		return &domain.Selection{SessionID: sessionID}, nil
	}
	return sel, nil
}

func (s *BookingService) SelectFlight(ctx context.Context, sessionID string, flightID int64) (*domain.Selection, error) {
	flight, err := s.catalog.GetFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}

	sel, err := s.mutate(ctx, sessionID, func(sel *domain.Selection) error {
		sel.SelectedFlight = flight
		sel.ShowHotelOffers = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventFlightSelected, sel)
	return sel, nil
}

// SelectHotel records the hotel without leaving the offers screen.
func (s *BookingService) SelectHotel(ctx context.Context, sessionID string, hotelID int64) (*domain.Selection, error) {
	hotel, err := s.catalog.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	sel, err := s.mutate(ctx, sessionID, func(sel *domain.Selection) error {
		// the offers screen is only reachable with a flight chosen
		if sel.SelectedFlight == nil {
			return domain.ErrNoFlightSelected
		}
		sel.SelectedHotel = hotel
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventHotelSelected, sel)
	return sel, nil
}

func (s *BookingService) Continue(ctx context.Context, sessionID string) (*domain.Selection, error) {
	sel, err := s.Selection(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sel.CanContinue() {
		return nil, domain.ErrNoHotelSelected
	}

	s.publish(ctx, kafka.EventCheckoutStarted, sel)
	return sel, nil
}

func (s *BookingService) Skip(ctx context.Context, sessionID string) (*domain.Selection, error) {
	sel, err := s.mutate(ctx, sessionID, func(sel *domain.Selection) error {
		sel.SelectedHotel = nil
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventHotelSkipped, sel)
	s.publish(ctx, kafka.EventCheckoutStarted, sel)
	return sel, nil
}

func (s *BookingService) Reset(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}

func (s *BookingService) Checkout(ctx context.Context, sessionID string, params domain.CheckoutParams) (*domain.Quote, error) {
	if err := ValidateParams(params); err != nil {
		return nil, err
	}

	sel, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return BuildQuote(params, sel, s.pricing), nil
}

// ValidateParams enforces the link contract: a supplied price is a bare integer and a
// supplied date is YYYY-MM-DD.
func ValidateParams(params domain.CheckoutParams) error {
	if params.Price != "" {
		v, err := strconv.ParseInt(params.Price, 10, 64)
		if err != nil {
			return fmt.Errorf("price %q is not an integer: %w", params.Price, domain.ErrInvalidInput)
		}
		if v < 0 {
			return fmt.Errorf("price %q is negative: %w", params.Price, domain.ErrInvalidInput)
		}
	}
	if params.Date != "" {
		if _, err := time.Parse(dateLayout, params.Date); err != nil {
			return fmt.Errorf("date %q is not YYYY-MM-DD: %w", params.Date, domain.ErrInvalidInput)
		}
	}
	return nil
}

// ResolveFlight applies the checkout precedence: navigation params, then the stored
// selection, then the default price. A missing price in the params still falls through
// to the selection and the default.
func ResolveFlight(params domain.CheckoutParams, sel *domain.Selection, defaultPrice int64) (*domain.FlightSummary, domain.FlightSource, int64) {
	var stored *domain.Flight
	if sel != nil {
		stored = sel.SelectedFlight
	}

	price := defaultPrice
	if stored != nil {
		price = stored.PriceValue()
	}

	if !params.Empty() {
		if params.Price != "" {
			if v, err := strconv.ParseInt(params.Price, 10, 64); err == nil {
				price = v
			}
		}
		summary := &domain.FlightSummary{
			From:    params.From,
			To:      params.To,
			Date:    params.Date,
			Airline: params.Airline,
		}
		// fields the link leaves out come from the selected flight
		if stored != nil {
			summary.From = firstNonEmpty(summary.From, stored.Departure.City)
			summary.To = firstNonEmpty(summary.To, stored.Arrival.City)
			summary.Airline = firstNonEmpty(summary.Airline, stored.Airline)
		}
		return summary, domain.FlightSourceLink, price
	}

	if stored != nil {
		return &domain.FlightSummary{
			From:    stored.Departure.City,
			To:      stored.Arrival.City,
			Airline: stored.Airline,
		}, domain.FlightSourceSelection, price
	}

	return nil, domain.FlightSourceDefault, price
}

func BuildQuote(params domain.CheckoutParams, sel *domain.Selection, pricing Pricing) *domain.Quote {
	summary, source, flightPrice := ResolveFlight(params, sel, pricing.DefaultFlightPrice)

	quote := &domain.Quote{
		Flight:       summary,
		FlightSource: source,
		FlightPrice:  flightPrice,
		Taxes:        pricing.Taxes,
		Insurance:    pricing.Insurance,
	}
	if sel != nil && sel.SelectedHotel != nil {
		quote.Hotel = sel.SelectedHotel
		quote.HotelPrice = sel.SelectedHotel.TotalValue()
	}
	quote.Total = quote.FlightPrice + quote.HotelPrice + quote.Taxes + quote.Insurance
	return quote
}

func firstNonEmpty(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// mutate loads (or starts) the session's selection, applies fn and stores the result.
func (s *BookingService) mutate(ctx context.Context, sessionID string, fn func(*domain.Selection) error) (*domain.Selection, error) {
	sel, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	created := false
	if sel == nil {
		sel = &domain.Selection{SessionID: sessionID}
		created = true
	}

	if err := fn(sel); err != nil {
		return nil, err
	}

	if created {
		err = s.store.Create(ctx, sel)
	} else {
		err = s.store.Update(ctx, sel)
	}
	if err != nil {
		return nil, err
	}
	return sel, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, sel *domain.Selection) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}

	event := kafka.BookingEvent{
		Type:       eventType,
		SessionID:  sel.SessionID,
		OccurredAt: s.now(),
	}
	if sel.SelectedFlight != nil {
		event.FlightID = sel.SelectedFlight.ID
		event.Airline = sel.SelectedFlight.Airline
		event.FlightCost = sel.SelectedFlight.PriceValue()
	}
	if sel.SelectedHotel != nil {
		event.HotelID = sel.SelectedHotel.ID
		event.HotelCost = sel.SelectedHotel.TotalValue()
	}

	if err := s.producer.Publish(ctx, s.bookingTopic, sel.SessionID, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for session %s: %v", eventType, sel.SessionID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, sel.SessionID, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for session %s: %v", eventType, sel.SessionID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
