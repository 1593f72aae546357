package domain

import "time"

// Selection is the booking state of one browsing session.
type Selection struct {
	SessionID       string    `json:"session_id"`
	SelectedFlight  *Flight   `json:"selected_flight"`
	SelectedHotel   *Hotel    `json:"selected_hotel"`
	ShowHotelOffers bool      `json:"show_hotel_offers"`
	Version         int64     `json:"version"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CanContinue reports whether the hotel screen may move on to checkout.
func (s *Selection) CanContinue() bool {
	return s != nil && s.SelectedHotel != nil
}

// CheckoutParams are the flight details a checkout link carries in its query string.
type CheckoutParams struct {
	From    string `json:"from" form:"from"`
	To      string `json:"to" form:"to"`
	Date    string `json:"date" form:"date"`
	Airline string `json:"airline" form:"airline"`
	Price   string `json:"price" form:"price"`
}

// Empty reports whether none of the five parameters was supplied.
func (p CheckoutParams) Empty() bool {
	return p.From == "" && p.To == "" && p.Date == "" && p.Airline == "" && p.Price == ""
}

type FlightSource string

const (
	FlightSourceLink      FlightSource = "link"
	FlightSourceSelection FlightSource = "selection"
	FlightSourceDefault   FlightSource = "default"
)

// FlightSummary is what the checkout page shows about the flight.
type FlightSummary struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Date    string `json:"date"`
	Airline string `json:"airline"`
}

// Quote is the derived checkout total; it is never stored.
type Quote struct {
	Flight       *FlightSummary `json:"flight,omitempty"`
	FlightSource FlightSource   `json:"flight_source"`
	FlightPrice  int64          `json:"flight_price"`
	Hotel        *Hotel         `json:"hotel,omitempty"`
	HotelPrice   int64          `json:"hotel_price"`
	Taxes        int64          `json:"taxes"`
	Insurance    int64          `json:"insurance"`
	Total        int64          `json:"total"`
}
