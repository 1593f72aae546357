package domain

// Endpoint is one side of a flight leg as shown on the results screen.
type Endpoint struct {
	Time    string `json:"time"`
	Airport string `json:"airport"`
	City    string `json:"city"`
}

type Flight struct {
	ID        int64    `json:"id"`
	Airline   string   `json:"airline"`
	Logo      string   `json:"logo"`
	Departure Endpoint `json:"departure"`
	Arrival   Endpoint `json:"arrival"`
	Duration  string   `json:"duration"`
	Stops     string   `json:"stops"`
	Price     string   `json:"price"`
	Class     string   `json:"class"`
}

// PriceValue returns the flight price with currency symbols and separators stripped.
func (f Flight) PriceValue() int64 {
	return ParsePrice(f.Price)
}
