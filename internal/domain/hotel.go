package domain

type Hotel struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Image         string   `json:"image"`
	Rating        float64  `json:"rating"`
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
	PricePerNight string   `json:"price_per_night"`
	TotalPrice    string   `json:"total_price"`
	Nights        int      `json:"nights"`
}

// TotalValue returns the stay price with currency symbols and separators stripped.
func (h Hotel) TotalValue() int64 {
	return ParsePrice(h.TotalPrice)
}
