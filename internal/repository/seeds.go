package repository

import "github.com/trtech123/tos/internal/domain"

const (
	airlineLogo  = "/abstract-airline-logo.png"
	hotelImage   = "/placeholder.svg"
	economyClass = "תיירים"
	nonstop      = "ישיר"
)

func tlv(departs string) domain.Endpoint {
	return domain.Endpoint{Time: departs, Airport: "TLV", City: "תל אביב"}
}

// SeedFlights are the search results shown for the demo search.
func SeedFlights() []domain.Flight {
	return []domain.Flight{
		{
			ID:        1,
			Airline:   "אל על",
			Logo:      airlineLogo,
			Departure: tlv("06:45"),
			Arrival:   domain.Endpoint{Time: "09:15", Airport: "LCA", City: "לרנקה"},
			Duration:  "1ש 30ד",
			Stops:     nonstop,
			Price:     "₪890",
			Class:     economyClass,
		},
		{
			ID:        2,
			Airline:   "קפריסין איירווייז",
			Logo:      airlineLogo,
			Departure: tlv("14:20"),
			Arrival:   domain.Endpoint{Time: "16:50", Airport: "LCA", City: "לרנקה"},
			Duration:  "1ש 30ד",
			Stops:     nonstop,
			Price:     "₪750",
			Class:     economyClass,
		},
		{
			ID:        3,
			Airline:   "איג'יאן איירליינס",
			Logo:      airlineLogo,
			Departure: tlv("18:00"),
			Arrival:   domain.Endpoint{Time: "21:30", Airport: "ATH", City: "אתונה"},
			Duration:  "2ש 30ד",
			Stops:     nonstop,
			Price:     "₪1,120",
			Class:     economyClass,
		},
	}
}

// SeedHotels are the upsell offers shown after a flight is chosen.
func SeedHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:            1,
			Name:          "מלון ים המלח ספא",
			Image:         hotelImage,
			Rating:        4.5,
			Location:      "לרנקה, קפריסין",
			Amenities:     []string{"Wi-Fi חינם", "בריכה", "חנייה", "ארוחת בוקר"},
			PricePerNight: "₪450",
			TotalPrice:    "₪1,350",
			Nights:        3,
		},
		{
			ID:            2,
			Name:          "מלון לרנקה פלאזה",
			Image:         hotelImage,
			Rating:        4.2,
			Location:      "מרכז לרנקה, קפריסין",
			Amenities:     []string{"Wi-Fi חינם", "חדר כושר", "מסעדה"},
			PricePerNight: "₪380",
			TotalPrice:    "₪1,140",
			Nights:        3,
		},
		{
			ID:            3,
			Name:          "סאן ריזורט לרנקה",
			Image:         hotelImage,
			Rating:        4.7,
			Location:      "חוף לרנקה, קפריסין",
			Amenities:     []string{"Wi-Fi חינם", "בריכה", "חנייה", "ספא", "חדר כושר"},
			PricePerNight: "₪620",
			TotalPrice:    "₪1,860",
			Nights:        3,
		},
		{
			ID:            4,
			Name:          "מלון סיטי סנטר",
			Image:         hotelImage,
			Rating:        4.0,
			Location:      "לרנקה, קפריסין",
			Amenities:     []string{"Wi-Fi חינם", "ארוחת בוקר"},
			PricePerNight: "₪290",
			TotalPrice:    "₪870",
			Nights:        3,
		},
	}
}
