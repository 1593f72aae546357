package domain

// ParsePrice drops every non-digit character from a display price ("₪1,120" -> 1120).
// A string without digits yields 0.
func ParsePrice(display string) int64 {
	var value int64
	for _, r := range display {
		if r >= '0' && r <= '9' {
			value = value*10 + int64(r-'0')
		}
	}
	return value
}
