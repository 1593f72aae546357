// Package pricing holds the fare bands the assistant quotes from when a user asks
// to book a route that is not in the search results.
package pricing

import (
	"fmt"
	"strings"
)

const Currency = "₪"

// Tier is a round-trip economy fare band from the home airport to one region.
type Tier struct {
	Region       string
	Destinations []string
	Min          int64
	Max          int64
}

// Midpoint is the price the assistant should quote when nothing narrows the band.
func (t Tier) Midpoint() int64 {
	return (t.Min + t.Max) / 2
}

func Tiers() []Tier {
	return []Tier{
		{Region: "קפריסין, יוון וטורקיה", Destinations: []string{"לרנקה", "פאפוס", "אתונה", "כרתים", "רודוס", "איסטנבול", "אנטליה"}, Min: 600, Max: 1500},
		{Region: "מזרח אירופה", Destinations: []string{"בודפשט", "פראג", "בוקרשט", "ורשה", "סופיה"}, Min: 900, Max: 1800},
		{Region: "מערב אירופה", Destinations: []string{"פריז", "לונדון", "רומא", "ברצלונה", "אמסטרדם", "ברלין"}, Min: 1200, Max: 2500},
		{Region: "המפרץ", Destinations: []string{"דובאי", "אבו דאבי"}, Min: 1200, Max: 2200},
		{Region: "המזרח הרחוק", Destinations: []string{"בנגקוק", "טוקיו", "מומבאי", "סיאול"}, Min: 3000, Max: 5500},
		{Region: "צפון אמריקה", Destinations: []string{"ניו יורק", "לוס אנג'לס", "מיאמי", "טורונטו"}, Min: 3500, Max: 6000},
		{Region: "יעדים אחרים", Min: 2000, Max: 4000},
	}
}

// Table renders the tiers as prompt lines, one region per line.
func Table(tiers []Tier) string {
	var b strings.Builder
	for _, t := range tiers {
		b.WriteString("- ")
		b.WriteString(t.Region)
		if len(t.Destinations) > 0 {
			b.WriteString(" (")
			b.WriteString(strings.Join(t.Destinations, ", "))
			b.WriteString(")")
		}
		fmt.Fprintf(&b, ": %d-%d %s\n", t.Min, t.Max, Currency)
	}
	return b.String()
}
