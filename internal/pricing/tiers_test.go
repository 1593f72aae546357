package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTiers_BandsAreOrdered(t *testing.T) {
	for _, tier := range Tiers() {
		assert.Less(t, tier.Min, tier.Max, tier.Region)
		assert.Greater(t, tier.Min, int64(0), tier.Region)
	}
}

func TestTier_Midpoint(t *testing.T) {
	assert.Equal(t, int64(1050), Tier{Min: 600, Max: 1500}.Midpoint())
}

func TestTable(t *testing.T) {
	table := Table([]Tier{
		{Region: "המפרץ", Destinations: []string{"דובאי"}, Min: 1200, Max: 2200},
		{Region: "יעדים אחרים", Min: 2000, Max: 4000},
	})

	lines := strings.Split(strings.TrimSpace(table), "\n")
	assert.Equal(t, []string{
		"- המפרץ (דובאי): 1200-2200 ₪",
		"- יעדים אחרים: 2000-4000 ₪",
	}, lines)
}
