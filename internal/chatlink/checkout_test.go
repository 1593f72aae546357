package chatlink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trtech123/tos/internal/domain"
)

func TestCheckoutParams(t *testing.T) {
	link := Links("[הזמן](/checkout?from=תל אביב&to=לרנקה&date=2025-04-01&airline=אל על&price=1050)")[0]

	params, err := CheckoutParams(link.URL)

	require.NoError(t, err)
	assert.Equal(t, domain.CheckoutParams{
		From:    "תל אביב",
		To:      "לרנקה",
		Date:    "2025-04-01",
		Airline: "אל על",
		Price:   "1050",
	}, params)
}

func TestCheckoutParams_Encoded(t *testing.T) {
	params, err := CheckoutParams("/checkout?from=%D7%AA%D7%9C+%D7%90%D7%91%D7%99%D7%91&price=890")

	require.NoError(t, err)
	assert.Equal(t, "תל אביב", params.From)
	assert.Equal(t, "890", params.Price)
}

func TestCheckoutParams_NotCheckout(t *testing.T) {
	_, err := CheckoutParams("https://example.com/?price=1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	params, err := CheckoutParams("/checkout")
	require.NoError(t, err)
	assert.True(t, params.Empty())
}
