package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int64
	}{
		{name: "shekel symbol", input: "₪890", expected: 890},
		{name: "thousands separator", input: "₪1,120", expected: 1120},
		{name: "bare integer", input: "2500", expected: 2500},
		{name: "no digits", input: "₪", expected: 0},
		{name: "empty", input: "", expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParsePrice(tc.input))
		})
	}
}

func TestSelection_CanContinue(t *testing.T) {
	var nilSelection *Selection
	assert.False(t, nilSelection.CanContinue())
	assert.False(t, (&Selection{SelectedFlight: &Flight{ID: 1}}).CanContinue())
	assert.True(t, (&Selection{SelectedHotel: &Hotel{ID: 3}}).CanContinue())
}

func TestCheckoutParams_Empty(t *testing.T) {
	assert.True(t, CheckoutParams{}.Empty())
	assert.False(t, CheckoutParams{Price: "2500"}.Empty())
}

func TestUpstreamError_Unwrap(t *testing.T) {
	err := &UpstreamError{Op: "chat completion", Err: ErrUnauthorized}
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "chat completion: upstream rejected the api key or request", err.Error())
	assert.Equal(t, ErrUnauthorized.Error(), err.Detail())
}
