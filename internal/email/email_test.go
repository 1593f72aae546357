package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trtech123/tos/internal/kafka"
)

func TestSender_Send(t *testing.T) {
	var buf bytes.Buffer
	s := &Sender{out: &buf}

	require.NoError(t, s.Send(context.Background(), kafka.BookingEvent{Type: "hotel_selected", SessionID: "s1", HotelID: 3, HotelCost: 1860}))
	assert.Equal(t, "session s1 picked hotel 3 (1860)\n", buf.String())
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		event    kafka.BookingEvent
		expected string
	}{
		{kafka.BookingEvent{Type: "flight_selected", SessionID: "s", FlightID: 1, Airline: "אל על", FlightCost: 890}, "session s picked flight 1 (אל על, 890)"},
		{kafka.BookingEvent{Type: "hotel_skipped", SessionID: "s"}, "session s skipped the hotel offers"},
		{kafka.BookingEvent{Type: "checkout_started", SessionID: "s", FlightID: 1, HotelID: 3}, "session s went to checkout with flight 1, hotel 3"},
		{kafka.BookingEvent{Type: "other", SessionID: "s"}, "session s: other"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, describe(tc.event))
	}
}
