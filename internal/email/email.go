package email

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/trtech123/tos/internal/kafka"
)

// Sender is the notification sink for booking events. It writes the message it would
// send instead of talking to a mail server.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	_, err := fmt.Fprintln(s.out, describe(event))
	return err
}

func describe(event kafka.BookingEvent) string {
	switch event.Type {
	case kafka.EventFlightSelected:
		return fmt.Sprintf("session %s picked flight %d (%s, %d)", event.SessionID, event.FlightID, event.Airline, event.FlightCost)
	case kafka.EventHotelSelected:
		return fmt.Sprintf("session %s picked hotel %d (%d)", event.SessionID, event.HotelID, event.HotelCost)
	case kafka.EventHotelSkipped:
		return fmt.Sprintf("session %s skipped the hotel offers", event.SessionID)
	case kafka.EventCheckoutStarted:
		return fmt.Sprintf("session %s went to checkout with flight %d, hotel %d", event.SessionID, event.FlightID, event.HotelID)
	default:
		return fmt.Sprintf("session %s: %s", event.SessionID, event.Type)
	}
}
