package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventFlightSelected  = "flight_selected"
	EventHotelSelected   = "hotel_selected"
	EventHotelSkipped    = "hotel_skipped"
	EventCheckoutStarted = "checkout_started"
)

// BookingEvent describes one step a session took through the booking flow.
type BookingEvent struct {
	Type       string    `json:"type"`
	SessionID  string    `json:"session_id"`
	FlightID   int64     `json:"flight_id,omitempty"`
	HotelID    int64     `json:"hotel_id,omitempty"`
	Airline    string    `json:"airline,omitempty"`
	FlightCost int64     `json:"flight_cost,omitempty"`
	HotelCost  int64     `json:"hotel_cost,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func encodeMessage(topic, key string, payload interface{}, at time.Time) (kafka.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  at,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}, nil
}

func decodeEvent(msg kafka.Message) (BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return event, fmt.Errorf("decode event at %s/%d@%d: %w", msg.Topic, msg.Partition, msg.Offset, err)
	}
	return event, nil
}
