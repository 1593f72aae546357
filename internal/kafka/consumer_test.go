package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHandler_DecodesEvent(t *testing.T) {
	event := BookingEvent{
		Type:       "hotel_selected",
		SessionID:  "s1",
		FlightID:   1,
		HotelID:    3,
		OccurredAt: time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var got BookingEvent
	handler := EventHandler(func(ctx context.Context, e BookingEvent) error {
		got = e
		return nil
	})

	require.NoError(t, handler(context.Background(), kafka.Message{Value: payload}))
	assert.Equal(t, event, got)
}

func TestEventHandler_SkipsGarbage(t *testing.T) {
	called := false
	handler := EventHandler(func(ctx context.Context, e BookingEvent) error {
		called = true
		return nil
	})

	assert.NoError(t, handler(context.Background(), kafka.Message{Value: []byte("{not json")}))
	assert.False(t, called)
}

func TestEventHandler_PropagatesError(t *testing.T) {
	boom := errors.New("smtp down")
	handler := EventHandler(func(ctx context.Context, e BookingEvent) error {
		return boom
	})

	err := handler(context.Background(), kafka.Message{Value: []byte(`{"type":"checkout_started"}`)})
	assert.ErrorIs(t, err, boom)
}

func TestConsumer_CloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}

func TestProducer_CheckConnectionWithoutBrokers(t *testing.T) {
	p := NewProducer(nil)
	defer p.Close()
	assert.Error(t, p.CheckConnection(context.Background()))
}

func TestEncodeMessage(t *testing.T) {
	at := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	msg, err := encodeMessage("booking", "s1", BookingEvent{Type: EventHotelSkipped, SessionID: "s1", OccurredAt: at}, at)
	require.NoError(t, err)

	assert.Equal(t, "booking", msg.Topic)
	assert.Equal(t, []byte("s1"), msg.Key)
	assert.Equal(t, at, msg.Time)
	assert.JSONEq(t, `{"type":"hotel_skipped","session_id":"s1","occurred_at":"2026-10-16T09:00:00Z"}`, string(msg.Value))
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "content-type", msg.Headers[0].Key)
}

func TestEncodeMessage_Unmarshalable(t *testing.T) {
	_, err := encodeMessage("booking", "s1", make(chan int), time.Now())
	assert.ErrorContains(t, err, "failed to marshal payload")
}

func TestDecodeEvent_ReportsPosition(t *testing.T) {
	_, err := decodeEvent(kafka.Message{Topic: "notifications", Partition: 2, Offset: 41, Value: []byte("nope")})
	assert.ErrorContains(t, err, "notifications/2@41")
}
