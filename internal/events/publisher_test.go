package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	exchange  string
	err       error
	closed    bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.exchange = exchange
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	ch := &fakeChannel{}
	p := newWithChannel(ch, "fitcoach.events")

	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	err := p.Publish(context.Background(), Event{
		Type:       BookingCreated,
		BookingID:  "booking-1",
		User:       "u-1",
		Date:       "2025-06-01",
		Time:       "10:00",
		OccurredAt: at,
	})
	require.NoError(t, err)

	require.Len(t, ch.published, 1)
	assert.Equal(t, "fitcoach.events", ch.exchange)
	assert.Equal(t, []string{BookingCreated}, ch.keys)

	msg := ch.published[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.NotEmpty(t, msg.MessageId)

	var got Event
	require.NoError(t, json.Unmarshal(msg.Body, &got))
	assert.Equal(t, "booking-1", got.BookingID)
	assert.Equal(t, "10:00", got.Time)
	assert.True(t, at.Equal(got.OccurredAt))
}

func TestPublish_StampsTime(t *testing.T) {
	ch := &fakeChannel{}
	p := newWithChannel(ch, "x")

	require.NoError(t, p.Publish(context.Background(), Event{Type: SlotBlackout, Date: "2025-06-02", Time: "09:00"}))

	var got Event
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &got))
	assert.False(t, got.OccurredAt.IsZero())
}

func TestPublish_Error(t *testing.T) {
	p := newWithChannel(&fakeChannel{err: errors.New("channel closed")}, "x")

	err := p.Publish(context.Background(), Event{Type: BookingDeleted})
	assert.ErrorContains(t, err, "publish booking.deleted")
}

func TestNilPublisher(t *testing.T) {
	var p *Publisher

	assert.NoError(t, p.Publish(context.Background(), Event{Type: BookingPaid}))
	assert.NoError(t, p.Close())
}

func TestClose(t *testing.T) {
	ch := &fakeChannel{}
	p := newWithChannel(ch, "x")

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
