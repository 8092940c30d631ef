package events

import (
	"context"
	"encoding/json"
	"time"
)

// Routing keys on the booking exchange.
const (
	BookingCreated       = "booking.created"
	BookingProofUploaded = "booking.proof_uploaded"
	BookingConfirmed     = "booking.confirmed"
	BookingStatusChanged = "booking.status_changed"
	BookingDeleted       = "booking.deleted"
)

// BookingEvent is the message body published for every booking mutation.
// The payment proof itself is never part of the message.
type BookingEvent struct {
	BookingID      string    `json:"bookingId"`
	BookingCode    string    `json:"bookingCode"`
	UserID         string    `json:"userId"`
	ScheduleID     string    `json:"scheduleId"`
	NumberOfSeats  int       `json:"numberOfSeats"`
	TotalPrice     int64     `json:"totalPrice"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	OccurredAt     time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, ev BookingEvent) error
	Close() error
}

// NopPublisher drops every event. Used when AMQP_URL is empty and in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, BookingEvent) error { return nil }
func (NopPublisher) Close() error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	Keys   []string
	Events []BookingEvent
}

func (r *Recorder) Publish(_ context.Context, key string, ev BookingEvent) error {
	r.Keys = append(r.Keys, key)
	r.Events = append(r.Events, ev)
	return nil
}

func (r *Recorder) Close() error { return nil }

func encode(ev BookingEvent) ([]byte, error) {
	return json.Marshal(ev)
}
