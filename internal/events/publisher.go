package events

import (
	"context"
	"strconv"
	"time"

	"staybook/pkg/kafka"
	"staybook/pkg/logger"
	"staybook/pkg/model"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
	EventBookingRebooked  = "booking.rebooked"
	EventBookingDeleted   = "booking.deleted"

	schemaVersion = "1"
)

// BookingEvent is the payload published for every booking state transition.
type BookingEvent struct {
	BookingID  string            `json:"booking_id"`
	PropertyID int64             `json:"property_id"`
	StartDate  model.Date        `json:"start_date"`
	EndDate    model.Date        `json:"end_date"`
	GuestID    *int64            `json:"guest_id,omitempty"`
	Type       model.BookingType `json:"booking_type"`
	Status     model.Status      `json:"status"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Publisher emits booking lifecycle events. Publishing is best effort: the
// booking transaction has already committed, so failures are logged, never
// returned to the caller.
type Publisher interface {
	BookingCreated(ctx context.Context, booking *model.Booking)
	BookingCancelled(ctx context.Context, booking *model.Booking)
	BookingRebooked(ctx context.Context, booking *model.Booking)
	BookingDeleted(ctx context.Context, booking *model.Booking)
}

type kafkaPublisher struct {
	producer *kafka.Producer
	source   string
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, source string, log *logger.Logger) Publisher {
	return &kafkaPublisher{
		producer: producer,
		source:   source,
		log:      log,
	}
}

func (p *kafkaPublisher) BookingCreated(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, EventBookingCreated, booking)
}

func (p *kafkaPublisher) BookingCancelled(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, EventBookingCancelled, booking)
}

func (p *kafkaPublisher) BookingRebooked(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, EventBookingRebooked, booking)
}

func (p *kafkaPublisher) BookingDeleted(ctx context.Context, booking *model.Booking) {
	p.publish(ctx, EventBookingDeleted, booking)
}

func (p *kafkaPublisher) publish(ctx context.Context, eventType string, booking *model.Booking) {
	msg := kafka.NewMessage().
		WithKey(strconv.FormatInt(booking.PropertyID, 10)).
		WithValue(&BookingEvent{
			BookingID:  booking.ID,
			PropertyID: booking.PropertyID,
			StartDate:  booking.StartDate,
			EndDate:    booking.EndDate,
			GuestID:    booking.GuestID,
			Type:       booking.Type,
			Status:     booking.Status,
			OccurredAt: time.Now().UTC(),
		}).
		WithEventType(eventType).
		WithSchemaVersion(schemaVersion).
		WithSource(p.source).
		Build()

	if err := p.producer.Publish(ctx, msg); err != nil {
		p.log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
	}
}

type nopPublisher struct{}

// NewNopPublisher is used when Kafka is disabled.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) BookingCreated(context.Context, *model.Booking)   {}
func (nopPublisher) BookingCancelled(context.Context, *model.Booking) {}
func (nopPublisher) BookingRebooked(context.Context, *model.Booking)  {}
func (nopPublisher) BookingDeleted(context.Context, *model.Booking)   {}
