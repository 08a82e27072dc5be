package model

import (
	"time"
)

type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusCancel Status = "CANCEL"
)

type BookingType string

const (
	TypeReservation BookingType = "RESERVATION"
	TypeBlock       BookingType = "BLOCK"
)

// Booking is one reservation or block held against a property. The type is
// derived once at construction from the presence of a guest and never changes.
type Booking struct {
	ID         string      `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	PropertyID int64       `json:"property_id" bson:"property_id" validate:"required,gt=0"`
	StartDate  Date        `json:"start_date" bson:"start_date" validate:"required"`
	EndDate    Date        `json:"end_date" bson:"end_date" validate:"required"`
	GuestID    *int64      `json:"guest_id,omitempty" bson:"guest_id,omitempty" validate:"omitempty,gt=0"`
	Status     Status      `json:"status" bson:"status" validate:"required,oneof=ACTIVE CANCEL"`
	Type       BookingType `json:"booking_type" bson:"booking_type" validate:"required,oneof=RESERVATION BLOCK"`
	CreatedAt  time.Time   `json:"created_at,omitempty" bson:"created_at" validate:"omitempty"`
}

// NewBooking builds an ACTIVE booking from a create command. A guest-attributed
// booking is a reservation; a guestless one is an owner block.
func NewBooking(req *CreateBookingRequest) *Booking {
	bookingType := TypeBlock
	if req.GuestID != nil {
		bookingType = TypeReservation
	}
	return &Booking{
		PropertyID: req.PropertyID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		GuestID:    req.GuestID,
		Status:     StatusActive,
		Type:       bookingType,
	}
}

func (b *Booking) IsBlock() bool {
	return b.Type == TypeBlock
}

// Dates materializes one BookingDate per calendar day in [StartDate, EndDate].
func (b *Booking) Dates() []*BookingDate {
	dates := make([]*BookingDate, 0, b.StartDate.DaysUntil(b.EndDate))
	for d := b.StartDate; !d.Time.After(b.EndDate.Time); d = d.AddDays(1) {
		dates = append(dates, &BookingDate{
			BookingID:  b.ID,
			PropertyID: b.PropertyID,
			Date:       d,
			Type:       b.Type,
		})
	}
	return dates
}

func (b *Booking) Summary() *BookingSummary {
	return &BookingSummary{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		GuestID:    b.GuestID,
		Status:     b.Status,
	}
}

// CreateBookingRequest is the inbound create command.
type CreateBookingRequest struct {
	PropertyID int64  `json:"property_id" validate:"required,gt=0"`
	StartDate  Date   `json:"start_date" validate:"required"`
	EndDate    Date   `json:"end_date" validate:"required"`
	GuestID    *int64 `json:"guest_id,omitempty" validate:"omitempty,gt=0"`
}

// BookingSummary is the outbound projection of a booking.
type BookingSummary struct {
	ID         string `json:"id"`
	PropertyID int64  `json:"property_id"`
	StartDate  Date   `json:"start_date"`
	EndDate    Date   `json:"end_date"`
	GuestID    *int64 `json:"guest_id,omitempty"`
	Status     Status `json:"status"`
}
