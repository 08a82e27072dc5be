package model

import (
	"testing"
	"time"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestNewBooking(t *testing.T) {
	tests := []struct {
		name     string
		req      *CreateBookingRequest
		wantType BookingType
	}{
		{
			name: "guest attributed booking is a reservation",
			req: &CreateBookingRequest{
				PropertyID: 42,
				StartDate:  NewDate(2025, time.June, 1),
				EndDate:    NewDate(2025, time.June, 5),
				GuestID:    int64Ptr(7),
			},
			wantType: TypeReservation,
		},
		{
			name: "guestless booking is a block",
			req: &CreateBookingRequest{
				PropertyID: 42,
				StartDate:  NewDate(2025, time.June, 1),
				EndDate:    NewDate(2025, time.June, 5),
			},
			wantType: TypeBlock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := NewBooking(tt.req)

			if booking.Type != tt.wantType {
				t.Errorf("expected type %s, got %s", tt.wantType, booking.Type)
			}
			if booking.Status != StatusActive {
				t.Errorf("expected status %s, got %s", StatusActive, booking.Status)
			}
			if booking.PropertyID != tt.req.PropertyID {
				t.Errorf("expected property %d, got %d", tt.req.PropertyID, booking.PropertyID)
			}
			if booking.ID != "" {
				t.Errorf("expected empty ID before persistence, got %s", booking.ID)
			}
		})
	}
}

func TestBookingIsBlock(t *testing.T) {
	block := &Booking{Type: TypeBlock}
	if !block.IsBlock() {
		t.Error("expected block booking to report IsBlock")
	}

	reservation := &Booking{Type: TypeReservation}
	if reservation.IsBlock() {
		t.Error("expected reservation booking not to report IsBlock")
	}
}

func TestBookingDates(t *testing.T) {
	tests := []struct {
		name      string
		start     Date
		end       Date
		wantCount int
	}{
		{
			name:      "single day",
			start:     NewDate(2025, time.June, 1),
			end:       NewDate(2025, time.June, 1),
			wantCount: 1,
		},
		{
			name:      "eleven day stay",
			start:     NewDate(2025, time.June, 1),
			end:       NewDate(2025, time.June, 11),
			wantCount: 11,
		},
		{
			name:      "month boundary",
			start:     NewDate(2025, time.June, 29),
			end:       NewDate(2025, time.July, 2),
			wantCount: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{
				ID:         "665f1f77bcf86cd799439011",
				PropertyID: 9,
				StartDate:  tt.start,
				EndDate:    tt.end,
				Type:       TypeReservation,
			}

			dates := booking.Dates()
			if len(dates) != tt.wantCount {
				t.Fatalf("expected %d dates, got %d", tt.wantCount, len(dates))
			}

			for i, d := range dates {
				wantDate := tt.start.AddDays(i)
				if !d.Date.Equal(wantDate.Time) {
					t.Errorf("date %d: expected %s, got %s", i, wantDate, d.Date)
				}
				if d.BookingID != booking.ID {
					t.Errorf("date %d: expected booking ID %s, got %s", i, booking.ID, d.BookingID)
				}
				if d.PropertyID != booking.PropertyID {
					t.Errorf("date %d: expected property %d, got %d", i, booking.PropertyID, d.PropertyID)
				}
				if d.Type != booking.Type {
					t.Errorf("date %d: expected type %s, got %s", i, booking.Type, d.Type)
				}
			}
		})
	}
}

func TestBookingSummary(t *testing.T) {
	booking := &Booking{
		ID:         "665f1f77bcf86cd799439011",
		PropertyID: 42,
		StartDate:  NewDate(2025, time.June, 1),
		EndDate:    NewDate(2025, time.June, 5),
		GuestID:    int64Ptr(7),
		Status:     StatusActive,
		Type:       TypeReservation,
	}

	summary := booking.Summary()

	if summary.ID != booking.ID {
		t.Errorf("expected ID %s, got %s", booking.ID, summary.ID)
	}
	if summary.PropertyID != booking.PropertyID {
		t.Errorf("expected property %d, got %d", booking.PropertyID, summary.PropertyID)
	}
	if summary.GuestID == nil || *summary.GuestID != *booking.GuestID {
		t.Error("expected guest ID to carry over to summary")
	}
	if summary.Status != StatusActive {
		t.Errorf("expected status %s, got %s", StatusActive, summary.Status)
	}
}
