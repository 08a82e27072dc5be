package service

import (
	"context"
	"errors"
	"fmt"

	bookingserrors "staybook/internal/bookings/errors"
	"staybook/internal/bookings/repository"
	"staybook/internal/bookings/validator"
	"staybook/internal/events"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

// conflictDateLayout matches the human-readable range in conflict messages.
const conflictDateLayout = "Jan 2, 2006"

// BookingService owns the booking state machine. It is the only writer of
// Booking and BookingDate state; every mutation runs the conflict check and
// the writes inside a single transaction.
type BookingService interface {
	Create(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingSummary, error)
	FindAll(ctx context.Context) ([]*model.BookingSummary, error)
	Delete(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	Rebook(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	dateRepo  repository.BookingDateRepository
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	dateRepo repository.BookingDateRepository,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		dateRepo:  dateRepo,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.BookingSummary, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	booking := model.NewBooking(req)

	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.checkDateConflicts(sessCtx, booking); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		if err := s.dateRepo.InsertMany(sessCtx, booking.Dates()); err != nil {
			return apperrors.Internal("Failed to materialize booking dates", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, err
	}

	s.publisher.BookingCreated(ctx, booking)
	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"property_id", booking.PropertyID,
		"booking_type", booking.Type,
		"start_date", booking.StartDate.String(),
		"end_date", booking.EndDate.String(),
	)
	return booking.Summary(), nil
}

func (s *bookingService) FindAll(ctx context.Context) ([]*model.BookingSummary, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	summaries := make([]*model.BookingSummary, len(bookings))
	for i, booking := range bookings {
		summaries[i] = booking.Summary()
	}
	return summaries, nil
}

// Delete permanently removes a block and its date rows. Reservations can only
// be cancelled; status is deliberately not filtered, so a cancelled block is
// still deletable.
func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	var deleted *model.Booking
	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		booking, err := s.findBooking(sessCtx, id, nil)
		if err != nil {
			return err
		}
		if !booking.IsBlock() {
			return apperrors.NotDeletable(id)
		}

		if err := s.dateRepo.DeleteByBookingID(sessCtx, id); err != nil {
			return apperrors.Internal("Failed to delete booking dates", err)
		}
		if err := s.repo.Delete(sessCtx, id); err != nil {
			return apperrors.Internal("Failed to delete booking", err)
		}

		deleted = booking
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.BookingDeleted(ctx, deleted)
	s.cfg.Log.Info("Booking deleted", "id", id)
	return nil
}

// Cancel frees the booking's dates and marks it CANCEL. The booking record
// itself survives so it can be rebooked later. Freeing dates cannot conflict,
// so no availability check is needed.
func (s *bookingService) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	var cancelled *model.Booking
	active := model.StatusActive
	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		booking, err := s.findBooking(sessCtx, id, &active)
		if err != nil {
			return err
		}

		if err := s.dateRepo.DeleteByBookingID(sessCtx, id); err != nil {
			return apperrors.Internal("Failed to release booking dates", err)
		}
		if err := s.repo.UpdateStatus(sessCtx, id, model.StatusCancel); err != nil {
			return apperrors.Internal("Failed to cancel booking", err)
		}

		booking.Status = model.StatusCancel
		cancelled = booking
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.BookingCancelled(ctx, cancelled)
	s.cfg.Log.Info("Booking cancelled", "id", id)
	return nil
}

// Rebook restores a cancelled booking to its original, unchanged range. The
// conflict rule is re-run against the current index state; on conflict the
// booking stays cancelled.
func (s *bookingService) Rebook(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	var rebooked *model.Booking
	cancel := model.StatusCancel
	err := s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		booking, err := s.findBooking(sessCtx, id, &cancel)
		if err != nil {
			return err
		}

		if err := s.checkDateConflicts(sessCtx, booking); err != nil {
			return err
		}

		if err := s.repo.UpdateStatus(sessCtx, id, model.StatusActive); err != nil {
			return apperrors.Internal("Failed to rebook booking", err)
		}
		booking.Status = model.StatusActive
		if err := s.dateRepo.InsertMany(sessCtx, booking.Dates()); err != nil {
			return apperrors.Internal("Failed to materialize booking dates", err)
		}

		rebooked = booking
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.BookingRebooked(ctx, rebooked)
	s.cfg.Log.Info("Booking rebooked", "id", id)
	return nil
}

// checkDateConflicts applies the occupancy rule: a block may never intrude on
// a reservation's days, and a reservation may not overlap anything at all.
func (s *bookingService) checkDateConflicts(ctx context.Context, booking *model.Booking) error {
	var occupied bool
	var err error

	if booking.IsBlock() {
		occupied, err = s.dateRepo.ExistsReservation(ctx, booking.PropertyID, booking.StartDate, booking.EndDate)
	} else {
		occupied, err = s.dateRepo.ExistsAny(ctx, booking.PropertyID, booking.StartDate, booking.EndDate)
	}
	if err != nil {
		return apperrors.Internal("Failed to check booking dates", err)
	}

	if occupied {
		return apperrors.Conflict(fmt.Sprintf(
			"A reservation with property ID %d between %s and %s is not available.",
			booking.PropertyID,
			booking.StartDate.Format(conflictDateLayout),
			booking.EndDate.Format(conflictDateLayout),
		))
	}

	return nil
}

func (s *bookingService) findBooking(ctx context.Context, id string, status *model.Status) (*model.Booking, error) {
	var booking *model.Booking
	var err error

	if status != nil {
		booking, err = s.repo.FindByIDAndStatus(ctx, id, *status)
	} else {
		booking, err = s.repo.FindByID(ctx, id)
	}
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}
