package validator

import (
	"errors"
	"strings"
	"testing"
	"time"

	"staybook/pkg/logger"
	"staybook/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewBookingValidator(log)
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestValidateCreate(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		req       *model.CreateBookingRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid reservation",
			req: &model.CreateBookingRequest{
				PropertyID: 42,
				StartDate:  model.NewDate(2025, time.June, 1),
				EndDate:    model.NewDate(2025, time.June, 5),
				GuestID:    int64Ptr(7),
			},
		},
		{
			name: "valid block without guest",
			req: &model.CreateBookingRequest{
				PropertyID: 42,
				StartDate:  model.NewDate(2025, time.June, 1),
				EndDate:    model.NewDate(2025, time.June, 5),
			},
		},
		{
			name: "equal start and end is a one day booking",
			req: &model.CreateBookingRequest{
				PropertyID: 42,
				StartDate:  model.NewDate(2025, time.June, 1),
				EndDate:    model.NewDate(2025, time.June, 1),
			},
		},
		{
			name: "missing property",
			req: &model.CreateBookingRequest{
				StartDate: model.NewDate(2025, time.June, 1),
				EndDate:   model.NewDate(2025, time.June, 5),
			},
			wantErr:   true,
			wantField: "PropertyID",
		},
		{
			name: "negative property",
			req: &model.CreateBookingRequest{
				PropertyID: -1,
				StartDate:  model.NewDate(2025, time.June, 1),
				EndDate:    model.NewDate(2025, time.June, 5),
			},
			wantErr:   true,
			wantField: "PropertyID",
		},
		{
			name: "missing start date",
			req: &model.CreateBookingRequest{
				PropertyID: 42,
				EndDate:    model.NewDate(2025, time.June, 5),
			},
			wantErr:   true,
			wantField: "StartDate",
		},
		{
			name: "missing end date",
			req: &model.CreateBookingRequest{
				PropertyID: 42,
				StartDate:  model.NewDate(2025, time.June, 1),
			},
			wantErr:   true,
			wantField: "EndDate",
		},
		{
			name: "end before start",
			req: &model.CreateBookingRequest{
				PropertyID: 42,
				StartDate:  model.NewDate(2025, time.June, 5),
				EndDate:    model.NewDate(2025, time.June, 1),
			},
			wantErr:   true,
			wantField: "EndDate",
		},
		{
			name: "zero guest ID",
			req: &model.CreateBookingRequest{
				PropertyID: 42,
				StartDate:  model.NewDate(2025, time.June, 1),
				EndDate:    model.NewDate(2025, time.June, 5),
				GuestID:    int64Ptr(0),
			},
			wantErr:   true,
			wantField: "GuestID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCreate(tt.req)

			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected validation error, got none")
			}

			var validationErrs ValidationErrors
			if !errors.As(err, &validationErrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}

			found := false
			for _, ve := range validationErrs {
				if ve.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an error for field %s, got %v", tt.wantField, validationErrs)
			}
		})
	}
}

func TestValidateCreateInvertedRangeMessage(t *testing.T) {
	v := newTestValidator()

	err := v.ValidateCreate(&model.CreateBookingRequest{
		PropertyID: 42,
		StartDate:  model.NewDate(2025, time.June, 5),
		EndDate:    model.NewDate(2025, time.June, 1),
	})
	if err == nil {
		t.Fatal("expected validation error, got none")
	}

	if !strings.Contains(err.Error(), "end_date must not be before start_date") {
		t.Errorf("expected inverted range message, got %q", err.Error())
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "PropertyID", Message: "PropertyID is required"},
		{Field: "EndDate", Message: "end_date must not be before start_date"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 error(s)") {
		t.Errorf("expected error count in message, got %q", msg)
	}
	if !strings.Contains(msg, "PropertyID is required") {
		t.Errorf("expected field message in output, got %q", msg)
	}

	if (ValidationErrors{}).Error() != "" {
		t.Error("expected empty message for no errors")
	}
}
