package errors

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{
			name:       "not found",
			err:        NotFound("Booking"),
			wantCode:   CodeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "not found with id",
			err:        NotFoundWithID("Booking", "665f1f77bcf86cd799439011"),
			wantCode:   CodeNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "validation",
			err:        Validation("Booking validation failed", nil),
			wantCode:   CodeValidation,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "invalid input",
			err:        InvalidInput("Invalid booking ID format"),
			wantCode:   CodeInvalidInput,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "conflict",
			err:        Conflict("range occupied"),
			wantCode:   CodeConflict,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "not deletable",
			err:        NotDeletable("665f1f77bcf86cd799439011"),
			wantCode:   CodeNotDeletable,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "internal",
			err:        Internal("something broke", errors.New("cause")),
			wantCode:   CodeInternal,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "timeout",
			err:        Timeout("request timed out"),
			wantCode:   CodeTimeout,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "unavailable",
			err:        Unavailable("MongoDB"),
			wantCode:   CodeUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, tt.err.Code)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, tt.err.StatusCode())
			}
		})
	}
}

func TestNotDeletableDetails(t *testing.T) {
	err := NotDeletable("665f1f77bcf86cd799439011")

	if err.Details["id"] != "665f1f77bcf86cd799439011" {
		t.Errorf("expected id in details, got %v", err.Details)
	}
	if !strings.Contains(err.Message, "665f1f77bcf86cd799439011") {
		t.Errorf("expected id in message, got %q", err.Message)
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to check booking dates", cause)

	msg := err.Error()
	if !strings.Contains(msg, CodeInternal) {
		t.Errorf("expected code in message, got %q", msg)
	}
	if !strings.Contains(msg, "connection refused") {
		t.Errorf("expected cause in message, got %q", msg)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(cause, CodeInternal, "wrapped", http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestStatusCodeDefaultsTo500(t *testing.T) {
	err := &AppError{Code: CodeInternal, Message: "no status set"}

	if err.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected 500 default, got %d", err.StatusCode())
	}
}

func TestAsAppError(t *testing.T) {
	appErr := Conflict("occupied")
	if got := AsAppError(appErr); got != appErr {
		t.Error("expected same AppError back")
	}

	plain := errors.New("plain")
	converted := AsAppError(plain)
	if converted.Code != CodeInternal {
		t.Errorf("expected %s for unknown error, got %s", CodeInternal, converted.Code)
	}
	if !errors.Is(converted, plain) {
		t.Error("expected original error preserved as cause")
	}
}

func TestIsAppError(t *testing.T) {
	if !IsAppError(Conflict("occupied")) {
		t.Error("expected AppError to be detected")
	}
	if IsAppError(errors.New("plain")) {
		t.Error("expected plain error not to be detected")
	}
}
