package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staybook/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
}

func TestClientRateLimiterAllow(t *testing.T) {
	limiter := NewClientRateLimiter(3, time.Minute, ClientIPExtractor, testLogger())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("expected request %d within limit to be allowed", i+1)
		}
	}

	if limiter.Allow("10.0.0.1") {
		t.Error("expected request over limit to be rejected")
	}

	if !limiter.Allow("10.0.0.2") {
		t.Error("expected a different client to have its own budget")
	}
}

func TestClientRateLimiterWindowSlides(t *testing.T) {
	limiter := NewClientRateLimiter(1, 20*time.Millisecond, ClientIPExtractor, testLogger())
	defer limiter.Stop()

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("expected first request allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("expected second request rejected inside the window")
	}

	time.Sleep(30 * time.Millisecond)

	if !limiter.Allow("10.0.0.1") {
		t.Error("expected request allowed after the window slid past")
	}
}

func TestClientRateLimitMiddleware(t *testing.T) {
	limiter := NewClientRateLimiter(1, time.Minute, ClientIPExtractor, testLogger())
	defer limiter.Stop()

	handler := ClientRateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.RemoteAddr = "10.0.0.1:54321"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 for second request, got %d", second.Code)
	}
}

func TestClientIPExtractor(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "10.0.0.1:54321",
			want:       "10.0.0.1",
		},
		{
			name:       "forwarded header wins",
			remoteAddr: "10.0.0.1:54321",
			forwarded:  "203.0.113.9",
			want:       "203.0.113.9",
		},
		{
			name:       "first forwarded hop",
			remoteAddr: "10.0.0.1:54321",
			forwarded:  "203.0.113.9, 198.51.100.2",
			want:       "203.0.113.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			if got := ClientIPExtractor(req); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
