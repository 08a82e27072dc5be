package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2025-07-14",
			want:  NewDate(2025, time.July, 14),
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  NewDate(2024, time.February, 29),
		},
		{
			name:    "wrong layout",
			input:   "14-07-2025",
			wantErr: true,
		},
		{
			name:    "datetime instead of date",
			input:   "2025-07-14T00:00:00Z",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for input %q, got none", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want.Time) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	// 23:30 in New York on July 14 is already July 15 in UTC.
	instant := time.Date(2025, time.July, 14, 23, 30, 0, 0, loc)
	got := DateOf(instant)
	want := NewDate(2025, time.July, 15)

	if !got.Equal(want.Time) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestDateAddDays(t *testing.T) {
	start := NewDate(2025, time.January, 30)

	got := start.AddDays(3)
	want := NewDate(2025, time.February, 2)
	if !got.Equal(want.Time) {
		t.Errorf("expected %s, got %s", want, got)
	}

	got = start.AddDays(0)
	if !got.Equal(start.Time) {
		t.Errorf("expected %s, got %s", start, got)
	}
}

func TestDateDaysUntil(t *testing.T) {
	tests := []struct {
		name  string
		start Date
		end   Date
		want  int
	}{
		{
			name:  "same day counts as one",
			start: NewDate(2025, time.March, 10),
			end:   NewDate(2025, time.March, 10),
			want:  1,
		},
		{
			name:  "inclusive range",
			start: NewDate(2025, time.March, 10),
			end:   NewDate(2025, time.March, 14),
			want:  5,
		},
		{
			name:  "end before start",
			start: NewDate(2025, time.March, 10),
			end:   NewDate(2025, time.March, 9),
			want:  0,
		},
		{
			name:  "across month boundary",
			start: NewDate(2025, time.January, 30),
			end:   NewDate(2025, time.February, 2),
			want:  4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.DaysUntil(tt.end); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	original := NewDate(2025, time.December, 31)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if string(data) != `"2025-12-31"` {
		t.Errorf("expected \"2025-12-31\", got %s", data)
	}

	var decoded Date
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !decoded.Equal(original.Time) {
		t.Errorf("expected %s after round trip, got %s", original, decoded)
	}
}

func TestDateUnmarshalJSONRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not a string", input: `20250714`},
		{name: "wrong format", input: `"July 14, 2025"`},
		{name: "empty", input: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := json.Unmarshal([]byte(tt.input), &d); err == nil {
				t.Errorf("expected error for input %s, got none", tt.input)
			}
		})
	}
}
