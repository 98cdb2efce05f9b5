package parse

import (
	"errors"
	"testing"
	"time"
)

func TestResolveDate(t *testing.T) {
	// A fake "local" clock one hour east of UTC.
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.FixedZone("+01:00", 3600))

	tests := []struct {
		name     string
		date     string
		format   string
		timeZone string
		expected string
	}{
		{
			name:     "default is today at local noon",
			expected: "2024-03-01T12:00:00+01:00",
		},
		{
			name:     "explicit date keeps local offset",
			date:     "2024-06-21",
			format:   "%Y-%m-%d",
			expected: "2024-06-21T12:00:00+01:00",
		},
		{
			name:     "explicit time zone overrides local",
			date:     "2024-06-21",
			format:   "%Y-%m-%d",
			timeZone: "+02:00",
			expected: "2024-06-21T12:00:00+02:00",
		},
		{
			name:     "negative time zone",
			date:     "2024-12-24",
			format:   "%Y-%m-%d",
			timeZone: "-05:30",
			expected: "2024-12-24T12:00:00-05:30",
		},
		{
			name:     "custom format",
			date:     "21/06/2024",
			format:   "%d/%m/%Y",
			expected: "2024-06-21T12:00:00+01:00",
		},
		{
			name:     "time zone applies to the default date too",
			timeZone: "+10:00",
			expected: "2024-03-01T12:00:00+10:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ResolveDate(now, tt.date, tt.format, tt.timeZone)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := result.Format(time.RFC3339); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestResolveDateErrors(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     string
		format   string
		timeZone string
	}{
		{name: "date does not match format", date: "21-06-2024", format: "%Y-%m-%d"},
		{name: "nonsense date", date: "midsummer", format: "%Y-%m-%d"},
		{name: "time zone without sign", date: "2024-06-21", format: "%Y-%m-%d", timeZone: "02:00"},
		{name: "time zone without colon", date: "2024-06-21", format: "%Y-%m-%d", timeZone: "+0200"},
		{name: "time zone out of range", date: "2024-06-21", format: "%Y-%m-%d", timeZone: "+25:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveDate(now, tt.date, tt.format, tt.timeZone)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			var dateErr *InvalidDateError
			if !errors.As(err, &dateErr) {
				t.Fatalf("expected InvalidDateError, got %T", err)
			}
		})
	}
}
