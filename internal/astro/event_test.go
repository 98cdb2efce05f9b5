package astro

import (
	"errors"
	"testing"
)

func TestParseEvent(t *testing.T) {
	expected := []string{
		"sunrise",
		"sunset",
		"civil_dawn",
		"civil_dusk",
		"nautical_dawn",
		"nautical_dusk",
		"astronomical_dawn",
		"astronomical_dusk",
	}

	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			event, err := ParseEvent(name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if event.String() != name {
				t.Errorf("expected %q to round-trip, got %q", name, event.String())
			}
		})
	}

	if len(EventNames()) != len(expected) {
		t.Errorf("expected exactly %d event names, got %d", len(expected), len(EventNames()))
	}
}

func TestParseEventRejects(t *testing.T) {
	values := []string{
		"",
		"Sunrise",
		"SUNSET",
		"civil dawn",
		"civildawn",
		"dawn",
		"noon",
	}

	for _, value := range values {
		t.Run(value, func(t *testing.T) {
			_, err := ParseEvent(value)
			if err == nil {
				t.Fatal("expected error but got none")
			}
			var eventErr *InvalidEventError
			if !errors.As(err, &eventErr) {
				t.Fatalf("expected InvalidEventError, got %T", err)
			}
			if eventErr.Value != value {
				t.Errorf("error should carry the offending value, got %q", eventErr.Value)
			}
		})
	}
}
