package wait

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/suncron/suncron/internal/astro"
	"github.com/suncron/suncron/internal/conf"
	"github.com/suncron/suncron/internal/geo"
	"github.com/suncron/suncron/internal/parse"
)

func TestUntil(t *testing.T) {
	t.Run("past target is an error", func(t *testing.T) {
		err := Until(context.Background(), time.Now().Add(-time.Minute))
		if err == nil {
			t.Fatal("expected error but got none")
		}
		if !strings.Contains(err.Error(), "past") {
			t.Errorf("expected a past-target error, got %v", err)
		}
	})

	t.Run("near target returns", func(t *testing.T) {
		if err := Until(context.Background(), time.Now().Add(20*time.Millisecond)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancellation interrupts", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()
		err := Until(ctx, time.Now().Add(time.Hour))
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

func TestRunSurfacesDeferredFailures(t *testing.T) {
	config := conf.Config{
		Coordinates: geo.Coordinates{Latitude: 51.4769, Longitude: -0.0005},
		Date:        time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC),
		Action:      conf.ActionWait,
		Offset:      conf.DeferredOf(parse.ParseOffset("25:99")),
		Event:       conf.DeferredOf(astro.ParseEvent("sunrise")),
	}

	err := Run(context.Background(), config)
	var offsetErr *parse.InvalidOffsetError
	if !errors.As(err, &offsetErr) {
		t.Fatalf("expected the deferred offset failure to surface, got %v", err)
	}
}

func TestRunRejectsAbsentEvent(t *testing.T) {
	config := conf.Config{
		Coordinates: geo.Coordinates{Latitude: 78.22, Longitude: 15.64},
		Date:        time.Date(2024, 12, 21, 12, 0, 0, 0, time.UTC),
		Action:      conf.ActionWait,
		Offset:      conf.DeferredOf(parse.ParseOffset("00:00:00")),
		Event:       conf.DeferredOf(astro.ParseEvent("sunrise")),
	}

	err := Run(context.Background(), config)
	if err == nil {
		t.Fatal("expected error for an event that does not occur")
	}
	if !strings.Contains(err.Error(), "does not occur") {
		t.Errorf("expected a does-not-occur error, got %v", err)
	}
}
