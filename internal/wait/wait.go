// Package wait blocks until a solar event, adjusted by the configured
// offset, has passed.
package wait

import (
	"context"
	"fmt"
	"os"
	"time"

	"git.sr.ht/~spc/go-log"
	"github.com/briandowns/spinner"
	"golang.org/x/term"

	"github.com/suncron/suncron/internal/astro"
	"github.com/suncron/suncron/internal/conf"
	"github.com/suncron/suncron/internal/l10n"
)

// Run computes the wait target for the resolved configuration and
// blocks until it passes. The deferred offset and event are consulted
// here, before any solar computation, so a malformed flag value fails
// the run immediately instead of after a long sleep.
func Run(ctx context.Context, config conf.Config) error {
	offset, err := config.Offset.Get()
	if err != nil {
		return err
	}
	event, err := config.Event.Get()
	if err != nil {
		return err
	}

	times := astro.Compute(config.Coordinates, config.Date)
	at := times.Event(event)
	if !at.Occurs {
		return fmt.Errorf(l10n.T("%s does not occur at %s on %s"),
			event, config.Coordinates, config.Date.Format("2006-01-02"))
	}

	return Until(ctx, at.Time.Add(offset))
}

// Until blocks until target, with spinner feedback when stdout is a
// terminal. A target already in the past is an error rather than a
// zero-length wait, so misconfigured cron entries fail loudly.
func Until(ctx context.Context, target time.Time) error {
	remaining := time.Until(target)
	if remaining < 0 {
		return fmt.Errorf(l10n.T("%s is already in the past"), target.Format(time.RFC3339))
	}
	log.Debugf("waiting %s until %s", remaining.Round(time.Second), target.Format(time.RFC3339))

	if term.IsTerminal(int(os.Stdout.Fd())) {
		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " " + l10n.T("waiting until %s", target.Format("15:04:05"))
		s.Start()
		defer s.Stop()
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
