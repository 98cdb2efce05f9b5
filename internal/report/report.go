// Package report renders the solar event times for a resolved
// configuration in a human-readable form.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/suncron/suncron/internal/astro"
	"github.com/suncron/suncron/internal/conf"
	"github.com/suncron/suncron/internal/l10n"
)

// Write renders the report for the resolved configuration.
func Write(w io.Writer, config conf.Config) error {
	times := astro.Compute(config.Coordinates, config.Date)

	fmt.Fprintln(w, l10n.T("LOCATION"))
	fmt.Fprintln(w, "--------")
	fmt.Fprintf(w, l10n.T("Latitude:")+" %.4f\n", config.Coordinates.Latitude)
	fmt.Fprintf(w, l10n.T("Longitude:")+" %.4f\n", config.Coordinates.Longitude)
	fmt.Fprintln(w)
	fmt.Fprintln(w, l10n.T("DATE"))
	fmt.Fprintln(w, "----")
	fmt.Fprintln(w, config.Date.Format("2006-01-02 15:04:05 -07:00"))
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, l10n.T("Solar noon is at:")+"\t%s\n", clock(times.SolarNoon))
	if length, ok := times.DayLength(); ok {
		fmt.Fprintf(tw, l10n.T("The day length is:")+"\t%s\n", clockDuration(length))
	} else {
		fmt.Fprintf(tw, l10n.T("The day length is:")+"\t%s\n", l10n.T("undefined"))
	}
	fmt.Fprintln(tw)

	rows := []struct {
		label string
		event astro.Event
	}{
		{l10n.T("Sunrise is at:"), astro.Sunrise},
		{l10n.T("Sunset is at:"), astro.Sunset},
		{l10n.T("Civil dawn is at:"), astro.CivilDawn},
		{l10n.T("Civil dusk is at:"), astro.CivilDusk},
		{l10n.T("Nautical dawn is at:"), astro.NauticalDawn},
		{l10n.T("Nautical dusk is at:"), astro.NauticalDusk},
		{l10n.T("Astronomical dawn is at:"), astro.AstronomicalDawn},
		{l10n.T("Astronomical dusk is at:"), astro.AstronomicalDusk},
	}
	for _, row := range rows {
		et := times.Event(row.event)
		if et.Occurs {
			fmt.Fprintf(tw, "%s\t%s\n", row.label, clock(et.Time))
		} else {
			fmt.Fprintf(tw, "%s\t%s\n", row.label, l10n.T("Never"))
		}
	}

	return tw.Flush()
}

func clock(t time.Time) string {
	return t.Format("15:04:05")
}

func clockDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
