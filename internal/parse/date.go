package parse

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ncruces/go-strftime"
)

// InvalidDateError describes a date or time-zone string that could not
// be resolved into a timestamp.
type InvalidDateError struct {
	Value  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: %s", e.Value, e.Reason)
}

// ResolveDate produces a timestamp anchored at 12:00:00 carrying an
// explicit fixed UTC offset, so downstream computation never consults
// the system zone again.
//
// An empty date selects today's calendar date in now's zone. Otherwise
// date is parsed against format, a strftime-style specification such
// as %Y-%m-%d. A non-empty timeZone of the form ±HH:MM overrides the
// offset taken from now.
func ResolveDate(now time.Time, date, format, timeZone string) (time.Time, error) {
	zone, err := resolveZone(now, timeZone)
	if err != nil {
		return time.Time{}, err
	}

	if date == "" {
		year, month, day := now.Date()
		return time.Date(year, month, day, 12, 0, 0, 0, zone), nil
	}

	layout, err := strftime.Layout(format)
	if err != nil {
		return time.Time{}, &InvalidDateError{date, fmt.Sprintf("bad date format %q: %v", format, err)}
	}
	parsed, err := time.ParseInLocation(layout, date, zone)
	if err != nil {
		return time.Time{}, &InvalidDateError{date, fmt.Sprintf("does not match format %q", format)}
	}

	year, month, day := parsed.Date()
	return time.Date(year, month, day, 12, 0, 0, 0, zone), nil
}

// resolveZone returns a fixed-offset location: the parsed ±HH:MM
// override when given, otherwise now's UTC offset frozen in place.
func resolveZone(now time.Time, timeZone string) (*time.Location, error) {
	if timeZone == "" {
		_, offset := now.Zone()
		return time.FixedZone(now.Format("-07:00"), offset), nil
	}

	if len(timeZone) != 6 || (timeZone[0] != '+' && timeZone[0] != '-') || timeZone[3] != ':' {
		return nil, &InvalidDateError{timeZone, "time zone must look like +02:00 or -05:30"}
	}
	hours, errH := strconv.Atoi(timeZone[1:3])
	minutes, errM := strconv.Atoi(timeZone[4:6])
	if errH != nil || errM != nil || hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return nil, &InvalidDateError{timeZone, "time zone must look like +02:00 or -05:30"}
	}

	offset := hours*3600 + minutes*60
	if timeZone[0] == '-' {
		offset = -offset
	}
	return time.FixedZone(timeZone, offset), nil
}
