// Package astro names the solar transitions the program understands
// and computes when they occur for a location and date.
package astro

import "fmt"

// Event identifies one of the eight solar transitions that can be
// reported or waited for.
type Event int

const (
	Sunrise Event = iota
	Sunset
	CivilDawn
	CivilDusk
	NauticalDawn
	NauticalDusk
	AstronomicalDawn
	AstronomicalDusk
)

// eventNames is ordered by the Event constants above.
var eventNames = [...]string{
	"sunrise",
	"sunset",
	"civil_dawn",
	"civil_dusk",
	"nautical_dawn",
	"nautical_dusk",
	"astronomical_dawn",
	"astronomical_dusk",
}

func (e Event) String() string {
	if e < 0 || int(e) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(e))
	}
	return eventNames[e]
}

// EventNames lists the accepted event names.
func EventNames() []string {
	names := make([]string, len(eventNames))
	copy(names, eventNames[:])
	return names
}

// InvalidEventError describes a string that is not an event name.
type InvalidEventError struct {
	Value string
}

func (e *InvalidEventError) Error() string {
	return fmt.Sprintf("invalid event %q", e.Value)
}

// ParseEvent maps an event name to its Event. Matching is exact and
// case sensitive.
func ParseEvent(value string) (Event, error) {
	for i, name := range eventNames {
		if name == value {
			return Event(i), nil
		}
	}
	return 0, &InvalidEventError{value}
}
