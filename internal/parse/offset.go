// Package parse converts the textual time values accepted on the
// command line: clock-style offsets and formatted dates with optional
// time-zone overrides.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InvalidOffsetError describes a malformed clock-style offset string.
type InvalidOffsetError struct {
	Value  string
	Reason string
}

func (e *InvalidOffsetError) Error() string {
	return fmt.Sprintf("invalid offset %q: %s", e.Value, e.Reason)
}

// ParseOffset parses a signed clock-style duration of the form
// [-]HH:MM[:SS]. The optional leading sign applies to the whole
// duration, not to individual fields; omitted seconds mean zero.
func ParseOffset(value string) (time.Duration, error) {
	s := value
	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, &InvalidOffsetError{value, "expected HH:MM or HH:MM:SS"}
	}

	fields := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, &InvalidOffsetError{value, fmt.Sprintf("%q is not a valid field", part)}
		}
		fields[i] = n
	}
	if fields[0] > 23 {
		return 0, &InvalidOffsetError{value, "hours must be below 24"}
	}
	if fields[1] > 59 || fields[2] > 59 {
		return 0, &InvalidOffsetError{value, "minutes and seconds must be below 60"}
	}

	duration := time.Duration(fields[0])*time.Hour +
		time.Duration(fields[1])*time.Minute +
		time.Duration(fields[2])*time.Second
	if negative {
		duration = -duration
	}
	return duration, nil
}
