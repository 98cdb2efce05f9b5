package conf

import (
	"fmt"
	"time"

	"git.sr.ht/~spc/go-log"

	"github.com/suncron/suncron/internal/astro"
	"github.com/suncron/suncron/internal/geo"
	"github.com/suncron/suncron/internal/parse"
)

// Built-in defaults: the Royal Observatory at Greenwich.
const (
	defaultLatitude  = "51.4769N"
	defaultLongitude = "0.0005W"
)

const (
	// DefaultDateFormat is the strftime specification used for
	// --date when --date-format is not given.
	DefaultDateFormat = "%Y-%m-%d"
	// DefaultOffset is the wait subcommand's offset when --offset is
	// not given.
	DefaultOffset = "00:00:00"
)

// Action selects what the process does once configuration is resolved.
type Action int

const (
	// ActionNone is the zero value; Resolve always replaces it with
	// the chosen subcommand.
	ActionNone Action = iota
	// ActionReport prints the solar event times and exits.
	ActionReport
	// ActionWait blocks until the chosen event, plus offset, passes.
	ActionWait
)

// Config is the fully-resolved runtime configuration. It is handed to
// the solar calculator and the waiting mechanism and never mutated
// after Resolve returns it.
type Config struct {
	Coordinates geo.Coordinates
	// Date is anchored at 12:00:00 and carries a fixed UTC offset, so
	// consumers never consult the system zone again.
	Date   time.Time
	Action Action

	// Offset and Event hold the wait subcommand's deferred parse
	// results. They are only meaningful when Action is ActionWait.
	Offset Deferred[time.Duration]
	Event  Deferred[astro.Event]
}

// CLIArgs is the command-line layer as collected by the argument
// parser. String fields are raw, unvalidated user input; empty means
// the flag was not supplied. The collector guarantees that Latitude
// and Longitude are either both set or both empty.
type CLIArgs struct {
	Latitude   string
	Longitude  string
	Date       string
	DateFormat string
	TimeZone   string

	Action Action
	Offset string
	Event  string
}

// Resolve builds the runtime configuration by layering, in order:
// built-in defaults, the optional persisted configuration file, and
// the command line. Later layers win, field by field. Any parse or
// validation failure aborts resolution, with one exception: the wait
// subcommand's offset and event are stored as deferred results so that
// a run which never uses them is not penalized by a malformed value.
func Resolve(now time.Time, source Source, args CLIArgs) (Config, error) {
	config, err := defaults(now)
	if err != nil {
		return Config{}, err
	}

	layer, err := source.Load()
	if err != nil {
		return Config{}, err
	}
	config, err = config.mergeFile(layer)
	if err != nil {
		return Config{}, err
	}

	return config.mergeCLI(now, args)
}

func defaults(now time.Time) (Config, error) {
	coordinates, err := geo.ParseCoordinates(defaultLatitude, defaultLongitude)
	if err != nil {
		return Config{}, err
	}
	date, err := parse.ResolveDate(now, "", "", "")
	if err != nil {
		return Config{}, err
	}
	return Config{Coordinates: coordinates, Date: date}, nil
}

// mergeFile applies the file layer. Coordinates are replaced wholesale
// when the file carries both halves; a lone value is ignored so the
// file never partially overrides the pair.
func (c Config) mergeFile(layer fileConfig) (Config, error) {
	if layer.Latitude == nil || layer.Longitude == nil {
		return c, nil
	}
	coordinates, err := geo.ParseCoordinates(*layer.Latitude, *layer.Longitude)
	if err != nil {
		return Config{}, fmt.Errorf("configuration file: %w", err)
	}
	log.Debugf("coordinates set from configuration file: %v", coordinates)
	c.Coordinates = coordinates
	return c, nil
}

// mergeCLI applies the command-line layer and records the subcommand.
func (c Config) mergeCLI(now time.Time, args CLIArgs) (Config, error) {
	if args.Latitude != "" && args.Longitude != "" {
		coordinates, err := geo.ParseCoordinates(args.Latitude, args.Longitude)
		if err != nil {
			return Config{}, err
		}
		log.Debugf("coordinates set from command line: %v", coordinates)
		c.Coordinates = coordinates
	}

	if args.Date != "" {
		format := args.DateFormat
		if format == "" {
			format = DefaultDateFormat
		}
		date, err := parse.ResolveDate(now, args.Date, format, args.TimeZone)
		if err != nil {
			return Config{}, err
		}
		c.Date = date
	}

	c.Action = args.Action
	if args.Action == ActionWait {
		offset := args.Offset
		if offset == "" {
			offset = DefaultOffset
		}
		c.Offset = DeferredOf(parse.ParseOffset(offset))
		c.Event = DeferredOf(astro.ParseEvent(args.Event))
	}

	return c, nil
}
