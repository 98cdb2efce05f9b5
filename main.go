package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.sr.ht/~spc/go-log"
	"github.com/urfave/cli/v2"

	"github.com/suncron/suncron/internal/conf"
	"github.com/suncron/suncron/internal/l10n"
	"github.com/suncron/suncron/internal/report"
	"github.com/suncron/suncron/internal/wait"
)

// Version is set at build time via -ldflags.
var Version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "suncron",
		Version: Version,
		Usage: l10n.T("report the times of solar events such as sunrise and sunset, " +
			"or delay execution relative to one of them"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "latitude",
				Aliases: []string{"l"},
				Usage:   l10n.T("set the latitude in decimal degrees, e.g. 51.4769N; requires --longitude"),
			},
			&cli.StringFlag{
				Name:    "longitude",
				Aliases: []string{"o"},
				Usage:   l10n.T("set the longitude in decimal degrees, e.g. 0.0005W; requires --latitude"),
			},
			&cli.StringFlag{
				Name:    "date",
				Aliases: []string{"d"},
				Usage:   l10n.T("compute solar events for this date instead of today"),
			},
			&cli.StringFlag{
				Name:    "date-format",
				Aliases: []string{"f"},
				Value:   conf.DefaultDateFormat,
				Usage:   l10n.T("strftime format used to parse --date"),
			},
			&cli.StringFlag{
				Name:    "time-zone",
				Aliases: []string{"t"},
				Usage:   l10n.T("fixed UTC offset, e.g. +02:00, overriding the system zone"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "error",
				Usage: l10n.T("set the logging level: trace, debug, info, warn, error"),
			},
		},
		Before: beforeAction,
		Commands: []*cli.Command{
			{
				Name:   "report",
				Usage:  l10n.T("print the solar event times for the configured location and date"),
				Action: reportAction,
			},
			{
				Name:  "wait",
				Usage: l10n.T("sleep until the chosen event, adjusted by the offset, has passed"),
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "offset",
						Aliases: []string{"o"},
						Value:   conf.DefaultOffset,
						Usage:   l10n.T("delay relative to the event as [-]HH:MM[:SS]; negative runs before it"),
					},
					&cli.StringFlag{
						Name:     "event",
						Aliases:  []string{"e"},
						Required: true,
						Usage:    l10n.T("the event to wait for, e.g. sunrise or civil_dusk"),
					},
				},
				Action: waitAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// beforeAction configures logging and enforces flag pairing before any
// subcommand runs.
func beforeAction(c *cli.Context) error {
	level, err := log.ParseLevel(c.String("log-level"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	log.SetLevel(level)
	log.SetFlags(log.Lshortfile)
	log.SetPrefix(fmt.Sprintf("[%v] ", level))

	if c.IsSet("latitude") != c.IsSet("longitude") {
		return fmt.Errorf(l10n.T("--latitude and --longitude must be supplied together"))
	}
	return nil
}

// resolve collects the command-line layer and runs the configuration
// pipeline.
func resolve(c *cli.Context, action conf.Action) (conf.Config, error) {
	args := conf.CLIArgs{
		Latitude:   c.String("latitude"),
		Longitude:  c.String("longitude"),
		Date:       c.String("date"),
		DateFormat: c.String("date-format"),
		TimeZone:   c.String("time-zone"),
		Action:     action,
	}
	if action == conf.ActionWait {
		args.Offset = c.String("offset")
		args.Event = c.String("event")
	}
	return conf.Resolve(time.Now(), &conf.FileSource{}, args)
}

func reportAction(c *cli.Context) error {
	config, err := resolve(c, conf.ActionReport)
	if err != nil {
		return cli.Exit(err, 1)
	}
	return report.Write(os.Stdout, config)
}

func waitAction(c *cli.Context) error {
	config, err := resolve(c, conf.ActionWait)
	if err != nil {
		return cli.Exit(err, 1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := wait.Run(ctx, config); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
