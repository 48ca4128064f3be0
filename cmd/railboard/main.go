// Package main provides the railboard command line tool for looking up
// live departure boards from a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/railboard/railboard/pkg/nationalrail"
	"github.com/railboard/railboard/pkg/nationalrail/ldbws"
)

var Version = "dev"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger().
		Level(zerolog.WarnLevel)

	app := &cli.App{
		Name:        "railboard",
		Usage:       "live GB National Rail departure boards",
		Version:     Version,
		Description: "Queries the National Rail live departure boards service. Requires NRE_LDBWS_WSDL and NRE_LDBWS_API_KEY to be set.",

		Commands: []*cli.Command{
			boardCommand(logger),
			serviceCommand(logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "railboard:", err)
		os.Exit(1)
	}
}

func boardCommand(logger zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "board",
		Usage:     "show the departure board for a station",
		ArgsUsage: "<CRS>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rows", Aliases: []string{"n"}, Value: nationalrail.DefaultRows, Usage: "number of services to show"},
			&cli.BoolFlag{Name: "arrivals", Usage: "include arriving services"},
			&cli.BoolFlag{Name: "no-departures", Usage: "exclude departing services"},
			&cli.StringFlag{Name: "to", Usage: "only services calling at this CRS later"},
			&cli.StringFlag{Name: "from", Usage: "only services that called at this CRS earlier"},
			&cli.IntFlag{Name: "time-offset", Usage: "window start in minutes relative to now"},
			&cli.IntFlag{Name: "time-window", Usage: "window length in minutes"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: railboard board <CRS>", 2)
			}

			session, err := ldbws.New(ldbws.Config{Logger: logger})
			if err != nil {
				return err
			}

			req := nationalrail.NewBoardRequest(strings.ToUpper(c.Args().First()))
			req.Rows = c.Int("rows")
			req.Arrivals = c.Bool("arrivals")
			req.Departures = !c.Bool("no-departures")
			req.ToFilterCRS = strings.ToUpper(c.String("to"))
			req.FromFilterCRS = strings.ToUpper(c.String("from"))
			if c.IsSet("time-offset") {
				offset := c.Int("time-offset")
				req.TimeOffset = &offset
			}
			if c.IsSet("time-window") {
				window := c.Int("time-window")
				req.TimeWindow = &window
			}

			ctx, cancel := context.WithTimeout(c.Context, 30*time.Second)
			defer cancel()

			board, err := session.StationBoard(ctx, req)
			if err != nil {
				return err
			}

			printBoard(c.App.Writer, board)
			return nil
		},
	}
}

func serviceCommand(logger zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "service",
		Usage:     "show the calling points of a single service",
		ArgsUsage: "<serviceID>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: railboard service <serviceID>", 2)
			}

			session, err := ldbws.New(ldbws.Config{Logger: logger})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(c.Context, 30*time.Second)
			defer cancel()

			details, err := session.ServiceDetails(ctx, c.Args().First())
			if err != nil {
				return err
			}

			printServiceDetails(c.App.Writer, details)
			return nil
		},
	}
}

func printBoard(out io.Writer, board *nationalrail.Board) {
	fmt.Fprintf(out, "%s (%s)", board.StationName, board.CRS)
	if board.FilterCRS != "" {
		fmt.Fprintf(out, " %s %s (%s)", board.FilterDirection, board.FilterStationName, board.FilterCRS)
	}
	fmt.Fprintf(out, " at %s\n\n", board.GeneratedAt.Format("15:04"))

	if !board.ServicesAvailable {
		fmt.Fprintln(out, "No service information is available for this station.")
		return
	}

	w := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
	if board.PlatformAvailable {
		fmt.Fprintln(w, "TIME\tDESTINATION\tPLAT\tEXPECTED\tOPERATOR")
		for _, svc := range board.Services() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				displayTime(svc), destinationLine(svc), svc.Platform, expected(svc), svc.Operator)
		}
	} else {
		fmt.Fprintln(w, "TIME\tDESTINATION\tEXPECTED\tOPERATOR")
		for _, svc := range board.Services() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				displayTime(svc), destinationLine(svc), expected(svc), svc.Operator)
		}
	}
	w.Flush()

	for _, msg := range board.Messages {
		fmt.Fprintf(out, "\n%s\n", msg)
	}
}

func printServiceDetails(out io.Writer, d *nationalrail.ServiceDetails) {
	fmt.Fprintf(out, "%s service at %s (%s), operated by %s\n",
		d.Type, d.StationName, d.CRS, d.Operator)
	if d.Cancelled {
		fmt.Fprintln(out, "CANCELLED")
		if d.CancelReason != "" {
			fmt.Fprintln(out, d.CancelReason)
		}
	}

	for _, leg := range d.PreviousCallingPoints {
		fmt.Fprintln(out, "\nCalled at:")
		printCallingPoints(out, leg)
	}
	for _, leg := range d.SubsequentCallingPoints {
		fmt.Fprintln(out, "\nCalls at:")
		printCallingPoints(out, leg)
	}
}

func printCallingPoints(out io.Writer, points []nationalrail.CallingPoint) {
	w := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
	for _, cp := range points {
		status := cp.Estimated
		if cp.Actual != "" {
			status = cp.Actual
		}
		if cp.Cancelled {
			status = "Cancelled"
		}
		fmt.Fprintf(w, "  %s\t%s (%s)\t%s\n", cp.Scheduled, cp.Name, cp.CRS, status)
	}
	w.Flush()
}

// displayTime picks the scheduled time a board row is sorted by,
// departure when present, arrival otherwise.
func displayTime(svc nationalrail.Service) string {
	if svc.ScheduledDeparture != "" {
		return svc.ScheduledDeparture
	}
	return svc.ScheduledArrival
}

func expected(svc nationalrail.Service) string {
	if svc.Cancelled {
		return "Cancelled"
	}
	if svc.EstimatedDeparture != "" {
		return svc.EstimatedDeparture
	}
	return svc.EstimatedArrival
}

func destinationLine(svc nationalrail.Service) string {
	dest := svc.Destination()
	if len(svc.Destinations) > 0 && svc.Destinations[0].Via != "" {
		dest += " " + svc.Destinations[0].Via
	}
	return dest
}
