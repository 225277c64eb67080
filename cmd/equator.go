package main

import (
	"context"
	"flag"
	"io"
	"os"

	"gps-track-tools/gpstools/config"
	"gps-track-tools/gpstools/gpxutils"
	"gps-track-tools/gpstools/report"
	"gps-track-tools/gpstools/terminal"
	"gps-track-tools/gpstools/track"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

type equatorCmd struct {
	outputFlags
	outputFile string
}

func (*equatorCmd) Name() string { return "equator" }
func (*equatorCmd) Synopsis() string {
	return "Find the point nearest to the equator on gpx track(s)."
}
func (*equatorCmd) Usage() string {
	return `equator [-format] [-units] [-track] [-output] <file.gpx>...
	Print the recorded point of each track that is the closest to the equator.
  `
}

func (c *equatorCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.outputFile, "output", "", "output file")
}

func (c *equatorCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg, err := c.resolve(args[0].(*config.Config))
	if err != nil {
		terminal.Error(os.Stderr, err, "Invalid options")
		return subcommands.ExitUsageError
	}

	if f.NArg() == 0 {
		terminal.Error(os.Stderr, nil, "Please provide at least one gpx file")
		return subcommands.ExitUsageError
	}

	logger := zerolog.Ctx(ctx).With().Str("command", c.Name()).Logger()
	ctx = logger.WithContext(ctx)

	status := subcommands.ExitSuccess
	rows := []report.Equator{}

	// each file is its own track, tracks are never merged
	for _, path := range f.Args() {
		o := terminal.NewOperation(os.Stderr, "Reading '%s'", path)

		pts, err := gpxutils.ParseFile(ctx, path, cfg.TrackIndex)
		if err != nil {
			o.Error(err, "Failed to read '%s'", path)
			logger.Error().Err(err).Str("file", path).Msg("failed to read gpx")
			status = subcommands.ExitFailure
			continue
		}

		t := track.New(pts)
		tp, index, err := t.MostEquatorialTrackpoint()
		if err != nil {
			o.Error(err, "No equatorial point found on '%s'", path)
			logger.Warn().Err(err).Str("file", path).Msg("empty track")
			status = subcommands.ExitFailure
			continue
		}

		o.Success("Found most equatorial point of '%s' (%d points)", path, t.Len())
		logger.Debug().Str("file", path).Int("index", index).Stringer("waypoint", tp.Waypoint).Msg("most equatorial point")

		rows = append(rows, report.Equator{Source: path, Point: tp, Index: index})
	}

	w, err := openOutput(c.outputFile)
	if err != nil {
		terminal.Error(os.Stderr, err, "Could not write report")
		return subcommands.ExitFailure
	}

	err = writeReport(w, func(w io.Writer) error {
		return report.WriteEquator(w, cfg.Format, cfg.Units, rows)
	})
	if err != nil {
		terminal.Error(os.Stderr, err, "Could not write report")
		return subcommands.ExitFailure
	}

	return status
}
