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

type infoCmd struct {
	outputFlags
	outputFile string
	margin     float64
}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "Print statistics of a gpx track." }
func (*infoCmd) Usage() string {
	return `info [-format] [-units] [-track] [-margin] [-output] <file.gpx>
	Print number of points, boundaries, duration, distance and elevation of a track.
  `
}

func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.Float64Var(&c.margin, "margin", 0, "decimal degrees added around the track boundaries")
	f.StringVar(&c.outputFile, "output", "", "output file")
}

func (c *infoCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg, err := c.resolve(args[0].(*config.Config))
	if err != nil {
		terminal.Error(os.Stderr, err, "Invalid options")
		return subcommands.ExitUsageError
	}

	if f.NArg() != 1 {
		terminal.Error(os.Stderr, nil, "Please provide exactly one gpx file")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	logger := zerolog.Ctx(ctx).With().Str("command", c.Name()).Str("file", path).Logger()
	ctx = logger.WithContext(ctx)

	pts, err := gpxutils.ParseFile(ctx, path, cfg.TrackIndex)
	if err != nil {
		terminal.Error(os.Stderr, err, "Failed to read '%s'", path)
		return subcommands.ExitFailure
	}

	t := track.New(pts)
	bounds, err := t.Bounds()
	if err != nil {
		terminal.Error(os.Stderr, err, "Track of '%s' is empty", path)
		return subcommands.ExitFailure
	}
	stats, err := t.Stats()
	if err != nil {
		terminal.Error(os.Stderr, err, "Track of '%s' is empty", path)
		return subcommands.ExitFailure
	}

	logger.Debug().Int("points", t.Len()).Dur("duration", stats.Duration).Msg("track stats computed")

	s := report.Summary{
		Source: path,
		Points: t.Len(),
		Bounds: bounds.Extend(c.margin),
		Stats:  stats,
	}

	w, err := openOutput(c.outputFile)
	if err != nil {
		terminal.Error(os.Stderr, err, "Could not write report")
		return subcommands.ExitFailure
	}

	err = writeReport(w, func(w io.Writer) error {
		return report.WriteSummary(w, cfg.Format, cfg.Units, s)
	})
	if err != nil {
		terminal.Error(os.Stderr, err, "Could not write report")
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
