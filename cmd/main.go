package main

import (
	"context"
	"flag"
	"os"

	"gps-track-tools/gpstools/config"
	"gps-track-tools/gpstools/terminal"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to a yaml configuration file")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&equatorCmd{}, "")
	subcommands.Register(&infoCmd{}, "")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		terminal.Error(os.Stderr, err, "Failed to load config")
		os.Exit(int(subcommands.ExitFailure))
	}

	logger := newLogger(cfg.LogLevel)
	ctx := logger.WithContext(context.Background())

	os.Exit(int(subcommands.Execute(ctx, cfg)))
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Str("service", "gpstools").
		Logger()
}
