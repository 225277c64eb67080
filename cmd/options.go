package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gps-track-tools/gpstools/config"
)

// trackUnset is the -track default, any other negative index is rejected
const trackUnset = -1

// outputFlags are the flags shared by commands rendering a report
type outputFlags struct {
	format     string
	units      string
	trackIndex int
}

func (o *outputFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&o.format, "format", "", "output format (text, json, csv)")
	f.StringVar(&o.units, "units", "", "units (metric, imperial)")
	f.IntVar(&o.trackIndex, "track", trackUnset, "index of the gpx track to read")
}

// resolve overrides the configuration with the flags given on the command line
func (o *outputFlags) resolve(cfg *config.Config) (*config.Config, error) {
	c := *cfg
	if o.format != "" {
		c.Format = o.format
	}
	if o.units != "" {
		c.Units = o.units
	}
	if o.trackIndex != trackUnset {
		c.TrackIndex = o.trackIndex
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// openOutput returns stdout, or the file at path when given
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file '%s': %w", path, err)
	}

	return f, nil
}

// writeReport renders to w then closes it. A failed close is reported as the
// output may not be flushed.
func writeReport(w io.WriteCloser, render func(io.Writer) error) error {
	err := render(w)
	if cerr := w.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("could not close output: %w", cerr)
	}
	return err
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
