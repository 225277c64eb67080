package gpxutils

import (
	"context"
	"errors"
	"fmt"

	"gps-track-tools/gpstools/track"

	"github.com/rs/zerolog"
	"github.com/tkrajina/gpxgo/gpx"
)

// ErrTrackNotFound is returned when the requested track isn't part of the GPX document
var ErrTrackNotFound = errors.New("track not found in gpx")

// ParseFile reads the GPX file at path and returns the points of the track at trackIndex
func ParseFile(ctx context.Context, path string, trackIndex int) ([]track.Trackpoint, error) {
	g, err := gpx.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gpx file '%s': %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("file", path).Int("tracks", len(g.Tracks)).Msg("gpx file parsed")

	return Trackpoints(ctx, g, trackIndex)
}

// ParseBytes parses a GPX document and returns the points of the track at trackIndex
func ParseBytes(ctx context.Context, data []byte, trackIndex int) ([]track.Trackpoint, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gpx: %w", err)
	}

	return Trackpoints(ctx, g, trackIndex)
}

// Trackpoints flattens the segments of one GPX track into an ordered list of track points.
// Points without elevation get a 0 altitude, points without time a 0 timestamp.
func Trackpoints(ctx context.Context, g *gpx.GPX, trackIndex int) ([]track.Trackpoint, error) {
	if trackIndex < 0 || trackIndex >= len(g.Tracks) {
		return nil, fmt.Errorf("%w: index %d, %d track(s) available", ErrTrackNotFound, trackIndex, len(g.Tracks))
	}

	t := g.Tracks[trackIndex]
	pts := []track.Trackpoint{}
	for _, s := range t.Segments {
		for _, p := range s.Points {
			pts = append(pts, toTrackpoint(p))
		}
	}

	zerolog.Ctx(ctx).Debug().
		Str("track", t.Name).
		Int("segments", len(t.Segments)).
		Int("points", len(pts)).
		Msg("track points extracted")

	return pts, nil
}

func toTrackpoint(p gpx.GPXPoint) track.Trackpoint {
	var elevation float64
	if p.Elevation.NotNull() {
		elevation = p.Elevation.Value()
	}

	var ts int64
	if !p.Timestamp.IsZero() {
		ts = p.Timestamp.Unix()
	}

	return track.Trackpoint{
		Waypoint:  track.NewWaypoint(p.Latitude, p.Longitude, elevation),
		Timestamp: ts,
	}
}
