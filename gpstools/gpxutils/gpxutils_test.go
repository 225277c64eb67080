package gpxutils_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"gps-track-tools/gpstools/gpxutils"
	"gps-track-tools/gpstools/track"

	"github.com/stretchr/testify/require"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="gps-track-tools" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Morning ride</name>
    <trkseg>
      <trkpt lat="40.7128" lon="-74.0060"><ele>10</ele><time>2009-11-10T14:20:00Z</time></trkpt>
      <trkpt lat="19.0760" lon="72.8777"><ele>30</ele><time>2009-11-10T14:21:00Z</time></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="-19.0760" lon="72.8777"><time>2009-11-10T14:22:00Z</time></trkpt>
    </trkseg>
  </trk>
  <trk>
    <name>Evening walk</name>
    <trkseg>
      <trkpt lat="51.5074" lon="-0.1278"><ele>15</ele></trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestParseBytes(t *testing.T) {
	require := require.New(t)

	pts, err := gpxutils.ParseBytes(context.Background(), []byte(sampleGPX), 0)

	require.NoError(err)
	require.Len(pts, 3)
	require.Equal(track.NewWaypoint(40.7128, -74.0060, 10), pts[0].Waypoint)
	require.Equal(int64(1257862800), pts[0].Timestamp)
	require.Equal(track.NewWaypoint(19.0760, 72.8777, 30), pts[1].Waypoint)
	require.Equal(track.NewWaypoint(-19.0760, 72.8777, 0), pts[2].Waypoint)
	require.Equal(int64(1257862920), pts[2].Timestamp)

	wp, err := track.New(pts).MostEquatorialWaypoint()
	require.NoError(err)
	require.Equal(19.0760, wp.Latitude())
}

func TestParseBytesTrackIndex(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		index int
		want  int
		err   error
	}{
		"first":    {index: 0, want: 3},
		"second":   {index: 1, want: 1},
		"too_far":  {index: 2, err: gpxutils.ErrTrackNotFound},
		"negative": {index: -1, err: gpxutils.ErrTrackNotFound},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			pts, err := gpxutils.ParseBytes(context.Background(), []byte(sampleGPX), tc.index)
			if tc.err != nil {
				require.ErrorIs(err, tc.err)
				return
			}
			require.NoError(err)
			require.Len(pts, tc.want)
		})
	}
}

func TestParseBytesMissingTime(t *testing.T) {
	require := require.New(t)

	pts, err := gpxutils.ParseBytes(context.Background(), []byte(sampleGPX), 1)

	require.NoError(err)
	require.Equal(int64(0), pts[0].Timestamp)
}

func TestParseBytesInvalid(t *testing.T) {
	require := require.New(t)

	_, err := gpxutils.ParseBytes(context.Background(), []byte("not a gpx"), 0)

	require.Error(err)
}

func TestParseFile(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "ride.gpx")
	require.NoError(os.WriteFile(path, []byte(sampleGPX), 0644))

	pts, err := gpxutils.ParseFile(context.Background(), path, 0)
	require.NoError(err)
	require.Len(pts, 3)

	_, err = gpxutils.ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.gpx"), 0)
	require.Error(err)
}
