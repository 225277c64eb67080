package track_test

import (
	"testing"
	"time"

	"gps-track-tools/gpstools/track"

	"github.com/stretchr/testify/require"
)

func TestWaypointAccessors(t *testing.T) {
	require := require.New(t)

	wp := track.NewWaypoint(-34.6037, -58.3816, 25)

	require.Equal(-34.6037, wp.Latitude())
	require.Equal(-58.3816, wp.Longitude())
	require.Equal(25.0, wp.Altitude())
	require.Equal(wp.Latitude(), wp.Lat())
	require.Equal(wp.Longitude(), wp.Lng())
	require.Equal("-34.6037000,-58.3816000,25.0", wp.String())
}

func TestWaypointNotNormalized(t *testing.T) {
	require := require.New(t)

	wp := track.NewWaypoint(120, -200, -5)

	require.Equal(120.0, wp.Latitude())
	require.Equal(-200.0, wp.Longitude())
	require.Equal(-5.0, wp.Altitude())
}

func TestWaypointLatLng(t *testing.T) {
	require := require.New(t)

	ll := track.NewWaypoint(19.0760, 72.8777, 30).LatLng()

	require.InDelta(19.0760, ll.Lat.Degrees(), 1e-9)
	require.InDelta(72.8777, ll.Lng.Degrees(), 1e-9)
}

func TestTrackpointTime(t *testing.T) {
	require := require.New(t)

	tp := track.Trackpoint{Waypoint: track.NewWaypoint(0, 0, 0), Timestamp: 1257863200}

	require.Equal(time.Date(2009, time.November, 10, 14, 26, 40, 0, time.UTC), tp.Time())
}
