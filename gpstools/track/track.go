package track

import (
	"errors"
	"math"
	"time"
)

// ErrInsufficientData is returned by queries that need at least one track point
var ErrInsufficientData = errors.New("not enough track points")

// Track represents a recorded gps journey made of an ordered serie of track points.
// A track is immutable: the points are copied on creation and never change after.
type Track struct {
	points []Trackpoint
}

// Stats track statistics
type Stats struct {
	Duration       time.Duration
	ElevationGain  float64
	ElevationLoss  float64
	StartElevation float64
	EndElevation   float64
	Distance       float64
}

const earthRadius = 6378100
const elevationChangeThreshold = 18

// New creates a track from the given points. An empty list is accepted.
func New(pts []Trackpoint) Track {
	points := make([]Trackpoint, len(pts))
	copy(points, pts)

	return Track{
		points: points,
	}
}

// Len returns the number of points in the track
func (t Track) Len() int {
	return len(t.points)
}

// Points returns a copy of the track points
func (t Track) Points() []Trackpoint {
	points := make([]Trackpoint, len(t.points))
	copy(points, t.points)
	return points
}

// MostEquatorialWaypoint returns the waypoint nearest to the equator.
// If several points are equally close, the one that comes first is returned.
// ErrInsufficientData is returned if the track has no points.
func (t Track) MostEquatorialWaypoint() (Waypoint, error) {
	tp, _, err := t.MostEquatorialTrackpoint()
	if err != nil {
		return Waypoint{}, err
	}

	return tp.Waypoint, nil
}

// MostEquatorialTrackpoint returns the track point nearest to the equator along with
// its position on the track. Ties are resolved like MostEquatorialWaypoint.
func (t Track) MostEquatorialTrackpoint() (Trackpoint, int, error) {
	if len(t.points) == 0 {
		return Trackpoint{}, -1, ErrInsufficientData
	}

	nearest := 0
	for i := 1; i < len(t.points); i++ {
		// strict comparison keeps the earliest point on ties
		if math.Abs(t.points[i].Waypoint.latitude) < math.Abs(t.points[nearest].Waypoint.latitude) {
			nearest = i
		}
	}

	return t.points[nearest], nearest, nil
}

// Bounds returns the boundaries of the track
func (t Track) Bounds() (Bounds, error) {
	if len(t.points) == 0 {
		return Bounds{}, ErrInsufficientData
	}

	first := t.points[0].Waypoint
	b := Bounds{
		MinLat: first.latitude,
		MinLng: first.longitude,
		MaxLat: first.latitude,
		MaxLng: first.longitude,
	}
	for _, p := range t.points[1:] {
		b = b.include(p.Waypoint)
	}

	return b, nil
}

// Stats retrieves statistics from the track
func (t Track) Stats() (Stats, error) {
	if len(t.points) == 0 {
		return Stats{}, ErrInsufficientData
	}

	first := t.points[0]
	last := t.points[len(t.points)-1]
	gain, loss := t.elevationGainLoss(elevationChangeThreshold)

	return Stats{
		Duration:       t.duration(),
		ElevationGain:  gain,
		ElevationLoss:  loss,
		StartElevation: first.Waypoint.altitude,
		EndElevation:   last.Waypoint.altitude,
		Distance:       t.distance(),
	}, nil
}

// duration returns the time between the first and last timed points.
// Points with a 0 timestamp carry no time and are skipped.
func (t Track) duration() time.Duration {
	start, end := -1, -1
	for i, p := range t.points {
		if p.Timestamp == 0 {
			continue
		}
		if start < 0 {
			start = i
		}
		end = i
	}

	if start < 0 || start == end {
		return 0
	}
	return t.points[end].Time().Sub(t.points[start].Time())
}

// distance returns the 2D length of the track in meters
func (t Track) distance() float64 {
	var d float64
	for i := 1; i < len(t.points); i++ {
		a := t.points[i-1].Waypoint.LatLng()
		b := t.points[i].Waypoint.LatLng()
		d += a.Distance(b).Radians() * earthRadius
	}
	return d
}

func (t Track) elevationGainLoss(threshold float64) (float64, float64) {
	selectedElevations := []float64{}
	i := 0
	for _, p := range t.points {
		e := p.Waypoint.altitude
		if i == 0 || math.Abs(e-selectedElevations[i-1]) > threshold {
			selectedElevations = append(selectedElevations, e)
			i++
		}
	}

	var gain float64
	var loss float64

	for i := 1; i < len(selectedElevations); i++ {
		d := selectedElevations[i] - selectedElevations[i-1]
		if d > 0.0 {
			gain += d
		} else {
			loss -= d
		}
	}

	return gain, loss
}
