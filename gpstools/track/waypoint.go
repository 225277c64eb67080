package track

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// LatLng is implemented by anything positioned in degrees of latitude and longitude
type LatLng interface {
	Lat() float64
	Lng() float64
}

// Waypoint is a geographic coordinate. Values are stored as given, out of range
// latitudes or longitudes are not normalized.
type Waypoint struct {
	latitude, longitude float64
	altitude            float64
}

// NewWaypoint creates a waypoint from degrees and an altitude in meters
func NewWaypoint(latitude, longitude, altitude float64) Waypoint {
	return Waypoint{
		latitude:  latitude,
		longitude: longitude,
		altitude:  altitude,
	}
}

// Latitude returns the latitude in degrees
func (w Waypoint) Latitude() float64 {
	return w.latitude
}

// Longitude returns the longitude in degrees
func (w Waypoint) Longitude() float64 {
	return w.longitude
}

// Altitude returns the altitude in meters
func (w Waypoint) Altitude() float64 {
	return w.altitude
}

// Lat returns the latitude in degrees
func (w Waypoint) Lat() float64 {
	return w.latitude
}

// Lng returns the longitude in degrees
func (w Waypoint) Lng() float64 {
	return w.longitude
}

// LatLng returns the waypoint position as s2 angles
func (w Waypoint) LatLng() s2.LatLng {
	return toS2LatLng(w)
}

func (w Waypoint) String() string {
	return fmt.Sprintf("%.7f,%.7f,%.1f", w.latitude, w.longitude, w.altitude)
}

func toS2LatLng(p LatLng) s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(p.Lat()) * s1.Degree,
		Lng: s1.Angle(p.Lng()) * s1.Degree,
	}
}
