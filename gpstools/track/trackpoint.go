package track

import (
	"time"
)

// Trackpoint is a waypoint sampled at a given time
type Trackpoint struct {
	Waypoint  Waypoint
	Timestamp int64 // seconds since the Unix epoch
}

// Time returns the timestamp as a UTC time
func (tp Trackpoint) Time() time.Time {
	return time.Unix(tp.Timestamp, 0).UTC()
}
