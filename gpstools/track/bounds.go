package track

import "math"

// Bounds represents track coordinate boundaries
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Extend extends boundaries from given decimal degrees
func (b Bounds) Extend(inc float64) Bounds {
	b.MinLat -= inc
	b.MinLng -= inc
	b.MaxLat += inc
	b.MaxLng += inc
	return b
}

func (b Bounds) include(p LatLng) Bounds {
	b.MinLat = math.Min(b.MinLat, p.Lat())
	b.MaxLat = math.Max(b.MaxLat, p.Lat())
	b.MinLng = math.Min(b.MinLng, p.Lng())
	b.MaxLng = math.Max(b.MaxLng, p.Lng())
	return b
}
