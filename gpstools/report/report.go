package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gps-track-tools/gpstools/convert"
	"gps-track-tools/gpstools/track"
)

// Output formats
const (
	JSON = "json"
	Text = "text"
	CSV  = "csv"
)

// Units
const (
	Metric   = "metric"
	Imperial = "imperial"
)

const timeFormat = "2006-01-02T15:04:05Z"

// ErrUnknownFormat is returned for output formats other than json, text and csv
var ErrUnknownFormat = errors.New("unknown output format")

// Equator is the most equatorial point found on a track
type Equator struct {
	Source string
	Point  track.Trackpoint
	Index  int
}

// Summary describes a whole track
type Summary struct {
	Source string
	Points int
	Bounds track.Bounds
	Stats  track.Stats
}

// ValidFormat returns an error if the format can't be rendered
func ValidFormat(format string) error {
	switch format {
	case JSON, Text, CSV:
		return nil
	}
	return fmt.Errorf("%w '%s'", ErrUnknownFormat, format)
}

// WriteEquator renders the most equatorial points of one or more tracks
func WriteEquator(w io.Writer, format, units string, rows []Equator) error {
	if err := ValidFormat(format); err != nil {
		return err
	}

	switch format {
	case Text:
		for _, r := range rows {
			wp := r.Point.Waypoint
			_, err := fmt.Fprintf(w, "%s - %.6f, %.6f (%s) - %s [point #%d]\n",
				r.Source, wp.Latitude(), wp.Longitude(), altitude(wp.Altitude(), units), timestamp(r.Point), r.Index+1)
			if err != nil {
				return err
			}
		}
	case JSON:
		elts := make([]map[string]interface{}, len(rows))
		for i, r := range rows {
			wp := r.Point.Waypoint
			jsonMap := map[string]interface{}{}
			jsonMap["source"] = r.Source
			jsonMap["index"] = r.Index
			jsonMap["latitude"] = wp.Latitude()
			jsonMap["longitude"] = wp.Longitude()
			jsonMap["altitude"] = distance(wp.Altitude(), units)
			jsonMap["timestamp"] = r.Point.Timestamp
			elts[i] = jsonMap
		}
		return writeJSON(w, elts)
	case CSV:
		csvW := csv.NewWriter(w)
		csvW.Write([]string{"source", "index", "latitude", "longitude", "altitude(" + altitudeUnit(units) + ")", "time"})
		for _, r := range rows {
			wp := r.Point.Waypoint
			csvW.Write([]string{
				r.Source,
				strconv.Itoa(r.Index),
				strconv.FormatFloat(wp.Latitude(), 'f', -1, 64),
				strconv.FormatFloat(wp.Longitude(), 'f', -1, 64),
				convert.Ftoan(distance(wp.Altitude(), units)),
				timestamp(r.Point),
			})
		}
		csvW.Flush()
		return csvW.Error()
	}

	return nil
}

// WriteSummary renders statistics of a track
func WriteSummary(w io.Writer, format, units string, s Summary) error {
	if err := ValidFormat(format); err != nil {
		return err
	}

	d, h, m := convert.ToDaysHoursMin(s.Stats.Duration)

	switch format {
	case Text:
		_, err := fmt.Fprintf(w, "%s\n  points:    %d\n  latitude:  %.6f to %.6f\n  longitude: %.6f to %.6f\n  duration:  %dd %dh %dm\n  distance:  %s\n  elevation: +%s / -%s\n",
			s.Source, s.Points,
			s.Bounds.MinLat, s.Bounds.MaxLat,
			s.Bounds.MinLng, s.Bounds.MaxLng,
			d, h, m,
			length(s.Stats.Distance, units),
			altitude(s.Stats.ElevationGain, units), altitude(s.Stats.ElevationLoss, units),
		)
		return err
	case JSON:
		return writeJSON(w, map[string]interface{}{
			"source":         s.Source,
			"points":         s.Points,
			"min_latitude":   s.Bounds.MinLat,
			"max_latitude":   s.Bounds.MaxLat,
			"min_longitude":  s.Bounds.MinLng,
			"max_longitude":  s.Bounds.MaxLng,
			"duration":       int64(s.Stats.Duration.Seconds()),
			"distance":       longDistance(s.Stats.Distance, units),
			"elevation_gain": distance(s.Stats.ElevationGain, units),
			"elevation_loss": distance(s.Stats.ElevationLoss, units),
		})
	case CSV:
		csvW := csv.NewWriter(w)
		csvW.Write([]string{"source", "points", "min lat", "max lat", "min lng", "max lng", "duration(s)", "distance", "elevation gain", "elevation loss"})
		csvW.Write([]string{
			s.Source,
			strconv.Itoa(s.Points),
			strconv.FormatFloat(s.Bounds.MinLat, 'f', -1, 64),
			strconv.FormatFloat(s.Bounds.MaxLat, 'f', -1, 64),
			strconv.FormatFloat(s.Bounds.MinLng, 'f', -1, 64),
			strconv.FormatFloat(s.Bounds.MaxLng, 'f', -1, 64),
			strconv.FormatInt(int64(s.Stats.Duration.Seconds()), 10),
			strconv.FormatFloat(longDistance(s.Stats.Distance, units), 'f', 2, 64),
			convert.Ftoan(distance(s.Stats.ElevationGain, units)),
			convert.Ftoan(distance(s.Stats.ElevationLoss, units)),
		})
		csvW.Flush()
		return csvW.Error()
	}

	return nil
}

func writeJSON(w io.Writer, v interface{}) error {
	jsonStr, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(jsonStr))
	return err
}

func timestamp(tp track.Trackpoint) string {
	if tp.Timestamp == 0 {
		return "-"
	}
	return tp.Time().Format(timeFormat)
}

// distance converts meters to feet for imperial units
func distance(meters float64, units string) float64 {
	if units == Imperial {
		return convert.ToFeet(meters)
	}
	return meters
}

// longDistance converts meters to kilometers or miles
func longDistance(meters float64, units string) float64 {
	if units == Imperial {
		return convert.ToMiles(meters)
	}
	return meters / 1000
}

func altitudeUnit(units string) string {
	if units == Imperial {
		return "feet"
	}
	return "meters"
}

func altitude(meters float64, units string) string {
	if units == Imperial {
		return convert.Ftoan(convert.ToFeet(meters)) + "'"
	}
	return convert.Ftoan(meters) + "m"
}

func length(meters float64, units string) string {
	if units == Imperial {
		return fmt.Sprintf("%.2f mi", convert.ToMiles(meters))
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}
