package convert

import (
	"math"
	"strconv"
	"time"
)

const feetPerMeter = 3.28084
const milesPerMeter = 0.0006213712

// ToFeet returns the given distance in meters to feet
func ToFeet(meters float64) float64 {
	return meters * feetPerMeter
}

// ToMiles returns the given distance in meters to miles
func ToMiles(meters float64) float64 {
	return meters * milesPerMeter
}

// ToDaysHoursMin splits a duration in days, hours and minutes. Negative durations give zeros.
func ToDaysHoursMin(d time.Duration) (int, int, int) {
	if d <= 0 {
		return 0, 0, 0
	}

	minutes := int(d / time.Minute)
	return minutes / (24 * 60), (minutes / 60) % 24, minutes % 60
}

// Ftoan rounds a float to the nearest integer and formats it
func Ftoan(f float64) string {
	return strconv.Itoa(int(math.Round(f)))
}
