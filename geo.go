package course2osm

import (
	"github.com/paulmach/orb"
)

const (
	// metersPerDegree is a flat approximation used to place course meters on a map. Not geodesy.
	metersPerDegree = 1_000_000.0 / 9.0
)

// meterToDegree m -> m / K
func meterToDegree(m float64) float64 {
	return m / metersPerDegree
}

// degreeToMeter d -> d * K
func degreeToMeter(d float64) float64 {
	return d * metersPerDegree
}

// courseToGeo maps course plane (x, y) to map point (lon, lat). Y axis is inverted.
func courseToGeo(x, y float64) orb.Point {
	return orb.Point{meterToDegree(x), meterToDegree(y * -1)}
}

// geoToCourse is inverse of courseToGeo
func geoToCourse(pt orb.Point) (float64, float64) {
	return degreeToMeter(pt.Lon()), degreeToMeter(pt.Lat() * -1)
}

// mapToGeo maps raw map-space meters to degrees without Y inversion.
// Used for the calibration rectangle only.
func mapToGeo(x, y float64) orb.Point {
	return orb.Point{meterToDegree(x), meterToDegree(y)}
}
