package geo

import "math"

// EarthRadiusMiles is the mean Earth radius used for great-circle math.
const EarthRadiusMiles = 3958.8

// Coordinate is a point in decimal degrees. Values are not range-checked:
// callers get back whatever the trigonometry yields for bad input.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// DistanceMiles returns the great-circle distance between two points,
// computed with the Haversine formula.
func DistanceMiles(from Coordinate, to Coordinate) float64 {
	dLat := toRadians(to.Latitude - from.Latitude)
	dLon := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(from.Latitude))*math.Cos(toRadians(to.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
