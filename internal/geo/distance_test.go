package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DistanceMiles_SamePointIsZero(t *testing.T) {
	point := Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	assert.Equal(t, 0.0, DistanceMiles(point, point))
}

func Test_DistanceMiles_NewYorkToLosAngeles(t *testing.T) {
	newYork := Coordinate{Latitude: 40.7128, Longitude: -74.0060}
	losAngeles := Coordinate{Latitude: 34.0522, Longitude: -118.2437}

	distance := DistanceMiles(newYork, losAngeles)
	assert.InDelta(t, 2445, distance, 5)
}

func Test_DistanceMiles_IsSymmetric(t *testing.T) {
	a := Coordinate{Latitude: 25.7617, Longitude: -80.1918}
	b := Coordinate{Latitude: 28.5384, Longitude: -81.3789}

	assert.InDelta(t, DistanceMiles(a, b), DistanceMiles(b, a), 1e-9)
}
