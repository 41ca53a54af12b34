package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIsSymmetric(t *testing.T) {
	points := []Point{
		{10.6785, 77.0321},
		{10.678922, 77.032420},
		{-33.8688, 151.2093},
		{51.5074, -0.1278},
		{89.9, 179.9},
		{-89.9, -179.9},
	}
	for _, a := range points {
		assert.Zero(t, Distance(a, a))
		for _, b := range points {
			assert.Equal(t, Distance(a, b), Distance(b, a), "distance(%v,%v) should equal distance(%v,%v)", a, b, b, a)
		}
	}
}

func TestDistanceKnownValues(t *testing.T) {
	// One thousandth of a degree of latitude is ~111.2 meters on a spherical Earth
	library := Point{10.6785, 77.0321}
	north := Point{10.6795, 77.0321}
	assert.InDelta(t, 111.19, Distance(library, north), 0.05)

	// London to Paris
	london := Point{51.5074, -0.1278}
	paris := Point{48.8566, 2.3522}
	assert.InDelta(t, 343_550, Distance(london, paris), 1_000)

	// Antipodes are half the circumference apart
	assert.InDelta(t, math.Pi*EarthRadiusMeters, Distance(Point{0, 0}, Point{0, 180}), 0.001)
}

func TestDistanceSmallOffsets(t *testing.T) {
	library := Point{10.6785, 77.0321}
	// 40 meters due north
	offset := 40 / EarthRadiusMeters * 180 / math.Pi
	student := Point{library.Latitude + offset, library.Longitude}
	assert.InDelta(t, 40, Distance(library, student), 0.01)
}
