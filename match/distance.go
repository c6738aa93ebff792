package match

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/aidconnect/aid-connect-api/schema"
)

// Distance returns the great-circle distance in meters between two locations,
// using the haversine formula on the WGS84 equatorial radius. The result is
// symmetric and 0 for identical points.
//
// A latitude outside [-90, 90] or a longitude outside [-180, 180] makes the
// result NaN. Coordinates are never wrapped or clamped, and a NaN distance is
// rejected by Score.
func Distance(a, b schema.Location) float64 {
	if !a.Valid() || !b.Valid() {
		return math.NaN()
	}

	return geo.DistanceHaversine(
		orb.Point{a.Longitude, a.Latitude},
		orb.Point{b.Longitude, b.Latitude},
	)
}
