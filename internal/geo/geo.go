// Package geo provides the distance and interpolation primitives used
// by the stats engine and the route renderer. All functions are pure
// and total over valid latitude/longitude input.
package geo

import "math"

// EarthRadiusKm is the mean radius of Earth in kilometers.
const EarthRadiusKm = 6371.0

// DefaultCurveSteps is the sample count used for rendered route arcs.
const DefaultCurveSteps = 30

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// HaversineKm returns the great-circle distance in kilometers between
// two points given in degrees. Symmetric; zero for identical points.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degToRad(lat2 - lat1)
	dLng := degToRad(lng2 - lng1)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	a := sinLat*sinLat +
		math.Cos(degToRad(lat1))*math.Cos(degToRad(lat2))*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// CurvePoints returns an arced polyline between two points for route
// rendering. Each sample is a linear interpolation of the endpoints
// plus a sin(t*pi) bulge scaled by distance, zero at both ends and
// maximal at the midpoint. The lng offset is half-weighted so the arc
// leans rather than shears.
//
// This is a drawing aid only; it is not a geodesic and must not be
// used for distance.
func CurvePoints(from, to Point, steps int) []Point {
	if steps <= 0 {
		steps = DefaultCurveSteps
	}

	bulge := HaversineKm(from.Lat, from.Lng, to.Lat, to.Lng) / 2000

	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		lat := from.Lat + (to.Lat-from.Lat)*t
		lng := from.Lng + (to.Lng-from.Lng)*t

		offset := math.Sin(t*math.Pi) * bulge

		points = append(points, Point{
			Lat: lat + offset,
			Lng: lng + offset*0.5,
		})
	}
	return points
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
