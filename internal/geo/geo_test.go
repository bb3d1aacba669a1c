package geo

import (
	"math"
	"testing"
)

func TestHaversineKnownDistances(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lng1 float64
		lat2, lng2 float64
		expected   float64
		tolerance  float64
	}{
		{
			name: "identical points",
			lat1: 48.85, lng1: 2.35,
			lat2: 48.85, lng2: 2.35,
			expected:  0,
			tolerance: 0.0001,
		},
		{
			name: "quarter great circle along the equator",
			lat1: 0, lng1: 0,
			lat2: 0, lng2: 90,
			expected:  10007.5,
			tolerance: 1.0,
		},
		{
			name: "Tokyo to Paris",
			lat1: 35.68, lng1: 139.69,
			lat2: 48.85, lng2: 2.35,
			expected:  9700,
			tolerance: 50,
		},
		{
			name: "pole to pole",
			lat1: 90, lng1: 0,
			lat2: -90, lng2: 0,
			expected:  math.Pi * EarthRadiusKm,
			tolerance: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("HaversineKm() = %.2f, expected %.2f ± %.2f", got, tt.expected, tt.tolerance)
			}
		})
	}
}

func TestCurvePointsShape(t *testing.T) {
	from := Point{Lat: 35.68, Lng: 139.69}
	to := Point{Lat: 48.85, Lng: 2.35}

	points := CurvePoints(from, to, DefaultCurveSteps)

	if len(points) != DefaultCurveSteps+1 {
		t.Fatalf("expected %d points, got %d", DefaultCurveSteps+1, len(points))
	}

	if points[0] != from {
		t.Errorf("curve must start at the origin point, got %+v", points[0])
	}
	// sin(pi) is not exactly zero in floating point, so the last sample
	// carries a sub-nanometer residue of the bulge.
	last := points[len(points)-1]
	if math.Abs(last.Lat-to.Lat) > 1e-9 || math.Abs(last.Lng-to.Lng) > 1e-9 {
		t.Errorf("curve must end at the destination point, got %+v", last)
	}

	// The bulge peaks at the midpoint: the middle sample must deviate
	// from the straight-line interpolation while the endpoints do not.
	mid := points[DefaultCurveSteps/2]
	straightLat := from.Lat + (to.Lat-from.Lat)*0.5
	if mid.Lat <= straightLat {
		t.Errorf("midpoint lat %.4f should bulge above straight-line %.4f", mid.Lat, straightLat)
	}
}

func TestCurvePointsIdenticalEndpoints(t *testing.T) {
	p := Point{Lat: 10, Lng: 20}
	points := CurvePoints(p, p, 10)

	for i, pt := range points {
		if pt != p {
			t.Errorf("sample %d = %+v, expected %+v for zero-length curve", i, pt, p)
		}
	}
}

func TestCurvePointsDefaultsSteps(t *testing.T) {
	points := CurvePoints(Point{}, Point{Lat: 1, Lng: 1}, 0)
	if len(points) != DefaultCurveSteps+1 {
		t.Errorf("expected default step count %d+1, got %d", DefaultCurveSteps, len(points))
	}
}
