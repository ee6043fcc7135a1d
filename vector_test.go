package sphgeom

import (
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"gonum.org/v1/gonum/floats/scalar"
)

func assertFloat(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if !scalar.EqualWithinAbs(got, want, tol) {
		t.Errorf("%s = %.12e, want %.12e (diff %.3e)", name, got, want, math.Abs(got-want))
	}
}

func TestVectorKnownDirections(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		x, y, z  float64
	}{
		{"origin", 0, 0, 1, 0, 0},
		{"lon 90", math.Pi / 2, 0, 0, 1, 0},
		{"north pole", 0, math.Pi / 2, 0, 0, 1},
		{"south pole", 0.3, -math.Pi / 2, 0, 0, -1},
	}
	for _, tt := range tests {
		v := Vector(tt.lon, tt.lat)
		assertFloat(t, tt.name+" x", v.X, tt.x, 1e-15)
		assertFloat(t, tt.name+" y", v.Y, tt.y, 1e-15)
		assertFloat(t, tt.name+" z", v.Z, tt.z, 1e-15)
	}
}

func TestVectorIsUnit(t *testing.T) {
	for _, c := range [][2]float64{{0.1, 0.1}, {2.5, -1.2}, {5.9, 1.5}} {
		v := Vector(c[0], c[1])
		assertFloat(t, "norm", v.Norm(), 1, 1e-14)
	}
}

func TestVectorMatchesS2(t *testing.T) {
	// The conversion must agree with s2's LatLng→Point mapping.
	for _, c := range [][2]float64{{0, 0}, {0.1, 0.1}, {2.5, -1.2}, {4.0, 0.7}} {
		got := Vector(c[0], c[1])
		want := s2.PointFromLatLng(s2.LatLng{Lat: s1.Angle(c[1]), Lng: s1.Angle(c[0])})
		assertFloat(t, "x", got.X, want.X, 1e-14)
		assertFloat(t, "y", got.Y, want.Y, 1e-14)
		assertFloat(t, "z", got.Z, want.Z, 1e-14)
	}
}

func TestLonLatRoundTrip(t *testing.T) {
	for _, c := range [][2]float64{{0, 0}, {0.1, 0.1}, {2.5, -1.2}, {4.0, 0.7}, {6.0, -0.01}} {
		lon, lat := LonLat(Vector(c[0], c[1]))
		assertFloat(t, "lon", lon, c[0], 1e-12)
		assertFloat(t, "lat", lat, c[1], 1e-12)
	}
}

func TestLonLatRange(t *testing.T) {
	// Negative input longitudes come back wrapped into [0, 2π).
	lon, _ := LonLat(Vector(-0.5, 0.2))
	assertFloat(t, "wrapped lon", lon, 2*math.Pi-0.5, 1e-12)
}

func TestAngularSeparation(t *testing.T) {
	tests := []struct {
		name                   string
		lon1, lat1, lon2, lat2 float64
		want                   float64
	}{
		{"equator 1 rad", 0, 0, 1, 0, 1},
		{"pole to equator", 0, 0, 0, math.Pi / 2, math.Pi / 2},
		{"coincident", 1.3, 0.4, 1.3, 0.4, 0},
		{"antipodal", 0, 0, math.Pi, 0, math.Pi},
	}
	for _, tt := range tests {
		got := AngularSeparation(tt.lon1, tt.lat1, tt.lon2, tt.lat2)
		assertFloat(t, tt.name, got, tt.want, 1e-12)
	}
}

func TestAngularSeparationSymmetric(t *testing.T) {
	ab := AngularSeparation(0.2, 0.5, 1.1, -0.3)
	ba := AngularSeparation(1.1, -0.3, 0.2, 0.5)
	assertFloat(t, "symmetry", ab, ba, 1e-15)
}
