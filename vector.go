package sphgeom

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Vector converts sky coordinates (radians) to a unit vector on the
// celestial sphere: (cos lat cos lon, cos lat sin lon, sin lat).
func Vector(lon, lat float64) r3.Vector {
	cosLat := math.Cos(lat)
	return r3.Vector{
		X: cosLat * math.Cos(lon),
		Y: cosLat * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

// LonLat converts a direction vector back to sky coordinates (radians).
// The vector need not be unit length. Lon is in [0, 2π), lat in [-π/2, π/2].
func LonLat(v r3.Vector) (lon, lat float64) {
	lon = math.Atan2(v.Y, v.X)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	lat = math.Atan2(v.Z, math.Hypot(v.X, v.Y))
	return lon, lat
}

// AngularSeparation returns the great-circle distance (radians) between
// two sky positions given in radians.
func AngularSeparation(lon1, lat1, lon2, lat2 float64) float64 {
	a := s2.LatLng{Lat: s1.Angle(lat1), Lng: s1.Angle(lon1)}
	b := s2.LatLng{Lat: s1.Angle(lat2), Lng: s1.Angle(lon2)}
	return a.Distance(b).Radians()
}
