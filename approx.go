package sphgeom

import "math"

// FlatSkyApprox returns the small-angle (flat-sky) solid angle of a pixel
// of angular width dLon and height dLat centered at latitude lat, all in
// radians:
//
//	Ω ≈ dLon * dLat * cos(lat)
//
// It is the limit the exact spherical excess approaches as the pixel
// shrinks, and is useful as a cheap sanity reference for small pixels.
func FlatSkyApprox(dLon, dLat, lat float64) float64 {
	return dLon * dLat * math.Cos(lat)
}
