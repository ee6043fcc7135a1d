// Package grid builds pixel corner sets from sky-map bin edges.
//
// A Grid is a plate-carrée pixelization defined by longitude and latitude
// bin edges (radians). It produces the four-corner coordinate arrays that
// [github.com/sky-maps/sphgeom.Estimator] consumes, and convenience
// wrappers for computing the per-pixel solid-angle map and the total sky
// coverage.
//
// # Usage
//
//	g, err := grid.Uniform(0, 0.2, 0, 0.1, 2, 1)
//	omega, err := g.SolidAngles(nil)
//	total := grid.Coverage(omega)
package grid
