// Package sphgeom computes per-pixel solid angles for images projected on
// the celestial sphere.
//
// sphgeom provides a pure-Go Estimator that, given the four sky-coordinate
// corners of each pixel, computes the solid angle (steradians) subtended
// by each pixel via spherical excess, plus spherical-geometry utilities
// and a pixel-grid builder (in the sphgeom/grid subpackage) for deriving
// corner sets from bin edges.
//
// Basic usage:
//
//	est, err := sphgeom.NewEstimator(sphgeom.EstimatorConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	omega, err := est.PixelSolidAngle(corners)
package sphgeom
