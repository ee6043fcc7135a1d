package sphgeom

import "errors"

// Sentinel errors for the sphgeom package.
// Use errors.Is to check: errors.Is(err, sphgeom.ErrUnknownMethod)
var (
	ErrUnknownMethod  = errors.New("sphgeom: unknown solid-angle method")
	ErrCornerMismatch = errors.New("sphgeom: corner array length mismatch")
	ErrNoPixels       = errors.New("sphgeom: corner arrays are empty")
)
