package sphgeom

import "fmt"

// Corner holds one of the four boundary vertices for a batch of pixels:
// Lon[i] and Lat[i] are the coordinates (radians) of this corner of
// pixel i.
type Corner struct {
	Lon []float64 `json:"lon"`
	Lat []float64 `json:"lat"`
}

// CornerSet holds the four corners of N pixels, ordered consistently
// around each pixel (all clockwise or all counter-clockwise). The
// traversal order is assumed, not validated; self-intersecting or
// zero-area quadrilaterals produce unspecified results.
type CornerSet [4]Corner

// Len returns the number of pixels N, or an error if the eight coordinate
// arrays do not all share the same length, or if N is zero.
func (cs CornerSet) Len() (int, error) {
	n := len(cs[0].Lon)
	for i, c := range cs {
		if len(c.Lon) != n || len(c.Lat) != n {
			return 0, fmt.Errorf("%w: corner %d has lon[%d] lat[%d], want %d",
				ErrCornerMismatch, i, len(c.Lon), len(c.Lat), n)
		}
	}
	if n == 0 {
		return 0, ErrNoPixels
	}
	return n, nil
}
