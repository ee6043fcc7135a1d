package grid

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/sky-maps/sphgeom"
)

// ErrInvalidEdges is returned for bin edge arrays that do not define a
// grid: fewer than two edges on an axis, or edges not strictly increasing.
var ErrInvalidEdges = errors.New("grid: invalid bin edges")

// Grid is a plate-carrée pixel grid on the sphere, defined by bin edges
// in radians. A grid with nLon+1 longitude edges and nLat+1 latitude
// edges has nLon*nLat pixels, indexed row-major with longitude varying
// fastest.
type Grid struct {
	LonEdges []float64 `json:"lon_edges"`
	LatEdges []float64 `json:"lat_edges"`
}

// New creates a Grid from explicit bin edges. Each axis needs at least
// two strictly increasing edges.
func New(lonEdges, latEdges []float64) (Grid, error) {
	if err := checkEdges("lon", lonEdges); err != nil {
		return Grid{}, err
	}
	if err := checkEdges("lat", latEdges); err != nil {
		return Grid{}, err
	}
	return Grid{LonEdges: lonEdges, LatEdges: latEdges}, nil
}

// Uniform creates a Grid with nLon by nLat equally sized pixels spanning
// [lonMin, lonMax] x [latMin, latMax] (radians).
func Uniform(lonMin, lonMax, latMin, latMax float64, nLon, nLat int) (Grid, error) {
	if nLon < 1 || nLat < 1 {
		return Grid{}, fmt.Errorf("%w: need at least 1 pixel per axis, got %dx%d",
			ErrInvalidEdges, nLon, nLat)
	}
	lonEdges := floats.Span(make([]float64, nLon+1), lonMin, lonMax)
	latEdges := floats.Span(make([]float64, nLat+1), latMin, latMax)
	return New(lonEdges, latEdges)
}

func checkEdges(axis string, edges []float64) error {
	if len(edges) < 2 {
		return fmt.Errorf("%w: %s needs at least 2 edges, got %d",
			ErrInvalidEdges, axis, len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return fmt.Errorf("%w: %s edges not strictly increasing at index %d",
				ErrInvalidEdges, axis, i)
		}
	}
	return nil
}

// Pixels returns the number of pixels in the grid.
func (g Grid) Pixels() int {
	return (len(g.LonEdges) - 1) * (len(g.LatEdges) - 1)
}

// Corners returns the four-corner coordinate arrays for every pixel,
// row-major with longitude varying fastest. Corners are wound
// counter-clockwise as seen from outside the sphere: lower-left,
// lower-right, upper-right, upper-left.
func (g Grid) Corners() sphgeom.CornerSet {
	nLon := len(g.LonEdges) - 1
	nLat := len(g.LatEdges) - 1
	n := nLon * nLat

	var cs sphgeom.CornerSet
	for i := range cs {
		cs[i] = sphgeom.Corner{
			Lon: make([]float64, n),
			Lat: make([]float64, n),
		}
	}

	px := 0
	for iy := 0; iy < nLat; iy++ {
		lat0, lat1 := g.LatEdges[iy], g.LatEdges[iy+1]
		for ix := 0; ix < nLon; ix++ {
			lon0, lon1 := g.LonEdges[ix], g.LonEdges[ix+1]

			cs[0].Lon[px], cs[0].Lat[px] = lon0, lat0
			cs[1].Lon[px], cs[1].Lat[px] = lon1, lat0
			cs[2].Lon[px], cs[2].Lat[px] = lon1, lat1
			cs[3].Lon[px], cs[3].Lat[px] = lon0, lat1
			px++
		}
	}
	return cs
}

// SolidAngles computes the per-pixel solid-angle map for the grid.
// A nil estimator uses the package default (method SphericalExcess).
func (g Grid) SolidAngles(est *sphgeom.Estimator) ([]float64, error) {
	cs := g.Corners()
	if est == nil {
		return sphgeom.PixelSolidAngle(cs)
	}
	return est.PixelSolidAngle(cs)
}

// Coverage returns the total solid angle (steradians) of a solid-angle
// map, i.e. the sky area the map covers.
func Coverage(omega []float64) float64 {
	return floats.Sum(omega)
}
