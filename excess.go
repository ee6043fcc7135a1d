package sphgeom

import (
	"math"

	"github.com/golang/geo/r3"
)

// quadExcessUnnormalized computes the solid angle of one pixel quadrilateral
// with the spherical-excess formula:
//
//	angle_i = arccos( (A×(A×B)) · (B×(C×B)) )
//	Ω = Σ angle_i − 2π
//
// where (A, B, C) are the vertices at indices (i+1, i+2, i+3) mod 4 for
// each cyclic rotation i, and the double cross products are deliberately
// left unnormalized. The unnormalized angles are part of the method's
// contract; see QuadSolidAngle for the exact great-circle excess.
func quadExcessUnnormalized(q [4]r3.Vector) float64 {
	sum := 0.0
	for i := 0; i < 4; i++ {
		a := q[(i+1)%4]
		b := q[(i+2)%4]
		c := q[(i+3)%4]
		va := a.Cross(a.Cross(b))
		vb := b.Cross(c.Cross(b))
		sum += math.Acos(va.Dot(vb))
	}
	return sum - 2*math.Pi
}

// interiorAngle returns the interior angle at vertex b of the spherical
// polygon edge pair (b→a, b→c), i.e. the angle between the great circles
// through (b, a) and (b, c), measured at b.
func interiorAngle(a, b, c r3.Vector) float64 {
	ta := b.Cross(a.Cross(b)).Normalize() // tangent at b toward a
	tc := b.Cross(c.Cross(b)).Normalize() // tangent at b toward c
	dot := ta.Dot(tc)
	// Clamp against rounding before Acos.
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	return math.Acos(dot)
}

// TriangleSolidAngle returns the solid angle (steradians) of the spherical
// triangle with vertices a, b, c, by Girard's theorem:
// excess = angle sum − π. Vertices must be unit vectors; edges are great
// circles. The result is orientation-independent and non-negative for
// non-degenerate triangles.
func TriangleSolidAngle(a, b, c r3.Vector) float64 {
	return interiorAngle(c, a, b) +
		interiorAngle(a, b, c) +
		interiorAngle(b, c, a) - math.Pi
}

// QuadSolidAngle returns the solid angle (steradians) of the spherical
// quadrilateral with the given vertices, in traversal order, as the
// interior angle sum minus 2π. Vertices must be unit vectors; edges are
// great circles. Exact for convex, consistently wound quadrilaterals
// (agrees with triangulating into two spherical triangles).
func QuadSolidAngle(q [4]r3.Vector) float64 {
	sum := 0.0
	for i := 0; i < 4; i++ {
		sum += interiorAngle(q[(i+3)%4], q[i], q[(i+1)%4])
	}
	return sum - 2*math.Pi
}
