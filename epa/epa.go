// Package epa implements the Expanding Polytope Algorithm: given a GJK
// terminal simplex known to contain the origin, it grows a polytope
// face by face until the closest face to the origin settles, yielding
// the contact normal and penetration depth.
//
// Reference: Van den Bergen, "Proximity Queries and Penetration Depth
// Computation on 3D Game Objects" (2001).
package epa

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/errs"
	"github.com/brightforge/rigidphys/gjk"
	"github.com/brightforge/rigidphys/mathx"
	"github.com/brightforge/rigidphys/minkowski"
)

// convergenceTolerance bounds how much closer a new support point must
// bring the polytope before another expansion iteration is worthwhile.
const convergenceTolerance = 1e-4

// Result is the penetration depth and contact normal extracted from the
// Minkowski difference of two overlapping shapes. Normal points from A
// toward B.
type Result struct {
	Normal mgl64.Vec3
	Depth  float64
}

// Run expands simplex (a GJK terminal tetrahedron already known to
// contain the origin) until it converges on the Minkowski difference's
// boundary nearest the origin, or returns a NumericalFailure error if
// it cannot do so within maxIterations.
func Run(a, b *body.Body, simplex gjk.Simplex, maxIterations int) (Result, error) {
	if simplex.Count < 4 {
		return degenerateResult(a, b, simplex), nil
	}

	poly := buildFromSimplex(simplex.Points)

	for i := 0; i < maxIterations; i++ {
		closest := poly.closest()
		support := minkowski.Support(a, b, closest.normal)
		supportDist := support.Dot(closest.normal)

		if supportDist-closest.dist < convergenceTolerance {
			normal := snapNormalToAxis(closest.normal)
			return Result{Normal: normal, Depth: closest.dist}, nil
		}

		poly.expand(support)
	}

	return Result{}, errs.New(errs.NumericalFailure, "EPA did not converge within the iteration cap")
}

// degenerateResult estimates a normal and depth when GJK terminated
// with fewer than four simplex points (shapes barely touching). It
// falls back to the separation between body centers when no better
// information is available.
func degenerateResult(a, b *body.Body, simplex gjk.Simplex) Result {
	if simplex.Count >= 1 {
		p := simplex.Points[simplex.Count-1]
		if p.LenSqr() > mathx.Epsilon {
			n, err := mathx.NewUnitVec3(p.Mul(-1))
			if err == nil {
				return Result{Normal: n.Vec3(), Depth: p.Len()}
			}
		}
	}
	sep := b.Collision.Transform.Position.Sub(a.Collision.Transform.Position)
	n, err := mathx.NewUnitVec3(sep)
	if err != nil {
		n, _ = mathx.NewUnitVec3(mgl64.Vec3{0, 1, 0})
	}
	return Result{Normal: n.Vec3(), Depth: 0.01}
}
