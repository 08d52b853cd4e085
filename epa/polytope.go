package epa

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/mathx"
)

// polytope is the expanding-polytope working set: a closed triangle
// mesh that always encloses the origin, grown one support point at a
// time until a face settles within tolerance of the true Minkowski
// difference boundary.
type polytope struct {
	faces []face
}

// buildFromSimplex turns a GJK terminal tetrahedron into four outward
// triangle faces, flipping each one's winding so its normal points away
// from the tetrahedron's fourth vertex.
func buildFromSimplex(points [4]mgl64.Vec3) polytope {
	tris := [4][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 1}, {1, 3, 2}}
	opposite := [4]int{3, 1, 2, 0}

	p := polytope{}
	for i, tri := range tris {
		a, b, c := points[tri[0]], points[tri[1]], points[tri[2]]
		f := newFace(a, b, c)
		if f.normal.Dot(points[opposite[i]].Sub(a)) > 0 {
			f = newFace(b, a, c)
		}
		p.faces = append(p.faces, f)
	}
	return p
}

func (p *polytope) closestFaceIndex() int {
	best := 0
	for i, f := range p.faces {
		if f.dist < p.faces[best].dist {
			best = i
		}
	}
	return best
}

type edge struct {
	a, b mgl64.Vec3
}

// expand removes every face the new support point can see and patches
// the resulting hole with new faces fanning from the boundary (the
// "horizon") to the support point. A horizon edge is exactly the edges
// that belonged to only one removed face; edges shared by two removed
// faces are interior to the hole and must not be rebuilt.
func (p *polytope) expand(support mgl64.Vec3) {
	var kept []face
	var horizon []edge
	edgeCount := make(map[[2][3]float64]int)
	edgeOf := make(map[[2][3]float64]edge)

	key := func(v mgl64.Vec3) [3]float64 { return [3]float64{v.X(), v.Y(), v.Z()} }
	normKey := func(a, b mgl64.Vec3) [2][3]float64 {
		ka, kb := key(a), key(b)
		if vecLess(ka, kb) {
			return [2][3]float64{ka, kb}
		}
		return [2][3]float64{kb, ka}
	}

	var visible []face
	for _, f := range p.faces {
		if f.normal.Dot(support.Sub(f.points[0])) > mathx.Epsilon {
			visible = append(visible, f)
		} else {
			kept = append(kept, f)
		}
	}
	if len(visible) == 0 {
		// Support point does not see any face; nothing to expand.
		return
	}

	for _, f := range visible {
		edges := [3]edge{{f.points[0], f.points[1]}, {f.points[1], f.points[2]}, {f.points[2], f.points[0]}}
		for _, e := range edges {
			k := normKey(e.a, e.b)
			edgeCount[k]++
			edgeOf[k] = e
		}
	}
	for k, count := range edgeCount {
		if count == 1 {
			horizon = append(horizon, edgeOf[k])
		}
	}

	for _, e := range horizon {
		kept = append(kept, newFace(e.a, e.b, support))
	}

	if len(kept) == 0 {
		// Degenerate: keep the old polytope rather than collapse to
		// nothing; the iteration cap will catch persistent failures.
		kept = p.faces
	}
	p.faces = kept
}

func vecLess(a, b [3]float64) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (p *polytope) closest() face {
	return p.faces[p.closestFaceIndex()]
}

// snapNormalToAxis zeroes near-zero components of a nearly-axis-aligned
// normal before renormalizing, avoiding tiny cross-talk between axes
// that numerical noise in the polytope expansion can introduce.
func snapNormalToAxis(n mgl64.Vec3) mgl64.Vec3 {
	zeroIfTiny := func(v float64) float64 {
		if math.Abs(v) < 1e-8 {
			return 0
		}
		return v
	}
	snapped := mgl64.Vec3{zeroIfTiny(n.X()), zeroIfTiny(n.Y()), zeroIfTiny(n.Z())}
	if snapped.LenSqr() < mathx.Epsilon {
		return n
	}
	return snapped.Normalize()
}
