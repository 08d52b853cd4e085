// Package gjk implements the Gilbert-Johnson-Keerthi algorithm for
// convex-convex intersection testing: it evolves a simplex of up to
// four Minkowski-difference support points toward the origin, reducing
// the simplex to its closest feature (point, edge or face) each
// iteration via Voronoi-region case analysis.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the
//     Distance Between Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/mathx"
	"github.com/brightforge/rigidphys/minkowski"
)

// Simplex holds 1-4 points from the Minkowski difference. Points[Count-1]
// is the most recently added point; the order of the others changes as
// the simplex is reduced or its winding is flipped.
type Simplex struct {
	Points [4]mgl64.Vec3
	Count  int
}

// Run performs GJK between a and b, returning whether their shapes
// overlap and, when they do, the terminal tetrahedron simplex EPA needs
// to seed penetration-depth extraction. The simplex has fewer than four
// points only when a support point lands on the origin (the shapes just
// touch). maxIterations bounds the
// refinement loop; exhausting it without separating the shapes is
// treated as no-collision.
func Run(a, b *body.Body, maxIterations int) (bool, Simplex) {
	var simplex Simplex

	direction := b.Collision.Transform.Position.Sub(a.Collision.Transform.Position)
	if direction.LenSqr() < mathx.Epsilon {
		direction = mgl64.Vec3{1, 0, 0}
	}

	simplex.Points[0] = minkowski.Support(a, b, direction)
	simplex.Count = 1
	direction = simplex.Points[0].Mul(-1)

	if direction.LenSqr() < mathx.Epsilon*mathx.Epsilon {
		return true, simplex
	}

	for i := 0; i < maxIterations; i++ {
		newPoint := minkowski.Support(a, b, direction)
		if newPoint.Dot(direction) <= 0 {
			return false, simplex
		}

		simplex.Points[simplex.Count] = newPoint
		simplex.Count++

		if containsOrigin(&simplex, &direction) {
			return true, simplex
		}
	}

	return false, simplex
}

func containsOrigin(simplex *Simplex, direction *mgl64.Vec3) bool {
	switch simplex.Count {
	case 2:
		return line(simplex, direction)
	case 3:
		return triangle(simplex, direction)
	case 4:
		return tetrahedron(simplex, direction)
	}
	return false
}

// line handles the two-point simplex, splitting the origin's position
// into the Voronoi region of point A alone or of the segment AB.
func line(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[1]
	b := simplex.Points[0]
	ab := b.Sub(a)
	ao := a.Mul(-1)

	if ab.LenSqr() < mathx.Epsilon {
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return ao.LenSqr() < mathx.Epsilon
	}

	if ab.Dot(ao) <= 0 {
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
		return false
	}

	abPerp := ab.Cross(ao).Cross(ab)
	if abPerp.LenSqr() < mathx.Epsilon {
		// The origin lies on the segment's line: search perpendicular to
		// it so the simplex can still grow into a tetrahedron.
		t1, _ := mathx.TangentBasis(ab.Normalize())
		*direction = t1
		return false
	}
	*direction = abPerp
	return false
}

// triangle handles the three-point simplex, reducing to an edge when
// the origin lies outside it or flipping winding when the origin is
// behind the face, since the tetrahedron case needs outward normals.
func triangle(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[2]
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)

	if abc.LenSqr() < mathx.Epsilon {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		return line(simplex, direction)
	}

	abPerp := ab.Cross(abc)
	if abPerp.Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = ab.Cross(ao).Cross(ab)
		return false
	}

	acPerp := abc.Cross(ac)
	if acPerp.Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = ac.Cross(ao).Cross(ac)
		return false
	}

	if abc.Dot(ao) > 0 {
		*direction = abc
	} else {
		simplex.Points[0] = a
		simplex.Points[1] = c
		simplex.Points[2] = b
		simplex.Count = 3
		*direction = abc.Mul(-1)
	}
	return false
}

// tetrahedron is the case that terminates GJK with a collision (apart
// from a support point landing exactly on the origin): it tests which,
// if any, of the three new faces the origin
// lies outside of, reducing to that face as a triangle otherwise.
func tetrahedron(simplex *Simplex, direction *mgl64.Vec3) bool {
	a := simplex.Points[3]
	b := simplex.Points[2]
	c := simplex.Points[1]
	d := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ad := d.Sub(a)
	ao := a.Mul(-1)

	abc := ab.Cross(ac)
	if abc.Dot(ad) > 0 {
		abc = abc.Mul(-1)
	}
	acd := ac.Cross(ad)
	if acd.Dot(ab) > 0 {
		acd = acd.Mul(-1)
	}
	adb := ad.Cross(ab)
	if adb.Dot(ac) > 0 {
		adb = adb.Mul(-1)
	}

	if abc.LenSqr() < mathx.Epsilon || acd.LenSqr() < mathx.Epsilon || adb.LenSqr() < mathx.Epsilon {
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}

	if abc.Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}
	if acd.Dot(ao) > 0 {
		simplex.Points[0] = d
		simplex.Points[1] = c
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}
	if adb.Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = d
		simplex.Points[2] = a
		simplex.Count = 3
		return triangle(simplex, direction)
	}

	return true
}
