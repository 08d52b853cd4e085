// Package constraint implements the contact constraint solver: a
// Gauss-Seidel sweep over a Linear Complementarity Problem assembled
// from every contact manifold in a step, with Baumgarte position
// stabilization baked into each row's right-hand side and a Coulomb
// friction cone enforced via a per-row projection descriptor rather
// than a stored closure, so solver state stays plain data.
package constraint

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/manifold"
)

// Contact is one narrow-phase result ready for the solver: two bodies,
// the normal pointing from A to B, and the clipped witness points.
type Contact struct {
	BodyA, BodyB *body.Body
	Normal       mgl64.Vec3
	Points       []manifold.Point
}

// CombineRestitution and CombineFriction expose the material-mixing
// rules the row builder uses, kept here so callers assembling a Contact
// do not need to reach into the body package directly.
func CombineRestitution(a, b *body.Body) float64 {
	ra, rb := materialOf(a), materialOf(b)
	return body.CombineRestitution(ra, rb)
}

func CombineFriction(a, b *body.Body) float64 {
	fa, fb := materialOf(a), materialOf(b)
	return body.CombineFriction(fa, fb)
}

func materialOf(b *body.Body) body.Material {
	if b.IsFixed() {
		return body.Material{}
	}
	return b.Rigid.Material
}
