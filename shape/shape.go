// Package shape implements the convex collision primitives: sphere,
// cuboid, plane (used for fixed ground geometry) and a general convex
// polyhedron built from a point set via an incremental hull construction.
package shape

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/mathx"
)

// Shape is the support-map abstraction every collision primitive
// implements. Narrow-phase code never inspects shape geometry directly;
// it only ever asks for a support point or the set of vertices that are
// co-extremal along a direction.
type Shape interface {
	// Support returns the point of the shape (in the shape's local
	// space) furthest along direction.
	Support(direction mgl64.Vec3) mgl64.Vec3

	// SupportIndices returns the indices of every local-space vertex
	// that is co-extremal along direction, within mathx.Epsilon. For a
	// vertex this is one index; for an edge, two; for a face, all of
	// its corners. This is what lets the contact manifold builder clip
	// a face against a face instead of a single GJK witness point.
	SupportIndices(direction mgl64.Vec3) []int

	// Vertex returns the local-space position of vertex i, as named by
	// SupportIndices.
	Vertex(i int) mgl64.Vec3

	// ComputeMass returns the mass of the shape at the given density.
	ComputeMass(density float64) float64

	// ComputeInertia returns the local-space inertia tensor for a
	// shape of the given mass.
	ComputeInertia(mass float64) mgl64.Mat3

	// AABB returns the shape's axis-aligned bounding box once placed at
	// the given transform.
	AABB(t mathx.Transform) AABB
}

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max mgl64.Vec3
}

// Overlaps reports whether two AABBs intersect, inclusive of touching.
func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X() &&
		a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y() &&
		a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z()
}

// ContainsPoint reports whether point lies within the box.
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}
