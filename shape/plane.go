package shape

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/mathx"
)

// planeHalfExtent is the finite half-size used to stand in for an
// infinite plane when computing an AABB or a contact feature. Narrow
// phase only ever queries the plane near the other body, so a large but
// finite footprint is indistinguishable from a true half-space.
const planeHalfExtent = 10000.0

// Plane is a static half-space boundary, typically used as ground or
// wall geometry. Normal points away from the solid side, in local space.
type Plane struct {
	Normal   mgl64.Vec3
	Distance float64
}

func (p Plane) Support(direction mgl64.Vec3) mgl64.Vec3 {
	t1, t2 := mathx.TangentBasis(p.Normal)
	base := p.Normal.Mul(p.Distance)
	sx := axisSign(direction.Dot(t1))
	sz := axisSign(direction.Dot(t2))
	if direction.Dot(p.Normal) > 0 {
		base = base.Add(p.Normal.Mul(0))
	}
	return base.Add(t1.Mul(sx * planeHalfExtent)).Add(t2.Mul(sz * planeHalfExtent))
}

// SupportIndices treats the plane's finite stand-in footprint as a
// single quad face: all four corners are co-extremal whenever direction
// has no in-plane preference, otherwise just the two on the favored edge
// or the single favored corner.
func (p Plane) SupportIndices(direction mgl64.Vec3) []int {
	t1, t2 := mathx.TangentBasis(p.Normal)
	d1, d2 := direction.Dot(t1), direction.Dot(t2)
	free1 := absf(d1) < mathx.Epsilon
	free2 := absf(d2) < mathx.Epsilon
	want1, want2 := axisSign(d1), axisSign(d2)

	var indices []int
	for i := 0; i < 4; i++ {
		s1, s2 := quadSigns(i)
		if !free1 && s1 != want1 {
			continue
		}
		if !free2 && s2 != want2 {
			continue
		}
		indices = append(indices, i)
	}
	return indices
}

func quadSigns(i int) (s1, s2 float64) {
	sign := func(bit int) float64 {
		if i&(1<<uint(bit)) != 0 {
			return 1
		}
		return -1
	}
	return sign(0), sign(1)
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (p Plane) Vertex(i int) mgl64.Vec3 {
	t1, t2 := mathx.TangentBasis(p.Normal)
	s1, s2 := quadSigns(i)
	base := p.Normal.Mul(p.Distance)
	return base.Add(t1.Mul(s1 * planeHalfExtent)).Add(t2.Mul(s2 * planeHalfExtent))
}

// ComputeMass always reports zero mass: planes are static-only
// geometry and are never attached to a RigidExtra.
func (p Plane) ComputeMass(density float64) float64 {
	return 0
}

func (p Plane) ComputeInertia(mass float64) mgl64.Mat3 {
	return mgl64.Mat3{}
}

func (p Plane) AABB(t mathx.Transform) AABB {
	worldNormal := t.DirectionToWorld(p.Normal)
	center := t.ToWorld(p.Normal.Mul(p.Distance))
	extent := mgl64.Vec3{planeHalfExtent, planeHalfExtent, planeHalfExtent}
	// Flatten the AABB along the plane's own normal so it does not
	// swallow the whole world in that axis.
	flatten := func(v float64, n float64) float64 {
		if absf(n) > 0.9 {
			return 0
		}
		return v
	}
	ex := flatten(extent.X(), worldNormal.X())
	ey := flatten(extent.Y(), worldNormal.Y())
	ez := flatten(extent.Z(), worldNormal.Z())
	half := mgl64.Vec3{ex, ey, ez}
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}
