package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/mathx"
)

// Cuboid is an axis-aligned (in local space) box defined by its half
// extents along each local axis.
type Cuboid struct {
	HalfExtents mgl64.Vec3
}

// corner returns the local-space position of corner index i, where bit 0
// selects the X sign, bit 1 the Y sign and bit 2 the Z sign.
func (c Cuboid) corner(i int) mgl64.Vec3 {
	sx, sy, sz := cornerSigns(i)
	return mgl64.Vec3{
		sx * c.HalfExtents.X(),
		sy * c.HalfExtents.Y(),
		sz * c.HalfExtents.Z(),
	}
}

func cornerSigns(i int) (sx, sy, sz float64) {
	sign := func(bit int) float64 {
		if i&(1<<uint(bit)) != 0 {
			return 1
		}
		return -1
	}
	return sign(0), sign(1), sign(2)
}

func axisSign(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

func (c Cuboid) Support(direction mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		axisSign(direction.X()) * c.HalfExtents.X(),
		axisSign(direction.Y()) * c.HalfExtents.Y(),
		axisSign(direction.Z()) * c.HalfExtents.Z(),
	}
}

// SupportIndices returns every corner co-extremal with direction: a
// single corner for a generic direction, two corners for an edge-aligned
// direction, and all four face corners when direction matches a face
// normal. An axis whose direction component is within Epsilon of zero is
// "free" and both of its signs are included.
func (c Cuboid) SupportIndices(direction mgl64.Vec3) []int {
	free := [3]bool{
		math.Abs(direction.X()) < mathx.Epsilon,
		math.Abs(direction.Y()) < mathx.Epsilon,
		math.Abs(direction.Z()) < mathx.Epsilon,
	}
	want := [3]float64{axisSign(direction.X()), axisSign(direction.Y()), axisSign(direction.Z())}

	var indices []int
	for i := 0; i < 8; i++ {
		sx, sy, sz := cornerSigns(i)
		if !free[0] && sx != want[0] {
			continue
		}
		if !free[1] && sy != want[1] {
			continue
		}
		if !free[2] && sz != want[2] {
			continue
		}
		indices = append(indices, i)
	}
	return indices
}

func (c Cuboid) Vertex(i int) mgl64.Vec3 {
	return c.corner(i)
}

func (c Cuboid) ComputeMass(density float64) float64 {
	volume := 8 * c.HalfExtents.X() * c.HalfExtents.Y() * c.HalfExtents.Z()
	return volume * density
}

func (c Cuboid) ComputeInertia(mass float64) mgl64.Mat3 {
	x, y, z := 2*c.HalfExtents.X(), 2*c.HalfExtents.Y(), 2*c.HalfExtents.Z()
	k := mass / 12.0
	ixx := k * (y*y + z*z)
	iyy := k * (x*x + z*z)
	izz := k * (x*x + y*y)
	return mgl64.Mat3{ixx, 0, 0, 0, iyy, 0, 0, 0, izz}
}

func (c Cuboid) AABB(t mathx.Transform) AABB {
	min := t.ToWorld(c.corner(0))
	max := min
	for i := 1; i < 8; i++ {
		p := t.ToWorld(c.corner(i))
		min = componentMin(min, p)
		max = componentMax(max, p)
	}
	return AABB{Min: min, Max: max}
}

func componentMin(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())}
}

func componentMax(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())}
}
