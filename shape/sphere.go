package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/mathx"
)

// Sphere is a convex shape of constant radius about the local origin.
type Sphere struct {
	Radius float64
}

func (s Sphere) Support(direction mgl64.Vec3) mgl64.Vec3 {
	length := direction.Len()
	if length < mathx.Epsilon {
		return mgl64.Vec3{s.Radius, 0, 0}
	}
	return direction.Mul(s.Radius / length)
}

// SupportIndices always returns the single synthetic vertex 0: a sphere
// has no flat features, so its support is always a single point.
func (s Sphere) SupportIndices(direction mgl64.Vec3) []int {
	return []int{0}
}

func (s Sphere) Vertex(i int) mgl64.Vec3 {
	return mgl64.Vec3{0, 0, 0}
}

func (s Sphere) ComputeMass(density float64) float64 {
	return (4.0 / 3.0) * math.Pi * s.Radius * s.Radius * s.Radius * density
}

func (s Sphere) ComputeInertia(mass float64) mgl64.Mat3 {
	i := 0.4 * mass * s.Radius * s.Radius
	return mgl64.Mat3{i, 0, 0, 0, i, 0, 0, 0, i}
}

func (s Sphere) AABB(t mathx.Transform) AABB {
	r := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	return AABB{Min: t.Position.Sub(r), Max: t.Position.Add(r)}
}
