package epa

import "github.com/go-gl/mathgl/mgl64"

// face is one triangular face of the expanding polytope, with its
// outward normal and signed distance from the origin already cached.
type face struct {
	points [3]mgl64.Vec3
	normal mgl64.Vec3
	dist   float64
}

func newFace(a, b, c mgl64.Vec3) face {
	normal := b.Sub(a).Cross(c.Sub(a))
	length := normal.Len()
	if length > 0 {
		normal = normal.Mul(1 / length)
	}
	return face{points: [3]mgl64.Vec3{a, b, c}, normal: normal, dist: normal.Dot(a)}
}
