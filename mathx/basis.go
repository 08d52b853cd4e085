package mathx

import "github.com/go-gl/mathgl/mgl64"

// TangentBasisThreshold picks which seed axis TangentBasis uses to avoid
// a near-parallel cross product.
const TangentBasisThreshold = 0.9

// TangentBasis builds two vectors orthogonal to normal and to each other,
// used to project a contact manifold onto a stable 2D clipping frame.
func TangentBasis(normal mgl64.Vec3) (t1, t2 mgl64.Vec3) {
	var seed mgl64.Vec3
	if absf(normal.X()) > TangentBasisThreshold {
		seed = mgl64.Vec3{0, 1, 0}
	} else {
		seed = mgl64.Vec3{1, 0, 0}
	}
	t1 = seed.Sub(normal.Mul(normal.Dot(seed))).Normalize()
	t2 = normal.Cross(t1)
	return t1, t2
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
