package mathx

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerate is returned when a vector or quaternion is too close to
// zero to be normalized into a unit value.
var ErrDegenerate = errors.New("mathx: cannot normalize a near-zero value")

// UnitVec3 is a mgl64.Vec3 known to have unit length. The zero value is
// invalid; construct one with NewUnitVec3.
type UnitVec3 struct {
	v mgl64.Vec3
}

// NewUnitVec3 normalizes v, failing if its length is within Epsilon of zero.
func NewUnitVec3(v mgl64.Vec3) (UnitVec3, error) {
	length := v.Len()
	if length < Epsilon {
		return UnitVec3{}, ErrDegenerate
	}
	return UnitVec3{v: v.Mul(1.0 / length)}, nil
}

// Vec3 returns the underlying unit vector.
func (u UnitVec3) Vec3() mgl64.Vec3 { return u.v }

// UnitQuat is a mgl64.Quat known to have unit length, representing a
// pure rotation. The zero value is invalid; construct one with
// NewUnitQuat or IdentityQuat.
type UnitQuat struct {
	q mgl64.Quat
}

// IdentityQuat returns the identity rotation.
func IdentityQuat() UnitQuat {
	return UnitQuat{q: mgl64.QuatIdent()}
}

// NewUnitQuat normalizes q, failing if its length is within Epsilon of zero.
func NewUnitQuat(q mgl64.Quat) (UnitQuat, error) {
	length := math.Sqrt(q.Dot(q))
	if length < Epsilon {
		return UnitQuat{}, ErrDegenerate
	}
	return UnitQuat{q: mgl64.Quat{W: q.W / length, V: q.V.Mul(1 / length)}}, nil
}

// Quat returns the underlying unit quaternion.
func (u UnitQuat) Quat() mgl64.Quat { return u.q }

// Inverse returns the conjugate, which for a unit quaternion is also its
// multiplicative inverse.
func (u UnitQuat) Inverse() UnitQuat {
	return UnitQuat{q: u.q.Conjugate()}
}

// Mul composes two rotations, applying u first then other.
func (u UnitQuat) Mul(other UnitQuat) UnitQuat {
	return UnitQuat{q: other.q.Mul(u.q)}
}

// Rotate applies the rotation to v via the sandwich product q*v*q^-1,
// using mgl64's optimized cross-product expansion of that formula.
func (u UnitQuat) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	return u.q.Rotate(v)
}

// Integrate advances the rotation by angular velocity omega over dt using
// the quaternion derivative q_dot = 0.5 * [0, omega] * q, then renormalizes
// so the unit invariant survives the integration step.
func (u UnitQuat) Integrate(omega mgl64.Vec3, dt float64) UnitQuat {
	omegaQuat := mgl64.Quat{W: 0, V: omega}
	qDot := omegaQuat.Mul(u.q).Scale(0.5)
	next := u.q.Add(qDot.Scale(dt))
	normalized, err := NewUnitQuat(next)
	if err != nil {
		return u
	}
	return normalized
}
