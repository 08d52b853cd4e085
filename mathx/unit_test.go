package mathx

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vec3ApproxEqual(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

func TestNewUnitVec3(t *testing.T) {
	tests := []struct {
		name    string
		v       mgl64.Vec3
		wantErr bool
	}{
		{name: "ordinary vector", v: mgl64.Vec3{3, 0, 0}, wantErr: false},
		{name: "already unit", v: mgl64.Vec3{0, 1, 0}, wantErr: false},
		{name: "near-zero vector", v: mgl64.Vec3{1e-10, 0, 0}, wantErr: true},
		{name: "exact zero", v: mgl64.Vec3{0, 0, 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUnitVec3(tt.v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewUnitVec3(%v) error = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
			if err == nil {
				if math.Abs(u.Vec3().Len()-1.0) > 1e-9 {
					t.Errorf("result not unit length: %v", u.Vec3().Len())
				}
			}
		})
	}
}

func TestUnitQuatInverseIsConjugate(t *testing.T) {
	q, err := NewUnitQuat(mgl64.Quat{W: 1, V: mgl64.Vec3{1, 2, 3}})
	if err != nil {
		t.Fatalf("NewUnitQuat: %v", err)
	}
	roundTrip := q.Mul(q.Inverse())
	identity := IdentityQuat()
	if !vec3ApproxEqual(roundTrip.Rotate(mgl64.Vec3{1, 0, 0}), identity.Rotate(mgl64.Vec3{1, 0, 0}), 1e-9) {
		t.Errorf("q * q^-1 did not behave as identity: rotated %v", roundTrip.Rotate(mgl64.Vec3{1, 0, 0}))
	}
}

func TestUnitQuatRotateIdentity(t *testing.T) {
	ident := IdentityQuat()
	v := mgl64.Vec3{1, 2, 3}
	got := ident.Rotate(v)
	if !vec3ApproxEqual(got, v, 1e-12) {
		t.Errorf("identity rotation changed vector: got %v, want %v", got, v)
	}
}

func TestUnitQuatIntegratePreservesUnitLength(t *testing.T) {
	q := IdentityQuat()
	omega := mgl64.Vec3{0.2, 1.5, -0.7}
	for i := 0; i < 50; i++ {
		q = q.Integrate(omega, 0.016)
	}
	length := math.Sqrt(q.Quat().Dot(q.Quat()))
	if math.Abs(length-1.0) > 1e-9 {
		t.Errorf("quaternion drifted off unit length after repeated integration: %v", length)
	}
}

func TestUnitQuatIntegrateZeroOmegaIsNoop(t *testing.T) {
	q := IdentityQuat()
	next := q.Integrate(mgl64.Vec3{0, 0, 0}, 0.1)
	if !vec3ApproxEqual(next.Rotate(mgl64.Vec3{1, 0, 0}), mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("zero angular velocity changed the rotation")
	}
}

func TestApproxZero(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{0, true},
		{Epsilon / 2, true},
		{-Epsilon / 2, true},
		{1, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := ApproxZero(tt.v); got != tt.want {
			t.Errorf("ApproxZero(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
