package epa

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/gjk"
	"github.com/brightforge/rigidphys/mathx"
	"github.com/brightforge/rigidphys/shape"
)

func sphereAt(position mgl64.Vec3, radius float64) *body.Body {
	collision := body.CollisionData{Shape: shape.Sphere{Radius: radius}, Transform: mathx.NewTransform(position)}
	return body.NewRigidBody(collision, body.Default, 1, body.Material{})
}

func TestRunRecoversSpherePenetrationDepth(t *testing.T) {
	a := sphereAt(mgl64.Vec3{0, 0, 0}, 1)
	b := sphereAt(mgl64.Vec3{1.5, 0, 0}, 1)

	collided, simplex := gjk.Run(a, b, 50)
	if !collided {
		t.Fatalf("spheres should overlap (distance 1.5 < sum of radii 2)")
	}

	result, err := Run(a, b, simplex, 50)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}

	wantDepth := 0.5 // 2*radius - distance
	if math.Abs(result.Depth-wantDepth) > 0.05 {
		t.Errorf("Depth = %v, want approximately %v", result.Depth, wantDepth)
	}
	if result.Normal.Len() < 1-1e-6 || result.Normal.Len() > 1+1e-6 {
		t.Errorf("Normal should be unit length, got %v (len %v)", result.Normal, result.Normal.Len())
	}
}

func TestRunNormalPointsFromAToB(t *testing.T) {
	a := sphereAt(mgl64.Vec3{0, 0, 0}, 1)
	b := sphereAt(mgl64.Vec3{1.5, 0, 0}, 1)

	collided, simplex := gjk.Run(a, b, 50)
	if !collided {
		t.Fatalf("spheres should overlap")
	}
	result, err := Run(a, b, simplex, 50)
	if err != nil {
		t.Fatalf("Run returned an error: %v", err)
	}
	if result.Normal.X() <= 0 {
		t.Errorf("normal should point roughly from A toward B (positive X), got %v", result.Normal)
	}
}

func TestRunDegenerateSimplexFallsBackToCenterSeparation(t *testing.T) {
	a := sphereAt(mgl64.Vec3{0, 0, 0}, 1)
	b := sphereAt(mgl64.Vec3{1, 0, 0}, 1)
	degenerate := gjk.Simplex{Count: 1, Points: [4]mgl64.Vec3{{0, 0, 0}}}

	result, err := Run(a, b, degenerate, 50)
	if err != nil {
		t.Fatalf("degenerate simplex should not error: %v", err)
	}
	if result.Depth <= 0 {
		t.Errorf("degenerate result should still report a positive depth, got %v", result.Depth)
	}
}
