package manifold

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/mathx"
	"github.com/brightforge/rigidphys/shape"
)

func boxAt(position mgl64.Vec3, halfExtents mgl64.Vec3) *body.Body {
	collision := body.CollisionData{Shape: shape.Cuboid{HalfExtents: halfExtents}, Transform: mathx.NewTransform(position)}
	return body.NewRigidBody(collision, body.Default, 1, body.Material{})
}

// Two cubes of half-extent 1 stacked with the top resting 0.1 units into
// the bottom produce a face-face contact: a 4-point manifold near the
// shared y=1 plane.
func TestBuildFaceFaceManifoldHasFourPoints(t *testing.T) {
	bottom := boxAt(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})
	top := boxAt(mgl64.Vec3{0, 1.9, 0}, mgl64.Vec3{1, 1, 1})

	points := Build(bottom, top, mgl64.Vec3{0, 1, 0}, 0.1)
	if len(points) != 4 {
		t.Fatalf("expected a 4-point face-face manifold, got %d: %v", len(points), points)
	}
	for _, p := range points {
		if p.Penetration < 0 {
			t.Errorf("penetration should never be negative, got %v", p.Penetration)
		}
	}
}

func TestBuildSphereContactIsSinglePoint(t *testing.T) {
	a := body.NewRigidBody(body.CollisionData{Shape: shape.Sphere{Radius: 1}, Transform: mathx.NewTransform(mgl64.Vec3{0, 0, 0})}, body.Default, 1, body.Material{})
	b := body.NewRigidBody(body.CollisionData{Shape: shape.Sphere{Radius: 1}, Transform: mathx.NewTransform(mgl64.Vec3{1.5, 0, 0})}, body.Default, 1, body.Material{})

	points := Build(a, b, mgl64.Vec3{1, 0, 0}, 0.5)
	if len(points) != 1 {
		t.Fatalf("sphere-sphere contact should produce exactly one witness point, got %d", len(points))
	}
	if points[0].Penetration != 0.5 {
		t.Errorf("single-point penetration should equal the EPA depth, got %v", points[0].Penetration)
	}
}

func TestClipAgainstPlaneKeepsInsideHalf(t *testing.T) {
	square := []mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}
	clipped := clipAgainstPlane(square, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0})
	for _, p := range clipped {
		if p.X() < -mathx.Epsilon {
			t.Errorf("clipAgainstPlane left a point outside the kept half-space: %v", p)
		}
	}
	if len(clipped) == 0 {
		t.Errorf("clipping a square straddling the plane should keep some points")
	}
}

func TestReduceToFourDedupesCorners(t *testing.T) {
	square := []mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}, {0, 0, 0}}
	result := reduceToFour(square, mgl64.Vec3{0, 0, 1})
	if len(result) > 4 {
		t.Errorf("reduceToFour should never return more than 4 points, got %d", len(result))
	}
}
