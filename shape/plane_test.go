package shape

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/mathx"
)

func TestPlaneSupportLiesAtDistance(t *testing.T) {
	p := Plane{Normal: mgl64.Vec3{0, 1, 0}, Distance: 2}
	support := p.Support(mgl64.Vec3{0, 1, 0})
	if support.Y() != 2 {
		t.Errorf("Support() along the normal should sit at Distance, got y=%v", support.Y())
	}
}

func TestPlaneSupportIndicesFaceDirection(t *testing.T) {
	p := Plane{Normal: mgl64.Vec3{0, 1, 0}, Distance: 0}
	indices := p.SupportIndices(mgl64.Vec3{0, 1, 0})
	if len(indices) != 4 {
		t.Errorf("SupportIndices along the normal should return all 4 quad corners, got %d", len(indices))
	}
}

func TestPlaneZeroMass(t *testing.T) {
	p := Plane{Normal: mgl64.Vec3{0, 1, 0}, Distance: 0}
	if p.ComputeMass(5) != 0 {
		t.Errorf("Plane.ComputeMass() should always be 0, got %v", p.ComputeMass(5))
	}
}

func TestPlaneAABBFlattensAlongNormal(t *testing.T) {
	p := Plane{Normal: mgl64.Vec3{0, 1, 0}, Distance: 0}
	box := p.AABB(mathx.NewTransform(mgl64.Vec3{0, 0, 0}))
	if box.Min.Y() != 0 || box.Max.Y() != 0 {
		t.Errorf("AABB should be flat along the plane's normal axis, got min=%v max=%v", box.Min, box.Max)
	}
	if box.Max.X()-box.Min.X() < 100 {
		t.Errorf("AABB should span a large finite footprint in-plane, got %v", box)
	}
}
