package shape

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/errs"
)

func cubePoints(h float64) []mgl64.Vec3 {
	var points []mgl64.Vec3
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				points = append(points, mgl64.Vec3{sx * h, sy * h, sz * h})
			}
		}
	}
	return points
}

func TestNewPolyhedronRejectsTooFewPoints(t *testing.T) {
	_, err := NewPolyhedron([]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	if !errs.Is(err, errs.InvalidShape) {
		t.Fatalf("expected InvalidShape for a 3-point set, got %v", err)
	}
}

func TestNewPolyhedronRejectsCoplanarPoints(t *testing.T) {
	points := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	_, err := NewPolyhedron(points)
	if !errs.Is(err, errs.InvalidShape) {
		t.Fatalf("expected InvalidShape for coplanar points, got %v", err)
	}
}

func TestNewPolyhedronCubeSupportMatchesCuboid(t *testing.T) {
	poly, err := NewPolyhedron(cubePoints(1))
	if err != nil {
		t.Fatalf("NewPolyhedron: %v", err)
	}
	cuboid := Cuboid{HalfExtents: mgl64.Vec3{1, 1, 1}}

	directions := []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {1, 1, 1}, {1, -1, 0.5}}
	for _, dir := range directions {
		got := poly.Support(dir)
		want := cuboid.Support(dir)
		if got.Sub(want).Len() > 1e-9 {
			t.Errorf("Support(%v) = %v, want %v (matching an axis-aligned cube)", dir, got, want)
		}
	}
}

func TestNewPolyhedronCubeMassMatchesVolume(t *testing.T) {
	poly, err := NewPolyhedron(cubePoints(1))
	if err != nil {
		t.Fatalf("NewPolyhedron: %v", err)
	}
	mass := poly.ComputeMass(1)
	want := 8.0 // a 2x2x2 cube has volume 8
	if math.Abs(mass-want) > 1e-6 {
		t.Errorf("ComputeMass() = %v, want %v", mass, want)
	}
}

func TestNewPolyhedronCubeInertiaIsotropic(t *testing.T) {
	poly, err := NewPolyhedron(cubePoints(1))
	if err != nil {
		t.Fatalf("NewPolyhedron: %v", err)
	}
	mass := poly.ComputeMass(1)
	inertia := poly.ComputeInertia(mass)
	if math.Abs(inertia[0]-inertia[4]) > 1e-6 || math.Abs(inertia[4]-inertia[8]) > 1e-6 {
		t.Errorf("a cube centered on the origin should have isotropic inertia, got %v", inertia)
	}
	offDiagonal := []float64{inertia[1], inertia[2], inertia[3], inertia[5], inertia[6], inertia[7]}
	for _, v := range offDiagonal {
		if math.Abs(v) > 1e-6 {
			t.Errorf("a cube's inertia tensor should have zero off-diagonal terms, got %v", inertia)
		}
	}
}

func TestNewPolyhedronExtraInteriorPointsDoNotBreakHull(t *testing.T) {
	points := append(cubePoints(1), mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0.1, -0.2})
	poly, err := NewPolyhedron(points)
	if err != nil {
		t.Fatalf("NewPolyhedron: %v", err)
	}
	got := poly.Support(mgl64.Vec3{1, 0, 0})
	if math.Abs(got.X()-1) > 1e-9 {
		t.Errorf("interior points should not affect the hull's support point, got %v", got)
	}
}
