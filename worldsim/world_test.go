package worldsim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/config"
	"github.com/brightforge/rigidphys/shape"
)

func newTestWorld() *World {
	cfg := config.Default()
	cfg.Gravity = mgl64.Vec3{0, 0, 0}
	return New(cfg)
}

// S1-style: two cubes closing head-on. After enough steps to close the
// gap, a contact should appear with its normal roughly aligned with the
// approach axis.
func TestStepTwoCubesCollideHeadOn(t *testing.T) {
	w := newTestWorld()
	cube := shape.Cuboid{HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5}}

	w.CreateRigidBody(body.BodyDef{
		Shape: cube, Translation: mgl64.Vec3{0, 0, 3},
		Velocity: mgl64.Vec3{0, 0, -1}, Restitution: 1,
	})
	w.CreateRigidBody(body.BodyDef{
		Shape: cube, Translation: mgl64.Vec3{0, 0, -3},
		Velocity: mgl64.Vec3{0, 0, 1}, Restitution: 1,
	})

	var contacts []Contact
	for i := 0; i < 120; i++ {
		contacts = w.Step(0.05)
		if len(contacts) > 0 {
			break
		}
	}

	if len(contacts) == 0 {
		t.Fatalf("expected the approaching cubes to generate a contact within 120 steps")
	}
	if math.Abs(contacts[0].Normal.Z()) < 0.9 {
		t.Errorf("contact normal should be roughly aligned with the z approach axis, got %v", contacts[0].Normal)
	}
}

// S2: two spheres that miss each other by about 0.05 should never
// produce a contact.
func TestStepSphereNearMissNoContacts(t *testing.T) {
	w := newTestWorld()
	sphere := shape.Sphere{Radius: 2.5}

	w.CreateRigidBody(body.BodyDef{Shape: sphere, Translation: mgl64.Vec3{-0.05, -0.05, 0}})
	w.CreateRigidBody(body.BodyDef{Shape: sphere, Translation: mgl64.Vec3{5, 0, 0}})

	contacts := w.Step(0.05)
	if len(contacts) != 0 {
		t.Errorf("expected zero contacts for a near-miss pair, got %d", len(contacts))
	}
}

// S3-style: two overlapping spheres along the 3-4-5 direction, contact
// normal should point along that direction.
func TestStepSphereOverlapContactNormal(t *testing.T) {
	w := newTestWorld()
	sphere := shape.Sphere{Radius: 2.5}

	w.CreateRigidBody(body.BodyDef{Shape: sphere, Translation: mgl64.Vec3{0, 0, 0}})
	w.CreateRigidBody(body.BodyDef{Shape: sphere, Translation: mgl64.Vec3{4, 3, 0}})

	contacts := w.Step(0.05)
	if len(contacts) != 1 {
		t.Fatalf("expected exactly one contact for overlapping spheres, got %d", len(contacts))
	}
	wantNormal := mgl64.Vec3{0.8, 0.6, 0}
	if contacts[0].Normal.Sub(wantNormal).Len() > 0.05 {
		t.Errorf("Normal = %v, want approximately %v", contacts[0].Normal, wantNormal)
	}
}

// S4: a unit cube resting on a fixed floor should settle near its
// starting height rather than sinking through or flying off.
func TestStepRestingStackStaysNearStartingHeight(t *testing.T) {
	cfg := config.Default()
	w := New(cfg)
	floor := shape.Cuboid{HalfExtents: mgl64.Vec3{10, 0.5, 10}}
	cube := shape.Cuboid{HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5}}

	w.CreateFixedBody(body.BodyDef{Shape: floor, Translation: mgl64.Vec3{0, 0, 0}})
	hc := w.CreateRigidBody(body.BodyDef{
		Shape: cube, Translation: mgl64.Vec3{0, 1.001, 0},
		Friction: 0.5,
	})

	for i := 0; i < 100; i++ {
		w.Step(1.0 / 60.0)
	}

	cubeBody, _ := w.Space.Resolve(hc)
	y := cubeBody.Collision.Transform.Position.Y()
	if y < 0.9 || y > 1.1 {
		t.Errorf("resting cube settled at y=%v, want roughly within [0.9, 1.1]", y)
	}
}

// S5: a cube resting on an inclined plane should drift downslope
// rather than staying put or falling straight through.
func TestStepInclinedPlaneDriftsDownslope(t *testing.T) {
	cfg := config.Default()
	w := New(cfg)

	// Tilt the ground plane's normal 20 degrees off vertical in x, so a
	// resting body on it feels a sideways component of gravity.
	angle := 20.0 * math.Pi / 180.0
	tiltedNormal := mgl64.Vec3{math.Sin(angle), math.Cos(angle), 0}
	plane := shape.Plane{Normal: tiltedNormal, Distance: 0}
	cube := shape.Cuboid{HalfExtents: mgl64.Vec3{0.25, 0.25, 0.25}}

	w.CreateFixedBody(body.BodyDef{Shape: plane})
	hc := w.CreateRigidBody(body.BodyDef{Shape: cube, Translation: tiltedNormal.Mul(0.3)})

	start, _ := w.Space.Resolve(hc)
	startX := start.Collision.Transform.Position.X()

	for i := 0; i < 180; i++ {
		w.Step(1.0 / 60.0)
	}

	end, _ := w.Space.Resolve(hc)
	endX := end.Collision.Transform.Position.X()

	// The plane's equation is n.p = 0 with n tilted toward +x, so the
	// surface descends as x increases and gravity's tangential
	// component should carry the cube downslope in that direction.
	if endX <= startX {
		t.Errorf("cube on an incline should drift downslope (x increasing), startX=%v endX=%v", startX, endX)
	}
}

// S6: a fixed body's transform never changes across any number of steps.
func TestStepFixedBodyNeverMoves(t *testing.T) {
	cfg := config.Default()
	w := New(cfg)
	floor := shape.Cuboid{HalfExtents: mgl64.Vec3{10, 0.5, 10}}
	hf := w.CreateFixedBody(body.BodyDef{Shape: floor, Translation: mgl64.Vec3{0, -0.5, 0}})
	w.CreateRigidBody(body.BodyDef{Shape: shape.Sphere{Radius: 0.5}, Translation: mgl64.Vec3{0, 5, 0}})

	before, _ := w.Space.Resolve(hf)
	startPos := before.Collision.Transform.Position

	for i := 0; i < 50; i++ {
		w.Step(1.0 / 60.0)
	}

	after, _ := w.Space.Resolve(hf)
	if after.Collision.Transform.Position != startPos {
		t.Errorf("fixed body moved from %v to %v", startPos, after.Collision.Transform.Position)
	}
}

func TestHandlesIssuedToCallerResolveAfterStep(t *testing.T) {
	w := newTestWorld()
	h := w.CreateRigidBody(body.BodyDef{Shape: shape.Sphere{Radius: 1}})
	w.Step(0.016)
	if _, ok := w.Space.Resolve(h); !ok {
		t.Errorf("a handle issued before Step should still resolve afterward")
	}
}

func TestFindBodyAndRemoveBody(t *testing.T) {
	w := newTestWorld()
	h := w.CreateRigidBody(body.BodyDef{Shape: shape.Sphere{Radius: 1}})
	b, _ := w.Space.Resolve(h)

	found, ok := w.FindBody(b.ID)
	if !ok || found != h {
		t.Errorf("FindBody() = (%v, %v), want (%v, true)", found, ok, h)
	}

	if !w.RemoveBody(h) {
		t.Fatalf("RemoveBody() should succeed for a live handle")
	}
	if _, ok := w.FindBody(b.ID); ok {
		t.Errorf("FindBody() should fail once the body has been removed")
	}
}

func TestCreateRigidBodyAppliesSpecDefaults(t *testing.T) {
	w := newTestWorld()
	h := w.CreateRigidBody(body.BodyDef{Shape: shape.Sphere{Radius: 1}})
	b, _ := w.Space.Resolve(h)

	if b.Rigid.Mass != 1.0 {
		t.Errorf("default Mass = %v, want 1.0", b.Rigid.Mass)
	}
	if b.Rigid.Material.Friction != 0.6 {
		t.Errorf("default Friction = %v, want 0.6", b.Rigid.Material.Friction)
	}
	if b.Rigid.Material.Restitution != 0.3 {
		t.Errorf("default Restitution = %v, want 0.3", b.Rigid.Material.Restitution)
	}
	if b.Group != body.Default {
		t.Errorf("default Group = %v, want body.Default", b.Group)
	}
}
