package body

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/brightforge/rigidphys/mathx"
	"github.com/brightforge/rigidphys/shape"
)

// BodyDef is the external body-definition record World.CreateRigidBody
// and World.CreateFixedBody accept: a shape plus the fields a caller
// may leave at their zero value to get a sane default instead of an
// inert or degenerate body.
type BodyDef struct {
	Shape       shape.Shape
	Translation mgl64.Vec3
	Rotation    mathx.UnitQuat

	// Rigid-only fields; ignored by NewFixedFromDef.
	Mass            float64
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3
	Friction        float64
	Restitution     float64

	Group CollisionGroup
}

// Normalize fills every field a caller left at its zero value with the
// spec's default: identity rotation, mass 1.0, friction coefficient
// 0.6, restitution coefficient 0.3. Group's zero value already is
// Default, so it needs no substitution.
func (d BodyDef) Normalize() BodyDef {
	if d.Rotation == (mathx.UnitQuat{}) {
		d.Rotation = mathx.IdentityQuat()
	}
	if d.Mass == 0 {
		d.Mass = 1.0
	}
	if d.Friction == 0 {
		d.Friction = 0.6
	}
	if d.Restitution == 0 {
		d.Restitution = 0.3
	}
	return d
}

// NewFromDef builds a dynamic rigid body directly from def's mass,
// rather than deriving mass from the shape's volume and a density as
// NewRigidBody does. This is the constructor the spec's
// create_rigid_body(def) describes.
func NewFromDef(def BodyDef) *Body {
	def = def.Normalize()

	inertiaLocal := def.Shape.ComputeInertia(def.Mass)
	extra := &RigidExtra{
		Mass:                def.Mass,
		InverseMass:         1.0 / def.Mass,
		InertiaLocal:        inertiaLocal,
		InverseInertiaLocal: safeInvert(inertiaLocal),
		Material:            Material{Friction: def.Friction, Restitution: def.Restitution},
	}
	extra.Motion.Velocity = def.Velocity
	extra.Motion.AngularVelocity = def.AngularVelocity

	transform := mathx.NewTransform(def.Translation)
	transform.SetRotation(def.Rotation)

	return &Body{
		ID:        uuid.New(),
		Group:     def.Group,
		Collision: CollisionData{Shape: def.Shape, Transform: transform},
		Rigid:     extra,
	}
}

// NewFixedFromDef builds an immovable body from def's shape,
// translation, rotation and group; def's mass/velocity/material fields
// are meaningless for a fixed body and are ignored.
func NewFixedFromDef(def BodyDef) *Body {
	def = def.Normalize()
	transform := mathx.NewTransform(def.Translation)
	transform.SetRotation(def.Rotation)

	return &Body{
		ID:        uuid.New(),
		Group:     def.Group,
		Collision: CollisionData{Shape: def.Shape, Transform: transform},
	}
}
