// Package body defines the collision/dynamics record every other
// package operates on: a single Body type that is fixed when its Rigid
// field is nil and dynamic otherwise, unifying the several competing
// body representations (rigid_body, fixed_body, dynamic_body) the
// original source kept as separate types.
package body

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
)

// RigidExtra holds everything a fixed body does not need: mass,
// inertia, material and motion state. A Body with a nil RigidExtra has
// infinite mass and never moves.
type RigidExtra struct {
	Mass                float64
	InverseMass         float64
	InertiaLocal        mgl64.Mat3
	InverseInertiaLocal mgl64.Mat3
	Material            Material
	Motion              Motion

	forceAccum  mgl64.Vec3
	torqueAccum mgl64.Vec3
}

// Body is a single physics object: a collidable shape at a transform,
// a collision group, and optionally mass/motion state that makes it
// move under forces and impulses.
type Body struct {
	ID        uuid.UUID
	Group     CollisionGroup
	Collision CollisionData

	Rigid *RigidExtra

	Sleeping   bool
	sleepTimer float64
}

// NewFixedBody creates an immovable body: infinite mass, never
// integrated, still fully collidable.
func NewFixedBody(collision CollisionData, group CollisionGroup) *Body {
	return &Body{
		ID:        uuid.New(),
		Group:     group,
		Collision: collision,
	}
}

// NewRigidBody creates a dynamic body, deriving mass and inertia from
// the shape at the given density.
func NewRigidBody(collision CollisionData, group CollisionGroup, density float64, material Material) *Body {
	mass := collision.Shape.ComputeMass(density)
	inertiaLocal := collision.Shape.ComputeInertia(mass)
	extra := &RigidExtra{
		Mass:                mass,
		InverseMass:         1.0 / mass,
		InertiaLocal:        inertiaLocal,
		InverseInertiaLocal: safeInvert(inertiaLocal),
		Material:            material,
	}
	return &Body{
		ID:        uuid.New(),
		Group:     group,
		Collision: collision,
		Rigid:     extra,
	}
}

func safeInvert(m mgl64.Mat3) mgl64.Mat3 {
	if m.Det() == 0 {
		return mgl64.Mat3{}
	}
	return m.Inv()
}

// IsFixed reports whether the body has infinite mass.
func (b *Body) IsFixed() bool {
	return b.Rigid == nil
}

// InverseInertiaWorld returns I^-1 transformed into world space,
// R * I_local^-1 * R^T. A fixed body has a zero inverse inertia so it
// never picks up angular impulse.
func (b *Body) InverseInertiaWorld() mgl64.Mat3 {
	if b.IsFixed() {
		return mgl64.Mat3{}
	}
	r := b.Collision.Transform.Rotation.Quat().Mat4().Mat3()
	return r.Mul3(b.Rigid.InverseInertiaLocal).Mul3(r.Transpose())
}

// InverseMass returns 0 for a fixed body, 1/mass otherwise.
func (b *Body) InverseMass() float64 {
	if b.IsFixed() {
		return 0
	}
	return b.Rigid.InverseMass
}

// AddForce accumulates a world-space force to be applied at the next
// integration step, and wakes the body.
func (b *Body) AddForce(force mgl64.Vec3) {
	if b.IsFixed() {
		return
	}
	b.Awake()
	b.Rigid.forceAccum = b.Rigid.forceAccum.Add(force)
}

// AddTorque accumulates a world-space torque, and wakes the body.
func (b *Body) AddTorque(torque mgl64.Vec3) {
	if b.IsFixed() {
		return
	}
	b.Awake()
	b.Rigid.torqueAccum = b.Rigid.torqueAccum.Add(torque)
}

// ConsumeForces returns and clears the accumulated force/torque.
func (b *Body) ConsumeForces() (force, torque mgl64.Vec3) {
	if b.IsFixed() {
		return mgl64.Vec3{}, mgl64.Vec3{}
	}
	force, torque = b.Rigid.forceAccum, b.Rigid.torqueAccum
	b.Rigid.forceAccum = mgl64.Vec3{}
	b.Rigid.torqueAccum = mgl64.Vec3{}
	return force, torque
}

// TrySleep accumulates time at rest and sleeps the body once it has
// stayed below the velocity threshold for timeThreshold seconds.
func (b *Body) TrySleep(dt, timeThreshold, velocityThreshold float64) {
	if b.IsFixed() {
		return
	}
	if b.Rigid.Motion.Velocity.Len() < velocityThreshold && b.Rigid.Motion.AngularVelocity.Len() < velocityThreshold {
		b.sleepTimer += dt
		if b.sleepTimer >= timeThreshold {
			b.Sleep()
		}
	} else {
		b.Awake()
	}
}

// Sleep zeroes the body's velocity and marks it asleep: the integrator
// skips it, and the broad-phase drops pairs in which both bodies sleep.
func (b *Body) Sleep() {
	if b.IsFixed() {
		return
	}
	b.Sleeping = true
	b.sleepTimer = 0
	b.Rigid.Motion.Velocity = mgl64.Vec3{}
	b.Rigid.Motion.AngularVelocity = mgl64.Vec3{}
}

// Awake clears the sleeping flag and resets the sleep timer.
func (b *Body) Awake() {
	b.Sleeping = false
	b.sleepTimer = 0
}
