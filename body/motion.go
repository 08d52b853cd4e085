package body

import "github.com/go-gl/mathgl/mgl64"

// Motion holds the velocity state that the integrator advances and the
// constraint solver corrects. A fixed body has no Motion.
type Motion struct {
	Velocity        mgl64.Vec3
	AngularVelocity mgl64.Vec3

	// PreSolveVelocity/PreSolveAngularVelocity snapshot the velocity
	// produced by force integration, before the constraint solver's
	// impulses are applied, so restitution can be computed against the
	// pre-contact closing speed rather than the post-impulse one.
	PreSolveVelocity        mgl64.Vec3
	PreSolveAngularVelocity mgl64.Vec3
}

// Snapshot copies the current velocities into the pre-solve fields.
func (m *Motion) Snapshot() {
	m.PreSolveVelocity = m.Velocity
	m.PreSolveAngularVelocity = m.AngularVelocity
}
