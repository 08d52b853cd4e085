// Package integrate advances body motion with semi-implicit (symplectic)
// Euler: velocities are updated from forces first, then positions and
// orientation are updated from the already-updated velocities, which is
// what keeps the integrator stable for stiff contact impulses.
package integrate

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/workerpool"
)

// Velocities applies gravity and accumulated forces/torques to every
// rigid body's velocity. Fixed and sleeping bodies are skipped. Each
// body's velocity update only touches that body, so the work fans out
// across workers goroutines.
func Velocities(bodies []*body.Body, gravity mgl64.Vec3, dt float64, workers int) {
	workerpool.Run(workers, bodies, func(b *body.Body) {
		if b.IsFixed() || b.Sleeping {
			return
		}
		force, torque := b.ConsumeForces()

		linearAccel := gravity.Add(force.Mul(b.Rigid.InverseMass))
		b.Rigid.Motion.Velocity = b.Rigid.Motion.Velocity.Add(linearAccel.Mul(dt))

		angularAccel := b.InverseInertiaWorld().Mul3x1(torque)
		b.Rigid.Motion.AngularVelocity = b.Rigid.Motion.AngularVelocity.Add(angularAccel.Mul(dt))

		b.Rigid.Motion.Snapshot()
	})
}

// Positions advances every rigid body's transform from its (possibly
// solver-corrected) velocity, renormalizing orientation afterward. Each
// body's transform update only touches that body, so the work fans out
// across workers goroutines.
func Positions(bodies []*body.Body, dt float64, workers int) {
	workerpool.Run(workers, bodies, func(b *body.Body) {
		if b.IsFixed() || b.Sleeping {
			return
		}
		t := &b.Collision.Transform
		t.Position = t.Position.Add(b.Rigid.Motion.Velocity.Mul(dt))
		t.SetRotation(t.Rotation.Integrate(b.Rigid.Motion.AngularVelocity, dt))
	})
}
