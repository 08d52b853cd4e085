package constraint

import "github.com/brightforge/rigidphys/mathx"

// Solve assembles every contact's rows into one LCP and iterates a
// Gauss-Seidel sweep over it, applying the resulting impulses to each
// body's velocity. It mirrors original_source's gauss_seidel.rs
// convergence policy (exit once the total change across a sweep drops
// below 10*epsilon*N) with its off-by-one row-skip defect corrected:
// every row j != k is summed, including k-1.
func Solve(contacts []Contact, baumgarte, slop, dt float64, maxIterations int) {
	rows := buildRows(contacts, baumgarte, slop, dt)
	if len(rows) == 0 {
		return
	}

	system := assembleLCP(rows)
	tolerance := 10 * mathx.Epsilon * float64(system.size)

	for iter := 0; iter < maxIterations; iter++ {
		totalChange := 0.0
		for k := 0; k < system.size; k++ {
			sum := system.bias[k]
			for l := 0; l < system.size; l++ {
				if l == k {
					continue
				}
				sum -= system.at(k, l) * system.lambda[l]
			}
			diag := system.at(k, k)
			var value float64
			if diag > mathx.Epsilon {
				value = sum / diag
			}
			projected := system.rowKind[k].project(value, system.lambda)
			totalChange += absf(projected - system.lambda[k])
			system.lambda[k] = projected
		}
		if totalChange < tolerance {
			break
		}
	}

	applyImpulses(rows, system.lambda)
}

// applyImpulses converts the solved lambda vector back into velocity
// changes: each body accumulates invMass*lin*lambda and
// Iinv*ang*lambda from every row it participates in.
func applyImpulses(rows []row, lambda []float64) {
	for k, r := range rows {
		l := lambda[k]
		if l == 0 {
			continue
		}
		if !r.bodyA.IsFixed() {
			r.bodyA.Rigid.Motion.Velocity = r.bodyA.Rigid.Motion.Velocity.Add(r.linA.Mul(r.bodyA.InverseMass() * l))
			r.bodyA.Rigid.Motion.AngularVelocity = r.bodyA.Rigid.Motion.AngularVelocity.Add(r.bodyA.InverseInertiaWorld().Mul3x1(r.angA.Mul(l)))
		}
		if !r.bodyB.IsFixed() {
			r.bodyB.Rigid.Motion.Velocity = r.bodyB.Rigid.Motion.Velocity.Add(r.linB.Mul(r.bodyB.InverseMass() * l))
			r.bodyB.Rigid.Motion.AngularVelocity = r.bodyB.Rigid.Motion.AngularVelocity.Add(r.bodyB.InverseInertiaWorld().Mul3x1(r.angB.Mul(l)))
		}
	}
}
