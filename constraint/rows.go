package constraint

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/mathx"
)

// rowKind identifies which projection a row's solved value must satisfy.
type rowKind int

const (
	// unconstrained rows accept any lambda (unused today, kept for
	// symmetry with the LCP's general row-constraint model).
	unconstrained rowKind = iota
	// nonNegative rows may only push, never pull (normal contact rows).
	nonNegative
	// frictionCone rows are bounded by mu times the paired normal row's
	// solved lambda.
	frictionCone
)

// rowDescriptor is the per-row value-constraint descriptor: a small
// struct the solver interprets, in place of the stored closures
// original_source's LCP used, so solver state stays serializable.
type rowDescriptor struct {
	kind           rowKind
	normalRowIndex int
	mu             float64
}

func (d rowDescriptor) project(value float64, solution []float64) float64 {
	switch d.kind {
	case nonNegative:
		if value < 0 {
			return 0
		}
		return value
	case frictionCone:
		bound := d.mu * absf(solution[d.normalRowIndex])
		if value > bound {
			return bound
		}
		if value < -bound {
			return -bound
		}
		return value
	default:
		return value
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// row is one Jacobian row of the assembled LCP: the (linear, angular)
// coefficients it contributes to each of its two bodies, its
// right-hand-side bias, and its projection descriptor.
type row struct {
	bodyA, bodyB *body.Body
	linA, angA   mgl64.Vec3
	linB, angB   mgl64.Vec3
	bias         float64
	descriptor   rowDescriptor
}

// bodyVelocity returns this row's Jacobian contribution to target, or
// ok=false if target is neither of the row's two bodies.
func (r row) bodyVelocity(target *body.Body) (lin, ang mgl64.Vec3, ok bool) {
	switch target {
	case r.bodyA:
		return r.linA, r.angA, true
	case r.bodyB:
		return r.linB, r.angB, true
	default:
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
}

// preSolveJV evaluates J_k . v using each body's pre-solve velocity
// snapshot (the velocity produced by force integration, before this
// step's impulses are applied), so the bias term's restitution and
// friction targets are computed against the pre-contact closing speed
// rather than whatever an earlier row in this same sweep already
// changed it to.
func (r row) preSolveJV() float64 {
	var sum float64
	if !r.bodyA.IsFixed() {
		sum += r.linA.Dot(r.bodyA.Rigid.Motion.PreSolveVelocity) + r.angA.Dot(r.bodyA.Rigid.Motion.PreSolveAngularVelocity)
	}
	if !r.bodyB.IsFixed() {
		sum += r.linB.Dot(r.bodyB.Rigid.Motion.PreSolveVelocity) + r.angB.Dot(r.bodyB.Rigid.Motion.PreSolveAngularVelocity)
	}
	return sum
}

// buildRows assembles one normal row and two friction rows per contact
// point, for every contact in contacts.
func buildRows(contacts []Contact, baumgarte, slop, dt float64) []row {
	var rows []row

	for _, c := range contacts {
		restitution := CombineRestitution(c.BodyA, c.BodyB)
		friction := CombineFriction(c.BodyA, c.BodyB)
		t1, t2 := mathx.TangentBasis(c.Normal)

		for _, point := range c.Points {
			rA := point.Position.Sub(c.BodyA.Collision.Transform.Position)
			rB := point.Position.Sub(c.BodyB.Collision.Transform.Position)

			normalRow := buildRow(c.BodyA, c.BodyB, rA, rB, c.Normal)
			closingVelocity := normalRow.preSolveJV()
			baumgarteTerm := 0.0
			if excess := point.Penetration - slop; excess > 0 {
				baumgarteTerm = baumgarte * excess / dt
			}
			restitutionTerm := 0.0
			if closingVelocity < 0 {
				restitutionTerm = -restitution * closingVelocity
			}
			normalRow.bias = -closingVelocity + baumgarteTerm + restitutionTerm
			normalRow.descriptor = rowDescriptor{kind: nonNegative}
			normalIndex := len(rows)
			rows = append(rows, normalRow)

			for _, tangent := range [2]mgl64.Vec3{t1, t2} {
				fr := buildRow(c.BodyA, c.BodyB, rA, rB, tangent)
				fr.bias = -fr.preSolveJV()
				fr.descriptor = rowDescriptor{kind: frictionCone, normalRowIndex: normalIndex, mu: friction}
				rows = append(rows, fr)
			}
		}
	}
	return rows
}

// buildRow constructs the Jacobian for a single direction: pushing A
// away and B along +direction, J = [-d, -(rA x d), d, (rB x d)].
func buildRow(a, b *body.Body, rA, rB, direction mgl64.Vec3) row {
	return row{
		bodyA: a,
		bodyB: b,
		linA:  direction.Mul(-1),
		angA:  rA.Cross(direction).Mul(-1),
		linB:  direction,
		angB:  rB.Cross(direction),
	}
}
