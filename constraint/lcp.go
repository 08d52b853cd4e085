package constraint

import (
	"github.com/brightforge/rigidphys/body"
)

// lcp is the dense row-major linear complementarity system the
// Gauss-Seidel sweep iterates over: A*lambda = b subject to each row's
// descriptor projecting its own entry of lambda. Modeled on
// original_source's SparseMatrix-backed LCP type, which despite its
// name is a flat dense matrix.
type lcp struct {
	size    int
	matrix  []float64 // size*size, row-major
	bias    []float64
	lambda  []float64
	rowKind []rowDescriptor
}

func (m *lcp) at(i, j int) float64 {
	return m.matrix[i*m.size+j]
}

func (m *lcp) set(i, j int, v float64) {
	m.matrix[i*m.size+j] = v
}

// assembleLCP builds the A matrix and b vector from the rows' cross
// terms, A[k][l] = sum over shared bodies X of Jk_X . Minv(X) . Jl_X.
func assembleLCP(rows []row) *lcp {
	n := len(rows)
	m := &lcp{
		size:    n,
		matrix:  make([]float64, n*n),
		bias:    make([]float64, n),
		lambda:  make([]float64, n),
		rowKind: make([]rowDescriptor, n),
	}
	for k := range rows {
		m.bias[k] = rows[k].bias
		m.rowKind[k] = rows[k].descriptor
	}
	for k := 0; k < n; k++ {
		for l := k; l < n; l++ {
			v := crossTerm(rows[k], rows[l])
			m.set(k, l, v)
			m.set(l, k, v)
		}
	}
	return m
}

// crossTerm sums the bilinear contribution of every body shared by rows
// k and l: invMass(X)*linK_X.linL_X + angK_X.(Iinv(X)*angL_X).
func crossTerm(k, l row) float64 {
	var sum float64
	for _, b := range sharedBodies(k, l) {
		linK, angK, _ := k.bodyVelocity(b)
		linL, angL, _ := l.bodyVelocity(b)
		if b.IsFixed() {
			continue
		}
		sum += b.InverseMass() * linK.Dot(linL)
		sum += angK.Dot(b.InverseInertiaWorld().Mul3x1(angL))
	}
	return sum
}

func sharedBodies(k, l row) []*body.Body {
	candidates := []*body.Body{k.bodyA, k.bodyB}
	var shared []*body.Body
	for _, c := range candidates {
		if c == l.bodyA || c == l.bodyB {
			shared = append(shared, c)
		}
	}
	return dedupeBodies(shared)
}

func dedupeBodies(bodies []*body.Body) []*body.Body {
	if len(bodies) < 2 {
		return bodies
	}
	if bodies[0] == bodies[1] {
		return bodies[:1]
	}
	return bodies
}
