// Package mathx wraps github.com/go-gl/mathgl/mgl64 with the norm-preserving
// value types the collision and constraint code builds on: unit vectors,
// unit quaternions, and a position/rotation transform.
package mathx

// Epsilon is the single global tolerance used for length comparisons,
// degenerate-simplex detection and convergence checks across the module.
// A single shared constant keeps GJK, EPA and the solver's notion of
// "close enough to zero" consistent with each other.
const Epsilon = 1e-6

// ApproxZero reports whether v is within Epsilon of zero.
func ApproxZero(v float64) bool {
	return v > -Epsilon && v < Epsilon
}
