// Package broadphase finds candidate colliding pairs ahead of the exact
// narrow-phase test. A brute-force AABB sweep is the spec-sanctioned
// stub; SpatialGrid offers a hashed-cell alternative for larger worlds,
// both implementing the same Pairs method so the world loop can swap
// between them.
package broadphase

import (
	"github.com/brightforge/rigidphys/body"
)

// Pair holds pointers to two candidate-colliding bodies from the slice
// the broad-phase was given.
type Pair struct {
	A, B *body.Body
}

// BroadPhase finds candidate pairs among a set of bodies.
type BroadPhase interface {
	Pairs(bodies []*body.Body) []Pair
}

// BruteForcePhase is an O(n^2) AABB overlap sweep. It is a complete,
// correct broad-phase on its own; SpatialGrid exists purely as a
// faster alternative for worlds with many bodies.
type BruteForcePhase struct{}

// Pairs tests every body against every other body once, skipping
// fixed-fixed pairs (neither can ever move into the other), sleeping
// pairs, and groups that CollisionGroup.Test rejects.
func (BruteForcePhase) Pairs(bodies []*body.Body) []Pair {
	var pairs []Pair
	for i := 0; i < len(bodies); i++ {
		a := bodies[i]
		for j := i + 1; j < len(bodies); j++ {
			b := bodies[j]
			if a.IsFixed() && b.IsFixed() {
				continue
			}
			if a.Sleeping && b.Sleeping {
				continue
			}
			if !body.Test(a.Group, b.Group) {
				continue
			}
			if !a.Collision.AABB().Overlaps(b.Collision.AABB()) {
				continue
			}
			pairs = append(pairs, Pair{A: a, B: b})
		}
	}
	return pairs
}
