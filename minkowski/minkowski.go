// Package minkowski implements the Minkowski-difference support queries
// GJK and EPA are built on: a single witness point for simplex
// iteration, and the full set of co-extremal vertex pairs a contact
// manifold needs to clip a face against a face instead of a point
// against a point.
package minkowski

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/body"
)

// Support returns a point on the Minkowski difference A-B furthest
// along direction: supportA(direction) - supportB(-direction).
func Support(a, b *body.Body, direction mgl64.Vec3) mgl64.Vec3 {
	supportA := a.Collision.Support(direction)
	supportB := b.Collision.Support(direction.Mul(-1))
	return supportA.Sub(supportB)
}

// IndexPair names one co-extremal vertex from each body.
type IndexPair struct {
	IndexA, IndexB int
}

// SupportIndexPairs returns every pair of co-extremal vertices (one
// from A, one from B) whose difference achieves the maximal projection
// along direction. For two face-aligned shapes this recovers every
// vertex of both touching faces, which is what the contact manifold
// builder clips against; for a vertex-vertex contact it is a single
// pair.
func SupportIndexPairs(a, b *body.Body, direction mgl64.Vec3) []IndexPair {
	indicesA := a.Collision.SupportIndices(direction)
	indicesB := b.Collision.SupportIndices(direction.Mul(-1))

	pairs := make([]IndexPair, 0, len(indicesA)*len(indicesB))
	for _, ia := range indicesA {
		for _, ib := range indicesB {
			pairs = append(pairs, IndexPair{IndexA: ia, IndexB: ib})
		}
	}
	return pairs
}
