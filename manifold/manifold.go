// Package manifold builds a contact manifold (up to four witness
// points) from an EPA normal and depth, by clipping the incident face
// of one body against the reference face of the other with
// Sutherland-Hodgman polygon clipping. Using the full face instead of a
// single point is what keeps a resting box stable instead of rocking
// between single-point contacts frame to frame.
package manifold

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/mathx"
)

const maxContactPoints = 4

// Point is one witness point of the manifold: a world-space position
// and how deep it is penetrating along the contact normal.
type Point struct {
	Position    mgl64.Vec3
	Penetration float64
}

// Build returns the contact points between a and b given the EPA
// normal (pointing from a to b) and penetration depth.
func Build(a, b *body.Body, normal mgl64.Vec3, depth float64) []Point {
	featureA := worldFeature(a, normal)
	featureB := worldFeature(b, normal.Mul(-1))

	if len(featureA) <= 1 || len(featureB) <= 1 {
		return []Point{singlePoint(a, b, normal, depth)}
	}

	var referencePoints, incidentPoints []mgl64.Vec3
	referenceNormal := normal
	if len(featureA) >= len(featureB) {
		referencePoints, incidentPoints = featureA, featureB
	} else {
		referencePoints, incidentPoints = featureB, featureA
		referenceNormal = normal.Mul(-1)
	}

	clipped := clipIncidentAgainstReference(incidentPoints, referencePoints, referenceNormal)
	clipped = clipBehindReferencePlane(clipped, referencePoints[0], referenceNormal)
	if len(clipped) == 0 {
		return []Point{singlePoint(a, b, normal, depth)}
	}
	if len(clipped) > maxContactPoints {
		clipped = reduceToFour(clipped, referenceNormal)
	}

	points := make([]Point, 0, len(clipped))
	for _, p := range clipped {
		penetration := referencePoints[0].Sub(p).Dot(referenceNormal)
		if penetration < 0 {
			penetration = 0
		}
		points = append(points, Point{Position: p, Penetration: penetration})
	}
	return points
}

func worldFeature(b *body.Body, direction mgl64.Vec3) []mgl64.Vec3 {
	indices := b.Collision.SupportIndices(direction)
	points := make([]mgl64.Vec3, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if seen[i] {
			continue
		}
		seen[i] = true
		points = append(points, b.Collision.WorldVertex(i))
	}

	// Order the feature as a ring, clockwise seen from the tip of
	// direction, so each edge x normal used in clipping points inward.
	t1, t2 := mathx.TangentBasis(direction)
	var centroid mgl64.Vec3
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1 / float64(len(points)))
	angle := func(p mgl64.Vec3) float64 {
		d := p.Sub(centroid)
		return math.Atan2(d.Dot(t2), d.Dot(t1))
	}
	sort.Slice(points, func(i, j int) bool { return angle(points[i]) > angle(points[j]) })
	return points
}

func singlePoint(a, b *body.Body, normal mgl64.Vec3, depth float64) Point {
	sa := a.Collision.Support(normal)
	sb := b.Collision.Support(normal.Mul(-1))
	mid := sa.Add(sb).Mul(0.5)
	return Point{Position: mid, Penetration: depth}
}

// clipIncidentAgainstReference clips the incident polygon against each
// side plane of the reference polygon in turn (Sutherland-Hodgman),
// where each side plane contains the reference edge and is parallel to
// the reference normal.
func clipIncidentAgainstReference(incident, reference []mgl64.Vec3, referenceNormal mgl64.Vec3) []mgl64.Vec3 {
	poly := incident
	n := len(reference)
	for i := 0; i < n; i++ {
		a := reference[i]
		b := reference[(i+1)%n]
		edge := b.Sub(a)
		sideNormal := edge.Cross(referenceNormal)
		poly = clipAgainstPlane(poly, a, sideNormal)
		if len(poly) == 0 {
			return poly
		}
	}
	return poly
}

// clipAgainstPlane keeps the part of a polygon on the positive side of
// the plane through planePoint with the given outward normal.
func clipAgainstPlane(poly []mgl64.Vec3, planePoint, planeNormal mgl64.Vec3) []mgl64.Vec3 {
	if len(poly) == 0 {
		return poly
	}
	var out []mgl64.Vec3
	for i := 0; i < len(poly); i++ {
		curr := poly[i]
		next := poly[(i+1)%len(poly)]
		currInside := curr.Sub(planePoint).Dot(planeNormal) >= 0
		nextInside := next.Sub(planePoint).Dot(planeNormal) >= 0

		if currInside {
			out = append(out, curr)
		}
		if currInside != nextInside {
			t := linePlaneT(curr, next, planePoint, planeNormal)
			out = append(out, curr.Add(next.Sub(curr).Mul(t)))
		}
	}
	return out
}

func linePlaneT(a, b, planePoint, planeNormal mgl64.Vec3) float64 {
	denom := b.Sub(a).Dot(planeNormal)
	if absf(denom) < mathx.Epsilon {
		return 0
	}
	t := planePoint.Sub(a).Dot(planeNormal) / denom
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// clipBehindReferencePlane drops any clipped point that ends up in
// front of the reference face (not actually penetrating).
func clipBehindReferencePlane(points []mgl64.Vec3, referencePoint, referenceNormal mgl64.Vec3) []mgl64.Vec3 {
	var kept []mgl64.Vec3
	for _, p := range points {
		if referencePoint.Sub(p).Dot(referenceNormal) >= -mathx.Epsilon {
			kept = append(kept, p)
		}
	}
	return kept
}

// reduceToFour keeps the four most extremal points of a larger clipped
// polygon: the points with minimum and maximum projection along each
// axis of a 2D frame built from the contact normal.
func reduceToFour(points []mgl64.Vec3, normal mgl64.Vec3) []mgl64.Vec3 {
	t1, t2 := mathx.TangentBasis(normal)

	pick := func(proj func(mgl64.Vec3) float64, wantMax bool) mgl64.Vec3 {
		best := points[0]
		bestVal := proj(best)
		for _, p := range points[1:] {
			v := proj(p)
			if (wantMax && v > bestVal) || (!wantMax && v < bestVal) {
				bestVal = v
				best = p
			}
		}
		return best
	}

	proj1 := func(p mgl64.Vec3) float64 { return p.Dot(t1) }
	proj2 := func(p mgl64.Vec3) float64 { return p.Dot(t2) }

	result := []mgl64.Vec3{
		pick(proj1, true),
		pick(proj1, false),
		pick(proj2, true),
		pick(proj2, false),
	}
	return dedupe(result)
}

func dedupe(points []mgl64.Vec3) []mgl64.Vec3 {
	var out []mgl64.Vec3
	for _, p := range points {
		duplicate := false
		for _, q := range out {
			if p.Sub(q).LenSqr() < mathx.Epsilon {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, p)
		}
	}
	return out
}
