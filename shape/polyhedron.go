package shape

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/errs"
	"github.com/brightforge/rigidphys/mathx"
)

// Polyhedron is a general convex shape built from an arbitrary point set
// via an incremental hull construction: start from a tetrahedron of four
// non-coplanar points, then fold in every remaining point that lies
// outside the current hull, replacing the faces it can see with new
// faces connecting it to the horizon boundary. This mirrors the
// face-list/horizon-edge bookkeeping the EPA polytope builder uses to
// expand a simplex, applied here to grow a hull instead of to measure
// penetration depth.
type Polyhedron struct {
	vertices []mgl64.Vec3
	faces    [][3]int
}

type hullFace struct {
	a, b, c int
	normal  mgl64.Vec3
}

// NewPolyhedron builds the convex hull of points. It fails with
// errs.InvalidShape if fewer than four points are given or if all
// points are coplanar (degenerate, zero-volume hull).
func NewPolyhedron(points []mgl64.Vec3) (Polyhedron, error) {
	if len(points) < 4 {
		return Polyhedron{}, errs.New(errs.InvalidShape, "convex polyhedron needs at least 4 points")
	}

	seed, err := initialTetrahedron(points)
	if err != nil {
		return Polyhedron{}, err
	}

	faces := seed.faces
	used := seed.used

	for i, p := range points {
		if used[i] {
			continue
		}
		faces = insertPoint(faces, points, i, p)
	}

	p := Polyhedron{vertices: points}
	for _, f := range faces {
		p.faces = append(p.faces, [3]int{f.a, f.b, f.c})
	}
	return p, nil
}

type seedHull struct {
	faces []hullFace
	used  map[int]bool
}

func initialTetrahedron(points []mgl64.Vec3) (seedHull, error) {
	// Pick the two points furthest apart, then the point furthest from
	// that line, then the point furthest from that plane.
	i0, i1 := 0, 1
	best := -1.0
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := points[i].Sub(points[j]).LenSqr()
			if d > best {
				best = d
				i0, i1 = i, j
			}
		}
	}
	if best < mathx.Epsilon {
		return seedHull{}, errs.New(errs.InvalidShape, "convex polyhedron points are coincident")
	}

	axis := points[i1].Sub(points[i0])
	i2 := -1
	best = -1
	for i, p := range points {
		if i == i0 || i == i1 {
			continue
		}
		d := p.Sub(points[i0]).Cross(axis).LenSqr()
		if d > best {
			best = d
			i2 = i
		}
	}
	if i2 < 0 || best < mathx.Epsilon {
		return seedHull{}, errs.New(errs.InvalidShape, "convex polyhedron points are collinear")
	}

	normal := points[i1].Sub(points[i0]).Cross(points[i2].Sub(points[i0]))
	i3 := -1
	best = -1
	for i, p := range points {
		if i == i0 || i == i1 || i == i2 {
			continue
		}
		d := math.Abs(p.Sub(points[i0]).Dot(normal))
		if d > best {
			best = d
			i3 = i
		}
	}
	if i3 < 0 || best < mathx.Epsilon {
		return seedHull{}, errs.New(errs.InvalidShape, "convex polyhedron points are coplanar")
	}

	idx := [4]int{i0, i1, i2, i3}
	centroid := mgl64.Vec3{}
	for _, i := range idx {
		centroid = centroid.Add(points[i])
	}
	centroid = centroid.Mul(0.25)

	var faces []hullFace
	tris := [4][3]int{{i0, i1, i2}, {i0, i2, i3}, {i0, i3, i1}, {i1, i3, i2}}
	for _, tri := range tris {
		faces = append(faces, outwardFace(points, tri[0], tri[1], tri[2], centroid))
	}

	used := map[int]bool{i0: true, i1: true, i2: true, i3: true}
	return seedHull{faces: faces, used: used}, nil
}

func outwardFace(points []mgl64.Vec3, a, b, c int, centroid mgl64.Vec3) hullFace {
	normal := points[b].Sub(points[a]).Cross(points[c].Sub(points[a]))
	if normal.Dot(points[a].Sub(centroid)) < 0 {
		a, c = c, a
		normal = normal.Mul(-1)
	}
	return hullFace{a: a, b: b, c: c, normal: normal.Normalize()}
}

// insertPoint folds point into the hull if it lies outside any current
// face, removing every face it can see and patching the hole with new
// faces fanning from point to the horizon boundary.
func insertPoint(faces []hullFace, points []mgl64.Vec3, pointIdx int, point mgl64.Vec3) []hullFace {
	var visible []int
	for i, f := range faces {
		if f.normal.Dot(point.Sub(points[f.a])) > mathx.Epsilon {
			visible = append(visible, i)
		}
	}
	if len(visible) == 0 {
		return faces
	}

	type edge struct{ a, b int }
	edgeCount := map[edge]int{}
	norm := func(a, b int) edge {
		if a < b {
			return edge{a, b}
		}
		return edge{b, a}
	}
	addEdge := func(a, b int) {
		edgeCount[norm(a, b)]++
	}
	visibleSet := map[int]bool{}
	for _, vi := range visible {
		visibleSet[vi] = true
	}
	for _, vi := range visible {
		f := faces[vi]
		addEdge(f.a, f.b)
		addEdge(f.b, f.c)
		addEdge(f.c, f.a)
	}

	var kept []hullFace
	for i, f := range faces {
		if !visibleSet[i] {
			kept = append(kept, f)
		}
	}

	for _, vi := range visible {
		f := faces[vi]
		for _, e := range [][2]int{{f.a, f.b}, {f.b, f.c}, {f.c, f.a}} {
			if edgeCount[norm(e[0], e[1])] == 1 {
				kept = append(kept, hullFace{
					a:      e[0],
					b:      e[1],
					c:      pointIdx,
					normal: points[e[1]].Sub(points[e[0]]).Cross(point.Sub(points[e[0]])).Normalize(),
				})
			}
		}
	}
	return kept
}

func (p Polyhedron) Support(direction mgl64.Vec3) mgl64.Vec3 {
	best := p.vertices[0]
	bestDot := best.Dot(direction)
	for _, v := range p.vertices[1:] {
		d := v.Dot(direction)
		if d > bestDot {
			bestDot = d
			best = v
		}
	}
	return best
}

// SupportIndices returns every hull vertex within Epsilon of the
// maximal projection along direction, which in practice recovers the
// vertex, edge, or face of the hull that direction is most aligned with.
func (p Polyhedron) SupportIndices(direction mgl64.Vec3) []int {
	bestDot := math.Inf(-1)
	for _, v := range p.vertices {
		d := v.Dot(direction)
		if d > bestDot {
			bestDot = d
		}
	}
	var indices []int
	for i, v := range p.vertices {
		if bestDot-v.Dot(direction) < mathx.Epsilon {
			indices = append(indices, i)
		}
	}
	return indices
}

func (p Polyhedron) Vertex(i int) mgl64.Vec3 {
	return p.vertices[i]
}

// ComputeMass and ComputeInertia use the standard tetrahedron-decomposition
// technique for uniform-density polyhedra: each face contributes a signed
// tetrahedron from the origin, summed into total volume and covariance.
func (p Polyhedron) ComputeMass(density float64) float64 {
	volume, _, _ := p.massProperties()
	return volume * density
}

func (p Polyhedron) ComputeInertia(mass float64) mgl64.Mat3 {
	volume, centroid, covariance := p.massProperties()
	if volume < mathx.Epsilon {
		return mgl64.Mat3{}
	}
	density := mass / volume
	// Covariance is about the origin; shift to the centroid (parallel
	// axis theorem) before converting to an inertia tensor.
	cx, cy, cz := centroid.X(), centroid.Y(), centroid.Z()
	cxx := covariance[0]*density - mass*cx*cx
	cyy := covariance[1]*density - mass*cy*cy
	czz := covariance[2]*density - mass*cz*cz
	cxy := covariance[3]*density - mass*cx*cy
	cyz := covariance[4]*density - mass*cy*cz
	cxz := covariance[5]*density - mass*cx*cz

	ixx := cyy + czz
	iyy := cxx + czz
	izz := cxx + cyy
	return mgl64.Mat3{
		ixx, -cxy, -cxz,
		-cxy, iyy, -cyz,
		-cxz, -cyz, izz,
	}
}

// massProperties returns (volume, centroid, second moments [xx,yy,zz,xy,yz,xz])
// integrated over the origin-anchored tetrahedron decomposition, each
// entry still lacking the density factor.
func (p Polyhedron) massProperties() (float64, mgl64.Vec3, [6]float64) {
	var volume float64
	var weightedCentroid mgl64.Vec3
	var cov [6]float64

	for _, f := range p.faces {
		a, b, c := p.vertices[f[0]], p.vertices[f[1]], p.vertices[f[2]]
		tetVolume := a.Dot(b.Cross(c)) / 6.0
		volume += tetVolume
		tetCentroid := a.Add(b).Add(c).Mul(0.25)
		weightedCentroid = weightedCentroid.Add(tetCentroid.Mul(tetVolume))

		xs := [4]float64{0, a.X(), b.X(), c.X()}
		ys := [4]float64{0, a.Y(), b.Y(), c.Y()}
		zs := [4]float64{0, a.Z(), b.Z(), c.Z()}
		cov[0] += tetVolume * canonicalMoment(xs, xs)
		cov[1] += tetVolume * canonicalMoment(ys, ys)
		cov[2] += tetVolume * canonicalMoment(zs, zs)
		cov[3] += tetVolume * canonicalMoment(xs, ys)
		cov[4] += tetVolume * canonicalMoment(ys, zs)
		cov[5] += tetVolume * canonicalMoment(xs, zs)
	}

	if math.Abs(volume) < mathx.Epsilon {
		return 0, mgl64.Vec3{}, cov
	}
	return volume, weightedCentroid.Mul(1 / volume), cov
}

// canonicalMoment integrates u*v over a tetrahedron with vertices given
// by the four coordinate samples, using the standard symmetric formula
// for the second moment of a simplex (a factor of 1/10 of the sum of
// pairwise products plus diagonal terms, normalized by volume already
// folded in by the caller).
func canonicalMoment(u, v [4]float64) float64 {
	sum := 0.0
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				sum += 2 * u[i] * v[j]
			} else {
				sum += u[i] * v[j]
			}
		}
	}
	return sum / 20.0
}

func (p Polyhedron) AABB(t mathx.Transform) AABB {
	min := t.ToWorld(p.vertices[0])
	max := min
	for _, v := range p.vertices[1:] {
		w := t.ToWorld(v)
		min = componentMin(min, w)
		max = componentMax(max, w)
	}
	return AABB{Min: min, Max: max}
}
