package broadphase

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/shape"
)

// cellKey identifies one cell of the uniform spatial hash grid.
type cellKey struct {
	x, y, z int
}

// SpatialGrid is a uniform hashed-cell broad-phase: every body is
// inserted into every cell its AABB spans, and candidate pairs are
// found by looking only within each occupied cell instead of testing
// every body against every other body. NumCells is rounded up to the
// next power of two so the hash can be masked instead of modded.
type SpatialGrid struct {
	cellSize float64
	cellMask int
	cells    map[int][]int // hashed cell -> body indices
}

// NewSpatialGrid builds an empty grid with the given cell size and an
// approximate cell-table capacity (rounded to a power of two).
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	return &SpatialGrid{
		cellSize: cellSize,
		cellMask: nextPowerOfTwo(numCells) - 1,
		cells:    make(map[int][]int),
	}
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	if p == 0 {
		p = 1
	}
	return p
}

func (g *SpatialGrid) worldToCell(pos mgl64.Vec3) cellKey {
	return cellKey{
		x: int(math.Floor(pos.X() / g.cellSize)),
		y: int(math.Floor(pos.Y() / g.cellSize)),
		z: int(math.Floor(pos.Z() / g.cellSize)),
	}
}

func (g *SpatialGrid) hash(k cellKey) int {
	const p1, p2, p3 = 73856093, 19349663, 83492791
	h := (k.x*p1 ^ k.y*p2 ^ k.z*p3)
	if h < 0 {
		h = -h
	}
	return h & g.cellMask
}

func (g *SpatialGrid) clear() {
	for k := range g.cells {
		delete(g.cells, k)
	}
}

func (g *SpatialGrid) insert(index int, b *body.Body) {
	box := b.Collision.AABB()
	minCell := g.worldToCell(box.Min)
	maxCell := g.worldToCell(box.Max)
	for x := minCell.x; x <= maxCell.x; x++ {
		for y := minCell.y; y <= maxCell.y; y++ {
			for z := minCell.z; z <= maxCell.z; z++ {
				h := g.hash(cellKey{x, y, z})
				g.cells[h] = append(g.cells[h], index)
			}
		}
	}
}

// Pairs rebuilds the grid from scratch and returns every candidate
// pair, deduplicated, found within a shared cell.
func (g *SpatialGrid) Pairs(bodies []*body.Body) []Pair {
	g.clear()
	for i, b := range bodies {
		g.insert(i, b)
	}

	seen := make(map[[2]int]bool)
	var pairs []Pair
	for _, indices := range g.cells {
		for i := 0; i < len(indices); i++ {
			for j := i + 1; j < len(indices); j++ {
				ia, ib := indices[i], indices[j]
				if ia == ib {
					continue
				}
				if ia > ib {
					ia, ib = ib, ia
				}
				key := [2]int{ia, ib}
				if seen[key] {
					continue
				}
				seen[key] = true

				a, b := bodies[ia], bodies[ib]
				if a.IsFixed() && b.IsFixed() {
					continue
				}
				if a.Sleeping && b.Sleeping {
					continue
				}
				if !body.Test(a.Group, b.Group) {
					continue
				}
				if !overlapsOrInfinite(a, b) {
					continue
				}
				pairs = append(pairs, Pair{A: a, B: b})
			}
		}
	}
	return pairs
}

// overlapsOrInfinite falls back to always-pair for plane-shaped bodies,
// whose finite AABB stand-in can otherwise miss genuine overlaps far
// from the plane's nominal footprint.
func overlapsOrInfinite(a, b *body.Body) bool {
	if isPlane(a) || isPlane(b) {
		return true
	}
	return a.Collision.AABB().Overlaps(b.Collision.AABB())
}

func isPlane(b *body.Body) bool {
	_, ok := b.Collision.Shape.(shape.Plane)
	return ok
}
