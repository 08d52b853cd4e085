// Package space implements the collision object space: a stable-address
// arena of bodies plus generation-tagged handles. Bodies are stored in
// a slice that never reallocates an occupied element in place (freed
// slots are recycled, not removed), so a *body.Body pointer handed out
// by Resolve stays valid for as long as the handle itself does. This
// replaces the original source's Rc<RefCell<Box<Body>>> handle model,
// which the module's Go port intentionally avoids in favor of plain
// index/generation pairs.
package space

import (
	"github.com/google/uuid"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/errs"
)

// Handle is a weak, shareable reference to a body. It resolves via
// ObjectSpace.Resolve and fails once the slot it names has been freed
// and possibly reused by a newer body.
type Handle struct {
	index      int
	generation uint64
}

type slot struct {
	body       *body.Body
	generation uint64
	occupied   bool
}

// ObjectSpace owns every body created for one World. It is not safe for
// concurrent use; callers running multiple worlds in parallel must give
// each world (and therefore each ObjectSpace) its own goroutine.
type ObjectSpace struct {
	slots []slot
	free  []int
	byID  map[uuid.UUID]Handle
}

// New returns an empty ObjectSpace.
func New() *ObjectSpace {
	return &ObjectSpace{byID: make(map[uuid.UUID]Handle)}
}

// Insert takes ownership of b and returns a handle that resolves to it
// until the handle is removed.
func (s *ObjectSpace) Insert(b *body.Body) Handle {
	var index int
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[index].body = b
		s.slots[index].occupied = true
	} else {
		index = len(s.slots)
		s.slots = append(s.slots, slot{body: b, occupied: true})
	}
	h := Handle{index: index, generation: s.slots[index].generation}
	s.byID[b.ID] = h
	return h
}

// Remove frees the slot named by h. Any other handle pointing at the
// same slot (including h itself, reused) becomes invalid because the
// generation counter advances.
func (s *ObjectSpace) Remove(h Handle) bool {
	if !s.valid(h) {
		return false
	}
	delete(s.byID, s.slots[h.index].body.ID)
	s.slots[h.index].body = nil
	s.slots[h.index].occupied = false
	s.slots[h.index].generation++
	s.free = append(s.free, h.index)
	return true
}

func (s *ObjectSpace) valid(h Handle) bool {
	return h.index >= 0 && h.index < len(s.slots) &&
		s.slots[h.index].occupied && s.slots[h.index].generation == h.generation
}

// Resolve returns the body h points to, or ok=false if the handle is
// stale (its slot was freed, or never existed).
func (s *ObjectSpace) Resolve(h Handle) (*body.Body, bool) {
	if !s.valid(h) {
		return nil, false
	}
	return s.slots[h.index].body, true
}

// MustResolve resolves h or returns an IdNotFound error.
func (s *ObjectSpace) MustResolve(h Handle) (*body.Body, error) {
	b, ok := s.Resolve(h)
	if !ok {
		return nil, errs.New(errs.IdNotFound, "handle does not resolve to a live body")
	}
	return b, nil
}

// Find looks up the current handle for a body by its id, the same id
// surfaced on body.Body.ID.
func (s *ObjectSpace) Find(id uuid.UUID) (Handle, bool) {
	h, ok := s.byID[id]
	return h, ok
}

// Bodies returns every live body, dynamic and fixed alike.
func (s *ObjectSpace) Bodies() []*body.Body {
	bodies := make([]*body.Body, 0, len(s.slots)-len(s.free))
	for _, sl := range s.slots {
		if sl.occupied {
			bodies = append(bodies, sl.body)
		}
	}
	return bodies
}

// RigidBodies returns every live dynamic body.
func (s *ObjectSpace) RigidBodies() []*body.Body {
	var bodies []*body.Body
	for _, sl := range s.slots {
		if sl.occupied && !sl.body.IsFixed() {
			bodies = append(bodies, sl.body)
		}
	}
	return bodies
}

// FixedBodies returns every live fixed body.
func (s *ObjectSpace) FixedBodies() []*body.Body {
	var bodies []*body.Body
	for _, sl := range s.slots {
		if sl.occupied && sl.body.IsFixed() {
			bodies = append(bodies, sl.body)
		}
	}
	return bodies
}

// Len returns the number of live bodies.
func (s *ObjectSpace) Len() int {
	return len(s.slots) - len(s.free)
}
