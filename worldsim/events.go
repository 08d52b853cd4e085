package worldsim

import "github.com/google/uuid"

// EventType distinguishes the three phases of a contact's lifetime.
type EventType int

const (
	CollisionEnter EventType = iota
	CollisionStay
	CollisionExit
)

// CollisionEvent names the two bodies (by id, stable across a contact's
// lifetime even if the pair's *body.Body pointers were reused) and the
// phase of their collision.
type CollisionEvent struct {
	Type EventType
	A, B uuid.UUID
}

// Listener receives every event produced by a step.
type Listener func(CollisionEvent)

// Events tracks which pairs were touching last step and which are
// touching this step, diffing the two sets to produce Enter/Stay/Exit
// notifications. Grounded on the teacher's trigger.go pub-sub, with
// pairs keyed by body id instead of raw pointer identity so the key
// stays meaningful across a freed-and-reused arena slot.
type Events struct {
	listeners []Listener
	active    map[pairKey]bool
	previous  map[pairKey]bool
}

type pairKey struct {
	a, b uuid.UUID
}

func newPairKey(a, b uuid.UUID) pairKey {
	if a.String() > b.String() {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// NewEvents returns an empty event tracker with no subscribers.
func NewEvents() *Events {
	return &Events{active: make(map[pairKey]bool), previous: make(map[pairKey]bool)}
}

// Subscribe registers a listener invoked for every event a step produces.
func (e *Events) Subscribe(l Listener) {
	e.listeners = append(e.listeners, l)
}

// recordActive marks a pair as touching in the current step.
func (e *Events) recordActive(a, b uuid.UUID) {
	e.active[newPairKey(a, b)] = true
}

// flush compares this step's active pairs against last step's, emits
// Enter for new pairs, Stay for continuing pairs, Exit for pairs that
// stopped touching, then rolls active into previous for the next step.
func (e *Events) flush() {
	for key := range e.active {
		eventType := CollisionStay
		if !e.previous[key] {
			eventType = CollisionEnter
		}
		e.dispatch(CollisionEvent{Type: eventType, A: key.a, B: key.b})
	}
	for key := range e.previous {
		if !e.active[key] {
			e.dispatch(CollisionEvent{Type: CollisionExit, A: key.a, B: key.b})
		}
	}
	e.previous = e.active
	e.active = make(map[pairKey]bool)
}

func (e *Events) dispatch(evt CollisionEvent) {
	for _, l := range e.listeners {
		l(evt)
	}
}
