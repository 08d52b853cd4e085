// Package worldsim ties every other package into the external API: a
// World that owns an object space, steps the simulation one atomic
// step(dt) at a time (force integration, broad-phase, narrow-phase,
// constraint solving, position integration), and reports contacts and
// collision lifecycle events back to the caller.
package worldsim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/brightforge/rigidphys/body"
	"github.com/brightforge/rigidphys/broadphase"
	"github.com/brightforge/rigidphys/config"
	"github.com/brightforge/rigidphys/constraint"
	"github.com/brightforge/rigidphys/epa"
	"github.com/brightforge/rigidphys/gjk"
	"github.com/brightforge/rigidphys/integrate"
	"github.com/brightforge/rigidphys/logx"
	"github.com/brightforge/rigidphys/manifold"
	"github.com/brightforge/rigidphys/space"
	"github.com/brightforge/rigidphys/workerpool"
)

const (
	sleepTimeThreshold     = 0.5
	sleepVelocityThreshold = 0.01
)

// Contact is one narrow-phase result surfaced to callers, naming bodies
// by handle rather than pointer so it stays meaningful even if the
// underlying body is later removed.
type Contact struct {
	BodyA, BodyB space.Handle
	Normal       mgl64.Vec3
	Points       []manifold.Point
}

// World is an isolated simulation: one object space, one broad-phase,
// one constraint solver configuration. Callers may run many Worlds in
// parallel goroutines, but a single World's Step must not be called
// concurrently with itself or with any other World method.
type World struct {
	Space  *space.ObjectSpace
	Config config.Config
	Broad  broadphase.BroadPhase
	Logger logx.Logger
	Events *Events
}

// New returns an empty World configured with cfg, using the brute-force
// broad-phase by default.
func New(cfg config.Config) *World {
	return &World{
		Space:  space.New(),
		Config: cfg,
		Broad:  broadphase.BruteForcePhase{},
		Logger: logx.Noop,
		Events: NewEvents(),
	}
}

// CreateRigidBody inserts a new dynamic body from def and returns its
// handle. Any field def leaves at its zero value (mass, friction,
// restitution, rotation) is filled in with the spec's defaults.
func (w *World) CreateRigidBody(def body.BodyDef) space.Handle {
	return w.Space.Insert(body.NewFromDef(def))
}

// CreateFixedBody inserts a new immovable body from def and returns
// its handle. def's mass/velocity/material fields are ignored.
func (w *World) CreateFixedBody(def body.BodyDef) space.Handle {
	return w.Space.Insert(body.NewFixedFromDef(def))
}

// FindBody resolves a handle for a body by its id.
func (w *World) FindBody(id uuid.UUID) (space.Handle, bool) {
	return w.Space.Find(id)
}

// RemoveBody frees a body's slot, invalidating its handle.
func (w *World) RemoveBody(h space.Handle) bool {
	return w.Space.Remove(h)
}

// RigidBodies returns every live dynamic body's handle.
func (w *World) RigidBodies() []space.Handle {
	return w.handlesOf(w.Space.RigidBodies())
}

// FixedBodies returns every live fixed body's handle.
func (w *World) FixedBodies() []space.Handle {
	return w.handlesOf(w.Space.FixedBodies())
}

func (w *World) handlesOf(bodies []*body.Body) []space.Handle {
	handles := make([]space.Handle, 0, len(bodies))
	for _, b := range bodies {
		if h, ok := w.Space.Find(b.ID); ok {
			handles = append(handles, h)
		}
	}
	return handles
}

// Step runs one atomic simulation step: integrate forces, find and
// resolve contacts, solve the resulting constraints, integrate
// positions, and report the step's contacts. The call runs to
// completion without suspension; independent per-body and per-pair work
// within the step may fan out across goroutines, but Step always blocks
// until every phase has finished before returning.
func (w *World) Step(dt float64) []Contact {
	all := w.Space.Bodies()
	rigid := w.Space.RigidBodies()

	integrate.Velocities(rigid, w.Config.Gravity, dt, w.Config.Workers)

	pairs := w.Broad.Pairs(all)
	contacts := w.narrowPhase(pairs)

	internal := make([]constraint.Contact, 0, len(contacts))
	for _, c := range contacts {
		internal = append(internal, constraint.Contact{
			BodyA: mustResolveBody(w, c.BodyA), BodyB: mustResolveBody(w, c.BodyB),
			Normal: c.Normal, Points: c.Points,
		})
	}
	constraint.Solve(internal, w.Config.Baumgarte, w.Config.SlopPenetration, dt, w.Config.SolverMaxIterations)

	integrate.Positions(rigid, dt, w.Config.Workers)

	for _, b := range rigid {
		b.TrySleep(dt, sleepTimeThreshold, sleepVelocityThreshold)
	}

	for _, c := range contacts {
		w.Events.recordActive(mustResolveBody(w, c.BodyA).ID, mustResolveBody(w, c.BodyB).ID)
	}
	w.Events.flush()

	return contacts
}

type indexedPair struct {
	index int
	pair  broadphase.Pair
}

// narrowPhase tests every broad-phase pair for an actual contact. Each
// pair's GJK/EPA/manifold work only reads its two bodies and writes to
// its own result slot, so the sweep fans out across Config.Workers
// goroutines; slots are compacted into the returned slice afterward.
func (w *World) narrowPhase(pairs []broadphase.Pair) []Contact {
	items := make([]indexedPair, len(pairs))
	for i, pair := range pairs {
		items[i] = indexedPair{index: i, pair: pair}
	}

	slots := make([]*Contact, len(pairs))
	workerpool.Run(w.Config.Workers, items, func(item indexedPair) {
		pair := item.pair
		collided, simplex := gjk.Run(pair.A, pair.B, w.Config.GJKMaxIterations)
		if !collided {
			return
		}
		result, err := epa.Run(pair.A, pair.B, simplex, w.Config.EPAMaxIterations)
		if err != nil {
			w.Logger.Printf("narrow phase: %v", err)
			return
		}
		points := manifold.Build(pair.A, pair.B, result.Normal, result.Depth)
		hA, okA := w.Space.Find(pair.A.ID)
		hB, okB := w.Space.Find(pair.B.ID)
		if !okA || !okB {
			return
		}
		slots[item.index] = &Contact{BodyA: hA, BodyB: hB, Normal: result.Normal, Points: points}
	})

	contacts := make([]Contact, 0, len(pairs))
	for _, slot := range slots {
		if slot != nil {
			contacts = append(contacts, *slot)
		}
	}
	return contacts
}

func mustResolveBody(w *World, h space.Handle) *body.Body {
	b, _ := w.Space.Resolve(h)
	return b
}
