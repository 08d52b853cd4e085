package body

// CollisionGroup tags a body for broad coarse-grained filtering, ahead
// of any narrow-phase work. Most groups are plain identifiers that only
// collide with themselves; Environment is a sentinel used for static
// scenery that should collide with everything except other Environment
// bodies, so two pieces of level geometry never generate contacts
// against each other.
type CollisionGroup int32

// Environment marks scenery-only bodies. Two Environment bodies never
// form a candidate pair, satisfying the "foreground isolation" property.
const Environment CollisionGroup = -1

// Default is the group assigned to a body when none is specified.
const Default CollisionGroup = 0

// Test reports whether two bodies in groups a and b are allowed to form
// a candidate collision pair.
func Test(a, b CollisionGroup) bool {
	if a == Environment && b == Environment {
		return false
	}
	if a == Environment || b == Environment {
		return true
	}
	return a == b
}
