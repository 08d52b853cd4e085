package body

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/brightforge/rigidphys/mathx"
	"github.com/brightforge/rigidphys/shape"
)

// CollisionData is the support-map adapter narrow-phase code actually
// depends on: a shape placed at a transform. Keeping it separate from
// Body means GJK/EPA never need to know about mass, material or motion.
type CollisionData struct {
	Shape     shape.Shape
	Transform mathx.Transform
}

// Support returns the world-space furthest point of the shape along
// direction: the local-space support rotated into world space and
// translated by the transform's position.
func (c CollisionData) Support(direction mgl64.Vec3) mgl64.Vec3 {
	localDirection := c.Transform.DirectionToLocal(direction)
	localSupport := c.Shape.Support(localDirection)
	return c.Transform.ToWorld(localSupport)
}

// SupportIndices returns the local-space vertex indices co-extremal
// along a world-space direction.
func (c CollisionData) SupportIndices(direction mgl64.Vec3) []int {
	localDirection := c.Transform.DirectionToLocal(direction)
	return c.Shape.SupportIndices(localDirection)
}

// WorldVertex returns the world-space position of local vertex index i.
func (c CollisionData) WorldVertex(i int) mgl64.Vec3 {
	return c.Transform.ToWorld(c.Shape.Vertex(i))
}

// AABB returns the shape's world-space bounding box at this transform.
func (c CollisionData) AABB() shape.AABB {
	return c.Shape.AABB(c.Transform)
}
