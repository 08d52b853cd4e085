package mathx

import "github.com/go-gl/mathgl/mgl64"

// Transform is a rigid position/rotation pair. InverseRotation is cached
// alongside Rotation (rather than recomputed on every support query) and
// kept in sync by SetRotation.
type Transform struct {
	Position        mgl64.Vec3
	Rotation        UnitQuat
	InverseRotation UnitQuat
}

// NewTransform builds an identity transform at the given position.
func NewTransform(position mgl64.Vec3) Transform {
	ident := IdentityQuat()
	return Transform{
		Position:        position,
		Rotation:        ident,
		InverseRotation: ident,
	}
}

// SetRotation replaces the rotation and recomputes its cached inverse,
// so InverseRotation can never go stale relative to Rotation.
func (t *Transform) SetRotation(q UnitQuat) {
	t.Rotation = q
	t.InverseRotation = q.Inverse()
}

// ToWorld maps a point from the transform's local space to world space.
func (t Transform) ToWorld(localPoint mgl64.Vec3) mgl64.Vec3 {
	return t.Position.Add(t.Rotation.Rotate(localPoint))
}

// ToLocal maps a point from world space into the transform's local space.
func (t Transform) ToLocal(worldPoint mgl64.Vec3) mgl64.Vec3 {
	return t.InverseRotation.Rotate(worldPoint.Sub(t.Position))
}

// DirectionToLocal maps a direction vector (no translation) into local space.
func (t Transform) DirectionToLocal(worldDirection mgl64.Vec3) mgl64.Vec3 {
	return t.InverseRotation.Rotate(worldDirection)
}

// DirectionToWorld maps a direction vector (no translation) into world space.
func (t Transform) DirectionToWorld(localDirection mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation.Rotate(localDirection)
}
