package geometry

import (
	gomath "math"

	"prism/pkg/math"
)

// Plane is the infinite xz-plane at y = 0.
type Plane struct {
	Core
}

// NewPlane returns an xz-plane with an identity transform.
func NewPlane() *Plane {
	return &Plane{Core: NewCore()}
}

func (pl *Plane) localIntersect(r math.Ray, xs *Intersections) {
	if gomath.Abs(r.Direction.Y) < math.Epsilon {
		return
	}
	xs.Add(-r.Origin.Y/r.Direction.Y, pl)
}

func (pl *Plane) localNormalAt(math.Point3) math.Vector3 {
	return math.Vector3{Y: 1}
}

// Bounds returns an infinite slab in x and z at y = 0.
func (pl *Plane) Bounds() math.AABB3D {
	return math.AABB3D{
		Min: math.Point3{X: gomath.Inf(-1), Y: 0, Z: gomath.Inf(-1)},
		Max: math.Point3{X: gomath.Inf(1), Y: 0, Z: gomath.Inf(1)},
	}
}
