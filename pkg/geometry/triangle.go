package geometry

import (
	gomath "math"

	"prism/pkg/math"
)

// Triangle is a flat triangle defined by three points, intersected with the
// Moller-Trumbore algorithm. The edge vectors and face normal are
// precomputed at construction.
type Triangle struct {
	Core
	P1, P2, P3 math.Point3
	E1, E2     math.Vector3
	Normal     math.Vector3
}

// NewTriangle returns a triangle over the given points.
func NewTriangle(p1, p2, p3 math.Point3) *Triangle {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	return &Triangle{
		Core:   NewCore(),
		P1:     p1,
		P2:     p2,
		P3:     p3,
		E1:     e1,
		E2:     e2,
		Normal: e2.Cross(e1).Normalize(),
	}
}

func (tr *Triangle) localIntersect(r math.Ray, xs *Intersections) {
	dirCrossE2 := r.Direction.Cross(tr.E2)
	det := tr.E1.Dot(dirCrossE2)
	if gomath.Abs(det) < math.Epsilon {
		return
	}

	f := 1 / det
	p1ToOrigin := r.Origin.Sub(tr.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return
	}

	originCrossE1 := p1ToOrigin.Cross(tr.E1)
	v := f * r.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return
	}

	xs.Add(f*tr.E2.Dot(originCrossE1), tr)
}

func (tr *Triangle) localNormalAt(math.Point3) math.Vector3 {
	return tr.Normal
}

// Bounds returns the tight box over the three points, padded along any
// degenerate axis so flat triangles still have volume for slab tests.
func (tr *Triangle) Bounds() math.AABB3D {
	box := math.EmptyAABB().Expand(tr.P1).Expand(tr.P2).Expand(tr.P3)
	if box.Max.X-box.Min.X < math.Epsilon {
		box.Min.X -= math.Epsilon
		box.Max.X += math.Epsilon
	}
	if box.Max.Y-box.Min.Y < math.Epsilon {
		box.Min.Y -= math.Epsilon
		box.Max.Y += math.Epsilon
	}
	if box.Max.Z-box.Min.Z < math.Epsilon {
		box.Min.Z -= math.Epsilon
		box.Max.Z += math.Epsilon
	}
	return box
}
