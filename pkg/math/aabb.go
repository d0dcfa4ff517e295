package math

import gomath "math"

// AABB3D represents an axis-aligned bounding box in 3D space.
type AABB3D struct {
	Min, Max Point3
}

// EmptyAABB returns a box that contains nothing; expanding it with any point
// yields that point.
func EmptyAABB() AABB3D {
	return AABB3D{
		Min: Point3{gomath.Inf(1), gomath.Inf(1), gomath.Inf(1)},
		Max: Point3{gomath.Inf(-1), gomath.Inf(-1), gomath.Inf(-1)},
	}
}

// Contains checks if a Point3 is inside the bounding box.
func (a AABB3D) Contains(p Point3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Center returns the midpoint of the AABB.
func (a AABB3D) Center() Point3 {
	return Point3{
		X: (a.Min.X + a.Max.X) * 0.5,
		Y: (a.Min.Y + a.Max.Y) * 0.5,
		Z: (a.Min.Z + a.Max.Z) * 0.5,
	}
}

// Expand returns a new AABB that includes the given point.
func (a AABB3D) Expand(p Point3) AABB3D {
	return AABB3D{
		Min: Point3{
			X: gomath.Min(a.Min.X, p.X),
			Y: gomath.Min(a.Min.Y, p.Y),
			Z: gomath.Min(a.Min.Z, p.Z),
		},
		Max: Point3{
			X: gomath.Max(a.Max.X, p.X),
			Y: gomath.Max(a.Max.Y, p.Y),
			Z: gomath.Max(a.Max.Z, p.Z),
		},
	}
}

// Merge returns the union of two boxes.
func (a AABB3D) Merge(b AABB3D) AABB3D {
	return a.Expand(b.Min).Expand(b.Max)
}

// Unbounded reports whether any face of the box sits at infinity.
func (a AABB3D) Unbounded() bool {
	return gomath.IsInf(a.Min.X, -1) || gomath.IsInf(a.Min.Y, -1) || gomath.IsInf(a.Min.Z, -1) ||
		gomath.IsInf(a.Max.X, 1) || gomath.IsInf(a.Max.Y, 1) || gomath.IsInf(a.Max.Z, 1)
}

// Corners returns the eight corner points of the box.
func (a AABB3D) Corners() [8]Point3 {
	return [8]Point3{
		{a.Min.X, a.Min.Y, a.Min.Z}, {a.Max.X, a.Min.Y, a.Min.Z},
		{a.Min.X, a.Max.Y, a.Min.Z}, {a.Max.X, a.Max.Y, a.Min.Z},
		{a.Min.X, a.Min.Y, a.Max.Z}, {a.Max.X, a.Min.Y, a.Max.Z},
		{a.Min.X, a.Max.Y, a.Max.Z}, {a.Max.X, a.Max.Y, a.Max.Z},
	}
}

// Transform returns the box enclosing all eight corners mapped through m.
func (a AABB3D) Transform(m Matrix4) AABB3D {
	out := EmptyAABB()
	for _, c := range a.Corners() {
		out = out.Expand(m.MulPoint(c))
	}
	return out
}

// IntersectRay performs a ray-AABB test using the slab method. Axis-parallel
// rays fall back to an interval membership check so no division blows up.
func (a AABB3D) IntersectRay(r Ray) bool {
	tmin := gomath.Inf(-1)
	tmax := gomath.Inf(1)

	axes := [3]struct {
		origin, dir, min, max float64
	}{
		{r.Origin.X, r.Direction.X, a.Min.X, a.Max.X},
		{r.Origin.Y, r.Direction.Y, a.Min.Y, a.Max.Y},
		{r.Origin.Z, r.Direction.Z, a.Min.Z, a.Max.Z},
	}

	for _, ax := range axes {
		if gomath.Abs(ax.dir) < Epsilon {
			if ax.origin < ax.min || ax.origin > ax.max {
				return false
			}
			continue
		}
		t1 := (ax.min - ax.origin) / ax.dir
		t2 := (ax.max - ax.origin) / ax.dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = gomath.Max(tmin, t1)
		tmax = gomath.Min(tmax, t2)
	}

	return tmax >= tmin && tmax > 0
}
