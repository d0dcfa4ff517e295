package geometry

import (
	gomath "math"

	"prism/pkg/math"
)

// Cube is the axis-aligned box spanning [-1, 1] on every axis.
type Cube struct {
	Core
}

// NewCube returns a unit cube with an identity transform.
func NewCube() *Cube {
	return &Cube{Core: NewCore()}
}

func (c *Cube) localIntersect(r math.Ray, xs *Intersections) {
	xtmin, xtmax := checkAxis(r.Origin.X, r.Direction.X)
	ytmin, ytmax := checkAxis(r.Origin.Y, r.Direction.Y)
	ztmin, ztmax := checkAxis(r.Origin.Z, r.Direction.Z)

	tmin := gomath.Max(xtmin, gomath.Max(ytmin, ztmin))
	tmax := gomath.Min(xtmax, gomath.Min(ytmax, ztmax))
	if tmin > tmax {
		return
	}

	xs.Add(tmin, c)
	xs.Add(tmax, c)
}

// checkAxis intersects the ray with one pair of parallel slab planes.
// A zero divisor yields signed infinities, which fall out of the min/max.
func checkAxis(origin, direction float64) (float64, float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	var tmin, tmax float64
	if gomath.Abs(direction) >= math.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * gomath.Inf(1)
		tmax = tmaxNumerator * gomath.Inf(1)
	}
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

func (c *Cube) localNormalAt(p math.Point3) math.Vector3 {
	ax, ay, az := gomath.Abs(p.X), gomath.Abs(p.Y), gomath.Abs(p.Z)
	maxc := gomath.Max(ax, gomath.Max(ay, az))
	switch maxc {
	case ax:
		return math.Vector3{X: p.X}
	case ay:
		return math.Vector3{Y: p.Y}
	}
	return math.Vector3{Z: p.Z}
}

// Bounds returns the cube itself.
func (c *Cube) Bounds() math.AABB3D {
	return math.AABB3D{
		Min: math.Point3{X: -1, Y: -1, Z: -1},
		Max: math.Point3{X: 1, Y: 1, Z: 1},
	}
}
