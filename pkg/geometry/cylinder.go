package geometry

import (
	gomath "math"

	"prism/pkg/math"
)

// Cylinder is the unit-radius cylinder around the y axis, truncated to
// (Min, Max) and optionally capped.
type Cylinder struct {
	Core
	Min, Max float64
	Closed   bool
}

// NewCylinder returns an open, unbounded cylinder with an identity transform.
func NewCylinder() *Cylinder {
	return &Cylinder{Core: NewCore(), Min: gomath.Inf(-1), Max: gomath.Inf(1)}
}

func (cy *Cylinder) localIntersect(r math.Ray, xs *Intersections) {
	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z

	if gomath.Abs(a) >= math.Epsilon {
		b := 2*r.Origin.X*r.Direction.X + 2*r.Origin.Z*r.Direction.Z
		c := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1

		disc := b*b - 4*a*c
		if disc < 0 {
			return
		}

		sq := gomath.Sqrt(disc)
		t0 := (-b - sq) / (2 * a)
		t1 := (-b + sq) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		// A wall hit counts only when its y falls strictly inside the range.
		for _, t := range [2]float64{t0, t1} {
			y := r.Origin.Y + t*r.Direction.Y
			if cy.Min < y && y < cy.Max {
				xs.Add(t, cy)
			}
		}
	}

	cy.intersectCaps(r, xs)
}

func (cy *Cylinder) intersectCaps(r math.Ray, xs *Intersections) {
	if !cy.Closed || gomath.Abs(r.Direction.Y) < math.Epsilon {
		return
	}
	for _, capY := range [2]float64{cy.Min, cy.Max} {
		t := (capY - r.Origin.Y) / r.Direction.Y
		if checkCap(r, t, 1) {
			xs.Add(t, cy)
		}
	}
}

// checkCap reports whether the ray at t falls within a cap of the given
// radius.
func checkCap(r math.Ray, t, radius float64) bool {
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	return x*x+z*z <= radius*radius
}

func (cy *Cylinder) localNormalAt(p math.Point3) math.Vector3 {
	dist := p.X*p.X + p.Z*p.Z
	if dist < 1 && p.Y >= cy.Max-math.Epsilon {
		return math.Vector3{Y: 1}
	}
	if dist < 1 && p.Y <= cy.Min+math.Epsilon {
		return math.Vector3{Y: -1}
	}
	return math.Vector3{X: p.X, Z: p.Z}
}

// Bounds returns the unit-radius box over the truncation range; an
// untruncated cylinder is unbounded in y.
func (cy *Cylinder) Bounds() math.AABB3D {
	return math.AABB3D{
		Min: math.Point3{X: -1, Y: cy.Min, Z: -1},
		Max: math.Point3{X: 1, Y: cy.Max, Z: 1},
	}
}
