package geometry

import (
	gomath "math"

	"prism/pkg/math"
)

// Cone is the double-napped cone around the y axis with apex at the origin,
// truncated to (Min, Max) and optionally capped. A cap's radius equals the
// absolute y of its plane.
type Cone struct {
	Core
	Min, Max float64
	Closed   bool
}

// NewCone returns an open, unbounded double cone with an identity transform.
func NewCone() *Cone {
	return &Cone{Core: NewCore(), Min: gomath.Inf(-1), Max: gomath.Inf(1)}
}

func (co *Cone) localIntersect(r math.Ray, xs *Intersections) {
	o, d := r.Origin, r.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	c := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case gomath.Abs(a) < math.Epsilon && gomath.Abs(b) < math.Epsilon:
		// Ray misses both nappes entirely.
	case gomath.Abs(a) < math.Epsilon:
		// Parallel to one nappe, still pierces the other.
		t := -c / (2 * b)
		y := o.Y + t*d.Y
		if co.Min < y && y < co.Max {
			xs.Add(t, co)
		}
	default:
		disc := b*b - 4*a*c
		if disc < 0 {
			break
		}
		sq := gomath.Sqrt(disc)
		t0 := (-b - sq) / (2 * a)
		t1 := (-b + sq) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		for _, t := range [2]float64{t0, t1} {
			y := o.Y + t*d.Y
			if co.Min < y && y < co.Max {
				xs.Add(t, co)
			}
		}
	}

	co.intersectCaps(r, xs)
}

func (co *Cone) intersectCaps(r math.Ray, xs *Intersections) {
	if !co.Closed || gomath.Abs(r.Direction.Y) < math.Epsilon {
		return
	}
	for _, capY := range [2]float64{co.Min, co.Max} {
		t := (capY - r.Origin.Y) / r.Direction.Y
		if checkCap(r, t, gomath.Abs(capY)) {
			xs.Add(t, co)
		}
	}
}

func (co *Cone) localNormalAt(p math.Point3) math.Vector3 {
	dist := p.X*p.X + p.Z*p.Z
	if dist < co.Max*co.Max && p.Y >= co.Max-math.Epsilon {
		return math.Vector3{Y: 1}
	}
	if dist < co.Min*co.Min && p.Y <= co.Min+math.Epsilon {
		return math.Vector3{Y: -1}
	}

	y := gomath.Sqrt(dist)
	if p.Y > 0 {
		y = -y
	}
	return math.Vector3{X: p.X, Y: y, Z: p.Z}
}

// Bounds returns the box enclosing both truncated nappes; an untruncated
// cone is unbounded on every axis.
func (co *Cone) Bounds() math.AABB3D {
	limit := gomath.Max(gomath.Abs(co.Min), gomath.Abs(co.Max))
	return math.AABB3D{
		Min: math.Point3{X: -limit, Y: co.Min, Z: -limit},
		Max: math.Point3{X: limit, Y: co.Max, Z: limit},
	}
}
