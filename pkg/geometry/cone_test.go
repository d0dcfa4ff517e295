package geometry

import (
	gomath "math"
	"testing"

	"prism/pkg/math"
)

func TestConeIntersect(t *testing.T) {
	co := NewCone()
	cases := []struct {
		origin    math.Point3
		direction math.Vector3
		t1, t2    float64
	}{
		{math.Point3{0, 0, -5}, math.Vector3{0, 0, 1}, 5, 5},
		{math.Point3{0, 0, -5}, math.Vector3{1, 1, 1}, 8.66025, 8.66025},
		{math.Point3{1, 1, -5}, math.Vector3{-0.5, -1, 1}, 4.55006, 49.44994},
	}
	for _, c := range cases {
		r := math.Ray{Origin: c.origin, Direction: c.direction.Normalize()}
		xs := intersect(co, r)
		if len(xs) != 2 || !approxEq(xs[0].T, c.t1) || !approxEq(xs[1].T, c.t2) {
			t.Errorf("ray %v produced %v, want [%v %v]", r, xs, c.t1, c.t2)
		}
	}
}

func TestConeIntersectParallelToNappe(t *testing.T) {
	co := NewCone()
	r := math.Ray{Origin: math.Point3{0, 0, -1}, Direction: math.Vector3{0, 1, 1}.Normalize()}
	xs := intersect(co, r)
	if len(xs) != 1 || !approxEq(xs[0].T, 0.35355) {
		t.Errorf("parallel ray produced %v, want [0.35355]", xs)
	}
}

func TestConeCaps(t *testing.T) {
	co := NewCone()
	co.Min, co.Max = -0.5, 0.5
	co.Closed = true
	cases := []struct {
		origin    math.Point3
		direction math.Vector3
		count     int
	}{
		{math.Point3{0, 0, -5}, math.Vector3{0, 1, 0}, 0},
		{math.Point3{0, 0, -0.25}, math.Vector3{0, 1, 1}, 2},
		{math.Point3{0, 0, -0.25}, math.Vector3{0, 1, 0}, 4},
	}
	for _, c := range cases {
		r := math.Ray{Origin: c.origin, Direction: c.direction.Normalize()}
		if xs := intersect(co, r); len(xs) != c.count {
			t.Errorf("ray %v produced %d intersections, want %d", r, len(xs), c.count)
		}
	}
}

// Cap intersections accept radial distance up to the cap plane's |y|.
func TestConeCapRadius(t *testing.T) {
	co := NewCone()
	co.Min, co.Max = -2, 2
	co.Closed = true

	// Straight down at x = 1.5: top cap (radius 2), upper nappe wall, lower
	// nappe wall, bottom cap. A unit-radius cap test would drop both caps.
	r := math.Ray{Origin: math.Point3{1.5, 5, 0}, Direction: math.Vector3{0, -1, 0}}
	xs := intersect(co, r)
	if len(xs) != 4 {
		t.Fatalf("ray through caps produced %d intersections, want 4", len(xs))
	}
	if !approxEq(xs[0].T, 3) || !approxEq(xs[3].T, 7) {
		t.Errorf("cap intersections = %v, want t=3 first and t=7 last", xs)
	}
}

func TestConeNormal(t *testing.T) {
	co := NewCone()
	cases := []struct {
		point math.Point3
		want  math.Vector3
	}{
		{math.Point3{1, 1, 1}, math.Vector3{1, -gomath.Sqrt2, 1}},
		{math.Point3{-1, -1, 0}, math.Vector3{-1, 1, 0}},
	}
	for _, c := range cases {
		// Compare the local normal shape; NormalAt would normalize it.
		if got := co.localNormalAt(c.point); !vecApproxEq(got, c.want) {
			t.Errorf("localNormalAt(%v) = %v, want %v", c.point, got, c.want)
		}
	}

	if got := co.localNormalAt(math.Point3{}); got != (math.Vector3{}) {
		t.Errorf("apex normal = %v, want zero", got)
	}
}

func TestConeBounds(t *testing.T) {
	co := NewCone()
	if !co.Bounds().Unbounded() {
		t.Error("open cone bounds must be unbounded")
	}

	co.Min, co.Max = -1.5, 0.5
	got := co.Bounds()
	want := math.AABB3D{Min: math.Point3{-1.5, -1.5, -1.5}, Max: math.Point3{1.5, 0.5, 1.5}}
	if got != want {
		t.Errorf("truncated cone bounds = %v, want %v", got, want)
	}
}
