package geometry

import (
	gomath "math"
	"testing"

	"prism/pkg/math"
)

func TestCylinderMiss(t *testing.T) {
	cy := NewCylinder()
	cases := []struct {
		origin    math.Point3
		direction math.Vector3
	}{
		{math.Point3{1, 0, 0}, math.Vector3{0, 1, 0}},
		{math.Point3{0, 0, 0}, math.Vector3{0, 1, 0}},
		{math.Point3{0, 0, -5}, math.Vector3{1, 1, 1}},
	}
	for _, c := range cases {
		r := math.Ray{Origin: c.origin, Direction: c.direction.Normalize()}
		if xs := intersect(cy, r); len(xs) != 0 {
			t.Errorf("ray %v produced %v, want miss", r, xs)
		}
	}
}

func TestCylinderHit(t *testing.T) {
	cy := NewCylinder()
	cases := []struct {
		origin    math.Point3
		direction math.Vector3
		t1, t2    float64
	}{
		{math.Point3{1, 0, -5}, math.Vector3{0, 0, 1}, 5, 5},
		{math.Point3{0, 0, -5}, math.Vector3{0, 0, 1}, 4, 6},
		{math.Point3{0.5, 0, -5}, math.Vector3{0.1, 1, 1}, 6.80798, 7.08872},
	}
	for _, c := range cases {
		r := math.Ray{Origin: c.origin, Direction: c.direction.Normalize()}
		xs := intersect(cy, r)
		if len(xs) != 2 || !approxEq(xs[0].T, c.t1) || !approxEq(xs[1].T, c.t2) {
			t.Errorf("ray %v produced %v, want [%v %v]", r, xs, c.t1, c.t2)
		}
	}
}

func TestCylinderSideNormal(t *testing.T) {
	cy := NewCylinder()
	cases := []struct {
		point math.Point3
		want  math.Vector3
	}{
		{math.Point3{1, 0, 0}, math.Vector3{1, 0, 0}},
		{math.Point3{0, 5, -1}, math.Vector3{0, 0, -1}},
		{math.Point3{0, -2, 1}, math.Vector3{0, 0, 1}},
		{math.Point3{-1, 1, 0}, math.Vector3{-1, 0, 0}},
	}
	for _, c := range cases {
		if got := NormalAt(cy, c.point); !vecApproxEq(got, c.want) {
			t.Errorf("NormalAt(%v) = %v, want %v", c.point, got, c.want)
		}
	}
}

func TestCylinderTruncated(t *testing.T) {
	cy := NewCylinder()
	cy.Min, cy.Max = 1, 2
	cases := []struct {
		origin    math.Point3
		direction math.Vector3
		count     int
	}{
		{math.Point3{0, 1.5, 0}, math.Vector3{0.1, 1, 0}, 0},
		{math.Point3{0, 3, -5}, math.Vector3{0, 0, 1}, 0},
		{math.Point3{0, 0, -5}, math.Vector3{0, 0, 1}, 0},
		{math.Point3{0, 2, -5}, math.Vector3{0, 0, 1}, 0}, // exactly at the top
		{math.Point3{0, 1, -5}, math.Vector3{0, 0, 1}, 0}, // exactly at the bottom
		{math.Point3{0, 1.5, -2}, math.Vector3{0, 0, 1}, 2},
	}
	for _, c := range cases {
		r := math.Ray{Origin: c.origin, Direction: c.direction.Normalize()}
		if xs := intersect(cy, r); len(xs) != c.count {
			t.Errorf("ray %v produced %d intersections, want %d", r, len(xs), c.count)
		}
	}
}

func TestCylinderCaps(t *testing.T) {
	cy := NewCylinder()
	cy.Min, cy.Max = 1, 2
	cy.Closed = true
	cases := []struct {
		origin    math.Point3
		direction math.Vector3
		count     int
	}{
		{math.Point3{0, 3, 0}, math.Vector3{0, -1, 0}, 2},
		{math.Point3{0, 3, -2}, math.Vector3{0, -1, 2}, 2},
		{math.Point3{0, 4, -2}, math.Vector3{0, -1, 1}, 2}, // cap-to-edge corner case
		{math.Point3{0, 0, -2}, math.Vector3{0, 1, 2}, 2},
		{math.Point3{0, -1, -2}, math.Vector3{0, 1, 1}, 2},
	}
	for _, c := range cases {
		r := math.Ray{Origin: c.origin, Direction: c.direction.Normalize()}
		if xs := intersect(cy, r); len(xs) != c.count {
			t.Errorf("ray %v produced %d intersections, want %d", r, len(xs), c.count)
		}
	}
}

func TestCylinderCapNormal(t *testing.T) {
	cy := NewCylinder()
	cy.Min, cy.Max = 1, 2
	cy.Closed = true
	cases := []struct {
		point math.Point3
		want  math.Vector3
	}{
		{math.Point3{0, 1, 0}, math.Vector3{0, -1, 0}},
		{math.Point3{0.5, 1, 0}, math.Vector3{0, -1, 0}},
		{math.Point3{0, 1, 0.5}, math.Vector3{0, -1, 0}},
		{math.Point3{0, 2, 0}, math.Vector3{0, 1, 0}},
		{math.Point3{0.5, 2, 0}, math.Vector3{0, 1, 0}},
		{math.Point3{0, 2, 0.5}, math.Vector3{0, 1, 0}},
	}
	for _, c := range cases {
		if got := NormalAt(cy, c.point); !vecApproxEq(got, c.want) {
			t.Errorf("NormalAt(%v) = %v, want %v", c.point, got, c.want)
		}
	}
}

func TestCylinderBounds(t *testing.T) {
	cy := NewCylinder()
	if !cy.Bounds().Unbounded() {
		t.Error("open cylinder bounds must be unbounded in y")
	}

	cy.Min, cy.Max = -2, 3
	got := cy.Bounds()
	want := math.AABB3D{Min: math.Point3{-1, -2, -1}, Max: math.Point3{1, 3, 1}}
	if got != want {
		t.Errorf("truncated bounds = %v, want %v", got, want)
	}
	if gomath.IsInf(got.Min.Y, -1) {
		t.Error("truncated cylinder still unbounded")
	}
}
