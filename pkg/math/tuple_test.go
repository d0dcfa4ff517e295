package math

import (
	gomath "math"
	"testing"
)

func approxEq(a, b float64) bool {
	return gomath.Abs(a-b) < 1e-5
}

func vecApproxEq(a, b Vector3) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func pointApproxEq(a, b Point3) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func TestPointSubPoint(t *testing.T) {
	p1 := Point3{3, 2, 1}
	p2 := Point3{5, 6, 7}
	got := p1.Sub(p2)
	want := Vector3{-2, -4, -6}
	if got != want {
		t.Errorf("Sub failed: got %v, want %v", got, want)
	}
}

func TestPointAddVector(t *testing.T) {
	p := Point3{3, -2, 5}
	v := Vector3{-2, 3, 1}
	got := p.Add(v)
	want := Point3{1, 1, 6}
	if got != want {
		t.Errorf("Add failed: got %v, want %v", got, want)
	}
}

func TestVectorDot(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{2, 3, 4}
	if got := a.Dot(b); got != 20 {
		t.Errorf("Dot failed: got %v, want 20", got)
	}
}

func TestVectorCross(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{2, 3, 4}
	if got := a.Cross(b); got != (Vector3{-1, 2, -1}) {
		t.Errorf("Cross failed: got %v, want {-1 2 -1}", got)
	}
	if got := b.Cross(a); got != (Vector3{1, -2, 1}) {
		t.Errorf("Cross failed: got %v, want {1 -2 1}", got)
	}
}

func TestVectorLength(t *testing.T) {
	if got := (Vector3{1, 2, 3}).Length(); !approxEq(got, gomath.Sqrt(14)) {
		t.Errorf("Length failed: got %v, want sqrt(14)", got)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := Vector3{4, 0, 0}
	if got := v.Normalize(); got != (Vector3{1, 0, 0}) {
		t.Errorf("Normalize failed: got %v, want {1 0 0}", got)
	}

	n := (Vector3{1, 2, 3}).Normalize()
	if !approxEq(n.Length(), 1) {
		t.Errorf("normalized vector has length %v, want 1", n.Length())
	}
}

func TestVectorReflect(t *testing.T) {
	v := Vector3{1, -1, 0}
	n := Vector3{0, 1, 0}
	if got := v.Reflect(n); !vecApproxEq(got, Vector3{1, 1, 0}) {
		t.Errorf("Reflect failed: got %v, want {1 1 0}", got)
	}

	// Slanted surface at 45 degrees.
	v = Vector3{0, -1, 0}
	s := gomath.Sqrt2 / 2
	n = Vector3{s, s, 0}
	if got := v.Reflect(n); !vecApproxEq(got, Vector3{1, 0, 0}) {
		t.Errorf("Reflect failed: got %v, want {1 0 0}", got)
	}
}
