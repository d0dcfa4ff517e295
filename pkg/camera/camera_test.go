package camera

import (
	gomath "math"
	"testing"

	"prism/pkg/math"
)

func approxEq(a, b float64) bool {
	return gomath.Abs(a-b) < 1e-5
}

func vecApproxEq(a, b math.Vector3) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func pointApproxEq(a, b math.Point3) bool {
	return approxEq(a.X, b.X) && approxEq(a.Y, b.Y) && approxEq(a.Z, b.Z)
}

func TestCameraDefaults(t *testing.T) {
	c := New(160, 120, gomath.Pi/2)
	if c.HSize != 160 || c.VSize != 120 || c.FOV != gomath.Pi/2 {
		t.Errorf("camera = %+v", c)
	}
	if c.Transform() != math.Identity4() {
		t.Errorf("default transform = %v, want identity", c.Transform())
	}
}

func TestCameraPixelSize(t *testing.T) {
	if got := New(200, 125, gomath.Pi/2).PixelSize(); !approxEq(got, 0.01) {
		t.Errorf("horizontal canvas pixel size = %v, want 0.01", got)
	}
	if got := New(125, 200, gomath.Pi/2).PixelSize(); !approxEq(got, 0.01) {
		t.Errorf("vertical canvas pixel size = %v, want 0.01", got)
	}
}

func TestRayThroughCanvasCenter(t *testing.T) {
	c := New(201, 101, gomath.Pi/2)
	r := c.RayForPixel(100, 50)
	if !pointApproxEq(r.Origin, math.Point3{0, 0, 0}) {
		t.Errorf("origin = %v, want origin", r.Origin)
	}
	if !vecApproxEq(r.Direction, math.Vector3{0, 0, -1}) {
		t.Errorf("direction = %v, want {0 0 -1}", r.Direction)
	}
}

func TestRayThroughCanvasCorner(t *testing.T) {
	c := New(201, 101, gomath.Pi/2)
	r := c.RayForPixel(0, 0)
	if !vecApproxEq(r.Direction, math.Vector3{0.66519, 0.33259, -0.66851}) {
		t.Errorf("direction = %v", r.Direction)
	}
}

func TestRayWithTransformedCamera(t *testing.T) {
	c := New(201, 101, gomath.Pi/2)
	m := math.RotationY(gomath.Pi / 4).Mul(math.Translation(0, -2, 5))
	if err := c.SetTransform(m); err != nil {
		t.Fatalf("SetTransform failed: %v", err)
	}
	r := c.RayForPixel(100, 50)
	s := gomath.Sqrt2 / 2
	if !pointApproxEq(r.Origin, math.Point3{0, 2, -5}) {
		t.Errorf("origin = %v, want {0 2 -5}", r.Origin)
	}
	if !vecApproxEq(r.Direction, math.Vector3{s, 0, -s}) {
		t.Errorf("direction = %v, want {%v 0 %v}", r.Direction, s, -s)
	}
}

func TestCameraRejectsSingularTransform(t *testing.T) {
	c := New(10, 10, gomath.Pi/3)
	if err := c.SetTransform(math.Scaling(0, 0, 0)); err == nil {
		t.Error("expected error for singular view transform")
	}
}
