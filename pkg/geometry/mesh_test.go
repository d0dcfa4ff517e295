package geometry

import (
	"testing"

	"prism/pkg/math"
)

func TestMeshFanTriangulation(t *testing.T) {
	// A pentagon fans into three triangles around vertex 0.
	m := &Mesh{
		Vertices: []math.Point3{
			{0, 2, 0}, {-2, 1, 0}, {-1, -1, 0}, {1, -1, 0}, {2, 1, 0},
		},
		Faces: [][]int{{0, 1, 2, 3, 4}},
	}
	g, err := m.Group()
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	tris := Triangles(g)
	if len(tris) != 3 {
		t.Fatalf("got %d triangles, want 3", len(tris))
	}
	for i, tri := range tris {
		if tri.P1 != m.Vertices[0] {
			t.Errorf("triangle %d does not fan around vertex 0", i)
		}
		if tri.Parent() != g {
			t.Errorf("triangle %d not parented to the mesh group", i)
		}
	}
	if tris[0].P2 != m.Vertices[1] || tris[0].P3 != m.Vertices[2] {
		t.Errorf("first fan triangle = %v", tris[0])
	}
}

func TestMeshRejectsBadFaces(t *testing.T) {
	m := &Mesh{
		Vertices: []math.Point3{{0, 0, 0}, {1, 0, 0}},
		Faces:    [][]int{{0, 1}},
	}
	if _, err := m.Group(); err == nil {
		t.Error("expected error for a two-vertex face")
	}

	m = &Mesh{
		Vertices: []math.Point3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    [][]int{{0, 1, 7}},
	}
	if _, err := m.Group(); err == nil {
		t.Error("expected error for an out-of-range vertex index")
	}
}

func TestCubeMeshRoundTrip(t *testing.T) {
	m := CubeMesh(math.Point3{1, 2, 3}, 0.5)
	g, err := m.Group()
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	if got := len(Triangles(g)); got != 12 {
		t.Fatalf("cube mesh triangulated into %d triangles, want 12", got)
	}

	// Flat faces pad their degenerate axis by epsilon, so the box is the
	// cube plus at most that pad.
	b := g.Bounds()
	wantMin, wantMax := math.Point3{0.5, 1.5, 2.5}, math.Point3{1.5, 2.5, 3.5}
	const pad = 2 * math.Epsilon
	if b.Min.X > wantMin.X || b.Min.X < wantMin.X-pad ||
		b.Min.Y > wantMin.Y || b.Min.Y < wantMin.Y-pad ||
		b.Min.Z > wantMin.Z || b.Min.Z < wantMin.Z-pad ||
		b.Max.X < wantMax.X || b.Max.X > wantMax.X+pad ||
		b.Max.Y < wantMax.Y || b.Max.Y > wantMax.Y+pad ||
		b.Max.Z < wantMax.Z || b.Max.Z > wantMax.Z+pad {
		t.Errorf("cube mesh bounds = %v, want %v..%v within pad", b, wantMin, wantMax)
	}

	// A ray down the z axis through the cube's center hits front and back.
	xs := intersect(g, math.Ray{Origin: math.Point3{1, 2, -5}, Direction: math.Vector3{0, 0, 1}})
	if len(xs) < 2 {
		t.Fatalf("ray through cube mesh produced %d intersections", len(xs))
	}
	if hit, ok := xs.Hit(); !ok || !approxEq(hit.T, 7.5) {
		t.Errorf("nearest hit = %v, want t=7.5", hit)
	}
}
