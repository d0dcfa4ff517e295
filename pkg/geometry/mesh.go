package geometry

import (
	"fmt"

	"prism/pkg/math"
)

// Mesh defines raw polygon topology: a vertex list and faces indexing into
// it. Decoders (OBJ and friends) produce this; the tracer consumes it as a
// Group of triangles.
type Mesh struct {
	Vertices []math.Point3
	Faces    [][]int
}

// Group flattens the mesh into a group of triangles. Polygons with more than
// three vertices are fan-triangulated around their first vertex. Faces with
// fewer than three vertices or out-of-range indices reject the mesh.
func (m *Mesh) Group() (*Group, error) {
	g := NewGroup()
	for fi, face := range m.Faces {
		if len(face) < 3 {
			return nil, fmt.Errorf("mesh face %d has %d vertices, need at least 3", fi, len(face))
		}
		for _, idx := range face {
			if idx < 0 || idx >= len(m.Vertices) {
				return nil, fmt.Errorf("mesh face %d references vertex %d of %d", fi, idx, len(m.Vertices))
			}
		}
		for i := 1; i < len(face)-1; i++ {
			tri := NewTriangle(m.Vertices[face[0]], m.Vertices[face[i]], m.Vertices[face[i+1]])
			g.AddChild(tri)
		}
	}
	return g, nil
}

// Triangles walks a group depth-first and returns every triangle in it.
func Triangles(g *Group) []*Triangle {
	var out []*Triangle
	for _, c := range g.Children() {
		switch s := c.(type) {
		case *Triangle:
			out = append(out, s)
		case *Group:
			out = append(out, Triangles(s)...)
		}
	}
	return out
}

// CubeMesh returns the six-quad mesh of an axis-aligned cube, handy for
// exercising fan triangulation and as bake-cache test geometry.
func CubeMesh(center math.Point3, radius float64) *Mesh {
	r := radius
	cx, cy, cz := center.X, center.Y, center.Z

	vertices := []math.Point3{
		{X: cx - r, Y: cy - r, Z: cz - r},
		{X: cx + r, Y: cy - r, Z: cz - r},
		{X: cx + r, Y: cy + r, Z: cz - r},
		{X: cx - r, Y: cy + r, Z: cz - r},
		{X: cx - r, Y: cy - r, Z: cz + r},
		{X: cx + r, Y: cy - r, Z: cz + r},
		{X: cx + r, Y: cy + r, Z: cz + r},
		{X: cx - r, Y: cy + r, Z: cz + r},
	}

	faces := [][]int{
		{0, 3, 2, 1}, // back
		{4, 5, 6, 7}, // front
		{0, 1, 5, 4}, // bottom
		{3, 7, 6, 2}, // top
		{0, 4, 7, 3}, // left
		{1, 2, 6, 5}, // right
	}

	return &Mesh{Vertices: vertices, Faces: faces}
}
