package geometry

import (
	gomath "math"

	"prism/pkg/math"
	"prism/pkg/shading"
)

// Sphere is the unit sphere centered on the origin.
type Sphere struct {
	Core
}

// NewSphere returns a unit sphere with an identity transform.
func NewSphere() *Sphere {
	return &Sphere{Core: NewCore()}
}

// NewGlassSphere returns a unit sphere with the glass material preset.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.SetMaterial(shading.GlassMaterial())
	return s
}

func (s *Sphere) localIntersect(r math.Ray, xs *Intersections) {
	sphereToRay := r.Origin.Sub(math.Point3{})

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return
	}

	sq := gomath.Sqrt(disc)
	xs.Add((-b-sq)/(2*a), s)
	xs.Add((-b+sq)/(2*a), s)
}

func (s *Sphere) localNormalAt(p math.Point3) math.Vector3 {
	return p.Sub(math.Point3{})
}

// Bounds returns the unit cube enclosing the sphere.
func (s *Sphere) Bounds() math.AABB3D {
	return math.AABB3D{
		Min: math.Point3{X: -1, Y: -1, Z: -1},
		Max: math.Point3{X: 1, Y: 1, Z: 1},
	}
}
