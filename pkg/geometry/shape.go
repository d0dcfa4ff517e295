package geometry

import (
	"prism/pkg/math"
	"prism/pkg/shading"
)

// Shape is implemented by every geometric object in the scene. Concrete
// primitives define their geometry in object space; the exported wrappers in
// this package handle the world/object conversions, so kernels never see a
// world-space ray.
type Shape interface {
	Transform() math.Matrix4
	SetTransform(math.Matrix4) error
	Inverse() math.Matrix4
	InverseTranspose() math.Matrix4
	Material() *shading.Material
	SetMaterial(shading.Material)
	CastShadow() bool
	SetCastShadow(bool)
	Parent() Shape
	WorldToObject(math.Point3) math.Point3
	NormalToWorld(math.Vector3) math.Vector3

	// Bounds returns the untransformed object-space bounding box.
	Bounds() math.AABB3D

	setParent(Shape)
	localIntersect(r math.Ray, xs *Intersections)
	localNormalAt(p math.Point3) math.Vector3
}

// Core carries the attributes shared by every shape and is embedded in each
// primitive. The inverse transforms are cached on SetTransform so the hot
// path never inverts a matrix.
type Core struct {
	transform  math.Matrix4
	inverse    math.Matrix4
	inverseT   math.Matrix4
	material   shading.Material
	castShadow bool
	parent     Shape
}

// NewCore returns a Core with an identity transform and the default material.
func NewCore() Core {
	return Core{
		transform:  math.Identity4(),
		inverse:    math.Identity4(),
		inverseT:   math.Identity4(),
		material:   shading.DefaultMaterial(),
		castShadow: true,
	}
}

// Transform returns the object-to-world transform.
func (c *Core) Transform() math.Matrix4 { return c.transform }

// SetTransform replaces the transform, caching its inverse and the inverse
// transpose. Singular transforms are rejected.
func (c *Core) SetTransform(m math.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inv
	c.inverseT = inv.Transpose()
	return nil
}

// Inverse returns the cached world-to-object transform.
func (c *Core) Inverse() math.Matrix4 { return c.inverse }

// InverseTranspose returns the cached normal transform.
func (c *Core) InverseTranspose() math.Matrix4 { return c.inverseT }

// Material returns the shape's material.
func (c *Core) Material() *shading.Material { return &c.material }

// SetMaterial replaces the shape's material.
func (c *Core) SetMaterial(m shading.Material) { c.material = m }

// CastShadow reports whether the shape occludes light.
func (c *Core) CastShadow() bool { return c.castShadow }

// SetCastShadow controls whether the shape occludes light.
func (c *Core) SetCastShadow(v bool) { c.castShadow = v }

// Parent returns the group the shape belongs to, or nil.
func (c *Core) Parent() Shape { return c.parent }

func (c *Core) setParent(p Shape) { c.parent = p }

// WorldToObject converts a world-space point to the shape's object space,
// walking the parent chain top-down.
func (c *Core) WorldToObject(p math.Point3) math.Point3 {
	if c.parent != nil {
		p = c.parent.WorldToObject(p)
	}
	return c.inverse.MulPoint(p)
}

// NormalToWorld converts an object-space normal to world space, normalizing
// at each level on the way up the parent chain.
func (c *Core) NormalToWorld(n math.Vector3) math.Vector3 {
	n = c.inverseT.MulVector(n).Normalize()
	if c.parent != nil {
		n = c.parent.NormalToWorld(n)
	}
	return n
}

// Intersect transforms the ray into the shape's object space and appends any
// intersections to xs. The list is left unsorted; callers sort once per ray.
func Intersect(s Shape, r math.Ray, xs *Intersections) {
	local := r.Transform(s.Inverse())
	s.localIntersect(local, xs)
}

// NormalAt returns the world-space surface normal at a world-space point.
func NormalAt(s Shape, worldPoint math.Point3) math.Vector3 {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.localNormalAt(localPoint)
	return s.NormalToWorld(localNormal)
}

// WorldBounds returns the shape's bounds mapped through its own transform,
// i.e. the box a parent group should use for this child.
func WorldBounds(s Shape) math.AABB3D {
	return s.Bounds().Transform(s.Transform())
}
