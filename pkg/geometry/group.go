package geometry

import (
	gomath "math"
	"sort"

	"prism/pkg/math"
)

// Group is a composite shape. Its transform cascades to every descendant
// through the parent chain, and an aggregated bounding box lets a whole
// subtree be rejected with one slab test.
//
// Children must be fully configured (transform set) before they are added;
// the aggregate boxes are maintained incrementally on AddChild.
type Group struct {
	Core
	bounded   []Shape
	unbounded []Shape
	cullBox   math.AABB3D
}

// NewGroup returns an empty group with an identity transform.
func NewGroup() *Group {
	return &Group{Core: NewCore(), cullBox: math.EmptyAABB()}
}

// AddChild attaches a shape to the group and folds its box into the group's
// aggregate. Shapes with no computable bounds (planes, untruncated cylinders
// and cones) are kept outside the cull box and always tested.
func (g *Group) AddChild(s Shape) {
	s.setParent(g)
	lb := s.Bounds()
	if lb.Unbounded() || lb.Min.X > lb.Max.X {
		g.unbounded = append(g.unbounded, s)
		return
	}
	g.bounded = append(g.bounded, s)
	g.cullBox = g.cullBox.Merge(lb.Transform(s.Transform()))
}

// Children returns all direct children, bounded first.
func (g *Group) Children() []Shape {
	out := make([]Shape, 0, len(g.bounded)+len(g.unbounded))
	out = append(out, g.bounded...)
	out = append(out, g.unbounded...)
	return out
}

func (g *Group) localIntersect(r math.Ray, xs *Intersections) {
	if len(g.bounded) > 0 && g.cullBox.IntersectRay(r) {
		for _, c := range g.bounded {
			Intersect(c, r, xs)
		}
	}
	for _, c := range g.unbounded {
		Intersect(c, r, xs)
	}
}

func (g *Group) localNormalAt(math.Point3) math.Vector3 {
	// Normals always come from concrete children.
	panic("geometry: group has no local normal")
}

// Bounds returns the union of the children's boxes in the group's own space.
// A group with any unbounded child reports a box infinite on every axis.
func (g *Group) Bounds() math.AABB3D {
	if len(g.unbounded) > 0 {
		return math.AABB3D{
			Min: math.Point3{X: gomath.Inf(-1), Y: gomath.Inf(-1), Z: gomath.Inf(-1)},
			Max: math.Point3{X: gomath.Inf(1), Y: gomath.Inf(1), Z: gomath.Inf(1)},
		}
	}
	return g.cullBox
}

// Divide reorganizes groups with more than threshold bounded children into a
// binary tree of subgroups, halving Morton-ordered children at each level.
// Large flattened meshes become log-depth hierarchies so the per-group slab
// test approximates a BVH traversal.
func (g *Group) Divide(threshold int) {
	if threshold > 1 && len(g.bounded) > threshold {
		ordered := make([]Shape, len(g.bounded))
		copy(ordered, g.bounded)
		sort.SliceStable(ordered, func(i, j int) bool {
			ci := WorldBounds(ordered[i]).Center()
			cj := WorldBounds(ordered[j]).Center()
			return math.Morton3D(ci, g.cullBox) < math.Morton3D(cj, g.cullBox)
		})

		mid := len(ordered) / 2
		left, right := NewGroup(), NewGroup()
		for _, c := range ordered[:mid] {
			left.AddChild(c)
		}
		for _, c := range ordered[mid:] {
			right.AddChild(c)
		}

		g.bounded = g.bounded[:0]
		g.cullBox = math.EmptyAABB()
		g.AddChild(left)
		g.AddChild(right)
	}

	for _, c := range g.Children() {
		if sub, ok := c.(*Group); ok {
			sub.Divide(threshold)
		}
	}
}
