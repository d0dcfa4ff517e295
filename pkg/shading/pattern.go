package shading

import (
	gomath "math"

	"prism/pkg/canvas"
	"prism/pkg/math"
)

// Object is the part of a scene shape that pattern sampling needs: the
// conversion from world space to the shape's object space, composed through
// any parent groups.
type Object interface {
	WorldToObject(math.Point3) math.Point3
}

// Pattern is a procedural color source evaluated in its own pattern space.
type Pattern interface {
	// At returns the color for a pattern-space point.
	At(math.Point3) canvas.Color
	Transform() math.Matrix4
	Inverse() math.Matrix4
	SetTransform(math.Matrix4) error
}

// AtObject samples a pattern through a shape: world space to object space via
// the shape's transform chain, then object space to pattern space via the
// pattern's own inverse transform.
func AtObject(p Pattern, obj Object, worldPoint math.Point3) canvas.Color {
	objectPoint := obj.WorldToObject(worldPoint)
	return p.At(p.Inverse().MulPoint(objectPoint))
}

// patternCore carries the transform every pattern owns.
type patternCore struct {
	transform math.Matrix4
	inverse   math.Matrix4
}

func newPatternCore() patternCore {
	return patternCore{transform: math.Identity4(), inverse: math.Identity4()}
}

func (c *patternCore) Transform() math.Matrix4 { return c.transform }

func (c *patternCore) Inverse() math.Matrix4 { return c.inverse }

func (c *patternCore) SetTransform(m math.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// StripePattern alternates two colors along x in unit bands.
type StripePattern struct {
	patternCore
	A, B canvas.Color
}

// NewStripePattern returns a stripe pattern with an identity transform.
func NewStripePattern(a, b canvas.Color) *StripePattern {
	return &StripePattern{patternCore: newPatternCore(), A: a, B: b}
}

func (p *StripePattern) At(point math.Point3) canvas.Color {
	if int(gomath.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A to B over one unit of x, repeating.
type GradientPattern struct {
	patternCore
	A, B canvas.Color
}

// NewGradientPattern returns a gradient pattern with an identity transform.
func NewGradientPattern(a, b canvas.Color) *GradientPattern {
	return &GradientPattern{patternCore: newPatternCore(), A: a, B: b}
}

func (p *GradientPattern) At(point math.Point3) canvas.Color {
	return p.A.Lerp(p.B, point.X-gomath.Floor(point.X))
}

// RingPattern alternates two colors in concentric rings around the y axis.
type RingPattern struct {
	patternCore
	A, B canvas.Color
}

// NewRingPattern returns a ring pattern with an identity transform.
func NewRingPattern(a, b canvas.Color) *RingPattern {
	return &RingPattern{patternCore: newPatternCore(), A: a, B: b}
}

func (p *RingPattern) At(point math.Point3) canvas.Color {
	if int(gomath.Floor(gomath.Sqrt(point.X*point.X+point.Z*point.Z)))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckerPattern alternates two colors in adjacent unit cubes.
type CheckerPattern struct {
	patternCore
	A, B canvas.Color
}

// NewCheckerPattern returns a checker pattern with an identity transform.
func NewCheckerPattern(a, b canvas.Color) *CheckerPattern {
	return &CheckerPattern{patternCore: newPatternCore(), A: a, B: b}
}

func (p *CheckerPattern) At(point math.Point3) canvas.Color {
	sum := gomath.Floor(point.X) + gomath.Floor(point.Y) + gomath.Floor(point.Z)
	if int(sum)%2 == 0 {
		return p.A
	}
	return p.B
}

// BlendPattern averages two sub-patterns, each sampled through its own
// transform.
type BlendPattern struct {
	patternCore
	P1, P2 Pattern
}

// NewBlendPattern returns a blend of two patterns with an identity transform.
func NewBlendPattern(p1, p2 Pattern) *BlendPattern {
	return &BlendPattern{patternCore: newPatternCore(), P1: p1, P2: p2}
}

func (p *BlendPattern) At(point math.Point3) canvas.Color {
	c1 := p.P1.At(p.P1.Inverse().MulPoint(point))
	c2 := p.P2.At(p.P2.Inverse().MulPoint(point))
	return c1.Add(c2).Scale(0.5)
}
