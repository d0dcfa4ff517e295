package renderer

import (
	gomath "math"
	"sync"

	"prism/pkg/canvas"
	"prism/pkg/geometry"
	"prism/pkg/math"
	"prism/pkg/shading"
)

// Scene holds the object graph and the light rendered against. It is built
// up front and treated as immutable once rendering starts, so parallel
// workers read it without locks.
type Scene struct {
	Objects []geometry.Shape
	Light   shading.PointLight
}

// NewScene returns an empty scene lit by the default light.
func NewScene() *Scene {
	return &Scene{Light: shading.DefaultLight()}
}

// DefaultScene returns the two-sphere reference scene used across the test
// suite: an outer green-ish sphere and an inner half-size sphere.
func DefaultScene() *Scene {
	sc := NewScene()

	s1 := geometry.NewSphere()
	m := shading.DefaultMaterial()
	m.Color = canvas.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	s1.SetMaterial(m)

	s2 := geometry.NewSphere()
	if err := s2.SetTransform(math.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err) // scaling by constants cannot be singular
	}

	sc.AddObject(s1)
	sc.AddObject(s2)
	return sc
}

// AddObject appends a top-level shape.
func (sc *Scene) AddObject(s geometry.Shape) {
	sc.Objects = append(sc.Objects, s)
}

// xsPool recycles intersection buffers so the recursion allocates nothing
// per ray in the steady state.
var xsPool = sync.Pool{
	New: func() any {
		xs := make(geometry.Intersections, 0, 64)
		return &xs
	},
}

// Intersect appends every object's intersections with r to xs, sorted by
// ascending t. Negative-t entries are kept: the refraction walk needs them.
func (sc *Scene) Intersect(r math.Ray, xs *geometry.Intersections) {
	for _, obj := range sc.Objects {
		geometry.Intersect(obj, r, xs)
	}
	xs.Sort()
}

// ColorAt traces a ray into the scene and returns its color, following
// reflection and refraction down to the given depth. Rays that hit nothing
// are black.
func (sc *Scene) ColorAt(r math.Ray, depth int) canvas.Color {
	xs := xsPool.Get().(*geometry.Intersections)
	defer func() {
		xs.Reset()
		xsPool.Put(xs)
	}()

	sc.Intersect(r, xs)
	hit, ok := xs.Hit()
	if !ok {
		return canvas.Black()
	}

	comps := PrepareComputations(hit, r, *xs)
	return sc.ShadeHit(comps, depth)
}

// ShadeHit composes the surface, reflected and refracted contributions for a
// prepared hit. When the material is both reflective and transparent the
// secondary contributions are blended by the Fresnel reflectance.
func (sc *Scene) ShadeHit(comps Computation, depth int) canvas.Color {
	shadowed := comps.CastShadows && sc.IsShadowed(comps.OverPoint)

	m := comps.Object.Material()
	surface := shading.Lighting(m, comps.Object, sc.Light, comps.OverPoint, comps.Eye, comps.Normal, shadowed)

	reflected := sc.ReflectedColor(comps, depth)
	refracted := sc.RefractedColor(comps, depth)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor bounces a ray off the surface and returns its contribution.
// Exhausted depth terminates the recursion with black.
func (sc *Scene) ReflectedColor(comps Computation, depth int) canvas.Color {
	m := comps.Object.Material()
	if depth <= 0 || m.Reflective == 0 {
		return canvas.Black()
	}
	reflectRay := math.Ray{Origin: comps.OverPoint, Direction: comps.Reflect}
	return sc.ColorAt(reflectRay, depth-1).Scale(m.Reflective)
}

// RefractedColor traces the transmitted ray under the surface. Total
// internal reflection and exhausted depth both contribute black.
func (sc *Scene) RefractedColor(comps Computation, depth int) canvas.Color {
	m := comps.Object.Material()
	if depth <= 0 || m.Transparency == 0 {
		return canvas.Black()
	}

	// Snell: sin(t)^2 = (n1/n2)^2 * (1 - cos(i)^2).
	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return canvas.Black()
	}

	cosT := gomath.Sqrt(1 - sin2T)
	direction := comps.Normal.Mul(nRatio*cosI - cosT).Sub(comps.Eye.Mul(nRatio))
	refractRay := math.Ray{Origin: comps.UnderPoint, Direction: direction}
	return sc.ColorAt(refractRay, depth-1).Scale(m.Transparency)
}

// IsShadowed reports whether a shadow-casting shape blocks the segment from
// p to the light.
func (sc *Scene) IsShadowed(p math.Point3) bool {
	v := sc.Light.Position.Sub(p)
	dist := v.Length()
	r := math.Ray{Origin: p, Direction: v.Mul(1 / dist)}

	xs := xsPool.Get().(*geometry.Intersections)
	defer func() {
		xs.Reset()
		xsPool.Put(xs)
	}()

	sc.Intersect(r, xs)
	for _, i := range *xs {
		if i.T <= 0 {
			continue
		}
		if i.T >= dist {
			break
		}
		if i.Object.CastShadow() {
			return true
		}
	}
	return false
}

// Schlick approximates the Fresnel reflectance for a prepared hit. Under
// total internal reflection it is exactly 1.
func Schlick(comps Computation) float64 {
	cos := comps.Eye.Dot(comps.Normal)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		// Use cos(theta_t) when leaving the denser medium.
		cos = gomath.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*gomath.Pow(1-cos, 5)
}
