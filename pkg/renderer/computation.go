package renderer

import (
	"prism/pkg/geometry"
	"prism/pkg/math"
)

// Computation carries everything ShadeHit needs about one hit, derived once
// per shade call and discarded after it.
type Computation struct {
	T      float64
	Object geometry.Shape

	Point  math.Point3
	Eye    math.Vector3
	Normal math.Vector3

	Reflect math.Vector3
	Inside  bool

	// OverPoint and UnderPoint sit an epsilon off the surface on either side
	// of the normal, so shadow, reflection and refraction rays cannot
	// re-intersect the surface they started on.
	OverPoint  math.Point3
	UnderPoint math.Point3

	CastShadows bool

	// N1 and N2 are the refractive indices either side of the interface.
	N1, N2 float64
}

// PrepareComputations derives the shading state for a hit. xs must be the
// full t-sorted intersection list of the same ray; it drives the refractive
// index bookkeeping.
func PrepareComputations(hit geometry.Intersection, r math.Ray, xs geometry.Intersections) Computation {
	comps := Computation{
		T:           hit.T,
		Object:      hit.Object,
		CastShadows: hit.Object.CastShadow(),
	}

	comps.Point = r.At(hit.T)
	comps.Eye = r.Direction.Neg()
	comps.Normal = geometry.NormalAt(hit.Object, comps.Point)

	if comps.Normal.Dot(comps.Eye) < 0 {
		comps.Inside = true
		comps.Normal = comps.Normal.Neg()
	}

	comps.Reflect = r.Direction.Reflect(comps.Normal)

	offset := comps.Normal.Mul(math.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Add(offset.Neg())

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks the intersection list in order, tracking which
// objects the ray is currently inside. Entering and leaving toggles
// membership; the indices either side of the hit fall out of the last
// container before and after the toggle. An empty stack means vacuum (1.0).
func refractiveIndices(hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = 1, 1
	containers := make([]geometry.Shape, 0, 8)

	for _, i := range xs {
		atHit := i == hit

		if atHit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOf(containers, i.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, i.Object)
		}

		if atHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}

func indexOf(shapes []geometry.Shape, s geometry.Shape) int {
	for i, c := range shapes {
		if c == s {
			return i
		}
	}
	return -1
}
