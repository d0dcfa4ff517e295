package math

// Ray represents a ray with an origin and a direction.
type Ray struct {
	Origin    Point3
	Direction Vector3
}

// At returns the point t units along the ray.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform returns the ray with origin and direction run through m.
// The direction is transformed as a vector, so it is not re-normalized.
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulVector(r.Direction),
	}
}
