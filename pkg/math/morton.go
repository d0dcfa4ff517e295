package math

// expandBits spreads the low 10 bits of v to 30 bits, inserting two zeros
// between each bit.
func expandBits(v uint32) uint32 {
	v &= 0x000003FF
	v = (v | (v << 16)) & 0x030000FF
	v = (v | (v << 8)) & 0x0300F00F
	v = (v | (v << 4)) & 0x030C30C3
	v = (v | (v << 2)) & 0x09249249
	return v
}

// Morton3D computes a 30-bit Morton code for p relative to the box bounds.
// Points outside the box are clamped, so callers may pass approximate bounds.
func Morton3D(p Point3, bounds AABB3D) uint32 {
	diag := bounds.Max.Sub(bounds.Min)
	nx, ny, nz := 0.5, 0.5, 0.5
	if diag.X > 0 {
		nx = clamp01((p.X - bounds.Min.X) / diag.X)
	}
	if diag.Y > 0 {
		ny = clamp01((p.Y - bounds.Min.Y) / diag.Y)
	}
	if diag.Z > 0 {
		nz = clamp01((p.Z - bounds.Min.Z) / diag.Z)
	}
	ux := uint32(nx * 1023.0)
	uy := uint32(ny * 1023.0)
	uz := uint32(nz * 1023.0)
	return (expandBits(ux) << 2) | (expandBits(uy) << 1) | expandBits(uz)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
