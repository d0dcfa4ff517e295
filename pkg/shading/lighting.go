package shading

import (
	gomath "math"

	"prism/pkg/canvas"
	"prism/pkg/math"
)

// Lighting computes the Phong color of a surface point. The object is needed
// only when the material carries a pattern; it may be nil otherwise. When the
// point is shadowed only the ambient term contributes.
func Lighting(m *Material, obj Object, light PointLight, point math.Point3, eye, normal math.Vector3, inShadow bool) canvas.Color {
	base := m.Color
	if m.Pattern != nil {
		base = AtObject(m.Pattern, obj, point)
	}

	effective := base.Mul(light.Intensity)
	ambient := effective.Scale(m.Ambient)
	if inShadow {
		return ambient
	}

	lightDir := light.Position.Sub(point).Normalize()
	lightDotNormal := lightDir.Dot(normal)
	if lightDotNormal < 0 {
		// Light is on the other side of the surface.
		return ambient
	}

	diffuse := effective.Scale(m.Diffuse * lightDotNormal)

	specular := canvas.Color{A: 1}
	reflectDir := lightDir.Neg().Reflect(normal)
	reflectDotEye := reflectDir.Dot(eye)
	if reflectDotEye > 0 {
		factor := gomath.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Scale(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
