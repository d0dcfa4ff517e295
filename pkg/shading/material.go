package shading

import "prism/pkg/canvas"

// Material holds the Phong shading parameters of a surface.
type Material struct {
	Color           canvas.Color
	Pattern         Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// DefaultMaterial returns the standard opaque white material.
func DefaultMaterial() Material {
	return Material{
		Color:           canvas.White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// GlassMaterial returns a transparent, reflective preset with the refractive
// index of glass.
func GlassMaterial() Material {
	m := DefaultMaterial()
	m.Transparency = 1
	m.Reflective = 0.9
	m.RefractiveIndex = 1.5
	return m
}
