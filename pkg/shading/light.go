package shading

import (
	"prism/pkg/canvas"
	"prism/pkg/math"
)

// PointLight represents a point light source in the scene.
type PointLight struct {
	Position  math.Point3
	Intensity canvas.Color
}

// DefaultLight returns the white light used by freshly constructed scenes.
func DefaultLight() PointLight {
	return PointLight{
		Position:  math.Point3{X: -10, Y: 10, Z: -10},
		Intensity: canvas.White(),
	}
}
