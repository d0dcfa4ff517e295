package camera

import (
	gomath "math"

	"prism/pkg/math"
)

// Camera projects pixel coordinates onto world-space rays. The canvas sits
// one unit in front of the eye; the view transform orients the eye in the
// world.
type Camera struct {
	HSize, VSize int
	FOV          float64

	transform math.Matrix4
	inverse   math.Matrix4

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// New returns a camera at the origin looking down -z with the given raster
// size and field of view in radians.
func New(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		HSize:     hsize,
		VSize:     vsize,
		FOV:       fov,
		transform: math.Identity4(),
		inverse:   math.Identity4(),
	}

	halfView := gomath.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// Transform returns the camera's view transform.
func (c *Camera) Transform() math.Matrix4 { return c.transform }

// SetTransform installs a view transform, caching its inverse.
func (c *Camera) SetTransform(m math.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// LookAt orients the camera at from toward to; a convenience over
// SetTransform(ViewTransform(...)).
func (c *Camera) LookAt(from, to math.Point3, up math.Vector3) error {
	return c.SetTransform(math.ViewTransform(from, to, up))
}

// PixelSize returns the world-space edge length of one (square) pixel on the
// canvas plane.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// RayForPixel returns the world-space ray through the center of pixel
// (px, py).
func (c *Camera) RayForPixel(px, py int) math.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MulPoint(math.Point3{X: worldX, Y: worldY, Z: -1})
	origin := c.inverse.MulPoint(math.Point3{})
	direction := pixel.Sub(origin).Normalize()

	return math.Ray{Origin: origin, Direction: direction}
}
