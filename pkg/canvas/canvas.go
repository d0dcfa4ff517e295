package canvas

import (
	"bufio"
	"fmt"
	"image"
	"io"
	gomath "math"
)

// Canvas is a width x height raster of float colors, row-major.
type Canvas struct {
	Width, Height int
	pixels        []Color
}

// New returns a canvas with every pixel set to opaque black.
func New(width, height int) *Canvas {
	c := &Canvas{Width: width, Height: height, pixels: make([]Color, width*height)}
	for i := range c.pixels {
		c.pixels[i] = Black()
	}
	return c
}

// At returns the pixel at (x, y). Out-of-range reads return black.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return Black()
	}
	return c.pixels[y*c.Width+x]
}

// Set writes the pixel at (x, y). Out-of-range writes are silently clipped.
func (c *Canvas) Set(x, y int, col Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// WritePPM encodes the canvas as plain-text PPM (P3): header, then one
// "R G B" line per pixel in row-major order, channels scaled to 0..255.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}
	for _, px := range c.pixels {
		r, g, b := channelByte(px.R), channelByte(px.G), channelByte(px.B)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RGBA copies the canvas into a stdlib image for PNG encoding or display.
func (c *Canvas) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			px := c.pixels[y*c.Width+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = channelByte(px.R)
			img.Pix[i+1] = channelByte(px.G)
			img.Pix[i+2] = channelByte(px.B)
			img.Pix[i+3] = channelByte(px.A)
		}
	}
	return img
}

// CopyRowsRGBA blits rows [y0, y1) into dst, which must share the canvas
// dimensions. Used by previews to show finished bands while others render.
func (c *Canvas) CopyRowsRGBA(dst *image.RGBA, y0, y1 int) {
	for y := y0; y < y1 && y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			px := c.pixels[y*c.Width+x]
			i := dst.PixOffset(x, y)
			dst.Pix[i+0] = channelByte(px.R)
			dst.Pix[i+1] = channelByte(px.G)
			dst.Pix[i+2] = channelByte(px.B)
			dst.Pix[i+3] = channelByte(px.A)
		}
	}
}

func channelByte(v float64) uint8 {
	scaled := gomath.Round(v * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
