package canvas

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image copies the canvas into an image.RGBA for use with the standard
// image encoders.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 255})
		}
	}
	return img
}

// WritePNG encodes the canvas as a PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}
