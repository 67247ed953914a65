package canvas

// RGB8 is a single 8-bit RGB pixel
type RGB8 struct {
	R, G, B uint8
}

// Canvas is a fixed-size pixel buffer with the origin at the top left.
// The buffer is allocated up front so concurrent writers can safely
// store to distinct pixels without coordination.
type Canvas struct {
	width  int
	height int
	pixels []RGB8
}

// NewCanvas allocates a canvas of the given dimensions
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]RGB8, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// SetPixel stores a pixel. Writes outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, pixel RGB8) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = pixel
}

// At returns the pixel at (x, y), or the zero pixel outside the canvas
func (c *Canvas) At(x, y int) RGB8 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return RGB8{}
	}
	return c.pixels[y*c.width+x]
}
