package canvas

import (
	"bufio"
	"fmt"
	"io"
)

// WritePPM serializes the canvas in plain-text PPM (P3): a header with
// dimensions and the 255 maximum, then one RGB triple per line, top row
// first.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pixels[y*c.width+x]
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
				return fmt.Errorf("writing pixel (%d,%d): %w", x, y, err)
			}
		}
	}

	return bw.Flush()
}
