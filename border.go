package ggfx

import (
	"fmt"
	"image"
)

// Border paints solid bands along the edges of a region.
//
// Border only works through ApplyRegion: it needs the destination buffer,
// so Process fails with ErrUnsupported and a Border placed inside a
// Pipeline fails the run.
type Border struct {
	Left   int
	Top    int
	Right  int
	Bottom int

	// Color is the packed sample painted into the bands.
	Color uint32
}

// Process always fails: Border has no flat-array form.
func (b *Border) Process(in, out []uint32, width, height int) error {
	return fmt.Errorf("%w: border requires ApplyRegion", ErrUnsupported)
}

// ApplyRegion copies r from src into dst, then paints the bands.
// The left and right bands span the full height of r; the top and bottom
// bands fill the space between them.
func (b *Border) ApplyRegion(src, dst Buffer, r image.Rectangle) error {
	if b.Left < 0 || b.Top < 0 || b.Right < 0 || b.Bottom < 0 {
		return fmt.Errorf("%w: negative border width", ErrInvalidArgument)
	}

	w, h := r.Dx(), r.Dy()
	pix := src.Region(r)

	fill := func(x0, y0, x1, y1 int) {
		x0, x1 = max(x0, 0), min(x1, w)
		y0, y1 = max(y0, 0), min(y1, h)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				pix[y*w+x] = b.Color
			}
		}
	}

	fill(0, 0, b.Left, h)
	fill(w-b.Right, 0, w, h)
	fill(b.Left, 0, w-b.Right, b.Top)
	fill(b.Left, h-b.Bottom, w-b.Right, h)

	dst.SetRegion(r, pix)
	return nil
}
