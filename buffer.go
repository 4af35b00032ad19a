package ggfx

import "image"

// Buffer is a rectangular grid of packed samples that filters read from and
// write to.
//
// Samples are 32-bit values laid out as 0xAARRGGBB. Monochrome buffers store
// an 8-bit intensity in the low byte.
//
// Region and SetRegion take a rectangle in buffer coordinates that must lie
// inside the buffer; ApplyRegion validates this before calling them.
type Buffer interface {
	// Width returns the buffer width in pixels.
	Width() int

	// Height returns the buffer height in pixels.
	Height() int

	// Region returns a row-major copy of the samples inside r.
	Region(r image.Rectangle) []uint32

	// SetRegion stores row-major samples into r. len(pix) is r.Dx()*r.Dy().
	SetRegion(r image.Rectangle, pix []uint32)

	// NewCompatible creates a zeroed buffer of the same pixel format.
	NewCompatible(width, height int) Buffer
}

// Bounds returns the rectangle covering every pixel of b.
func Bounds(b Buffer) image.Rectangle {
	return image.Rect(0, 0, b.Width(), b.Height())
}

// PackARGB packs four 8-bit channels into one sample.
func PackARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB splits a sample into its four 8-bit channels.
func UnpackARGB(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ARGB is a buffer of packed 32-bit ARGB samples.
type ARGB struct {
	width  int
	height int
	pix    []uint32
}

// NewARGB creates a zeroed (transparent black) ARGB buffer.
func NewARGB(width, height int) (*ARGB, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return newARGB(width, height), nil
}

// ARGBFromPixels wraps existing samples without copying.
// len(pix) must equal width*height.
func ARGBFromPixels(width, height int, pix []uint32) (*ARGB, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return nil, ErrInvalidDimensions
	}
	return &ARGB{width: width, height: height, pix: pix}, nil
}

func newARGB(width, height int) *ARGB {
	return &ARGB{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the width of the buffer.
func (p *ARGB) Width() int {
	return p.width
}

// Height returns the height of the buffer.
func (p *ARGB) Height() int {
	return p.height
}

// Pix returns the underlying samples in row-major order.
func (p *ARGB) Pix() []uint32 {
	return p.pix
}

// At returns the sample at (x, y), or 0 outside the buffer.
func (p *ARGB) At(x, y int) uint32 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.pix[y*p.width+x]
}

// Set stores a sample at (x, y). Out-of-range coordinates are ignored.
func (p *ARGB) Set(x, y int, c uint32) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = c
}

// Fill sets every sample to c.
func (p *ARGB) Fill(c uint32) {
	for i := range p.pix {
		p.pix[i] = c
	}
}

// Clone returns a deep copy of the buffer.
func (p *ARGB) Clone() *ARGB {
	c := newARGB(p.width, p.height)
	copy(c.pix, p.pix)
	return c
}

// Region returns a copy of the samples inside r.
func (p *ARGB) Region(r image.Rectangle) []uint32 {
	w := r.Dx()
	out := make([]uint32, w*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := (y - r.Min.Y) * w
		copy(out[row:row+w], p.pix[y*p.width+r.Min.X:])
	}
	return out
}

// SetRegion stores samples into r.
func (p *ARGB) SetRegion(r image.Rectangle, pix []uint32) {
	w := r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := (y - r.Min.Y) * w
		copy(p.pix[y*p.width+r.Min.X:y*p.width+r.Max.X], pix[row:row+w])
	}
}

// NewCompatible creates a zeroed ARGB buffer.
func (p *ARGB) NewCompatible(width, height int) Buffer {
	return newARGB(width, height)
}

// Gray is a buffer of 8-bit intensity samples. It exposes its samples to
// filters as uint32 values in [0, 255]; filters should run with
// MonochromeMask when processing it.
type Gray struct {
	width  int
	height int
	pix    []uint8
}

// NewGray creates a zeroed Gray buffer.
func NewGray(width, height int) (*Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return newGray(width, height), nil
}

// GrayFromPixels wraps existing samples without copying.
func GrayFromPixels(width, height int, pix []uint8) (*Gray, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return nil, ErrInvalidDimensions
	}
	return &Gray{width: width, height: height, pix: pix}, nil
}

func newGray(width, height int) *Gray {
	return &Gray{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

// Width returns the width of the buffer.
func (g *Gray) Width() int {
	return g.width
}

// Height returns the height of the buffer.
func (g *Gray) Height() int {
	return g.height
}

// Pix returns the underlying intensities in row-major order.
func (g *Gray) Pix() []uint8 {
	return g.pix
}

// At returns the intensity at (x, y), or 0 outside the buffer.
func (g *Gray) At(x, y int) uint8 {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.pix[y*g.width+x]
}

// Set stores an intensity at (x, y). Out-of-range coordinates are ignored.
func (g *Gray) Set(x, y int, v uint8) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.pix[y*g.width+x] = v
}

// Region returns the intensities inside r widened to uint32.
func (g *Gray) Region(r image.Rectangle) []uint32 {
	w := r.Dx()
	out := make([]uint32, 0, w*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for _, v := range g.pix[y*g.width+r.Min.X : y*g.width+r.Max.X] {
			out = append(out, uint32(v))
		}
	}
	return out
}

// SetRegion stores the low byte of each sample into r.
func (g *Gray) SetRegion(r image.Rectangle, pix []uint32) {
	w := r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := pix[(y-r.Min.Y)*w : (y-r.Min.Y+1)*w]
		dst := g.pix[y*g.width+r.Min.X : y*g.width+r.Max.X]
		for i, v := range row {
			dst[i] = uint8(v)
		}
	}
}

// NewCompatible creates a zeroed Gray buffer.
func (g *Gray) NewCompatible(width, height int) Buffer {
	return newGray(width, height)
}
