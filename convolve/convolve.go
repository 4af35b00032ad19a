package convolve

import (
	"fmt"
	"math"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/kernel"
)

// Filter convolves samples with a kernel.
type Filter struct {
	kernel  *kernel.Kernel
	weights []float64
	edge    ggfx.EdgeMode
	mask    ggfx.ChannelMask
}

// New creates a convolution filter for k.
func New(k *kernel.Kernel, opts ...Option) (*Filter, error) {
	if k == nil {
		return nil, fmt.Errorf("%w: kernel is nil", ggfx.ErrNilReference)
	}
	o := buildOptions(opts)
	if !o.edge.IsValid() {
		return nil, fmt.Errorf("%w: edge mode %d", ggfx.ErrInvalidArgument, o.edge)
	}
	return &Filter{
		kernel:  k,
		weights: k.Matrix(),
		edge:    o.edge,
		mask:    o.mask,
	}, nil
}

// Kernel returns the convolution kernel.
func (f *Filter) Kernel() *kernel.Kernel {
	return f.kernel
}

// Edge returns the edge mode.
func (f *Filter) Edge() ggfx.EdgeMode {
	return f.edge
}

// ChannelMask returns the channels the filter modifies.
func (f *Filter) ChannelMask() ggfx.ChannelMask {
	return f.mask
}

// SetChannelMask changes the channels the filter modifies.
func (f *Filter) SetChannelMask(m ggfx.ChannelMask) {
	f.mask = m
}

// withMask returns a shallow copy running with mask m. The kernel weights
// are shared; they are never written after construction.
func (f *Filter) withMask(m ggfx.ChannelMask) *Filter {
	c := *f
	c.mask = m
	return &c
}

// String returns a short description of the filter.
func (f *Filter) String() string {
	return fmt.Sprintf("convolve(%v, edge=%v, channels=%v)", f.kernel, f.edge, f.mask)
}

// Process implements ggfx.Filter.
func (f *Filter) Process(in, out []uint32, width, height int) error {
	if err := ggfx.CheckSize(in, out, width, height); err != nil {
		return err
	}
	if f.mask.IsZero() {
		copy(out, in[:width*height])
		return nil
	}

	if f.mask.Monochrome {
		f.convolveMono(in, out, width, height)
	} else {
		f.convolveARGB(in, out, width, height)
	}
	return nil
}

func (f *Filter) convolveARGB(in, out []uint32, width, height int) {
	kw, kh := f.kernel.Width(), f.kernel.Height()
	cx, cy := kw/2, kh/2
	div, off := f.kernel.Divisor(), float64(f.kernel.Offset())

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var a, r, g, b float64
			for j := 0; j < kh; j++ {
				sy, ok := f.edge.Resolve(y+j-cy, height)
				if !ok {
					continue
				}
				row := f.weights[j*kw : (j+1)*kw]
				for i, w := range row {
					if w == 0 {
						continue
					}
					sx, ok := f.edge.Resolve(x+i-cx, width)
					if !ok {
						continue
					}
					p := in[sy*width+sx]
					a += w * float64(p>>24)
					r += w * float64(p>>16&0xff)
					g += w * float64(p>>8&0xff)
					b += w * float64(p&0xff)
				}
			}
			idx := y*width + x
			v := ggfx.PackARGB(quantize(a, div, off), quantize(r, div, off),
				quantize(g, div, off), quantize(b, div, off))
			out[idx] = f.mask.Merge(in[idx], v)
		}
	}
}

func (f *Filter) convolveMono(in, out []uint32, width, height int) {
	kw, kh := f.kernel.Width(), f.kernel.Height()
	cx, cy := kw/2, kh/2
	div, off := f.kernel.Divisor(), float64(f.kernel.Offset())

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var acc float64
			for j := 0; j < kh; j++ {
				sy, ok := f.edge.Resolve(y+j-cy, height)
				if !ok {
					continue
				}
				row := f.weights[j*kw : (j+1)*kw]
				for i, w := range row {
					if w == 0 {
						continue
					}
					sx, ok := f.edge.Resolve(x+i-cx, width)
					if !ok {
						continue
					}
					acc += w * float64(in[sy*width+sx]&0xff)
				}
			}
			out[y*width+x] = uint32(quantize(acc, div, off))
		}
	}
}

// quantize converts an accumulated channel sum to a byte, rounding half up.
func quantize(acc, div, off float64) uint8 {
	v := acc/div + off
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Floor(v + 0.5))
}
