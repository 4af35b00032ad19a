package warp

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/ggfx"
)

// ErrSingular is returned when a forward transform cannot be inverted.
var ErrSingular = fmt.Errorf("%w: singular transform", ggfx.ErrInvalidArgument)

// InverseFunc maps a destination pixel to the source coordinate it is
// sampled from.
type InverseFunc func(x, y int) (sx, sy float64)

// Mapping describes a geometric effect.
//
// Inverse is called once per pass with the image size, so a mapping can
// derive size-dependent values (centres, matrices) without keeping state.
// Bounds, when set, limits the destination pixels the effect touches;
// pixels outside it keep their source value. A nil Bounds covers the whole
// image.
type Mapping struct {
	Inverse func(width, height int) InverseFunc
	Bounds  func(width, height int) image.Rectangle
}

// Filter resamples its input through a Mapping.
type Filter struct {
	mapping Mapping
	edge    ggfx.EdgeMode
	interp  Interpolation
	mask    ggfx.ChannelMask
}

// New creates a warp filter for m.
func New(m Mapping, opts ...Option) (*Filter, error) {
	if m.Inverse == nil {
		return nil, fmt.Errorf("%w: mapping has no inverse", ggfx.ErrNilReference)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.edge.IsValid() {
		return nil, fmt.Errorf("%w: edge mode %d", ggfx.ErrInvalidArgument, o.edge)
	}
	if !o.interp.IsValid() {
		return nil, fmt.Errorf("%w: interpolation %d", ggfx.ErrInvalidArgument, o.interp)
	}
	return &Filter{
		mapping: m,
		edge:    o.edge,
		interp:  o.interp,
		mask:    o.mask,
	}, nil
}

// Mapping returns the filter's mapping.
func (f *Filter) Mapping() Mapping {
	return f.mapping
}

// Edge returns the edge mode.
func (f *Filter) Edge() ggfx.EdgeMode {
	return f.edge
}

// Interpolation returns the resampling strategy.
func (f *Filter) Interpolation() Interpolation {
	return f.interp
}

// ChannelMask returns the channels the filter modifies.
func (f *Filter) ChannelMask() ggfx.ChannelMask {
	return f.mask
}

// SetChannelMask changes the channels the filter modifies.
func (f *Filter) SetChannelMask(m ggfx.ChannelMask) {
	f.mask = m
}

// Process implements ggfx.Filter.
//
// Destination pixels whose source coordinate is not finite keep their
// source value.
func (f *Filter) Process(in, out []uint32, width, height int) error {
	if err := ggfx.CheckSize(in, out, width, height); err != nil {
		return err
	}
	copy(out, in[:width*height])
	if width == 0 || height == 0 || f.mask.IsZero() {
		return nil
	}

	inverse := f.mapping.Inverse(width, height)
	if inverse == nil {
		return fmt.Errorf("%w: mapping returned no inverse for %dx%d", ggfx.ErrNilReference, width, height)
	}
	r := image.Rect(0, 0, width, height)
	if f.mapping.Bounds != nil {
		r = r.Intersect(f.mapping.Bounds(width, height))
	}

	s := sampler{pix: in, width: width, height: height, edge: f.edge}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sx, sy := inverse(x, y)
			if !finite(sx) || !finite(sy) {
				continue
			}
			idx := y*width + x
			out[idx] = f.mask.Merge(in[idx], s.sample(f.interp, sx, sy))
		}
	}

	ggfx.Logger().Debug("warp: pass done",
		"bounds", r,
		"interpolation", f.interp.String(),
		"edge", f.edge.String())
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
