package config

import (
	"fmt"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/convolve"
	"github.com/gogpu/ggfx/kernel"
	"github.com/gogpu/ggfx/warp"
)

// ErrUnknownFilter is returned for an unrecognized filter type.
var ErrUnknownFilter = fmt.Errorf("%w: unknown filter type", ggfx.ErrInvalidArgument)

// Types lists the recognized filter type names.
var Types = []string{
	"convolve", "box-blur", "gaussian-blur", "sharpen", "edge-detect", "emboss",
	"unsharp", "glow",
	"affine", "offset", "rotate", "scale", "twirl", "lens", "water", "bend",
}

// settings are the resolved edge, interpolation and channel choices for a
// single filter.
type settings struct {
	edge   ggfx.EdgeMode
	interp warp.Interpolation
	mask   ggfx.ChannelMask
}

func pick(override, def string) string {
	if override != "" {
		return override
	}
	return def
}

func (c Config) resolve(f FilterConfig) (settings, error) {
	var s settings
	var err error
	if s.edge, err = ParseEdge(pick(f.Edge, c.Edge)); err != nil {
		return s, err
	}
	if s.interp, err = ParseInterpolation(pick(f.Interpolation, c.Interpolation)); err != nil {
		return s, err
	}
	if s.mask, err = ParseChannels(pick(f.Channels, c.Channels)); err != nil {
		return s, err
	}
	return s, nil
}

// Pipeline builds the configured filters, in order, using the default
// Gaussian kernel cache.
func (c Config) Pipeline() (*ggfx.Pipeline, error) {
	return c.PipelineWithCache(kernel.DefaultGaussianCache())
}

// PipelineWithCache builds the configured filters, drawing Gaussian kernels
// from cache.
func (c Config) PipelineWithCache(cache *kernel.GaussianCache) (*ggfx.Pipeline, error) {
	if c.Iterations < 0 {
		return nil, fmt.Errorf("%w: negative iterations %d", ggfx.ErrInvalidArgument, c.Iterations)
	}
	p := ggfx.NewPipeline()
	for i, fc := range c.Filters {
		f, err := c.build(fc, cache)
		if err != nil {
			return nil, fmt.Errorf("config: filter %d (%s): %w", i, fc.Type, err)
		}
		p.Add(f)
	}
	ggfx.Logger().Debug("config: pipeline built", "filters", p.Len())
	return p, nil
}

func (c Config) build(fc FilterConfig, cache *kernel.GaussianCache) (ggfx.Filter, error) {
	s, err := c.resolve(fc)
	if err != nil {
		return nil, err
	}
	copts := []convolve.Option{
		convolve.WithEdge(s.edge),
		convolve.WithChannels(s.mask),
		convolve.WithCache(cache),
	}

	switch fold(fc.Type) {
	case "convolve":
		k, err := kernel.New(fc.Width, fc.Height, fc.Matrix,
			kernel.WithDivisor(fc.Divisor), kernel.WithOffset(fc.Offset))
		if err != nil {
			return nil, err
		}
		return convolve.New(k, copts...)
	case "box-blur":
		return convolve.NewBoxBlur(fc.Width, fc.Height, copts...)
	case "gaussian-blur":
		r := int(fc.Radius)
		if float64(r) != fc.Radius {
			return nil, fmt.Errorf("%w: gaussian radius %v is not an integer", ggfx.ErrInvalidArgument, fc.Radius)
		}
		return convolve.NewGaussianBlur(r, copts...)
	case "sharpen":
		return convolve.NewSharpen(copts...)
	case "edge-detect":
		return convolve.New(kernel.EdgeDetect(), copts...)
	case "emboss":
		return convolve.New(kernel.Emboss(), copts...)
	case "unsharp":
		return convolve.NewUnsharp(fc.Amount, fc.Threshold, copts...)
	case "glow":
		return convolve.NewGlow(fc.Amount, copts...)
	}

	m, err := mapping(fc)
	if err != nil {
		return nil, err
	}
	return warp.New(m,
		warp.WithEdge(s.edge),
		warp.WithInterpolation(s.interp),
		warp.WithChannels(s.mask),
	)
}

func mapping(fc FilterConfig) (warp.Mapping, error) {
	typ := fold(fc.Type)
	if typ == "offset" {
		return warp.Offset(fc.DX, fc.DY), nil
	}
	if typ == "affine" {
		if len(fc.Matrix) != 6 {
			return warp.Mapping{}, fmt.Errorf("%w: affine matrix needs 6 values, got %d", ggfx.ErrInvalidArgument, len(fc.Matrix))
		}
		var a f64.Aff3
		copy(a[:], fc.Matrix)
		return warp.Transform(a)
	}

	if len(fc.Center) != 2 {
		return warp.Mapping{}, fmt.Errorf("%w: center needs 2 values, got %d", ggfx.ErrInvalidArgument, len(fc.Center))
	}
	cx, cy := fc.Center[0], fc.Center[1]
	switch typ {
	case "rotate":
		return warp.Rotate(fc.Angle, cx, cy), nil
	case "scale":
		return warp.Scale(fc.ScaleX, fc.ScaleY, cx, cy), nil
	case "twirl":
		return warp.Twirl(fc.Angle, fc.Radius, cx, cy), nil
	case "lens":
		return warp.Lens(fc.Radius, cx, cy, fc.Refraction), nil
	case "water":
		return warp.Water(fc.Radius, cx, cy, fc.Wavelength, fc.Amplitude, fc.Phase), nil
	case "bend":
		return warp.Bend(fc.Radius, cx, cy, fc.Amplitude, fc.Power), nil
	}
	return warp.Mapping{}, fmt.Errorf("%w %q", ErrUnknownFilter, fc.Type)
}

// BorderFilter returns the configured border filter, or nil when none is set.
func (c Config) BorderFilter() (*ggfx.Border, error) {
	if c.Border == nil {
		return nil, nil
	}
	bc := c.Border
	b := &ggfx.Border{Left: bc.Width, Top: bc.Width, Right: bc.Width, Bottom: bc.Width}
	for _, side := range []struct {
		v   *int
		dst *int
	}{{bc.Left, &b.Left}, {bc.Top, &b.Top}, {bc.Right, &b.Right}, {bc.Bottom, &b.Bottom}} {
		if side.v != nil {
			*side.dst = *side.v
		}
	}
	if b.Left < 0 || b.Top < 0 || b.Right < 0 || b.Bottom < 0 {
		return nil, fmt.Errorf("config: border: %w: negative width", ggfx.ErrInvalidArgument)
	}

	b.Color = 0xff000000
	if bc.Color != "" {
		col, err := ParseColor(bc.Color)
		if err != nil {
			return nil, fmt.Errorf("config: border: %w", err)
		}
		b.Color = col
	}
	return b, nil
}
