package ggfx

import (
	"fmt"
	"image"
	"math"
)

// Filter is the uniform operator interface implemented by every effect.
//
// Process reads width*height samples from in and writes the same number of
// samples to out. in and out must not alias, and implementations never
// write to in. A Filter must not retain either slice after returning.
type Filter interface {
	Process(in, out []uint32, width, height int) error
}

// RegionFilter is implemented by filters that compose their result directly
// into the destination buffer instead of transforming a flat sample array.
// ApplyRegion delegates to it after validating its arguments.
type RegionFilter interface {
	Filter

	// ApplyRegion writes the filtered region r of src into dst at r.
	ApplyRegion(src, dst Buffer, r image.Rectangle) error
}

// Apply filters the whole buffer in place. It is equivalent to
// ApplyRegion(f, buf, buf, Bounds(buf), 1).
func Apply(f Filter, buf Buffer) (Buffer, error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}
	return ApplyRegion(f, buf, buf, Bounds(buf), 1)
}

// ApplyRegion filters region r of src and stores the result into dst at r.
//
// The filter runs iterations times, the output of each pass feeding the
// next. When dst is nil a zeroed buffer compatible with src (and of the
// same size) is created. iterations <= 0 is a no-op that returns dst, or a
// fresh compatible buffer when dst is nil.
//
// Arguments are validated before anything is written: on error dst is left
// untouched. src is only modified when it is also dst.
func ApplyRegion(f Filter, src, dst Buffer, r image.Rectangle, iterations int) (Buffer, error) {
	if f == nil {
		return nil, ErrNilFilter
	}
	if src == nil {
		return nil, ErrNilBuffer
	}
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return nil, fmt.Errorf("%w: negative extent %v", ErrInvalidRegion, r)
	}
	if !r.In(Bounds(src)) {
		return nil, fmt.Errorf("%w: %v outside source %v", ErrInvalidRegion, r, Bounds(src))
	}
	if dst != nil && !r.In(Bounds(dst)) {
		return nil, fmt.Errorf("%w: %v outside destination %v", ErrInvalidRegion, r, Bounds(dst))
	}

	if dst == nil {
		dst = src.NewCompatible(src.Width(), src.Height())
	}
	if iterations <= 0 || r.Empty() {
		return dst, nil
	}

	if rf, ok := f.(RegionFilter); ok {
		cur := src
		for i := 0; i < iterations; i++ {
			if err := rf.ApplyRegion(cur, dst, r); err != nil {
				return nil, err
			}
			cur = dst
		}
		return dst, nil
	}

	w, h := r.Dx(), r.Dy()
	in := src.Region(r)
	out := make([]uint32, len(in))
	for i := 0; i < iterations; i++ {
		if err := f.Process(in, out, w, h); err != nil {
			return nil, err
		}
		in, out = out, in
	}
	dst.SetRegion(r, in)

	Logger().Debug("ggfx: filter applied",
		"filter", fmt.Sprintf("%T", f),
		"region", r,
		"iterations", iterations)
	return dst, nil
}

// CheckSize validates the in/out slices passed to Filter.Process.
// Implementations call it before touching the slices.
func CheckSize(in, out []uint32, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidArgument, width, height)
	}
	if height != 0 && width > math.MaxInt/height {
		return fmt.Errorf("%w: size %dx%d overflows", ErrInvalidArgument, width, height)
	}
	if n := width * height; len(in) < n || len(out) < n {
		return fmt.Errorf("%w: %dx%d needs %d samples, have in=%d out=%d",
			ErrInvalidArgument, width, height, n, len(in), len(out))
	}
	return nil
}
