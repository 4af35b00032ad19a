package convolve

import "github.com/gogpu/ggfx/kernel"

// NewBoxBlur creates a filter averaging a w x h neighbourhood.
func NewBoxBlur(w, h int, opts ...Option) (*Filter, error) {
	k, err := kernel.Box(w, h)
	if err != nil {
		return nil, err
	}
	return New(k, opts...)
}

// NewGaussianBlur creates a Gaussian blur of the given radius. The kernel
// comes from the cache set by WithCache, or the default cache.
func NewGaussianBlur(radius int, opts ...Option) (*Filter, error) {
	k, err := gaussian(radius, buildOptions(opts))
	if err != nil {
		return nil, err
	}
	return New(k, opts...)
}

// NewSharpen creates a 3x3 sharpening filter.
func NewSharpen(opts ...Option) (*Filter, error) {
	return New(kernel.Sharpen(), opts...)
}

func gaussian(radius int, o options) (*kernel.Kernel, error) {
	if o.cache != nil {
		return o.cache.Kernel(radius)
	}
	return kernel.Gaussian(radius)
}
