package convolve

import (
	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/kernel"
)

// Option configures a convolution filter during creation.
type Option func(*options)

type options struct {
	edge  ggfx.EdgeMode
	mask  ggfx.ChannelMask
	cache *kernel.GaussianCache
}

func defaultOptions() options {
	return options{
		edge: ggfx.EdgeExtend,
		mask: ggfx.AllChannels,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithEdge sets how samples outside the image are resolved.
// The default is ggfx.EdgeExtend.
func WithEdge(m ggfx.EdgeMode) Option {
	return func(o *options) {
		o.edge = m
	}
}

// WithChannels sets the channels the filter modifies.
// The default is ggfx.AllChannels.
func WithChannels(m ggfx.ChannelMask) Option {
	return func(o *options) {
		o.mask = m
	}
}

// WithCache sets the cache Gaussian-based filters take their kernel from.
// The default is kernel.DefaultGaussianCache().
func WithCache(c *kernel.GaussianCache) Option {
	return func(o *options) {
		o.cache = c
	}
}
