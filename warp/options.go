package warp

import "github.com/gogpu/ggfx"

// Option configures a warp filter during creation.
type Option func(*options)

type options struct {
	edge   ggfx.EdgeMode
	interp Interpolation
	mask   ggfx.ChannelMask
}

func defaultOptions() options {
	return options{
		edge:   ggfx.EdgeExtend,
		interp: Bilinear,
		mask:   ggfx.AllChannels,
	}
}

// WithEdge sets how source coordinates outside the image are resolved.
// The default is ggfx.EdgeExtend.
func WithEdge(m ggfx.EdgeMode) Option {
	return func(o *options) {
		o.edge = m
	}
}

// WithInterpolation sets the resampling strategy. The default is Bilinear.
func WithInterpolation(i Interpolation) Option {
	return func(o *options) {
		o.interp = i
	}
}

// WithChannels sets the channels the filter modifies.
// The default is ggfx.AllChannels.
func WithChannels(m ggfx.ChannelMask) Option {
	return func(o *options) {
		o.mask = m
	}
}
