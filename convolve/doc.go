// Package convolve implements 2-D kernel convolution over packed ARGB or
// monochrome samples, plus the blur, sharpen, unsharp-mask and glow effects
// built on it.
//
// For every output pixel and every selected channel:
//
//	acc = sum over (i, j) of w(i, j) * v(x+i-kw/2, y+j-kh/2)
//	out = floor(clamp(acc/divisor + offset, 0, 255) + 0.5)
//
// Coordinates outside the image are resolved with the filter's
// ggfx.EdgeMode. EdgeCrop drops the contribution without renormalizing,
// so border pixels come out darker than the interior for positive kernels.
//
// Filters are immutable after construction except for their channel mask,
// and may be shared between goroutines.
package convolve
