// Package kernel provides the immutable weight matrices used by the
// convolution engine, a set of common presets, and a memoizing Gaussian
// kernel factory.
//
// # Kernels
//
// A Kernel is a width x height grid of float64 weights with a divisor and an
// integer offset. The convolution result for one channel is
//
//	clamp(sum(w * v) / divisor + offset, 0, 255)
//
// A divisor <= 0 is coerced to 1 so normalization is always defined.
//
//	k, err := kernel.New(3, 3, []float64{
//		0, -1, 0,
//		-1, 5, -1,
//		0, -1, 0,
//	})
//
// # Gaussian kernels
//
// Gaussian(radius) returns a (2r)x(2r) kernel with sigma = r/3, normalized
// to sum to 1. Kernels are memoized per radius in a process-wide cache; a
// private GaussianCache can be injected where isolation matters (tests,
// long-running services with many radii).
package kernel
