// Package ggfx provides pixel-level image effects for Go.
//
// # Overview
//
// ggfx applies stateless filters to rectangular buffers of packed 32-bit
// ARGB samples, or to 8-bit monochrome intensity buffers. Every effect is
// built on one of two engines:
//
//   - convolution with a kernel (package convolve, kernels in package kernel)
//   - geometric remapping with nearest, bilinear or bicubic resampling
//     (package warp)
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ggfx"
//	    "github.com/gogpu/ggfx/convolve"
//	    "github.com/gogpu/ggfx/warp"
//	)
//
//	buf, _ := ggfx.FromImage(img)
//
//	blur, _ := convolve.NewGaussianBlur(3)
//	twirl, _ := warp.New(warp.Twirl(math.Pi/2, 80, 0.5, 0.5),
//	    warp.WithInterpolation(warp.Bicubic))
//
//	p := ggfx.NewPipeline(blur, twirl)
//	if _, err := ggfx.Apply(p, buf); err != nil {
//	    return err
//	}
//	out := buf.Image()
//
// # Contract
//
// A [Filter] transforms a flat, row-major sample array. [ApplyRegion] lifts
// it onto buffers: it extracts a region, runs the filter a number of
// iterations with ping-pong buffers and writes the result back. Channel
// selection is described by [ChannelMask]; edge handling by [EdgeMode].
//
// # Concurrency
//
// Filters resolve all derived state at construction time or per call, so a
// configured filter may be used from several goroutines. The Gaussian
// kernel cache in package kernel is the only shared mutable state and is
// synchronized.
//
// # Logging
//
// ggfx is silent by default. Use [SetLogger] to receive debug records.
package ggfx
