// Package warp implements geometric remapping: every destination pixel is
// mapped back to a (possibly fractional) source coordinate which is then
// resampled with nearest, bilinear or bicubic interpolation.
//
// A Mapping supplies the inverse map. Effects such as Twirl or Lens are
// plain Mapping constructors:
//
//	f, err := warp.New(warp.Twirl(math.Pi/2, 80, 0.5, 0.5),
//		warp.WithInterpolation(warp.Bicubic))
//	if err != nil {
//		return err
//	}
//	_, err = ggfx.Apply(f, buf)
//
// Pixels outside the mapping's bounds are copied from the source unchanged.
// Source coordinates outside the image are resolved with the filter's
// ggfx.EdgeMode; EdgeCrop samples transparent black.
package warp
