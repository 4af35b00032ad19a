package ggfx

// EdgeMode defines how sample coordinates outside the image are resolved.
type EdgeMode uint8

const (
	// EdgeCrop drops samples that fall outside the image.
	// Convolution omits their contribution without renormalizing the
	// divisor; resampling treats them as fully transparent black.
	EdgeCrop EdgeMode = iota

	// EdgeExtend clamps coordinates to the nearest valid row or column,
	// replicating border samples.
	EdgeExtend

	// EdgeWrap takes coordinates modulo the image size (torus topology).
	EdgeWrap
)

// String returns a string representation of the edge mode.
func (m EdgeMode) String() string {
	switch m {
	case EdgeCrop:
		return "Crop"
	case EdgeExtend:
		return "Extend"
	case EdgeWrap:
		return "Wrap"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m is one of the defined modes.
func (m EdgeMode) IsValid() bool {
	return m <= EdgeWrap
}

// Resolve maps coordinate v onto [0, n) according to the mode.
// It returns false when the sample must be dropped (crop, or an unknown mode).
// n must be positive.
func (m EdgeMode) Resolve(v, n int) (int, bool) {
	if v >= 0 && v < n {
		return v, true
	}
	switch m {
	case EdgeExtend:
		if v < 0 {
			return 0, true
		}
		return n - 1, true
	case EdgeWrap:
		v %= n
		if v < 0 {
			v += n
		}
		return v, true
	default:
		return 0, false
	}
}
