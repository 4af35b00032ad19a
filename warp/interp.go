package warp

import (
	"math"

	"github.com/gogpu/ggfx"
)

// Interpolation defines how a fractional source coordinate is resampled.
type Interpolation uint8

const (
	// Nearest truncates the coordinate and takes that pixel.
	// Fast but produces blocky results when scaling.
	Nearest Interpolation = iota

	// Bilinear blends the 2x2 neighbourhood.
	Bilinear

	// Bicubic blends the 4x4 neighbourhood with Keys (a = -0.5) weights.
	// Highest quality but slower than bilinear.
	Bicubic
)

// String returns a string representation of the interpolation mode.
func (i Interpolation) String() string {
	switch i {
	case Nearest:
		return "Nearest"
	case Bilinear:
		return "Bilinear"
	case Bicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// IsValid reports whether i is one of the defined modes.
func (i Interpolation) IsValid() bool {
	return i <= Bicubic
}

// Coordinates are clamped to this magnitude before integer conversion.
// Anything beyond it is outside every image, and wrap still resolves it.
const coordLimit = 1 << 30

// sampler reads packed samples through an edge policy.
type sampler struct {
	pix    []uint32
	width  int
	height int
	edge   ggfx.EdgeMode
}

// at returns the sample at (x, y), or 0 when the edge policy drops it.
func (s *sampler) at(x, y int) uint32 {
	sx, ok := s.edge.Resolve(x, s.width)
	if !ok {
		return 0
	}
	sy, ok := s.edge.Resolve(y, s.height)
	if !ok {
		return 0
	}
	return s.pix[sy*s.width+sx]
}

func (s *sampler) sample(mode Interpolation, fx, fy float64) uint32 {
	switch mode {
	case Nearest:
		return s.nearest(fx, fy)
	case Bicubic:
		return s.bicubic(fx, fy)
	default:
		return s.bilinear(fx, fy)
	}
}

// nearest truncates toward zero.
func (s *sampler) nearest(fx, fy float64) uint32 {
	return s.at(int(clampCoord(fx)), int(clampCoord(fy)))
}

// bilinear blends the four samples around (fx, fy). Channel results are
// truncated.
func (s *sampler) bilinear(fx, fy float64) uint32 {
	fx, fy = clampCoord(fx), clampCoord(fy)
	x0f, y0f := math.Floor(fx), math.Floor(fy)
	x0, y0 := int(x0f), int(y0f)
	wx, wy := fx-x0f, fy-y0f

	p11 := s.at(x0, y0)
	p12 := s.at(x0+1, y0)
	p21 := s.at(x0, y0+1)
	p22 := s.at(x0+1, y0+1)

	var out uint32
	for shift := 0; shift < 32; shift += 8 {
		v := lerp2D(channel(p11, shift), channel(p12, shift),
			channel(p21, shift), channel(p22, shift), wx, wy)
		out |= uint32(clampByte(v)) << shift
	}
	return out
}

// bicubic blends the 4x4 neighbourhood starting one pixel up and left of
// floor(fx, fy). Channel results are truncated and clamped to [0, 255].
func (s *sampler) bicubic(fx, fy float64) uint32 {
	fx, fy = clampCoord(fx), clampCoord(fy)
	x0f, y0f := math.Floor(fx), math.Floor(fy)
	x0, y0 := int(x0f), int(y0f)
	wx := keysWeights(fx - x0f)
	wy := keysWeights(fy - y0f)

	var p [4][4]uint32
	for j := range 4 {
		for i := range 4 {
			p[j][i] = s.at(x0+i-1, y0+j-1)
		}
	}

	var out uint32
	for shift := 0; shift < 32; shift += 8 {
		var v float64
		for j := range 4 {
			var row float64
			for i := range 4 {
				row += wx[i] * channel(p[j][i], shift)
			}
			v += wy[j] * row
		}
		out |= uint32(clampByte(v)) << shift
	}
	return out
}

// keysWeights returns the four cubic convolution weights (a = -0.5) for
// the samples at offsets -1, 0, 1, 2 from the integer part.
func keysWeights(t float64) [4]float64 {
	return [4]float64{
		(-0.5 + (1-0.5*t)*t) * t,
		1 + (-2.5+1.5*t)*t*t,
		(0.5 + (2-1.5*t)*t) * t,
		(-0.5 + 0.5*t) * t * t,
	}
}

func channel(p uint32, shift int) float64 {
	return float64(p >> shift & 0xff)
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}

// clampByte truncates v toward zero and clamps it to [0, 255].
func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func clampCoord(v float64) float64 {
	return math.Max(-coordLimit, math.Min(coordLimit, v))
}
