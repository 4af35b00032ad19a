package warp

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Affine maps each destination pixel through m, a destination-to-source
// matrix.
func Affine(m f64.Aff3) Mapping {
	inv := affineFunc(m)
	return Mapping{
		Inverse: func(int, int) InverseFunc { return inv },
	}
}

// Transform builds a mapping from a forward (source-to-destination) matrix.
// It fails with ErrSingular when the matrix has no inverse.
func Transform(forward f64.Aff3) (Mapping, error) {
	m, err := invert(forward)
	if err != nil {
		return Mapping{}, err
	}
	return Affine(m), nil
}

// Offset shifts the image by (dx, dy). Combined with ggfx.EdgeWrap it
// scrolls the image.
func Offset(dx, dy float64) Mapping {
	return Affine(f64.Aff3{1, 0, -dx, 0, 1, -dy})
}

// Rotate rotates the destination coordinates by angle radians about the
// point (cx*width, cy*height).
func Rotate(angle, cx, cy float64) Mapping {
	sin, cos := math.Sincos(angle)
	return Mapping{
		Inverse: func(w, h int) InverseFunc {
			px, py := cx*float64(w), cy*float64(h)
			return affineFunc(f64.Aff3{
				cos, -sin, px - cos*px + sin*py,
				sin, cos, py - sin*px - cos*py,
			})
		},
	}
}

// Scale samples the source at c + (d - c) * (sx, sy), where c is
// (cx*width, cy*height). Factors below 1 magnify.
func Scale(sx, sy, cx, cy float64) Mapping {
	return Mapping{
		Inverse: func(w, h int) InverseFunc {
			px, py := cx*float64(w), cy*float64(h)
			return affineFunc(f64.Aff3{
				sx, 0, px * (1 - sx),
				0, sy, py * (1 - sy),
			})
		},
	}
}

func affineFunc(m f64.Aff3) InverseFunc {
	return func(x, y int) (float64, float64) {
		fx, fy := float64(x), float64(y)
		return m[0]*fx + m[1]*fy + m[2], m[3]*fx + m[4]*fy + m[5]
	}
}

func invert(m f64.Aff3) (f64.Aff3, error) {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 || !finite(det) {
		return f64.Aff3{}, ErrSingular
	}
	return f64.Aff3{
		m[4] / det, -m[1] / det, (m[1]*m[5] - m[4]*m[2]) / det,
		-m[3] / det, m[0] / det, (m[3]*m[2] - m[0]*m[5]) / det,
	}, nil
}
