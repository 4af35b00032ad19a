package warp

import (
	"image"
	"math"
)

// Radial effects distort a disc of the given radius centred at
// (cx*width, cy*height) and leave everything outside it untouched.

// radial holds the per-size geometry shared by the radial effects.
type radial struct {
	cx, cy float64
	radius float64
	r2     float64
}

func newRadial(radius, cx, cy float64, w, h int) radial {
	return radial{
		cx:     cx * float64(w),
		cy:     cy * float64(h),
		radius: radius,
		r2:     radius * radius,
	}
}

// radialMapping wraps a per-pixel distortion with the identity test and
// bounds common to every radial effect. distort receives the offset from
// the centre and its squared length, which is below r2.
func radialMapping(radius, cx, cy float64, distort func(g radial, x, y, dx, dy, d2 float64) (float64, float64)) Mapping {
	return Mapping{
		Inverse: func(w, h int) InverseFunc {
			g := newRadial(radius, cx, cy, w, h)
			return func(x, y int) (float64, float64) {
				fx, fy := float64(x), float64(y)
				dx, dy := fx-g.cx, fy-g.cy
				d2 := dx*dx + dy*dy
				if d2 >= g.r2 {
					return fx, fy
				}
				return distort(g, fx, fy, dx, dy, d2)
			}
		},
		Bounds: func(w, h int) image.Rectangle {
			g := newRadial(radius, cx, cy, w, h)
			r := math.Abs(radius)
			x0, y0, x1, y1 := g.cx-r, g.cy-r, g.cx+r, g.cy+r
			if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
				return image.Rect(0, 0, w, h)
			}
			return image.Rect(
				int(math.Floor(clampCoord(x0))), int(math.Floor(clampCoord(y0))),
				int(math.Ceil(clampCoord(x1)))+1, int(math.Ceil(clampCoord(y1)))+1,
			)
		},
	}
}

// Twirl rotates pixels around the centre by an angle that falls off
// linearly from angle at the centre to 0 at the radius.
func Twirl(angle, radius, cx, cy float64) Mapping {
	return radialMapping(radius, cx, cy, func(g radial, _, _, dx, dy, d2 float64) (float64, float64) {
		d := math.Sqrt(d2)
		a := math.Atan2(dy, dx) + angle*(g.radius-d)/g.radius
		sin, cos := math.Sincos(a)
		return g.cx + d*cos, g.cy + d*sin
	})
}

// Lens refracts the image through a spherical lens. refraction is the
// refractive index; 1 leaves the image unchanged, the conventional value
// is 1.5.
func Lens(radius, cx, cy, refraction float64) Mapping {
	inv := 1 / refraction
	bend := func(d, d2, z, z2 float64) float64 {
		a1 := math.Pi/2 - math.Acos(d/math.Sqrt(d2+z2))
		a2 := a1 - math.Asin(math.Sin(a1)*inv)
		return -math.Tan(a2) * z
	}
	return radialMapping(radius, cx, cy, func(g radial, x, y, dx, dy, d2 float64) (float64, float64) {
		x2, y2 := dx*dx, dy*dy
		z2 := g.r2 - x2 - y2
		z := math.Sqrt(z2)
		return x + bend(dx, x2, z, z2), y + bend(dy, y2, z, z2)
	})
}

// Water produces concentric ripples. The displacement is
// amplitude*sin(2*pi*d/wavelength - phase), faded towards the radius.
// Conventional values are wavelength 16 and amplitude 10.
func Water(radius, cx, cy, wavelength, amplitude, phase float64) Mapping {
	return radialMapping(radius, cx, cy, func(g radial, x, y, dx, dy, d2 float64) (float64, float64) {
		d := math.Sqrt(d2)
		amount := amplitude * math.Sin(d/wavelength*2*math.Pi-phase)
		if d != 0 {
			amount *= (g.radius - d) / g.radius
			amount *= wavelength / d
		}
		return x + dx*amount, y + dy*amount
	})
}

// Bend rotates pixels by amplitude*(1 - d²/r²)^power, a swirl that is
// strongest at the centre. Conventional values are amplitude 2*pi and
// power 6.
func Bend(radius, cx, cy, amplitude, power float64) Mapping {
	return radialMapping(radius, cx, cy, func(g radial, _, _, dx, dy, d2 float64) (float64, float64) {
		z := d2 / g.r2
		sin, cos := math.Sincos(amplitude * math.Pow(1-z, power))
		return dx*cos - dy*sin + g.cx, dx*sin + dy*cos + g.cy
	})
}
