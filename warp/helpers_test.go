package warp

import (
	"math"
	"testing"

	"github.com/gogpu/ggfx"
)

func process(t *testing.T, f ggfx.Filter, in []uint32, w, h int) []uint32 {
	t.Helper()
	out := make([]uint32, len(in))
	if err := f.Process(in, out, w, h); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	return out
}

func mustWarp(t *testing.T, m Mapping, opts ...Option) *Filter {
	t.Helper()
	f, err := New(m, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
}

// constant maps every destination pixel to (sx, sy).
func constant(sx, sy float64) Mapping {
	return Mapping{
		Inverse: func(int, int) InverseFunc {
			return func(int, int) (float64, float64) { return sx, sy }
		},
	}
}

// testPattern returns deterministic ARGB samples with every channel varying.
func testPattern(w, h int) []uint32 {
	pix := make([]uint32, w*h)
	for i := range pix {
		v := uint8(i * 37)
		pix[i] = ggfx.PackARGB(255-v/2, v, v^0x5a, uint8(i*11))
	}
	return pix
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

var (
	allEdges   = []ggfx.EdgeMode{ggfx.EdgeCrop, ggfx.EdgeExtend, ggfx.EdgeWrap}
	allInterps = []Interpolation{Nearest, Bilinear, Bicubic}
)
