package convolve

import (
	"testing"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/kernel"
)

// process runs f over in and returns the output.
func process(t *testing.T, f ggfx.Filter, in []uint32, w, h int) []uint32 {
	t.Helper()
	out := make([]uint32, len(in))
	if err := f.Process(in, out, w, h); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	return out
}

func mustKernel(t *testing.T, w, h int, m []float64, opts ...kernel.Option) *kernel.Kernel {
	t.Helper()
	k, err := kernel.New(w, h, m, opts...)
	if err != nil {
		t.Fatalf("kernel.New() error = %v", err)
	}
	return k
}

func mustFilter(t *testing.T, k *kernel.Kernel, opts ...Option) *Filter {
	t.Helper()
	f, err := New(k, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return f
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

func uniform(n int, c uint32) []uint32 {
	pix := make([]uint32, n)
	for i := range pix {
		pix[i] = c
	}
	return pix
}

var allEdges = []ggfx.EdgeMode{ggfx.EdgeCrop, ggfx.EdgeExtend, ggfx.EdgeWrap}
