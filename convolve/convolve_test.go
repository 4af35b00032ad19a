package convolve

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/kernel"
)

func TestNewErrors(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ggfx.ErrNilReference) {
		t.Errorf("New(nil) error = %v, want ErrNilReference", err)
	}
	if _, err := New(kernel.Sharpen(), WithEdge(ggfx.EdgeMode(7))); !errors.Is(err, ggfx.ErrInvalidArgument) {
		t.Errorf("New(bad edge) error = %v, want ErrInvalidArgument", err)
	}
}

func TestDefaults(t *testing.T) {
	k := kernel.Sharpen()
	f := mustFilter(t, k)
	if f.Kernel() != k {
		t.Error("Kernel() returned a different kernel")
	}
	if f.Edge() != ggfx.EdgeExtend {
		t.Errorf("Edge() = %v, want Extend", f.Edge())
	}
	if f.ChannelMask() != ggfx.AllChannels {
		t.Errorf("ChannelMask() = %v, want RGBA", f.ChannelMask())
	}

	var _ ggfx.Channeled = f
	f.SetChannelMask(ggfx.ColorChannels)
	if f.ChannelMask() != ggfx.ColorChannels {
		t.Errorf("ChannelMask() after Set = %v", f.ChannelMask())
	}
}

func TestIdentityKernel(t *testing.T) {
	id := mustKernel(t, 3, 3, []float64{0, 0, 0, 0, 1, 0, 0, 0, 0})
	in := testPattern(5, 4)

	for _, edge := range allEdges {
		t.Run(edge.String(), func(t *testing.T) {
			got := process(t, mustFilter(t, id, WithEdge(edge)), in, 5, 4)
			if diff := cmp.Diff(in, got); diff != "" {
				t.Errorf("identity mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUniformImage(t *testing.T) {
	const c = 0xc8643219
	box := mustKernel(t, 3, 3, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}, kernel.WithDivisor(9))

	for _, edge := range []ggfx.EdgeMode{ggfx.EdgeExtend, ggfx.EdgeWrap} {
		got := process(t, mustFilter(t, box, WithEdge(edge)), uniform(20, c), 5, 4)
		if diff := cmp.Diff(uniform(20, c), got); diff != "" {
			t.Errorf("%v: uniform mismatch (-want +got):\n%s", edge, diff)
		}
	}
}

func TestCropDoesNotRenormalize(t *testing.T) {
	box := mustKernel(t, 3, 3, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}, kernel.WithDivisor(9))
	f := mustFilter(t, box, WithEdge(ggfx.EdgeCrop), WithChannels(ggfx.MonochromeMask))

	got := process(t, f, uniform(16, 90), 4, 4)

	// Corners see 4 of 9 cells, edges 6, interior 9: 90*n/9.
	want := []uint32{
		40, 60, 60, 40,
		60, 90, 90, 60,
		60, 90, 90, 60,
		40, 60, 60, 40,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("crop mismatch (-want +got):\n%s", diff)
	}
}

func TestBoxExtendReplicateSum(t *testing.T) {
	in := []uint32{10, 20, 30, 40, 50, 60, 70, 80, 90}
	box := mustKernel(t, 3, 3, []float64{1, 1, 1, 1, 1, 1, 1, 1, 1}, kernel.WithDivisor(9))
	f := mustFilter(t, box, WithChannels(ggfx.MonochromeMask))

	got := process(t, f, in, 3, 3)

	if got[4] != 50 {
		t.Errorf("centre = %d, want 50", got[4])
	}
	// (0,0) replicated: 10 four times, 20 and 40 twice, 50 once = 210.
	if got[0] != 23 {
		t.Errorf("corner = %d, want round(210/9) = 23", got[0])
	}

	clamp := func(v int) int { return min(max(v, 0), 2) }
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			var sum uint32
			for j := -1; j <= 1; j++ {
				for i := -1; i <= 1; i++ {
					sum += in[clamp(y+j)*3+clamp(x+i)]
				}
			}
			want := (sum*2 + 9) / 18 // round half up of sum/9
			if got[y*3+x] != want {
				t.Errorf("(%d,%d) = %d, want %d", x, y, got[y*3+x], want)
			}
		}
	}
}

func TestOffsetKernelEdges(t *testing.T) {
	// Reads the right-hand neighbour.
	shift := mustKernel(t, 3, 1, []float64{0, 0, 1})
	in := []uint32{10, 20, 30}

	tests := []struct {
		edge ggfx.EdgeMode
		want []uint32
	}{
		{ggfx.EdgeCrop, []uint32{20, 30, 0}},
		{ggfx.EdgeExtend, []uint32{20, 30, 30}},
		{ggfx.EdgeWrap, []uint32{20, 30, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			f := mustFilter(t, shift, WithEdge(tt.edge), WithChannels(ggfx.MonochromeMask))
			if diff := cmp.Diff(tt.want, process(t, f, in, 3, 1)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	// In ARGB mode a dropped sample is transparent black.
	f := mustFilter(t, shift, WithEdge(ggfx.EdgeCrop))
	got := process(t, f, []uint32{0xff112233, 0xff445566}, 2, 1)
	if got[1] != 0 {
		t.Errorf("cropped ARGB pixel = %#08x, want 0", got[1])
	}
}

func TestDivisorOffsetRounding(t *testing.T) {
	tests := []struct {
		name string
		k    *kernel.Kernel
		in   uint32
		want uint32
	}{
		{"half up", mustKernel(t, 1, 1, []float64{1}, kernel.WithDivisor(2)), 5, 3},
		{"below half", mustKernel(t, 1, 1, []float64{1}, kernel.WithDivisor(4)), 5, 1},
		{"offset", mustKernel(t, 1, 1, []float64{1}, kernel.WithDivisor(2), kernel.WithOffset(10)), 100, 60},
		{"clamp high", mustKernel(t, 1, 1, []float64{2}), 200, 255},
		{"clamp low", mustKernel(t, 1, 1, []float64{-1}), 200, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFilter(t, tt.k, WithChannels(ggfx.MonochromeMask))
			got := process(t, f, []uint32{tt.in}, 1, 1)
			if got[0] != tt.want {
				t.Errorf("got %d, want %d", got[0], tt.want)
			}
		})
	}
}

func TestDisabledChannelsPassThrough(t *testing.T) {
	in := testPattern(6, 5)
	blur, err := NewBoxBlur(3, 3, WithChannels(ggfx.ChannelMask{Red: true}))
	if err != nil {
		t.Fatalf("NewBoxBlur() error = %v", err)
	}
	full, err := NewBoxBlur(3, 3)
	if err != nil {
		t.Fatalf("NewBoxBlur() error = %v", err)
	}

	got := process(t, blur, in, 6, 5)
	ref := process(t, full, in, 6, 5)
	for i := range in {
		if got[i]&0xff00ffff != in[i]&0xff00ffff {
			t.Errorf("pixel %d: disabled channels changed %#08x -> %#08x", i, in[i], got[i])
		}
		if got[i]&0x00ff0000 != ref[i]&0x00ff0000 {
			t.Errorf("pixel %d: red = %#08x, want %#08x", i, got[i]&0x00ff0000, ref[i]&0x00ff0000)
		}
	}

	blur.SetChannelMask(ggfx.ChannelMask{})
	if diff := cmp.Diff(in, process(t, blur, in, 6, 5)); diff != "" {
		t.Errorf("empty mask mismatch (-want +got):\n%s", diff)
	}
}

func TestProcessSizeMismatch(t *testing.T) {
	f := mustFilter(t, kernel.Sharpen())
	err := f.Process(make([]uint32, 3), make([]uint32, 4), 2, 2)
	if !errors.Is(err, ggfx.ErrInvalidArgument) {
		t.Errorf("Process() error = %v, want ErrInvalidArgument", err)
	}
}

func TestApplyRegionWithConvolution(t *testing.T) {
	src, err := ggfx.GrayFromPixels(3, 3, []uint8{10, 20, 30, 40, 50, 60, 70, 80, 90})
	if err != nil {
		t.Fatalf("GrayFromPixels() error = %v", err)
	}
	blur, err := NewBoxBlur(3, 3, WithChannels(ggfx.MonochromeMask))
	if err != nil {
		t.Fatalf("NewBoxBlur() error = %v", err)
	}

	dst, err := ggfx.ApplyRegion(blur, src, nil, ggfx.Bounds(src), 1)
	if err != nil {
		t.Fatalf("ApplyRegion() error = %v", err)
	}
	g := dst.(*ggfx.Gray)
	if g.At(1, 1) != 50 || g.At(0, 0) != 23 {
		t.Errorf("centre/corner = %d/%d, want 50/23", g.At(1, 1), g.At(0, 0))
	}
	if src.At(0, 0) != 10 {
		t.Error("source modified")
	}
}

func TestPipelineOfConvolutions(t *testing.T) {
	blur, err := NewGaussianBlur(2, WithCache(kernel.NewGaussianCache(0)))
	if err != nil {
		t.Fatalf("NewGaussianBlur() error = %v", err)
	}
	sharpen, err := NewSharpen(WithEdge(ggfx.EdgeWrap))
	if err != nil {
		t.Fatalf("NewSharpen() error = %v", err)
	}

	buf, err := ggfx.ARGBFromPixels(7, 5, testPattern(7, 5))
	if err != nil {
		t.Fatalf("ARGBFromPixels() error = %v", err)
	}
	want := buf.Clone()
	for _, f := range []ggfx.Filter{blur, sharpen} {
		if _, err := ggfx.Apply(f, want); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
	}

	if _, err := ggfx.Apply(ggfx.NewPipeline(blur, sharpen), buf); err != nil {
		t.Fatalf("Apply(pipeline) error = %v", err)
	}
	if diff := cmp.Diff(want.Pix(), buf.Pix()); diff != "" {
		t.Errorf("pipeline mismatch (-want +got):\n%s", diff)
	}
}

func BenchmarkConvolve3x3(b *testing.B) {
	f, _ := NewBoxBlur(3, 3)
	in := testPattern(256, 256)
	out := make([]uint32, len(in))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Process(in, out, 256, 256)
	}
}

func BenchmarkGaussianBlur5(b *testing.B) {
	f, _ := NewGaussianBlur(5)
	in := testPattern(128, 128)
	out := make([]uint32, len(in))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Process(in, out, 128, 128)
	}
}
