package convolve

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/kernel"
)

func TestUnsharpUniformUnchanged(t *testing.T) {
	u, err := NewUnsharp(0.5, 1, WithCache(kernel.NewGaussianCache(0)))
	if err != nil {
		t.Fatalf("NewUnsharp() error = %v", err)
	}
	in := uniform(49, 0xff808080)
	if diff := cmp.Diff(in, process(t, u, in, 7, 7)); diff != "" {
		t.Errorf("uniform mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsharpIncreasesContrast(t *testing.T) {
	u, err := NewUnsharp(1, 1, WithChannels(ggfx.MonochromeMask))
	if err != nil {
		t.Fatalf("NewUnsharp() error = %v", err)
	}

	// Vertical step: columns 0-3 dark, 4-7 bright.
	const w, h = 8, 4
	in := make([]uint32, w*h)
	for y := 0; y < h; y++ {
		for x := 4; x < w; x++ {
			in[y*w+x] = 200
		}
		for x := 0; x < 4; x++ {
			in[y*w+x] = 50
		}
	}

	got := process(t, u, in, w, h)
	for y := 0; y < h; y++ {
		dark, bright := got[y*w+3], got[y*w+4]
		if dark >= 50 {
			t.Errorf("row %d: dark side = %d, want < 50", y, dark)
		}
		if bright <= 200 {
			t.Errorf("row %d: bright side = %d, want > 200", y, bright)
		}
		if got[y*w] != 50 || got[y*w+7] != 200 {
			t.Errorf("row %d: far columns changed to %d, %d", y, got[y*w], got[y*w+7])
		}
	}
}

func TestUnsharpThreshold(t *testing.T) {
	u, err := NewUnsharp(1, 256, WithChannels(ggfx.MonochromeMask))
	if err != nil {
		t.Fatalf("NewUnsharp() error = %v", err)
	}
	in := []uint32{0, 255, 0, 255, 0, 255, 0, 255, 0}
	if diff := cmp.Diff(in, process(t, u, in, 3, 3)); diff != "" {
		t.Errorf("threshold above any difference changed pixels (-want +got):\n%s", diff)
	}
}

func TestUnsharpChannels(t *testing.T) {
	u, err := NewUnsharp(0.5, 1, WithChannels(ggfx.ChannelMask{Green: true}))
	if err != nil {
		t.Fatalf("NewUnsharp() error = %v", err)
	}
	var _ ggfx.Channeled = u

	in := testPattern(5, 5)
	got := process(t, u, in, 5, 5)
	for i := range in {
		if got[i]&0xffff00ff != in[i]&0xffff00ff {
			t.Errorf("pixel %d: disabled channels changed %#08x -> %#08x", i, in[i], got[i])
		}
	}

	u.SetChannelMask(ggfx.ChannelMask{})
	if u.ChannelMask() != (ggfx.ChannelMask{}) {
		t.Errorf("ChannelMask() = %v", u.ChannelMask())
	}
	if diff := cmp.Diff(in, process(t, u, in, 5, 5)); diff != "" {
		t.Errorf("empty mask mismatch (-want +got):\n%s", diff)
	}
}

func TestGlow(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		mask   ggfx.ChannelMask
		in     uint32
		want   uint32
	}{
		// Monochrome uses the amount as is: 100 + 0.5*100.
		{"mono", 0.5, ggfx.MonochromeMask, 100, 150},
		// RGBA uses 4*amount: 0x20 + 1*0x20, alpha kept by the mask.
		{"color", 0.25, ggfx.ColorChannels, 0xff202020, 0xff404040},
		{"saturates", 0.5, ggfx.AllChannels, 0xff808080, 0xffffffff},
		{"zero amount", 0, ggfx.AllChannels, 0x80406080, 0x80406080},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGlow(tt.amount, WithChannels(tt.mask))
			if err != nil {
				t.Fatalf("NewGlow() error = %v", err)
			}
			got := process(t, g, uniform(25, tt.in), 5, 5)
			if diff := cmp.Diff(uniform(25, tt.want), got); diff != "" {
				t.Errorf("glow mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGlowInPipeline(t *testing.T) {
	g, err := NewGlow(0.5, WithChannels(ggfx.MonochromeMask))
	if err != nil {
		t.Fatalf("NewGlow() error = %v", err)
	}
	blur, err := NewBoxBlur(3, 3, WithChannels(ggfx.MonochromeMask))
	if err != nil {
		t.Fatalf("NewBoxBlur() error = %v", err)
	}

	in := []uint32{10, 20, 30, 40, 50, 60, 70, 80, 90}
	want := process(t, g, process(t, blur, in, 3, 3), 3, 3)
	got := process(t, ggfx.NewPipeline(blur, g), in, 3, 3)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pipeline mismatch (-want +got):\n%s", diff)
	}
}
