package ggfx

import "testing"

func TestChannelMaskMerge(t *testing.T) {
	const (
		orig = 0x11223344
		proc = 0xaabbccdd
	)
	tests := []struct {
		name string
		mask ChannelMask
		want uint32
	}{
		{"all", AllChannels, proc},
		{"none", ChannelMask{}, orig},
		{"color", ColorChannels, 0x11bbccdd},
		{"red only", ChannelMask{Red: true}, 0x11bb3344},
		{"alpha and blue", ChannelMask{Alpha: true, Blue: true}, 0xaa2233dd},
		{"mono", MonochromeMask, proc},
		{"mono ignores flags", ChannelMask{Red: true, Monochrome: true}, proc},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mask.Merge(orig, proc); got != tt.want {
				t.Errorf("Merge() = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestChannelMaskString(t *testing.T) {
	tests := []struct {
		mask ChannelMask
		want string
	}{
		{AllChannels, "RGBA"},
		{ColorChannels, "RGB"},
		{ChannelMask{Green: true, Alpha: true}, "GA"},
		{ChannelMask{}, "none"},
		{MonochromeMask, "mono"},
	}
	for _, tt := range tests {
		if got := tt.mask.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.mask, got, tt.want)
		}
	}
}

func TestChannelMaskSet(t *testing.T) {
	var m ChannelMask
	if !m.IsZero() {
		t.Error("zero mask IsZero() = false")
	}
	m.Set(true, true, true, true, false)
	if m != AllChannels {
		t.Errorf("Set() = %+v, want AllChannels", m)
	}
	m.Set(false, false, false, false, true)
	if m != MonochromeMask || m.IsZero() {
		t.Errorf("Set() = %+v, want MonochromeMask", m)
	}
}
