package ggfx

import "strings"

// ChannelMask selects which channels a filter modifies. Channels that are
// not selected pass through from the source sample unchanged.
//
// When Monochrome is set the per-channel flags are ignored and every sample
// is treated as a single 8-bit intensity stored in the low byte.
type ChannelMask struct {
	Red        bool
	Green      bool
	Blue       bool
	Alpha      bool
	Monochrome bool
}

// Predefined masks.
var (
	// AllChannels selects red, green, blue and alpha. This is the default
	// mask of every filter.
	AllChannels = ChannelMask{Red: true, Green: true, Blue: true, Alpha: true}

	// ColorChannels selects red, green and blue, leaving alpha untouched.
	ColorChannels = ChannelMask{Red: true, Green: true, Blue: true}

	// MonochromeMask treats samples as single-channel intensity.
	MonochromeMask = ChannelMask{Monochrome: true}
)

// Set assigns all five flags at once.
func (m *ChannelMask) Set(r, g, b, a, monochrome bool) {
	m.Red = r
	m.Green = g
	m.Blue = b
	m.Alpha = a
	m.Monochrome = monochrome
}

// IsZero reports whether no channel is selected, in which case a filter
// reproduces its input.
func (m ChannelMask) IsZero() bool {
	return m == ChannelMask{}
}

// Merge combines a processed sample with the original one: selected channels
// come from processed, the others from original. In monochrome mode the
// processed sample is returned as is.
func (m ChannelMask) Merge(original, processed uint32) uint32 {
	if m.Monochrome {
		return processed
	}
	var keep uint32
	if !m.Alpha {
		keep |= 0xff000000
	}
	if !m.Red {
		keep |= 0x00ff0000
	}
	if !m.Green {
		keep |= 0x0000ff00
	}
	if !m.Blue {
		keep |= 0x000000ff
	}
	return original&keep | processed&^keep
}

// String returns a compact representation such as "RGBA", "RGB" or "mono".
func (m ChannelMask) String() string {
	if m.Monochrome {
		return "mono"
	}
	if m.IsZero() {
		return "none"
	}
	var sb strings.Builder
	if m.Red {
		sb.WriteByte('R')
	}
	if m.Green {
		sb.WriteByte('G')
	}
	if m.Blue {
		sb.WriteByte('B')
	}
	if m.Alpha {
		sb.WriteByte('A')
	}
	return sb.String()
}

// Channeled is implemented by filters whose channel selection can be
// inspected and changed after construction.
//
// Changing the mask while the filter is running on another goroutine is a
// data race; configure filters before sharing them.
type Channeled interface {
	ChannelMask() ChannelMask
	SetChannelMask(m ChannelMask)
}
