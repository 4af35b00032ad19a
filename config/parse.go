package config

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/warp"
)

// fold normalizes a name for case-insensitive matching.
// Casers are stateful, so each call creates its own.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// ParseEdge parses "crop", "extend" or "wrap".
func ParseEdge(s string) (ggfx.EdgeMode, error) {
	switch fold(s) {
	case "crop":
		return ggfx.EdgeCrop, nil
	case "extend", "clamp":
		return ggfx.EdgeExtend, nil
	case "wrap", "repeat":
		return ggfx.EdgeWrap, nil
	}
	return 0, fmt.Errorf("%w: edge mode %q", ggfx.ErrInvalidArgument, s)
}

// ParseInterpolation parses "nearest", "bilinear" or "bicubic".
func ParseInterpolation(s string) (warp.Interpolation, error) {
	switch fold(s) {
	case "nearest":
		return warp.Nearest, nil
	case "bilinear":
		return warp.Bilinear, nil
	case "bicubic":
		return warp.Bicubic, nil
	}
	return 0, fmt.Errorf("%w: interpolation %q", ggfx.ErrInvalidArgument, s)
}

// ParseChannels parses a channel selection: "mono", "none", or any
// combination of the letters r, g, b and a such as "rgb".
func ParseChannels(s string) (ggfx.ChannelMask, error) {
	v := fold(s)
	switch v {
	case "mono", "monochrome", "gray", "grey":
		return ggfx.MonochromeMask, nil
	case "none":
		return ggfx.ChannelMask{}, nil
	case "all":
		return ggfx.AllChannels, nil
	case "":
		return ggfx.ChannelMask{}, fmt.Errorf("%w: empty channel selection", ggfx.ErrInvalidArgument)
	}

	var m ggfx.ChannelMask
	for _, c := range v {
		switch c {
		case 'r':
			m.Red = true
		case 'g':
			m.Green = true
		case 'b':
			m.Blue = true
		case 'a':
			m.Alpha = true
		default:
			return ggfx.ChannelMask{}, fmt.Errorf("%w: channel %q in %q", ggfx.ErrInvalidArgument, c, s)
		}
	}
	return m, nil
}

// ParseColor parses "#RRGGBB" (opaque) or "#AARRGGBB" into a packed sample.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: color %q", ggfx.ErrInvalidArgument, s)
	}
	switch len(hex) {
	case 6:
		return 0xff000000 | uint32(v), nil
	case 8:
		return uint32(v), nil
	}
	return 0, fmt.Errorf("%w: color %q must have 6 or 8 hex digits", ggfx.ErrInvalidArgument, s)
}
