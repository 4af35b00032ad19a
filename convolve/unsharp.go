package convolve

import "github.com/gogpu/ggfx"

// Radius of the Gaussian blur Unsharp and Glow are built on.
const effectRadius = 2

// Unsharp sharpens by amplifying the difference between each sample and
// its Gaussian-blurred version. Channels whose difference is below
// Threshold are left alone.
type Unsharp struct {
	// Amount scales the amplification. RGBA samples use 4*Amount,
	// monochrome samples use Amount.
	Amount float64

	// Threshold is the minimum absolute difference, in 8-bit units, that
	// gets amplified.
	Threshold int

	blur *Filter
	mask ggfx.ChannelMask
}

// NewUnsharp creates an unsharp mask filter. Conventional values are
// amount 0.5 and threshold 1.
func NewUnsharp(amount float64, threshold int, opts ...Option) (*Unsharp, error) {
	blur, mask, err := newEffectBlur(opts)
	if err != nil {
		return nil, err
	}
	return &Unsharp{
		Amount:    amount,
		Threshold: threshold,
		blur:      blur,
		mask:      mask,
	}, nil
}

// ChannelMask returns the channels the filter modifies.
func (u *Unsharp) ChannelMask() ggfx.ChannelMask {
	return u.mask
}

// SetChannelMask changes the channels the filter modifies.
func (u *Unsharp) SetChannelMask(m ggfx.ChannelMask) {
	u.mask = m
}

// Process implements ggfx.Filter.
func (u *Unsharp) Process(in, out []uint32, width, height int) error {
	blurred, err := effectPass(u.blur, u.mask, in, out, width, height)
	if err != nil || blurred == nil {
		return err
	}

	if u.mask.Monochrome {
		for i, b := range blurred {
			out[i] = uint32(unsharp(uint8(in[i]), uint8(b), u.Amount, u.Threshold))
		}
		return nil
	}

	amount := 4 * u.Amount
	for i, b := range blurred {
		o := in[i]
		v := ggfx.PackARGB(
			unsharp(uint8(o>>24), uint8(b>>24), amount, u.Threshold),
			unsharp(uint8(o>>16), uint8(b>>16), amount, u.Threshold),
			unsharp(uint8(o>>8), uint8(b>>8), amount, u.Threshold),
			unsharp(uint8(o), uint8(b), amount, u.Threshold),
		)
		out[i] = u.mask.Merge(o, v)
	}
	return nil
}

func unsharp(orig, blur uint8, amount float64, threshold int) uint8 {
	d := int(orig) - int(blur)
	if abs(d) < threshold {
		return orig
	}
	return clampByte(int((amount+1)*float64(d) + float64(blur)))
}

// Glow brightens each sample by a fraction of its Gaussian-blurred value.
type Glow struct {
	// Amount scales the added blur. RGBA samples use 4*Amount,
	// monochrome samples use Amount.
	Amount float64

	blur *Filter
	mask ggfx.ChannelMask
}

// NewGlow creates a glow filter. A conventional amount is 0.5.
func NewGlow(amount float64, opts ...Option) (*Glow, error) {
	blur, mask, err := newEffectBlur(opts)
	if err != nil {
		return nil, err
	}
	return &Glow{
		Amount: amount,
		blur:   blur,
		mask:   mask,
	}, nil
}

// ChannelMask returns the channels the filter modifies.
func (g *Glow) ChannelMask() ggfx.ChannelMask {
	return g.mask
}

// SetChannelMask changes the channels the filter modifies.
func (g *Glow) SetChannelMask(m ggfx.ChannelMask) {
	g.mask = m
}

// Process implements ggfx.Filter.
func (g *Glow) Process(in, out []uint32, width, height int) error {
	blurred, err := effectPass(g.blur, g.mask, in, out, width, height)
	if err != nil || blurred == nil {
		return err
	}

	if g.mask.Monochrome {
		for i, b := range blurred {
			out[i] = uint32(glow(uint8(in[i]), uint8(b), g.Amount))
		}
		return nil
	}

	amount := 4 * g.Amount
	for i, b := range blurred {
		o := in[i]
		v := ggfx.PackARGB(
			glow(uint8(o>>24), uint8(b>>24), amount),
			glow(uint8(o>>16), uint8(b>>16), amount),
			glow(uint8(o>>8), uint8(b>>8), amount),
			glow(uint8(o), uint8(b), amount),
		)
		out[i] = g.mask.Merge(o, v)
	}
	return nil
}

func glow(orig, blur uint8, amount float64) uint8 {
	return clampByte(int(float64(orig) + amount*float64(blur)))
}

// newEffectBlur builds the radius-2 Gaussian shared by Unsharp and Glow.
func newEffectBlur(opts []Option) (*Filter, ggfx.ChannelMask, error) {
	o := buildOptions(opts)
	k, err := gaussian(effectRadius, o)
	if err != nil {
		return nil, ggfx.ChannelMask{}, err
	}
	blur, err := New(k, WithEdge(o.edge))
	if err != nil {
		return nil, ggfx.ChannelMask{}, err
	}
	return blur, o.mask, nil
}

// effectPass validates the arguments and returns the blurred input.
// It returns nil without error when mask selects nothing, after copying
// in to out.
func effectPass(blur *Filter, mask ggfx.ChannelMask, in, out []uint32, width, height int) ([]uint32, error) {
	if err := ggfx.CheckSize(in, out, width, height); err != nil {
		return nil, err
	}
	if mask.IsZero() {
		copy(out, in[:width*height])
		return nil, nil
	}

	pass := blur.withMask(ggfx.AllChannels)
	if mask.Monochrome {
		pass = blur.withMask(ggfx.MonochromeMask)
	}
	blurred := make([]uint32, width*height)
	if err := pass.Process(in, blurred, width, height); err != nil {
		return nil, err
	}
	return blurred, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
