package main

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/ggfx"
)

func patternCommand() *cli.Command {
	return &cli.Command{
		Name:  "pattern",
		Usage: "render a test card to try filters on",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output image", Required: true},
			&cli.IntFlag{Name: "width", Value: 256, Usage: "image width"},
			&cli.IntFlag{Name: "height", Value: 256, Usage: "image height"},
		},
		Action: func(c *cli.Context) error {
			w, h := c.Int("width"), c.Int("height")
			if w <= 0 || h <= 0 {
				return ggfx.ErrInvalidDimensions
			}
			ggfx.Logger().Debug("rendering pattern", "width", w, "height", h)
			return writeImage(c.String("out"), renderPattern(w, h))
		},
	}
}

// renderPattern draws a checkerboard with a grid, a gradient band and
// concentric rings, which makes blurs and warps easy to see.
func renderPattern(w, h int) image.Image {
	dc := gg.NewContext(w, h)
	fw, fh := float64(w), float64(h)

	cell := math.Max(4, math.Min(fw, fh)/8)
	for y := 0.0; y < fh; y += cell {
		for x := 0.0; x < fw; x += cell {
			if int(x/cell+y/cell)%2 == 0 {
				dc.SetRGB(0.9, 0.9, 0.9)
			} else {
				dc.SetRGB(0.2, 0.2, 0.25)
			}
			dc.DrawRectangle(x, y, cell, cell)
			dc.Fill()
		}
	}

	// Gradient band across the middle.
	steps := 64
	band := fh / 6
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		dc.SetRGB(t, 0.3+t*0.4, 1-t)
		dc.DrawRectangle(fw*t, fh/2-band/2, fw/float64(steps)+1, band)
		dc.Fill()
	}

	// Rings around the centre.
	dc.SetLineWidth(math.Max(1, cell/6))
	for i, r := 1, cell; r < math.Min(fw, fh)/2; i, r = i+1, r+cell {
		if i%2 == 0 {
			dc.SetRGBA(1, 0.3, 0.3, 0.9)
		} else {
			dc.SetRGBA(0.3, 1, 0.3, 0.9)
		}
		dc.DrawCircle(fw/2, fh/2, r)
		dc.Stroke()
	}

	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(1)
	dc.DrawLine(0, fh/2, fw, fh/2)
	dc.DrawLine(fw/2, 0, fw/2, fh)
	dc.Stroke()

	return dc.Image()
}
