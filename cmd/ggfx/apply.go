package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/config"
)

func applyCommand() *cli.Command {
	return &cli.Command{
		Name:  "apply",
		Usage: "run a filter pipeline over an image",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "pipeline YAML `FILE`", Required: true},
			&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Usage: "input image", Required: true},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output image; format follows the extension", Required: true},
			&cli.IntFlag{Name: "iterations", Aliases: []string{"n"}, Usage: "pipeline passes, overriding the config"},
			&cli.StringFlag{Name: "region", Aliases: []string{"r"}, Usage: "process only `X,Y,W,H`"},
			&cli.BoolFlag{Name: "gray", Usage: "process as a single-channel image"},
		},
		Action: runApply,
	}
}

func runApply(c *cli.Context) error {
	cfg, err := config.LoadFromFile(c.String("config"))
	if err != nil {
		return err
	}
	if c.Bool("gray") {
		cfg.Channels = "mono"
	}
	if c.IsSet("iterations") {
		cfg.Iterations = c.Int("iterations")
	}

	p, err := cfg.Pipeline()
	if err != nil {
		return err
	}
	border, err := cfg.BorderFilter()
	if err != nil {
		return err
	}

	img, err := readImage(c.String("in"))
	if err != nil {
		return err
	}
	var buf ggfx.Buffer
	if c.Bool("gray") {
		buf, err = ggfx.GrayFromImage(img)
	} else {
		buf, err = ggfx.FromImage(img)
	}
	if err != nil {
		return err
	}

	r := ggfx.Bounds(buf)
	if s := c.String("region"); s != "" {
		if r, err = parseRegion(s); err != nil {
			return err
		}
	}

	start := time.Now()
	if _, err := ggfx.ApplyRegion(p, buf, buf, r, cfg.Iterations); err != nil {
		return err
	}
	if border != nil {
		if _, err := ggfx.ApplyRegion(border, buf, buf, r, 1); err != nil {
			return err
		}
	}
	ggfx.Logger().Info("applied",
		"filters", p.Len(),
		"iterations", cfg.Iterations,
		"region", r,
		"elapsed", time.Since(start))

	return writeImage(c.String("out"), bufferImage(buf))
}

func bufferImage(b ggfx.Buffer) image.Image {
	if g, ok := b.(*ggfx.Gray); ok {
		return g.Image()
	}
	return b.(*ggfx.ARGB).Image()
}

// parseRegion parses "x,y,w,h".
func parseRegion(s string) (image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("%w: region %q, want x,y,w,h", ggfx.ErrInvalidRegion, s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("%w: region %q: %v", ggfx.ErrInvalidRegion, s, err)
		}
		v[i] = n
	}
	if v[2] < 0 || v[3] < 0 {
		return image.Rectangle{}, fmt.Errorf("%w: region %q has negative size", ggfx.ErrInvalidRegion, s)
	}
	return image.Rect(v[0], v[1], v[0]+v[2], v[1]+v[3]), nil
}
