// Command ggfx applies filter pipelines described in YAML files to images.
//
//	ggfx pattern --out card.png
//	ggfx apply --config blur.yaml --in card.png --out blurred.png
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/ggfx"
	"github.com/gogpu/ggfx/config"
)

var version = "dev"

func main() {
	if err := newApp(os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ggfx:", err)
		os.Exit(1)
	}
}

func newApp(stderr io.Writer) *cli.App {
	return &cli.App{
		Name:    "ggfx",
		Usage:   "apply convolution and warp filters to images",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log filter activity"},
		},
		Before: func(c *cli.Context) error {
			ggfx.SetLogger(newLogger(stderr, c.Bool("verbose")))
			return nil
		},
		Commands: []*cli.Command{
			applyCommand(),
			patternCommand(),
			{
				Name:  "filters",
				Usage: "list the filter types a config may use",
				Action: func(c *cli.Context) error {
					for _, t := range config.Types {
						fmt.Fprintln(c.App.Writer, t)
					}
					return nil
				},
			},
		},
	}
}

// newLogger writes text to terminals and JSON everywhere else.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
