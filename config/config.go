// Package config loads filter pipelines from YAML files.
//
// A file lists filters in application order. Pipeline-wide defaults for
// edge mode, interpolation and channels apply to every filter that does
// not override them:
//
//	edge: extend
//	interpolation: bilinear
//	channels: rgba
//	iterations: 1
//	filters:
//	  - type: gaussian-blur
//	    radius: 3
//	  - type: twirl
//	    angle: 1.57
//	    radius: 80
//	    center: [0.5, 0.5]
//	    interpolation: bicubic
//	border:
//	  width: 4
//	  color: "#ff336699"
//
// Type names and enum values are matched case-insensitively.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggfx"
)

// Config describes a filter pipeline.
type Config struct {
	// Defaults inherited by every filter.
	Edge          string `yaml:"edge"`
	Interpolation string `yaml:"interpolation"`
	Channels      string `yaml:"channels"`

	// Iterations is how many times the whole pipeline runs.
	Iterations int `yaml:"iterations"`

	Filters []FilterConfig `yaml:"filters"`

	// Border is painted after the pipeline, when set.
	Border *BorderConfig `yaml:"border"`
}

// FilterConfig describes one pipeline stage. Which fields apply depends on
// Type; unused fields are ignored.
type FilterConfig struct {
	Type string `yaml:"type"`

	// Per-filter overrides of the pipeline defaults.
	Edge          string `yaml:"edge"`
	Interpolation string `yaml:"interpolation"`
	Channels      string `yaml:"channels"`

	// convolve
	Width   int       `yaml:"width"`
	Height  int       `yaml:"height"`
	Matrix  []float64 `yaml:"matrix"`
	Divisor float64   `yaml:"divisor"`
	Offset  int       `yaml:"offset"`

	// box-blur uses Width and Height; gaussian-blur, unsharp, glow and the
	// radial warps use Radius.
	Radius    float64 `yaml:"radius"`
	Amount    float64 `yaml:"amount"`
	Threshold int     `yaml:"threshold"`

	// warps
	Angle      float64   `yaml:"angle"`
	Center     []float64 `yaml:"center"`
	DX         float64   `yaml:"dx"`
	DY         float64   `yaml:"dy"`
	ScaleX     float64   `yaml:"sx"`
	ScaleY     float64   `yaml:"sy"`
	Refraction float64   `yaml:"refraction"`
	Wavelength float64   `yaml:"wavelength"`
	Amplitude  float64   `yaml:"amplitude"`
	Phase      float64   `yaml:"phase"`
	Power      float64   `yaml:"power"`
}

// BorderConfig describes a border painted around the processed region.
// Width sets all four sides; the per-side fields override it.
type BorderConfig struct {
	Width  int    `yaml:"width"`
	Left   *int   `yaml:"left"`
	Top    *int   `yaml:"top"`
	Right  *int   `yaml:"right"`
	Bottom *int   `yaml:"bottom"`
	Color  string `yaml:"color"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Edge:          "extend",
		Interpolation: "bilinear",
		Channels:      "rgba",
		Iterations:    1,
	}
}

// defaultFilter returns the defaults for a filter of type typ.
func defaultFilter(typ string) FilterConfig {
	f := FilterConfig{
		Type:      typ,
		Divisor:   1,
		Amount:    0.5,
		Threshold: 1,
		Center:    []float64{0.5, 0.5},
		ScaleX:    1,
		ScaleY:    1,
		Radius:    50,
	}
	switch fold(typ) {
	case "box-blur":
		f.Width, f.Height = 3, 3
	case "gaussian-blur":
		f.Radius = 2
	case "lens":
		f.Refraction = 1.5
	case "water":
		f.Wavelength = 16
		f.Amplitude = 10
	case "bend":
		f.Amplitude = 2 * math.Pi
		f.Power = 6
	}
	return f
}

// UnmarshalYAML applies the defaults of the filter's type before decoding
// the remaining fields.
func (f *FilterConfig) UnmarshalYAML(n *yaml.Node) error {
	var head struct {
		Type string `yaml:"type"`
	}
	if err := n.Decode(&head); err != nil {
		return err
	}
	*f = defaultFilter(head.Type)

	type plain FilterConfig
	return n.Decode((*plain)(f))
}

// Parse decodes a YAML pipeline description on top of Defaults.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads a pipeline description from a YAML file.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), err
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	ggfx.Logger().Debug("config: loaded", "path", path, "filters", len(cfg.Filters))
	return cfg, nil
}
