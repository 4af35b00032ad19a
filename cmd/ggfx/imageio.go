package main

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Decode-only formats.
	_ "golang.org/x/image/webp"

	"github.com/gogpu/ggfx"
)

func readImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	ggfx.Logger().Debug("image read", "path", path, "format", format, "bounds", img.Bounds())
	return img, nil
}

// writeImage encodes img in the format named by the extension of path.
func writeImage(path string, img image.Image) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	encode, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%w: output format %q", ggfx.ErrUnsupported, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

var encoders = map[string]func(*os.File, image.Image) error{
	".png":  func(f *os.File, m image.Image) error { return png.Encode(f, m) },
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif":  func(f *os.File, m image.Image) error { return gif.Encode(f, m, nil) },
	".bmp":  func(f *os.File, m image.Image) error { return bmp.Encode(f, m) },
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(f *os.File, m image.Image) error {
	return jpeg.Encode(f, m, &jpeg.Options{Quality: 92})
}

func encodeTIFF(f *os.File, m image.Image) error {
	return tiff.Encode(f, m, &tiff.Options{Compression: tiff.Deflate})
}
