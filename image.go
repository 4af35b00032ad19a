package ggfx

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage converts any image into an ARGB buffer with non-premultiplied
// samples. The result's origin is the top-left corner of img.Bounds().
func FromImage(img image.Image) (*ARGB, error) {
	if img == nil {
		return nil, ErrNilBuffer
	}
	b := img.Bounds()
	p, err := NewARGB(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	nb := nrgba.Bounds()
	for y := 0; y < p.height; y++ {
		row := nrgba.Pix[nrgba.PixOffset(nb.Min.X, nb.Min.Y+y):]
		for x := 0; x < p.width; x++ {
			i := x * 4
			p.pix[y*p.width+x] = PackARGB(row[i+3], row[i+0], row[i+1], row[i+2])
		}
	}
	return p, nil
}

// Image returns the buffer as a new *image.NRGBA.
func (p *ARGB) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i, c := range p.pix {
		a, r, g, b := UnpackARGB(c)
		j := i * 4
		img.Pix[j+0] = r
		img.Pix[j+1] = g
		img.Pix[j+2] = b
		img.Pix[j+3] = a
	}
	return img
}

// GrayFromImage converts any image into a Gray buffer using the standard
// luminance conversion of image/color.
func GrayFromImage(img image.Image) (*Gray, error) {
	if img == nil {
		return nil, ErrNilBuffer
	}
	b := img.Bounds()
	g, err := NewGray(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	for y := 0; y < g.height; y++ {
		copy(g.pix[y*g.width:(y+1)*g.width], gray.Pix[y*gray.Stride:])
	}
	return g, nil
}

// Image returns the buffer as a new *image.Gray.
func (g *Gray) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.width, g.height))
	copy(img.Pix, g.pix)
	return img
}
