package kernel

import "fmt"

// Box returns a uniform w x h kernel whose weights sum to 1.
func Box(w, h int) (*Kernel, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: box %dx%d", ErrMatrixSize, w, h)
	}
	m := make([]float64, w*h)
	v := 1 / float64(w*h)
	for i := range m {
		m[i] = v
	}
	return New(w, h, m)
}

// Sharpen returns the 3x3 Laplacian sharpening kernel.
func Sharpen() *Kernel {
	return mustNew(3, 3, []float64{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	})
}

// EdgeDetect returns the 3x3 Laplacian edge detector. Flat areas become 0.
func EdgeDetect() *Kernel {
	return mustNew(3, 3, []float64{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	})
}

// Emboss returns a 3x3 emboss kernel biased to mid grey.
func Emboss() *Kernel {
	return mustNew(3, 3, []float64{
		-2, -1, 0,
		-1, 1, 1,
		0, 1, 2,
	}, WithOffset(128))
}

func mustNew(w, h int, m []float64, opts ...Option) *Kernel {
	k, err := New(w, h, m, opts...)
	if err != nil {
		panic(err)
	}
	return k
}
