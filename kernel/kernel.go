package kernel

import (
	"fmt"

	"github.com/gogpu/ggfx"
)

// Errors returned by kernel construction.
var (
	// ErrMatrixSize is returned when the kernel size is not positive or the
	// matrix length does not equal width*height.
	ErrMatrixSize = fmt.Errorf("%w: kernel matrix size", ggfx.ErrInvalidArgument)

	// ErrRadius is returned for a non-positive Gaussian radius.
	ErrRadius = fmt.Errorf("%w: kernel radius must be positive", ggfx.ErrInvalidArgument)
)

// Kernel is an immutable convolution matrix.
//
// The zero value is not usable; create kernels with New or a preset.
type Kernel struct {
	width   int
	height  int
	matrix  []float64
	divisor float64
	offset  int
}

// Option configures a Kernel during creation.
type Option func(*options)

type options struct {
	divisor float64
	offset  int
}

func defaultOptions() options {
	return options{divisor: 1}
}

// WithDivisor sets the value the weighted sum is divided by.
// Values <= 0 are coerced to 1.
func WithDivisor(d float64) Option {
	return func(o *options) {
		o.divisor = d
	}
}

// WithOffset sets the bias added after division.
func WithOffset(offset int) Option {
	return func(o *options) {
		o.offset = offset
	}
}

// New creates a kernel from a row-major matrix. The matrix is copied.
func New(width, height int, matrix []float64, opts ...Option) (*Kernel, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrMatrixSize, width, height)
	}
	if len(matrix) != width*height {
		return nil, fmt.Errorf("%w: %dx%d needs %d weights, got %d",
			ErrMatrixSize, width, height, width*height, len(matrix))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.divisor <= 0 {
		o.divisor = 1
	}

	m := make([]float64, len(matrix))
	copy(m, matrix)
	return &Kernel{
		width:   width,
		height:  height,
		matrix:  m,
		divisor: o.divisor,
		offset:  o.offset,
	}, nil
}

// Width returns the number of columns.
func (k *Kernel) Width() int {
	return k.width
}

// Height returns the number of rows.
func (k *Kernel) Height() int {
	return k.height
}

// Matrix returns a copy of the weights in row-major order.
func (k *Kernel) Matrix() []float64 {
	m := make([]float64, len(k.matrix))
	copy(m, k.matrix)
	return m
}

// At returns the weight at column i, row j.
// It panics if the indices are out of range.
func (k *Kernel) At(i, j int) float64 {
	if i < 0 || i >= k.width || j < 0 || j >= k.height {
		panic(fmt.Sprintf("kernel: index (%d, %d) out of range %dx%d", i, j, k.width, k.height))
	}
	return k.matrix[j*k.width+i]
}

// Divisor returns the normalization divisor, always > 0.
func (k *Kernel) Divisor() float64 {
	return k.divisor
}

// Offset returns the bias added after division.
func (k *Kernel) Offset() int {
	return k.offset
}

// Sum returns the sum of all weights.
func (k *Kernel) Sum() float64 {
	var s float64
	for _, w := range k.matrix {
		s += w
	}
	return s
}

// String returns a short description such as "Kernel(3x3, divisor=9, offset=0)".
func (k *Kernel) String() string {
	return fmt.Sprintf("Kernel(%dx%d, divisor=%g, offset=%d)", k.width, k.height, k.divisor, k.offset)
}
