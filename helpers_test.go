package ggfx

import (
	"errors"
	"testing"
)

// Test filters and helpers shared across the package tests.

var errBoom = errors.New("boom")

// identityFilter copies its input.
type identityFilter struct{}

func (identityFilter) Process(in, out []uint32, width, height int) error {
	copy(out, in[:width*height])
	return nil
}

// addFilter adds n to every sample.
type addFilter struct{ n uint32 }

func (f *addFilter) Process(in, out []uint32, width, height int) error {
	for i := range width * height {
		out[i] = in[i] + f.n
	}
	return nil
}

// mulFilter multiplies every sample by k. It does not commute with addFilter,
// which makes stage order observable.
type mulFilter struct{ k uint32 }

func (f *mulFilter) Process(in, out []uint32, width, height int) error {
	for i := range width * height {
		out[i] = in[i] * f.k
	}
	return nil
}

// weightsFilter is a value-typed filter whose slice field makes it
// uncomparable with ==.
type weightsFilter struct{ w []uint32 }

func (f weightsFilter) Process(in, out []uint32, width, height int) error {
	for i := range width * height {
		out[i] = in[i] + f.w[0]
	}
	return nil
}

// errFilter always fails.
type errFilter struct{}

func (errFilter) Process(in, out []uint32, width, height int) error {
	return errBoom
}

// spyFilter records calls and whether in and out ever aliased.
type spyFilter struct {
	calls   int
	aliased bool
	sizes   [][2]int
}

func (f *spyFilter) Process(in, out []uint32, width, height int) error {
	f.calls++
	f.sizes = append(f.sizes, [2]int{width, height})
	if len(in) > 0 && len(out) > 0 && &in[0] == &out[0] {
		f.aliased = true
	}
	copy(out, in[:width*height])
	return nil
}

// newTestARGB creates a buffer filled with c.
func newTestARGB(t *testing.T, w, h int, c uint32) *ARGB {
	t.Helper()
	p, err := NewARGB(w, h)
	if err != nil {
		t.Fatalf("NewARGB(%d, %d) error = %v", w, h, err)
	}
	p.Fill(c)
	return p
}

// seqARGB creates a buffer whose sample i holds i.
func seqARGB(t *testing.T, w, h int) *ARGB {
	t.Helper()
	p := newTestARGB(t, w, h, 0)
	for i := range p.pix {
		p.pix[i] = uint32(i)
	}
	return p
}
