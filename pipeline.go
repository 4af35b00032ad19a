package ggfx

import (
	"fmt"
	"reflect"
)

// Pipeline applies filters in sequence. The output of each stage is the
// input of the next; order is preserved exactly as configured.
//
// A Pipeline is itself a Filter and can be nested. It holds no per-run
// state, so it may be shared between goroutines once configured.
type Pipeline struct {
	filters []Filter
}

// NewPipeline creates a pipeline from the given filters. Nil filters are skipped.
func NewPipeline(filters ...Filter) *Pipeline {
	p := &Pipeline{
		filters: make([]Filter, 0, len(filters)),
	}
	for _, f := range filters {
		p.Add(f)
	}
	return p
}

// Add appends a filter to the pipeline.
func (p *Pipeline) Add(f Filter) {
	if f != nil {
		p.filters = append(p.filters, f)
	}
}

// Remove deletes the first occurrence of f, compared by identity.
// It reports whether a filter was removed. Filters whose values cannot be
// compared, such as structs holding slices, never match.
func (p *Pipeline) Remove(f Filter) bool {
	if f == nil || !reflect.ValueOf(f).Comparable() {
		return false
	}
	for i, g := range p.filters {
		if reflect.ValueOf(g).Comparable() && g == f {
			p.filters = append(p.filters[:i], p.filters[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all filters.
func (p *Pipeline) Clear() {
	p.filters = nil
}

// Len returns the number of filters in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.filters)
}

// Filters returns a copy of the configured filters in order.
func (p *Pipeline) Filters() []Filter {
	out := make([]Filter, len(p.filters))
	copy(out, p.filters)
	return out
}

// Process runs every stage. An empty pipeline copies in to out.
//
// Stages alternate between out and one scratch buffer, arranged so that the
// final stage writes out directly.
func (p *Pipeline) Process(in, out []uint32, width, height int) error {
	if err := CheckSize(in, out, width, height); err != nil {
		return err
	}

	n := len(p.filters)
	switch n {
	case 0:
		copy(out, in[:width*height])
		return nil
	case 1:
		return p.filters[0].Process(in, out, width, height)
	}

	log := Logger()
	scratch := make([]uint32, width*height)
	cur := in
	for i, f := range p.filters {
		next := scratch
		if (n-1-i)%2 == 0 {
			next = out
		}
		if err := f.Process(cur, next, width, height); err != nil {
			return fmt.Errorf("ggfx: pipeline stage %d (%T): %w", i, f, err)
		}
		log.Debug("ggfx: pipeline stage done", "stage", i, "filter", fmt.Sprintf("%T", f))
		cur = next
	}
	return nil
}
