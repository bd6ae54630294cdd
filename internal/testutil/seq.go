package testutil

import (
	"iter"
	"testing"
)

// Probe wraps a sequence and records how it is consumed.
type Probe[T any] struct {
	items []T
	// Pulled is the number of elements handed to consumers across all passes.
	Pulled int
	// Passes is the number of times the sequence was enumerated.
	Passes int
}

// NewProbe creates a probe over items.
func NewProbe[T any](items ...T) *Probe[T] {
	return &Probe[T]{items: items}
}

// Seq returns the probed sequence.
func (p *Probe[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		p.Passes++
		for _, v := range p.items {
			p.Pulled++
			if !yield(v) {
				return
			}
		}
	}
}

// Once returns a sequence over items that fails the test if it is
// enumerated more than once.
func Once[T any](t testing.TB, items ...T) iter.Seq[T] {
	t.Helper()
	used := false
	return func(yield func(T) bool) {
		if used {
			t.Errorf("single-pass sequence enumerated twice")
			return
		}
		used = true
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// Endless returns an unbounded sequence counting up from zero.
func Endless() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
