package lists

import (
	"fmt"
	"iter"
	"slices"

	"github.com/collext/go-sdk/internal/utils"
)

// Slice is a List backed by a Go slice.
//
// The zero value is an empty list whose Remove compares elements with
// interface equality, which panics for uncomparable dynamic types. Use Of or
// NewSlice to pick the equality explicitly.
type Slice[T any] struct {
	items []T
	equal func(a, b T) bool
}

// Of creates a list backed by items, comparing elements with ==, except
// that NaN equals NaN so every element can be found by its own value.
// The list takes over items as its storage.
func Of[T comparable](items ...T) *Slice[T] {
	return &Slice[T]{
		items: items,
		equal: func(a, b T) bool { return a == b || (a != a && b != b) },
	}
}

// NewSlice creates a list backed by items that compares elements with equal.
func NewSlice[T any](equal func(a, b T) bool, items ...T) *Slice[T] {
	return &Slice[T]{items: items, equal: equal}
}

func (s *Slice[T]) Len() int {
	return len(s.items)
}

func (s *Slice[T]) Get(index int) T {
	return s.items[index]
}

func (s *Slice[T]) Set(index int, value T) {
	s.items[index] = value
}

func (s *Slice[T]) Add(value T) {
	s.items = append(s.items, value)
}

func (s *Slice[T]) Remove(value T) bool {
	i := utils.IndexFunc(len(s.items), s.Get, value, s.equal)
	if i < 0 {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

func (s *Slice[T]) RemoveAt(index int) {
	s.items = slices.Delete(s.items, index, index+1)
}

// Values returns a copy of the elements.
func (s *Slice[T]) Values() []T {
	return slices.Clone(s.items)
}

// All iterates over the elements in order.
func (s *Slice[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

func (s *Slice[T]) String() string {
	return fmt.Sprint(s.items)
}
