package lists

import (
	"fmt"

	"github.com/collext/go-sdk/internal/utils"
	godslists "github.com/emirpasic/gods/lists"
)

// GodsList adapts a gods list (arraylist, doublylinkedlist,
// singlylinkedlist) to List. Elements stored in the underlying list must be
// of type T or nil; Remove uses interface equality, as gods itself does.
type GodsList[T any] struct {
	list godslists.List
}

// FromGods wraps l. Mutations through the adapter are visible in l.
func FromGods[T any](l godslists.List) *GodsList[T] {
	return &GodsList[T]{list: l}
}

// Unwrap returns the underlying gods list.
func (g *GodsList[T]) Unwrap() godslists.List {
	return g.list
}

func (g *GodsList[T]) Len() int {
	return g.list.Size()
}

func (g *GodsList[T]) Get(index int) T {
	v, ok := g.list.Get(index)
	if !ok {
		panic(fmt.Sprintf("lists: index %d out of range [0:%d]", index, g.list.Size()))
	}
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

func (g *GodsList[T]) Set(index int, value T) {
	g.list.Set(index, value)
}

func (g *GodsList[T]) Add(value T) {
	g.list.Add(value)
}

func (g *GodsList[T]) Remove(value T) bool {
	i := utils.IndexFunc(g.Len(), g.Get, value, nil)
	if i < 0 {
		return false
	}
	g.list.Remove(i)
	return true
}

func (g *GodsList[T]) RemoveAt(index int) {
	if index < 0 || index >= g.list.Size() {
		panic(fmt.Sprintf("lists: index %d out of range [0:%d]", index, g.list.Size()))
	}
	g.list.Remove(index)
}
