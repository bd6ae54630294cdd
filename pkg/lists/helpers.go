package lists

import (
	"cmp"
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/collext/go-sdk/pkg/core"
	"github.com/go-softwarelab/common/pkg/seq"
)

// Peek returns the last element without removing it, or the zero value of T
// if the list is empty.
func Peek[T any](list List[T]) T {
	n := list.Len()
	if n == 0 {
		var zero T
		return zero
	}
	return list.Get(n - 1)
}

// Pop returns the last element and removes the first element equal to it.
// When the last value also appears earlier in the list, that earlier
// occurrence is the one removed; the list still loses one element equal to
// the returned value. If the list's equality does not match the last element
// against itself (a custom non-reflexive equality, say), the last slot is
// removed by position instead.
//
// Pop on an empty list returns an error wrapping core.ErrEmptyCollection.
func Pop[T any](list List[T]) (T, error) {
	n := list.Len()
	if n == 0 {
		var zero T
		return zero, core.NewCollectionError("pop", core.ErrEmptyCollection)
	}
	last := list.Get(n - 1)
	if !list.Remove(last) {
		list.RemoveAt(n - 1)
	}
	return last, nil
}

// Push appends item and returns the same list.
func Push[T any](list List[T], item T) List[T] {
	list.Add(item)
	return list
}

// Filter returns a new list of the elements for which keep returns true, in
// their original order.
func Filter[T any](list List[T], keep func(T) bool) *Slice[T] {
	return collect(resultFor(list, 0), seq.Filter(values(list), keep))
}

// Project returns a new list holding selector applied to every element, in
// order.
func Project[T, R any](list List[T], selector func(T) R) *Slice[R] {
	out := &Slice[R]{items: make([]R, 0, list.Len())}
	return collect(out, seq.Map(values(list), selector))
}

// OrderBy returns a new list sorted ascending by key. The sort is stable and
// key is called once per element.
func OrderBy[T any, K cmp.Ordered](list List[T], key func(T) K) *Slice[T] {
	type keyed struct {
		key K
		val T
	}
	pairs := make([]keyed, list.Len())
	for i := range pairs {
		v := list.Get(i)
		pairs[i] = keyed{key: key(v), val: v}
	}
	slices.SortStableFunc(pairs, func(a, b keyed) int {
		return cmp.Compare(a.key, b.key)
	})

	out := resultFor(list, len(pairs))
	for _, p := range pairs {
		out.items = append(out.items, p.val)
	}
	return out
}

// OrderByFunc returns a new list stably sorted by compare.
func OrderByFunc[T any](list List[T], compare func(a, b T) int) *Slice[T] {
	out := copyOf(list, list.Len())
	slices.SortStableFunc(out.items, compare)
	return out
}

// Take returns a new list with the first count elements. A count larger than
// the list takes everything; zero or negative takes nothing.
func Take[T any](list List[T], count int) *Slice[T] {
	return copyOf(list, min(max(count, 0), list.Len()))
}

// Shuffle permutes the list in place with a freshly seeded random source and
// returns the same list.
func Shuffle[T any](list List[T]) List[T] {
	return ShuffleWith(list, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// ShuffleWith permutes the list in place using r and returns the same list.
// A nil r behaves like Shuffle.
// Every permutation is equally likely: each position i from the first to the
// second-to-last is swapped with a uniformly chosen position in [i, n).
func ShuffleWith[T any](list List[T], r *rand.Rand) List[T] {
	if r == nil {
		return Shuffle(list)
	}
	n := list.Len()
	for i := 0; i < n-1; i++ {
		j := i + r.IntN(n-i)
		if j == i {
			continue
		}
		vi, vj := list.Get(i), list.Get(j)
		list.Set(i, vj)
		list.Set(j, vi)
	}
	core.OpLogger("shuffle").WithField("len", n).Debug("list shuffled")
	return list
}

// resultFor returns an empty Slice that compares elements the way list does
// when list is itself a Slice.
func resultFor[T any](list List[T], capacity int) *Slice[T] {
	out := &Slice[T]{items: make([]T, 0, capacity)}
	if s, ok := list.(*Slice[T]); ok {
		out.equal = s.equal
	}
	return out
}

func copyOf[T any](list List[T], n int) *Slice[T] {
	return collect(resultFor(list, n), seq.Take(values(list), n))
}

// values iterates over list by index.
func values[T any](list List[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range list.Len() {
			if !yield(list.Get(i)) {
				return
			}
		}
	}
}

// collect appends everything s yields to out, keeping out non-nil.
func collect[T any](out *Slice[T], s iter.Seq[T]) *Slice[T] {
	out.items = append(out.items, seq.Collect(s)...)
	return out
}
