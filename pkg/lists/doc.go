/*
Package lists provides stack-style access, filtering, projection, ordering,
bounded take and shuffling for mutable ordered lists.

# Lists

The helpers operate on the List interface rather than on a concrete type, so
the list stays owned by the caller. Two adapters are provided:

  - Slice wraps a Go slice (Of for comparable elements, NewSlice for a
    custom equality).
  - GodsList wraps any github.com/emirpasic/gods list.

	stack := lists.Of(1, 2)
	lists.Push(stack, 3)       // [1 2 3]
	top := lists.Peek(stack)   // 3, stack unchanged
	v, err := lists.Pop(stack) // 3, stack is [1 2]

# Mutating and copying helpers

Push, Pop and Shuffle change the list they are given; Push and Shuffle also
return it for chaining. Filter, Project, OrderBy, OrderByFunc and Take never
touch their input and return a new *Slice:

	evens := lists.Filter(stack, func(v int) bool { return v%2 == 0 })
	names := lists.Project(users, func(u User) string { return u.Name })
	first := lists.Take(lists.OrderBy(users, func(u User) int { return u.Age }), 3)

Pop removes by value: it reads the last element and then removes the first
element equal to it. With duplicates, that may be an earlier slot than the
one read. Pop on an empty list returns an error wrapping
core.ErrEmptyCollection; Peek on an empty list returns the zero value.

# Shuffle

Shuffle is an in-place Fisher-Yates shuffle producing a uniformly random
permutation. Each call seeds its own source; use ShuffleWith with a seeded
*rand.Rand for reproducible output.

None of the helpers lock. Do not share a list between goroutines without
external synchronization.
*/
package lists
