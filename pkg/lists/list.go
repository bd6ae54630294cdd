package lists

// List is a caller-owned, mutable, index-addressable ordered list.
//
// Helpers in this package read and mutate a List through these methods only
// and never keep a reference to it after returning.
type List[T any] interface {
	// Len returns the number of elements.
	Len() int

	// Get returns the element at index. It panics if index is out of range.
	Get(index int) T

	// Set replaces the element at index.
	Set(index int, value T)

	// Add appends value to the end.
	Add(value T)

	// Remove deletes the first element equal to value and reports whether
	// one was found.
	Remove(value T) bool

	// RemoveAt deletes the element at index. It panics if index is out of
	// range.
	RemoveAt(index int)
}
