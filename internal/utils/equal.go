package utils

// Equal compares two values of an unconstrained type with interface
// equality. It panics, exactly as == on interface values does, when the
// dynamic type is not comparable (slices, maps, funcs).
func Equal[T any](a, b T) bool {
	return any(a) == any(b)
}

// IndexFunc returns the index of the first of n elements for which
// eq(get(i), v) holds, or -1.
func IndexFunc[T any](n int, get func(int) T, v T, eq func(a, b T) bool) int {
	if eq == nil {
		eq = Equal[T]
	}
	for i := 0; i < n; i++ {
		if eq(get(i), v) {
			return i
		}
	}
	return -1
}
