// Package utils holds the equality fallback used when a list has no
// equality of its own, plus an index search built on it. Both are shared by
// the list adapters and are not part of the public API.
package utils
