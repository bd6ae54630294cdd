package sequences

import (
	"iter"
	"strings"

	"github.com/go-softwarelab/common/pkg/seq"
	"golang.org/x/text/cases"
)

// IsEmpty reports whether s yields no elements. It pulls at most one element.
func IsEmpty[T any](s iter.Seq[T]) bool {
	if s == nil {
		return true
	}
	return seq.IsEmpty(s)
}

// IsNullOrEmpty reports whether s is nil or yields no elements.
func IsNullOrEmpty[T any](s iter.Seq[T]) bool {
	return s == nil || IsEmpty(s)
}

// HasMultiple reports whether s yields more than one element. It pulls at
// most two elements.
func HasMultiple[T any](s iter.Seq[T]) bool {
	if s == nil {
		return false
	}
	n := 0
	return seq.Exists(s, func(T) bool {
		n++
		return n > 1
	})
}

// ContainsIgnoreCase reports whether any element equals target rune by rune
// under Unicode simple case folding (strings.EqualFold): two runes match
// when they belong to the same simple folding orbit, so "k", "K" and the
// Kelvin sign U+212A are all equal. The comparison does not depend on
// locale and applies no trimming, normalization or multi-rune folding. An
// empty target only matches empty elements.
func ContainsIgnoreCase(s iter.Seq[string], target string) bool {
	if s == nil {
		return false
	}
	return seq.Exists(s, func(v string) bool {
		return strings.EqualFold(v, target)
	})
}

// ContainsFold is like ContainsIgnoreCase but uses full Unicode case
// folding, so multi-rune folds such as "ß" and "ss" compare equal.
func ContainsFold(s iter.Seq[string], target string) bool {
	if s == nil {
		return false
	}
	fold := cases.Fold()
	want := fold.String(target)
	return seq.Exists(s, func(v string) bool {
		return fold.String(v) == want
	})
}
