package lists_test

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/collext/go-sdk/pkg/core"
	"github.com/collext/go-sdk/pkg/lists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeek(t *testing.T) {
	t.Run("empty returns zero value", func(t *testing.T) {
		assert.Equal(t, 0, lists.Peek(lists.Of[int]()))
		assert.Equal(t, "", lists.Peek(lists.Of[string]()))
		assert.Nil(t, lists.Peek(lists.Of[*int]()))
	})

	t.Run("last element, list unchanged", func(t *testing.T) {
		l := lists.Of(1, 2, 3)
		assert.Equal(t, 3, lists.Peek(l))
		assert.Equal(t, 3, l.Len())
		assert.Equal(t, []int{1, 2, 3}, l.Values())
	})
}

func TestPush(t *testing.T) {
	l := lists.Of(1, 2)
	got := lists.Push(l, 3)

	assert.Same(t, l, got)
	assert.Equal(t, []int{1, 2, 3}, l.Values())

	lists.Push(lists.Push(l, 4), 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, l.Values())
}

func TestPop(t *testing.T) {
	t.Run("returns and removes last", func(t *testing.T) {
		l := lists.Of(1, 2, 3)
		v, err := lists.Pop(l)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
		assert.Equal(t, []int{1, 2}, l.Values())
	})

	t.Run("drains to empty", func(t *testing.T) {
		l := lists.Of("a", "b")
		var popped []string
		for l.Len() > 0 {
			v, err := lists.Pop(l)
			require.NoError(t, err)
			popped = append(popped, v)
		}
		assert.Equal(t, []string{"b", "a"}, popped)
	})

	t.Run("empty list fails", func(t *testing.T) {
		v, err := lists.Pop(lists.Of[int]())
		require.Error(t, err)
		assert.Zero(t, v)
		assert.True(t, errors.Is(err, core.ErrEmptyCollection))

		var collErr *core.CollectionError
		require.True(t, errors.As(err, &collErr))
		assert.Equal(t, "pop", collErr.Op)
	})

	t.Run("duplicates remove first equal value", func(t *testing.T) {
		l := lists.Of(3, 1, 3)
		v, err := lists.Pop(l)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
		assert.Equal(t, []int{1, 3}, l.Values())
	})

	t.Run("NaN is removed", func(t *testing.T) {
		l := lists.Of(1.0, math.NaN())
		v, err := lists.Pop(l)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(v))
		assert.Equal(t, []float64{1.0}, l.Values())

		l = lists.Of(math.NaN(), 2.0, math.NaN())
		_, err = lists.Pop(l)
		require.NoError(t, err)
		assert.Equal(t, 2, l.Len())
	})

	t.Run("equality that never matches drops last slot", func(t *testing.T) {
		l := lists.NewSlice(func(a, b int) bool { return false }, 1, 2, 3)
		v, err := lists.Pop(l)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
		assert.Equal(t, []int{1, 2}, l.Values())

		for l.Len() > 0 {
			_, err := lists.Pop(l)
			require.NoError(t, err)
		}
		assert.Equal(t, 0, l.Len())
	})

	t.Run("custom equality", func(t *testing.T) {
		l := lists.NewSlice(strings.EqualFold, "A", "b", "a")
		v, err := lists.Pop(l)
		require.NoError(t, err)
		assert.Equal(t, "a", v)
		assert.Equal(t, []string{"b", "a"}, l.Values())
	})
}

func TestFilter(t *testing.T) {
	isEven := func(v int) bool { return v%2 == 0 }

	tests := []struct {
		name  string
		items []int
		want  []int
	}{
		{"mixed", []int{1, 2, 3, 4}, []int{2, 4}},
		{"none match", []int{1, 3}, []int{}},
		{"empty", nil, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lists.Of(slices.Clone(tt.items)...)
			got := lists.Filter(l, isEven)
			assert.Equal(t, tt.want, got.Values())
			assert.Equal(t, tt.items, l.Values(), "input must not change")
		})
	}
}

func TestProject(t *testing.T) {
	l := lists.Of(1, 2, 3)
	got := lists.Project(l, func(v int) string { return strings.Repeat("x", v) })

	assert.Equal(t, []string{"x", "xx", "xxx"}, got.Values())
	assert.Equal(t, []int{1, 2, 3}, l.Values())

	empty := lists.Project(lists.Of[int](), func(v int) bool { return v > 0 })
	assert.Equal(t, 0, empty.Len())
}

type person struct {
	Name string
	Age  int
}

func TestOrderBy(t *testing.T) {
	people := lists.Of(
		person{"carol", 40},
		person{"ada", 36},
		person{"bob", 36},
		person{"dan", 20},
	)
	before := people.Values()

	byAge := lists.OrderBy(people, func(p person) int { return p.Age })
	assert.Equal(t, []person{{"dan", 20}, {"ada", 36}, {"bob", 36}, {"carol", 40}}, byAge.Values())

	byName := lists.OrderBy(people, func(p person) string { return p.Name })
	assert.Equal(t, []string{"ada", "bob", "carol", "dan"},
		lists.Project(byName, func(p person) string { return p.Name }).Values())

	assert.Equal(t, before, people.Values(), "input must not change")

	t.Run("key called once per element", func(t *testing.T) {
		calls := 0
		lists.OrderBy(people, func(p person) int { calls++; return p.Age })
		assert.Equal(t, people.Len(), calls)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0, lists.OrderBy(lists.Of[int](), func(v int) int { return v }).Len())
	})
}

func TestOrderByFunc(t *testing.T) {
	l := lists.Of(3, 1, 2)
	desc := lists.OrderByFunc(l, func(a, b int) int { return b - a })
	assert.Equal(t, []int{3, 2, 1}, desc.Values())
	assert.Equal(t, []int{3, 1, 2}, l.Values())
}

func TestTake(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		count int
		want  []int
	}{
		{"prefix", []int{1, 2, 3, 4}, 2, []int{1, 2}},
		{"more than length", []int{1, 2}, 5, []int{1, 2}},
		{"exact", []int{1, 2}, 2, []int{1, 2}},
		{"zero", []int{1, 2, 3}, 0, []int{}},
		{"negative", []int{1, 2, 3}, -1, []int{}},
		{"empty", nil, 3, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lists.Of(slices.Clone(tt.items)...)
			got := lists.Take(l, tt.count)
			assert.Equal(t, tt.want, got.Values())
			assert.Equal(t, tt.items, l.Values(), "input must not change")
		})
	}

	t.Run("result is independent", func(t *testing.T) {
		l := lists.Of(1, 2, 3)
		got := lists.Take(l, 2)
		got.Set(0, 100)
		lists.Push(got, 9)
		assert.Equal(t, []int{1, 2, 3}, l.Values())
	})
}

func TestResultKeepsEquality(t *testing.T) {
	l := lists.NewSlice(strings.EqualFold, "Go", "rust", "GO")
	got := lists.Filter(l, func(s string) bool { return len(s) == 2 })

	assert.True(t, got.Remove("go"))
	assert.Equal(t, []string{"GO"}, got.Values())
}

func TestShuffle(t *testing.T) {
	t.Run("permutation of same elements", func(t *testing.T) {
		for n := 0; n <= 8; n++ {
			items := make([]int, n)
			for i := range items {
				items[i] = i % 3
			}
			l := lists.Of(slices.Clone(items)...)

			got := lists.Shuffle(l)
			assert.Same(t, l, got)

			shuffled := l.Values()
			slices.Sort(shuffled)
			slices.Sort(items)
			assert.Equal(t, items, shuffled, "n=%d", n)
		}
	})

	t.Run("seeded is reproducible", func(t *testing.T) {
		a := lists.Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
		b := lists.Of(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

		lists.ShuffleWith(a, rand.New(rand.NewPCG(1, 2)))
		lists.ShuffleWith(b, rand.New(rand.NewPCG(1, 2)))
		assert.Equal(t, a.Values(), b.Values())
	})

	t.Run("uniform over permutations", func(t *testing.T) {
		const trials = 60000
		r := rand.New(rand.NewPCG(42, 7))
		counts := map[[3]int]int{}

		for range trials {
			l := lists.Of(0, 1, 2)
			lists.ShuffleWith(l, r)
			counts[[3]int(l.Values())]++
		}

		require.Len(t, counts, 6, "every permutation must be reachable")
		expected := trials / 6
		for perm, c := range counts {
			assert.InDelta(t, expected, c, float64(expected)/10, "permutation %v", perm)
		}
	})

	t.Run("nil source falls back to fresh randomness", func(t *testing.T) {
		l := lists.Of(1, 2, 3, 4)
		got := lists.ShuffleWith(l, nil)
		assert.Same(t, l, got)

		shuffled := l.Values()
		slices.Sort(shuffled)
		assert.Equal(t, []int{1, 2, 3, 4}, shuffled)
	})

	t.Run("last element can move", func(t *testing.T) {
		r := rand.New(rand.NewPCG(3, 4))
		moved := false
		for range 200 {
			l := lists.Of(0, 1)
			lists.ShuffleWith(l, r)
			if lists.Peek(l) != 1 {
				moved = true
				break
			}
		}
		assert.True(t, moved)
	})
}
