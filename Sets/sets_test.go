package Sets

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Ordered[int] = (*OrderedSqrtArray[int])(nil)

// item makes duplicates distinct for the btree oracle.
type item struct {
	v, id int
}

func lessItem(a, b item) bool {
	return a.v < b.v || a.v == b.v && a.id < b.id
}

func oracleValues(o *btree.BTreeG[item]) []int {
	vs := make([]int, 0, o.Len())
	o.Ascend(func(it item) bool {
		vs = append(vs, it.v)
		return true
	})
	return vs
}

func TestOrderedSqrtArray_Basic(t *testing.T) {
	s := NewOrderedSqrtArray(cmp.Compare[int])
	for _, v := range []int{5, 1, 3, 3, 9, 7} {
		s.Put(v)
	}
	require.Equal(t, []int{1, 3, 3, 5, 7, 9}, s.Values())
	assert.Equal(t, 6, s.Size())
	assert.True(t, s.Has(3))
	assert.False(t, s.Has(4))

	r, ok := s.RankOf(5)
	assert.True(t, ok)
	assert.Equal(t, 3, r)
	r, ok = s.RankOf(4)
	assert.False(t, ok)
	assert.Equal(t, 3, r)

	k, v, ok := s.LowerBound(3)
	assert.Equal(t, []any{1, 3, true}, []any{k, v, ok})
	k, v, ok = s.UpperBound(3)
	assert.Equal(t, []any{3, 5, true}, []any{k, v, ok})
	k, v, ok = s.Floor(3)
	assert.Equal(t, []any{2, 3, true}, []any{k, v, ok})
	k, v, ok = s.Floor(8)
	assert.Equal(t, []any{4, 7, true}, []any{k, v, ok})
	_, _, ok = s.Floor(0)
	assert.False(t, ok)
	_, _, ok = s.Ceiling(10)
	assert.False(t, ok)

	assert.True(t, s.Remove(3))
	assert.True(t, s.Remove(3))
	assert.False(t, s.Remove(3))
	assert.Equal(t, []int{1, 5, 7, 9}, s.Values())
	v, ok = s.Select(2)
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = s.Select(4)
	assert.False(t, ok)
}

func TestOrderedSqrtArray_From(t *testing.T) {
	vs := []int{1, 1, 2, 4, 8, 16, 32, 64, 128, 256}
	s := OrderedFrom(vs, cmp.Compare[int])
	assert.Equal(t, vs, s.Values())
	for k, want := range vs {
		v, ok := s.Select(k)
		require.True(t, ok)
		assert.Equal(t, want, v)
	}
	assert.Empty(t, OrderedFrom(nil, cmp.Compare[int]).Values())
	assert.PanicsWithValue(t, UnsortedError{2}, func() {
		OrderedFrom([]int{1, 3, 2}, cmp.Compare[int])
	})
}

func TestOrderedSqrtArray_Random(t *testing.T) {
	rg := rand.New(rand.NewPCG(1, 2))
	s := NewOrderedSqrtArray(cmp.Compare[int])
	o := btree.NewG(8, lessItem)
	for it := range 20000 {
		v := rg.IntN(500)
		switch rg.IntN(3) {
		case 0, 1:
			s.Put(v)
			o.ReplaceOrInsert(item{v, it})
		case 2:
			var victim item
			found := false
			o.AscendGreaterOrEqual(item{v, -1}, func(x item) bool {
				victim, found = x, x.v == v
				return false
			})
			if found {
				o.Delete(victim)
			}
			require.Equal(t, found, s.Remove(v), "iteration %d: Remove(%d)", it, v)
		}
		if it%997 != 0 {
			continue
		}
		want := oracleValues(o)
		require.Equal(t, want, s.Values(), "iteration %d", it)
		for range 50 {
			q := rg.IntN(520) - 10
			lb, found := slices.BinarySearch(want, q)
			r, ok := s.RankOf(q)
			require.Equal(t, lb, r)
			require.Equal(t, found, ok)
			ub := lb
			for ub < len(want) && want[ub] == q {
				ub++
			}
			if k, e, ok := s.UpperBound(q); ub < len(want) {
				require.True(t, ok)
				require.Equal(t, ub, k)
				require.Equal(t, want[ub], e)
			} else {
				require.False(t, ok)
			}
			if k, e, ok := s.Floor(q); ub > 0 {
				require.True(t, ok)
				require.Equal(t, ub-1, k)
				require.Equal(t, want[ub-1], e)
			} else {
				require.False(t, ok)
			}
			if len(want) > 0 {
				k := rg.IntN(len(want))
				e, ok := s.Select(k)
				require.True(t, ok)
				require.Equal(t, want[k], e)
			}
		}
	}
	require.Equal(t, o.Len(), s.Size())
}
