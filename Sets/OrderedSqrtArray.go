package Sets

import (
	"math"
	"slices"
)

// OrderedSqrtArray is a sorted multiset split into blocks of about sqrt(n)
// sorted elements. A block is split in two once it holds more than
// 2*sqrt(n) elements and dropped once empty.
// Put, Remove: O(sqrt(n)); Select, RankOf, Has and the bound searches: O(log n).
type OrderedSqrtArray[T any] struct {
	a      [][]T
	prefix []int // prefix[i] is the number of elements before block i.
	n      int
	//returns negative number if first < second, 0 if first==second, positive number if first>second. see cmp.Compare for an example.
	Cmp func(T, T) int
}

// NewOrderedSqrtArray returns an empty OrderedSqrtArray ordered by cmp.
func NewOrderedSqrtArray[T any](cmp func(T, T) int) *OrderedSqrtArray[T] {
	return &OrderedSqrtArray[T]{Cmp: cmp}
}

// OrderedFrom builds an OrderedSqrtArray from vs, which must be sorted by cmp,
// otherwise it panics with UnsortedError. vs isn't retained.
// Time: O(n)
func OrderedFrom[T any](vs []T, cmp func(T, T) int) *OrderedSqrtArray[T] {
	for i := 1; i < len(vs); i++ {
		if cmp(vs[i-1], vs[i]) > 0 {
			panic(UnsortedError{i})
		}
	}
	u := &OrderedSqrtArray[T]{n: len(vs), Cmp: cmp}
	sqrtn := max(int(math.Sqrt(float64(len(vs)))), 1)
	for i := 0; i < len(vs); i += sqrtn {
		u.prefix = append(u.prefix, i)
		u.a = append(u.a, slices.Clone(vs[i:min(i+sqrtn, len(vs))]))
	}
	return u
}

// fix recomputes prefix from block i onwards.
func (u *OrderedSqrtArray[T]) fix(i int) {
	for i = max(i, 1); i < len(u.a); i++ {
		u.prefix[i] = u.prefix[i-1] + len(u.a[i-1])
	}
}

// lowerBound returns the position of the first element >= v, (len(a), 0) if none.
func (u *OrderedSqrtArray[T]) lowerBound(v T) (int, int) {
	i, _ := slices.BinarySearchFunc(u.a, v, func(b []T, v T) int {
		if u.Cmp(b[len(b)-1], v) < 0 {
			return -1
		}
		return 1
	})
	if i == len(u.a) {
		return i, 0
	}
	j, _ := slices.BinarySearchFunc(u.a[i], v, func(e, v T) int {
		if u.Cmp(e, v) < 0 {
			return -1
		}
		return 1
	})
	return i, j
}

// upperBound returns the position of the first element > v, (len(a), 0) if none.
func (u *OrderedSqrtArray[T]) upperBound(v T) (int, int) {
	i, _ := slices.BinarySearchFunc(u.a, v, func(b []T, v T) int {
		if u.Cmp(b[len(b)-1], v) <= 0 {
			return -1
		}
		return 1
	})
	if i == len(u.a) {
		return i, 0
	}
	j, _ := slices.BinarySearchFunc(u.a[i], v, func(e, v T) int {
		if u.Cmp(e, v) <= 0 {
			return -1
		}
		return 1
	})
	return i, j
}

// Put [Ordered.Put]
// Time: O(sqrt(n))
func (u *OrderedSqrtArray[T]) Put(v T) {
	i, j := u.upperBound(v)
	if u.n++; len(u.a) == 0 {
		u.a, u.prefix = append(u.a, nil), append(u.prefix, 0)
	}
	if i == len(u.a) {
		i--
		u.a[i] = append(u.a[i], v)
	} else {
		u.a[i] = slices.Insert(u.a[i], j, v)
	}
	if sqrtn := int(math.Sqrt(float64(u.n))); len(u.a[i]) > 2*sqrtn {
		tail := slices.Clone(u.a[i][sqrtn:])
		u.a[i] = slices.Clip(u.a[i][:sqrtn])
		u.a = slices.Insert(u.a, i+1, tail)
		u.prefix = append(u.prefix, 0)
	}
	u.fix(i + 1)
}

// Remove [Ordered.Remove]
// Time: O(sqrt(n))
func (u *OrderedSqrtArray[T]) Remove(v T) bool {
	i, j := u.lowerBound(v)
	if i == len(u.a) || u.Cmp(u.a[i][j], v) != 0 {
		return false
	}
	u.n--
	if u.a[i] = slices.Delete(u.a[i], j, j+1); len(u.a[i]) == 0 {
		u.a = slices.Delete(u.a, i, i+1)
		u.prefix = u.prefix[:len(u.prefix)-1]
		u.fix(i)
	} else {
		u.fix(i + 1)
	}
	return true
}

// Has [Ordered.Has]
// Time: O(log n)
func (u *OrderedSqrtArray[T]) Has(v T) bool {
	i, j := u.lowerBound(v)
	return i != len(u.a) && u.Cmp(u.a[i][j], v) == 0
}

// Size [Ordered.Size]
func (u *OrderedSqrtArray[T]) Size() int {
	return u.n
}

// Select [Ordered.Select]
// Time: O(log n)
func (u *OrderedSqrtArray[T]) Select(k int) (T, bool) {
	if k < 0 || k >= u.n {
		return *new(T), false
	}
	i, found := slices.BinarySearch(u.prefix, k)
	if !found {
		i--
	}
	return u.a[i][k-u.prefix[i]], true
}

// RankOf [Ordered.RankOf]
// Time: O(log n)
func (u *OrderedSqrtArray[T]) RankOf(v T) (int, bool) {
	i, j := u.lowerBound(v)
	if i == len(u.a) {
		return u.n, false
	}
	return u.prefix[i] + j, u.Cmp(u.a[i][j], v) == 0
}

func (u *OrderedSqrtArray[T]) at(i, j int) (int, T, bool) {
	if i < 0 || i == len(u.a) {
		return -1, *new(T), false
	}
	return u.prefix[i] + j, u.a[i][j], true
}

// LowerBound returns the rank and value of the smallest element >= v. ok is
// false when there's none. Same as Ceiling.
// Time: O(log n)
func (u *OrderedSqrtArray[T]) LowerBound(v T) (rank int, e T, ok bool) {
	return u.at(u.lowerBound(v))
}

// UpperBound returns the rank and value of the smallest element > v.
// Time: O(log n)
func (u *OrderedSqrtArray[T]) UpperBound(v T) (rank int, e T, ok bool) {
	return u.at(u.upperBound(v))
}

// Ceiling [OrderedSqrtArray.LowerBound]
func (u *OrderedSqrtArray[T]) Ceiling(v T) (rank int, e T, ok bool) {
	return u.LowerBound(v)
}

// Floor returns the rank and value of the largest element <= v, the last of
// them if there are duplicates.
// Time: O(log n)
func (u *OrderedSqrtArray[T]) Floor(v T) (rank int, e T, ok bool) {
	i, j := u.upperBound(v)
	if j > 0 {
		return u.at(i, j-1)
	} else if i > 0 {
		return u.at(i-1, len(u.a[i-1])-1)
	}
	return -1, *new(T), false
}

// Values [Ordered.Values]
// Time: O(n)
func (u *OrderedSqrtArray[T]) Values() []T {
	vs := make([]T, 0, u.n)
	for _, b := range u.a {
		vs = append(vs, b...)
	}
	return vs
}
