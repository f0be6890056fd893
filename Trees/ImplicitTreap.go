package Trees

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// ImplicitTreap is a Sequence backed by a treap keyed by position. Every
// operation isolates the affected range with two splits, works on the root of
// the range, and merges the three parts back.
// D is the element and aggregate type, L the update type, S the type used for
// positions and subtree sizes; S must be able to hold the size plus one,
// constructors panic with *SizeError otherwise.
// All nodes are allocated at construction; apart from Values, operations
// allocate nothing after.
// Not safe for concurrent use, including concurrent reads: reads propagate
// pending updates and restructure the tree.
type ImplicitTreap[D any, L comparable, S constraints.Unsigned] struct {
	base[D, L, S]
	root S
}

// New returns an ImplicitTreap of n elements equal to ops.VDef. Priorities
// are drawn from src; a nil src uses a runtime seeded source.
// Time: O(n)
func New[D any, L comparable, S constraints.Unsigned](ops Ops[D, L], n S, src rand.Source) *ImplicitTreap[D, L, S] {
	checkSize[S]("New", uint64(n))
	u := &ImplicitTreap[D, L, S]{base: makeBase[D, L, S](ops, int(n), nil, src)}
	u.root = u.build(1, n)
	return u
}

// From builds an ImplicitTreap holding a copy of vs in order.
// Time: O(len(vs))
func From[D any, L comparable, S constraints.Unsigned](ops Ops[D, L], vs []D, src rand.Source) *ImplicitTreap[D, L, S] {
	checkSize[S]("From", uint64(len(vs)))
	if vs == nil {
		vs = []D{}
	}
	u := &ImplicitTreap[D, L, S]{base: makeBase[D, L, S](ops, len(vs), vs, src)}
	u.root = u.build(1, S(len(vs)))
	return u
}

// checkSize panics unless n+1 fits in S.
func checkSize[S constraints.Unsigned](op string, n uint64) {
	if m := uint64(^S(0)); n >= m {
		panic(&SizeError{op, n, m - 1})
	}
}

// Size of the sequence.
// Time: O(1)
func (u *ImplicitTreap[D, L, S]) Size() S {
	return u.size(u.root)
}

func (u *ImplicitTreap[D, L, S]) checkIndex(op string, i S) {
	if i >= u.Size() {
		panic(&IndexError{op, uint64(i), uint64(u.Size())})
	}
}

// checkRange accepts [l, r] with l<=r<Size, and the empty ranges [l, l-1]
// with l<=Size. Returns the length of the range.
func (u *ImplicitTreap[D, L, S]) checkRange(op string, l, r S) S {
	if n := r + 1; l > u.Size() || n < l || n > u.Size() {
		panic(&RangeError{op, uint64(l), uint64(r), uint64(u.Size())})
	}
	return r + 1 - l
}

// UpdateVal [Sequence.UpdateVal]
// Time: O(log n) expected
func (u *ImplicitTreap[D, L, S]) UpdateVal(i S, v L) {
	u.checkIndex("UpdateVal", i)
	a, m, b := u.cut(u.root, i, 1)
	u.apply(m, v)
	u.root = u.join(a, m, b)
}

// QueryVal [Sequence.QueryVal]
// Time: O(log n) expected
func (u *ImplicitTreap[D, L, S]) QueryVal(i S) D {
	u.checkIndex("QueryVal", i)
	a, m, b := u.cut(u.root, i, 1)
	ret := u.ns[m].val
	u.root = u.join(a, m, b)
	return ret
}

// Select returns the element at i like QueryVal, walking down from the root
// without restructuring the tree.
// Time: O(log n) expected; Space: O(1)
func (u *ImplicitTreap[D, L, S]) Select(i S) D {
	u.checkIndex("Select", i)
	return u.ns[u.sel(u.root, i)].val
}

// UpdateRange [Sequence.UpdateRange]
// A single apply on the root of the range covers it: the update is scaled
// by ops.Segment for the aggregate and pushed down lazily.
// Time: O(log n) expected
func (u *ImplicitTreap[D, L, S]) UpdateRange(l, r S, v L) {
	a, m, b := u.cut(u.root, l, u.checkRange("UpdateRange", l, r))
	if m != 0 {
		u.apply(m, v)
	}
	u.root = u.join(a, m, b)
}

// QueryRange [Sequence.QueryRange]
// Time: O(log n) expected
func (u *ImplicitTreap[D, L, S]) QueryRange(l, r S) D {
	a, m, b := u.cut(u.root, l, u.checkRange("QueryRange", l, r))
	ret := u.aggregate(m)
	u.root = u.join(a, m, b)
	return ret
}

// ReverseRange [Sequence.ReverseRange]
// The reversal is lazy as well; only the flag and the aggregate of the root
// of the range change.
// Time: O(log n) expected
func (u *ImplicitTreap[D, L, S]) ReverseRange(l, r S) {
	a, m, b := u.cut(u.root, l, u.checkRange("ReverseRange", l, r))
	if m != 0 {
		u.flip(m)
	}
	u.root = u.join(a, m, b)
}

// IndexOf returns the current position of the element that was at position
// e when the treap was built. Elements keep their identity through updates
// and reversals, so this tracks where a reversal moved them.
// Time: O(log n) expected
func (u *ImplicitTreap[D, L, S]) IndexOf(e S) S {
	u.checkIndex("IndexOf", e)
	return u.index(e + 1)
}

// InOrder [Sequence.InOrder]. Recursive.
// Time: O(n)
func (u *ImplicitTreap[D, L, S]) InOrder(f func(D) bool) {
	u.inOrder(u.root, f)
}

// Values returns all elements in order.
// Time: O(n)
func (u *ImplicitTreap[D, L, S]) Values() []D {
	vs := make([]D, 0, u.Size())
	u.inOrder(u.root, func(v D) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Corrupt [Sequence.Corrupt]. Recursive.
func (u *ImplicitTreap[D, L, S]) Corrupt() bool {
	if u.root != 0 && u.ns[u.root].p != 0 {
		return true
	}
	sz, bad := u.corrupt(u.root)
	return bad || int(sz) != len(u.ns)-1
}
