package Trees

import "golang.org/x/exp/constraints"

// Ops is the aggregate/lazy contract a treap is generic over. D is the type of
// elements and of subtree aggregates, L is the type of pending updates.
// None of the properties below are checked; breaking them silently corrupts
// the aggregates.
type Ops[D any, L comparable] struct {
	//Merge combines the aggregate of a left range with the aggregate of the
	//range immediately to its right. Must be associative, need not commute.
	Merge func(l, r D) D
	//Segment scales an update meant for a single element to the update of
	//an aggregate covering k elements. For a sum aggregate with an add update
	//this is v*k.
	Segment func(v L, k int) L
	//MergeLazy composes two pending updates, newer being applied after older.
	MergeLazy func(older, newer L) L
	//Apply applies an update to an element or to an aggregate.
	Apply func(d D, v L) D
	//Reverse returns the aggregate of the same elements in reverse order.
	//Must be its own inverse. A nil Reverse means aggregates are order
	//invariant.
	Reverse func(d D) D
	//VDef is the value of default constructed elements.
	VDef D
	//QDef is the aggregate of an empty range.
	QDef D
	//LDef is the identity update, meaning no pending update.
	LDef L
}

// Sequence is a position indexed sequence supporting range updates, range
// queries and range reversal. Positions are 0-indexed and ranges are
// inclusive on both ends. An empty range is written as [l, l-1].
// Out of range positions make the methods panic with *IndexError.
type Sequence[D any, L comparable, S constraints.Unsigned] interface {
	//UpdateVal applies v to the element at i.
	UpdateVal(i S, v L)
	//QueryVal returns the element at i.
	QueryVal(i S) D
	//UpdateRange applies v to every element in [l, r].
	UpdateRange(l, r S, v L)
	//QueryRange returns the aggregate of [l, r], Ops.QDef if the range is empty.
	QueryRange(l, r S) D
	//ReverseRange reverses the order of the elements in [l, r].
	ReverseRange(l, r S)
	//Size of the sequence.
	Size() S
	//InOrder calls f on every element from the first to the last, stopping
	//early when f returns false.
	InOrder(f func(D) bool)
	//Corrupt returns whether the tree has corrupt structures: broken heap
	//order on priorities, wrong subtree sizes, or wrong parent links.
	Corrupt() bool
}

// Sum returns the Ops of a sum aggregate with add updates over any numeric
// type. Sums are order invariant so Reverse is left nil.
func Sum[N constraints.Integer | constraints.Float]() Ops[N, N] {
	return Ops[N, N]{
		Merge:     func(l, r N) N { return l + r },
		Segment:   func(v N, k int) N { return v * N(k) },
		MergeLazy: func(older, newer N) N { return older + newer },
		Apply:     func(d, v N) N { return d + v },
	}
}
