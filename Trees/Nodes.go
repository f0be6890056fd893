package Trees

import "golang.org/x/exp/constraints"

// A node in the treap arena.
// l, r and p are indexes into the arena, 0 being the empty tree. p is only
// a back link used to find the position of a node; it doesn't own anything.
// Until propagated, lz and rev describe changes not yet visible in the
// children's val, agg, lz and rev.
type node[D any, L comparable, S constraints.Unsigned] struct {
	l, r, p S
	sz      S
	pri     uint64
	val     D
	agg     D // aggregate of the subtree in left to right order.
	lz      L
	rev     bool
}

// update recomputes size and aggregate of i from its children and points the
// children's parent links back to i. It must be called after the children of
// i changed.
// Time: O(1)
func (u *base[D, L, S]) update(i S) {
	n := &u.ns[i]
	n.sz, n.agg = 1, n.val
	if n.l != 0 {
		c := &u.ns[n.l]
		c.p = i
		n.sz += c.sz
		n.agg = u.ops.Merge(c.agg, n.agg)
	}
	if n.r != 0 {
		c := &u.ns[n.r]
		c.p = i
		n.sz += c.sz
		n.agg = u.ops.Merge(n.agg, c.agg)
	}
}

// apply v to the whole subtree of i, lazily. i mustn't be 0.
// Time: O(1)
func (u *base[D, L, S]) apply(i S, v L) {
	n := &u.ns[i]
	n.val = u.ops.Apply(n.val, v)
	n.agg = u.ops.Apply(n.agg, u.ops.Segment(v, int(n.sz)))
	n.lz = u.ops.MergeLazy(n.lz, v)
}

// flip marks the subtree of i as reversed and reverses its aggregate. i mustn't be 0.
func (u *base[D, L, S]) flip(i S) {
	n := &u.ns[i]
	n.rev = !n.rev
	if u.ops.Reverse != nil {
		n.agg = u.ops.Reverse(n.agg)
	}
}

// propagate pushes the pending reversal and then the pending update of i to
// its children. It must be called before descending past i. Noop when i is 0.
// Time: O(1)
func (u *base[D, L, S]) propagate(i S) {
	if i == 0 {
		return
	}
	n := &u.ns[i]
	if n.rev {
		n.l, n.r = n.r, n.l
		n.rev = false
		if n.l != 0 {
			u.flip(n.l)
		}
		if n.r != 0 {
			u.flip(n.r)
		}
	}
	if n.lz != u.ops.LDef {
		if n.l != 0 {
			u.apply(n.l, n.lz)
		}
		if n.r != 0 {
			u.apply(n.r, n.lz)
		}
		n.lz = u.ops.LDef
	}
}
