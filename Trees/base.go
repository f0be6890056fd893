package Trees

import (
	"math/rand/v2"

	Resources "github.com/pidddgy/Resources"
	"golang.org/x/exp/constraints"
)

// base is an arena of treap nodes. ns[0] is the empty tree: it has size 0 and
// is never written to, so every index in ns is either a node or nil. The arena
// is sized once and never grows, so indexes stay valid for its whole life;
// merge and split only relink existing nodes.
type base[D any, L comparable, S constraints.Unsigned] struct {
	ns  []node[D, L, S]
	ops Ops[D, L]
}

// makeBase allocates n nodes holding vs, or ops.VDef when vs is nil, each a
// tree of its own. Priorities come from src, or from Resources.CheapSource
// when src is nil.
func makeBase[D any, L comparable, S constraints.Unsigned](ops Ops[D, L], n int, vs []D, src rand.Source) base[D, L, S] {
	if src == nil {
		src = Resources.CheapSource{}
	}
	u := base[D, L, S]{ns: make([]node[D, L, S], n+1), ops: ops}
	for i := 1; i <= n; i++ {
		v := ops.VDef
		if vs != nil {
			v = vs[i-1]
		}
		u.ns[i] = node[D, L, S]{sz: 1, pri: src.Uint64(), val: v, agg: v, lz: ops.LDef}
	}
	return u
}

func (u *base[D, L, S]) size(i S) S {
	return u.ns[i].sz
}

// aggregate of the tree rooted at i, ops.QDef for the empty tree.
func (u *base[D, L, S]) aggregate(i S) D {
	if i == 0 {
		return u.ops.QDef
	}
	return u.ns[i].agg
}

// merge concatenates the sequences of the trees rooted at l and r, in this
// order, and returns the new root. Recursive.
// Time: O(log n) expected.
func (u *base[D, L, S]) merge(l, r S) S {
	u.propagate(l)
	u.propagate(r)
	if l == 0 {
		return r
	} else if r == 0 {
		return l
	}
	if u.ns[l].pri > u.ns[r].pri {
		c := u.merge(u.ns[l].r, r)
		u.ns[l].r = c
		u.update(l)
		return l
	}
	c := u.merge(l, u.ns[r].l)
	u.ns[r].l = c
	u.update(r)
	return r
}

// split the tree rooted at x into the first k elements and the rest. Both
// returned roots have no parent. Recursive.
// Time: O(log n) expected.
func (u *base[D, L, S]) split(x, k S) (l, r S) {
	if x == 0 {
		return 0, 0
	}
	u.propagate(x)
	n := &u.ns[x]
	n.p = 0
	if lsz := u.ns[n.l].sz; k <= lsz {
		l, n.l = u.split(n.l, k)
		r = x
	} else {
		n.r, r = u.split(n.r, k-lsz-1)
		l = x
	}
	u.update(x)
	return
}

// cut isolates the n elements starting at position i of the tree rooted at x.
func (u *base[D, L, S]) cut(x, i, n S) (a, m, b S) {
	a, m = u.split(x, i)
	m, b = u.split(m, n)
	return
}

// join is the inverse of cut.
func (u *base[D, L, S]) join(a, m, b S) S {
	return u.merge(u.merge(a, m), b)
}

// sel returns the node at position k of the tree rooted at x, or 0 if k is
// out of range.
// Time: O(log n) expected; Space: O(1)
func (u *base[D, L, S]) sel(x, k S) S {
	for x != 0 {
		u.propagate(x)
		if t := u.ns[u.ns[x].l].sz; k < t {
			x = u.ns[x].l
		} else if k > t {
			k -= t + 1
			x = u.ns[x].r
		} else {
			break
		}
	}
	return x
}

// rootOf the tree containing node i.
// Time: O(log n) expected; Space: O(1)
func (u *base[D, L, S]) rootOf(i S) S {
	for u.ns[i].p != 0 {
		i = u.ns[i].p
	}
	return i
}

// first node in the sequence of the tree rooted at x.
func (u *base[D, L, S]) first(x S) S {
	for u.propagate(x); u.ns[x].l != 0; u.propagate(x) {
		x = u.ns[x].l
	}
	return x
}

// pushDown propagates every node on the path from the root of the tree down
// to i, root first. Recursive.
func (u *base[D, L, S]) pushDown(i S) {
	if p := u.ns[i].p; p != 0 {
		u.pushDown(p)
	}
	u.propagate(i)
}

// index of node i within the sequence of its tree. Pending reversals above i
// change the answer, so the path from the root is propagated first.
// Time: O(log n) expected.
func (u *base[D, L, S]) index(i S) S {
	u.pushDown(i)
	ind := u.ns[u.ns[i].l].sz
	for c := i; u.ns[c].p != 0; c = u.ns[c].p {
		if p := &u.ns[u.ns[c].p]; p.l != c {
			ind += u.ns[p.l].sz + 1
		}
	}
	return ind
}

// inOrder calls f on the values of the tree rooted at x in sequence order.
// Returns false if f stopped the traversal. Recursive.
func (u *base[D, L, S]) inOrder(x S, f func(D) bool) bool {
	if x == 0 {
		return true
	}
	u.propagate(x)
	return u.inOrder(u.ns[x].l, f) && f(u.ns[x].val) && u.inOrder(u.ns[x].r, f)
}

// build links the nodes lo..hi, taken in index order as the sequence, into a
// single treap and returns its root. It's the Cartesian tree of the
// priorities, built with a stack holding the current right spine.
// Time: O(hi-lo); Space: O(hi-lo)
func (u *base[D, L, S]) build(lo, hi S) S {
	if lo == 0 || lo > hi {
		return 0
	}
	st := make([]S, 0, 64)
	for i := lo; ; i++ {
		var last S
		for len(st) > 0 && u.ns[st[len(st)-1]].pri < u.ns[i].pri {
			last, st = st[len(st)-1], st[:len(st)-1]
			u.update(last)
		}
		u.ns[i].l = last
		if len(st) > 0 {
			u.ns[st[len(st)-1]].r = i
		}
		st = append(st, i)
		if i == hi {
			break
		}
	}
	for i := len(st) - 1; i >= 0; i-- {
		u.update(st[i])
	}
	return st[0]
}

// corrupt checks the tree rooted at x. Returns the size of the tree and
// whether it violates the heap order, the size invariant, or the parent links.
// Recursive.
func (u *base[D, L, S]) corrupt(x S) (S, bool) {
	if x == 0 {
		return 0, false
	}
	n := u.ns[x]
	var sz S = 1
	for _, c := range [2]S{n.l, n.r} {
		if c == 0 {
			continue
		}
		if u.ns[c].p != x || u.ns[c].pri > n.pri {
			return 0, true
		}
		csz, bad := u.corrupt(c)
		if bad {
			return 0, true
		}
		sz += csz
	}
	return sz, sz != n.sz
}
