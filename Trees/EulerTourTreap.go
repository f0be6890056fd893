package Trees

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// EulerTourTreap maintains a forest of rooted trees over the vertices
// 0..n-1 as the Euler tours of the trees, each tour stored in its own treap.
// A vertex appears twice in the tour of its tree: once when entered (pre) and
// once when left (post). Linking and cutting subtrees becomes splicing tours.
// Vertex values are aggregated with ops.Merge over the tour, so subtree
// aggregates count every vertex twice. Updates only ever touch single
// nodes, so ops.Segment(v, 1) must be v.
// The tour has 2n nodes, so S must be able to hold 2n+1; constructors panic
// with *SizeError otherwise.
// Not safe for concurrent use.
type EulerTourTreap[D any, L comparable, S constraints.Unsigned] struct {
	base[D, L, S]
	n S
}

// NewEulerTour returns a forest of n single vertex trees, each vertex holding ops.VDef.
// Time: O(n)
func NewEulerTour[D any, L comparable, S constraints.Unsigned](ops Ops[D, L], n S, src rand.Source) *EulerTourTreap[D, L, S] {
	return eulerTour[D, L, S]("NewEulerTour", ops, uint64(n), nil, src)
}

// EulerTourFrom returns a forest of len(vs) single vertex trees, vertex i holding vs[i].
// Time: O(len(vs))
func EulerTourFrom[D any, L comparable, S constraints.Unsigned](ops Ops[D, L], vs []D, src rand.Source) *EulerTourTreap[D, L, S] {
	return eulerTour[D, L, S]("EulerTourFrom", ops, uint64(len(vs)), vs, src)
}

func eulerTour[D any, L comparable, S constraints.Unsigned](op string, ops Ops[D, L], n uint64, vs []D, src rand.Source) *EulerTourTreap[D, L, S] {
	if m := (uint64(^S(0)) - 1) / 2; n > m {
		panic(&SizeError{op, n, m})
	}
	var both []D
	if vs != nil {
		both = make([]D, 0, 2*len(vs))
		for _, v := range vs {
			both = append(both, v, v)
		}
	}
	u := &EulerTourTreap[D, L, S]{base: makeBase[D, L, S](ops, 2*int(n), both, src), n: S(n)}
	for v := S(0); v < u.n; v++ {
		u.merge(pre(v), post(v))
	}
	return u
}

// pre and post are the arena indexes of the two tour nodes of vertex v.
func pre[S constraints.Unsigned](v S) S  { return 2*v + 1 }
func post[S constraints.Unsigned](v S) S { return 2*v + 2 }

func vertexOf[S constraints.Unsigned](i S) S { return (i - 1) >> 1 }

func (u *EulerTourTreap[D, L, S]) check(op string, vs ...S) {
	for _, v := range vs {
		if v >= u.n {
			panic(&IndexError{op, uint64(v), uint64(u.n)})
		}
	}
}

// Size is the number of vertices.
func (u *EulerTourTreap[D, L, S]) Size() S {
	return u.n
}

// TreeRoot returns the root vertex of the tree containing v.
// Time: O(log n) expected
func (u *EulerTourTreap[D, L, S]) TreeRoot(v S) S {
	u.check("TreeRoot", v)
	return vertexOf(u.first(u.rootOf(pre(v))))
}

// Connected returns whether v and w are in the same tree.
// Time: O(log n) expected
func (u *EulerTourTreap[D, L, S]) Connected(v, w S) bool {
	u.check("Connected", v, w)
	return u.rootOf(pre(v)) == u.rootOf(pre(w))
}

// InSubtree returns whether w is in the subtree of v, v itself included.
// Time: O(log n) expected
func (u *EulerTourTreap[D, L, S]) InSubtree(v, w S) bool {
	u.check("InSubtree", v, w)
	if u.rootOf(pre(v)) != u.rootOf(pre(w)) {
		return false
	}
	iw := u.index(pre(w))
	return u.index(pre(v)) <= iw && iw <= u.index(post(v))
}

// AddEdge makes ch a child of par. ch must be the root of its tree and par
// must be in another tree, otherwise nothing changes and false is returned.
// Time: O(log n) expected
func (u *EulerTourTreap[D, L, S]) AddEdge(par, ch S) bool {
	u.check("AddEdge", par, ch)
	rch := u.rootOf(pre(ch))
	if u.rootOf(pre(par)) == rch || u.first(rch) != pre(ch) {
		return false
	}
	l, r := u.split(u.rootOf(pre(par)), u.index(pre(par))+1)
	u.merge(u.merge(l, rch), r)
	return true
}

// CutParent detaches the subtree of ch from its parent, making ch the root
// of a new tree. Returns false if ch already is a root.
// Time: O(log n) expected
func (u *EulerTourTreap[D, L, S]) CutParent(ch S) bool {
	u.check("CutParent", ch)
	root := u.rootOf(pre(ch))
	if u.first(root) == pre(ch) {
		return false
	}
	i, j := u.index(pre(ch)), u.index(post(ch))
	l, _, r := u.cut(root, i, j-i+1)
	u.merge(l, r)
	return true
}

// VertexValue returns the value of v. Updates are only applied to isolated
// single nodes and pushed away on the next merge, so the stored value of a
// tour node is never stale.
// Time: O(1)
func (u *EulerTourTreap[D, L, S]) VertexValue(v S) D {
	u.check("VertexValue", v)
	return u.ns[pre(v)].val
}

// SubtreeValue returns the aggregate of the tour of the subtree of v. Every
// vertex of the subtree is counted twice, once for entering and once for
// leaving it.
// Time: O(log n) expected
func (u *EulerTourTreap[D, L, S]) SubtreeValue(v S) D {
	u.check("SubtreeValue", v)
	i, j := u.index(pre(v)), u.index(post(v))
	a, m, b := u.cut(u.rootOf(pre(v)), i, j-i+1)
	ret := u.aggregate(m)
	u.join(a, m, b)
	return ret
}

// PathFromRootValue returns the aggregate of the tour from the root of the
// tree up to entering v. Vertices left before entering v are counted twice,
// the ones on the path from the root to v once.
// Time: O(log n) expected
func (u *EulerTourTreap[D, L, S]) PathFromRootValue(v S) D {
	u.check("PathFromRootValue", v)
	l, r := u.split(u.rootOf(pre(v)), u.index(pre(v))+1)
	ret := u.aggregate(l)
	u.merge(l, r)
	return ret
}

// UpdateVertex applies x to the value of v.
// Time: O(log n) expected
func (u *EulerTourTreap[D, L, S]) UpdateVertex(v S, x L) {
	u.check("UpdateVertex", v)
	for _, i := range [2]S{pre(v), post(v)} {
		a, m, b := u.cut(u.rootOf(i), u.index(i), 1)
		u.apply(m, x)
		u.join(a, m, b)
	}
}

// Parent returns the parent of v and true, or false if v is a root.
// Time: O(k log n) expected, k being the number of earlier siblings of v.
func (u *EulerTourTreap[D, L, S]) Parent(v S) (S, bool) {
	u.check("Parent", v)
	root := u.rootOf(pre(v))
	if u.first(root) == pre(v) {
		return 0, false
	}
	// The node before pre(v) is either the pre of the parent or the post of
	// the previous sibling.
	i := u.index(pre(v))
	for {
		p := u.sel(root, i-1)
		w := vertexOf(p)
		if p == pre(w) {
			return w, true
		}
		i = u.index(pre(w))
	}
}

// Corrupt returns whether any tour treap is corrupt, or if a vertex's
// post node comes before its pre node. Recursive.
func (u *EulerTourTreap[D, L, S]) Corrupt() bool {
	var total S
	for i := S(1); int(i) < len(u.ns); i++ {
		if u.ns[i].p == 0 {
			sz, bad := u.corrupt(i)
			if bad {
				return true
			}
			total += sz
		}
	}
	if int(total) != len(u.ns)-1 {
		return true
	}
	for v := S(0); v < u.n; v++ {
		if u.rootOf(pre(v)) != u.rootOf(post(v)) || u.index(pre(v)) > u.index(post(v)) {
			return true
		}
	}
	return false
}
