package main

import (
	"math/rand/v2"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/pidddgy/Resources/Trees"
	"github.com/sirupsen/logrus"
)

type report struct {
	checks, mismatches int
}

// expect compares an answer with the model, logging differences.
func (r *report) expect(log *logrus.Entry, it int, op string, got, want any) {
	r.checks++
	if got != want {
		r.mismatches++
		log.WithFields(logrus.Fields{"iteration": it, "op": op, "got": got, "want": want}).Error("answer differs from model")
	}
}

func (r *report) corrupt(log *logrus.Entry, it int, bad bool) {
	r.checks++
	if bad {
		r.mismatches++
		log.WithField("iteration", it).Error("structure is corrupt")
	}
}

// stressTreap checks an ImplicitTreap with a sum aggregate against an arraylist.
func stressTreap(c Config, log *logrus.Entry) (r report) {
	rg := rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
	n := int(c.Size)
	model := arraylist.New()
	vs := make([]int64, n)
	for i := range vs {
		vs[i] = rg.Int64N(1000)
		model.Add(vs[i])
	}
	tree := Trees.From[int64, int64, uint32](Trees.Sum[int64](), vs, rand.NewPCG(c.Seed, 0))
	at := func(i int) int64 {
		v, _ := model.Get(i)
		return v.(int64)
	}
	for it := range c.Ops {
		l, h := rg.IntN(n), rg.IntN(n)
		if l > h {
			l, h = h, l
		}
		switch rg.IntN(5) {
		case 0:
			d := rg.Int64N(201) - 100
			tree.UpdateVal(uint32(l), d)
			model.Set(l, at(l)+d)
		case 1:
			r.expect(log, it, "QueryVal", tree.QueryVal(uint32(l)), at(l))
		case 2:
			d := rg.Int64N(201) - 100
			tree.UpdateRange(uint32(l), uint32(h), d)
			for i := l; i <= h; i++ {
				model.Set(i, at(i)+d)
			}
		case 3:
			var want int64
			for i := l; i <= h; i++ {
				want += at(i)
			}
			r.expect(log, it, "QueryRange", tree.QueryRange(uint32(l), uint32(h)), want)
		case 4:
			tree.ReverseRange(uint32(l), uint32(h))
			for i, j := l, h; i < j; i, j = i+1, j-1 {
				a, b := at(i), at(j)
				model.Set(i, b)
				model.Set(j, a)
			}
		}
		if (it+1)%c.CheckEvery == 0 {
			r.corrupt(log, it, tree.Corrupt())
			log.WithFields(logrus.Fields{"iteration": it + 1, "mismatches": r.mismatches}).Debug("progress")
		}
	}
	i := 0
	tree.InOrder(func(v int64) bool {
		r.expect(log, c.Ops, "InOrder", v, at(i))
		i++
		return true
	})
	return
}

// stressEuler checks an EulerTourTreap against a parent array.
func stressEuler(c Config, log *logrus.Entry) (r report) {
	rg := rand.New(rand.NewPCG(c.Seed, c.Seed^0x9e3779b97f4a7c15))
	n := int(c.Size)
	vals := make([]int64, n)
	par := make([]int, n)
	for i := range vals {
		vals[i], par[i] = rg.Int64N(1000), -1
	}
	f := Trees.EulerTourFrom[int64, int64, uint32](Trees.Sum[int64](), vals, rand.NewPCG(c.Seed, 0))
	root := func(v int) int {
		for par[v] != -1 {
			v = par[v]
		}
		return v
	}
	under := func(v, w int) bool {
		for ; w != -1; w = par[w] {
			if w == v {
				return true
			}
		}
		return false
	}
	for it := range c.Ops {
		v, w := rg.IntN(n), rg.IntN(n)
		switch rg.IntN(5) {
		case 0, 1:
			ok := par[w] == -1 && root(v) != w
			r.expect(log, it, "AddEdge", f.AddEdge(uint32(v), uint32(w)), ok)
			if ok {
				par[w] = v
			}
		case 2:
			r.expect(log, it, "CutParent", f.CutParent(uint32(w)), par[w] != -1)
			par[w] = -1
		case 3:
			d := rg.Int64N(21) - 10
			f.UpdateVertex(uint32(v), d)
			vals[v] += d
		case 4:
			r.expect(log, it, "Connected", f.Connected(uint32(v), uint32(w)), root(v) == root(w))
			r.expect(log, it, "InSubtree", f.InSubtree(uint32(v), uint32(w)), under(v, w))
			r.expect(log, it, "TreeRoot", int(f.TreeRoot(uint32(v))), root(v))
			r.expect(log, it, "VertexValue", f.VertexValue(uint32(v)), vals[v])
		}
		if (it+1)%c.CheckEvery == 0 {
			r.corrupt(log, it, f.Corrupt())
			log.WithFields(logrus.Fields{"iteration": it + 1, "mismatches": r.mismatches}).Debug("progress")
		}
	}
	return
}
