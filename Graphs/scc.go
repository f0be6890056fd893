package Graphs

import (
	"fmt"
	"math"
)

// Components are the strongly connected components of a directed graph.
type Components struct {
	//ID[v] is the component of v.
	ID []int
	//Comps lists the vertices of each component. Components are in reverse
	//topological order: edges between components only go from higher to
	//lower ids.
	Comps [][]int
	g     Adj
}

// tarjan holds the state of one run of Tarjan's algorithm. id is -2 for
// unvisited vertices and -1 for vertices on the stack.
type tarjan struct {
	g        Adj
	ind, top int
	id, low  []int
	stk      []int
	comps    [][]int
}

func (u *tarjan) dfs(v int) {
	u.stk[u.top] = v
	u.top++
	u.id[v] = -1
	u.low[v] = u.ind
	mn := u.ind
	u.ind++
	for _, w := range u.g[v] {
		if u.id[w] == -2 {
			u.dfs(w)
		}
		mn = min(mn, u.low[w])
	}
	if mn < u.low[v] {
		u.low[v] = mn
		return
	}
	c := len(u.comps)
	u.comps = append(u.comps, nil)
	for w := -1; w != v; {
		u.top--
		w = u.stk[u.top]
		u.id[w], u.low[w] = c, math.MaxInt
		u.comps[c] = append(u.comps[c], w)
	}
}

// SCC computes the strongly connected components of g with Tarjan's
// algorithm. Recursive.
// Time: O(V+E); Space: O(V)
func SCC(g Adj) (*Components, error) {
	if err := validate(g, head); err != nil {
		return nil, fmt.Errorf("scc: %w", err)
	}
	u := &tarjan{g: g, id: make([]int, len(g)), low: make([]int, len(g)), stk: make([]int, len(g))}
	for v := range u.id {
		u.id[v] = -2
	}
	for v := range g {
		if u.id[v] == -2 {
			u.dfs(v)
		}
	}
	return &Components{ID: u.id, Comps: u.comps, g: g}, nil
}

// Condensation returns the edges of the graph obtained by contracting every
// component into a vertex numbered by its id. Self loops and parallel edges
// are dropped, and edges are sorted by their tail.
// Time: O(V+E)
func (u *Components) Condensation() [][2]int {
	var es [][2]int
	last := make([]int, len(u.Comps))
	for i := range last {
		last[i] = -1
	}
	for c, comp := range u.Comps {
		for _, v := range comp {
			for _, w := range u.g[v] {
				if d := u.ID[w]; d != c && last[d] != c {
					last[d] = c
					es = append(es, [2]int{c, d})
				}
			}
		}
	}
	return es
}
