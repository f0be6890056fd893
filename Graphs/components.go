package Graphs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// ConnectedComponents labels the connected components of the undirected
// graph g. id[v] is the component of v and comps[id[v]] lists its vertices
// in discovery order; components are numbered by their smallest vertex.
// The search is an iterative depth first search so deep graphs don't grow
// the goroutine stack.
// Time: O(V+E); Space: O(V)
func ConnectedComponents(g Adj) (id []int, comps [][]int, err error) {
	if err = validate(g, head); err != nil {
		return nil, nil, fmt.Errorf("connected components: %w", err)
	}
	id = make([]int, len(g))
	for v := range id {
		id[v] = -1
	}
	st := arraystack.New()
	for s := range g {
		if id[s] != -1 {
			continue
		}
		c := len(comps)
		comps = append(comps, nil)
		for st.Push(s); !st.Empty(); {
			top, _ := st.Pop()
			v := top.(int)
			if id[v] != -1 {
				continue
			}
			id[v] = c
			comps[c] = append(comps[c], v)
			for i := len(g[v]) - 1; i >= 0; i-- {
				if w := g[v][i]; id[w] == -1 {
					st.Push(w)
				}
			}
		}
	}
	return
}
