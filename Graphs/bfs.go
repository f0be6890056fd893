package Graphs

import (
	"fmt"

	Resources "github.com/pidddgy/Resources"
	"github.com/pidddgy/Resources/Queues"
)

// Paths holds the shortest paths, counted in edges, from Source to every vertex.
type Paths struct {
	Source int
	//Dist[v] is the number of edges from Source to v, -1 if v is unreachable.
	Dist []int
	//EdgeTo[v] is the vertex before v on a shortest path, -1 for Source and
	//unreachable vertices.
	EdgeTo []int
}

// BFS computes the shortest paths from s with a breadth first search.
// Time: O(V+E); Space: O(V)
func BFS(g Adj, s int) (*Paths, error) {
	if s < 0 || s >= len(g) {
		return nil, fmt.Errorf("bfs source %d: %w", s, ErrVertexOutOfRange)
	}
	if err := validate(g, head); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	p := &Paths{Source: s, Dist: make([]int, len(g)), EdgeTo: make([]int, len(g))}
	for v := range g {
		p.Dist[v], p.EdgeTo[v] = -1, -1
	}
	marked := Resources.NewBitArray(len(g))
	q := Queues.MakeArrayQueue[int](uint(len(g)))
	marked.Up(s)
	p.Dist[s] = 0
	for q.Push(s); !q.Empty(); {
		v, _ := q.Pop()
		for _, w := range g[v] {
			if marked.Get(w) {
				continue
			}
			marked.Up(w)
			p.EdgeTo[w], p.Dist[w] = v, p.Dist[v]+1
			q.Push(w)
		}
	}
	return p, nil
}

// HasPathTo v from Source.
func (p *Paths) HasPathTo(v int) bool {
	return p.Dist[v] >= 0
}

// PathTo returns the vertices of a shortest path from Source to v, both
// included, or nil if v is unreachable.
// Time: O(Dist[v])
func (p *Paths) PathTo(v int) []int {
	if !p.HasPathTo(v) {
		return nil
	}
	path := make([]int, p.Dist[v]+1)
	for i := len(path) - 1; i >= 0; i-- {
		path[i], v = v, p.EdgeTo[v]
	}
	return path
}
