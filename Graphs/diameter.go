package Graphs

import (
	"fmt"
	"slices"

	"github.com/pidddgy/Resources/Queues"
	"golang.org/x/exp/constraints"
)

// Diameter is a longest path of a tree.
type Diameter[T constraints.Integer | constraints.Float] struct {
	Endpoints [2]int
	Length    T
	parent    []int
	weight    []T // weight[v] is the weight of the edge from parent[v] to v.
}

// farthest runs a traversal of the tree from s, filling dist, parent and the
// weight of the edge to the parent. Returns the vertex farthest from s, the
// smallest one on ties.
func farthest[T constraints.Integer | constraints.Float](g [][]Edge[T], s int, dist, weight []T, parent []int) int {
	for v := range parent {
		parent[v] = -2
	}
	q := Queues.MakeArrayQueue[int](uint(len(g)))
	parent[s], dist[s] = -1, 0
	far := s
	for q.Push(s); !q.Empty(); {
		v, _ := q.Pop()
		if dist[v] > dist[far] || dist[v] == dist[far] && v < far {
			far = v
		}
		for _, e := range g[v] {
			if parent[e.To] == -2 {
				parent[e.To], dist[e.To], weight[e.To] = v, dist[v]+e.W, e.W
				q.Push(e.To)
			}
		}
	}
	return far
}

// TreeDiameter finds a longest path of the undirected tree g, weighted with
// non negative weights. If g is a forest only the tree of vertex 0 is searched.
// Time: O(V); Space: O(V)
func TreeDiameter[T constraints.Integer | constraints.Float](g [][]Edge[T]) (*Diameter[T], error) {
	if len(g) == 0 {
		return nil, fmt.Errorf("tree diameter: %w", ErrEmptyGraph)
	}
	if err := validate(g, func(e Edge[T]) int { return e.To }); err != nil {
		return nil, fmt.Errorf("tree diameter: %w", err)
	}
	dist, weight, parent := make([]T, len(g)), make([]T, len(g)), make([]int, len(g))
	a := farthest(g, 0, dist, weight, parent)
	b := farthest(g, a, dist, weight, parent)
	return &Diameter[T]{Endpoints: [2]int{a, b}, Length: dist[b], parent: parent, weight: weight}, nil
}

// Path returns the edges of the diameter walked from Endpoints[0] to
// Endpoints[1]: the i-th edge leads from the head of the previous one, or from
// Endpoints[0] for the first, to its To. Empty when both endpoints are the same
// vertex.
// Time: O(V)
func (u *Diameter[T]) Path() []Edge[T] {
	var path []Edge[T]
	for v := u.Endpoints[1]; u.parent[v] != -1; v = u.parent[v] {
		path = append(path, Edge[T]{v, u.weight[v]})
	}
	slices.Reverse(path)
	return path
}
