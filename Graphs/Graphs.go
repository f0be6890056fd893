// Package Graphs holds classic searches over graphs given as adjacency lists.
// Vertices are the ints 0..len(g)-1; an edge v->w is w appearing in g[v].
// Undirected graphs list every edge in both directions.
package Graphs

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	// ErrEmptyGraph indicates a graph without vertices where one is needed.
	ErrEmptyGraph = errors.New("Graphs: graph has no vertices")
	// ErrVertexOutOfRange indicates a source vertex or an edge endpoint outside [0, len(g)).
	ErrVertexOutOfRange = errors.New("Graphs: vertex out of range")
)

// Adj is an unweighted graph.
type Adj [][]int

// Edge of a weighted graph, To being the head.
type Edge[T constraints.Integer | constraints.Float] struct {
	To int
	W  T
}

// Unweighted returns g with every edge weighing 1.
func Unweighted(g Adj) [][]Edge[int] {
	wg := make([][]Edge[int], len(g))
	for v, ws := range g {
		wg[v] = make([]Edge[int], len(ws))
		for i, w := range ws {
			wg[v][i] = Edge[int]{w, 1}
		}
	}
	return wg
}

// validate returns an error wrapping ErrVertexOutOfRange naming the first edge
// with an endpoint outside the graph.
func validate[E any](g [][]E, to func(E) int) error {
	for v, es := range g {
		for _, e := range es {
			if w := to(e); w < 0 || w >= len(g) {
				return fmt.Errorf("edge %d->%d: %w", v, w, ErrVertexOutOfRange)
			}
		}
	}
	return nil
}

func head(w int) int { return w }
