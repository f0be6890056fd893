package Trees

import "fmt"

// IndexError is the value treaps panic with when a position or a vertex is
// out of range. Positions are unchecked in the internal routines; only the
// exported methods validate them.
type IndexError struct {
	Op          string
	Index, Size uint64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("Trees: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Size)
}

// RangeError is the value treaps panic with when [L, R] isn't a range of the
// sequence. [L, L-1] is the valid empty range for every L<=Size.
type RangeError struct {
	Op         string
	L, R, Size uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("Trees: %s: range [%d, %d] out of bounds for size %d", e.Op, e.L, e.R, e.Size)
}

// SizeError is the value constructors panic with when S is too narrow for the
// requested number of elements or vertices.
type SizeError struct {
	Op        string
	Size, Max uint64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("Trees: %s: size %d exceeds %d, the most the index type can hold", e.Op, e.Size, e.Max)
}
