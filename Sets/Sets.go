package Sets

import "strconv"

// Ordered is a sorted multiset addressed both by value and by rank.
// Ranks start from 0.
type Ordered[E any] interface {
	//Put v, keeping duplicates.
	Put(v E)
	//Has v.
	Has(v E) bool
	//Remove one occurrence of v. Returns false if v isn't present.
	Remove(v E) bool
	//Size of the set, counting duplicates.
	Size() int
	//Select the element of rank k. The second return value is false when k
	//is out of range.
	Select(k int) (E, bool)
	//RankOf v is the number of elements less than v. The second return
	//value reports whether v is present.
	RankOf(v E) (int, bool)
	//Values in ascending order.
	Values() []E
}

// UnsortedError is what constructors taking sorted input panic with.
type UnsortedError struct {
	Index int
}

func (e UnsortedError) Error() string {
	return "Sets: input isn't sorted at index " + strconv.Itoa(e.Index)
}
