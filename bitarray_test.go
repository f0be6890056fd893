package Resources

import (
	"math/rand/v2"
	"testing"
)

func TestBitArray(t *testing.T) {
	for _, n := range []int{0, 1, 63, 64, 65, 1000} {
		b := NewBitArray(n)
		if b.Len() < n {
			t.Fatalf("len is %d, want at least %d", b.Len(), n)
		}
		want := make(map[int]bool)
		rg := rand.New(rand.NewPCG(uint64(n), 0))
		for range 2 * n {
			i := rg.IntN(n)
			if rg.IntN(2) == 0 {
				b.Up(i)
				want[i] = true
			} else {
				b.Down(i)
				delete(want, i)
			}
		}
		for i := range n {
			if b.Get(i) != want[i] {
				t.Errorf("bit %d is %v, want %v", i, b.Get(i), want[i])
			}
		}
		if b.Count() != len(want) {
			t.Errorf("count is %d, want %d", b.Count(), len(want))
		}
	}
}

func TestCheapSource(t *testing.T) {
	var src CheapSource
	seen := make(map[uint64]struct{})
	for range 1000 {
		seen[src.Uint64()] = struct{}{}
	}
	if len(seen) < 990 {
		t.Errorf("only %d distinct values out of 1000", len(seen))
	}
	for range 1000 {
		if v := CheapRandN(10); v >= 10 {
			t.Fatalf("CheapRandN(10) returned %d", v)
		}
	}
}
