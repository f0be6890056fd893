package Queues

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestArrayQueue_Order(t *testing.T) {
	for _, c := range []uint{0, 1, 2, 7} {
		q := MakeArrayQueue[int](c)
		if _, err := q.Pop(); !errors.As(err, new(*EmptyQueueError)) {
			t.Errorf("cap %d: pop on empty queue returned %v", c, err)
		}
		var want []int
		rg := rand.New(rand.NewPCG(uint64(c), 0))
		for i := range 5000 {
			if rg.IntN(3) > 0 {
				q.Push(i)
				want = append(want, i)
			} else if len(want) > 0 {
				if p := q.Peek(); p != want[0] {
					t.Fatalf("cap %d: peek is %d, want %d", c, p, want[0])
				}
				v, err := q.Pop()
				if err != nil || v != want[0] {
					t.Fatalf("cap %d: pop is %d, %v; want %d", c, v, err, want[0])
				}
				want = want[1:]
			}
			if i%1000 == 0 {
				q.Shrink()
			}
			if q.Size() != uint(len(want)) {
				t.Fatalf("cap %d: size is %d, want %d", c, q.Size(), len(want))
			}
		}
		for _, w := range want {
			if v, _ := q.Pop(); v != w {
				t.Fatalf("cap %d: pop is %d, want %d", c, v, w)
			}
		}
		if !q.Empty() {
			t.Errorf("cap %d: queue isn't empty", c)
		}
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	q := MakeArrayQueue[string](4)
	q.Push("a")
	q.Push("b")
	q.Clear()
	if !q.Empty() || q.Size() != 0 {
		t.Error("queue isn't empty after Clear")
	}
	q.Push("c")
	if v, _ := q.Pop(); v != "c" {
		t.Errorf("got %q, want c", v)
	}
}
