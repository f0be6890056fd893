package Queues

// Queue is a FIFO queue.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue stored in one growable ring buffer, see MakeArrayQueue.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

// EmptyQueueError is returned by Pop on an empty queue.
type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
