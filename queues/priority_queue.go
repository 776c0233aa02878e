package queues

import (
	"container/heap"
)

type internalHeap[T any] struct {
	data []T
	less func(a, b T) bool
}

func (ih *internalHeap[T]) Len() int {
	return len(ih.data)
}

func (ih *internalHeap[T]) Less(i, j int) bool {
	return ih.less(ih.data[i], ih.data[j])
}

func (ih *internalHeap[T]) Swap(i, j int) {
	ih.data[i], ih.data[j] = ih.data[j], ih.data[i]
}

func (ih *internalHeap[T]) Push(x any) {
	ih.data = append(ih.data, x.(T))
}

func (ih *internalHeap[T]) Pop() any {
	old := ih.data
	n := len(old)
	last := old[n-1]

	// avoid memory leak
	var zero T
	old[n-1] = zero

	// shrink slice
	ih.data = old[0 : n-1]
	return last
}

// PriorityQueue is a binary heap ordered by a comparison function.
// The head is the smallest element under compare for a min-heap and the largest
// for a max-heap.
type PriorityQueue[T any] struct {
	heap *internalHeap[T]
}

// NewPriorityQueue creates a new PriorityQueue with the specified initial capacity and heap type.
// If isMinHeap is true, it creates a min-heap; otherwise, it creates a max-heap.
// compare returns a negative number when a orders before b, zero when they are
// equal and a positive number otherwise, like cmp.Compare.
func NewPriorityQueue[T any](initCapacity int, isMinHeap bool, compare func(a, b T) int) *PriorityQueue[T] {
	if initCapacity < 0 {
		initCapacity = 0
	}
	if compare == nil {
		panic("seqalgo.PriorityQueue: compare function cannot be nil")
	}
	less := func(a, b T) bool { return compare(a, b) < 0 }
	if !isMinHeap {
		less = func(a, b T) bool { return compare(a, b) > 0 }
	}
	innerHeap := internalHeap[T]{
		data: make([]T, 0, initCapacity),
		less: less,
	}

	return &PriorityQueue[T]{
		heap: &innerHeap,
	}
}

func (pq *PriorityQueue[T]) Enqueue(value T) {
	heap.Push(pq.heap, value)
}

func (pq *PriorityQueue[T]) Dequeue() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return heap.Pop(pq.heap).(T), true
}

func (pq *PriorityQueue[T]) Peek() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return pq.heap.data[0], true
}

// ReplaceHead swaps the head for value and restores the heap order in one
// O(log n) step. It is the building block of bounded top-k selection.
// It returns the previous head, or false if the queue is empty (value is then not added).
func (pq *PriorityQueue[T]) ReplaceHead(value T) (old T, ok bool) {
	if pq.heap.Len() == 0 {
		return old, false
	}
	old = pq.heap.data[0]
	pq.heap.data[0] = value
	heap.Fix(pq.heap, 0)
	return old, true
}

func (pq *PriorityQueue[T]) Size() int {
	return pq.heap.Len()
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.heap.Len() == 0
}
