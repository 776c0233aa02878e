package extrema

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"

	"seqalgo/queues"
	"seqalgo/seqs"

	"golang.org/x/exp/constraints"
)

// ErrNegativeCount is returned when the requested number of elements is negative.
var ErrNegativeCount = errors.New("count must not be negative")

// heapPrealloc caps the initial heap allocation when k is very large.
const heapPrealloc = 1024

// MinCount returns the k smallest elements of seq in ascending order.
// Fewer than k are returned if seq is shorter.
func MinCount[T constraints.Ordered](seq iter.Seq[T], k int) ([]T, error) {
	return MinCountFunc(seq, k, cmp.Compare[T])
}

// MinCountFunc returns the k smallest elements of seq under compare, in ascending
// order. Equal elements keep their input order.
func MinCountFunc[T any](seq iter.Seq[T], k int, compare func(a, b T) int) ([]T, error) {
	if err := checkCount("MinCount", k); err != nil {
		return nil, err
	}
	return selectHeap(seq, k, compare), nil
}

// MaxCount returns the k largest elements of seq in descending order.
func MaxCount[T constraints.Ordered](seq iter.Seq[T], k int) ([]T, error) {
	return MaxCountFunc(seq, k, cmp.Compare[T])
}

// MaxCountFunc returns the k largest elements of seq under compare, in descending
// order. Equal elements keep their input order.
func MaxCountFunc[T any](seq iter.Seq[T], k int, compare func(a, b T) int) ([]T, error) {
	if err := checkCount("MaxCount", k); err != nil {
		return nil, err
	}
	return selectHeap(seq, k, reverse(compare)), nil
}

func CollectionMinCount[T constraints.Ordered](c seqs.Collection[T], k int, opts ...Option) ([]T, error) {
	return CollectionMinCountFunc(c, k, cmp.Compare[T], opts...)
}

// CollectionMinCountFunc is MinCountFunc for collections. It sorts the whole
// collection when k exceeds the configured fraction of its length and uses a
// bounded heap otherwise; the result does not depend on which path runs.
func CollectionMinCountFunc[T any](c seqs.Collection[T], k int, compare func(a, b T) int, opts ...Option) ([]T, error) {
	if err := checkCount("CollectionMinCount", k); err != nil {
		return nil, err
	}
	return selectCollection(c, k, compare, newConfig(opts)), nil
}

func CollectionMaxCount[T constraints.Ordered](c seqs.Collection[T], k int, opts ...Option) ([]T, error) {
	return CollectionMaxCountFunc(c, k, cmp.Compare[T], opts...)
}

// CollectionMaxCountFunc is MaxCountFunc for collections; see CollectionMinCountFunc.
func CollectionMaxCountFunc[T any](c seqs.Collection[T], k int, compare func(a, b T) int, opts ...Option) ([]T, error) {
	if err := checkCount("CollectionMaxCount", k); err != nil {
		return nil, err
	}
	return selectCollection(c, k, reverse(compare), newConfig(opts)), nil
}

func checkCount(op string, k int) error {
	if k < 0 {
		return fmt.Errorf("extrema.%s: got %d: %w", op, k, ErrNegativeCount)
	}
	return nil
}

func reverse[T any](compare func(a, b T) int) func(a, b T) int {
	return func(a, b T) int { return compare(b, a) }
}

func selectCollection[T any](c seqs.Collection[T], k int, compare func(a, b T) int, cfg *config) []T {
	n := c.Len()
	if k > n/cfg.sortThreshold {
		tracer().Debugf("extrema: k=%d of %d elements, sorting", k, n)
		return selectSort(c, k, compare)
	}
	tracer().Debugf("extrema: k=%d of %d elements, bounded heap", k, n)
	return selectHeap(c.All(), k, compare)
}

// selectSort returns the first k elements of c after a stable sort.
func selectSort[T any](c seqs.Collection[T], k int, compare func(a, b T) int) []T {
	values := slices.AppendSeq(make([]T, 0, c.Len()), c.All())
	slices.SortStableFunc(values, compare)
	return slices.Clip(values[:min(k, len(values))])
}

// ranked remembers the input position of an element so that the heap can
// break ties exactly like a stable sort.
type ranked[T any] struct {
	value T
	index int
}

// selectHeap returns the k elements that order first under compare, sorted.
// A max-heap holds the best k seen so far; its head is the worst of them and is
// replaced whenever a better element arrives.
func selectHeap[T any](seq iter.Seq[T], k int, compare func(a, b T) int) []T {
	if k == 0 {
		return []T{}
	}
	order := func(a, b ranked[T]) int {
		if c := compare(a.value, b.value); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	}
	pq := queues.NewPriorityQueue(min(k, heapPrealloc), false, order)

	index := 0
	for v := range seq {
		e := ranked[T]{value: v, index: index}
		index++
		if pq.Size() < k {
			pq.Enqueue(e)
			continue
		}
		if head, _ := pq.Peek(); order(e, head) < 0 {
			pq.ReplaceHead(e)
		}
	}

	result := make([]T, pq.Size())
	for i := len(result) - 1; i >= 0; i-- {
		e, _ := pq.Dequeue()
		result[i] = e.value
	}
	return result
}
