package seqs

import "iter"

// ChunkedOn splits seq into runs of consecutive elements that share the same key,
// yielding each run together with its key.
//
// A new chunk starts whenever key(current) != key(previous); equal keys that are
// not adjacent end up in separate chunks. Sort seq by key first to group globally.
// Only the chunk currently being filled is buffered.
func ChunkedOn[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		var (
			current K
			chunk   []T
		)
		for v := range seq {
			k := key(v)
			if len(chunk) > 0 && k != current {
				if !yield(current, chunk) {
					return
				}
				chunk = nil
			}
			current = k
			chunk = append(chunk, v)
		}
		if len(chunk) > 0 {
			yield(current, chunk)
		}
	}
}

// ChunksOf splits the input sequence into chunks of n elements.
// The last chunk holds the remaining 1..n elements when the length is not a
// multiple of n. Each chunk is a new slice owned by the caller.
//
// It returns ErrInvalidCount if n <= 0.
func ChunksOf[T any](seq iter.Seq[T], n int) (iter.Seq[[]T], error) {
	if err := checkCount("ChunksOf", n); err != nil {
		return nil, err
	}
	return func(yield func([]T) bool) {
		batch := make([]T, 0, n)

		for v := range seq {
			batch = append(batch, v)
			if len(batch) == n {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, n)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}, nil
}

// CollectionChunksOf is ChunksOf for collections. Chunks are views over c;
// no element is copied.
func CollectionChunksOf[T any](c Collection[T], n int) (iter.Seq[View[T]], error) {
	if err := checkCount("CollectionChunksOf", n); err != nil {
		return nil, err
	}
	return func(yield func(View[T]) bool) {
		size := c.Len()
		for lo := 0; lo < size; lo += n {
			if !yield(Sub(c, lo, min(lo+n, size))) {
				return
			}
		}
	}, nil
}

// Windows yields every run of n consecutive elements of seq: elements 0..n-1,
// then 1..n, and so on. Nothing is yielded if seq has fewer than n elements.
//
// The windows share one buffer, so a yielded slice is only valid until the
// iteration advances. Use slices.Clone to keep one.
//
// It returns ErrInvalidCount if n <= 0.
func Windows[T any](seq iter.Seq[T], n int) (iter.Seq[[]T], error) {
	if err := checkCount("Windows", n); err != nil {
		return nil, err
	}
	return func(yield func([]T) bool) {
		// Every element is stored at slot and slot+n, so buf[head:head+n] is
		// always the current window in order and advancing costs two writes.
		buf := make([]T, 2*n)
		seen := 0

		for v := range seq {
			slot := seen % n
			buf[slot], buf[slot+n] = v, v
			seen++
			if seen < n {
				continue
			}
			head := seen % n
			if !yield(buf[head : head+n : head+n]) {
				return
			}
			// keep the counter bounded on infinite inputs
			seen = n + head
		}
	}, nil
}

// CollectionWindows is Windows for collections. Each window is a view over c,
// so it stays valid after the iteration moves on.
func CollectionWindows[T any](c Collection[T], n int) (iter.Seq[View[T]], error) {
	if err := checkCount("CollectionWindows", n); err != nil {
		return nil, err
	}
	return func(yield func(View[T]) bool) {
		for lo := 0; lo+n <= c.Len(); lo++ {
			if !yield(Sub(c, lo, lo+n)) {
				return
			}
		}
	}, nil
}

// AdjacentPairs yields each element paired with its successor:
// (e0, e1), (e1, e2), ... Sequences shorter than two elements yield nothing.
func AdjacentPairs[T any](seq iter.Seq[T]) iter.Seq[Pair[T, T]] {
	return func(yield func(Pair[T, T]) bool) {
		var (
			prev    T
			started bool
		)
		for v := range seq {
			if started {
				if !yield(Pair[T, T]{V1: prev, V2: v}) {
					return
				}
			}
			prev, started = v, true
		}
	}
}
