package seqs_test

import "iter"

// counted wraps seq and records how many elements have been pulled from it.
func counted[T any](seq iter.Seq[T], pulls *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			*pulls++
			if !yield(v) {
				return
			}
		}
	}
}

// once returns a sequence that panics if it is traversed a second time.
func once[T any](values ...T) iter.Seq[T] {
	used := false
	return func(yield func(T) bool) {
		if used {
			panic("single-pass sequence traversed twice")
		}
		used = true
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}
