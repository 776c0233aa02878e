package seqs

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Range yields start, start+step, ... up to but excluding end. A negative step
// counts down; a zero step yields nothing.
func Range[T constraints.Integer](start, end, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		switch {
		case step > 0:
			for i := start; i < end; {
				if !yield(i) {
					return
				}
				// a smaller next value means the addition wrapped around
				next := i + step
				if next <= i {
					return
				}
				i = next
			}
		case step < 0:
			for i := start; i > end; {
				if !yield(i) {
					return
				}
				next := i + step
				if next >= i {
					return
				}
				i = next
			}
		}
	}
}

// CountFrom yields start, start+1, start+2, ... without end.
// Bound it with Take or stop ranging early.
func CountFrom[T constraints.Integer](start T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := start; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
