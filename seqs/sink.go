package seqs

import "iter"

// First returns the first element of seq and stops pulling, or false if seq is empty.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Count drains seq and returns how many elements it produced.
func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// Contains reports whether v occurs in seq. It stops at the first match.
func Contains[T comparable](seq iter.Seq[T], v T) bool {
	for e := range seq {
		if e == v {
			return true
		}
	}
	return false
}
