package extrema

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// Min returns the smallest element of seq, or false if seq is empty.
func Min[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	lo, _, ok := MinAndMaxFunc(seq, cmp.Compare[T])
	return lo, ok
}

// Max returns the largest element of seq, or false if seq is empty.
func Max[T constraints.Ordered](seq iter.Seq[T]) (T, bool) {
	_, hi, ok := MinAndMaxFunc(seq, cmp.Compare[T])
	return hi, ok
}

// MinAndMax returns the smallest and largest elements of seq in natural order.
// ok is false if seq is empty.
func MinAndMax[T constraints.Ordered](seq iter.Seq[T]) (lo, hi T, ok bool) {
	return MinAndMaxFunc(seq, cmp.Compare[T])
}

// MinAndMaxFunc returns the smallest and largest elements of seq under compare,
// in one pass. Each is the first occurrence among elements that compare equal.
// ok is false if seq is empty.
func MinAndMaxFunc[T any](seq iter.Seq[T], compare func(a, b T) int) (lo, hi T, ok bool) {
	for v := range seq {
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if compare(v, lo) < 0 {
			lo = v
		}
		if compare(v, hi) > 0 {
			hi = v
		}
	}
	return lo, hi, ok
}
