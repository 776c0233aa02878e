package seqs

import "iter"

// Chain yields every element of first followed by every element of second.
// Neither input is copied. If first is infinite, second is never reached.
func Chain[T any](first, second iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range first {
			if !yield(v) {
				return
			}
		}
		for v := range second {
			if !yield(v) {
				return
			}
		}
	}
}

// ChainCollections concatenates two collections. The result is itself a
// Collection whose length is the sum of both lengths; nothing is copied.
func ChainCollections[T any](first, second Collection[T]) Collection[T] {
	return chained[T]{first: first, second: second}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Values returns both halves of the pair.
func (p Pair[T1, T2]) Values() (T1, T2) {
	return p.V1, p.V2
}

// Product yields every pair (a, b) with a from first and b from second, in
// row-major order: all of second is traversed for each element of first.
//
// second is re-traversed once per element of first, which is why it must be a
// Collection; first may be single-pass. Nest calls for more than two inputs:
// Product(Product(a, b), c) yields Pair[Pair[A, B], C].
func Product[A, B any](first iter.Seq[A], second Collection[B]) iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		if second.Len() == 0 {
			return
		}
		for a := range first {
			for b := range second.All() {
				if !yield(Pair[A, B]{V1: a, V2: b}) {
					return
				}
			}
		}
	}
}

// Uniqued yields the first occurrence of every distinct element of seq, in input order.
// It maintains a set of seen elements, so memory usage is proportional to the number of unique elements.
func Uniqued[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return UniquedOn(seq, func(v T) T { return v })
}

// UniquedOn yields each element of seq whose key has not been seen before.
// key is called exactly once per element.
//
// A key of interface type whose dynamic value is not hashable makes the
// traversal panic, as it would for any map key.
func UniquedOn[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Optional holds either a value or nothing. The zero Optional is absent.
type Optional[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether there is one.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Compacted yields the present values of seq in order, skipping absent slots.
// Source elements are pulled one at a time as the result is consumed.
func Compacted[T any](seq iter.Seq[Optional[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for o := range seq {
			if !o.present {
				continue
			}
			if !yield(o.value) {
				return
			}
		}
	}
}

// CompactedPointers is Compacted for sequences that use nil to mark absence.
// It yields the pointed-to values.
func CompactedPointers[T any](seq iter.Seq[*T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range seq {
			if p == nil {
				continue
			}
			if !yield(*p) {
				return
			}
		}
	}
}
