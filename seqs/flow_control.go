package seqs

import "iter"

// Take yields at most the first n elements of seq. It is the usual way to bound
// consumption of an infinite sequence.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

// Striding yields the first element of seq and then every step-th element after it.
// A step of 1 yields seq unchanged.
//
// It returns ErrInvalidCount if step <= 0.
func Striding[T any](seq iter.Seq[T], step int) (iter.Seq[T], error) {
	if err := checkCount("Striding", step); err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		skip := 0
		for v := range seq {
			if skip > 0 {
				skip--
				continue
			}
			if !yield(v) {
				return
			}
			skip = step - 1
		}
	}, nil
}

// CollectionStriding is Striding for collections. The result is a Collection of
// length ceil(c.Len() / step) that reads through to c.
func CollectionStriding[T any](c Collection[T], step int) (Collection[T], error) {
	if err := checkCount("CollectionStriding", step); err != nil {
		return nil, err
	}
	return strided[T]{base: c, step: step}, nil
}
