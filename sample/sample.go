package sample

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"seqalgo/seqs"
)

// ErrNegativeCount is returned when a negative sample size is requested.
var ErrNegativeCount = errors.New("sample size must not be negative")

// reservoirPrealloc caps the up-front allocation for very large k.
const reservoirPrealloc = 1024

// RandomSample returns min(k, len) elements of seq chosen uniformly at random
// without replacement, in random order. If k is at least the length of seq the
// result is a random permutation of all of it.
//
// seq is consumed exactly once and must be finite. Memory use is O(k).
func RandomSample[T any](seq iter.Seq[T], k int, opts ...Option) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("sample.RandomSample: got %d: %w", k, ErrNegativeCount)
	}
	cfg := newConfig(opts)

	reservoir := make([]T, 0, min(k, reservoirPrealloc))
	if k == 0 {
		return reservoir, nil
	}

	seen := 0
	for v := range seq {
		if seen < k {
			reservoir = append(reservoir, v)
		} else if j := cfg.src.IntN(seen + 1); j < k {
			reservoir[j] = v
		}
		seen++
	}
	if seen <= k {
		tracer().Debugf("sample: k=%d covers all %d elements, returning a permutation", k, seen)
	}

	// reservoir slots still carry a bias towards input order
	shuffle(reservoir, cfg.src)
	return reservoir, nil
}

// RandomStableSample returns min(k, c.Len()) elements of c chosen uniformly at
// random without replacement, in their original order.
//
// Indices are selected in one ascending scan: index i is taken with probability
// needed/remaining, which yields every subset of the requested size with equal
// probability.
func RandomStableSample[T any](c seqs.Collection[T], k int, opts ...Option) ([]T, error) {
	if k < 0 {
		return nil, fmt.Errorf("sample.RandomStableSample: got %d: %w", k, ErrNegativeCount)
	}
	cfg := newConfig(opts)

	n := c.Len()
	k = min(k, n)
	result := make([]T, 0, k)
	if k == n {
		tracer().Debugf("sample: k covers all %d elements, returning them in order", n)
		return slices.AppendSeq(result, c.All()), nil
	}

	for i := 0; i < n && len(result) < k; i++ {
		needed, remaining := k-len(result), n-i
		if cfg.src.IntN(remaining) < needed {
			result = append(result, c.At(i))
		}
	}
	return result, nil
}

// Shuffled returns the elements of seq in uniformly random order.
func Shuffled[T any](seq iter.Seq[T], opts ...Option) []T {
	cfg := newConfig(opts)
	values := slices.Collect(seq)
	shuffle(values, cfg.src)
	return values
}

// shuffle permutes s in place (Fisher-Yates).
func shuffle[T any](s []T, src Source) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
