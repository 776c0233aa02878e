package seqs

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Collection is a sequence that can be traversed any number of times and reports
// its length without being consumed.
type Collection[T any] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at index i. It panics if i is out of range.
	At(i int) T
	// All returns a fresh in-order traversal of the elements.
	All() iter.Seq[T]
}

// Slice adapts a Go slice to Collection. The slice is not copied.
type Slice[T any] []T

// Of returns values as a Collection backed by the same array.
func Of[T any](values ...T) Slice[T] {
	return Slice[T](values)
}

func (s Slice[T]) Len() int         { return len(s) }
func (s Slice[T]) At(i int) T       { return s[i] }
func (s Slice[T]) All() iter.Seq[T] { return slices.Values(s) }

// Span is the closed integer range Lo...Hi. A Span with Hi < Lo is empty.
// Elements are computed, never stored.
type Span[T constraints.Integer] struct {
	Lo, Hi T
}

// Closed returns the Span lo...hi.
func Closed[T constraints.Integer](lo, hi T) Span[T] {
	return Span[T]{Lo: lo, Hi: hi}
}

// Len panics if the span holds more elements than an int can count.
func (s Span[T]) Len() int {
	if s.Hi < s.Lo {
		return 0
	}
	// two's complement difference in uint64 is exact for any Integer type
	d := uint64(s.Hi) - uint64(s.Lo)
	if d >= math.MaxInt {
		panic(fmt.Sprintf("seqalgo.Span: %d...%d is too long to index", s.Lo, s.Hi))
	}
	return int(d) + 1
}

func (s Span[T]) At(i int) T {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("seqalgo.Span: index %d out of range [0:%d]", i, s.Len()))
	}
	return s.Lo + T(i)
}

func (s Span[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.Hi < s.Lo {
			return
		}
		// compare before incrementing so Hi may be the type's maximum
		for v := s.Lo; ; v++ {
			if !yield(v) || v == s.Hi {
				return
			}
		}
	}
}

// Contains reports whether v lies within the span.
func (s Span[T]) Contains(v T) bool {
	return s.Lo <= v && v <= s.Hi
}

// View is a lightweight window onto the index range [lo, hi) of another
// Collection. It shares the underlying storage.
type View[T any] struct {
	base   Collection[T]
	lo, hi int
}

// Sub returns the view of c over [lo, hi). It panics if the bounds are invalid,
// just like slicing.
func Sub[T any](c Collection[T], lo, hi int) View[T] {
	if lo < 0 || hi < lo || hi > c.Len() {
		panic(fmt.Sprintf("seqalgo.View: bounds [%d:%d] out of range with length %d", lo, hi, c.Len()))
	}
	if v, ok := c.(View[T]); ok {
		return View[T]{base: v.base, lo: v.lo + lo, hi: v.lo + hi}
	}
	return View[T]{base: c, lo: lo, hi: hi}
}

func (v View[T]) Len() int { return v.hi - v.lo }

func (v View[T]) At(i int) T {
	if i < 0 || i >= v.Len() {
		panic(fmt.Sprintf("seqalgo.View: index %d out of range [0:%d]", i, v.Len()))
	}
	return v.base.At(v.lo + i)
}

func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.lo; i < v.hi; i++ {
			if !yield(v.base.At(i)) {
				return
			}
		}
	}
}

// Bounds returns the half-open index range of the view within its base collection.
func (v View[T]) Bounds() (lo, hi int) {
	return v.lo, v.hi
}

// Values copies the viewed elements into a new slice.
func (v View[T]) Values() []T {
	return slices.AppendSeq(make([]T, 0, v.Len()), v.All())
}

type chained[T any] struct {
	first, second Collection[T]
}

func (c chained[T]) Len() int { return c.first.Len() + c.second.Len() }

func (c chained[T]) At(i int) T {
	if n := c.first.Len(); i >= n {
		return c.second.At(i - n)
	}
	return c.first.At(i)
}

func (c chained[T]) All() iter.Seq[T] { return Chain(c.first.All(), c.second.All()) }

type strided[T any] struct {
	base Collection[T]
	step int
}

func (s strided[T]) Len() int {
	n := s.base.Len()
	if n == 0 {
		return 0
	}
	return (n-1)/s.step + 1
}

func (s strided[T]) At(i int) T {
	if i < 0 || i >= s.Len() {
		panic(fmt.Sprintf("seqalgo.CollectionStriding: index %d out of range [0:%d]", i, s.Len()))
	}
	return s.base.At(i * s.step)
}

func (s strided[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range s.Len() {
			if !yield(s.base.At(i * s.step)) {
				return
			}
		}
	}
}
