package seqs_test

import (
	"math"
	"slices"
	"testing"

	"seqalgo/seqs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan(t *testing.T) {
	tests := []struct {
		name    string
		span    seqs.Span[int]
		wantLen int
	}{
		{"Lottery", seqs.Closed(1, 50), 50},
		{"Single", seqs.Closed(7, 7), 1},
		{"Empty", seqs.Closed(3, 2), 0},
		{"Negative", seqs.Closed(-5, 5), 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantLen, tt.span.Len())
			values := slices.AppendSeq([]int{}, tt.span.All())
			require.Len(t, values, tt.wantLen)
			for i, v := range values {
				assert.Equal(t, v, tt.span.At(i))
				assert.True(t, tt.span.Contains(v))
			}
		})
	}
}

func TestSpan_TypeMaximum(t *testing.T) {
	span := seqs.Closed[uint8](250, math.MaxUint8)

	assert.Equal(t, 6, span.Len())
	assert.Equal(t, []uint8{250, 251, 252, 253, 254, 255}, slices.Collect(span.All()))
}

func TestSpan_SignedWide(t *testing.T) {
	span := seqs.Closed[int8](-100, 100)
	require.Equal(t, 201, span.Len())
	assert.Equal(t, span.Len(), seqs.Count(span.All()))
	assert.Equal(t, int8(-100), span.At(0))
	assert.Equal(t, int8(0), span.At(100))
	assert.Equal(t, int8(100), span.At(200))

	full := seqs.Closed[int8](math.MinInt8, math.MaxInt8)
	require.Equal(t, 256, full.Len())
	assert.Equal(t, full.Len(), seqs.Count(full.All()))
	assert.Equal(t, int8(math.MaxInt8), full.At(255))
}

func TestSpan_LenTooLarge(t *testing.T) {
	assert.Panics(t, func() { seqs.Closed[int64](math.MinInt64, math.MaxInt64).Len() })
	assert.Equal(t, math.MaxInt, seqs.Closed[int64](1, math.MaxInt64).Len())
}

func TestSpan_AtOutOfRange(t *testing.T) {
	span := seqs.Closed(1, 3)
	assert.Panics(t, func() { span.At(3) })
	assert.Panics(t, func() { span.At(-1) })
}

func TestSub(t *testing.T) {
	letters := seqs.Of("a", "b", "c", "d", "e", "f")

	view := seqs.Sub[string](letters, 1, 5)
	require.Equal(t, 4, view.Len())
	assert.Equal(t, []string{"b", "c", "d", "e"}, view.Values())

	// a view of a view addresses the original collection directly
	inner := seqs.Sub[string](view, 1, 3)
	lo, hi := inner.Bounds()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 4, hi)
	assert.Equal(t, []string{"c", "d"}, inner.Values())

	assert.Panics(t, func() { view.At(4) })
	assert.Panics(t, func() { seqs.Sub[string](letters, 4, 7) })
	assert.Panics(t, func() { seqs.Sub[string](letters, 3, 2) })
}

func TestSlice_Repeatable(t *testing.T) {
	names := seqs.Of("Chidi", "Eleanor", "Jason", "Tahani")

	assert.Equal(t, 4, names.Len())
	assert.Equal(t, slices.Collect(names.All()), slices.Collect(names.All()))
	assert.Equal(t, "Jason", names.At(2))
}
