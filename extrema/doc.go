/*
Package extrema selects the smallest and largest elements of a sequence.

[MinAndMax] finds both ends in a single pass with constant space. [MinCount] and
[MaxCount] return the k smallest or largest elements, sorted. On a single-pass
sequence they keep a bounded heap of k elements (O(n log k) time, O(k) space).
The Collection variants know the length up front and switch to a full stable
sort when k is large relative to it (by default more than a tenth); both
strategies return exactly the same slice for the same input.

Comparators follow the cmp.Compare convention. Ties are resolved by input
position: among equal elements the earlier one is preferred, both when picking
a minimum and when picking a maximum.
*/
package extrema

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'seqalgo'
func tracer() tracing.Trace {
	return tracing.Select("seqalgo")
}
