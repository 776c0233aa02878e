/*
Package sample draws uniform random subsets of sequences.

[RandomSample] works on any finite iter.Seq in one pass (reservoir sampling) but
returns the chosen elements in random order. [RandomStableSample] keeps the
chosen elements in their original relative order; it needs a seqs.Collection
because it has to know the length before choosing. The order guarantee is what
the extra requirement buys.

Randomness comes from a [Source]. By default the process-wide math/rand/v2
generator is used; pass [WithSource] or [WithSeed] for reproducible draws.
*/
package sample

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'seqalgo'
func tracer() tracing.Trace {
	return tracing.Select("seqalgo")
}
