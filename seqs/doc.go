/*
Package seqs provides lazy, composable adapters over Go 1.23+ iterators (iter.Seq).

Two capability tiers are distinguished by type:

  - iter.Seq[T] is a single-pass source. It may be infinite and may only be safe to
    traverse once.
  - [Collection] is repeatable and knows its length up front. Operations that must
    traverse an input more than once, or need its size before starting, take a
    Collection: [Product] re-reads its second argument once per element of the
    first, and the stable sampler in package sample needs the length to choose indices.

Adapters:

  - **Concatenation**: [Chain], [ChainCollections].
  - **Grouping**: [ChunkedOn], [ChunksOf], [CollectionChunksOf].
  - **Sliding windows**: [Windows], [CollectionWindows], [AdjacentPairs].
  - **Filtering**: [Uniqued], [UniquedOn], [Compacted], [CompactedPointers].
  - **Combination**: [Product].
  - **Flow Control**: [Take], [Striding].

No adapter does any work until the resulting sequence is ranged over, and every
traversal starts from scratch: the per-traversal state (seen sets, window buffers,
chunk buffers) lives inside the iterator function, never in the adapter value.
Stopping early is always safe.

# Errors

Size arguments are validated when the adapter is built, not while iterating.
A non-positive chunk, window or stride size is reported as [ErrInvalidCount]:

	chunks, err := seqs.ChunksOf(input, 0)
	if errors.Is(err, seqs.ErrInvalidCount) {
		// no sequence was built
	}

# Ordering

Every adapter in this package reproduces the relative input order exactly.
ChunkedOn starts a new chunk whenever the key changes, so equal keys that are
not adjacent produce separate chunks. Sort by the key first if global grouping
is needed.
*/
package seqs
