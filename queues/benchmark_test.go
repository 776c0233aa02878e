package queues_test

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"testing"

	"seqalgo/queues"
)

// BenchmarkPriorityQueue_Bounded measures keeping the k smallest of a stream with
// ReplaceHead against a plain push/pop of every element.
func BenchmarkPriorityQueue_Bounded(b *testing.B) {
	const size = 100_000
	input := make([]int, size)
	rd := rand.New(rand.NewPCG(1, 2))
	for i := range input {
		input[i] = rd.Int()
	}

	for _, k := range []int{10, 1_000} {
		b.Run(fmt.Sprintf("ReplaceHead/k=%d", k), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				pq := queues.NewPriorityQueue(k, false, cmp.Compare[int])
				for _, v := range input {
					if pq.Size() < k {
						pq.Enqueue(v)
						continue
					}
					if head, _ := pq.Peek(); v < head {
						pq.ReplaceHead(v)
					}
				}
			}
		})
		b.Run(fmt.Sprintf("PushPop/k=%d", k), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				pq := queues.NewPriorityQueue(size, true, cmp.Compare[int])
				for _, v := range input {
					pq.Enqueue(v)
				}
				for range k {
					pq.Dequeue()
				}
			}
		})
	}
}
