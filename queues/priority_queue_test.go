package queues_test

import (
	"cmp"
	"testing"

	"seqalgo/queues"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Simple Task struct for testing
type Task struct {
	Name     string
	Priority int
}

func byPriority(a, b Task) int {
	return cmp.Compare(a.Priority, b.Priority)
}

func TestNewPriorityQueue_Validation(t *testing.T) {
	assert.Panics(t, func() {
		queues.NewPriorityQueue[int](10, true, nil)
	}, "NewPriorityQueue should panic with nil compare")
}

func TestPriorityQueue_Ordering(t *testing.T) {
	tests := []struct {
		name      string
		isMinHeap bool
		inputs    []Task
		expected  []string // Expected Names in order
	}{
		{
			name:      "MinHeap",
			isMinHeap: true,
			inputs: []Task{
				{"A", 3}, {"B", 1}, {"C", 4}, {"D", 2},
			},
			expected: []string{"B", "D", "A", "C"}, // 1, 2, 3, 4
		},
		{
			name:      "MaxHeap",
			isMinHeap: false,
			inputs: []Task{
				{"A", 3}, {"B", 1}, {"C", 4}, {"D", 2},
			},
			expected: []string{"C", "A", "D", "B"}, // 4, 3, 2, 1
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pq := queues.NewPriorityQueue(10, tt.isMinHeap, byPriority)

			for _, task := range tt.inputs {
				pq.Enqueue(task)
			}
			require.Equal(t, len(tt.inputs), pq.Size())

			for _, expName := range tt.expected {
				val, ok := pq.Dequeue()
				require.True(t, ok, "expected dequeue %s, got nothing", expName)
				assert.Equal(t, expName, val.Name)
			}
			assert.True(t, pq.IsEmpty())
		})
	}
}

func TestPriorityQueue_ReplaceHead(t *testing.T) {
	// max-heap holding the three smallest values seen so far
	pq := queues.NewPriorityQueue(3, false, cmp.Compare[int])
	for _, v := range []int{7, 2, 9} {
		pq.Enqueue(v)
	}

	old, ok := pq.ReplaceHead(4)
	require.True(t, ok)
	assert.Equal(t, 9, old)

	head, _ := pq.Peek()
	assert.Equal(t, 7, head)

	var drained []int
	for !pq.IsEmpty() {
		v, _ := pq.Dequeue()
		drained = append(drained, v)
	}
	assert.Equal(t, []int{7, 4, 2}, drained)
}

func TestPriorityQueue_ReplaceHeadEmpty(t *testing.T) {
	pq := queues.NewPriorityQueue(0, true, cmp.Compare[int])

	_, ok := pq.ReplaceHead(1)
	assert.False(t, ok)
	assert.True(t, pq.IsEmpty(), "ReplaceHead must not add to an empty queue")
}

func TestPriorityQueue_PeekAndEmpty(t *testing.T) {
	pq := queues.NewPriorityQueue(10, true, cmp.Compare[int])

	_, ok := pq.Peek()
	assert.False(t, ok, "Peek on empty should be false")

	_, ok = pq.Dequeue()
	assert.False(t, ok, "Dequeue on empty should be false")

	pq.Enqueue(100)
	val, ok := pq.Peek()
	require.True(t, ok)
	assert.Equal(t, 100, val)

	// Peek shouldn't remove
	assert.Equal(t, 1, pq.Size())
}
