package seqs

import (
	"errors"
	"fmt"
)

// ErrInvalidCount is returned when a chunk, window or stride size is not positive.
var ErrInvalidCount = errors.New("count must be positive")

func checkCount(op string, n int) error {
	if n <= 0 {
		return fmt.Errorf("seqs.%s: got %d: %w", op, n, ErrInvalidCount)
	}
	return nil
}
