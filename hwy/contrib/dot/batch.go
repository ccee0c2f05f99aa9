package dot

import (
	"errors"
	"fmt"
)

// ErrBatchMismatch is returned by DotBatch when the batches differ in size.
var ErrBatchMismatch = errors.New("dot: batch sizes differ")

// DotBatch computes the dot product of each pair (ls[i], rs[i]) with algo.
//
// It stops at the first failing pair and returns the error with the pair
// index attached.
func DotBatch(ls, rs []Vector, algo Algorithm) ([]float32, error) {
	if len(ls) != len(rs) {
		return nil, fmt.Errorf("%w: %d != %d", ErrBatchMismatch, len(ls), len(rs))
	}
	fn := algo.Func()
	if fn == nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}

	results := make([]float32, len(ls))
	for i := range ls {
		sum, err := fn(ls[i], rs[i])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		results[i] = sum
	}

	return results, nil
}
