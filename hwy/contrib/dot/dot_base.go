// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dot

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ajroetker/go-lanedot/hwy"
)

// ErrLengthMismatch is returned when the two operands have different lengths.
var ErrLengthMismatch = errors.New("dot: vector lengths differ")

func checkPair(l, r Vector) error {
	if l.Len() != r.Len() {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, l.Len(), r.Len())
	}
	return nil
}

// ScalarLanes computes the dot product of l and r one slot at a time,
// accumulating every product into a single float32 in index order.
//
// Its result matches a naive loop over the flat elements bit for bit, which
// makes it the oracle for the other algorithms.
func ScalarLanes(l, r Vector) (float32, error) {
	if err := checkPair(l, r); err != nil {
		return 0, err
	}
	var sum float32
	for i := range l.lanes {
		a, b := &l.lanes[i], &r.lanes[i]
		for j := range hwy.LaneWidth {
			sum += a[j] * b[j]
		}
	}
	return sum, nil
}

// MulReduceLanes computes the dot product of l and r by reducing each lane
// pair with hwy.Lane.MulReduce and adding the per-lane results.
func MulReduceLanes(l, r Vector) (float32, error) {
	if err := checkPair(l, r); err != nil {
		return 0, err
	}
	var sum float32
	for i := range l.lanes {
		sum += l.lanes[i].MulReduce(r.lanes[i])
	}
	return sum, nil
}

// AccumulateLanes computes the dot product of l and r by accumulating lane
// products in a lane-valued register and reducing once at the end.
//
// This issues one horizontal reduction per call instead of one per lane.
func AccumulateLanes(l, r Vector) (float32, error) {
	if err := checkPair(l, r); err != nil {
		return 0, err
	}
	var acc hwy.Lane
	for i := range l.lanes {
		acc.Accumulate(l.lanes[i].Mul(r.lanes[i]))
	}
	return acc.ReduceSum(), nil
}

// Reference computes the dot product of l and r with float64 accumulation.
// The products are formed in float32, as the lane algorithms do, so the
// only difference is the precision of the running sum.
// Returns NaN when the lengths differ.
func Reference(l, r Vector) float64 {
	if l.Len() != r.Len() {
		return math.NaN()
	}
	var sum float64
	for i := range l.lanes {
		for j := 0; j < hwy.LaneWidth; j++ {
			sum += float64(l.lanes[i][j] * r.lanes[i][j])
		}
	}
	return sum
}

// Func is the signature shared by the dot-product algorithms.
type Func func(l, r Vector) (float32, error)

// Algorithm names one of the dot-product strategies.
type Algorithm int

const (
	// AlgoScalarLanes selects ScalarLanes.
	AlgoScalarLanes Algorithm = iota
	// AlgoMulReduceLanes selects MulReduceLanes.
	AlgoMulReduceLanes
	// AlgoAccumulateLanes selects AccumulateLanes.
	AlgoAccumulateLanes
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm.
var ErrUnknownAlgorithm = errors.New("dot: unknown algorithm")

var algorithmNames = [...]string{
	AlgoScalarLanes:     "scalar-lanes",
	AlgoMulReduceLanes:  "mulreduce-lanes",
	AlgoAccumulateLanes: "accumulate-lanes",
}

// Algorithms returns every algorithm, in order of increasing use of SIMD
// reductions.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoScalarLanes, AlgoMulReduceLanes, AlgoAccumulateLanes}
}

// String returns the algorithm's command-line name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Func returns the implementation of a, or nil for an unknown value.
func (a Algorithm) Func() Func {
	switch a {
	case AlgoScalarLanes:
		return ScalarLanes
	case AlgoMulReduceLanes:
		return MulReduceLanes
	case AlgoAccumulateLanes:
		return AccumulateLanes
	default:
		return nil
	}
}

// ParseAlgorithm maps a name to an Algorithm. Matching ignores case and
// accepts the short forms "scalar", "mulreduce" and "accumulate".
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, full := range algorithmNames {
		if name == full || name == strings.TrimSuffix(full, "-lanes") {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}
