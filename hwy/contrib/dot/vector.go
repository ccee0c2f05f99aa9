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

	"github.com/ajroetker/go-lanedot/hwy"
)

var (
	// ErrNotLaneMultiple is returned when a vector length is not a multiple
	// of hwy.LaneWidth.
	ErrNotLaneMultiple = errors.New("dot: vector length is not a multiple of the lane width")

	// ErrNegativeLength is returned by NewVector for n < 0.
	ErrNegativeLength = errors.New("dot: negative vector length")
)

// Vector is a float32 vector stored as contiguous lanes. Its length is fixed
// at construction and is always a multiple of hwy.LaneWidth.
//
// The zero Vector has length 0. Vectors share their lanes when copied; use
// Clone for an independent copy.
type Vector struct {
	lanes []hwy.Lane
	n     int
}

// NewVector returns a zero-filled Vector of length n.
func NewVector(n int) (Vector, error) {
	if err := checkLength(n); err != nil {
		return Vector{}, err
	}
	return Vector{lanes: make([]hwy.Lane, n/hwy.LaneWidth), n: n}, nil
}

// FromSlice returns a Vector holding a copy of values.
func FromSlice(values []float32) (Vector, error) {
	v, err := NewVector(len(values))
	if err != nil {
		return Vector{}, err
	}
	for i := range v.lanes {
		v.lanes[i] = hwy.LoadLane(values[i*hwy.LaneWidth:])
	}
	return v, nil
}

// MustFromSlice is like FromSlice but panics on error.
func MustFromSlice(values []float32) Vector {
	v, err := FromSlice(values)
	if err != nil {
		panic(err)
	}
	return v
}

func checkLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	if n%hwy.LaneWidth != 0 {
		return fmt.Errorf("%w: length %d, lane width %d (%s)", ErrNotLaneMultiple, n, hwy.LaneWidth, hwy.LaneTarget)
	}
	return nil
}

// Len returns the number of float32 elements.
func (v Vector) Len() int {
	return v.n
}

// NumLanes returns Len() / hwy.LaneWidth.
func (v Vector) NumLanes() int {
	return len(v.lanes)
}

// Lane returns a copy of lane i.
func (v Vector) Lane(i int) hwy.Lane {
	return v.lanes[i]
}

// Lanes returns the backing lanes. Callers must not modify them.
func (v Vector) Lanes() []hwy.Lane {
	return v.lanes
}

// Get returns element k, read from lane k/LaneWidth at offset k%LaneWidth.
// PRECONDITION: 0 <= k < Len(), otherwise Get panics.
func (v Vector) Get(k int) float32 {
	v.checkIndex(k)
	return v.lanes[k/hwy.LaneWidth].Get(k % hwy.LaneWidth)
}

// Set stores x as element k.
// PRECONDITION: 0 <= k < Len(), otherwise Set panics.
func (v Vector) Set(k int, x float32) {
	v.checkIndex(k)
	v.lanes[k/hwy.LaneWidth].Set(k%hwy.LaneWidth, x)
}

func (v Vector) checkIndex(k int) {
	if k < 0 || k >= v.n {
		panic(fmt.Sprintf("dot: index %d out of range [0, %d)", k, v.n))
	}
}

// Slice returns the elements as a new flat slice.
func (v Vector) Slice() []float32 {
	out := make([]float32, v.n)
	for i, l := range v.lanes {
		l.Store(out[i*hwy.LaneWidth:])
	}
	return out
}

// Clone returns a Vector with its own copy of the lanes.
func (v Vector) Clone() Vector {
	lanes := make([]hwy.Lane, len(v.lanes))
	copy(lanes, v.lanes)
	return Vector{lanes: lanes, n: v.n}
}
