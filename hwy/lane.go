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

package hwy

import "fmt"

// Lane is a group of LaneWidth float32 values sized to one hardware vector
// register of the compiled target. Lanes are plain values: assignment copies
// every slot and the zero Lane has all slots set to zero.
//
// Arithmetic is provided as methods whose implementation is chosen by build
// tags (see lane_ops_*.go). Only Accumulate and Set mutate their receiver.
type Lane [LaneWidth]float32

// Width returns the number of float32 slots in a Lane, LaneWidth.
func (l Lane) Width() int {
	return LaneWidth
}

// Get returns slot i.
// PRECONDITION: 0 <= i < LaneWidth, otherwise Get panics.
func (l Lane) Get(i int) float32 {
	checkSlot(i)
	return l[i]
}

// Set stores v into slot i.
// PRECONDITION: 0 <= i < LaneWidth, otherwise Set panics.
func (l *Lane) Set(i int, v float32) {
	checkSlot(i)
	l[i] = v
}

// LoadLane copies the first LaneWidth values of src into a new Lane.
// PRECONDITION: len(src) >= LaneWidth.
func LoadLane(src []float32) Lane {
	if len(src) < LaneWidth {
		panic(fmt.Sprintf("hwy: LoadLane needs %d values, got %d", LaneWidth, len(src)))
	}
	var l Lane
	copy(l[:], src[:LaneWidth])
	return l
}

// Store writes the lane's slots to dst.
// PRECONDITION: len(dst) >= LaneWidth.
func (l Lane) Store(dst []float32) {
	if len(dst) < LaneWidth {
		panic(fmt.Sprintf("hwy: Lane.Store needs %d slots, got %d", LaneWidth, len(dst)))
	}
	copy(dst[:LaneWidth], l[:])
}

// BroadcastLane returns a Lane with every slot set to v.
func BroadcastLane(v float32) Lane {
	var l Lane
	for i := range l {
		l[i] = v
	}
	return l
}

func checkSlot(i int) {
	if i < 0 || i >= LaneWidth {
		panic(fmt.Sprintf("hwy: lane slot %d out of range [0, %d)", i, LaneWidth))
	}
}
