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

//go:build !amd64 || !goexperiment.simd || hwy_scalar

package hwy

// This file provides the pure Go lane operations. They are used on targets
// without archsimd support and when the hwy_scalar tag is set. The loops run
// over a fixed-size array, so the compiler can fully unroll them.

// Mul returns the elementwise product of l and r.
func (l Lane) Mul(r Lane) Lane {
	var out Lane
	for i := range out {
		out[i] = l[i] * r[i]
	}
	return out
}

// Accumulate adds r into l slot by slot.
func (l *Lane) Accumulate(r Lane) {
	for i := range l {
		l[i] += r[i]
	}
}

// ReduceSum returns the sum of all slots, added left to right.
func (l Lane) ReduceSum() float32 {
	var sum float32
	for i := range l {
		sum += l[i]
	}
	return sum
}

// MulReduce returns the sum of the elementwise product of l and r.
// Without a hardware reduction it is exactly l.Mul(r).ReduceSum().
func (l Lane) MulReduce(r Lane) float32 {
	return l.Mul(r).ReduceSum()
}

// HasFusedMulReduce reports whether MulReduce runs on a SIMD path.
func HasFusedMulReduce() bool {
	return false
}
