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

//go:build amd64 && goexperiment.simd && amd64.v3 && !hwy_scalar

package hwy

import "simd/archsimd"

// This file backs Lane with AVX2 Float32x8 registers. LaneWidth is 8 under
// these build tags, so a *Lane converts directly to *[8]float32.

func (l *Lane) f32x8() archsimd.Float32x8 {
	return archsimd.LoadFloat32x8((*[8]float32)(l))
}

// Mul returns the elementwise product of l and r (VMULPS).
func (l Lane) Mul(r Lane) Lane {
	var out Lane
	l.f32x8().Mul(r.f32x8()).Store((*[8]float32)(&out))
	return out
}

// Accumulate adds r into l slot by slot (VADDPS).
func (l *Lane) Accumulate(r Lane) {
	l.f32x8().Add(r.f32x8()).Store((*[8]float32)(l))
}

// ReduceSum returns the sum of all 8 slots. The upper 128-bit half is folded
// onto the lower half before the final four adds, so the rounding order
// differs from a left-to-right scalar loop.
func (l Lane) ReduceSum() float32 {
	return reduceF32x8(l.f32x8())
}

// MulReduce multiplies l and r and reduces the product without leaving the
// vector registers until the last four elements.
func (l Lane) MulReduce(r Lane) float32 {
	return reduceF32x8(l.f32x8().Mul(r.f32x8()))
}

// HasFusedMulReduce reports whether MulReduce runs on a SIMD path.
func HasFusedMulReduce() bool {
	return true
}

func reduceF32x8(v archsimd.Float32x8) float32 {
	sum4 := v.GetLo().Add(v.GetHi())
	return sum4.GetElem(0) + sum4.GetElem(1) + sum4.GetElem(2) + sum4.GetElem(3)
}
