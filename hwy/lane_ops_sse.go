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

//go:build amd64 && goexperiment.simd && !amd64.v3 && !hwy_scalar

package hwy

import "simd/archsimd"

// This file backs Lane with 128-bit Float32x4 registers. archsimd encodes
// these with VEX prefixes, which need AVX, so baseline amd64 builds check the
// CPU once and fall back to scalar loops when AVX is missing.

var laneUseAVX = archsimd.X86.AVX()

func (l *Lane) f32x4() archsimd.Float32x4 {
	return archsimd.LoadFloat32x4((*[4]float32)(l))
}

// Mul returns the elementwise product of l and r.
func (l Lane) Mul(r Lane) Lane {
	var out Lane
	if !laneUseAVX {
		for i := range out {
			out[i] = l[i] * r[i]
		}
		return out
	}
	l.f32x4().Mul(r.f32x4()).Store((*[4]float32)(&out))
	return out
}

// Accumulate adds r into l slot by slot.
func (l *Lane) Accumulate(r Lane) {
	if !laneUseAVX {
		for i := range l {
			l[i] += r[i]
		}
		return
	}
	l.f32x4().Add(r.f32x4()).Store((*[4]float32)(l))
}

// ReduceSum returns the sum of all 4 slots.
func (l Lane) ReduceSum() float32 {
	if !laneUseAVX {
		return l[0] + l[1] + l[2] + l[3]
	}
	return reduceF32x4(l.f32x4())
}

// MulReduce multiplies l and r and reduces the product to one float32.
func (l Lane) MulReduce(r Lane) float32 {
	if !laneUseAVX {
		return l.Mul(r).ReduceSum()
	}
	return reduceF32x4(l.f32x4().Mul(r.f32x4()))
}

// HasFusedMulReduce reports whether MulReduce runs on a SIMD path.
func HasFusedMulReduce() bool {
	return laneUseAVX
}

// reduceF32x4 pairs (0+2) and (1+3) like a shuffle-and-add reduction would.
func reduceF32x4(v archsimd.Float32x4) float32 {
	return (v.GetElem(0) + v.GetElem(2)) + (v.GetElem(1) + v.GetElem(3))
}
