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

// Package hwy provides fixed-width float32 lanes backed by SIMD registers.
//
// The lane width is a build-time constant picked by build tags: 8 slots for
// amd64 builds targeting GOAMD64=v3, 4 for other amd64 builds and for arm64,
// and 1 elsewhere or when the hwy_scalar tag is set. Under
// GOEXPERIMENT=simd the amd64 lane operations use simd/archsimd; every
// other build uses plain loops with the same semantics.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lanedot/hwy"
//
//	a := hwy.LoadLane(data1)
//	b := hwy.LoadLane(data2)
//
//	// Elementwise product folded to one float32
//	sum := a.MulReduce(b)
//
// The package also reports the SIMD level of the running CPU (CurrentLevel,
// CurrentName), detected once at init. Setting HWY_NO_SIMD forces scalar
// reporting; it does not change LaneWidth.
package hwy
