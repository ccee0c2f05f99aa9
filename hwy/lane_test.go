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

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func iota32(n int, start float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = start + float32(i)
	}
	return out
}

func TestLaneWidth(t *testing.T) {
	var l Lane
	if l.Width() != LaneWidth {
		t.Errorf("Width() = %d, want %d", l.Width(), LaneWidth)
	}
	if LaneWidth <= 0 || LaneWidth&(LaneWidth-1) != 0 {
		t.Errorf("LaneWidth = %d, want a positive power of two", LaneWidth)
	}
	if len(l) != LaneWidth {
		t.Errorf("len(Lane) = %d, want %d", len(l), LaneWidth)
	}
	switch LaneTarget {
	case "avx2":
		if LaneWidth != 8 {
			t.Errorf("avx2 lane width = %d, want 8", LaneWidth)
		}
	case "sse", "neon":
		if LaneWidth != 4 {
			t.Errorf("%s lane width = %d, want 4", LaneTarget, LaneWidth)
		}
	case "scalar":
		if LaneWidth != 1 {
			t.Errorf("scalar lane width = %d, want 1", LaneWidth)
		}
	default:
		t.Errorf("unknown LaneTarget %q", LaneTarget)
	}
}

func TestLaneGetSet(t *testing.T) {
	var l Lane
	for i := 0; i < LaneWidth; i++ {
		l.Set(i, float32(i)*1.5)
	}
	for i := 0; i < LaneWidth; i++ {
		if got, want := l.Get(i), float32(i)*1.5; got != want {
			t.Errorf("Get(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestLaneGetSetOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, LaneWidth, LaneWidth + 3} {
		t.Run("get", func(t *testing.T) {
			defer expectPanic(t, "out of range")
			var l Lane
			_ = l.Get(idx)
		})
		t.Run("set", func(t *testing.T) {
			defer expectPanic(t, "out of range")
			var l Lane
			l.Set(idx, 1)
		})
	}
}

func expectPanic(t *testing.T, substr string) {
	t.Helper()
	r := recover()
	if r == nil {
		t.Fatal("expected panic")
	}
	msg, ok := r.(string)
	if !ok || !strings.Contains(msg, substr) {
		t.Errorf("panic = %v, want message containing %q", r, substr)
	}
}

func TestLoadStore(t *testing.T) {
	src := iota32(LaneWidth+2, 1)
	l := LoadLane(src)

	dst := make([]float32, LaneWidth)
	l.Store(dst)
	if diff := cmp.Diff(src[:LaneWidth], dst); diff != "" {
		t.Errorf("LoadLane/Store mismatch (-want +got):\n%s", diff)
	}

	// Lanes are values: changing the copy leaves the original alone.
	c := l
	c.Set(0, -100)
	if l.Get(0) != src[0] {
		t.Errorf("copy aliases original: Get(0) = %v, want %v", l.Get(0), src[0])
	}
}

func TestLoadLaneShort(t *testing.T) {
	defer expectPanic(t, "LoadLane")
	LoadLane(make([]float32, LaneWidth-1))
}

func TestBroadcastLane(t *testing.T) {
	l := BroadcastLane(42)
	for i := 0; i < LaneWidth; i++ {
		if l.Get(i) != 42 {
			t.Errorf("BroadcastLane: slot %d = %v, want 42", i, l.Get(i))
		}
	}
}

func TestLaneMul(t *testing.T) {
	a := LoadLane(iota32(LaneWidth, 1))
	b := BroadcastLane(3)
	got := a.Mul(b)
	for i := 0; i < LaneWidth; i++ {
		if want := float32(i+1) * 3; got.Get(i) != want {
			t.Errorf("Mul: slot %d = %v, want %v", i, got.Get(i), want)
		}
	}
	// Operands are untouched.
	if a.Get(0) != 1 || b.Get(0) != 3 {
		t.Errorf("Mul mutated operands: a[0]=%v b[0]=%v", a.Get(0), b.Get(0))
	}
}

func TestLaneAccumulate(t *testing.T) {
	acc := BroadcastLane(1)
	inc := LoadLane(iota32(LaneWidth, 0))
	acc.Accumulate(inc)
	acc.Accumulate(inc)
	for i := 0; i < LaneWidth; i++ {
		if want := 1 + 2*float32(i); acc.Get(i) != want {
			t.Errorf("Accumulate: slot %d = %v, want %v", i, acc.Get(i), want)
		}
	}
	if inc.Get(LaneWidth-1) != float32(LaneWidth-1) {
		t.Errorf("Accumulate mutated its argument")
	}
}

func TestLaneReduceSum(t *testing.T) {
	l := LoadLane(iota32(LaneWidth, 1))
	want := float32(LaneWidth * (LaneWidth + 1) / 2)
	if got := l.ReduceSum(); got != want {
		t.Errorf("ReduceSum() = %v, want %v", got, want)
	}

	var zero Lane
	if got := zero.ReduceSum(); got != 0 {
		t.Errorf("zero.ReduceSum() = %v, want 0", got)
	}
}

func TestLaneMulReduce(t *testing.T) {
	a := LoadLane(iota32(LaneWidth, 0))
	b := LoadLane(iota32(LaneWidth, 0))
	for i := 0; i < LaneWidth; i++ {
		b.Set(i, float32(LaneWidth-1-i))
	}

	got := a.MulReduce(b)
	want := a.Mul(b).ReduceSum()
	if math.Abs(float64(got-want)) > 1e-5*math.Max(1, math.Abs(float64(want))) {
		t.Errorf("MulReduce() = %v, want %v", got, want)
	}
	if !HasFusedMulReduce() && got != want {
		t.Errorf("fallback MulReduce() = %v, want exactly %v", got, want)
	}
}

func TestLaneSpecialValues(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())

	a := BroadcastLane(1)
	a.Set(0, inf)
	if got := a.ReduceSum(); !math.IsInf(float64(got), 1) {
		t.Errorf("ReduceSum with +Inf = %v, want +Inf", got)
	}

	b := BroadcastLane(1)
	b.Set(LaneWidth-1, nan)
	if got := b.MulReduce(BroadcastLane(2)); !math.IsNaN(float64(got)) {
		t.Errorf("MulReduce with NaN = %v, want NaN", got)
	}
}

func BenchmarkLaneMulReduce(b *testing.B) {
	x := LoadLane(iota32(LaneWidth, 1))
	y := LoadLane(iota32(LaneWidth, 2))
	var sink float32
	for b.Loop() {
		sink += x.MulReduce(y)
	}
	_ = sink
}

func BenchmarkLaneMulAccumulate(b *testing.B) {
	x := LoadLane(iota32(LaneWidth, 1))
	y := LoadLane(iota32(LaneWidth, 2))
	var acc Lane
	for b.Loop() {
		acc.Accumulate(x.Mul(y))
	}
	_ = acc.ReduceSum()
}
