package dot

import (
	"fmt"
	"testing"

	"github.com/ajroetker/go-lanedot/hwy"
)

func benchVectors(n int) (Vector, Vector) {
	l, _ := NewVector(n)
	r, _ := NewVector(n)
	for i := range n {
		l.Set(i, float32(i))
		r.Set(n-1-i, float32(i))
	}
	return l, r
}

func BenchmarkDot(b *testing.B) {
	sizes := []int{64, 256, 1024, 1 << 13, 1 << 16}

	for _, size := range sizes {
		size = max(size, hwy.LaneWidth)
		l, r := benchVectors(size)
		for _, f := range allFuncs {
			b.Run(fmt.Sprintf("%s/%d", f.name, size), func(b *testing.B) {
				b.SetBytes(int64(size * 4 * 2)) // Two vectors read
				b.ReportAllocs()
				var result float32
				for b.Loop() {
					result, _ = f.fn(l, r)
				}
				_ = result
			})
		}
	}
}

func BenchmarkDotBatch(b *testing.B) {
	batchSize := 32
	vecSize := 256

	ls := make([]Vector, batchSize)
	rs := make([]Vector, batchSize)
	for i := range ls {
		ls[i], rs[i] = benchVectors(vecSize)
	}

	b.ReportAllocs()
	for b.Loop() {
		_, _ = DotBatch(ls, rs, AlgoAccumulateLanes)
	}
}
