// Package dot computes float32 dot products over lane-structured vectors.
//
// A Vector stores its values as a sequence of hwy.Lane values, so its
// length must be a multiple of hwy.LaneWidth. Three algorithms share the
// same signature and differ only in how lane results are combined:
//
//   - ScalarLanes multiplies slot by slot and accumulates in a float32.
//     It adds strictly left to right and serves as the reference ordering.
//   - MulReduceLanes reduces each lane pair with hwy.Lane.MulReduce and
//     adds the per-lane scalars.
//   - AccumulateLanes multiplies lanes into a lane-valued accumulator and
//     performs a single horizontal reduction at the end.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-lanedot/hwy/contrib/dot"
//
//	l, err := dot.FromSlice(left)   // len(left) % hwy.LaneWidth == 0
//	if err != nil {
//	    return err
//	}
//	r, err := dot.FromSlice(right)
//	if err != nil {
//	    return err
//	}
//	sum, err := dot.AccumulateLanes(l, r)
//
// # Precision
//
// The SIMD reductions add in a different order than ScalarLanes. For well
// scaled inputs all three agree to a relative tolerance of about 1e-5;
// Reference accumulates the same products in float64 for comparison.
//
// # Build Configuration
//
// The lane width is fixed when the binary is built:
//   - GOAMD64=v3 or higher: 8 floats (AVX2)
//   - other amd64 and arm64: 4 floats (SSE, NEON)
//   - other architectures or -tags hwy_scalar: 1 float
//
// Building with GOEXPERIMENT=simd on amd64 backs the lane operations with
// archsimd registers; otherwise they are unrolled Go loops.
package dot
