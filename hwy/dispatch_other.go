//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures use the scalar lane.
	// Future tiers could add wasm SIMD128 or the riscv64 vector extension.
	setScalarMode()
}
