//go:build !amd64 && !arm64 && !wasm

package hwy

func init() {
	// Other architectures (riscv64, ppc64le, s390x, ...) are reported as
	// scalar.
	setScalarMode()
}
