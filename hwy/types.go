// Package hwy provides the element model shared by the go-highway SIMD
// backends: lane type constraints, the element classifier that maps a Go
// type to its (category, width) pair, dispatch tags, and host dispatch
// reporting.
//
// It follows the Highway C++ library's design philosophy: write once against
// a generic interface, and let each backend package route every operation to
// the single instruction that implements it for the lane type at hand.
// Backend kernel sets live in sub-packages; hwy/wasm implements the
// WebAssembly SIMD128 backend.
//
// Basic usage:
//
//	import "github.com/go-highway/wasm128/hwy/wasm"
//
//	a := wasm.Set4[float32](1, -2, 3, -0.0)
//	b := wasm.Broadcast[float32](0.5)
//	r := a.Abs().Add(b)
//	r.StoreAligned(dst)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
// Float16 satisfies it through its uint16 representation.
type Lanes interface {
	Floats | Integers
}

// Width8 is the set of lane types that are 1 byte wide.
type Width8 interface {
	~int8 | ~uint8
}

// Width16 is the set of lane types that are 2 bytes wide.
type Width16 interface {
	~int16 | ~uint16
}

// Width32 is the set of lane types that are 4 bytes wide.
type Width32 interface {
	~int32 | ~uint32 | ~float32
}

// Width64 is the set of lane types that are 8 bytes wide.
type Width64 interface {
	~int64 | ~uint64 | ~float64
}
