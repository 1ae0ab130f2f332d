package hwy

import "unsafe"

// VectorAlign is the natural alignment in bytes of a 128-bit register.
// Aligned stores and loads require their address to be a multiple of it.
const VectorAlign = 16

// AlignedSlice returns a zeroed slice of n elements whose first element is
// VectorAlign-aligned, suitable as the destination of an aligned store.
//
// Go does not move heap objects, so the alignment holds for the slice's
// lifetime. Reslicing at an offset that is not a multiple of
// VectorAlign/sizeof(T) loses the guarantee.
func AlignedSlice[T Lanes](n int) []T {
	var dummy T
	size := int(unsafe.Sizeof(dummy))
	pad := VectorAlign / size
	buf := make([]T, n+pad)
	if len(buf) == 0 {
		return buf
	}
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&buf[0])) % VectorAlign); rem != 0 {
		off = (VectorAlign - rem) / size
	}
	return buf[off : off+n : off+n]
}

// IsAligned reports whether the first element of s sits on a VectorAlign
// boundary. Empty slices are never aligned.
func IsAligned[T Lanes](s []T) bool {
	if len(s) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&s[0]))%VectorAlign == 0
}
