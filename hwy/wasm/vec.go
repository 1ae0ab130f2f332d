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

package wasm

import (
	"fmt"
	"math/bits"
	"strings"
	"unsafe"

	"github.com/go-highway/wasm128/hwy"
	"github.com/go-highway/wasm128/hwy/asm"
)

// Vec is a SIMD128 register holding Lanes[T]() lanes of T.
//
// Vec is an immutable value: every operation returns a new Vec and nothing
// is allocated. The zero value has all lanes zero.
type Vec[T hwy.Lanes] struct {
	_ [0]uint64 // 8-byte alignment for lane access
	r asm.V128
}

// Mask is a SIMD128 register where each lane of T's width is either all
// ones (true) or all zeros (false).
//
// Masks are only produced by SetMask2/4/8/16, TailMask, Equal and the And
// kernels, which all keep every lane full width. The zero value is all
// false.
type Mask[T hwy.Lanes] struct {
	_ [0]uint64
	r asm.V128
}

// Zero returns a vector with all lanes zero.
func Zero[T hwy.Lanes]() Vec[T] {
	return Vec[T]{}
}

// lanes views the register as its T lanes. Lane i is bytes [i*size,
// (i+1)*size) in host order, which hwy/asm only builds for when it is
// little endian.
func (v *Vec[T]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.r)), Lanes[T]())
}

// NumLanes returns the number of lanes (elements) in this vector.
func (Vec[T]) NumLanes() int {
	return Lanes[T]()
}

// Get returns lane i. It panics if i is out of range.
func (v Vec[T]) Get(i int) T {
	return v.lanes()[i]
}

// Data returns a copy of the lanes, lane 0 first.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, Lanes[T]())
	copy(out, v.lanes())
	return out
}

// Raw returns the register bits.
func (v Vec[T]) Raw() asm.V128 {
	return v.r
}

// Tag returns the dispatch tag of the backend the vector belongs to.
func (Vec[T]) Tag() Arch {
	return Arch{}
}

// String formats the lanes, e.g. "f32x4[1 2 3 0]".
func (v Vec[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%sx%d[", hwy.KindOf[T](), Lanes[T]())
	for i, x := range v.lanes() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(']')
	return sb.String()
}

// NumLanes returns the number of lanes in this mask.
func (Mask[T]) NumLanes() int {
	return Lanes[T]()
}

// Get reports whether lane i is true. It panics if i is out of range.
func (m Mask[T]) Get(i int) bool {
	size := RegisterBytes / Lanes[T]()
	for _, b := range m.r[i*size : (i+1)*size] {
		if b != 0 {
			return true
		}
	}
	return false
}

// Bits returns the lane bitmask: bit i is set iff lane i is true.
func (m Mask[T]) Bits() uint16 {
	switch hwy.KindOf[T]().Size() {
	case 1:
		return asm.I8x16Bitmask(m.r)
	case 2:
		return uint16(asm.I16x8Bitmask(m.r))
	case 4:
		return uint16(asm.I32x4Bitmask(m.r))
	case 8:
		return uint16(asm.I64x2Bitmask(m.r))
	}
	hwy.Unsupported(targetName, "bitmask", hwy.KindOf[T]())
	return 0
}

// CountTrue returns the number of true lanes.
func (m Mask[T]) CountTrue() int {
	return bits.OnesCount16(m.Bits())
}

// Raw returns the register bits.
func (m Mask[T]) Raw() asm.V128 {
	return m.r
}

// String formats the mask lanes as 0/1, e.g. "mask32x4[1 0 1 1]".
func (m Mask[T]) String() string {
	var sb strings.Builder
	n := Lanes[T]()
	fmt.Fprintf(&sb, "mask%dx%d[", 8*RegisterBytes/n, n)
	for i := range n {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if m.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

// Method forms of the kernels.

// Abs is the method form of Abs.
func (v Vec[T]) Abs() Vec[T] { return Abs(v) }

// Add is the method form of Add.
func (v Vec[T]) Add(w Vec[T]) Vec[T] { return Add(v, w) }

// And is the method form of BitwiseAnd.
func (v Vec[T]) And(w Vec[T]) Vec[T] { return BitwiseAnd(v, w) }

// Equal is the method form of Equal.
func (v Vec[T]) Equal(w Vec[T]) Mask[T] { return Equal(v, w) }

// StoreAligned is the method form of StoreAligned.
func (v Vec[T]) StoreAligned(dst []T) { StoreAligned(dst, v) }

// All is the method form of All.
func (m Mask[T]) All() bool { return All(m) }

// Any is the method form of Any.
func (m Mask[T]) Any() bool { return Any(m) }

// And is the method form of MaskAnd.
func (m Mask[T]) And(n Mask[T]) Mask[T] { return MaskAnd(m, n) }

// StoreAligned is the method form of StoreMaskAligned.
func (m Mask[T]) StoreAligned(dst []T) { StoreMaskAligned(dst, m) }
