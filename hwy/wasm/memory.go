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
	"unsafe"

	"github.com/go-highway/wasm128/hwy"
	"github.com/go-highway/wasm128/hwy/asm"
)

// StoreAligned writes all lanes of v to dst[0:Lanes[T]()] with a single
// v128.store.
//
// &dst[0] must be aligned to hwy.VectorAlign (see hwy.AlignedSlice). The
// alignment is not checked; it is the caller's precondition, as it is for
// the hardware instruction. dst shorter than one vector panics with an
// index error before anything is written.
func StoreAligned[T hwy.Lanes](dst []T, v Vec[T]) {
	_ = dst[Lanes[T]()-1]
	p := unsafe.Pointer(unsafe.SliceData(dst))
	switch hwy.KindOf[T]() {
	case hwy.KindFloat32:
		storeF32x4(p, v.r)
	case hwy.KindFloat64:
		storeF64x2(p, v.r)
	default:
		asm.V128Store(p, v.r)
	}
}

// SIMD128 has one untyped store; the float forms exist so float registers
// keep their own entry point, as on targets with typed stores.

func storeF32x4(p unsafe.Pointer, r asm.V128) { asm.V128Store(p, r) }
func storeF64x2(p unsafe.Pointer, r asm.V128) { asm.V128Store(p, r) }

// StoreMaskAligned writes the lanes of m to dst[0:Lanes[T]()] with a single
// v128.store. Each stored lane is all ones (true) or zero (false), so for
// integer T a true lane reads back as -1 or the maximum unsigned value.
//
// The alignment and length rules are those of StoreAligned.
func StoreMaskAligned[T hwy.Lanes](dst []T, m Mask[T]) {
	_ = dst[Lanes[T]()-1]
	asm.V128Store(unsafe.Pointer(unsafe.SliceData(dst)), m.r)
}

// LoadAligned reads Lanes[T]() lanes from src with a single v128.load.
// &src[0] must be aligned to hwy.VectorAlign; src shorter than one vector
// panics.
func LoadAligned[T hwy.Lanes](src []T) Vec[T] {
	_ = src[Lanes[T]()-1]
	return Vec[T]{r: asm.V128Load(unsafe.Pointer(unsafe.SliceData(src)))}
}
