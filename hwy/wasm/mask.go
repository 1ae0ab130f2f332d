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
	"github.com/go-highway/wasm128/hwy"
	"github.com/go-highway/wasm128/hwy/asm"
)

// Bitmask value with every lane set, per lane width.
const (
	allLanes8  = 0xFFFF // 16 lanes
	allLanes16 = 0xFF   // 8 lanes
	allLanes32 = 0x0F   // 4 lanes
	allLanes64 = 0x03   // 2 lanes
)

// All reports whether every lane of m is true.
//
// The lane sign bits are gathered with the bitmask instruction of the lane
// width and compared against the all-lanes constant. A mask whose lanes are
// not full width gives an unspecified answer.
func All[T hwy.Lanes](m Mask[T]) bool {
	switch hwy.KindOf[T]().Size() {
	case 1:
		return asm.I8x16Bitmask(m.r) == allLanes8
	case 2:
		return asm.I16x8Bitmask(m.r) == allLanes16
	case 4:
		return asm.I32x4Bitmask(m.r) == allLanes32
	case 8:
		return asm.I64x2Bitmask(m.r) == allLanes64
	}
	reportUnsupported[T](OpAll)
	return false
}

// Any reports whether at least one lane of m is true.
func Any[T hwy.Lanes](m Mask[T]) bool {
	switch hwy.KindOf[T]().Size() {
	case 1:
		return asm.I8x16Bitmask(m.r) != 0
	case 2:
		return asm.I16x8Bitmask(m.r) != 0
	case 4:
		return asm.I32x4Bitmask(m.r) != 0
	case 8:
		return asm.I64x2Bitmask(m.r) != 0
	}
	reportUnsupported[T](OpAny)
	return false
}

// Equal compares a and b lane by lane. Integer lanes compare bits; float
// lanes use IEEE equality, so NaN lanes are false and -0 equals +0.
func Equal[T hwy.Lanes](a, b Vec[T]) Mask[T] {
	switch k := hwy.KindOf[T](); k.Category() {
	case hwy.CategorySigned, hwy.CategoryUnsigned:
		switch k.Size() {
		case 1:
			return Mask[T]{r: asm.I8x16Eq(a.r, b.r)}
		case 2:
			return Mask[T]{r: asm.I16x8Eq(a.r, b.r)}
		case 4:
			return Mask[T]{r: asm.I32x4Eq(a.r, b.r)}
		case 8:
			return Mask[T]{r: asm.I64x2Eq(a.r, b.r)}
		}
	case hwy.CategoryFloat:
		switch k.Size() {
		case 4:
			return Mask[T]{r: asm.F32x4Eq(a.r, b.r)}
		case 8:
			return Mask[T]{r: asm.F64x2Eq(a.r, b.r)}
		}
	}
	reportUnsupported[T](OpEqual)
	return Mask[T]{}
}
