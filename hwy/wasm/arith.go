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

// Abs computes the absolute value of each lane.
//
// Unsigned lanes are returned unchanged. Signed lanes use the iNxM.abs
// instruction of their width, so the minimum value maps to itself
// (abs(int8(-128)) == -128). Float lanes only have their sign bit cleared;
// NaN payloads are preserved.
func Abs[T hwy.Lanes](v Vec[T]) Vec[T] {
	switch k := hwy.KindOf[T](); k.Category() {
	case hwy.CategoryUnsigned:
		return v
	case hwy.CategorySigned:
		switch k.Size() {
		case 1:
			return Vec[T]{r: asm.I8x16Abs(v.r)}
		case 2:
			return Vec[T]{r: asm.I16x8Abs(v.r)}
		case 4:
			return Vec[T]{r: asm.I32x4Abs(v.r)}
		case 8:
			return Vec[T]{r: asm.I64x2Abs(v.r)}
		}
	case hwy.CategoryFloat:
		switch k.Size() {
		case 4:
			return Vec[T]{r: asm.F32x4Abs(v.r)}
		case 8:
			return Vec[T]{r: asm.F64x2Abs(v.r)}
		}
	}
	return unsupported[T](OpAbs)
}

// Add performs element-wise addition.
//
// Integer lanes wrap modulo 2^(8*width) regardless of signedness. Float
// lanes follow IEEE-754 addition, including NaN propagation and the signed
// zero rules.
//
// Add picks the instruction from T on every call. Hot loops over a
// predeclared lane type should call the generated form (AddInt32x4,
// AddFloat64x2, ...), which is the instruction alone.
func Add[T hwy.Lanes](a, b Vec[T]) Vec[T] {
	switch k := hwy.KindOf[T](); k.Category() {
	case hwy.CategorySigned, hwy.CategoryUnsigned:
		switch k.Size() {
		case 1:
			return Vec[T]{r: asm.I8x16Add(a.r, b.r)}
		case 2:
			return Vec[T]{r: asm.I16x8Add(a.r, b.r)}
		case 4:
			return Vec[T]{r: asm.I32x4Add(a.r, b.r)}
		case 8:
			return Vec[T]{r: asm.I64x2Add(a.r, b.r)}
		}
	case hwy.CategoryFloat:
		switch k.Size() {
		case 4:
			return Vec[T]{r: asm.F32x4Add(a.r, b.r)}
		case 8:
			return Vec[T]{r: asm.F64x2Add(a.r, b.r)}
		}
	}
	return unsupported[T](OpAdd)
}

// BitwiseAnd computes a & b over the whole register. AND is the same bit
// operation for every lane shape, so there is no per-type dispatch.
func BitwiseAnd[T hwy.Lanes](a, b Vec[T]) Vec[T] {
	return Vec[T]{r: asm.V128And(a.r, b.r)}
}

// MaskAnd computes the lane-wise logical AND of two masks with v128.and.
// Full-width lanes stay full width.
func MaskAnd[T hwy.Lanes](a, b Mask[T]) Mask[T] {
	return Mask[T]{r: asm.V128And(a.r, b.r)}
}
