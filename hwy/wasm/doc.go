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

// Package wasm is the WebAssembly SIMD128 kernel set.
//
// The kernels come in two forms. The concrete form is generated per lane
// type (zz_types_generated.go): AddInt32x4, AbsFloat64x2, AllUint8x16 and so
// on take the aliased vector types and their body is exactly one hwy/asm
// instruction, so the lane type and width are fixed when the caller is
// compiled. The generic form (Add, Abs, All, ...) accepts any lane type T,
// including named types, and selects the same instruction from the lane kind
// (category and byte width, see hwy.KindOf) on each call:
//
//	Abs        i8x16.abs  i16x8.abs  i32x4.abs  i64x2.abs  f32x4.abs  f64x2.abs
//	Add        i8x16.add  i16x8.add  i32x4.add  i64x2.add  f32x4.add  f64x2.add
//	All/Any    i8x16.bitmask  i16x8.bitmask  i32x4.bitmask  i64x2.bitmask
//	BitwiseAnd v128.and (any lane shape)
//	Broadcast  i8x16.splat ... f64x2.splat
//	Set2..16   i8x16/i16x8/i32x4/i64x2/f32x4/f64x2 make
//	Equal      i8x16.eq ... i64x2.eq  f32x4.eq  f64x2.eq
//	StoreAligned/StoreMaskAligned/LoadAligned  v128.store/v128.load
//
// Integer arithmetic wraps and abs of the minimum signed value wraps to
// itself. Float results are exactly those of the instruction; there is no
// saturation or overflow check.
//
// Masks (Mask[T]) come from SetMask2..16, TailMask and Equal. SetMask builds
// the -1/0 integer vector of the lane width with the integer make
// instruction and relabels it; no other path turns a vector into a mask.
//
// Operand shapes are fixed by the type system: Add only accepts two Vec[T]
// of the same T, and Set4 takes exactly four scalars of a 4-byte type.
// A lane kind the kernel set has no instruction for (Float16 arithmetic)
// goes through hwy.Unsupported, which panics by default.
//
// Kernels are pure functions of their arguments and safe for concurrent use.
package wasm

//go:generate go run ../../cmd/hwygen -out zz_types_generated.go -pkg wasm
