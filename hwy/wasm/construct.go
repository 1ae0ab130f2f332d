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

// Lane bit casts. Each is only called on the arm whose width matches T.

func u8[T hwy.Lanes](x T) uint8    { return *(*uint8)(unsafe.Pointer(&x)) }
func u16[T hwy.Lanes](x T) uint16  { return *(*uint16)(unsafe.Pointer(&x)) }
func u32[T hwy.Lanes](x T) uint32  { return *(*uint32)(unsafe.Pointer(&x)) }
func u64[T hwy.Lanes](x T) uint64  { return *(*uint64)(unsafe.Pointer(&x)) }
func f32[T hwy.Lanes](x T) float32 { return *(*float32)(unsafe.Pointer(&x)) }
func f64[T hwy.Lanes](x T) float64 { return *(*float64)(unsafe.Pointer(&x)) }

// Broadcast returns a vector with every lane set to s (iNxM.splat or
// fNxM.splat for T's kind).
func Broadcast[T hwy.Lanes](s T) Vec[T] {
	switch k := hwy.KindOf[T](); k.Category() {
	case hwy.CategorySigned, hwy.CategoryUnsigned:
		switch k.Size() {
		case 1:
			return Vec[T]{r: asm.I8x16Splat(u8(s))}
		case 2:
			return Vec[T]{r: asm.I16x8Splat(u16(s))}
		case 4:
			return Vec[T]{r: asm.I32x4Splat(u32(s))}
		case 8:
			return Vec[T]{r: asm.I64x2Splat(u64(s))}
		}
	case hwy.CategoryFloat:
		switch k.Size() {
		case 4:
			return Vec[T]{r: asm.F32x4Splat(f32(s))}
		case 8:
			return Vec[T]{r: asm.F64x2Splat(f64(s))}
		}
	}
	return unsupported[T](OpBroadcast)
}

// Set16 builds a vector of 1-byte lanes from exactly 16 values, lane 0 first.
func Set16[T hwy.Width8](v0, v1, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13, v14, v15 T) Vec[T] {
	return Vec[T]{r: asm.I8x16Make(
		u8(v0), u8(v1), u8(v2), u8(v3), u8(v4), u8(v5), u8(v6), u8(v7),
		u8(v8), u8(v9), u8(v10), u8(v11), u8(v12), u8(v13), u8(v14), u8(v15))}
}

// Set8 builds a vector of 2-byte integer lanes from exactly 8 values.
func Set8[T hwy.Width16](v0, v1, v2, v3, v4, v5, v6, v7 T) Vec[T] {
	if hwy.KindOf[T]().Category() == hwy.CategoryFloat {
		return unsupported[T](OpSet)
	}
	return Vec[T]{r: asm.I16x8Make(u16(v0), u16(v1), u16(v2), u16(v3), u16(v4), u16(v5), u16(v6), u16(v7))}
}

// Set4 builds a vector of 4-byte lanes from exactly 4 values.
func Set4[T hwy.Width32](v0, v1, v2, v3 T) Vec[T] {
	if hwy.KindOf[T]().Category() == hwy.CategoryFloat {
		return Vec[T]{r: asm.F32x4Make(f32(v0), f32(v1), f32(v2), f32(v3))}
	}
	return Vec[T]{r: asm.I32x4Make(u32(v0), u32(v1), u32(v2), u32(v3))}
}

// Set2 builds a vector of 8-byte lanes from exactly 2 values.
func Set2[T hwy.Width64](v0, v1 T) Vec[T] {
	if hwy.KindOf[T]().Category() == hwy.CategoryFloat {
		return Vec[T]{r: asm.F64x2Make(f64(v0), f64(v1))}
	}
	return Vec[T]{r: asm.I64x2Make(u64(v0), u64(v1))}
}

// sentinel is the integer lane pattern of a mask lane: -1 (all ones) for
// true, 0 for false.
func sentinel[I hwy.SignedInts](b bool) I {
	if b {
		return -1
	}
	return 0
}

// Mask lane bit patterns for the typed constructors: all ones for true,
// zero for false. They are the unsigned view of sentinel.

func maskLane8(b bool) uint8 {
	if b {
		return 0xFF
	}
	return 0
}

func maskLane16(b bool) uint16 {
	if b {
		return 0xFFFF
	}
	return 0
}

func maskLane32(b bool) uint32 {
	if b {
		return 0xFFFFFFFF
	}
	return 0
}

func maskLane64(b bool) uint64 {
	if b {
		return 0xFFFFFFFFFFFFFFFF
	}
	return 0
}

// maskOf relabels a vector of sentinel lanes as a mask. It is the only
// place a vector becomes a mask; its callers pass Set vectors whose lanes
// are all -1 or 0.
func maskOf[T hwy.Lanes, I hwy.SignedInts](v Vec[I]) Mask[T] {
	return Mask[T]{r: v.r}
}

// SetMask16 builds a mask over 1-byte lanes from exactly 16 booleans.
func SetMask16[T hwy.Width8](b0, b1, b2, b3, b4, b5, b6, b7, b8, b9, b10, b11, b12, b13, b14, b15 bool) Mask[T] {
	s := sentinel[int8]
	return maskOf[T](Set16(s(b0), s(b1), s(b2), s(b3), s(b4), s(b5), s(b6), s(b7),
		s(b8), s(b9), s(b10), s(b11), s(b12), s(b13), s(b14), s(b15)))
}

// SetMask8 builds a mask over 2-byte lanes from exactly 8 booleans.
func SetMask8[T hwy.Width16](b0, b1, b2, b3, b4, b5, b6, b7 bool) Mask[T] {
	s := sentinel[int16]
	return maskOf[T](Set8(s(b0), s(b1), s(b2), s(b3), s(b4), s(b5), s(b6), s(b7)))
}

// SetMask4 builds a mask over 4-byte lanes from exactly 4 booleans.
func SetMask4[T hwy.Width32](b0, b1, b2, b3 bool) Mask[T] {
	s := sentinel[int32]
	return maskOf[T](Set4(s(b0), s(b1), s(b2), s(b3)))
}

// SetMask2 builds a mask over 8-byte lanes from exactly 2 booleans.
func SetMask2[T hwy.Width64](b0, b1 bool) Mask[T] {
	s := sentinel[int64]
	return maskOf[T](Set2(s(b0), s(b1)))
}

// TailMask returns a mask whose first count lanes are true. count is
// clamped to [0, Lanes[T]()].
//
// This is useful for handling the tail of an array whose length is not a
// multiple of the lane count.
func TailMask[T hwy.Lanes](count int) Mask[T] {
	on := func(i int) bool { return i < count }
	switch hwy.KindOf[T]().Size() {
	case 1:
		s := sentinel[int8]
		return maskOf[T](Set16(s(on(0)), s(on(1)), s(on(2)), s(on(3)), s(on(4)), s(on(5)), s(on(6)), s(on(7)),
			s(on(8)), s(on(9)), s(on(10)), s(on(11)), s(on(12)), s(on(13)), s(on(14)), s(on(15))))
	case 2:
		s := sentinel[int16]
		return maskOf[T](Set8(s(on(0)), s(on(1)), s(on(2)), s(on(3)), s(on(4)), s(on(5)), s(on(6)), s(on(7))))
	case 4:
		s := sentinel[int32]
		return maskOf[T](Set4(s(on(0)), s(on(1)), s(on(2)), s(on(3))))
	case 8:
		s := sentinel[int64]
		return maskOf[T](Set2(s(on(0)), s(on(1))))
	}
	reportUnsupported[T](OpTailMask)
	return Mask[T]{}
}
