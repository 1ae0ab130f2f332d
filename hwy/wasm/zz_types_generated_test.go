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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-highway/wasm128/hwy"
)

// typedKernels groups the generated kernels of one lane type.
type typedKernels[T hwy.Lanes] struct {
	broadcast func(T) Vec[T]
	load      func([]T) Vec[T]
	store     func([]T, Vec[T])
	storeMask func([]T, Mask[T])
	abs       func(Vec[T]) Vec[T]
	add       func(a, b Vec[T]) Vec[T]
	and       func(a, b Vec[T]) Vec[T]
	equal     func(a, b Vec[T]) Mask[T]
	maskAnd   func(a, b Mask[T]) Mask[T]
	all       func(Mask[T]) bool
	any       func(Mask[T]) bool
}

// testTypedKernels checks that every generated kernel of T computes the
// same register as its generic counterpart.
func testTypedKernels[T hwy.Lanes](t *testing.T, k typedKernels[T], a, b Vec[T]) {
	t.Helper()
	kind := hwy.KindOf[T]()

	assert.Equal(t, Abs(a), k.abs(a), "Abs %s", kind)
	assert.Equal(t, Add(a, b), k.add(a, b), "Add %s", kind)
	assert.Equal(t, BitwiseAnd(a, b), k.and(a, b), "And %s", kind)
	assert.Equal(t, Broadcast(a.Get(1)), k.broadcast(a.Get(1)), "Broadcast %s", kind)

	eq := k.equal(a, b)
	assert.Equal(t, Equal(a, b), eq, "Equal %s", kind)
	tail := TailMask[T](1)
	assert.Equal(t, MaskAnd(eq, tail), k.maskAnd(eq, tail), "MaskAnd %s", kind)
	for _, m := range []Mask[T]{eq, tail, Mask[T]{}, Equal(b, b)} {
		assert.Equal(t, All(m), k.all(m), "All %s %v", kind, m)
		assert.Equal(t, Any(m), k.any(m), "Any %s %v", kind, m)
	}

	buf := hwy.AlignedSlice[T](Lanes[T]())
	k.store(buf, a)
	assert.Equal(t, a.Data(), buf, "Store %s", kind)
	assert.Equal(t, a, k.load(buf), "Load %s", kind)

	k.storeMask(buf, tail)
	want := hwy.AlignedSlice[T](Lanes[T]())
	StoreMaskAligned(want, tail)
	assert.Equal(t, LoadAligned(want), LoadAligned(buf), "StoreMask %s", kind)

	assert.Panics(t, func() { k.store(buf[:Lanes[T]()-1], a) }, "Store %s into a short slice", kind)
}

func TestTypedKernels(t *testing.T) {
	testTypedKernels(t, typedKernels[int8]{
		BroadcastInt8x16, LoadInt8x16, StoreInt8x16, StoreMaskInt8x16, AbsInt8x16,
		AddInt8x16, AndInt8x16, EqualInt8x16, MaskAndInt8x16, AllInt8x16, AnyInt8x16,
	}, Set16[int8](-128, 127, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12), Broadcast[int8](1))
	testTypedKernels(t, typedKernels[int16]{
		BroadcastInt16x8, LoadInt16x8, StoreInt16x8, StoreMaskInt16x8, AbsInt16x8,
		AddInt16x8, AndInt16x8, EqualInt16x8, MaskAndInt16x8, AllInt16x8, AnyInt16x8,
	}, Set8[int16](math.MinInt16, -300, 300, 0, 1, 2, 3, 4), Set8[int16](1, -300, 0, 0, 5, 6, 7, 8))
	testTypedKernels(t, typedKernels[int32]{
		BroadcastInt32x4, LoadInt32x4, StoreInt32x4, StoreMaskInt32x4, AbsInt32x4,
		AddInt32x4, AndInt32x4, EqualInt32x4, MaskAndInt32x4, AllInt32x4, AnyInt32x4,
	}, Set4[int32](math.MinInt32, -7, math.MaxInt32, 0), Set4[int32](math.MinInt32, 7, 1, 0))
	testTypedKernels(t, typedKernels[int64]{
		BroadcastInt64x2, LoadInt64x2, StoreInt64x2, StoreMaskInt64x2, AbsInt64x2,
		AddInt64x2, AndInt64x2, EqualInt64x2, MaskAndInt64x2, AllInt64x2, AnyInt64x2,
	}, Set2[int64](math.MinInt64, -9), Set2[int64](1, -9))
	testTypedKernels(t, typedKernels[uint8]{
		BroadcastUint8x16, LoadUint8x16, StoreUint8x16, StoreMaskUint8x16, AbsUint8x16,
		AddUint8x16, AndUint8x16, EqualUint8x16, MaskAndUint8x16, AllUint8x16, AnyUint8x16,
	}, Broadcast[uint8](255), Broadcast[uint8](1))
	testTypedKernels(t, typedKernels[uint16]{
		BroadcastUint16x8, LoadUint16x8, StoreUint16x8, StoreMaskUint16x8, AbsUint16x8,
		AddUint16x8, AndUint16x8, EqualUint16x8, MaskAndUint16x8, AllUint16x8, AnyUint16x8,
	}, Set8[uint16](0, 1, 2, 3, 4, 5, 6, math.MaxUint16), Set8[uint16](0, 0, 2, 0, 4, 0, 6, 2))
	testTypedKernels(t, typedKernels[uint32]{
		BroadcastUint32x4, LoadUint32x4, StoreUint32x4, StoreMaskUint32x4, AbsUint32x4,
		AddUint32x4, AndUint32x4, EqualUint32x4, MaskAndUint32x4, AllUint32x4, AnyUint32x4,
	}, Set4[uint32](0xDEADBEEF, 1, 2, math.MaxUint32), Set4[uint32](0xFFFF0000, 1, 3, 1))
	testTypedKernels(t, typedKernels[uint64]{
		BroadcastUint64x2, LoadUint64x2, StoreUint64x2, StoreMaskUint64x2, AbsUint64x2,
		AddUint64x2, AndUint64x2, EqualUint64x2, MaskAndUint64x2, AllUint64x2, AnyUint64x2,
	}, Set2[uint64](math.MaxUint64, 1<<63), Set2[uint64](1, 1<<63))
	testTypedKernels(t, typedKernels[float32]{
		BroadcastFloat32x4, LoadFloat32x4, StoreFloat32x4, StoreMaskFloat32x4, AbsFloat32x4,
		AddFloat32x4, AndFloat32x4, EqualFloat32x4, MaskAndFloat32x4, AllFloat32x4, AnyFloat32x4,
	}, Set4[float32](1, -2, 3.5, float32(math.Inf(-1))), Set4[float32](1, 2, -3.5, 0))
	testTypedKernels(t, typedKernels[float64]{
		BroadcastFloat64x2, LoadFloat64x2, StoreFloat64x2, StoreMaskFloat64x2, AbsFloat64x2,
		AddFloat64x2, AndFloat64x2, EqualFloat64x2, MaskAndFloat64x2, AllFloat64x2, AnyFloat64x2,
	}, Set2[float64](math.Pi, -0.5), Set2[float64](math.Pi, 0.5))
}

func TestTypedSet(t *testing.T) {
	assert.Equal(t, Set16[int8](0, -1, 2, -3, 4, -5, 6, -7, 8, -9, 10, -11, 12, -13, 127, -128),
		SetInt8x16(0, -1, 2, -3, 4, -5, 6, -7, 8, -9, 10, -11, 12, -13, 127, -128))
	assert.Equal(t, Set16[uint8](0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 255),
		SetUint8x16(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 255))
	assert.Equal(t, Set8[int16](math.MinInt16, -1, 0, 1, 2, 3, 4, math.MaxInt16),
		SetInt16x8(math.MinInt16, -1, 0, 1, 2, 3, 4, math.MaxInt16))
	assert.Equal(t, Set8[uint16](1, 2, 3, 4, 5, 6, 7, math.MaxUint16), SetUint16x8(1, 2, 3, 4, 5, 6, 7, math.MaxUint16))
	assert.Equal(t, Set4[int32](1, -2, 3, -4), SetInt32x4(1, -2, 3, -4))
	assert.Equal(t, Set4[uint32](7, 0, math.MaxUint32, 1<<31), SetUint32x4(7, 0, math.MaxUint32, 1<<31))
	assert.Equal(t, Set4[float32](1.5, -2, 0, 1e-40), SetFloat32x4(1.5, -2, 0, 1e-40))
	assert.Equal(t, Set2[int64](math.MinInt64, 42), SetInt64x2(math.MinInt64, 42))
	assert.Equal(t, Set2[uint64](0, math.MaxUint64), SetUint64x2(0, math.MaxUint64))
	assert.Equal(t, Set2[float64](math.Pi, -0.5), SetFloat64x2(math.Pi, -0.5))
}

func TestTypedSetMask(t *testing.T) {
	assert.Equal(t, SetMask16[int8](true, false, false, true, false, false, false, false,
		false, false, false, false, false, false, false, true),
		SetMaskInt8x16(true, false, false, true, false, false, false, false,
			false, false, false, false, false, false, false, true))
	assert.Equal(t, SetMask8[uint16](false, true, false, false, false, false, true, false),
		SetMaskUint16x8(false, true, false, false, false, false, true, false))
	assert.Equal(t, SetMask4[float32](true, true, false, true), SetMaskFloat32x4(true, true, false, true))
	assert.Equal(t, SetMask4[int32](false, false, false, false), SetMaskInt32x4(false, false, false, false))
	assert.Equal(t, SetMask2[float64](false, true), SetMaskFloat64x2(false, true))
	assert.Equal(t, SetMask2[uint64](true, true), SetMaskUint64x2(true, true))

	m := SetMaskInt16x8(true, true, true, true, true, true, true, true)
	assert.True(t, AllInt16x8(m))
	assert.Equal(t, uint16(0xFF), m.Bits())
}

func BenchmarkAddInt32x4(b *testing.B) {
	x := BroadcastInt32x4(1)
	y := BroadcastInt32x4(2)
	for i := 0; i < b.N; i++ {
		x = AddInt32x4(x, y)
	}
	_ = x
}

func BenchmarkAbsFloat32x4(b *testing.B) {
	x := SetFloat32x4(-1, 2, -3, 4)
	for i := 0; i < b.N; i++ {
		x = AbsFloat32x4(x)
	}
	_ = x
}
