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
	"unsafe"

	"github.com/go-highway/wasm128/hwy"
	"github.com/go-highway/wasm128/hwy/asm"
)

func TestLanes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"int8", Lanes[int8](), 16},
		{"uint16", Lanes[uint16](), 8},
		{"float16", Lanes[hwy.Float16](), 8},
		{"int32", Lanes[int32](), 4},
		{"float32", Lanes[float32](), 4},
		{"uint64", Lanes[uint64](), 2},
		{"float64", Lanes[float64](), 2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Lanes[%s]() = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestArchTag(t *testing.T) {
	var tag hwy.Tag = Arch{}
	if tag.Width() != 16 || tag.Name() != "wasm128" {
		t.Errorf("Arch = {Width: %d, Name: %q}", tag.Width(), tag.Name())
	}
	if Broadcast[int8](1).Tag() != (Arch{}) {
		t.Error("Vec.Tag() is not Arch{}")
	}
	if unsafe.Sizeof(Arch{}) != 0 {
		t.Errorf("Arch has size %d, want 0", unsafe.Sizeof(Arch{}))
	}
	if got := (hwy.FixedTag128[float32]{}).MaxLanes(); got != Lanes[float32]() {
		t.Errorf("FixedTag128[float32].MaxLanes() = %d, want %d", got, Lanes[float32]())
	}
}

func TestVecIsRegisterSized(t *testing.T) {
	if s := unsafe.Sizeof(Vec[int8]{}); s != RegisterBytes {
		t.Errorf("sizeof(Vec[int8]) = %d, want %d", s, RegisterBytes)
	}
	if s := unsafe.Sizeof(Mask[float64]{}); s != RegisterBytes {
		t.Errorf("sizeof(Mask[float64]) = %d, want %d", s, RegisterBytes)
	}
}

func TestVecString(t *testing.T) {
	if got := Set4[float32](1, 2, 3, 0).String(); got != "f32x4[1 2 3 0]" {
		t.Errorf("String() = %q", got)
	}
	if got := Set2[int64](-1, 7).String(); got != "i64x2[-1 7]" {
		t.Errorf("String() = %q", got)
	}
	if got := SetMask4[uint32](true, false, true, true).String(); got != "mask32x4[1 0 1 1]" {
		t.Errorf("Mask.String() = %q", got)
	}
}

func TestDataIsACopy(t *testing.T) {
	v := Set4[int32](1, 2, 3, 4)
	d := v.Data()
	d[0] = 100
	if v.Get(0) != 1 {
		t.Errorf("modifying Data() changed the vector: %v", v)
	}
}

func TestGetOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Get(4) on 4 lanes did not panic")
		}
	}()
	Broadcast[float32](1).Get(4)
}

// Lane readback must agree with the little-endian register layout that the
// instructions define.
func TestLaneByteOrder(t *testing.T) {
	v := Set8[int16](1, 0x0102, -2, 0, 0, 0, 0, math.MinInt16)
	raw := v.Raw()
	if raw[0] != 0x01 || raw[1] != 0x00 || raw[2] != 0x02 || raw[3] != 0x01 {
		t.Errorf("Set8 bytes = % x, want 01 00 02 01 ...", raw[:4])
	}
	for i := range v.NumLanes() {
		if got, want := v.Get(i), asm.I16x8ExtractLane(raw, i); got != want {
			t.Errorf("Get(%d) = %v, i16x8.extract_lane = %v", i, got, want)
		}
	}
	if v.Get(0) != 1 {
		t.Errorf("Set8[int16](1, ...).Get(0) = %v, want 1", v.Get(0))
	}

	f := Set2[float64](math.Pi, -0.5)
	for i, want := range []float64{asm.F64x2ExtractLane(f.Raw(), 0), asm.F64x2ExtractLane(f.Raw(), 1)} {
		if f.Get(i) != want {
			t.Errorf("Set2[float64].Get(%d) = %v, f64x2.extract_lane = %v", i, f.Get(i), want)
		}
	}

	dst := hwy.AlignedSlice[uint32](4)
	StoreAligned(dst, Set4[uint32](0xA0B0C0D0, 1, 2, 3))
	if dst[0] != 0xA0B0C0D0 {
		t.Errorf("stored lane 0 = %#x, want 0xa0b0c0d0", dst[0])
	}
}
