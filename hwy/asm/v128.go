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

//go:build 386 || amd64 || arm || arm64 || loong64 || mips64le || mipsle || ppc64le || riscv64 || wasm

// Package asm provides the WebAssembly SIMD128 instruction set as Go
// functions over a 128-bit register value.
//
// Each exported function corresponds to exactly one SIMD128 instruction
// (i8x16.abs, i32x4.add, v128.and, i8x16.bitmask, ...) and reproduces its
// lane semantics bit for bit: integer arithmetic wraps, float arithmetic
// follows IEEE-754 as Go implements it, and abs on floats only clears the
// sign bit. Lane i of an NxM register occupies bytes [i*M, (i+1)*M) in
// little-endian order, matching the WebAssembly memory layout.
//
// V128Store and V128Load copy the register bytes to and from Go memory
// unchanged, and the kernel package reads lanes by viewing the register as a
// []T. Both are the WebAssembly layout only when the host is little endian,
// so the package builds only for little-endian GOARCH values.
//
// The functions are pure and allocation free. Callers are expected to go
// through the hwy/wasm kernel set, which selects the instruction for a
// given element type and width.
package asm

import (
	"encoding/binary"
	"math"
)

// V128 is a 128-bit SIMD register.
// Uses [16]byte backing so the value has no alignment requirement of its own
// and can be copied to and from memory as a single block.
type V128 [16]byte

// Lane accessors. They are the register's view as a given lane shape and are
// shared by all the instruction implementations.

func (v *V128) i8(i int) int8    { return int8(v[i]) }
func (v *V128) u16(i int) uint16 { return binary.LittleEndian.Uint16(v[2*i:]) }
func (v *V128) u32(i int) uint32 { return binary.LittleEndian.Uint32(v[4*i:]) }
func (v *V128) u64(i int) uint64 { return binary.LittleEndian.Uint64(v[8*i:]) }

func (v *V128) setU16(i int, x uint16) { binary.LittleEndian.PutUint16(v[2*i:], x) }
func (v *V128) setU32(i int, x uint32) { binary.LittleEndian.PutUint32(v[4*i:], x) }
func (v *V128) setU64(i int, x uint64) { binary.LittleEndian.PutUint64(v[8*i:], x) }

// I8x16ExtractLane returns lane i as a signed byte (i8x16.extract_lane_s).
func I8x16ExtractLane(v V128, i int) int8 { return v.i8(i) }

// U8x16ExtractLane returns lane i as an unsigned byte (i8x16.extract_lane_u).
func U8x16ExtractLane(v V128, i int) uint8 { return v[i] }

// I16x8ExtractLane returns lane i as int16 (i16x8.extract_lane_s).
func I16x8ExtractLane(v V128, i int) int16 { return int16(v.u16(i)) }

// U16x8ExtractLane returns lane i as uint16 (i16x8.extract_lane_u).
func U16x8ExtractLane(v V128, i int) uint16 { return v.u16(i) }

// I32x4ExtractLane returns lane i as int32 (i32x4.extract_lane).
func I32x4ExtractLane(v V128, i int) int32 { return int32(v.u32(i)) }

// U32x4ExtractLane returns lane i reinterpreted as uint32.
func U32x4ExtractLane(v V128, i int) uint32 { return v.u32(i) }

// I64x2ExtractLane returns lane i as int64 (i64x2.extract_lane).
func I64x2ExtractLane(v V128, i int) int64 { return int64(v.u64(i)) }

// U64x2ExtractLane returns lane i reinterpreted as uint64.
func U64x2ExtractLane(v V128, i int) uint64 { return v.u64(i) }

// F32x4ExtractLane returns lane i as float32 (f32x4.extract_lane).
func F32x4ExtractLane(v V128, i int) float32 { return math.Float32frombits(v.u32(i)) }

// F64x2ExtractLane returns lane i as float64 (f64x2.extract_lane).
func F64x2ExtractLane(v V128, i int) float64 { return math.Float64frombits(v.u64(i)) }
