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

package asm

import "math"

const (
	f32SignMask = 0x80000000
	f64SignMask = 0x8000000000000000
)

// F32x4Abs clears the sign bit of each float32 lane.
// NaN payloads pass through unchanged.
func F32x4Abs(a V128) V128 {
	var r V128
	for i := range 4 {
		r.setU32(i, a.u32(i)&^f32SignMask)
	}
	return r
}

// F64x2Abs clears the sign bit of each float64 lane.
func F64x2Abs(a V128) V128 {
	var r V128
	for i := range 2 {
		r.setU64(i, a.u64(i)&^f64SignMask)
	}
	return r
}

// F32x4Add performs IEEE-754 addition on 4 float32 lanes.
func F32x4Add(a, b V128) V128 {
	var r V128
	for i := range 4 {
		s := math.Float32frombits(a.u32(i)) + math.Float32frombits(b.u32(i))
		r.setU32(i, math.Float32bits(s))
	}
	return r
}

// F64x2Add performs IEEE-754 addition on 2 float64 lanes.
func F64x2Add(a, b V128) V128 {
	var r V128
	for i := range 2 {
		s := math.Float64frombits(a.u64(i)) + math.Float64frombits(b.u64(i))
		r.setU64(i, math.Float64bits(s))
	}
	return r
}

// F32x4Splat replicates x into all 4 lanes.
func F32x4Splat(x float32) V128 {
	return I32x4Splat(math.Float32bits(x))
}

// F64x2Splat replicates x into both lanes.
func F64x2Splat(x float64) V128 {
	return I64x2Splat(math.Float64bits(x))
}

// F32x4Make builds a register from 4 float32 lanes, lane 0 first.
func F32x4Make(c0, c1, c2, c3 float32) V128 {
	return I32x4Make(math.Float32bits(c0), math.Float32bits(c1), math.Float32bits(c2), math.Float32bits(c3))
}

// F64x2Make builds a register from 2 float64 lanes, lane 0 first.
func F64x2Make(c0, c1 float64) V128 {
	return I64x2Make(math.Float64bits(c0), math.Float64bits(c1))
}

// F32x4Eq compares 4 float32 lanes with IEEE equality: NaN != NaN, -0 == +0.
func F32x4Eq(a, b V128) V128 {
	var r V128
	for i := range 4 {
		if math.Float32frombits(a.u32(i)) == math.Float32frombits(b.u32(i)) {
			r.setU32(i, 0xFFFFFFFF)
		}
	}
	return r
}

// F64x2Eq compares 2 float64 lanes with IEEE equality.
func F64x2Eq(a, b V128) V128 {
	var r V128
	for i := range 2 {
		if math.Float64frombits(a.u64(i)) == math.Float64frombits(b.u64(i)) {
			r.setU64(i, ^uint64(0))
		}
	}
	return r
}
