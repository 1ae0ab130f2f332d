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

// ===== abs =====

// I8x16Abs computes the lane-wise absolute value of 16 signed bytes.
// abs(-128) wraps to -128, as the instruction does.
func I8x16Abs(a V128) V128 {
	var r V128
	for i := range 16 {
		x := int8(a[i])
		if x < 0 {
			x = -x
		}
		r[i] = uint8(x)
	}
	return r
}

// I16x8Abs computes the lane-wise absolute value of 8 int16 lanes.
func I16x8Abs(a V128) V128 {
	var r V128
	for i := range 8 {
		x := int16(a.u16(i))
		if x < 0 {
			x = -x
		}
		r.setU16(i, uint16(x))
	}
	return r
}

// I32x4Abs computes the lane-wise absolute value of 4 int32 lanes.
func I32x4Abs(a V128) V128 {
	var r V128
	for i := range 4 {
		x := int32(a.u32(i))
		if x < 0 {
			x = -x
		}
		r.setU32(i, uint32(x))
	}
	return r
}

// I64x2Abs computes the lane-wise absolute value of 2 int64 lanes.
func I64x2Abs(a V128) V128 {
	var r V128
	for i := range 2 {
		x := int64(a.u64(i))
		if x < 0 {
			x = -x
		}
		r.setU64(i, uint64(x))
	}
	return r
}

// ===== add (modular, sign agnostic) =====

// I8x16Add adds 16 byte lanes modulo 2^8.
func I8x16Add(a, b V128) V128 {
	var r V128
	for i := range 16 {
		r[i] = a[i] + b[i]
	}
	return r
}

// I16x8Add adds 8 lanes modulo 2^16.
func I16x8Add(a, b V128) V128 {
	var r V128
	for i := range 8 {
		r.setU16(i, a.u16(i)+b.u16(i))
	}
	return r
}

// I32x4Add adds 4 lanes modulo 2^32.
func I32x4Add(a, b V128) V128 {
	var r V128
	for i := range 4 {
		r.setU32(i, a.u32(i)+b.u32(i))
	}
	return r
}

// I64x2Add adds 2 lanes modulo 2^64.
func I64x2Add(a, b V128) V128 {
	var r V128
	for i := range 2 {
		r.setU64(i, a.u64(i)+b.u64(i))
	}
	return r
}

// ===== splat =====

// I8x16Splat replicates x into all 16 lanes.
func I8x16Splat(x uint8) V128 {
	var r V128
	for i := range r {
		r[i] = x
	}
	return r
}

// I16x8Splat replicates x into all 8 lanes.
func I16x8Splat(x uint16) V128 {
	var r V128
	for i := range 8 {
		r.setU16(i, x)
	}
	return r
}

// I32x4Splat replicates x into all 4 lanes.
func I32x4Splat(x uint32) V128 {
	var r V128
	for i := range 4 {
		r.setU32(i, x)
	}
	return r
}

// I64x2Splat replicates x into both lanes.
func I64x2Splat(x uint64) V128 {
	var r V128
	r.setU64(0, x)
	r.setU64(1, x)
	return r
}

// ===== make (explicit lanes) =====

// I8x16Make builds a register from 16 byte lanes, lane 0 first.
func I8x16Make(c0, c1, c2, c3, c4, c5, c6, c7, c8, c9, c10, c11, c12, c13, c14, c15 uint8) V128 {
	return V128{c0, c1, c2, c3, c4, c5, c6, c7, c8, c9, c10, c11, c12, c13, c14, c15}
}

// I16x8Make builds a register from 8 lanes, lane 0 first.
func I16x8Make(c0, c1, c2, c3, c4, c5, c6, c7 uint16) V128 {
	var r V128
	r.setU16(0, c0)
	r.setU16(1, c1)
	r.setU16(2, c2)
	r.setU16(3, c3)
	r.setU16(4, c4)
	r.setU16(5, c5)
	r.setU16(6, c6)
	r.setU16(7, c7)
	return r
}

// I32x4Make builds a register from 4 lanes, lane 0 first.
func I32x4Make(c0, c1, c2, c3 uint32) V128 {
	var r V128
	r.setU32(0, c0)
	r.setU32(1, c1)
	r.setU32(2, c2)
	r.setU32(3, c3)
	return r
}

// I64x2Make builds a register from 2 lanes, lane 0 first.
func I64x2Make(c0, c1 uint64) V128 {
	var r V128
	r.setU64(0, c0)
	r.setU64(1, c1)
	return r
}

// ===== eq =====

// I8x16Eq sets each byte lane to 0xFF where a == b and 0x00 elsewhere.
func I8x16Eq(a, b V128) V128 {
	var r V128
	for i := range 16 {
		if a[i] == b[i] {
			r[i] = 0xFF
		}
	}
	return r
}

// I16x8Eq is the 16-bit lane equality compare.
func I16x8Eq(a, b V128) V128 {
	var r V128
	for i := range 8 {
		if a.u16(i) == b.u16(i) {
			r.setU16(i, 0xFFFF)
		}
	}
	return r
}

// I32x4Eq is the 32-bit lane equality compare.
func I32x4Eq(a, b V128) V128 {
	var r V128
	for i := range 4 {
		if a.u32(i) == b.u32(i) {
			r.setU32(i, 0xFFFFFFFF)
		}
	}
	return r
}

// I64x2Eq is the 64-bit lane equality compare.
func I64x2Eq(a, b V128) V128 {
	var r V128
	for i := range 2 {
		if a.u64(i) == b.u64(i) {
			r.setU64(i, ^uint64(0))
		}
	}
	return r
}
