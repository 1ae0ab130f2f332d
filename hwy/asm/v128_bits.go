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

import (
	"encoding/binary"
	"unsafe"
)

// V128And is the whole-register bitwise AND. Lane shape does not matter.
func V128And(a, b V128) V128 {
	lo := binary.LittleEndian.Uint64(a[0:8]) & binary.LittleEndian.Uint64(b[0:8])
	hi := binary.LittleEndian.Uint64(a[8:16]) & binary.LittleEndian.Uint64(b[8:16])
	var r V128
	binary.LittleEndian.PutUint64(r[0:8], lo)
	binary.LittleEndian.PutUint64(r[8:16], hi)
	return r
}

// I8x16Bitmask gathers the most significant bit of each byte lane into
// bits 0..15 of the result.
//
// Algorithm:
//  1. Move each byte's bit 7 to bit 0 and mask with 0x0101010101010101
//  2. Multiply by 0x0102040810204080: byte k's bit lands at bit 56+k
//  3. Shift right by 56 to get the 8-bit mask of each half
func I8x16Bitmask(a V128) uint16 {
	const (
		lsb   = 0x0101010101010101
		magic = 0x0102040810204080
	)
	lo := (binary.LittleEndian.Uint64(a[0:8]) >> 7) & lsb
	hi := (binary.LittleEndian.Uint64(a[8:16]) >> 7) & lsb
	lo = (lo * magic) >> 56
	hi = (hi * magic) >> 56
	return uint16(lo | hi<<8)
}

// I16x8Bitmask gathers the sign bit of each 16-bit lane into bits 0..7.
func I16x8Bitmask(a V128) uint8 {
	var m uint8
	for i := range 8 {
		m |= uint8(a.u16(i)>>15) << i
	}
	return m
}

// I32x4Bitmask gathers the sign bit of each 32-bit lane into bits 0..3.
func I32x4Bitmask(a V128) uint8 {
	var m uint8
	for i := range 4 {
		m |= uint8(a.u32(i)>>31) << i
	}
	return m
}

// I64x2Bitmask gathers the sign bit of each 64-bit lane into bits 0..1.
func I64x2Bitmask(a V128) uint8 {
	return uint8(a.u64(0)>>63) | uint8(a.u64(1)>>63)<<1
}

// V128Store writes all 16 bytes of v to p (v128.store).
// p must point to at least 16 writable bytes. The register is moved as one
// block; no alignment is checked.
func V128Store(p unsafe.Pointer, v V128) {
	*(*V128)(p) = v
}

// V128Load reads 16 bytes starting at p (v128.load).
func V128Load(p unsafe.Pointer) V128 {
	return *(*V128)(p)
}
