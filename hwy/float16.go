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

package hwy

import "math"

// Float16 is an IEEE 754 half-precision (binary16) value stored in its
// uint16 bit pattern: sign (1) | exponent (5, bias 15) | mantissa (10).
//
// It classifies as KindFloat16. Backends without half-precision arithmetic
// treat it as an unsupported float width for arithmetic and broadcast, while
// width-agnostic kernels (bitwise, masks, stores) move its bits like any
// 16-bit lane.
type Float16 uint16

// Float16 special values.
const (
	Float16Zero    Float16 = 0x0000
	Float16NegZero Float16 = 0x8000
	Float16One     Float16 = 0x3C00
	Float16Inf     Float16 = 0x7C00
	Float16NegInf  Float16 = 0xFC00
	Float16NaN     Float16 = 0x7E00
)

// Float32 widens h to float32. Every Float16 value is exactly representable.
func (h Float16) Float32() float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	switch {
	case exp == 0x1F:
		// Inf keeps a zero mantissa, NaN keeps its payload.
		return math.Float32frombits(sign | 0x7F800000 | mant<<13)
	case exp != 0:
		return math.Float32frombits(sign | (exp+127-15)<<23 | mant<<13)
	case mant == 0:
		return math.Float32frombits(sign)
	}
	// Subnormal: value is mant * 2^-24.
	f := float32(mant) * (1.0 / (1 << 24))
	return math.Float32frombits(sign | math.Float32bits(f))
}

// NewFloat16 rounds f to the nearest Float16, ties to even. Values beyond
// the finite range become infinities; NaN stays NaN.
func NewFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp := int32(bits>>23&0xFF) - 127 + 15
	mant := bits & 0x7FFFFF

	if bits&0x7F800000 == 0x7F800000 {
		if mant != 0 {
			return Float16(sign | 0x7E00 | uint16(mant>>13))
		}
		return Float16(sign | 0x7C00)
	}
	if exp >= 0x1F {
		return Float16(sign | 0x7C00)
	}

	shift := uint32(13)
	if exp <= 0 {
		if exp < -10 {
			return Float16(sign)
		}
		// Make the implicit bit explicit and shift into subnormal position.
		mant |= 0x800000
		shift += uint32(1 - exp)
		exp = 0
	}

	half := uint32(1) << (shift - 1)
	rest := mant & (half<<1 - 1)
	out := uint32(exp)<<10 + mant>>shift
	if rest > half || (rest == half && out&1 != 0) {
		// Carry may roll the mantissa into the exponent, which is the
		// correctly rounded result (up to infinity).
		out++
	}
	return Float16(sign | uint16(out))
}

// IsNaN reports whether h is a NaN.
func (h Float16) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&0x3FF != 0
}

// Bits returns the raw uint16 representation.
func (h Float16) Bits() uint16 {
	return uint16(h)
}
