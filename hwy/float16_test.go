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

import (
	"math"
	"testing"
)

// TestFloat16Constants verifies the predefined Float16 constants.
func TestFloat16Constants(t *testing.T) {
	tests := []struct {
		name     string
		value    Float16
		expected float32
	}{
		{"Zero", Float16Zero, 0.0},
		{"One", Float16One, 1.0},
		{"Inf", Float16Inf, float32(math.Inf(1))},
		{"NegInf", Float16NegInf, float32(math.Inf(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.value.Float32()
			if got != tt.expected {
				t.Errorf("Float16%s: got %v, want %v", tt.name, got, tt.expected)
			}
		})
	}

	if !math.Signbit(float64(Float16NegZero.Float32())) {
		t.Error("Float16NegZero should widen to -0")
	}
	if !Float16NaN.IsNaN() || Float16Inf.IsNaN() {
		t.Error("IsNaN misclassifies NaN or Inf")
	}
}

func TestNewFloat16(t *testing.T) {
	tests := []struct {
		in   float32
		want Float16
	}{
		{0, 0x0000},
		{1, 0x3C00},
		{-2, 0xC000},
		{0.5, 0x3800},
		{65504, 0x7BFF},                   // max finite
		{65520, 0x7C00},                   // rounds up to Inf
		{1e6, 0x7C00},                     // overflow
		{6.103515625e-05, 0x0400},         // min normal
		{5.960464477539063e-08, 0x0001},   // min subnormal
		{2.98023223876953125e-08, 0x0000}, // half of min subnormal, ties to even
		{1e-10, 0x0000},                   // underflow
		{1.0009765625, 0x3C01},            // 1 + 2^-10
		{1.00048828125, 0x3C00},           // 1 + 2^-11, tie rounds to even
		{1.00146484375, 0x3C02},           // 1 + 3*2^-11, tie rounds to even
	}
	for _, tt := range tests {
		if got := NewFloat16(tt.in); got != tt.want {
			t.Errorf("NewFloat16(%v) = %#04x, want %#04x", tt.in, uint16(got), uint16(tt.want))
		}
	}
	if h := NewFloat16(float32(math.NaN())); !h.IsNaN() {
		t.Errorf("NewFloat16(NaN) = %#04x, not NaN", uint16(h))
	}
	if h := NewFloat16(float32(math.Inf(-1))); h != Float16NegInf {
		t.Errorf("NewFloat16(-Inf) = %#04x", uint16(h))
	}
}

// Every non-NaN Float16 widens exactly and narrows back to itself.
func TestFloat16RoundTrip(t *testing.T) {
	for i := 0; i <= math.MaxUint16; i++ {
		h := Float16(i)
		if h.IsNaN() {
			continue
		}
		if got := NewFloat16(h.Float32()); got != h {
			t.Fatalf("NewFloat16(Float16(%#04x).Float32()) = %#04x", i, uint16(got))
		}
	}
}

func BenchmarkNewFloat16(b *testing.B) {
	var sink Float16
	for i := 0; i < b.N; i++ {
		sink ^= NewFloat16(float32(i) * 0.001)
	}
	_ = sink
}
