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

import "unsafe"

// Tag identifies a backend register shape. Backend dispatch tags are
// zero-size types implementing it; they carry no runtime data and exist so
// that the compiler resolves calls to one backend's kernel set.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("wasm128", "neon", etc.)
	Name() string
}

// FixedTag128 describes a 128-bit register holding lanes of T
// (SSE, NEON, WebAssembly SIMD128).
type FixedTag128[T Lanes] struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128[T]) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128[T]) Name() string {
	return "128bit"
}

// MaxLanes returns the number of T values that fit in 128 bits.
func (t FixedTag128[T]) MaxLanes() int {
	var dummy T
	return 16 / int(unsafe.Sizeof(dummy))
}

// Kind returns the lane kind of T.
func (FixedTag128[T]) Kind() Kind {
	return KindOf[T]()
}
