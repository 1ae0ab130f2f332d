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

import "github.com/go-highway/wasm128/hwy"

// RegisterBytes is the SIMD128 register width.
const RegisterBytes = 16

// targetName identifies this backend in diagnostics.
const targetName = "wasm128"

// Arch is the dispatch tag of this kernel set. It is zero-size: it selects
// the backend through its type and never carries data.
type Arch struct{}

var _ hwy.Tag = Arch{}

// Width returns 16 bytes (128 bits).
func (Arch) Width() int { return RegisterBytes }

// Name returns "wasm128".
func (Arch) Name() string { return targetName }

// Lanes returns the number of T lanes in a SIMD128 register:
// 16 for 1-byte lanes, 8 for 2-byte, 4 for 4-byte, 2 for 8-byte.
func Lanes[T hwy.Lanes]() int {
	return hwy.LanesFor[T](RegisterBytes)
}

// reportUnsupported reports op on lanes of T. It only returns under
// hwy.PolicyZero.
func reportUnsupported[T hwy.Lanes](op Op) {
	hwy.Unsupported(targetName, op.String(), hwy.KindOf[T]())
}

// unsupported reports op on lanes of T and returns the zero vector under
// hwy.PolicyZero.
func unsupported[T hwy.Lanes](op Op) Vec[T] {
	reportUnsupported[T](op)
	return Vec[T]{}
}
