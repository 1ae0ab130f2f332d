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

package wasm_test

import (
	"fmt"

	"github.com/go-highway/wasm128/hwy"
	"github.com/go-highway/wasm128/hwy/wasm"
)

func ExampleAbs() {
	v := wasm.Set4[float32](1, -2, 3, -0.5)
	fmt.Println(wasm.Abs(v))
	// Output: f32x4[1 2 3 0.5]
}

func ExampleAll() {
	ones := wasm.Broadcast[int8](-1)
	maskTrue := wasm.Equal(ones, ones)
	fmt.Println(wasm.All(wasm.MaskAnd(maskTrue, maskTrue)), wasm.Any(wasm.TailMask[int8](0)))
	// Output: true false
}

func ExampleStoreAligned() {
	dst := hwy.AlignedSlice[int32](4)
	wasm.StoreAligned(dst, wasm.Add(wasm.Set4[int32](1, 2, 3, 4), wasm.Broadcast[int32](10)))
	fmt.Println(dst)
	// Output: [11 12 13 14]
}

func ExampleSetInt16x8() {
	v := wasm.SetInt16x8(1, 2, 3, 4, 5, 6, 7, 8)
	fmt.Println(v.Add(wasm.BroadcastInt16x8(32767)))
	// Output: i16x8[-32768 -32767 -32766 -32765 -32764 -32763 -32762 -32761]
}

func ExampleAddInt32x4() {
	a := wasm.SetInt32x4(1, 2, 3, 2147483647)
	fmt.Println(wasm.AddInt32x4(a, wasm.BroadcastInt32x4(1)))
	// Output: i32x4[2 3 4 -2147483648]
}

func ExampleStoreMaskAligned() {
	dst := hwy.AlignedSlice[int16](8)
	wasm.StoreMaskAligned(dst, wasm.TailMask[int16](3))
	fmt.Println(dst)
	// Output: [-1 -1 -1 0 0 0 0 0]
}
