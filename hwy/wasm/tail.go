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

// ProcessWithTail walks size elements of T in whole registers.
//
// fullFn is called with the offset of every full vector. If size is not a
// multiple of Lanes[T](), tailFn is called once with the offset and length
// of the remainder; TailMask[T](count) selects its valid lanes.
//
// Example:
//
//	ProcessWithTail[float32](len(a),
//	    func(off int) {
//	        StoreAligned(out[off:], Add(LoadAligned(a[off:]), LoadAligned(b[off:])))
//	    },
//	    func(off, count int) {
//	        for i := off; i < off+count; i++ {
//	            out[i] = a[i] + b[i]
//	        }
//	    },
//	)
func ProcessWithTail[T hwy.Lanes](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	n := Lanes[T]()
	full := size / n
	for i := range full {
		fullFn(i * n)
	}
	if rem := size % n; rem > 0 {
		tailFn(full*n, rem)
	}
}

// AlignedSize rounds size up to a whole number of vectors of T.
func AlignedSize[T hwy.Lanes](size int) int {
	n := Lanes[T]()
	return (size + n - 1) / n * n
}
