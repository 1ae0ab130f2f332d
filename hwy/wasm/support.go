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

// Op identifies a kernel of this package.
type Op uint8

const (
	OpAbs Op = iota
	OpAdd
	OpAll
	OpAny
	OpBitwiseAnd
	OpBroadcast
	OpSet
	OpSetMask
	OpStoreAligned
	OpLoadAligned
	OpEqual
	OpTailMask
	OpStoreMaskAligned
	numOps
)

var opNames = [numOps]string{
	OpAbs:          "abs",
	OpAdd:          "add",
	OpAll:          "all",
	OpAny:          "any",
	OpBitwiseAnd:   "bitwise_and",
	OpBroadcast:    "broadcast",
	OpSet:          "set",
	OpSetMask:      "set_mask",
	OpStoreAligned: "store_aligned",
	OpLoadAligned:  "load_aligned",
	OpEqual:        "eq",
	OpTailMask:     "tail_mask",

	OpStoreMaskAligned: "store_mask_aligned",
}

// AllOps lists every kernel in declaration order.
var AllOps = func() []Op {
	ops := make([]Op, numOps)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}()

func (op Op) String() string {
	if op >= numOps {
		return "unknown"
	}
	return opNames[op]
}

// needsLaneArith marks the kernels that route through a typed instruction
// (iNxM/fNxM) and therefore need an instruction for the lane type. The rest
// only depend on the lane width.
var needsLaneArith = [numOps]bool{
	OpAbs:       true,
	OpAdd:       true,
	OpBroadcast: true,
	OpSet:       true,
	OpEqual:     true,
}

// Supports reports whether op has an instruction for lanes of kind k.
// Kernels called with a combination that is not supported report it through
// hwy.Unsupported and return a zero value.
func Supports(op Op, k hwy.Kind) bool {
	if op >= numOps || k.Size() == 0 {
		return false
	}
	if !needsLaneArith[op] {
		return true
	}
	// SIMD128 has no 16-bit float arithmetic.
	return k.Category() != hwy.CategoryFloat || k.Size() >= 4
}
