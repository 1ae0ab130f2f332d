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

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Target describes the vector register the typed surface is generated for.
type Target struct {
	Name     string // "WASM128"
	VecWidth int    // bytes per register
	// ElemSizes maps each supported lane type to its size in bytes.
	ElemSizes map[string]int
	// InstrPackage is the import path of the package providing one Go
	// function per instruction.
	InstrPackage string
}

// WASM128Target returns the SIMD128 register description.
func WASM128Target() Target {
	return Target{
		Name:         "WASM128",
		VecWidth:     16,
		InstrPackage: "github.com/go-highway/wasm128/hwy/asm",
		ElemSizes: map[string]int{
			"int8":    1,
			"int16":   2,
			"int32":   4,
			"int64":   8,
			"uint8":   1,
			"uint16":  2,
			"uint32":  4,
			"uint64":  8,
			"float32": 4,
			"float64": 8,
		},
	}
}

// DefaultTypes is the generation order of the lane types.
var DefaultTypes = []string{
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
	"float32", "float64",
}

// LanesFor returns the number of lanes of elemType, or 0 if the target has
// no such lane type.
func (t Target) LanesFor(elemType string) int {
	size, ok := t.ElemSizes[elemType]
	if !ok {
		return 0
	}
	return t.VecWidth / size
}

// parseTypes splits a comma-separated list of lane types, keeping the
// DefaultTypes order and dropping duplicates. "all" selects every type.
func parseTypes(t Target, s string) ([]string, error) {
	parts := lo.Uniq(lo.Compact(lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})))
	if len(parts) == 1 && parts[0] == "all" {
		return slices.Clone(DefaultTypes), nil
	}
	if unknown := lo.Filter(parts, func(p string, _ int) bool { return t.LanesFor(p) == 0 }); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown lane types for %s: %s", t.Name, strings.Join(unknown, ","))
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no lane types given")
	}
	return lo.Filter(DefaultTypes, func(d string, _ int) bool { return slices.Contains(parts, d) }), nil
}

func isFloat(elemType string) bool {
	return strings.HasPrefix(elemType, "float")
}

// laneShape returns the instruction prefix for elemType's lane shape, e.g.
// "I32x4" for int32 and uint32, "F64x2" for float64.
func (t Target) laneShape(elemType string) string {
	size := t.ElemSizes[elemType]
	return fmt.Sprintf("%s%dx%d", lo.Ternary(isFloat(elemType), "F", "I"), 8*size, t.VecWidth/size)
}

// laneBits returns the scalar type the make/splat instructions take for
// elemType: the unsigned integer of the same width, or the float itself.
func (t Target) laneBits(elemType string) string {
	if isFloat(elemType) {
		return elemType
	}
	return fmt.Sprintf("uint%d", 8*t.ElemSizes[elemType])
}
