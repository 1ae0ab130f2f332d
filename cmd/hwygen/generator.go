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
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

const generatedHeader = "// Code generated by hwygen. DO NOT EDIT.\n"

// typeNameToSuffix converts an element type name to a valid identifier
// prefix. E.g., "float64" -> "Float64", "hwy.Float16" -> "Float16".
func typeNameToSuffix(elemType string) string {
	if idx := strings.LastIndex(elemType, "."); idx >= 0 {
		elemType = elemType[idx+1:]
	}
	return cases.Title(language.English).String(elemType)
}

// vecTypeName returns the alias name of the vector of elemType, e.g.
// "Int32x4".
func vecTypeName(t Target, elemType string) string {
	return fmt.Sprintf("%sx%d", typeNameToSuffix(elemType), t.LanesFor(elemType))
}

// Generator writes the typed aliases and constructors for one target.
type Generator struct {
	Output     string   // Output file path; "" writes to stdout
	PackageOut string   // Output package name
	Target     Target   // Register description
	Types      []string // Lane types, in generation order
	Verbose    bool
}

// Run generates the source and writes it to g.Output.
func (g *Generator) Run() error {
	src, err := g.Generate()
	if err != nil {
		return err
	}
	if g.Output == "" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(g.Output, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", g.Output, err)
	}
	if g.Verbose {
		slog.Debug("hwygen: wrote file", "path", g.Output, "types", len(g.Types), "bytes", len(src))
	}
	return nil
}

// Generate returns the formatted Go source.
func (g *Generator) Generate() ([]byte, error) {
	if g.PackageOut == "" {
		return nil, fmt.Errorf("package name is required")
	}
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "\npackage %s\n", g.PackageOut)
	fmt.Fprintf(&buf, "\nimport (\n\t\"unsafe\"\n\n\t%q\n)\n", g.Target.InstrPackage)
	for _, elem := range g.Types {
		if err := g.emitType(&buf, elem); err != nil {
			return nil, err
		}
	}

	name := "generated.go"
	if g.Output != "" {
		name = filepath.Base(g.Output)
	}
	formatted, err := imports.Process(name, buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w\n%s", err, buf.String())
	}
	return formatted, nil
}

// maskLaneFuncs names the helpers that turn a bool into a mask lane of the
// given byte width.
var maskLaneFuncs = map[int]string{1: "maskLane8", 2: "maskLane16", 4: "maskLane32", 8: "maskLane64"}

// allLanesConsts names the bitmask with every lane set, per byte width.
var allLanesConsts = map[int]string{1: "allLanes8", 2: "allLanes16", 4: "allLanes32", 8: "allLanes64"}

// emitType writes the aliases and the concrete kernels of one lane type.
// Every kernel body is a single instruction of g.Target.InstrPackage, so
// the lane type is fixed at compile time.
func (g *Generator) emitType(buf *bytes.Buffer, elem string) error {
	n := g.Target.LanesFor(elem)
	if n == 0 {
		return fmt.Errorf("no %s lanes on %s", elem, g.Target.Name)
	}
	size := g.Target.ElemSizes[elem]
	vec := vecTypeName(g.Target, elem)
	mask := "Mask" + vec
	shape := g.Target.laneShape(elem)
	instr := strings.ToLower(shape)
	bits := g.Target.laneBits(elem)
	article := "a"
	if strings.ContainsAny(vec[:1], "AEIO") {
		article = "an"
	}
	conv := func(x string) string {
		if bits == elem {
			return x
		}
		return bits + "(" + x + ")"
	}

	lanes := lo.Times(n, func(i int) string { return fmt.Sprintf("v%d", i) })
	bools := lo.Times(n, func(i int) string { return fmt.Sprintf("b%d", i) })

	fmt.Fprintf(buf, "\n// %s is a vector of %d %s lanes.\n", vec, n, elem)
	fmt.Fprintf(buf, "type %s = Vec[%s]\n", vec, elem)
	fmt.Fprintf(buf, "\n// %s is a mask over %d %s lanes.\n", mask, n, elem)
	fmt.Fprintf(buf, "type %s = Mask[%s]\n", mask, elem)

	fmt.Fprintf(buf, "\n// Set%s builds %s %s from %d lanes, lane 0 first (%s.make).\n", vec, article, vec, n, instr)
	fmt.Fprintf(buf, "func Set%s(%s %s) %s {\n", vec, strings.Join(lanes, ", "), elem, vec)
	fmt.Fprintf(buf, "\treturn %s{r: asm.%sMake(%s)}\n}\n", vec, shape, strings.Join(lo.Map(lanes, func(x string, _ int) string { return conv(x) }), ", "))

	fmt.Fprintf(buf, "\n// SetMask%s builds a %s from %d booleans, lane 0 first.\n", vec, mask, n)
	fmt.Fprintf(buf, "func SetMask%s(%s bool) %s {\n", vec, strings.Join(bools, ", "), mask)
	fmt.Fprintf(buf, "\treturn %s{r: asm.I%dx%dMake(%s)}\n}\n", mask, 8*size, n,
		strings.Join(lo.Map(bools, func(b string, _ int) string { return maskLaneFuncs[size] + "(" + b + ")" }), ", "))

	fmt.Fprintf(buf, "\n// Broadcast%s returns %s %s with every lane set to s (%s.splat).\n", vec, article, vec, instr)
	fmt.Fprintf(buf, "func Broadcast%s(s %s) %s {\n\treturn %s{r: asm.%sSplat(%s)}\n}\n", vec, elem, vec, vec, shape, conv("s"))

	fmt.Fprintf(buf, "\n// Load%s reads %s %s from an aligned slice (v128.load).\n", vec, article, vec)
	fmt.Fprintf(buf, "func Load%s(src []%s) %s {\n", vec, elem, vec)
	fmt.Fprintf(buf, "\t_ = src[%d]\n\treturn %s{r: asm.V128Load(unsafe.Pointer(&src[0]))}\n}\n", n-1, vec)

	fmt.Fprintf(buf, "\n// Store%s writes v to an aligned slice (v128.store).\n", vec)
	fmt.Fprintf(buf, "func Store%s(dst []%s, v %s) {\n", vec, elem, vec)
	fmt.Fprintf(buf, "\t_ = dst[%d]\n\tasm.V128Store(unsafe.Pointer(&dst[0]), v.r)\n}\n", n-1)

	fmt.Fprintf(buf, "\n// StoreMask%s writes the lanes of m, all ones or zero, to an aligned slice.\n", vec)
	fmt.Fprintf(buf, "func StoreMask%s(dst []%s, m %s) {\n", vec, elem, mask)
	fmt.Fprintf(buf, "\t_ = dst[%d]\n\tasm.V128Store(unsafe.Pointer(&dst[0]), m.r)\n}\n", n-1)

	if strings.HasPrefix(elem, "uint") {
		fmt.Fprintf(buf, "\n// Abs%s returns v: unsigned lanes are their own absolute value.\n", vec)
		fmt.Fprintf(buf, "func Abs%s(v %s) %s {\n\treturn v\n}\n", vec, vec, vec)
	} else {
		fmt.Fprintf(buf, "\n// Abs%s computes the absolute value of each lane (%s.abs).\n", vec, instr)
		fmt.Fprintf(buf, "func Abs%s(v %s) %s {\n\treturn %s{r: asm.%sAbs(v.r)}\n}\n", vec, vec, vec, vec, shape)
	}

	fmt.Fprintf(buf, "\n// Add%s adds a and b lane by lane (%s.add).\n", vec, instr)
	fmt.Fprintf(buf, "func Add%s(a, b %s) %s {\n\treturn %s{r: asm.%sAdd(a.r, b.r)}\n}\n", vec, vec, vec, vec, shape)

	fmt.Fprintf(buf, "\n// And%s computes a & b (v128.and).\n", vec)
	fmt.Fprintf(buf, "func And%s(a, b %s) %s {\n\treturn %s{r: asm.V128And(a.r, b.r)}\n}\n", vec, vec, vec, vec)

	fmt.Fprintf(buf, "\n// Equal%s compares a and b lane by lane (%s.eq).\n", vec, instr)
	fmt.Fprintf(buf, "func Equal%s(a, b %s) %s {\n\treturn %s{r: asm.%sEq(a.r, b.r)}\n}\n", vec, vec, mask, mask, shape)

	fmt.Fprintf(buf, "\n// MaskAnd%s computes the lane-wise AND of two masks (v128.and).\n", vec)
	fmt.Fprintf(buf, "func MaskAnd%s(a, b %s) %s {\n\treturn %s{r: asm.V128And(a.r, b.r)}\n}\n", vec, mask, mask, mask)

	bitmask := fmt.Sprintf("asm.I%dx%dBitmask(m.r)", 8*size, n)
	fmt.Fprintf(buf, "\n// All%s reports whether every lane of m is true.\n", vec)
	fmt.Fprintf(buf, "func All%s(m %s) bool {\n\treturn %s == %s\n}\n", vec, mask, bitmask, allLanesConsts[size])

	fmt.Fprintf(buf, "\n// Any%s reports whether at least one lane of m is true.\n", vec)
	fmt.Fprintf(buf, "func Any%s(m %s) bool {\n\treturn %s != 0\n}\n", vec, mask, bitmask)
	return nil
}
