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

// Command hwygen generates the concrete typed surface of the SIMD128 kernel
// package: one alias per lane type (Int32x4 = Vec[int32]) plus constructors
// whose signatures fix both the lane type and the lane count.
//
// Usage:
//
//	hwygen -out zz_types_generated.go -pkg wasm
//	hwygen -pkg wasm -types float32,float64   # prints to stdout
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/hwygen -out zz_types_generated.go -pkg wasm
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

var (
	outputFile = flag.String("out", "", "Output file (default: stdout)")
	packageOut = flag.String("pkg", "", "Output package name (required)")
	types      = flag.String("types", "all", "Comma-separated lane types ("+strings.Join(DefaultTypes, ",")+") or 'all'")
	verbose    = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Parse()

	if *packageOut == "" {
		fmt.Fprintf(os.Stderr, "Error: -pkg flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	target := WASM128Target()
	typeList, err := parseTypes(target, *types)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gen := &Generator{
		Output:     *outputFile,
		PackageOut: *packageOut,
		Target:     target,
		Types:      typeList,
		Verbose:    *verbose,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		fmt.Printf("Successfully generated %d lane types for %s\n", len(typeList), target.Name)
	}
}
