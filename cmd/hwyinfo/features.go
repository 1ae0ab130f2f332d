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
	"io"
	"runtime"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"

	"github.com/go-highway/wasm128/hwy"
)

type feature struct {
	Name string
	Has  bool
	Note string
}

func arm64Features() []feature {
	return []feature{
		{"HasASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"HasFP", cpu.ARM64.HasFP, "Floating point"},
		{"HasFPHP", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
		{"HasASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"HasSVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"HasSVE2", cpu.ARM64.HasSVE2, "SVE2"},
		{"HasATOMICS", cpu.ARM64.HasATOMICS, "Large System Extensions"},
	}
}

func amd64Features() []feature {
	return []feature{
		{"HasSSE2", cpu.X86.HasSSE2, ""},
		{"HasSSE41", cpu.X86.HasSSE41, ""},
		{"HasSSE42", cpu.X86.HasSSE42, ""},
		{"HasAVX", cpu.X86.HasAVX, ""},
		{"HasAVX2", cpu.X86.HasAVX2, ""},
		{"HasFMA", cpu.X86.HasFMA, ""},
		{"HasAVX512F", cpu.X86.HasAVX512F, ""},
		{"HasAVX512BW", cpu.X86.HasAVX512BW, ""},
		{"HasAVX512VL", cpu.X86.HasAVX512VL, ""},
	}
}

// hostFeatures returns the x/sys/cpu flags for goarch, or nil when the
// package exposes none for it (wasm among others).
func hostFeatures(goarch string) (section string, features []feature) {
	switch goarch {
	case "arm64":
		return "golang.org/x/sys/cpu.ARM64", arm64Features()
	case "amd64":
		return "golang.org/x/sys/cpu.X86", amd64Features()
	}
	return "", nil
}

func writeFeatures(w io.Writer, goarch string, onlyPresent bool) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", goarch)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Highway dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(w, "Highway dispatch name: %s\n", hwy.CurrentName())
	fmt.Fprintf(w, "Unsupported policy: %s\n", hwy.CurrentUnsupportedPolicy())

	section, features := hostFeatures(goarch)
	if section == "" {
		return
	}
	if onlyPresent {
		features = lo.Filter(features, func(f feature, _ int) bool { return f.Has })
	}
	width := lo.Max(lo.Map(features, func(f feature, _ int) int { return len(f.Name) }))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "=== %s ===\n", section)
	for _, f := range features {
		line := fmt.Sprintf("  %-*s %v", width+1, f.Name+":", f.Has)
		if f.Note != "" {
			line += " (" + f.Note + ")"
		}
		fmt.Fprintln(w, line)
	}
}

func newFeaturesCmd() *cobra.Command {
	var onlyPresent bool
	cmd := &cobra.Command{
		Use:   "features",
		Short: "Print the CPU features detected by golang.org/x/sys/cpu and the dispatch level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeFeatures(cmd.OutOrStdout(), runtime.GOARCH, onlyPresent)
			return nil
		},
	}
	cmd.Flags().BoolVar(&onlyPresent, "present", false, "Only list features the CPU has")
	return cmd
}
