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

// Command hwyinfo prints what the host CPU offers and which SIMD128 kernels
// are implemented for which lane types.
//
// Usage:
//
//	hwyinfo features
//	hwyinfo kernels --ops abs,add --kinds f16,f32
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd(out io.Writer) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "hwyinfo",
		Short:         "Report host SIMD features and SIMD128 kernel coverage",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	root.SetOut(out)
	root.AddCommand(newFeaturesCmd(), newKernelsCmd())
	return root
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		slog.Error("hwyinfo failed", "error", err)
		os.Exit(1)
	}
}
