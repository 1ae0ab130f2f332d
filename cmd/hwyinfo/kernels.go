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
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/go-highway/wasm128/hwy"
	"github.com/go-highway/wasm128/hwy/wasm"
)

// kernelRow is one line of the coverage matrix.
type kernelRow struct {
	Op        wasm.Op
	Supported []bool // parallel to the selected kinds
}

func selectOps(names []string) ([]wasm.Op, error) {
	if len(names) == 0 {
		return wasm.AllOps, nil
	}
	byName := lo.KeyBy(wasm.AllOps, wasm.Op.String)
	var unknown []string
	ops := lo.FilterMap(names, func(n string, _ int) (wasm.Op, bool) {
		op, ok := byName[n]
		if !ok {
			unknown = append(unknown, n)
		}
		return op, ok
	})
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown ops: %s", strings.Join(unknown, ","))
	}
	return ops, nil
}

func selectKinds(names []string) ([]hwy.Kind, error) {
	if len(names) == 0 {
		return hwy.AllKinds, nil
	}
	byName := lo.KeyBy(hwy.AllKinds, hwy.Kind.String)
	var unknown []string
	kinds := lo.FilterMap(names, func(n string, _ int) (hwy.Kind, bool) {
		k, ok := byName[n]
		if !ok {
			unknown = append(unknown, n)
		}
		return k, ok
	})
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown lane kinds: %s", strings.Join(unknown, ","))
	}
	return kinds, nil
}

func kernelRows(ops []wasm.Op, kinds []hwy.Kind) []kernelRow {
	return lo.Map(ops, func(op wasm.Op, _ int) kernelRow {
		return kernelRow{
			Op:        op,
			Supported: lo.Map(kinds, func(k hwy.Kind, _ int) bool { return wasm.Supports(op, k) }),
		}
	})
}

func writeKernels(w io.Writer, ops []wasm.Op, kinds []hwy.Kind) {
	rows := kernelRows(ops, kinds)
	opWidth := lo.Max(lo.Map(ops, func(op wasm.Op, _ int) int { return len(op.String()) }))

	fmt.Fprintf(w, "%-*s", opWidth, "op")
	for _, k := range kinds {
		fmt.Fprintf(w, " %4s", k)
	}
	fmt.Fprintln(w)
	for _, r := range rows {
		fmt.Fprintf(w, "%-*s", opWidth, r.Op)
		for _, ok := range r.Supported {
			fmt.Fprintf(w, " %4s", lo.Ternary(ok, "yes", "-"))
		}
		fmt.Fprintln(w)
	}
	slog.Debug("hwyinfo: kernel table", "ops", len(ops), "kinds", len(kinds),
		"unsupported", lo.SumBy(rows, func(r kernelRow) int { return lo.Count(r.Supported, false) }))
}

func newKernelsCmd() *cobra.Command {
	var opNames, kindNames []string
	cmd := &cobra.Command{
		Use:   "kernels",
		Short: "Print which SIMD128 kernels are implemented for which lane kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := selectOps(opNames)
			if err != nil {
				return err
			}
			kinds, err := selectKinds(kindNames)
			if err != nil {
				return err
			}
			writeKernels(cmd.OutOrStdout(), ops, kinds)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&opNames, "ops", nil, "Comma-separated kernels to list (default: all)")
	cmd.Flags().StringSliceVar(&kindNames, "kinds", nil, "Comma-separated lane kinds, e.g. i8,f32 (default: all)")
	return cmd
}
