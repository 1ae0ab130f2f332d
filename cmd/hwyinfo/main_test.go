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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-highway/wasm128/hwy"
	"github.com/go-highway/wasm128/hwy/wasm"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestKernelsTable(t *testing.T) {
	out, err := run(t, "kernels", "--ops", "abs,bitwise_and", "--kinds", "i8,f16,f64")
	require.NoError(t, err)

	want := []string{
		"op            i8  f16  f64",
		"abs          yes    -  yes",
		"bitwise_and  yes  yes  yes",
	}
	got := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("kernels output mismatch (-want +got):\n%s", diff)
	}
}

func TestKernelsUnknownNames(t *testing.T) {
	_, err := run(t, "kernels", "--ops", "abs,sqrt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqrt")

	_, err = run(t, "kernels", "--kinds", "i128")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "i128")
}

func TestKernelRowsMatchSupports(t *testing.T) {
	rows := kernelRows(wasm.AllOps, hwy.AllKinds)
	require.Len(t, rows, len(wasm.AllOps))
	for _, r := range rows {
		for j, k := range hwy.AllKinds {
			assert.Equal(t, wasm.Supports(r.Op, k), r.Supported[j], "%s/%s", r.Op, k)
		}
	}
}

func TestFeatures(t *testing.T) {
	out, err := run(t, "features")
	require.NoError(t, err)
	assert.Contains(t, out, "Highway dispatch level: "+hwy.CurrentLevel().String())
	assert.Contains(t, out, "Unsupported policy: ")

	var buf bytes.Buffer
	writeFeatures(&buf, "amd64", false)
	assert.Contains(t, buf.String(), "=== golang.org/x/sys/cpu.X86 ===")
	assert.Contains(t, buf.String(), "HasAVX2:")

	buf.Reset()
	writeFeatures(&buf, "wasm", false)
	assert.NotContains(t, buf.String(), "===")
}

func TestFeaturesRejectsArgs(t *testing.T) {
	_, err := run(t, "features", "extra")
	require.Error(t, err)
}
