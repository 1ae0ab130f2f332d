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

//go:build wasm

package hwy

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// There is no feature query inside a wasm module: SIMD128 is part of the
	// WebAssembly 2.0 core and every engine Go targets (browsers, wasmtime,
	// wazero, node) validates it.
	setLevel(DispatchWASM128, 16)
}
