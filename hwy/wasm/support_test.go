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

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-highway/wasm128/hwy"
)

func probeSet16[T hwy.Width8]() {
	var z T
	Set16(z, z, z, z, z, z, z, z, z, z, z, z, z, z, z, z)
}

func probeSet8[T hwy.Width16]() {
	var z T
	Set8(z, z, z, z, z, z, z, z)
}

func probeSet4[T hwy.Width32]() {
	var z T
	Set4(z, z, z, z)
}

func probeSet2[T hwy.Width64]() {
	var z T
	Set2(z, z)
}

func probeSetMask16[T hwy.Width8]() {
	SetMask16[T](true, true, true, true, true, true, true, true, true, true, true, true, true, true, true, true)
}

func probeSetMask8[T hwy.Width16]() { SetMask8[T](true, true, true, true, true, true, true, true) }
func probeSetMask4[T hwy.Width32]() { SetMask4[T](true, true, true, true) }
func probeSetMask2[T hwy.Width64]() { SetMask2[T](true, true) }

// The fixed-arity constructors cannot be instantiated from a generic T, so
// they are probed per kind.
var (
	setProbes = map[hwy.Kind]func(){
		hwy.KindInt8: probeSet16[int8], hwy.KindUint8: probeSet16[uint8],
		hwy.KindInt16: probeSet8[int16], hwy.KindUint16: probeSet8[uint16], hwy.KindFloat16: probeSet8[hwy.Float16],
		hwy.KindInt32: probeSet4[int32], hwy.KindUint32: probeSet4[uint32], hwy.KindFloat32: probeSet4[float32],
		hwy.KindInt64: probeSet2[int64], hwy.KindUint64: probeSet2[uint64], hwy.KindFloat64: probeSet2[float64],
	}
	setMaskProbes = map[hwy.Kind]func(){
		hwy.KindInt8: probeSetMask16[int8], hwy.KindUint8: probeSetMask16[uint8],
		hwy.KindInt16: probeSetMask8[int16], hwy.KindUint16: probeSetMask8[uint16], hwy.KindFloat16: probeSetMask8[hwy.Float16],
		hwy.KindInt32: probeSetMask4[int32], hwy.KindUint32: probeSetMask4[uint32], hwy.KindFloat32: probeSetMask4[float32],
		hwy.KindInt64: probeSetMask2[int64], hwy.KindUint64: probeSetMask2[uint64], hwy.KindFloat64: probeSetMask2[float64],
	}
)

// invoke runs op once on lanes of T.
func invoke[T hwy.Lanes](op Op) {
	var z T
	v := Zero[T]()
	buf := hwy.AlignedSlice[T](Lanes[T]())
	switch op {
	case OpAbs:
		Abs(v)
	case OpAdd:
		Add(v, v)
	case OpAll:
		All(Mask[T]{})
	case OpAny:
		Any(Mask[T]{})
	case OpBitwiseAnd:
		BitwiseAnd(v, v)
	case OpBroadcast:
		Broadcast(z)
	case OpSet:
		setProbes[hwy.KindOf[T]()]()
	case OpSetMask:
		setMaskProbes[hwy.KindOf[T]()]()
	case OpStoreAligned:
		StoreAligned(buf, v)
	case OpLoadAligned:
		LoadAligned(buf)
	case OpEqual:
		Equal(v, v)
	case OpTailMask:
		TailMask[T](1)
	case OpStoreMaskAligned:
		StoreMaskAligned(buf, Mask[T]{})
	default:
		panic("invoke: no probe for " + op.String())
	}
}

var kindInvokers = map[hwy.Kind]func(Op){
	hwy.KindInt8: invoke[int8], hwy.KindInt16: invoke[int16], hwy.KindInt32: invoke[int32], hwy.KindInt64: invoke[int64],
	hwy.KindUint8: invoke[uint8], hwy.KindUint16: invoke[uint16], hwy.KindUint32: invoke[uint32], hwy.KindUint64: invoke[uint64],
	hwy.KindFloat16: invoke[hwy.Float16], hwy.KindFloat32: invoke[float32], hwy.KindFloat64: invoke[float64],
}

// reportsUnsupported runs fn under the panic policy and returns the
// *UnsupportedError it panicked with, or nil.
func reportsUnsupported(t *testing.T, fn func()) (uerr *hwy.UnsupportedError) {
	t.Helper()
	prev := hwy.SetUnsupportedPolicy(hwy.PolicyPanic)
	defer hwy.SetUnsupportedPolicy(prev)
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok || !errors.As(err, &uerr) {
				panic(r)
			}
		}
	}()
	fn()
	return nil
}

func TestSupportsMatchesKernels(t *testing.T) {
	require.Len(t, kindInvokers, len(hwy.AllKinds))
	for _, k := range hwy.AllKinds {
		for _, op := range AllOps {
			uerr := reportsUnsupported(t, func() { kindInvokers[k](op) })
			if Supports(op, k) {
				assert.Nil(t, uerr, "%s on %s is in the support table but the kernel reported %v", op, k, uerr)
				continue
			}
			if assert.NotNil(t, uerr, "%s on %s is not in the support table but the kernel ran", op, k) {
				assert.Equal(t, op.String(), uerr.Op)
				assert.Equal(t, k, uerr.Kind)
				assert.Equal(t, "wasm128", uerr.Target)
			}
		}
	}
}

func TestSupportsTable(t *testing.T) {
	assert.True(t, Supports(OpAbs, hwy.KindInt8))
	assert.True(t, Supports(OpAdd, hwy.KindFloat64))
	assert.False(t, Supports(OpAbs, hwy.KindFloat16))
	assert.False(t, Supports(OpBroadcast, hwy.KindFloat16))
	assert.True(t, Supports(OpBitwiseAnd, hwy.KindFloat16))
	assert.True(t, Supports(OpStoreAligned, hwy.KindFloat16))
	assert.True(t, Supports(OpStoreMaskAligned, hwy.KindFloat16))
	assert.Equal(t, "store_mask_aligned", OpStoreMaskAligned.String())
	assert.False(t, Supports(OpAdd, hwy.KindInvalid))
	assert.False(t, Supports(numOps, hwy.KindInt32))
	assert.Equal(t, "unknown", Op(200).String())
}

func TestUnsupportedPanicsByDefault(t *testing.T) {
	prev := hwy.SetUnsupportedPolicy(hwy.PolicyPanic)
	t.Cleanup(func() { hwy.SetUnsupportedPolicy(prev) })

	h := Broadcast[uint16](0x3C00)
	f16 := Vec[hwy.Float16]{r: h.Raw()}
	assert.PanicsWithError(t,
		"hwy: unsupported operation/type/width combination: abs on f16 (float, 2 bytes) for wasm128",
		func() { Abs(f16) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, hwy.ErrUnsupported)
	}()
	Add(f16, f16)
}

func TestUnsupportedZeroPolicy(t *testing.T) {
	var logs bytes.Buffer
	prev := hwy.SetUnsupportedPolicy(hwy.PolicyZero)
	hwy.SetDiagnosticLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() {
		hwy.SetUnsupportedPolicy(prev)
		hwy.SetDiagnosticLogger(nil)
	})

	got := Broadcast(hwy.NewFloat16(2.5))
	assert.Equal(t, Zero[hwy.Float16](), got, "unsupported kernel must return the zero vector")
	assert.Contains(t, logs.String(), "unsupported SIMD kernel")
	assert.Contains(t, logs.String(), "op=broadcast")
	assert.Contains(t, logs.String(), "kind=f16")

	logs.Reset()
	m := Equal(Zero[hwy.Float16](), Zero[hwy.Float16]())
	assert.False(t, Any(m), "unsupported Equal must return the all-false mask")
	assert.Contains(t, logs.String(), "op=eq")
}
