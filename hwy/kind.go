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

package hwy

import "unsafe"

// Category is the numeric family of a lane type.
type Category uint8

const (
	// CategoryInvalid is returned for types the classifier does not know.
	CategoryInvalid Category = iota

	// CategorySigned is a two's complement signed integer.
	CategorySigned

	// CategoryUnsigned is an unsigned integer.
	CategoryUnsigned

	// CategoryFloat is an IEEE-754 binary floating-point type.
	CategoryFloat
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategorySigned:
		return "signed"
	case CategoryUnsigned:
		return "unsigned"
	case CategoryFloat:
		return "float"
	default:
		return "invalid"
	}
}

// Kind identifies a lane type by category and byte width. Backends switch on
// it to pick the instruction for an operation.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat16
	KindFloat32
	KindFloat64
)

// AllKinds lists every valid Kind in declaration order.
var AllKinds = []Kind{
	KindInt8, KindInt16, KindInt32, KindInt64,
	KindUint8, KindUint16, KindUint32, KindUint64,
	KindFloat16, KindFloat32, KindFloat64,
}

var kindInfo = [...]struct {
	name string
	cat  Category
	size int
}{
	KindInvalid: {"invalid", CategoryInvalid, 0},
	KindInt8:    {"i8", CategorySigned, 1},
	KindInt16:   {"i16", CategorySigned, 2},
	KindInt32:   {"i32", CategorySigned, 4},
	KindInt64:   {"i64", CategorySigned, 8},
	KindUint8:   {"u8", CategoryUnsigned, 1},
	KindUint16:  {"u16", CategoryUnsigned, 2},
	KindUint32:  {"u32", CategoryUnsigned, 4},
	KindUint64:  {"u64", CategoryUnsigned, 8},
	KindFloat16: {"f16", CategoryFloat, 2},
	KindFloat32: {"f32", CategoryFloat, 4},
	KindFloat64: {"f64", CategoryFloat, 8},
}

func (k Kind) valid() bool { return int(k) < len(kindInfo) }

// String returns the short lane name ("i8", "u32", "f64", ...).
func (k Kind) String() string {
	if !k.valid() {
		return "invalid"
	}
	return kindInfo[k].name
}

// Category returns the numeric family of the kind.
func (k Kind) Category() Category {
	if !k.valid() {
		return CategoryInvalid
	}
	return kindInfo[k].cat
}

// Size returns the lane width in bytes, or 0 for KindInvalid.
func (k Kind) Size() int {
	if !k.valid() {
		return 0
	}
	return kindInfo[k].size
}

// Lanes returns how many lanes of this kind fit in a register of
// registerBytes bytes.
func (k Kind) Lanes(registerBytes int) int {
	if k.Size() == 0 {
		return 0
	}
	return registerBytes / k.Size()
}

// KindOf classifies T.
//
// The predeclared lane types and Float16 resolve directly. Named types built
// on them (type Celsius float32) are classified from their arithmetic
// behaviour and byte width, so they share the instructions of their
// underlying type.
func KindOf[T Lanes]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case Float16:
		return KindFloat16
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	}
	return classifyNamed[T]()
}

func classifyNamed[T Lanes]() Kind {
	var zero T
	one := T(1)
	two := one + one
	var cat Category
	switch {
	case one/two != zero:
		cat = CategoryFloat
	case zero-one < zero:
		cat = CategorySigned
	default:
		cat = CategoryUnsigned
	}
	return MakeKind(cat, int(unsafe.Sizeof(zero)))
}

// MakeKind returns the Kind for a category and byte width, or KindInvalid
// when no lane type has that shape.
func MakeKind(c Category, size int) Kind {
	for _, k := range AllKinds {
		if kindInfo[k].cat == c && kindInfo[k].size == size {
			return k
		}
	}
	return KindInvalid
}

// LanesFor returns the lane count of T in a register of registerBytes bytes.
func LanesFor[T Lanes](registerBytes int) int {
	var dummy T
	return registerBytes / int(unsafe.Sizeof(dummy))
}
