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

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// ErrUnsupported is matched by every *UnsupportedError via errors.Is.
var ErrUnsupported = errors.New("hwy: unsupported operation/type/width combination")

// UnsupportedError describes a kernel invoked for a lane kind its backend
// has no instruction for, such as abs on float16 lanes in SIMD128.
type UnsupportedError struct {
	Op     string
	Kind   Kind
	Target string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("hwy: unsupported operation/type/width combination: %s on %s (%s, %d bytes) for %s",
		e.Op, e.Kind, e.Kind.Category(), e.Kind.Size(), e.Target)
}

// Unwrap lets errors.Is(err, ErrUnsupported) match.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// UnsupportedPolicy selects what a kernel does when it reaches an
// unsupported (category, width) combination.
type UnsupportedPolicy int32

const (
	// PolicyPanic panics with the *UnsupportedError. This is the default.
	PolicyPanic UnsupportedPolicy = iota

	// PolicyZero logs the *UnsupportedError and lets the kernel return a
	// zero-initialized result.
	PolicyZero
)

// String returns the name used by HWY_UNSUPPORTED.
func (p UnsupportedPolicy) String() string {
	switch p {
	case PolicyPanic:
		return "panic"
	case PolicyZero:
		return "zero"
	default:
		return "unknown"
	}
}

// ParseUnsupportedPolicy parses "panic" or "zero" (case insensitive).
func ParseUnsupportedPolicy(s string) (UnsupportedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "panic":
		return PolicyPanic, nil
	case "zero":
		return PolicyZero, nil
	}
	return PolicyPanic, fmt.Errorf("hwy: unknown unsupported policy %q (want \"panic\" or \"zero\")", s)
}

var (
	unsupportedPolicy atomic.Int32
	diagLogger        atomic.Pointer[slog.Logger]
)

func init() {
	val := os.Getenv("HWY_UNSUPPORTED")
	if val == "" {
		return
	}
	p, err := ParseUnsupportedPolicy(val)
	if err != nil {
		diagnostics().Warn("ignoring HWY_UNSUPPORTED", "value", val, "error", err)
		return
	}
	SetUnsupportedPolicy(p)
}

// SetUnsupportedPolicy changes the policy for all backends and returns the
// previous one. It is safe to call concurrently with running kernels.
func SetUnsupportedPolicy(p UnsupportedPolicy) UnsupportedPolicy {
	return UnsupportedPolicy(unsupportedPolicy.Swap(int32(p)))
}

// CurrentUnsupportedPolicy returns the active policy.
func CurrentUnsupportedPolicy() UnsupportedPolicy {
	return UnsupportedPolicy(unsupportedPolicy.Load())
}

// SetDiagnosticLogger sets the logger used for unsupported-combination
// reports under PolicyZero. A nil logger restores slog.Default().
func SetDiagnosticLogger(l *slog.Logger) {
	diagLogger.Store(l)
}

func diagnostics() *slog.Logger {
	if l := diagLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// Unsupported reports that target has no instruction for op on lanes of
// kind k. Under PolicyPanic it panics with an *UnsupportedError. Under
// PolicyZero it logs the error and returns, and the calling kernel returns
// its zero value.
//
// Kernels only reach this for lane kinds they were never extended for.
func Unsupported(target, op string, k Kind) {
	err := &UnsupportedError{Op: op, Kind: k, Target: target}
	if CurrentUnsupportedPolicy() == PolicyPanic {
		panic(err)
	}
	diagnostics().Error("unsupported SIMD kernel", "target", target, "op", op, "kind", k.String(), "error", err)
}
