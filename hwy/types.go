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

// Package hwy provides portable vector registers with runtime CPU dispatch.
//
// A Vec holds one register's worth of lanes for the detected SIMD width and
// the operations here are written lane-wise, so kernels built on them are
// branch-free: data-dependent choices go through a Mask and IfThenElse.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lerp/hwy"
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	mask := hwy.LessThan(hwy.Abs(a), hwy.Set[float32](0.5))
//	out := hwy.IfThenElse(mask, a, b)
//	hwy.Store(out, result)
//
// Complex numbers are held in CVec, a pair of real registers (one per plane).
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// NativeFloats are float32 and float64 without named variants. Helpers that
// hand lanes to external kernels accept only these.
type NativeFloats interface {
	float32 | float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Complexes is a constraint for the complex element types backed by CVec.
type Complexes interface {
	complex64 | complex128
}

// Vec is a portable vector handle.
//
// Vec instances should not be created directly; use Load or Set instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}

// Mask is the per-lane result of a comparison, consumed by IfThenElse.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

// CVec is a register of complex lanes stored as two planes: lane i is
// complex(re[i], im[i]). F is the component type (float32 for complex64).
type CVec[F Floats] struct {
	re Vec[F]
	im Vec[F]
}

// NumLanes returns the number of complex lanes.
func (v CVec[F]) NumLanes() int {
	return min(v.re.NumLanes(), v.im.NumLanes())
}

// Real returns the real plane.
func (v CVec[F]) Real() Vec[F] {
	return v.re
}

// Imag returns the imaginary plane.
func (v CVec[F]) Imag() Vec[F] {
	return v.im
}
