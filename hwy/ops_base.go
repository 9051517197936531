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

import "math"

// This file provides the portable lane-wise implementations of the register
// operations. Binary operations work on the common lane count of their
// operands.

// Load creates a vector by loading data from a slice.
// If src is shorter than a register, only len(src) lanes are loaded.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LoadN loads exactly n lanes from src, zero-filling lanes past len(src).
func LoadN[T Lanes](src []T, n int) Vec[T] {
	data := make([]T, n)
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	return SetN(value, MaxLanes[T]())
}

// SetN creates an n-lane vector with all lanes set to value.
func SetN[T Lanes](value T, n int) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] - b.data[i]
	}
	return Vec[T]{data: result}
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := range n {
		result[i] = a.data[i] * b.data[i]
	}
	return Vec[T]{data: result}
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = -x
	}
	return Vec[T]{data: result}
}

// Abs computes absolute value.
//
// For floats this clears the sign bit, so Abs(-0) is +0 and NaN stays NaN.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	switch data := any(v.data).(type) {
	case []float32:
		out := any(result).([]float32)
		for i, x := range data {
			out[i] = math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
		}
	case []float64:
		out := any(result).([]float64)
		for i, x := range data {
			out[i] = math.Abs(x)
		}
	default:
		for i, x := range v.data {
			if x < 0 {
				x = -x
			}
			result[i] = x
		}
	}
	return Vec[T]{data: result}
}

// FMA performs fused multiply-add: a*b + c.
//
// float64 lanes round once. float32 lanes are fused in float64 and then
// narrowed, so they round twice and can differ from a true float32 FMA in
// the last bit.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(c.data), min(len(b.data), len(a.data)))
	result := make([]T, n)
	switch av := any(a.data).(type) {
	case []float32:
		bv := any(b.data).([]float32)
		cv := any(c.data).([]float32)
		out := any(result).([]float32)
		for i := range n {
			out[i] = float32(math.FMA(float64(av[i]), float64(bv[i]), float64(cv[i])))
		}
	case []float64:
		bv := any(b.data).([]float64)
		cv := any(c.data).([]float64)
		out := any(result).([]float64)
		for i := range n {
			out[i] = math.FMA(av[i], bv[i], cv[i])
		}
	default:
		for i := range n {
			result[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
		}
	}
	return Vec[T]{data: result}
}

// MulAdd performs fused multiply-add: a*b + c.
// This is an alias for FMA with the common a.MulAdd(b, c) semantics.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	return FMA(a, b, c)
}

// LessThan performs element-wise less-than comparison.
// Lanes holding NaN compare false.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// IfThenElse selects a where mask is true and b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}
