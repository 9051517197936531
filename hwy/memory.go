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
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// LoadInterleaved2 deinterleaves up to n pairs from src into two vectors.
//
// Input memory layout (interleaved pairs):
//
//	[a0, b0, a1, b1, a2, b2, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, ...]
//	vec_b = [b0, b1, b2, ...]
//
// Lanes past the end of src are zero. This is how complex registers are
// split into real and imaginary planes.
func LoadInterleaved2[F NativeFloats](src []F, n int) (Vec[F], Vec[F]) {
	a := make([]F, n)
	b := make([]F, n)
	switch s := any(src).(type) {
	case []float32:
		f32.Deinterleave2(any(a).([]float32), any(b).([]float32), s)
	case []float64:
		f64.Deinterleave2(any(a).([]float64), any(b).([]float64), s)
	}
	return Vec[F]{data: a}, Vec[F]{data: b}
}

// StoreInterleaved2 stores two vectors interleaved to dst.
// This is the inverse of LoadInterleaved2; pairs that do not fit in dst are
// dropped.
func StoreInterleaved2[F NativeFloats](a, b Vec[F], dst []F) {
	switch d := any(dst).(type) {
	case []float32:
		f32.Interleave2(d, any(a.data).([]float32), any(b.data).([]float32))
	case []float64:
		f64.Interleave2(d, any(a.data).([]float64), any(b.data).([]float64))
	}
}
