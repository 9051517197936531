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

// Complex registers keep the real and imaginary parts in separate planes so
// that every complex operation reduces to real lane-wise operations. Go's
// complex64/complex128 memory layout is [re, im] pairs, which is exactly the
// interleaved-pair layout handled by LoadInterleaved2/StoreInterleaved2.

// LoadComplex64 loads up to ComplexLanes[float32]() values from src.
func LoadComplex64(src []complex64) CVec[float32] {
	n := min(len(src), ComplexLanes[float32]())
	re, im := LoadInterleaved2(complex64Components(src[:n]), n)
	return CVec[float32]{re: re, im: im}
}

// LoadComplex128 loads up to ComplexLanes[float64]() values from src.
func LoadComplex128(src []complex128) CVec[float64] {
	n := min(len(src), ComplexLanes[float64]())
	re, im := LoadInterleaved2(complex128Components(src[:n]), n)
	return CVec[float64]{re: re, im: im}
}

// StoreComplex64 writes v to dst, stopping at whichever is shorter.
func StoreComplex64(v CVec[float32], dst []complex64) {
	n := min(v.NumLanes(), len(dst))
	if n == 0 {
		return
	}
	StoreInterleaved2(v.re, v.im, complex64Components(dst[:n]))
}

// StoreComplex128 writes v to dst, stopping at whichever is shorter.
func StoreComplex128(v CVec[float64], dst []complex128) {
	n := min(v.NumLanes(), len(dst))
	if n == 0 {
		return
	}
	StoreInterleaved2(v.re, v.im, complex128Components(dst[:n]))
}

// CSub performs lane-wise complex subtraction.
func CSub[F Floats](a, b CVec[F]) CVec[F] {
	return CVec[F]{re: Sub(a.re, b.re), im: Sub(a.im, b.im)}
}

// CSubReal subtracts the real vector r from the real plane of v.
func CSubReal[F Floats](v CVec[F], r Vec[F]) CVec[F] {
	return CVec[F]{re: Sub(v.re, r), im: v.im}
}

// CAbs2 returns the squared magnitude re²+im² of every lane.
// No square root is taken, so it is cheaper than the modulus.
func CAbs2[F Floats](v CVec[F]) Vec[F] {
	return MulAdd(v.re, v.re, Mul(v.im, v.im))
}

// CIfThenElse selects lanes of a where mask is true and of b elsewhere. The
// real mask governs both planes of a complex lane.
func CIfThenElse[F Floats](mask Mask[F], a, b CVec[F]) CVec[F] {
	return CVec[F]{
		re: IfThenElse(mask, a.re, b.re),
		im: IfThenElse(mask, a.im, b.im),
	}
}

// CMulAdd computes a*b + c on complex lanes:
//
//	re = a.re*b.re - a.im*b.im + c.re
//	im = a.re*b.im + a.im*b.re + c.im
//
// Each plane is two chained fused multiply-adds.
func CMulAdd[F Floats](a, b, c CVec[F]) CVec[F] {
	re := MulAdd(a.re, b.re, MulAdd(Neg(a.im), b.im, c.re))
	im := MulAdd(a.re, b.im, MulAdd(a.im, b.re, c.im))
	return CVec[F]{re: re, im: im}
}

func complex64Components(s []complex64) []float32 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(s))), 2*len(s))
}

func complex128Components(s []complex128) []float64 {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(s))), 2*len(s))
}
