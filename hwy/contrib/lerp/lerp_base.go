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

package lerp

import (
	"math"

	"github.com/ajroetker/go-lerp/hwy"
)

// Reals are the real element types lerp supports.
type Reals interface {
	float32 | float64
}

// Scalars are all element types lerp supports.
type Scalars interface {
	Reals | hwy.Complexes
}

// maxComplexLanes bounds the complex lanes of any register (64-byte AVX-512
// register of complex64), so fallback buffers can live on the stack.
const maxComplexLanes = 64 / 8

// IsWeightSmall reports whether weight takes the start-anchored formula:
// |w| < 0.5 for reals and re²+im² < 0.25 for complex values. NaN is never small.
func IsWeightSmall[T Scalars](weight T) bool {
	switch w := any(weight).(type) {
	case float32:
		return math.Abs(float64(w)) < 0.5
	case float64:
		return math.Abs(w) < 0.5
	case complex64:
		re, im := real(w), imag(w)
		return re*re+im*im < 0.25
	case complex128:
		re, im := real(w), imag(w)
		return re*re+im*im < 0.25
	}
	return false
}

// Scalar interpolates one element between start and end.
//
// Near weight 1 the product (end-start)*(1-weight) is small, so anchoring the
// result at end keeps lerp(start, end, 1) == end exactly.
func Scalar[T Scalars](start, end, weight T) T {
	if IsWeightSmall(weight) {
		return start + weight*(end-start)
	}
	return end - (end-start)*(1-weight)
}

// BaseIsWeightSmall returns the lanes of weight with |w| < 0.5.
func BaseIsWeightSmall[F Reals](weight hwy.Vec[F]) hwy.Mask[F] {
	return hwy.LessThan(hwy.Abs(weight), hwy.SetN(F(0.5), weight.NumLanes()))
}

// BaseIsWeightSmallComplex returns the lanes of weight with re²+im² < 0.25.
// The mask is real; it selects whole complex lanes in hwy.CIfThenElse.
func BaseIsWeightSmallComplex[F Reals](weight hwy.CVec[F]) hwy.Mask[F] {
	abs2 := hwy.CAbs2(weight)
	return hwy.LessThan(abs2, hwy.SetN(F(0.25), abs2.NumLanes()))
}

// BaseLerpVec is the register form of Scalar for real lanes.
//
// Both formulas are folded into one fused multiply-add:
//
//	small: weight*(end-start) + start
//	large: (weight-1)*(end-start) + end
func BaseLerpVec[F Reals](start, end, weight hwy.Vec[F]) hwy.Vec[F] {
	mask := BaseIsWeightSmall(weight)
	coeff := hwy.IfThenElse(mask, weight, hwy.Sub(weight, hwy.SetN(F(1), weight.NumLanes())))
	base := hwy.IfThenElse(mask, start, end)
	return hwy.MulAdd(coeff, hwy.Sub(end, start), base)
}

// BaseLerpComplexVec is the register form of Scalar for complex lanes.
// weight-1 only moves the real plane.
func BaseLerpComplexVec[F Reals](start, end, weight hwy.CVec[F]) hwy.CVec[F] {
	mask := BaseIsWeightSmallComplex(weight)
	coeff := hwy.CIfThenElse(mask, weight, hwy.CSubReal(weight, hwy.SetN(F(1), weight.NumLanes())))
	base := hwy.CIfThenElse(mask, start, end)
	return hwy.CMulAdd(coeff, hwy.CSub(end, start), base)
}

// onComplexMap, when set, is called once per register handled by
// complexVecMap. Tests use it to tell the two complex strategies apart.
var onComplexMap func()

// complexVecMap returns the register function that spills the three
// registers to stack buffers, runs Scalar on every lane and reloads.
// It is only used where hwy.HasComplexCompare is false.
func complexVecMap[C hwy.Complexes, F Reals](load func([]C) hwy.CVec[F], store func(hwy.CVec[F], []C)) func(start, end, weight hwy.CVec[F]) hwy.CVec[F] {
	return func(start, end, weight hwy.CVec[F]) hwy.CVec[F] {
		if onComplexMap != nil {
			onComplexMap()
		}
		n := min(start.NumLanes(), end.NumLanes(), weight.NumLanes())
		var sBuf, eBuf, wBuf [maxComplexLanes]C
		s, e, w := sBuf[:], eBuf[:], wBuf[:]
		if n > maxComplexLanes {
			s, e, w = make([]C, n), make([]C, n), make([]C, n)
		}
		s, e, w = s[:n], e[:n], w[:n]

		store(start, s)
		store(end, e)
		store(weight, w)
		for i := range s {
			s[i] = Scalar(s[i], e[i], w[i])
		}
		return load(s)
	}
}

// complexVecFunc picks the register function for complex lanes: the
// mask/blend formula when the level can compare complex lanes, the per-lane
// scalar map otherwise.
func complexVecFunc[C hwy.Complexes, F Reals](maskSupported bool, load func([]C) hwy.CVec[F], store func(hwy.CVec[F], []C)) func(start, end, weight hwy.CVec[F]) hwy.CVec[F] {
	if maskSupported {
		return BaseLerpComplexVec[F]
	}
	return complexVecMap(load, store)
}
