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
	"github.com/ajroetker/go-lerp/hwy"
	"github.com/ajroetker/go-lerp/hwy/contrib/algo"
)

// ScalarWeight computes dst[i] = lerp(start[i], end[i], weight) for every
// i < len(dst). start and end must be at least as long as dst.
//
// Example:
//
//	dst := make([]float64, 2)
//	lerp.ScalarWeight(dst, []float64{0, 10}, []float64{10, 0}, 0.9) // dst ≈ {9, 1}
func ScalarWeight[T Scalars](dst, start, end []T, weight T) {
	scalarWeight(dst, start, end, weight, hwy.HasComplexCompare())
}

// TensorWeight computes dst[i] = lerp(start[i], end[i], weight[i]) for every
// i < len(dst). The inputs must be at least as long as dst.
func TensorWeight[T Scalars](dst, start, end, weight []T) {
	tensorWeight(dst, start, end, weight, hwy.HasComplexCompare())
}

func scalarWeight[T Scalars](dst, start, end []T, weight T, complexMask bool) {
	if len(start) < len(dst) {
		panic("lerp: start slice too short")
	}
	if len(end) < len(dst) {
		panic("lerp: end slice too short")
	}

	switch d := any(dst).(type) {
	case []float32:
		realScalarWeight(d, any(start).([]float32), any(end).([]float32), any(weight).(float32))
	case []float64:
		realScalarWeight(d, any(start).([]float64), any(end).([]float64), any(weight).(float64))
	case []complex64:
		codec := algo.Complex64Codec()
		vec := complexVecFunc(complexMask, codec.Load, codec.Store)
		complexScalarWeight(codec, vec, d, any(start).([]complex64), any(end).([]complex64), any(weight).(complex64))
	case []complex128:
		codec := algo.Complex128Codec()
		vec := complexVecFunc(complexMask, codec.Load, codec.Store)
		complexScalarWeight(codec, vec, d, any(start).([]complex128), any(end).([]complex128), any(weight).(complex128))
	}
}

func tensorWeight[T Scalars](dst, start, end, weight []T, complexMask bool) {
	if len(start) < len(dst) {
		panic("lerp: start slice too short")
	}
	if len(end) < len(dst) {
		panic("lerp: end slice too short")
	}
	if len(weight) < len(dst) {
		panic("lerp: weight slice too short")
	}

	switch d := any(dst).(type) {
	case []float32:
		realTensorWeight(d, any(start).([]float32), any(end).([]float32), any(weight).([]float32))
	case []float64:
		realTensorWeight(d, any(start).([]float64), any(end).([]float64), any(weight).([]float64))
	case []complex64:
		codec := algo.Complex64Codec()
		vec := complexVecFunc(complexMask, codec.Load, codec.Store)
		complexTensorWeight(codec, vec, d, any(start).([]complex64), any(end).([]complex64), any(weight).([]complex64))
	case []complex128:
		codec := algo.Complex128Codec()
		vec := complexVecFunc(complexMask, codec.Load, codec.Store)
		complexTensorWeight(codec, vec, d, any(start).([]complex128), any(end).([]complex128), any(weight).([]complex128))
	}
}

func realScalarWeight[F Reals](dst, start, end []F, weight F) {
	w := hwy.Set(weight)
	algo.BaseApply2(algo.RealCodec[F](), algo.Binary[F, hwy.Vec[F]]{
		Scalar: func(s, e F) F { return Scalar(s, e, weight) },
		Vector: func(s, e hwy.Vec[F]) hwy.Vec[F] { return BaseLerpVec(s, e, w) },
	}, dst, start, end)
}

func realTensorWeight[F Reals](dst, start, end, weight []F) {
	algo.BaseApply3(algo.RealCodec[F](), algo.Ternary[F, hwy.Vec[F]]{
		Scalar: Scalar[F],
		Vector: BaseLerpVec[F],
	}, dst, start, end, weight)
}

type complexVec[F Reals] func(start, end, weight hwy.CVec[F]) hwy.CVec[F]

func complexScalarWeight[C hwy.Complexes, F Reals](codec algo.Codec[C, hwy.CVec[F]], vec complexVec[F], dst, start, end []C, weight C) {
	// Broadcast through memory: the generic code cannot split C into parts.
	var wBuf [maxComplexLanes]C
	for i := range wBuf {
		wBuf[i] = weight
	}
	w := codec.Load(wBuf[:min(codec.Lanes, maxComplexLanes)])

	algo.BaseApply2(codec, algo.Binary[C, hwy.CVec[F]]{
		Scalar: func(s, e C) C { return Scalar(s, e, weight) },
		Vector: func(s, e hwy.CVec[F]) hwy.CVec[F] { return vec(s, e, w) },
	}, dst, start, end)
}

func complexTensorWeight[C hwy.Complexes, F Reals](codec algo.Codec[C, hwy.CVec[F]], vec complexVec[F], dst, start, end, weight []C) {
	algo.BaseApply3(codec, algo.Ternary[C, hwy.CVec[F]]{
		Scalar: Scalar[C],
		Vector: vec,
	}, dst, start, end, weight)
}
