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

package algo

import "github.com/ajroetker/go-lerp/hwy"

// Codec moves one register's worth of T between memory and the register
// type V. Lanes is the number of T elements a V holds.
type Codec[T, V any] struct {
	Lanes int
	Load  func(src []T) V
	Store func(v V, dst []T)
}

// RealCodec returns the codec for real lanes at the current dispatch level.
func RealCodec[F hwy.Floats]() Codec[F, hwy.Vec[F]] {
	return Codec[F, hwy.Vec[F]]{
		Lanes: hwy.MaxLanes[F](),
		Load:  hwy.Load[F],
		Store: hwy.Store[F],
	}
}

// Complex64Codec returns the codec for complex64 lanes at the current
// dispatch level.
func Complex64Codec() Codec[complex64, hwy.CVec[float32]] {
	return Codec[complex64, hwy.CVec[float32]]{
		Lanes: hwy.ComplexLanes[float32](),
		Load:  hwy.LoadComplex64,
		Store: hwy.StoreComplex64,
	}
}

// Complex128Codec returns the codec for complex128 lanes at the current
// dispatch level.
func Complex128Codec() Codec[complex128, hwy.CVec[float64]] {
	return Codec[complex128, hwy.CVec[float64]]{
		Lanes: hwy.ComplexLanes[float64](),
		Load:  hwy.LoadComplex128,
		Store: hwy.StoreComplex128,
	}
}
