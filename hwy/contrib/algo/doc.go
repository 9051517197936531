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

// Package algo provides the elementwise iteration engine for SIMD kernels.
//
// A kernel supplies its operation twice: a scalar function on single
// elements and a register function on hwy vectors. BaseApply2 and
// BaseApply3 walk the output span, hand every full register to the
// register function and finish the remainder with the scalar function,
// so kernels never branch on the tail themselves.
//
// # Codecs
//
// A Codec ties an element type to its register type:
//   - RealCodec[float32], RealCodec[float64] load hwy.Vec registers
//   - Complex64Codec, Complex128Codec load hwy.CVec registers, which keep
//     real and imaginary parts in separate planes
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-lerp/hwy"
//	    "github.com/ajroetker/go-lerp/hwy/contrib/algo"
//	)
//
//	func Scale(dst, a, s []float64) {
//	    algo.BaseApply2(algo.RealCodec[float64](), algo.Binary[float64, hwy.Vec[float64]]{
//	        Scalar: func(x, y float64) float64 { return x * y },
//	        Vector: hwy.Mul[float64],
//	    }, dst, a, s)
//	}
package algo
