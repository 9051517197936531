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

// Package lerp provides numerically stable linear interpolation over slices.
//
// The textbook start + weight*(end-start) loses precision when weight is
// close to 1. Every element therefore picks one of two equivalent formulas:
//
//	|weight| < 0.5:  start + weight*(end-start)
//	otherwise:       end - (end-start)*(1-weight)
//
// For complex weights the test is re²+im² < 0.25. The register kernels make
// the same choice per lane with a comparison mask and blends, and evaluate
// either branch with a single fused multiply-add, so there is no
// data-dependent control flow.
//
// # Kernels
//
// Two kernels are provided for float32, float64, complex64 and complex128:
//   - ScalarWeight: one weight shared by every element
//   - TensorWeight: one weight per element
//
// The type-erased forms LerpScalar and LerpTensor resolve the dtype at run
// time and call the implementation registered in ScalarWeightStub or
// TensorWeightStub for the detected SIMD level.
//
// # Complex lanes at the scalar level
//
// When the dispatch level cannot compare complex lanes (hwy.HasComplexCompare
// is false, e.g. with HWY_NO_SIMD=1), complex registers are spilled to the
// stack and each lane is computed with Scalar. Results match the masked
// formula up to rounding.
//
// # Example Usage
//
//	start := []float32{0, 10}
//	end := []float32{10, 0}
//	dst := make([]float32, 2)
//	lerp.ScalarWeight(dst, start, end, 0.9) // dst ≈ {9, 1}
package lerp
