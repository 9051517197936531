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

// Binary is a two-input elementwise operation given in both scalar and
// register form. The two forms must agree lane by lane.
type Binary[T, V any] struct {
	Scalar func(a, b T) T
	Vector func(a, b V) V
}

// Ternary is the three-input counterpart of Binary.
type Ternary[T, V any] struct {
	Scalar func(a, b, c T) T
	Vector func(a, b, c V) V
}

// BaseApply2 computes dst[i] = op(a[i], b[i]) for every i < len(dst).
//
// Full registers go through op.Vector; the remainder that does not fill a
// register goes through op.Scalar one element at a time.
//
// Example:
//
//	algo.BaseApply2(algo.RealCodec[float32](), algo.Binary[float32, hwy.Vec[float32]]{
//	    Scalar: func(a, b float32) float32 { return a + b },
//	    Vector: hwy.Add[float32],
//	}, dst, a, b)
func BaseApply2[T, V any](c Codec[T, V], op Binary[T, V], dst, a, b []T) {
	n := len(dst)
	if len(a) < n {
		panic("algo: a slice too short")
	}
	if len(b) < n {
		panic("algo: b slice too short")
	}

	hwy.ProcessWithTail(n, c.Lanes,
		func(i int) {
			c.Store(op.Vector(c.Load(a[i:]), c.Load(b[i:])), dst[i:])
		},
		func(off, count int) {
			for i := off; i < off+count; i++ {
				dst[i] = op.Scalar(a[i], b[i])
			}
		},
	)
}

// BaseApply3 computes dst[i] = op(a[i], b[i], w[i]) for every i < len(dst).
// Chunking follows BaseApply2.
func BaseApply3[T, V any](c Codec[T, V], op Ternary[T, V], dst, a, b, w []T) {
	n := len(dst)
	if len(a) < n {
		panic("algo: a slice too short")
	}
	if len(b) < n {
		panic("algo: b slice too short")
	}
	if len(w) < n {
		panic("algo: w slice too short")
	}

	hwy.ProcessWithTail(n, c.Lanes,
		func(i int) {
			c.Store(op.Vector(c.Load(a[i:]), c.Load(b[i:]), c.Load(w[i:])), dst[i:])
		},
		func(off, count int) {
			for i := off; i < off+count; i++ {
				dst[i] = op.Scalar(a[i], b[i], w[i])
			}
		},
	)
}
