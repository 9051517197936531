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
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-lerp/hwy"
	"github.com/ajroetker/go-lerp/hwy/contrib/registry"
)

// Operation identifiers of the registered kernels.
const (
	ScalarWeightName = "lerp_kernel_scalar_weight"
	TensorWeightName = "lerp_kernel_tensor_weight"
)

var (
	// ErrUnsupportedDType is returned for operands that are not
	// []float32, []float64, []complex64 or []complex128.
	ErrUnsupportedDType = errors.New("lerp: unsupported dtype")

	// ErrDTypeMismatch is returned when operands do not share one dtype.
	ErrDTypeMismatch = errors.New("lerp: operand dtypes differ")

	// ErrLengthMismatch is returned when operands differ in length.
	ErrLengthMismatch = errors.New("lerp: operand lengths differ")

	// ErrWeightConversion is returned when a scalar weight cannot be
	// represented in the operands' dtype.
	ErrWeightConversion = errors.New("lerp: weight not representable in dtype")
)

// DType identifies the common element type of a kernel invocation.
type DType int

const (
	Float32 DType = iota
	Float64
	Complex64
	Complex128
)

func (d DType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// DTypeOf returns the dtype of a supported slice.
func DTypeOf(s any) (DType, error) {
	switch s.(type) {
	case []float32:
		return Float32, nil
	case []float64:
		return Float64, nil
	case []complex64:
		return Complex64, nil
	case []complex128:
		return Complex128, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedDType, s)
	}
}

// ScalarWeightFunc is a registered shared-weight kernel. dst, start and end
// are slices of one supported dtype; weight is any real or complex number.
type ScalarWeightFunc func(dst, start, end, weight any) error

// TensorWeightFunc is a registered per-element-weight kernel.
type TensorWeightFunc func(dst, start, end, weight any) error

var (
	// ScalarWeightStub dispatches ScalarWeightName by SIMD level.
	ScalarWeightStub = registry.NewStub[ScalarWeightFunc](ScalarWeightName)

	// TensorWeightStub dispatches TensorWeightName by SIMD level.
	TensorWeightStub = registry.NewStub[TensorWeightFunc](TensorWeightName)
)

func init() {
	for _, level := range hwy.Levels {
		// Only the scalar level lacks complex compare/select.
		complexMask := level != hwy.DispatchScalar
		ScalarWeightStub.Register(registry.Entry[ScalarWeightFunc]{
			Level: level,
			Fn:    scalarWeightKernel(complexMask),
		})
		TensorWeightStub.Register(registry.Entry[TensorWeightFunc]{
			Level: level,
			Fn:    tensorWeightKernel(complexMask),
		})
	}
}

// LerpScalar runs the shared-weight kernel registered for the current level.
func LerpScalar(dst, start, end, weight any) error {
	e, err := ScalarWeightStub.Current()
	if err != nil {
		return err
	}
	return e.Fn(dst, start, end, weight)
}

// LerpTensor runs the per-element-weight kernel registered for the current level.
func LerpTensor(dst, start, end, weight any) error {
	e, err := TensorWeightStub.Current()
	if err != nil {
		return err
	}
	return e.Fn(dst, start, end, weight)
}

func scalarWeightKernel(complexMask bool) ScalarWeightFunc {
	return func(dst, start, end, weight any) error {
		dt, err := commonDType(dst, start, end)
		if err != nil {
			return err
		}
		switch dt {
		case Float32:
			return scalarWeightAs[float32](dst, start, end, weight, complexMask)
		case Float64:
			return scalarWeightAs[float64](dst, start, end, weight, complexMask)
		case Complex64:
			return scalarWeightAs[complex64](dst, start, end, weight, complexMask)
		default:
			return scalarWeightAs[complex128](dst, start, end, weight, complexMask)
		}
	}
}

func tensorWeightKernel(complexMask bool) TensorWeightFunc {
	return func(dst, start, end, weight any) error {
		dt, err := commonDType(dst, start, end, weight)
		if err != nil {
			return err
		}
		switch dt {
		case Float32:
			return tensorWeightAs[float32](dst, start, end, weight, complexMask)
		case Float64:
			return tensorWeightAs[float64](dst, start, end, weight, complexMask)
		case Complex64:
			return tensorWeightAs[complex64](dst, start, end, weight, complexMask)
		default:
			return tensorWeightAs[complex128](dst, start, end, weight, complexMask)
		}
	}
}

func scalarWeightAs[T Scalars](dst, start, end, weight any, complexMask bool) error {
	d, s, e := dst.([]T), start.([]T), end.([]T)
	if len(s) != len(d) || len(e) != len(d) {
		return fmt.Errorf("%w: dst %d, start %d, end %d", ErrLengthMismatch, len(d), len(s), len(e))
	}
	w, err := convertWeight[T](weight)
	if err != nil {
		return err
	}
	scalarWeight(d, s, e, w, complexMask)
	return nil
}

func tensorWeightAs[T Scalars](dst, start, end, weight any, complexMask bool) error {
	d, s, e, w := dst.([]T), start.([]T), end.([]T), weight.([]T)
	if len(s) != len(d) || len(e) != len(d) || len(w) != len(d) {
		return fmt.Errorf("%w: dst %d, start %d, end %d, weight %d", ErrLengthMismatch, len(d), len(s), len(e), len(w))
	}
	tensorWeight(d, s, e, w, complexMask)
	return nil
}

// commonDType checks that every operand is a slice of the same supported dtype.
func commonDType(operands ...any) (DType, error) {
	dt, err := DTypeOf(operands[0])
	if err != nil {
		return 0, err
	}
	for _, op := range operands[1:] {
		other, err := DTypeOf(op)
		if err != nil {
			return 0, err
		}
		if other != dt {
			return 0, fmt.Errorf("%w: %s and %s", ErrDTypeMismatch, dt, other)
		}
	}
	return dt, nil
}

// convertWeight converts a real, complex or integer scalar to T. A complex
// weight with a non-zero imaginary part has no real counterpart, and a finite
// part beyond the float32 range does not fit the single-precision dtypes.
func convertWeight[T Scalars](weight any) (T, error) {
	var zero T
	var c complex128
	switch w := weight.(type) {
	case float32:
		c = complex(float64(w), 0)
	case float64:
		c = complex(w, 0)
	case int:
		c = complex(float64(w), 0)
	case int8:
		c = complex(float64(w), 0)
	case int16:
		c = complex(float64(w), 0)
	case int32:
		c = complex(float64(w), 0)
	case int64:
		c = complex(float64(w), 0)
	case uint:
		c = complex(float64(w), 0)
	case uint8:
		c = complex(float64(w), 0)
	case uint16:
		c = complex(float64(w), 0)
	case uint32:
		c = complex(float64(w), 0)
	case uint64:
		c = complex(float64(w), 0)
	case complex64:
		c = complex128(w)
	case complex128:
		c = w
	default:
		return zero, fmt.Errorf("%w: weight of type %T", ErrWeightConversion, weight)
	}

	switch any(zero).(type) {
	case float32, float64:
		if imag(c) != 0 {
			return zero, fmt.Errorf("%w: %v to %T", ErrWeightConversion, c, zero)
		}
	}
	switch any(zero).(type) {
	case float32, complex64:
		if overflowsFloat32(real(c)) || overflowsFloat32(imag(c)) {
			return zero, fmt.Errorf("%w: %v overflows %T", ErrWeightConversion, weight, zero)
		}
	}
	switch any(zero).(type) {
	case float32:
		return any(float32(real(c))).(T), nil
	case float64:
		return any(real(c)).(T), nil
	case complex64:
		return any(complex64(c)).(T), nil
	default:
		return any(c).(T), nil
	}
}

func overflowsFloat32(x float64) bool {
	return !math.IsInf(x, 0) && math.Abs(x) > math.MaxFloat32
}
