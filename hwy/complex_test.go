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

import "testing"

func TestLoadStoreComplex64RoundTrip(t *testing.T) {
	n := ComplexLanes[float32]()
	src := make([]complex64, n+3)
	for i := range src {
		src[i] = complex(float32(i), -float32(i)*0.5)
	}

	v := LoadComplex64(src)
	if v.NumLanes() != n {
		t.Fatalf("LoadComplex64: got %d lanes, want %d", v.NumLanes(), n)
	}
	for i := 0; i < n; i++ {
		if v.re.data[i] != real(src[i]) || v.im.data[i] != imag(src[i]) {
			t.Errorf("lane %d: got (%v, %v), want %v", i, v.re.data[i], v.im.data[i], src[i])
		}
	}

	dst := make([]complex64, len(src))
	StoreComplex64(v, dst)
	for i := 0; i < n; i++ {
		if dst[i] != src[i] {
			t.Errorf("StoreComplex64: index %d: got %v, want %v", i, dst[i], src[i])
		}
	}
	for i := n; i < len(dst); i++ {
		if dst[i] != 0 {
			t.Errorf("StoreComplex64 wrote past the register at %d: %v", i, dst[i])
		}
	}
}

func TestLoadStoreComplex128RoundTrip(t *testing.T) {
	src := []complex128{1 + 2i, -3 + 4i, 5 - 6i, 7i}
	v := LoadComplex128(src)
	dst := make([]complex128, len(src))
	StoreComplex128(v, dst)
	for i := 0; i < v.NumLanes(); i++ {
		if dst[i] != src[i] {
			t.Errorf("index %d: got %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestStoreComplexShortDestination(t *testing.T) {
	v := CVec[float64]{re: SetN[float64](1, 2), im: SetN[float64](2, 2)}
	StoreComplex128(v, nil)

	dst := make([]complex128, 1)
	StoreComplex128(v, dst)
	if dst[0] != 1+2i {
		t.Errorf("got %v, want (1+2i)", dst[0])
	}
}

func TestCAbs2(t *testing.T) {
	v := CVec[float64]{re: LoadN([]float64{3, 0.5, 0}, 3), im: LoadN([]float64{4, 0, 0.5}, 3)}
	got := CAbs2(v)
	want := []float64{25, 0.25, 0.25}
	for i, w := range want {
		if got.data[i] != w {
			t.Errorf("CAbs2 lane %d: got %v, want %v", i, got.data[i], w)
		}
	}
}

func TestCMulAdd(t *testing.T) {
	a := []complex128{1 + 2i, -0.5 + 0.25i}
	b := []complex128{3 - 1i, 2 + 2i}
	c := []complex128{0.5i, 1}

	load := func(s []complex128) CVec[float64] {
		re := make([]float64, len(s))
		im := make([]float64, len(s))
		for i, x := range s {
			re[i], im[i] = real(x), imag(x)
		}
		return CVec[float64]{re: LoadN(re, len(s)), im: LoadN(im, len(s))}
	}

	got := CMulAdd(load(a), load(b), load(c))
	for i := range a {
		want := a[i]*b[i] + c[i]
		g := complex(got.Real().Data()[i], got.Imag().Data()[i])
		if g != want {
			t.Errorf("CMulAdd lane %d: got %v, want %v", i, g, want)
		}
	}
}

func TestCIfThenElseAppliesMaskToBothPlanes(t *testing.T) {
	mask := Mask[float32]{bits: []bool{true, false}}
	a := CVec[float32]{re: SetN[float32](1, 2), im: SetN[float32](2, 2)}
	b := CVec[float32]{re: SetN[float32](3, 2), im: SetN[float32](4, 2)}
	got := CIfThenElse(mask, a, b)
	if got.re.data[0] != 1 || got.im.data[0] != 2 {
		t.Errorf("lane 0: got (%v, %v), want (1, 2)", got.re.data[0], got.im.data[0])
	}
	if got.re.data[1] != 3 || got.im.data[1] != 4 {
		t.Errorf("lane 1: got (%v, %v), want (3, 4)", got.re.data[1], got.im.data[1])
	}
}

func TestCSubReal(t *testing.T) {
	n := ComplexLanes[float32]()
	v := CVec[float32]{re: SetN[float32](0.25, n), im: SetN[float32](0.75, n)}
	got := CSubReal(v, SetN[float32](1, v.NumLanes()))
	for i := 0; i < got.NumLanes(); i++ {
		if got.re.data[i] != -0.75 || got.im.data[i] != 0.75 {
			t.Errorf("lane %d: got (%v, %v), want (-0.75, 0.75)", i, got.re.data[i], got.im.data[i])
		}
	}
	sub := CSub(v, v)
	if sub.re.data[0] != 0 || sub.im.data[0] != 0 {
		t.Errorf("CSub(v, v) = (%v, %v), want 0", sub.re.data[0], sub.im.data[0])
	}
}
