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

package registry

import (
	"slices"
	"testing"

	"github.com/ajroetker/go-lerp/hwy"
)

func TestLookupFallsBackToScalar(t *testing.T) {
	s := NewStub[func() string]("op")
	s.Register(Entry[func() string]{Level: hwy.DispatchScalar, Fn: func() string { return "scalar" }})
	s.Register(Entry[func() string]{Level: hwy.DispatchAVX2, Fn: func() string { return "avx2" }})

	tests := []struct {
		level hwy.DispatchLevel
		want  string
	}{
		{hwy.DispatchScalar, "scalar"},
		{hwy.DispatchAVX2, "avx2"},
		{hwy.DispatchNEON, "scalar"},
	}
	for _, tt := range tests {
		e, err := s.Lookup(tt.level)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", tt.level, err)
		}
		if got := e.Fn(); got != tt.want {
			t.Errorf("Lookup(%s) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestLookupEmpty(t *testing.T) {
	s := NewStub[int]("empty")
	if _, err := s.Lookup(hwy.DispatchAVX512); err == nil {
		t.Error("expected error for empty stub")
	}
	if s.Name() != "empty" {
		t.Errorf("Name() = %q", s.Name())
	}
}

func TestRegisterPriority(t *testing.T) {
	s := NewStub[int]("prio")
	s.Register(Entry[int]{Level: hwy.DispatchSSE2, Priority: 10, Fn: 1})
	s.Register(Entry[int]{Level: hwy.DispatchSSE2, Priority: 5, Fn: 2})
	if e, _ := s.Lookup(hwy.DispatchSSE2); e.Fn != 1 {
		t.Errorf("lower priority replaced entry: got %d", e.Fn)
	}
	s.Register(Entry[int]{Level: hwy.DispatchSSE2, Priority: 20, Fn: 3})
	if e, _ := s.Lookup(hwy.DispatchSSE2); e.Fn != 3 {
		t.Errorf("higher priority did not replace entry: got %d", e.Fn)
	}
}

func TestLevels(t *testing.T) {
	s := NewStub[int]("levels")
	s.Register(Entry[int]{Level: hwy.DispatchNEON})
	s.Register(Entry[int]{Level: hwy.DispatchScalar})
	want := []hwy.DispatchLevel{hwy.DispatchScalar, hwy.DispatchNEON}
	if got := s.Levels(); !slices.Equal(got, want) {
		t.Errorf("Levels() = %v, want %v", got, want)
	}
}
