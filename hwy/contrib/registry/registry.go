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

// Package registry provides per-operation dispatch tables keyed by SIMD level.
//
// A kernel package declares one Stub per operation and registers an
// implementation for each dispatch level it supports, usually from init.
// Callers look the stub up with the level detected at runtime and fall
// back to the scalar entry when no level-specific one exists.
package registry

import (
	"fmt"
	"sync"

	"github.com/ajroetker/go-lerp/hwy"
)

// Entry is one registered implementation of an operation.
type Entry[F any] struct {
	Level    hwy.DispatchLevel
	Priority int
	Fn       F
}

// Stub is the dispatch table of a single named operation.
type Stub[F any] struct {
	name string

	mu      sync.RWMutex
	entries map[hwy.DispatchLevel]Entry[F]
}

// NewStub returns an empty dispatch table for the operation name.
func NewStub[F any](name string) *Stub[F] {
	return &Stub[F]{name: name, entries: make(map[hwy.DispatchLevel]Entry[F])}
}

// Name returns the operation identifier.
func (s *Stub[F]) Name() string {
	return s.name
}

// Register adds e. An entry already registered for the same level is kept
// unless e has a higher priority.
func (s *Stub[F]) Register(e Entry[F]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.entries[e.Level]; ok && old.Priority >= e.Priority {
		return
	}
	s.entries[e.Level] = e
}

// Lookup returns the implementation for level, or the scalar one if level
// has none. It fails only when neither is registered.
func (s *Stub[F]) Lookup(level hwy.DispatchLevel) (Entry[F], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if e, ok := s.entries[level]; ok {
		return e, nil
	}
	if e, ok := s.entries[hwy.DispatchScalar]; ok {
		return e, nil
	}
	var zero Entry[F]
	return zero, fmt.Errorf("registry: no kernel registered for %s at level %s", s.name, level)
}

// Current returns the implementation for hwy.CurrentLevel().
func (s *Stub[F]) Current() (Entry[F], error) {
	return s.Lookup(hwy.CurrentLevel())
}

// Levels returns the registered levels in hwy.Levels order.
func (s *Stub[F]) Levels() []hwy.DispatchLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var levels []hwy.DispatchLevel
	for _, l := range hwy.Levels {
		if _, ok := s.entries[l]; ok {
			levels = append(levels, l)
		}
	}
	return levels
}
