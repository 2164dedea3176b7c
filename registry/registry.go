/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package registry

import (
	"reflect"
	"sync"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/config"
	uref "dirpx.dev/enum/utils/reflect"
)

var (
	// ErrNilEnumeration is returned when a nil Enumeration is provided.
	ErrNilEnumeration = apis.NewError(apis.CodeNotAnEnum, "registry: nil enumeration provided")
	// ErrNilType is returned when an Enumeration reports a nil reflect.Type.
	ErrNilType = apis.NewError(apis.CodeNotAnEnum, "registry: nil reflect.Type provided")
	// ErrConflictingRegistration indicates an attempt to register a different
	// record for a type that already has one.
	ErrConflictingRegistration = apis.NewError(apis.CodeUnsupportedOperation, "registry: conflicting type registration")
)

var definitionType = reflect.TypeFor[apis.Definition]()

// New constructs a Registry that normalizes type handles according to cfg.
// Only MaxUnwrap is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps the definition reflect.Type to its record.
	m sync.Map // map[reflect.Type]apis.Enumeration
	// count tracks the number of registered entries.
	count int
}

// Register stores e under its definition type.
// It is idempotent for the same record.
func (r *registry) Register(e apis.Enumeration) error {
	if e == nil {
		return ErrNilEnumeration
	}
	t := e.Type()
	if t == nil {
		return ErrNilType
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(t); ok {
		if old.(apis.Enumeration) == e {
			return nil
		}
		return ErrConflictingRegistration.WithEnum(t.String())
	}

	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(t); ok {
		if old.(apis.Enumeration) == e {
			return nil
		}
		return ErrConflictingRegistration.WithEnum(t.String())
	}

	r.m.Store(t, e)
	r.count++
	return nil
}

// Lookup returns the record for t. Pointer, slice, array, chan and map
// wrappers around a definition type resolve to the definition's record.
func (r *registry) Lookup(t reflect.Type) (apis.Enumeration, bool) {
	if t == nil {
		return nil, false
	}
	if v, ok := r.m.Load(t); ok {
		return v.(apis.Enumeration), true
	}
	nt, err := uref.Normalize(t, r.cfg, definitionType)
	if err != nil {
		return nil, false
	}
	if v, ok := r.m.Load(nt); ok {
		return v.(apis.Enumeration), true
	}
	// Normalize stops at *D when only the pointer's method set is needed;
	// value definitions are stored under D.
	if nt.Kind() == reflect.Ptr {
		if v, ok := r.m.Load(nt.Elem()); ok {
			return v.(apis.Enumeration), true
		}
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		e := value.(apis.Enumeration)
		entries = append(entries, apis.Entry{
			Type:  key.(reflect.Type),
			Kind:  e.Kind(),
			Ready: e.Ready(),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
