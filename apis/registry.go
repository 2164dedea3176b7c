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

package apis

import "reflect"

// Enumeration is the type-erased view of one enumeration's metadata record.
type Enumeration interface {
	// Type returns the definition type the record belongs to.
	Type() reflect.Type
	// Kind returns the declared kind.
	Kind() Kind
	// Setup runs the one-time initialization. It is idempotent once it has
	// succeeded and retried from scratch after a failure.
	Setup() error
	// Ready reports whether setup has completed successfully.
	Ready() bool
}

// Registry stores one Enumeration per definition type.
// Keep it minimal so implementations can be lock-free or sync.Map-backed.
type Registry interface {
	// Register stores e under e.Type(). Registering the same record again is a
	// no-op; registering a different record for the same type is an error.
	Register(e Enumeration) error
	// Lookup returns the record stored for t, if any.
	Lookup(t reflect.Type) (Enumeration, bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered records.
	Count() int
	// Reset clears all registered records.
	Reset()
}

// Entry is a single record in a Registry snapshot.
type Entry struct {
	// Type is the definition type.
	Type reflect.Type
	// Kind is the declared kind.
	Kind Kind
	// Ready reports whether setup had completed when the snapshot was taken.
	Ready bool
}
