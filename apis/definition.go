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

// UndefinedName is the reserved canonical name of the undefined sentinel case.
const UndefinedName = "UNDEFINED"

// Case is one declared (name, raw value) pair.
//
// Value must be a string for textual kinds and a Go integer type for numeric
// kinds; anything else fails setup with CodeTypeMismatch.
type Case struct {
	Name  string
	Value any
}

// Definition is implemented by the marker type that declares an enumeration.
//
// # Contract
//
//   - EnumCases MUST return the same ordered table on every call. Declaration
//     order fixes the index of every case.
//   - EnumKind MUST be constant for the type.
//   - Both methods are called on the zero value of the type and MUST NOT
//     depend on instance state.
//
// # Usage
//
//	type Color struct{}
//
//	func (Color) EnumKind() apis.Kind { return apis.StringKind }
//	func (Color) EnumCases() []apis.Case {
//	    return []apis.Case{{"RED", "red"}, {"GREEN", "green"}}
//	}
type Definition interface {
	EnumCases() []Case
	EnumKind() Kind
}

// UndefinedCapable is implemented by definitions that opt into the undefined
// sentinel. Embedding Undefined is the usual way to implement it.
type UndefinedCapable interface {
	EnumUndefined() bool
}

// Undefined is embedded in a definition to enable the undefined sentinel:
//
//	type Color struct{ apis.Undefined }
//
// With the capability on, lookup misses return the sentinel instead of failing.
type Undefined struct{}

// EnumUndefined implements UndefinedCapable.
func (Undefined) EnumUndefined() bool { return true }

// Instance is the kind-independent view of an enumeration instance.
type Instance interface {
	// Type returns the definition type that declared the instance.
	Type() reflect.Type
	// Kind returns the kind of the declaring enumeration.
	Kind() Kind
	// Value returns the raw value: string for textual kinds, int64 otherwise.
	// The undefined sentinel reports the zero value of its kind.
	Value() any
	// IsUndefined reports whether the instance is the undefined sentinel.
	IsUndefined() bool
	// Equal reports whether other represents the same case (scalar kinds) or
	// the same composed value (mask kind). The undefined sentinel equals nothing.
	Equal(other Instance) bool
}
