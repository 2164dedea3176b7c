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

package reflect

import (
	"reflect"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = apis.NewError(apis.CodeNotAnEnum, "nil reflect.Type provided")
	// ErrReflectNoContract indicates that no layer of the provided type
	// implements any of the requested contracts.
	ErrReflectNoContract = apis.NewError(apis.CodeNotAnEnum, "type implements no enumeration contract")
)

// Normalize unwraps containers according to cfg.MaxUnwrap and returns the
// first layer that implements one of contracts, either directly or through
// its pointer type.
//
// Unwrapping policy:
//   - the current layer is tested first, so *Instance[D] is returned as is;
//   - ptr/slice/array/chan/map -> Elem();
//   - anything else ends the walk with ErrReflectNoContract.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config, contracts ...reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; t != nil && i <= maxUnwrap; i++ {
		if Implements(t, contracts...) {
			return t, nil
		}
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan, reflect.Map:
			t = t.Elem()
		default:
			return nil, ErrReflectNoContract
		}
	}
	return nil, ErrReflectNoContract
}

// Implements reports whether t or *t implements any of contracts.
// Interface types never do: they have no zero value to call methods on.
func Implements(t reflect.Type, contracts ...reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}
	for _, c := range contracts {
		if t.Implements(c) {
			return true
		}
		if t.Kind() != reflect.Ptr && reflect.PointerTo(t).Implements(c) {
			return true
		}
	}
	return false
}

// Zero returns a value of t usable as a method receiver for contracts whose
// methods ignore receiver state. Pointer types get a pointer to a fresh
// zero value rather than nil, so promoted value methods do not panic.
func Zero(t reflect.Type, contract reflect.Type) (any, bool) {
	if t == nil || t.Kind() == reflect.Interface {
		return nil, false
	}
	switch {
	case t.Kind() == reflect.Ptr && t.Implements(contract):
		return reflect.New(t.Elem()).Interface(), true
	case t.Implements(contract):
		return reflect.New(t).Elem().Interface(), true
	case t.Kind() != reflect.Ptr && reflect.PointerTo(t).Implements(contract):
		return reflect.New(t).Interface(), true
	}
	return nil, false
}
