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

// Package kind validates and normalizes raw enumeration values.
//
// Each apis.Kind has a Validator. Declared values go through Declare while the
// setup table is built; values passed to lookups go through Coerce. Both
// return the normalized form stored in tables: string for textual kinds and
// int64 for numeric kinds, so that int(1), uint8(1) and a named integer type
// with value 1 address the same case.
package kind

import (
	"math"
	"reflect"

	"golang.org/x/text/unicode/norm"

	"dirpx.dev/enum/apis"
)

// Validator checks raw values for one kind.
type Validator interface {
	// Kind returns the kind handled by the validator.
	Kind() apis.Kind
	// Declare normalizes a value from a definition's case table.
	Declare(v any) (any, error)
	// Coerce normalizes a value supplied at lookup time.
	Coerce(v any) (any, error)
	// Zero returns the normalized zero value reported by the undefined sentinel.
	Zero() any
}

// For returns the validator for k, or an UnsupportedOperation error for
// UnknownKind and out-of-range values.
func For(k apis.Kind) (Validator, error) {
	switch k {
	case apis.StringKind:
		return stringValidator{}, nil
	case apis.CharKind:
		return charValidator{}, nil
	case apis.IntegerKind:
		return integerValidator{}, nil
	case apis.UnsignedIntegerKind:
		return unsignedValidator{}, nil
	case apis.MaskKind:
		return maskValidator{}, nil
	default:
		return nil, apis.Errorf(apis.CodeUnsupportedOperation, "kind %s has no validator", k)
	}
}

type stringValidator struct{}

func (stringValidator) Kind() apis.Kind { return apis.StringKind }
func (stringValidator) Zero() any       { return "" }

func (stringValidator) Declare(v any) (any, error) { return asString(v) }
func (stringValidator) Coerce(v any) (any, error)  { return asString(v) }

// charValidator checks the single character constraint before the string
// primitive, so a multi-character string never reports TypeMismatch.
type charValidator struct{}

func (charValidator) Kind() apis.Kind { return apis.CharKind }
func (charValidator) Zero() any       { return "" }

func (c charValidator) Declare(v any) (any, error) { return c.Coerce(v) }

func (charValidator) Coerce(v any) (any, error) {
	if s, ok := stringOf(v); ok && Characters(s) != 1 {
		return nil, apis.Errorf(apis.CodeMultiCharacterValue, "%q is not a single character", s)
	}
	return asString(v)
}

type integerValidator struct{}

func (integerValidator) Kind() apis.Kind { return apis.IntegerKind }
func (integerValidator) Zero() any       { return int64(0) }

func (integerValidator) Declare(v any) (any, error) { return asInt64(v) }
func (integerValidator) Coerce(v any) (any, error)  { return asInt64(v) }

// unsignedValidator checks the sign before the integer primitive.
type unsignedValidator struct{}

func (unsignedValidator) Kind() apis.Kind { return apis.UnsignedIntegerKind }
func (unsignedValidator) Zero() any       { return int64(0) }

func (u unsignedValidator) Declare(v any) (any, error) { return u.Coerce(v) }

func (unsignedValidator) Coerce(v any) (any, error) {
	if n, ok := signedOf(v); ok && n < 0 {
		return nil, apis.Errorf(apis.CodeNegativeValue, "%d is negative", n)
	}
	return asInt64(v)
}

type maskValidator struct{}

func (maskValidator) Kind() apis.Kind { return apis.MaskKind }
func (maskValidator) Zero() any       { return int64(0) }

func (maskValidator) Declare(v any) (any, error) {
	n, err := intOf(v)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, apis.Errorf(apis.CodeMaskBoundsViolation, "flag value %d is negative", n)
	}
	return n, nil
}

func (maskValidator) Coerce(v any) (any, error) {
	n, err := intOf(v)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, apis.Errorf(apis.CodeNegativeComposedValue, "flag value %d is negative", n)
	}
	return n, nil
}

// Characters counts user-perceived characters in s.
//
// A character is approximated by a normalization segment: a starter followed
// by its combining marks, so "é" counts as one.
func Characters(s string) int {
	var it norm.Iter
	it.InitString(norm.NFC, s)
	n := 0
	for !it.Done() {
		it.Next()
		n++
	}
	return n
}

func stringOf(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func signedOf(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	}
	return 0, false
}

func asString(v any) (any, error) {
	if s, ok := stringOf(v); ok {
		return s, nil
	}
	return nil, mismatch(v, "string")
}

func asInt64(v any) (any, error) {
	n, err := intOf(v)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// intOf widens any Go integer, including named integer types, to int64.
func intOf(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, mismatch(v, "integer")
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, apis.Errorf(apis.CodeTypeMismatch, "%d overflows int64", u)
		}
		return int64(u), nil
	}
	return 0, mismatch(v, "integer")
}

func mismatch(v any, want string) error {
	return apis.Errorf(apis.CodeTypeMismatch, "%T is not a valid %s value", v, want).
		WithDetail("got", reflect.TypeOf(v)).
		WithDetail("want", want)
}
