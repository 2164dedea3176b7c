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

// Package accessor parses boolean accessor method names.
//
// An accessor is "is" or "not" followed by a case name in any spelling the
// name package accepts: "isRed", "notDarkBlue", "is_dark_blue".
package accessor

import (
	"strings"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/name"
)

// Op is the boolean operation of an accessor.
type Op uint8

const (
	// Is tests that an instance is the named case.
	Is Op = iota + 1
	// Not tests that an instance is not the named case.
	Not
)

func (o Op) String() string {
	switch o {
	case Is:
		return "is"
	case Not:
		return "not"
	default:
		return "invalid"
	}
}

// Apply returns match for Is and its negation for Not.
func (o Op) Apply(match bool) bool {
	if o == Not {
		return !match
	}
	return match
}

// Accessor is a parsed accessor method name.
type Accessor struct {
	Method string
	Op     Op
	Case   name.Name
}

// Undefined reports whether the accessor targets the undefined sentinel.
func (a Accessor) Undefined() bool {
	return a.Case.String() == apis.UndefinedName
}

// Parse splits method into its operation and case name.
//
// A method without a lower-case "is"/"not" prefix, or whose remainder is not
// a valid name, fails with apis.CodeUnsupportedOperation.
func Parse(method string) (Accessor, error) {
	op, rest, ok := cut(method)
	if !ok {
		return Accessor{}, unsupported(method)
	}
	n, err := name.Resolve(rest)
	if err != nil {
		return Accessor{}, unsupported(method)
	}
	return Accessor{Method: method, Op: op, Case: n}, nil
}

// Unsupported builds the error reported for a method no case answers to.
func Unsupported(method string) error { return unsupported(method) }

// cut matches the lower-case prefixes only, so "IsRed" and "NOTRed" are
// not accessors.
func cut(method string) (Op, string, bool) {
	if rest, ok := strings.CutPrefix(method, "not"); ok && rest != "" {
		return Not, rest, true
	}
	if rest, ok := strings.CutPrefix(method, "is"); ok && rest != "" {
		return Is, rest, true
	}
	return 0, "", false
}

func unsupported(method string) *apis.Error {
	return apis.Errorf(apis.CodeUnsupportedOperation, "method %q is not a boolean accessor", method).
		WithDetail("method", method)
}
