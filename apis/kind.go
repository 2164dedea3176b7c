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

import (
	"fmt"
	"strings"
)

// Kind selects the value semantics of an enumeration.
//
// # Overview
//
// Every enumeration belongs to exactly one Kind. The Kind decides which
// primitive the declared raw values must have, which additional constraints
// apply to them, and whether instances represent a single case or a
// composed set of flags.
//
// # Values
//
//   - StringKind: raw values are strings.
//   - CharKind: raw values are strings of exactly one character.
//   - IntegerKind: raw values are signed integers.
//   - UnsignedIntegerKind: raw values are non-negative integers.
//   - MaskKind: raw values are non-negative bit flags; instances may hold
//     any union of them.
//
// The zero value is UnknownKind and never describes a valid enumeration.
type Kind uint8

const (
	// UnknownKind is reported for values and types that are not enumerations.
	UnknownKind Kind = iota
	// StringKind enumerations carry string raw values.
	StringKind
	// CharKind enumerations carry single-character string raw values.
	CharKind
	// IntegerKind enumerations carry signed integer raw values.
	IntegerKind
	// UnsignedIntegerKind enumerations carry non-negative integer raw values.
	UnsignedIntegerKind
	// MaskKind enumerations carry bit flags and compose them into sets.
	MaskKind
)

// String returns a short, stable identifier for the Kind.
//
// Unknown or out-of-range values produce "Unknown(<n>)" instead of panicking,
// so corrupted values can still be logged.
func (k Kind) String() string {
	switch k {
	case UnknownKind:
		return "unknown"
	case StringKind:
		return "string"
	case CharKind:
		return "char"
	case IntegerKind:
		return "integer"
	case UnsignedIntegerKind:
		return "unsigned_integer"
	case MaskKind:
		return "mask"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Valid reports whether k names one of the enumeration kinds.
func (k Kind) Valid() bool {
	return k >= StringKind && k <= MaskKind
}

// Textual reports whether raw values of this kind are strings.
func (k Kind) Textual() bool {
	return k == StringKind || k == CharKind
}

// Numeric reports whether raw values of this kind are integers.
func (k Kind) Numeric() bool {
	return k == IntegerKind || k == UnsignedIntegerKind || k == MaskKind
}

// ParseKind parses the textual form produced by Kind.String.
//
// Matching is case-insensitive, surrounding whitespace is ignored and "-"
// or " " may be used in place of "_". "unknown" is rejected.
func ParseKind(s string) (Kind, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return UnknownKind, fmt.Errorf("enum: empty kind")
	}

	token := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(trimmed))
	switch token {
	case "string":
		return StringKind, nil
	case "char":
		return CharKind, nil
	case "integer", "int":
		return IntegerKind, nil
	case "unsigned_integer", "unsigned", "uint":
		return UnsignedIntegerKind, nil
	case "mask", "flags":
		return MaskKind, nil
	default:
		return UnknownKind, fmt.Errorf("enum: unknown kind %q", s)
	}
}

// MustParseKind is like ParseKind but panics on invalid input.
func MustParseKind(s string) Kind {
	k, err := ParseKind(s)
	if err != nil {
		panic(err)
	}
	return k
}

// MarshalText encodes a valid Kind as its String form.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("enum: cannot marshal kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a Kind. On failure *k is left unchanged.
func (k *Kind) UnmarshalText(text []byte) error {
	value, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = value
	return nil
}
