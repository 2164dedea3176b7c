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
	"errors"
	"fmt"
	"strings"
)

// ErrorCode is a machine-readable failure reason.
type ErrorCode string

// Declaration-time codes. They are raised while an enumeration is set up and
// are reported again on every setup attempt until the declaration is fixed.
const (
	CodeNoCasesDeclared       ErrorCode = "no_cases_declared"
	CodeTypeMismatch          ErrorCode = "type_mismatch"
	CodeDuplicateValue        ErrorCode = "duplicate_value"
	CodeDuplicateName         ErrorCode = "duplicate_name"
	CodeReservedNameCollision ErrorCode = "reserved_name_collision"
	CodeMultiCharacterValue   ErrorCode = "multi_character_value"
	CodeNegativeValue         ErrorCode = "negative_value"
	CodeMaskBoundsViolation   ErrorCode = "mask_bounds_violation"
	CodeInvalidNameFormat     ErrorCode = "invalid_name_format"
)

// Lookup-time codes.
const (
	CodeUnknownName           ErrorCode = "unknown_name"
	CodeUnknownValue          ErrorCode = "unknown_value"
	CodeNegativeIndex         ErrorCode = "negative_index"
	CodeInvalidIndex          ErrorCode = "invalid_index"
	CodeAllExcluded           ErrorCode = "all_excluded"
	CodeNegativeComposedValue ErrorCode = "negative_composed_value"
	CodeValueExceedsMask      ErrorCode = "value_exceeds_mask"
)

// Operation-time codes.
const (
	CodeUnsupportedOperation ErrorCode = "unsupported_operation"
	CodeNotAnObject          ErrorCode = "not_an_object"
	CodeNotAnEnum            ErrorCode = "not_an_enum"
	CodeIllegalMutation      ErrorCode = "illegal_mutation"
	CodeInvalidConfig        ErrorCode = "invalid_config"
)

// Category groups error codes by the phase that produces them.
type Category string

const (
	CategoryDeclaration Category = "declaration"
	CategoryLookup      Category = "lookup"
	CategoryOperation   Category = "operation"
)

// Category returns the phase the code belongs to.
func (c ErrorCode) Category() Category {
	switch c {
	case CodeNoCasesDeclared, CodeTypeMismatch, CodeDuplicateValue, CodeDuplicateName,
		CodeReservedNameCollision, CodeMultiCharacterValue, CodeNegativeValue,
		CodeMaskBoundsViolation, CodeInvalidNameFormat:
		return CategoryDeclaration
	case CodeUnknownName, CodeUnknownValue, CodeNegativeIndex, CodeInvalidIndex,
		CodeAllExcluded, CodeNegativeComposedValue, CodeValueExceedsMask:
		return CategoryLookup
	default:
		return CategoryOperation
	}
}

// Error is the error type returned by every package of this module.
//
// Two errors match under errors.Is when their codes are equal, so callers
// can test against the sentinel values below:
//
//	if errors.Is(err, apis.ErrUnknownName) { ... }
type Error struct {
	Code    ErrorCode
	Enum    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("enum")
	if e.Enum != "" {
		b.WriteString("(")
		b.WriteString(e.Enum)
		b.WriteString(")")
	}
	b.WriteString(": ")
	b.WriteString(string(e.Code))
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// NewError creates an error with a fixed message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Errorf creates an error with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithEnum returns a copy of e attributed to the named enumeration.
func (e *Error) WithEnum(enum string) *Error {
	c := *e
	c.Enum = enum
	return &c
}

// WithDetail returns a copy of e with key set in Details.
func (e *Error) WithDetail(key string, value any) *Error {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	c := *e
	c.Details = details
	return &c
}

// CodeOf extracts the code of an *Error in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Sentinels for errors.Is.
var (
	ErrNoCasesDeclared       = &Error{Code: CodeNoCasesDeclared}
	ErrTypeMismatch          = &Error{Code: CodeTypeMismatch}
	ErrDuplicateValue        = &Error{Code: CodeDuplicateValue}
	ErrDuplicateName         = &Error{Code: CodeDuplicateName}
	ErrReservedNameCollision = &Error{Code: CodeReservedNameCollision}
	ErrMultiCharacterValue   = &Error{Code: CodeMultiCharacterValue}
	ErrNegativeValue         = &Error{Code: CodeNegativeValue}
	ErrMaskBoundsViolation   = &Error{Code: CodeMaskBoundsViolation}
	ErrInvalidNameFormat     = &Error{Code: CodeInvalidNameFormat}

	ErrUnknownName           = &Error{Code: CodeUnknownName}
	ErrUnknownValue          = &Error{Code: CodeUnknownValue}
	ErrNegativeIndex         = &Error{Code: CodeNegativeIndex}
	ErrInvalidIndex          = &Error{Code: CodeInvalidIndex}
	ErrAllExcluded           = &Error{Code: CodeAllExcluded}
	ErrNegativeComposedValue = &Error{Code: CodeNegativeComposedValue}
	ErrValueExceedsMask      = &Error{Code: CodeValueExceedsMask}

	ErrUnsupportedOperation = &Error{Code: CodeUnsupportedOperation}
	ErrNotAnObject          = &Error{Code: CodeNotAnObject}
	ErrNotAnEnum            = &Error{Code: CodeNotAnEnum}
	ErrIllegalMutation      = &Error{Code: CodeIllegalMutation}
	ErrInvalidConfig        = &Error{Code: CodeInvalidConfig}
)
