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

package mask

import (
	"reflect"
	"strings"

	"dirpx.dev/enum/accessor"
	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/name"
	"dirpx.dev/enum/registry"
)

// Flags is a composed value of a mask enumeration.
//
// Flags is a comparable value type, but == also compares the setup table a
// value came from, so Flags built from different records of one enumeration
// (after a registry rebuild, say) differ under ==. Compare with Equal. The
// zero Flags holds no bits and belongs to no table; obtain instances from Type.
type Flags[D apis.Definition] struct {
	value     int64
	undefined bool
	tbl       *registry.Table
}

// Type returns the definition type.
func (f Flags[D]) Type() reflect.Type { return reflect.TypeFor[D]() }

// Kind returns apis.MaskKind.
func (f Flags[D]) Kind() apis.Kind { return apis.MaskKind }

// Value returns the composed value as int64.
func (f Flags[D]) Value() any { return f.value }

// Bits returns the composed value.
func (f Flags[D]) Bits() int64 { return f.value }

// IsUndefined reports whether f is the undefined sentinel.
func (f Flags[D]) IsUndefined() bool { return f.undefined }

// Equal reports whether other holds the same bits. The undefined sentinel
// equals nothing.
func (f Flags[D]) Equal(other apis.Instance) bool {
	var o Flags[D]
	switch v := other.(type) {
	case Flags[D]:
		o = v
	case *Flags[D]:
		if v == nil {
			return false
		}
		o = *v
	default:
		return false
	}
	if f.undefined || o.undefined {
		return false
	}
	return f.value == o.value
}

// Contains reports whether f and other share at least one bit.
// It is false when either side is the undefined sentinel.
func (f Flags[D]) Contains(other Flags[D]) bool {
	if f.undefined || other.undefined {
		return false
	}
	return overlaps(f.value, other.value)
}

// ContainsAll reports whether Contains holds for every element of others.
func (f Flags[D]) ContainsAll(others ...Flags[D]) bool {
	for _, o := range others {
		if !f.Contains(o) {
			return false
		}
	}
	return true
}

// Any reports whether Contains holds for at least one element of others.
func (f Flags[D]) Any(others ...Flags[D]) bool {
	for _, o := range others {
		if f.Contains(o) {
			return true
		}
	}
	return false
}

// Decompose returns the names of the declared cases sharing a bit with f,
// in declaration order.
func (f Flags[D]) Decompose() []name.Name {
	if f.tbl == nil || f.undefined {
		return nil
	}
	var out []name.Name
	for _, c := range f.tbl.Cases {
		if overlaps(f.value, c.Value.(int64)) {
			out = append(out, c.Name)
		}
	}
	return out
}

// Names returns Decompose, or UNDEFINED for the sentinel.
func (f Flags[D]) Names() []name.Name {
	if f.undefined {
		return []name.Name{name.New(apis.UndefinedName, apis.UndefinedName)}
	}
	return f.Decompose()
}

// String joins the contained case names with "|".
func (f Flags[D]) String() string {
	names := f.Names()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, "|")
}

// Is reports whether f contains the case named raw. "UNDEFINED" is
// accepted when the sentinel is enabled.
func (f Flags[D]) Is(raw string) (bool, error) {
	return f.check(accessor.Is, raw, "is"+raw)
}

// Not is the negation of Is.
func (f Flags[D]) Not(raw string) (bool, error) {
	return f.check(accessor.Not, raw, "not"+raw)
}

// Check evaluates a boolean accessor such as "isRead" or "notWrite".
func (f Flags[D]) Check(method string) (bool, error) {
	a, err := accessor.Parse(method)
	if err != nil {
		return false, f.attribute(err)
	}
	return f.apply(a.Op, a.Case, method)
}

func (f Flags[D]) check(op accessor.Op, raw, method string) (bool, error) {
	n, err := name.Resolve(raw)
	if err != nil {
		return false, f.attribute(accessor.Unsupported(method))
	}
	return f.apply(op, n, method)
}

func (f Flags[D]) apply(op accessor.Op, n name.Name, method string) (bool, error) {
	if f.tbl == nil {
		return false, f.attribute(accessor.Unsupported(method))
	}
	if f.tbl.Undefined && n.String() == apis.UndefinedName {
		return op.Apply(f.undefined), nil
	}
	i, ok := f.tbl.IndexOfName(n)
	if !ok {
		return false, f.attribute(accessor.Unsupported(method))
	}
	match := !f.undefined && overlaps(f.value, f.tbl.Cases[i].Value.(int64))
	return op.Apply(match), nil
}

func (f Flags[D]) attribute(err error) error {
	if e, ok := err.(*apis.Error); ok {
		return e.WithEnum(f.Type().String())
	}
	return err
}

func (f Flags[D]) illegal(op string) error {
	return apis.Errorf(apis.CodeIllegalMutation, "%s is not allowed on enum instances", op).
		WithEnum(f.Type().String())
}

// Clone always fails: flag values are produced by Type only.
func (f Flags[D]) Clone() (Flags[D], error) { return Flags[D]{}, f.illegal("clone") }

// MarshalJSON always fails: instances have no persistence format.
func (f Flags[D]) MarshalJSON() ([]byte, error) { return nil, f.illegal("json marshal") }

// UnmarshalJSON always fails.
func (f *Flags[D]) UnmarshalJSON([]byte) error { return f.illegal("json unmarshal") }

// MarshalText always fails.
func (f Flags[D]) MarshalText() ([]byte, error) { return nil, f.illegal("text marshal") }

// UnmarshalText always fails.
func (f *Flags[D]) UnmarshalText([]byte) error { return f.illegal("text unmarshal") }

// MarshalBinary always fails.
func (f Flags[D]) MarshalBinary() ([]byte, error) { return nil, f.illegal("binary marshal") }

// UnmarshalBinary always fails.
func (f *Flags[D]) UnmarshalBinary([]byte) error { return f.illegal("binary unmarshal") }

// GobEncode always fails.
func (f Flags[D]) GobEncode() ([]byte, error) { return nil, f.illegal("gob encode") }

// GobDecode always fails.
func (f *Flags[D]) GobDecode([]byte) error { return f.illegal("gob decode") }

var _ apis.Instance = Flags[apis.Definition]{}
