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

	"dirpx.dev/enum/accessor"
	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/name"
)

// Instance is one case of a scalar enumeration.
//
// Instances are interned at setup: every lookup of the same case returns the
// same pointer, so == and Equal agree. They are immutable and refuse to be
// cloned or serialized.
type Instance[D apis.Definition] struct {
	_ noCopy

	index     int
	name      name.Name
	value     any
	undefined bool
	tbl       *table[D]
}

// Type returns the definition type.
func (i *Instance[D]) Type() reflect.Type { return reflect.TypeFor[D]() }

// Kind returns the declared kind. It is safe on a nil receiver.
func (i *Instance[D]) Kind() apis.Kind { return zero[D]().EnumKind() }

// Index returns the declaration position, or -1 for the undefined sentinel.
func (i *Instance[D]) Index() int { return i.index }

// Name returns the case name.
func (i *Instance[D]) Name() name.Name { return i.name }

// Names returns the case name as a one-element slice.
func (i *Instance[D]) Names() []name.Name { return []name.Name{i.name} }

// Value returns the normalized raw value.
func (i *Instance[D]) Value() any { return i.value }

// IsUndefined reports whether i is the undefined sentinel.
func (i *Instance[D]) IsUndefined() bool { return i.undefined }

// String returns the canonical case name.
func (i *Instance[D]) String() string { return i.name.String() }

// Equal reports whether other is the same case of the same enumeration.
// The undefined sentinel equals nothing, itself included.
func (i *Instance[D]) Equal(other apis.Instance) bool {
	o, ok := other.(*Instance[D])
	if !ok || i == nil || o == nil || i.undefined || o.undefined {
		return false
	}
	return i.index == o.index
}

// Any reports whether i equals at least one of others.
func (i *Instance[D]) Any(others ...apis.Instance) bool {
	for _, o := range others {
		if i.Equal(o) {
			return true
		}
	}
	return false
}

// Is reports whether i is the case named raw. "UNDEFINED" is accepted when
// the sentinel is enabled. Unknown names fail with apis.CodeUnsupportedOperation.
func (i *Instance[D]) Is(raw string) (bool, error) {
	return i.check(accessor.Is, raw, "is"+raw)
}

// Not is the negation of Is.
func (i *Instance[D]) Not(raw string) (bool, error) {
	return i.check(accessor.Not, raw, "not"+raw)
}

// Check evaluates a boolean accessor such as "isRed" or "notUndefined".
func (i *Instance[D]) Check(method string) (bool, error) {
	a, err := accessor.Parse(method)
	if err != nil {
		return false, i.attribute(err)
	}
	pred, ok := i.tbl.checks[a.Case.String()]
	if !ok {
		return false, i.attribute(accessor.Unsupported(method))
	}
	return a.Op.Apply(pred(i)), nil
}

func (i *Instance[D]) check(op accessor.Op, raw, method string) (bool, error) {
	n, err := name.Resolve(raw)
	if err != nil {
		return false, i.attribute(accessor.Unsupported(method))
	}
	pred, ok := i.tbl.checks[n.String()]
	if !ok {
		return false, i.attribute(accessor.Unsupported(method))
	}
	return op.Apply(pred(i)), nil
}

func (i *Instance[D]) attribute(err error) error {
	if e, ok := err.(*apis.Error); ok {
		return e.WithEnum(i.Type().String())
	}
	return err
}

func (i *Instance[D]) illegal(op string) error {
	return apis.Errorf(apis.CodeIllegalMutation, "%s is not allowed on enum instances", op).
		WithEnum(i.Type().String())
}

// Clone always fails: instances are singletons.
func (i *Instance[D]) Clone() (*Instance[D], error) { return nil, i.illegal("clone") }

// MarshalJSON always fails: instances have no persistence format.
func (i *Instance[D]) MarshalJSON() ([]byte, error) { return nil, i.illegal("json marshal") }

// UnmarshalJSON always fails.
func (i *Instance[D]) UnmarshalJSON([]byte) error { return i.illegal("json unmarshal") }

// MarshalText always fails.
func (i *Instance[D]) MarshalText() ([]byte, error) { return nil, i.illegal("text marshal") }

// UnmarshalText always fails.
func (i *Instance[D]) UnmarshalText([]byte) error { return i.illegal("text unmarshal") }

// MarshalBinary always fails.
func (i *Instance[D]) MarshalBinary() ([]byte, error) { return nil, i.illegal("binary marshal") }

// UnmarshalBinary always fails.
func (i *Instance[D]) UnmarshalBinary([]byte) error { return i.illegal("binary unmarshal") }

// GobEncode always fails.
func (i *Instance[D]) GobEncode() ([]byte, error) { return nil, i.illegal("gob encode") }

// GobDecode always fails.
func (i *Instance[D]) GobDecode([]byte) error { return i.illegal("gob decode") }

// noCopy may be embedded into structs which must not be copied after first
// use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

var _ apis.Instance = (*Instance[apis.Definition])(nil)
