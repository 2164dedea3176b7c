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

// Package collection provides an ordered, type-checked container of
// enumeration instances of any kind.
package collection

import (
	"iter"
	"reflect"
	"slices"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/name"
	uref "dirpx.dev/enum/utils/reflect"
)

// Member is the contract a value must satisfy to be stored.
// Scalar instances report their own name; mask flags report every
// contained case name.
type Member interface {
	apis.Instance
	Names() []name.Name
}

var definitionType = reflect.TypeFor[apis.Definition]()

// Collection maps integer offsets to members and keeps insertion order.
// It is not safe for concurrent mutation.
type Collection struct {
	items map[int]Member
	order []int
	next  int
}

// New builds a collection holding values at offsets 0..len(values)-1.
func New(values ...any) (*Collection, error) {
	c := &Collection{items: make(map[int]Member, len(values))}
	for i, v := range values {
		if err := c.Set(i, v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Get returns the member at offset.
func (c *Collection) Get(offset int) (Member, bool) {
	m, ok := c.items[offset]
	return m, ok
}

// Set stores v at offset. Replacing keeps the original position.
//
// v must be a non-nil struct or pointer (apis.CodeNotAnObject) that
// implements Member (apis.CodeNotAnEnum).
func (c *Collection) Set(offset int, v any) error {
	m, err := member(v)
	if err != nil {
		return err
	}
	if c.items == nil {
		c.items = make(map[int]Member)
	}
	if _, ok := c.items[offset]; !ok {
		c.order = append(c.order, offset)
	}
	c.items[offset] = m
	if offset >= c.next {
		c.next = offset + 1
	}
	return nil
}

// Append stores v after the highest offset used so far.
func (c *Collection) Append(v any) error {
	return c.Set(c.next, v)
}

// Unset removes the member at offset, if any.
func (c *Collection) Unset(offset int) {
	if _, ok := c.items[offset]; !ok {
		return
	}
	delete(c.items, offset)
	c.order = slices.DeleteFunc(c.order, func(o int) bool { return o == offset })
}

// Has reports whether offset holds a member.
func (c *Collection) Has(offset int) bool {
	_, ok := c.items[offset]
	return ok
}

// Count returns the number of members.
func (c *Collection) Count() int { return len(c.order) }

// All iterates offsets and members in insertion order.
func (c *Collection) All() iter.Seq2[int, Member] {
	return func(yield func(int, Member) bool) {
		for _, o := range c.order {
			if !yield(o, c.items[o]) {
				return
			}
		}
	}
}

// Slice returns the members in insertion order.
func (c *Collection) Slice() []Member {
	out := make([]Member, 0, len(c.order))
	for _, m := range c.All() {
		out = append(out, m)
	}
	return out
}

// Values returns the raw values in insertion order.
func (c *Collection) Values() []any {
	out := make([]any, 0, len(c.order))
	for _, m := range c.All() {
		out = append(out, m.Value())
	}
	return out
}

// Names returns the names of all members flattened in insertion order.
// Mask members contribute every contained case name.
func (c *Collection) Names() []name.Name {
	var out []name.Name
	for _, m := range c.All() {
		out = append(out, m.Names()...)
	}
	return out
}

// PlainNames is Names as canonical strings.
func (c *Collection) PlainNames() []string {
	names := c.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}

// Any reports whether at least one of others is in the collection.
func (c *Collection) Any(others ...apis.Instance) bool {
	for _, o := range others {
		if c.contains(o) {
			return true
		}
	}
	return false
}

// Every reports whether each of others is in the collection.
func (c *Collection) Every(others ...apis.Instance) bool {
	for _, o := range others {
		if !c.contains(o) {
			return false
		}
	}
	return true
}

// Filter returns a new collection with the members keep accepts.
// Offsets are renumbered from zero.
func (c *Collection) Filter(keep func(Member) bool) *Collection {
	out := &Collection{items: make(map[int]Member)}
	for _, m := range c.All() {
		if keep(m) {
			out.items[out.next] = m
			out.order = append(out.order, out.next)
			out.next++
		}
	}
	return out
}

// FilterByType keeps the members declared by one of types.
// Every type must be an enumeration definition type (apis.CodeNotAnEnum).
func (c *Collection) FilterByType(types ...reflect.Type) (*Collection, error) {
	for _, t := range types {
		if t == nil || !uref.Implements(t, definitionType) {
			return nil, apis.Errorf(apis.CodeNotAnEnum, "%v is not an enumeration type", t)
		}
	}
	return c.Filter(func(m Member) bool {
		return slices.Contains(types, m.Type())
	}), nil
}

// contains compares by runtime type first, then by Equal.
func (c *Collection) contains(o apis.Instance) bool {
	if o == nil {
		return false
	}
	ot := reflect.TypeOf(o)
	for _, m := range c.All() {
		if reflect.TypeOf(m) == ot && m.Equal(o) {
			return true
		}
	}
	return false
}

func member(v any) (Member, error) {
	if v == nil {
		return nil, apis.NewError(apis.CodeNotAnObject, "nil is not an object")
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Struct:
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, apis.Errorf(apis.CodeNotAnObject, "nil %T is not an object", v)
		}
	default:
		return nil, apis.Errorf(apis.CodeNotAnObject, "%T is not an object", v).WithDetail("type", rv.Type())
	}
	m, ok := v.(Member)
	if !ok {
		return nil, apis.Errorf(apis.CodeNotAnEnum, "%T is not an enumeration instance", v).WithDetail("type", rv.Type())
	}
	return m, nil
}
