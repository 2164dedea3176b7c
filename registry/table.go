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
	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/kind"
	"dirpx.dev/enum/name"
)

// CaseDef is one declared case after validation.
type CaseDef struct {
	// Name is the resolved case name.
	Name name.Name
	// Value is the normalized raw value: string or int64.
	Value any
	// Index is the declaration position.
	Index int
}

// Table is the immutable metadata an enumeration publishes after setup.
// Callers must not modify Cases.
type Table struct {
	// Kind is the declared kind.
	Kind apis.Kind
	// Cases lists the declared cases in declaration order.
	Cases []CaseDef
	// AllBits is the union of every declared value for MaskKind, zero otherwise.
	AllBits int64
	// Undefined reports whether the undefined sentinel is enabled.
	Undefined bool

	byName  map[string]int
	byValue map[any]int
}

// Len returns the number of declared cases.
func (m *Table) Len() int { return len(m.Cases) }

// IndexOfName returns the index of the case whose canonical name is n.
func (m *Table) IndexOfName(n name.Name) (int, bool) {
	i, ok := m.byName[n.String()]
	return i, ok
}

// IndexOfValue returns the index of the case with normalized value v.
func (m *Table) IndexOfValue(v any) (int, bool) {
	i, ok := m.byValue[v]
	return i, ok
}

// table is the per-type setup result: metadata plus interned instances
// and the boolean check closures.
type table[D apis.Definition] struct {
	*Table

	validator kind.Validator
	instances []*Instance[D]
	undefined *Instance[D]
	// checks maps a canonical case name to its "is" predicate.
	checks map[string]func(*Instance[D]) bool
}

// build validates the declaration of D and produces its table.
// It has no side effects, so a failed build can simply be retried.
func build[D apis.Definition](d D, undefined bool) (*table[D], error) {
	k := d.EnumKind()
	v, err := kind.For(k)
	if err != nil {
		return nil, err
	}
	raw := d.EnumCases()
	if len(raw) == 0 {
		return nil, apis.NewError(apis.CodeNoCasesDeclared, "no cases declared")
	}

	meta := &Table{
		Kind:      k,
		Cases:     make([]CaseDef, 0, len(raw)),
		Undefined: undefined,
		byName:    make(map[string]int, len(raw)),
		byValue:   make(map[any]int, len(raw)),
	}
	for i, c := range raw {
		n, err := name.Resolve(c.Name)
		if err != nil {
			return nil, caseError(err, c)
		}
		canonical := n.String()
		if undefined && canonical == apis.UndefinedName {
			return nil, apis.Errorf(apis.CodeReservedNameCollision, "case %q uses the reserved name %s", c.Name, apis.UndefinedName).
				WithDetail("case", c.Name)
		}
		if j, dup := meta.byName[canonical]; dup {
			return nil, apis.Errorf(apis.CodeDuplicateName, "cases %q and %q resolve to %s", raw[j].Name, c.Name, canonical).
				WithDetail("case", c.Name)
		}
		val, err := v.Declare(c.Value)
		if err != nil {
			return nil, caseError(err, c)
		}
		if j, dup := meta.byValue[val]; dup {
			return nil, apis.Errorf(apis.CodeDuplicateValue, "cases %q and %q share value %v", raw[j].Name, c.Name, val).
				WithDetail("case", c.Name).
				WithDetail("value", val)
		}
		meta.byName[canonical] = i
		meta.byValue[val] = i
		meta.Cases = append(meta.Cases, CaseDef{Name: n, Value: val, Index: i})
		if k == apis.MaskKind {
			meta.AllBits |= val.(int64)
		}
	}

	tb := &table[D]{
		Table:     meta,
		validator: v,
		instances: make([]*Instance[D], len(meta.Cases)),
		checks:    make(map[string]func(*Instance[D]) bool, len(meta.Cases)+1),
	}
	for i, c := range meta.Cases {
		inst := &Instance[D]{index: i, name: c.Name, value: c.Value, tbl: tb}
		tb.instances[i] = inst
		tb.checks[c.Name.String()] = func(x *Instance[D]) bool { return x == inst }
	}
	if undefined {
		tb.undefined = &Instance[D]{
			index:     -1,
			name:      name.New(apis.UndefinedName, apis.UndefinedName),
			value:     v.Zero(),
			undefined: true,
			tbl:       tb,
		}
		tb.checks[apis.UndefinedName] = func(x *Instance[D]) bool { return x.undefined }
	}
	return tb, nil
}

// miss returns the undefined sentinel when enabled and err otherwise.
func (tb *table[D]) miss(err error) (*Instance[D], error) {
	if tb.undefined != nil {
		return tb.undefined, nil
	}
	return nil, err
}

func caseError(err error, c apis.Case) error {
	if e, ok := err.(*apis.Error); ok {
		return e.WithDetail("case", c.Name)
	}
	return err
}
