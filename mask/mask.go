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
	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/name"
	"dirpx.dev/enum/registry"
)

// Type is the flag-set view of a mask enumeration.
// Every operation fails with apis.CodeUnsupportedOperation when D is not
// declared with apis.MaskKind.
type Type[D apis.Definition] struct {
	t *registry.Type[D]
}

// New wraps the registry record of D.
func New[D apis.Definition](t *registry.Type[D]) *Type[D] {
	return &Type[D]{t: t}
}

// Registry returns the underlying registry record.
func (m *Type[D]) Registry() *registry.Type[D] { return m.t }

// ByValue composes the given raw values with bitwise OR.
// The result must lie in [0, AllBits].
func (m *Type[D]) ByValue(v int64, more ...int64) (Flags[D], error) {
	tbl, err := m.table()
	if err != nil {
		return Flags[D]{}, err
	}
	return m.compose(tbl, union(append([]int64{v}, more...)...))
}

// ByNames composes the flags named by names. Repeated names count once.
// Any name that does not resolve to a case fails with apis.CodeUnknownName.
func (m *Type[D]) ByNames(names ...string) (Flags[D], error) {
	tbl, err := m.table()
	if err != nil {
		return Flags[D]{}, err
	}
	seen := make(map[string]struct{}, len(names))
	var v int64
	for _, raw := range names {
		i, ok := m.lookup(tbl, raw)
		if !ok {
			return Flags[D]{}, m.errorf(apis.CodeUnknownName, "no case named %q", raw)
		}
		canonical := tbl.Cases[i].Name.String()
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		v |= tbl.Cases[i].Value.(int64)
	}
	return m.compose(tbl, v)
}

// ByIndexes composes the flags at the given declaration positions.
func (m *Type[D]) ByIndexes(indices ...int) (Flags[D], error) {
	tbl, err := m.table()
	if err != nil {
		return Flags[D]{}, err
	}
	var v int64
	for _, i := range indices {
		switch {
		case i < 0:
			return Flags[D]{}, m.errorf(apis.CodeNegativeIndex, "index %d is negative", i)
		case i >= tbl.Len():
			return Flags[D]{}, m.errorf(apis.CodeInvalidIndex, "index %d out of range [0,%d)", i, tbl.Len())
		}
		v |= tbl.Cases[i].Value.(int64)
	}
	return m.compose(tbl, v)
}

// Case returns the single flag named raw.
func (m *Type[D]) Case(raw string) (Flags[D], error) {
	return m.ByNames(raw)
}

// AllCases returns one single-flag instance per declared case, in
// declaration order, skipping cases that share a bit with any excepted value.
func (m *Type[D]) AllCases(except ...Flags[D]) ([]Flags[D], error) {
	tbl, err := m.table()
	if err != nil {
		return nil, err
	}
	out := make([]Flags[D], 0, tbl.Len())
next:
	for _, c := range tbl.Cases {
		v := c.Value.(int64)
		for _, e := range except {
			if overlaps(v, e.value) {
				continue next
			}
		}
		out = append(out, Flags[D]{value: v, tbl: tbl})
	}
	return out, nil
}

// UnionOfAll returns AllBits minus the union of the excepted values.
//
// The subtraction is literal: with overlapping case values the result is
// not the union of the remaining cases.
func (m *Type[D]) UnionOfAll(except ...Flags[D]) (Flags[D], error) {
	tbl, err := m.table()
	if err != nil {
		return Flags[D]{}, err
	}
	ex := make([]int64, len(except))
	for i, e := range except {
		ex[i] = e.value
	}
	return m.compose(tbl, tbl.AllBits-union(ex...))
}

// Random returns a uniformly chosen single flag from AllCases(except...).
func (m *Type[D]) Random(except ...Flags[D]) (Flags[D], error) {
	all, err := m.AllCases(except...)
	if err != nil {
		return Flags[D]{}, err
	}
	if len(all) == 0 {
		return Flags[D]{}, m.errorf(apis.CodeAllExcluded, "every case is excluded")
	}
	return all[registry.IntN(m.t.Config(), len(all))], nil
}

// Undefined returns the undefined sentinel, or apis.CodeUnsupportedOperation
// when the capability is off.
func (m *Type[D]) Undefined() (Flags[D], error) {
	tbl, err := m.table()
	if err != nil {
		return Flags[D]{}, err
	}
	if !tbl.Undefined {
		return Flags[D]{}, m.errorf(apis.CodeUnsupportedOperation, "undefined case is not enabled")
	}
	return Flags[D]{undefined: true, tbl: tbl}, nil
}

func (m *Type[D]) table() (*registry.Table, error) {
	if k := m.t.Kind(); k != apis.MaskKind {
		return nil, m.errorf(apis.CodeUnsupportedOperation, "flag operations need a mask enumeration, got %s", k)
	}
	return m.t.Table()
}

func (m *Type[D]) compose(tbl *registry.Table, v int64) (Flags[D], error) {
	if v < 0 {
		return Flags[D]{}, m.errorf(apis.CodeNegativeComposedValue, "composed value %d is negative", v)
	}
	if !within(v, tbl.AllBits) {
		return Flags[D]{}, m.errorf(apis.CodeValueExceedsMask, "composed value %d exceeds %d", v, tbl.AllBits)
	}
	return Flags[D]{value: v, tbl: tbl}, nil
}

func (m *Type[D]) lookup(tbl *registry.Table, raw string) (int, bool) {
	n, err := name.Resolve(raw)
	if err != nil {
		return 0, false
	}
	return tbl.IndexOfName(n)
}

func (m *Type[D]) errorf(code apis.ErrorCode, format string, args ...any) *apis.Error {
	return apis.Errorf(code, format, args...).WithEnum(m.t.String())
}
