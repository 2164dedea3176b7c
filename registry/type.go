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
	"math/rand/v2"
	"reflect"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/config"
	"dirpx.dev/enum/name"
)

// Type is the runtime record of the enumeration declared by D.
//
// A Type starts UNINITIALIZED. The first operation that needs the case table
// runs setup; success publishes an immutable table and the Type is READY for
// good. A failed setup publishes nothing, so the next operation reports the
// same declaration error again.
//
// Concurrent first callers share a single setup run and observe the same
// interned instances. Reads after setup are lock-free.
type Type[D apis.Definition] struct {
	typ   reflect.Type
	cfg   apis.Config
	table atomic.Pointer[table[D]]
	group singleflight.Group
}

// NewType constructs an unregistered Type for D. Most callers want Load.
func NewType[D apis.Definition](cfg apis.Config) *Type[D] {
	return &Type[D]{typ: reflect.TypeFor[D](), cfg: cfg}
}

// Load returns the Type for D stored in reg, creating and registering it on
// first use.
func Load[D apis.Definition](reg apis.Registry, cfg apis.Config) *Type[D] {
	t := reflect.TypeFor[D]()
	if e, ok := reg.Lookup(t); ok {
		if tt, ok := e.(*Type[D]); ok {
			return tt
		}
	}
	nt := NewType[D](cfg)
	if err := reg.Register(nt); err != nil {
		// Lost a registration race; use the winner.
		if e, ok := reg.Lookup(t); ok {
			if tt, ok := e.(*Type[D]); ok {
				return tt
			}
		}
	}
	return nt
}

// Type returns the definition type.
func (t *Type[D]) Type() reflect.Type { return t.typ }

// Kind returns the declared kind. It does not require setup.
func (t *Type[D]) Kind() apis.Kind { return zero[D]().EnumKind() }

// Config returns the configuration the Type was created with.
func (t *Type[D]) Config() apis.Config { return t.cfg }

// String returns the definition type name.
func (t *Type[D]) String() string { return t.typ.String() }

// Ready reports whether setup has succeeded.
func (t *Type[D]) Ready() bool { return t.table.Load() != nil }

// Setup runs the one-time initialization. See Type for the retry semantics.
func (t *Type[D]) Setup() error {
	_, err := t.load()
	return err
}

// Table returns the metadata published by setup.
func (t *Type[D]) Table() (*Table, error) {
	tb, err := t.load()
	if err != nil {
		return nil, err
	}
	return tb.Table, nil
}

// ByName returns the case whose canonical name matches raw.
//
// A miss, including a raw name that cannot be resolved at all, yields the
// undefined sentinel when enabled and apis.CodeUnknownName otherwise.
func (t *Type[D]) ByName(raw string) (*Instance[D], error) {
	tb, err := t.load()
	if err != nil {
		return nil, err
	}
	if n, err := name.Resolve(raw); err == nil {
		if i, ok := tb.IndexOfName(n); ok {
			return tb.instances[i], nil
		}
	}
	return tb.miss(t.errorf(apis.CodeUnknownName, "no case named %q", raw))
}

// ByValue returns the case declared with raw value v.
//
// v is coerced the way declared values are: integer widths are
// interchangeable, while char, unsigned and primitive violations fail with
// their own codes and are never replaced by the undefined sentinel.
func (t *Type[D]) ByValue(v any) (*Instance[D], error) {
	tb, err := t.load()
	if err != nil {
		return nil, err
	}
	val, err := tb.validator.Coerce(v)
	if err != nil {
		return nil, t.attribute(err)
	}
	if i, ok := tb.IndexOfValue(val); ok {
		return tb.instances[i], nil
	}
	return tb.miss(t.errorf(apis.CodeUnknownValue, "no case with value %v", v).WithDetail("value", v))
}

// ByIndex returns the case at declaration position i.
// A negative index always fails with apis.CodeNegativeIndex.
func (t *Type[D]) ByIndex(i int) (*Instance[D], error) {
	tb, err := t.load()
	if err != nil {
		return nil, err
	}
	if i < 0 {
		return nil, t.errorf(apis.CodeNegativeIndex, "index %d is negative", i)
	}
	if i >= len(tb.instances) {
		return tb.miss(t.errorf(apis.CodeInvalidIndex, "index %d out of range [0,%d)", i, len(tb.instances)))
	}
	return tb.instances[i], nil
}

// All returns the declared cases in declaration order, minus those whose
// value matches an excepted instance. Undefined and nil exceptions are ignored.
func (t *Type[D]) All(except ...*Instance[D]) ([]*Instance[D], error) {
	tb, err := t.load()
	if err != nil {
		return nil, err
	}
	if len(except) == 0 {
		out := make([]*Instance[D], len(tb.instances))
		copy(out, tb.instances)
		return out, nil
	}
	skip := make(map[any]struct{}, len(except))
	for _, e := range except {
		if e == nil || e.undefined {
			continue
		}
		skip[e.value] = struct{}{}
	}
	out := make([]*Instance[D], 0, len(tb.instances))
	for _, inst := range tb.instances {
		if _, ok := skip[inst.value]; !ok {
			out = append(out, inst)
		}
	}
	return out, nil
}

// Random returns a uniformly chosen case from All(except...).
// It fails with apis.CodeAllExcluded when nothing is left.
func (t *Type[D]) Random(except ...*Instance[D]) (*Instance[D], error) {
	all, err := t.All(except...)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, t.errorf(apis.CodeAllExcluded, "every case is excluded")
	}
	return all[IntN(t.cfg, len(all))], nil
}

// Undefined returns the undefined sentinel, or apis.CodeUnsupportedOperation
// when the capability is off.
func (t *Type[D]) Undefined() (*Instance[D], error) {
	tb, err := t.load()
	if err != nil {
		return nil, err
	}
	if tb.undefined == nil {
		return nil, t.errorf(apis.CodeUnsupportedOperation, "undefined case is not enabled")
	}
	return tb.undefined, nil
}

// Names returns the case names in declaration order.
func (t *Type[D]) Names() ([]name.Name, error) {
	tb, err := t.load()
	if err != nil {
		return nil, err
	}
	out := make([]name.Name, len(tb.Cases))
	for i, c := range tb.Cases {
		out[i] = c.Name
	}
	return out, nil
}

// Values returns the normalized case values in declaration order.
func (t *Type[D]) Values() ([]any, error) {
	tb, err := t.load()
	if err != nil {
		return nil, err
	}
	out := make([]any, len(tb.Cases))
	for i, c := range tb.Cases {
		out[i] = c.Value
	}
	return out, nil
}

// Len returns the number of declared cases.
func (t *Type[D]) Len() (int, error) {
	tb, err := t.load()
	if err != nil {
		return 0, err
	}
	return tb.Len(), nil
}

// TryName is ByName with a fallback for any failure.
func (t *Type[D]) TryName(raw string, def *Instance[D]) *Instance[D] {
	if inst, err := t.ByName(raw); err == nil {
		return inst
	}
	return def
}

// TryValue is ByValue with a fallback for any failure.
func (t *Type[D]) TryValue(v any, def *Instance[D]) *Instance[D] {
	if inst, err := t.ByValue(v); err == nil {
		return inst
	}
	return def
}

// load returns the published table, running setup if needed.
func (t *Type[D]) load() (*table[D], error) {
	if tb := t.table.Load(); tb != nil {
		return tb, nil
	}
	v, err, _ := t.group.Do("setup", func() (any, error) {
		// Another caller may have published between Load and Do.
		if tb := t.table.Load(); tb != nil {
			return tb, nil
		}
		logger := config.Logger(t.cfg)
		d := zero[D]()
		tb, err := build(d, t.cfg.Undefined || undefinedCapable(d))
		if err != nil {
			err = t.attribute(err)
			logger.Warn("enum setup failed", "enum", t.String(), "error", err)
			return nil, err
		}
		t.table.Store(tb)
		logger.Debug("enum setup", "enum", t.String(), "kind", tb.Kind.String(), "cases", tb.Len())
		return tb, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*table[D]), nil
}

func (t *Type[D]) errorf(code apis.ErrorCode, format string, args ...any) *apis.Error {
	return apis.Errorf(code, format, args...).WithEnum(t.String())
}

func (t *Type[D]) attribute(err error) error {
	if e, ok := err.(*apis.Error); ok && e.Enum == "" {
		return e.WithEnum(t.String())
	}
	return err
}

// zero returns a usable receiver for D's declaration methods. Pointer
// definitions get a pointer to a fresh zero value rather than nil.
func zero[D apis.Definition]() D {
	var d D
	if t := reflect.TypeFor[D](); t.Kind() == reflect.Pointer {
		d = reflect.New(t.Elem()).Interface().(D)
	}
	return d
}

func undefinedCapable(d apis.Definition) bool {
	u, ok := d.(apis.UndefinedCapable)
	return ok && u.EnumUndefined()
}

// IntN draws from cfg.Rand, falling back to the math/rand/v2 global source.
func IntN(cfg apis.Config, n int) int {
	if cfg.Rand != nil {
		return cfg.Rand.IntN(n)
	}
	return rand.IntN(n)
}
