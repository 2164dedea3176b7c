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

package strategy_test

import (
	"reflect"
	"testing"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/config"
	"dirpx.dev/enum/mask"
	"dirpx.dev/enum/registry"
	"dirpx.dev/enum/strategy"
)

func TestInstanceStrategy(t *testing.T) {
	s := strategy.NewInstanceStrategy()
	conf := cfg()

	c := config.DefaultConfig()
	reg := registry.New(c)
	red, err := registry.Load[Color](reg, c).ByName("red")
	if err != nil {
		t.Fatalf("ByName(red): %v", err)
	}
	read, err := mask.New(registry.Load[Perm](reg, c)).Case("read")
	if err != nil {
		t.Fatalf("Case(read): %v", err)
	}

	if k, ok := s.TryResolve(red, conf); !ok || k != apis.StringKind {
		t.Fatalf("TryResolve(red) = (%s,%v), want (string,true)", k, ok)
	}
	if k, ok := s.TryResolve(read, conf); !ok || k != apis.MaskKind {
		t.Fatalf("TryResolve(read) = (%s,%v), want (mask,true)", k, ok)
	}
	for _, v := range []any{nil, Color{}, 1, Plain{}} {
		if k, ok := s.TryResolve(v, conf); ok || k != apis.UnknownKind {
			t.Fatalf("TryResolve(%T) = (%s,%v), want (unknown,false)", v, k, ok)
		}
	}
	if _, ok := s.TryResolveType(reflect.TypeOf(red), conf); ok {
		t.Fatalf("TryResolveType should never handle")
	}
}

func TestDefinitionStrategy(t *testing.T) {
	s := strategy.NewDefinitionStrategy()
	conf := cfg()

	if k, ok := s.TryResolve(Color{}, conf); !ok || k != apis.StringKind {
		t.Fatalf("TryResolve(Color{}) = (%s,%v), want (string,true)", k, ok)
	}
	if k, ok := s.TryResolve(&Perm{}, conf); !ok || k != apis.MaskKind {
		t.Fatalf("TryResolve(&Perm{}) = (%s,%v), want (mask,true)", k, ok)
	}
	for _, v := range []any{nil, Broken{}, "x", []Color{}} {
		if _, ok := s.TryResolve(v, conf); ok {
			t.Fatalf("TryResolve(%T): want not handled", v)
		}
	}
	if _, ok := s.TryResolveType(typeOf[Color](), conf); ok {
		t.Fatalf("TryResolveType should never handle")
	}
}

func TestRegistryStrategy_WithRealRegistry(t *testing.T) {
	conf := cfg()
	reg := registry.New(conf)
	_ = registry.Load[Color](reg, conf)

	s := strategy.NewRegistryStrategy(reg)

	cases := []struct {
		name string
		val  any
	}{
		{"plain", Color{}},
		{"ptr", &Color{}},
		{"slice", []Color{}},
		{"array", [2]Color{}},
		{"chan", make(chan Color)},
		{"map", map[string]Color{}},
		{"slice of ptr", []*Color{}},
		{"map of ptr", map[string]*Color{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if k, ok := s.TryResolve(tc.val, conf); !ok || k != apis.StringKind {
				t.Fatalf("TryResolve(%T) = (%s,%v), want (string,true)", tc.val, k, ok)
			}
			if k, ok := s.TryResolveType(reflect.TypeOf(tc.val), conf); !ok || k != apis.StringKind {
				t.Fatalf("TryResolveType(%T) = (%s,%v), want (string,true)", tc.val, k, ok)
			}
		})
	}

	// Unregistered type -> miss.
	if k, ok := s.TryResolve(Perm{}, conf); ok || k != apis.UnknownKind {
		t.Fatalf("TryResolve(Perm{}) = (%s,%v), want (unknown,false)", k, ok)
	}
	if _, ok := strategy.NewRegistryStrategy(nil).TryResolve(Color{}, conf); ok {
		t.Fatalf("nil registry should never handle")
	}
}

func TestReflectStrategy(t *testing.T) {
	s := strategy.NewReflectStrategy()

	cases := []struct {
		name string
		typ  reflect.Type
		want apis.Kind
	}{
		{"definition", typeOf[Color](), apis.StringKind},
		{"definition ptr", typeOf[*Color](), apis.StringKind},
		{"definition slice", typeOf[[]Perm](), apis.MaskKind},
		{"instance", typeOf[*registry.Instance[Color]](), apis.StringKind},
		{"instance slice", typeOf[[]*registry.Instance[Perm]](), apis.MaskKind},
		{"flags", typeOf[mask.Flags[Perm]](), apis.MaskKind},
		{"flags map", typeOf[map[string]mask.Flags[Perm]](), apis.MaskKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, ok := s.TryResolveType(tc.typ, cfg())
			if !ok || k != tc.want {
				t.Fatalf("TryResolveType(%v) = (%s,%v), want (%s,true)", tc.typ, k, ok, tc.want)
			}
		})
	}

	for _, typ := range []reflect.Type{nil, typeOf[int](), typeOf[Plain](), typeOf[Broken](), typeOf[apis.Instance]()} {
		if k, ok := s.TryResolveType(typ, cfg()); ok || k != apis.UnknownKind {
			t.Fatalf("TryResolveType(%v) = (%s,%v), want (unknown,false)", typ, k, ok)
		}
	}

	if k, ok := s.TryResolve([]Color{}, cfg()); !ok || k != apis.StringKind {
		t.Fatalf("TryResolve([]Color{}) = (%s,%v)", k, ok)
	}
	if _, ok := s.TryResolve(nil, cfg()); ok {
		t.Fatalf("TryResolve(nil) handled")
	}
}

func TestReflectStrategy_MaxUnwrap(t *testing.T) {
	s := strategy.NewReflectStrategy()
	tt := typeOf[[][]Color]()

	t.Run("tight limit", func(t *testing.T) {
		if _, ok := s.TryResolveType(tt, cfg(func(c *apis.Config) { c.MaxUnwrap = 1 })); ok {
			t.Fatalf("MaxUnwrap=1: expected failed resolution")
		}
	})
	t.Run("wide limit", func(t *testing.T) {
		k, ok := s.TryResolveType(tt, cfg(func(c *apis.Config) { c.MaxUnwrap = 8 }))
		if !ok || k != apis.StringKind {
			t.Fatalf("MaxUnwrap=8: got (%s,%v), want (string,true)", k, ok)
		}
	})
}
