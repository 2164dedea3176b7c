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

package strategy

import (
	"reflect"
	"sync"

	"dirpx.dev/enum/apis"
	uref "dirpx.dev/enum/utils/reflect"
)

// NewReflectStrategy creates an apis.Strategy that resolves kinds via
// reflection using utils/reflect.Normalize and memoization.
func NewReflectStrategy() apis.Strategy {
	return reflectStrategy{}
}

// reflectStrategy is the universal fallback. It unwraps containers
// (ptr/slice/array/chan/map) via Normalize until it reaches a type that
// implements apis.Instance or apis.Definition, then asks a zero value of
// that type for its kind.
type reflectStrategy struct{}

// Ensure reflectStrategy implements apis.Strategy.
var _ apis.Strategy = (*reflectStrategy)(nil)

var (
	instanceType   = reflect.TypeFor[apis.Instance]()
	definitionType = reflect.TypeFor[apis.Definition]()
)

// cacheKey ensures memoization respects all config knobs that affect resolution.
type cacheKey struct {
	t         reflect.Type
	maxUnwrap int16
}

// kindCache caches resolved kinds by (type, config knobs).
var kindCache sync.Map // key: cacheKey, val: apis.Kind

// TryResolve computes the kind of v's type.
func (reflectStrategy) TryResolve(v any, cfg apis.Config) (apis.Kind, bool) {
	if v == nil {
		return apis.UnknownKind, false
	}
	k := byType(reflect.TypeOf(v), cfg)
	return k, k.Valid()
}

// TryResolveType computes the kind of t.
func (reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (apis.Kind, bool) {
	if t == nil {
		return apis.UnknownKind, false
	}
	k := byType(t, cfg)
	return k, k.Valid()
}

// byType resolves the kind for t with memoization.
func byType(t reflect.Type, cfg apis.Config) apis.Kind {
	key := cacheKey{t: t, maxUnwrap: int16(cfg.MaxUnwrap)}
	if v, ok := kindCache.Load(key); ok {
		return v.(apis.Kind)
	}

	k := apis.UnknownKind
	if base, err := uref.Normalize(t, cfg, instanceType, definitionType); err == nil {
		k = kindOf(base)
	}

	kindCache.Store(key, k)
	return k
}

// kindOf calls Kind or EnumKind on a zero value of t. Instance
// implementations answer Kind without touching receiver state.
func kindOf(t reflect.Type) apis.Kind {
	if z, ok := uref.Zero(t, instanceType); ok {
		return z.(apis.Instance).Kind()
	}
	if z, ok := uref.Zero(t, definitionType); ok {
		return z.(apis.Definition).EnumKind()
	}
	return apis.UnknownKind
}
