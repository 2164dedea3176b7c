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

// Package resolver answers "which enumeration kind is this?" by asking a
// list of strategies in turn.
package resolver

import (
	"reflect"

	"dirpx.dev/enum/apis"
)

// New returns a resolver that consults strategies in the given order and
// reports the kind from the first one that recognizes the input. Nil entries
// are skipped. Concurrent use is safe when every strategy is.
func New(strategies ...apis.Strategy) apis.Resolver {
	strats := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			strats = append(strats, s)
		}
	}
	return chain{strats: strats}
}

// chain is never modified after New.
type chain struct {
	strats []apis.Strategy
}

// Resolve reports the kind of the enumeration v belongs to.
func (c chain) Resolve(v any, cfg apis.Config) (apis.Kind, bool) {
	for _, s := range c.strats {
		if k, ok := s.TryResolve(v, cfg); ok {
			return k, true
		}
	}
	return apis.UnknownKind, false
}

// ResolveType reports the kind of the enumeration t declares or wraps.
func (c chain) ResolveType(t reflect.Type, cfg apis.Config) (apis.Kind, bool) {
	for _, s := range c.strats {
		if k, ok := s.TryResolveType(t, cfg); ok {
			return k, true
		}
	}
	return apis.UnknownKind, false
}
