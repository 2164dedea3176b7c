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

	"dirpx.dev/enum/apis"
)

// NewInstanceStrategy creates an apis.Strategy for enumeration instances.
func NewInstanceStrategy() apis.Strategy {
	return &instanceStrategy{}
}

// instanceStrategy is a zero-cost fast path: if v implements apis.Instance,
// return its Kind() and stop the chain.
type instanceStrategy struct{}

// Ensure instanceStrategy implements apis.Strategy.
var _ apis.Strategy = (*instanceStrategy)(nil)

// TryResolve checks if v implements apis.Instance and returns its Kind().
func (*instanceStrategy) TryResolve(v any, _ apis.Config) (apis.Kind, bool) {
	if v == nil {
		return apis.UnknownKind, false
	}
	if i, ok := v.(apis.Instance); ok {
		k := i.Kind()
		return k, k.Valid()
	}
	return apis.UnknownKind, false
}

// TryResolveType always returns false: it requires a value.
func (*instanceStrategy) TryResolveType(_ reflect.Type, _ apis.Config) (apis.Kind, bool) {
	return apis.UnknownKind, false
}
