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

// NewDefinitionStrategy creates an apis.Strategy for definition values.
func NewDefinitionStrategy() apis.Strategy {
	return &definitionStrategy{}
}

// definitionStrategy answers for values of a declaring type, such as Color{}.
type definitionStrategy struct{}

// Ensure definitionStrategy implements apis.Strategy.
var _ apis.Strategy = (*definitionStrategy)(nil)

// TryResolve checks if v implements apis.Definition and returns its EnumKind().
func (*definitionStrategy) TryResolve(v any, _ apis.Config) (apis.Kind, bool) {
	if v == nil {
		return apis.UnknownKind, false
	}
	if d, ok := v.(apis.Definition); ok {
		k := d.EnumKind()
		return k, k.Valid()
	}
	return apis.UnknownKind, false
}

// TryResolveType always returns false: it requires a value.
func (*definitionStrategy) TryResolveType(_ reflect.Type, _ apis.Config) (apis.Kind, bool) {
	return apis.UnknownKind, false
}
