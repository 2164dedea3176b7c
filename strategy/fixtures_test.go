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

	"dirpx.dev/enum/apis"
)

// Local test types.

type Color struct{}

func (Color) EnumKind() apis.Kind    { return apis.StringKind }
func (Color) EnumCases() []apis.Case { return []apis.Case{{Name: "RED", Value: "red"}} }

type Perm struct{}

func (Perm) EnumKind() apis.Kind    { return apis.MaskKind }
func (Perm) EnumCases() []apis.Case { return []apis.Case{{Name: "READ", Value: 1}} }

// Broken declares no valid kind.
type Broken struct{}

func (Broken) EnumKind() apis.Kind    { return apis.UnknownKind }
func (Broken) EnumCases() []apis.Case { return nil }

type Plain struct{}

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{MaxUnwrap: 8}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func typeOf[T any]() reflect.Type { return reflect.TypeFor[T]() }
