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

package enum

import (
	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/mask"
	"dirpx.dev/enum/name"
	"dirpx.dev/enum/registry"
)

// Of returns the record for D in the global registry, creating it on first
// use. The record carries the global configuration current at creation.
func Of[D apis.Definition]() *registry.Type[D] {
	s := st.Load()
	return registry.Load[D](s.reg, s.cfg)
}

// Setup runs setup for D if it has not succeeded yet.
func Setup[D apis.Definition]() error {
	return Of[D]().Setup()
}

// ByName returns the case of D named raw in any supported spelling.
func ByName[D apis.Definition](raw string) (*registry.Instance[D], error) {
	return Of[D]().ByName(raw)
}

// ByValue returns the case of D declared with value v.
func ByValue[D apis.Definition](v any) (*registry.Instance[D], error) {
	return Of[D]().ByValue(v)
}

// ByIndex returns the case of D at declaration index i.
func ByIndex[D apis.Definition](i int) (*registry.Instance[D], error) {
	return Of[D]().ByIndex(i)
}

// All returns the cases of D in declaration order, minus except.
func All[D apis.Definition](except ...*registry.Instance[D]) ([]*registry.Instance[D], error) {
	return Of[D]().All(except...)
}

// Random returns a uniformly chosen case of D outside except.
func Random[D apis.Definition](except ...*registry.Instance[D]) (*registry.Instance[D], error) {
	return Of[D]().Random(except...)
}

// Undefined returns the undefined sentinel of D.
func Undefined[D apis.Definition]() (*registry.Instance[D], error) {
	return Of[D]().Undefined()
}

// Names returns the canonical names of D in declaration order.
func Names[D apis.Definition]() ([]name.Name, error) {
	return Of[D]().Names()
}

// Mask returns the flag algebra over the mask enumeration D.
func Mask[D apis.Definition]() *mask.Type[D] {
	return mask.New(Of[D]())
}
