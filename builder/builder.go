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

package builder

import (
	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/registry"
	"dirpx.dev/enum/resolver"
	"dirpx.dev/enum/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new, empty apis.Registry for cfg.
//
// Records of a previous registry are not carried over: each record was
// created with the configuration of its registry, so carrying them would
// leak the old Undefined and Rand settings into the new one. Enumerations
// are recreated lazily on first use.
func (b *builder) BuildRegistry(cfg apis.Config, _ apis.Registry) apis.Registry {
	return registry.New(cfg)
}

// BuildResolver builds and returns a new apis.Resolver backed by reg.
// The chain is instance, definition, registry, reflect.
func (b *builder) BuildResolver(_ apis.Config, reg apis.Registry, _ apis.Resolver) apis.Resolver {
	return resolver.New(
		strategy.NewInstanceStrategy(),
		strategy.NewDefinitionStrategy(),
		strategy.NewRegistryStrategy(reg),
		strategy.NewReflectStrategy(),
	)
}
