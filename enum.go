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
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/builder"
	"dirpx.dev/enum/config"
)

// init publishes the default snapshot.
func init() {
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil)
	s.bld = b
	st.Store(s)
}

var (
	// ErrNilRegistry is raised when a builder returns a nil registry.
	ErrNilRegistry = errors.New("enum: builder returned nil registry")
	// ErrNilResolver is raised when a builder returns a nil resolver.
	ErrNilResolver = errors.New("enum: builder returned nil resolver")
)

// SetAll replaces every component of the global snapshot.
//
// A nil cfg or bld keeps the current one. A nil reg or res is rebuilt with
// the builder and unpinned; a non-nil one is used as given and pinned.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	ncfg := old.cfg
	if cfg != nil {
		if err := config.Validate(*cfg); err != nil {
			return err
		}
		ncfg = *cfg
	}

	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	nreg, npreg := reg, reg != nil
	if nreg == nil {
		nreg = nbld.BuildRegistry(ncfg, old.reg)
	}
	nres, npres := res, res != nil
	if nres == nil {
		nres = nbld.BuildResolver(ncfg, nreg, old.res)
	}

	publish(&state{cfg: ncfg, reg: nreg, res: nres, bld: nbld, preg: npreg, pres: npres})
	return nil
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig validates cfg and makes it the global configuration.
// Unpinned layers are rebuilt, so enumerations already loaded through the
// old registry are not carried over.
func SetConfig(cfg apis.Config) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	b := old.bld

	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(cfg, old.reg)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(cfg, nreg, old.res)
	}

	publish(&state{cfg: cfg, reg: nreg, res: nres, bld: b, preg: old.preg, pres: old.pres})
	return nil
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry pins reg as the global registry and rebuilds an unpinned
// resolver on top of it. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	nres := old.res
	if !old.pres {
		nres = old.bld.BuildResolver(old.cfg, reg, old.res)
	}

	publish(&state{cfg: old.cfg, reg: reg, res: nres, bld: old.bld, preg: true, pres: old.pres})
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver pins res as the global resolver. A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: old.cfg, reg: old.reg, res: res, bld: old.bld, preg: old.preg, pres: true})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder makes b the global builder and rebuilds unpinned layers with it.
// A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	nreg := old.reg
	if !old.preg {
		nreg = b.BuildRegistry(old.cfg, old.reg)
	}
	nres := old.res
	if !old.pres {
		nres = b.BuildResolver(old.cfg, nreg, old.res)
	}

	publish(&state{cfg: old.cfg, reg: nreg, res: nres, bld: b, preg: old.preg, pres: old.pres})
}

// IsRegistryPinned reports whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// UnpinRegistry lets the next rebuild replace the global registry.
func UnpinRegistry() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: old.cfg, reg: old.reg, res: old.res, bld: old.bld, preg: false, pres: old.pres})
}

// IsResolverPinned reports whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// UnpinResolver lets the next rebuild replace the global resolver.
func UnpinResolver() {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	publish(&state{cfg: old.cfg, reg: old.reg, res: old.res, bld: old.bld, preg: old.preg, pres: false})
}

// KindOf reports the kind of the enumeration v belongs to, or UnknownKind.
func KindOf(v any) apis.Kind {
	s := st.Load()
	k, _ := s.res.Resolve(v, s.cfg)
	return k
}

// KindOfType reports the kind of the enumeration declared by t, or UnknownKind.
func KindOfType(t reflect.Type) apis.Kind {
	s := st.Load()
	k, _ := s.res.ResolveType(t, s.cfg)
	return k
}

// IsEnum reports whether v is an enumeration definition or instance.
func IsEnum(v any) bool { return KindOf(v).Valid() }

// IsStringEnum reports whether v belongs to a string enumeration.
func IsStringEnum(v any) bool { return KindOf(v) == apis.StringKind }

// IsCharEnum reports whether v belongs to a char enumeration.
func IsCharEnum(v any) bool { return KindOf(v) == apis.CharKind }

// IsIntegerEnum reports whether v belongs to an integer enumeration.
func IsIntegerEnum(v any) bool { return KindOf(v) == apis.IntegerKind }

// IsUnsignedIntegerEnum reports whether v belongs to an unsigned integer enumeration.
func IsUnsignedIntegerEnum(v any) bool { return KindOf(v) == apis.UnsignedIntegerKind }

// IsMaskEnum reports whether v is a mask definition or flag set.
func IsMaskEnum(v any) bool { return KindOf(v) == apis.MaskKind }

// publish stores s after checking the builder produced usable layers.
// Callers hold buildMu.
func publish(s *state) {
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(s)
}

// buildMu serializes writers so partially built snapshots are never published.
var buildMu sync.Mutex

// st is the global snapshot.
var st atomic.Pointer[state]

// state is an immutable snapshot published via st.Store.
// Writers create a new state and swap it; fields are never mutated.
type state struct {
	cfg apis.Config
	reg apis.Registry
	res apis.Resolver
	bld apis.Builder
	// preg indicates the registry was set explicitly and survives rebuilds.
	preg bool
	// pres indicates the resolver was set explicitly and survives rebuilds.
	pres bool
}
