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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/enum/apis"
	"dirpx.dev/enum/registry"
	"dirpx.dev/enum/strategy"
)

// TestReflectStrategy_ConcurrentResolve_NoRace verifies that TryResolve/TryResolveType
// are race-free and return stable kinds under heavy concurrency.
func TestReflectStrategy_ConcurrentResolve_NoRace(t *testing.T) {
	s := strategy.NewReflectStrategy()
	conf := cfg()

	vals := []any{Color{}, &Color{}, []Color{}, [2]Perm{}, make(chan Perm), map[int]Color{}}
	want := []apis.Kind{apis.StringKind, apis.StringKind, apis.StringKind, apis.MaskKind, apis.MaskKind, apis.StringKind}
	tys := []reflect.Type{
		typeOf[*registry.Instance[Color]](),
		typeOf[[]Perm](),
		typeOf[int](),
	}
	wantTy := []apis.Kind{apis.StringKind, apis.MaskKind, apis.UnknownKind}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				j := (i + id) % len(vals)
				if k, _ := s.TryResolve(vals[j], conf); k != want[j] {
					t.Errorf("TryResolve(%T) = %s, want %s", vals[j], k, want[j])
					return
				}
				j = (i + id) % len(tys)
				if k, _ := s.TryResolveType(tys[j], conf); k != wantTy[j] {
					t.Errorf("TryResolveType(%v) = %s, want %s", tys[j], k, wantTy[j])
					return
				}
			}
		}(w)
	}
	wg.Wait()
}
