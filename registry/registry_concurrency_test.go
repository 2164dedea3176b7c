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

package registry_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/enum/config"
	"dirpx.dev/enum/registry"
)

// TestConcurrentSetup verifies that concurrent first callers share one setup
// run and observe the same interned instances.
func TestConcurrentSetup(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	workers := runtime.GOMAXPROCS(0) * 4
	got := make([]*registry.Instance[Color], workers)

	var start sync.WaitGroup
	start.Add(1)
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			start.Wait()
			inst, err := registry.Load[Color](reg, cfg).ByName("green")
			if err != nil {
				t.Errorf("worker %d: ByName(green): %v", id, err)
				return
			}
			got[id] = inst
		}(w)
	}
	start.Done()
	wg.Wait()

	for i := 1; i < workers; i++ {
		if got[i] != got[0] {
			t.Fatalf("worker %d observed a different instance", i)
		}
	}
	if reg.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", reg.Count())
	}
}

// TestConcurrentLoadAndLookup verifies that Load/Lookup/Entries/Count are
// race-free and consistent under concurrent use.
func TestConcurrentLoadAndLookup(t *testing.T) {
	cfg := config.DefaultConfig()
	reg := registry.New(cfg)

	types := []reflect.Type{
		reflect.TypeOf(Color{}), reflect.TypeOf(Grade{}), reflect.TypeOf(Temp{}),
		reflect.TypeOf(Level{}), reflect.TypeOf(Perm{}),
	}
	loaders := []func(){
		func() { _, _ = registry.Load[Color](reg, cfg).ByIndex(0) },
		func() { _, _ = registry.Load[Grade](reg, cfg).ByIndex(0) },
		func() { _, _ = registry.Load[Temp](reg, cfg).ByIndex(0) },
		func() { _, _ = registry.Load[Level](reg, cfg).ByIndex(0) },
		func() { _, _ = registry.Load[Perm](reg, cfg).ByIndex(0) },
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Writers (get-or-create)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				loaders[(i+id)%len(loaders)]()
			}
		}(w)
	}

	// Readers
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				_, _ = reg.Lookup(types[i%len(types)])
				_ = reg.Count()
				_ = reg.Entries()
			}
		}()
	}

	wg.Wait()

	if reg.Count() != len(types) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(types))
	}
	for _, e := range reg.Entries() {
		if !e.Ready {
			t.Fatalf("entry %v not ready after concurrent use", e.Type)
		}
	}
}
