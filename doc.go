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

// Package enum provides enum-like value objects for Go.
//
// An enumeration is declared by a marker type implementing apis.Definition:
// an ordered table of named cases and one of five kinds (string, char,
// integer, unsigned integer, mask). Cases are interned singletons, so two
// lookups of the same case return the same pointer and can be compared with ==.
//
//	type Color struct{}
//
//	func (Color) EnumKind() apis.Kind { return apis.StringKind }
//	func (Color) EnumCases() []apis.Case {
//	    return []apis.Case{{Name: "RED", Value: "red"}, {Name: "DARK_BLUE", Value: "blue"}}
//	}
//
//	red, err := enum.ByName[Color]("red")
//	blue, err := enum.ByValue[Color]("blue")
//	ok, err := blue.Check("isDarkBlue")
//
// Names are accepted in any of the supported spellings (snake, kebab, space,
// camel and pascal case) and canonicalized to UPPER_SNAKE_CASE.
//
// # Setup
//
// The case table of a definition is validated on first use. A bad
// declaration (duplicate names or values, values of the wrong kind, the
// reserved UNDEFINED name, ...) fails that use and every later one with the
// same apis.Error; nothing is cached until setup succeeds. Concurrent first
// callers share one setup run.
//
// # Undefined
//
// A definition embedding apis.Undefined, or any definition under a config
// with Undefined enabled, answers lookup misses with an UNDEFINED sentinel
// instead of an error. The sentinel carries the zero value of its kind and
// equals nothing. Negative indices and values of the wrong shape are errors
// regardless.
//
// # Masks
//
// Mask enumerations compose declared bits into flag sets through Mask[D]:
//
//	perm := enum.Mask[Perm]()
//	rw, err := perm.ByNames("read", "write")
//	rw.Contains(read) // true
//
// # Global state
//
// Like the rest of the package, the helpers above read a process-wide
// snapshot holding an apis.Config, an apis.Registry of loaded enumerations,
// an apis.Resolver used by KindOf and friends, and the apis.Builder that
// constructs the last two. Reads load the snapshot atomically and never lock.
// Writers (SetConfig, SetBuilder, SetRegistry, SetResolver, SetAll) take a
// build mutex, assemble a new snapshot and swap it in.
//
// SetRegistry and SetResolver pin the given layer: later SetConfig and
// SetBuilder calls keep it until UnpinRegistry or UnpinResolver. Rebuilding
// an unpinned registry starts it empty, so enumerations loaded before are
// loaded again, under the new configuration, on next use.
package enum
