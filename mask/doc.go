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

// Package mask implements flag-set enumerations on top of the registry.
//
// A mask enumeration declares non-negative integer flags with apis.MaskKind.
// Its instances are Flags values holding any union of the declared flags,
// bounded by the union of all of them.
//
//	type Perm struct{}
//
//	func (Perm) EnumKind() apis.Kind { return apis.MaskKind }
//	func (Perm) EnumCases() []apis.Case {
//	    return []apis.Case{{"READ", 1}, {"WRITE", 2}, {"EXECUTE", 4}}
//	}
//
//	rw, _ := enum.Mask[Perm]().ByNames("read", "write")
//	rw.Contains(read) // true
package mask
