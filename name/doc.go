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

// Package name turns arbitrary identifiers into canonical UPPER_SNAKE_CASE
// names and derives display variants from them.
//
// Canonical names are the only thing compared when enumeration cases are
// looked up by name, so "fooBar", "foo-bar", "Foo Bar" and "FOO_BAR" all
// address the same case.
package name
