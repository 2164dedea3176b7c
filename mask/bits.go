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

package mask

import "golang.org/x/exp/constraints"

// union ORs vs together.
func union[T constraints.Integer](vs ...T) T {
	var u T
	for _, v := range vs {
		u |= v
	}
	return u
}

// overlaps reports whether a and b share at least one bit.
func overlaps[T constraints.Integer](a, b T) bool {
	return a&b != 0
}

// within reports whether v lies in [0, limit].
func within[T constraints.Integer](v, limit T) bool {
	return v >= 0 && v <= limit
}
