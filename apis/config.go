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

package apis

import "log/slog"

// Config carries the knobs shared by registries and resolvers.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Undefined enables the undefined sentinel for every enumeration of a
	// registry, in addition to definitions that embed Undefined.
	Undefined bool

	// MaxUnwrap limits how many pointer/slice/array layers are peeled off a
	// type handle while looking for an enumeration type.
	MaxUnwrap int `validate:"gte=0,lte=64"`

	// Logger receives setup diagnostics. Nil means slog.Default().
	Logger *slog.Logger

	// Rand drives random case selection. Nil means the math/rand/v2 global source.
	Rand Rand
}

// Rand is the subset of *math/rand/v2.Rand used for random case selection.
type Rand interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}
