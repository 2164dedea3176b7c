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
	"sync/atomic"

	"dirpx.dev/enum/apis"
)

// Valid declarations, one per kind.

type Color struct{}

func (Color) EnumKind() apis.Kind { return apis.StringKind }
func (Color) EnumCases() []apis.Case {
	return []apis.Case{{Name: "RED", Value: "red"}, {Name: "GREEN", Value: "green"}, {Name: "darkBlue", Value: "dark-blue"}}
}

// OptColor has the same cases as Color plus the undefined sentinel.
type OptColor struct{ apis.Undefined }

func (OptColor) EnumKind() apis.Kind    { return apis.StringKind }
func (OptColor) EnumCases() []apis.Case { return Color{}.EnumCases() }

type Grade struct{ apis.Undefined }

func (Grade) EnumKind() apis.Kind { return apis.CharKind }
func (Grade) EnumCases() []apis.Case {
	return []apis.Case{{Name: "A", Value: "a"}, {Name: "B", Value: "b"}, {Name: "C", Value: "c"}}
}

type Temp struct{ apis.Undefined }

func (Temp) EnumKind() apis.Kind { return apis.IntegerKind }
func (Temp) EnumCases() []apis.Case {
	return []apis.Case{{Name: "FREEZING", Value: -10}, {Name: "ROOM", Value: 20}, {Name: "BOILING", Value: 100}}
}

type Level struct{}

func (Level) EnumKind() apis.Kind { return apis.UnsignedIntegerKind }
func (Level) EnumCases() []apis.Case {
	return []apis.Case{{Name: "LOW", Value: uint8(1)}, {Name: "HIGH", Value: uint8(2)}}
}

type Perm struct{}

func (Perm) EnumKind() apis.Kind { return apis.MaskKind }
func (Perm) EnumCases() []apis.Case {
	return []apis.Case{{Name: "READ", Value: 1}, {Name: "WRITE", Value: 2}, {Name: "EXEC", Value: 4}}
}

// Ptr implements the contract on its pointer type.
type Ptr struct{}

func (*Ptr) EnumKind() apis.Kind    { return apis.IntegerKind }
func (*Ptr) EnumCases() []apis.Case { return []apis.Case{{Name: "ONE", Value: 1}} }

// Invalid declarations.

type Empty struct{}

func (Empty) EnumKind() apis.Kind    { return apis.StringKind }
func (Empty) EnumCases() []apis.Case { return nil }

type Mixed struct{}

func (Mixed) EnumKind() apis.Kind { return apis.StringKind }
func (Mixed) EnumCases() []apis.Case {
	return []apis.Case{{Name: "A", Value: "a"}, {Name: "B", Value: 2}}
}

type DupValue struct{}

func (DupValue) EnumKind() apis.Kind { return apis.IntegerKind }
func (DupValue) EnumCases() []apis.Case {
	return []apis.Case{{Name: "A", Value: 1}, {Name: "B", Value: int64(1)}}
}

type DupName struct{}

func (DupName) EnumKind() apis.Kind { return apis.StringKind }
func (DupName) EnumCases() []apis.Case {
	return []apis.Case{{Name: "foo bar", Value: "a"}, {Name: "FooBar", Value: "b"}}
}

type Reserved struct{ apis.Undefined }

func (Reserved) EnumKind() apis.Kind { return apis.StringKind }
func (Reserved) EnumCases() []apis.Case {
	return []apis.Case{{Name: "undefined", Value: "u"}}
}

// NotReserved declares UNDEFINED without enabling the sentinel.
type NotReserved struct{}

func (NotReserved) EnumKind() apis.Kind    { return apis.StringKind }
func (NotReserved) EnumCases() []apis.Case { return Reserved{}.EnumCases() }

type MultiChar struct{}

func (MultiChar) EnumKind() apis.Kind { return apis.CharKind }
func (MultiChar) EnumCases() []apis.Case {
	return []apis.Case{{Name: "A", Value: "a"}, {Name: "AB", Value: "ab"}}
}

type NegUnsigned struct{}

func (NegUnsigned) EnumKind() apis.Kind { return apis.UnsignedIntegerKind }
func (NegUnsigned) EnumCases() []apis.Case {
	return []apis.Case{{Name: "A", Value: -1}}
}

type NegMask struct{}

func (NegMask) EnumKind() apis.Kind { return apis.MaskKind }
func (NegMask) EnumCases() []apis.Case {
	return []apis.Case{{Name: "A", Value: 1}, {Name: "B", Value: -2}}
}

type BadName struct{}

func (BadName) EnumKind() apis.Kind { return apis.StringKind }
func (BadName) EnumCases() []apis.Case {
	return []apis.Case{{Name: "data5$#", Value: "a"}}
}

type NoKind struct{}

func (NoKind) EnumKind() apis.Kind    { return apis.UnknownKind }
func (NoKind) EnumCases() []apis.Case { return Color{}.EnumCases() }

// Flaky declares no cases until flakyReady is set.
type Flaky struct{}

var flakyReady atomic.Bool

func (Flaky) EnumKind() apis.Kind { return apis.StringKind }
func (Flaky) EnumCases() []apis.Case {
	if !flakyReady.Load() {
		return nil
	}
	return []apis.Case{{Name: "ON", Value: "on"}, {Name: "OFF", Value: "off"}}
}
