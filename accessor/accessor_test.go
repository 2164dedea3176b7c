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

package accessor_test

import (
	"errors"
	"testing"

	"dirpx.dev/enum/accessor"
	"dirpx.dev/enum/apis"
)

func TestParse(t *testing.T) {
	tests := []struct {
		method string
		op     accessor.Op
		cname  string
	}{
		{"isRed", accessor.Is, "RED"},
		{"notRed", accessor.Not, "RED"},
		{"isDarkBlue", accessor.Is, "DARK_BLUE"},
		{"is_dark_blue", accessor.Is, "DARK_BLUE"},
		{"notUndefined", accessor.Not, "UNDEFINED"},
	}
	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			a, err := accessor.Parse(tt.method)
			if err != nil {
				t.Fatalf("Parse(%q): unexpected error: %v", tt.method, err)
			}
			if a.Op != tt.op || a.Case.String() != tt.cname {
				t.Fatalf("Parse(%q) = (%s,%s), want (%s,%s)", tt.method, a.Op, a.Case, tt.op, tt.cname)
			}
		})
	}
}

func TestParse_Unsupported(t *testing.T) {
	for _, m := range []string{"", "is", "not", "hasRed", "isRed!", "red", "IsRed", "ISRed", "NotRed", "NOTRed"} {
		t.Run(m, func(t *testing.T) {
			_, err := accessor.Parse(m)
			if !errors.Is(err, apis.ErrUnsupportedOperation) {
				t.Fatalf("Parse(%q): want ErrUnsupportedOperation, got %v", m, err)
			}
			var e *apis.Error
			if !errors.As(err, &e) || e.Details["method"] != m {
				t.Fatalf("Parse(%q): error does not carry the method name: %v", m, err)
			}
		})
	}
}

func TestAccessor_Undefined(t *testing.T) {
	a, _ := accessor.Parse("isUndefined")
	if !a.Undefined() {
		t.Fatalf("isUndefined: Undefined() = false, want true")
	}
	if accessor.Not.Apply(true) || !accessor.Is.Apply(true) {
		t.Fatalf("Op.Apply is inconsistent")
	}
}
