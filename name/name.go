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

package name

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dirpx.dev/enum/apis"
)

// separators are trimmed from both ends of a raw name.
const separators = " -_"

// Name is a resolved identifier: its canonical form plus the original spelling.
// The zero value is not a valid name.
type Name struct {
	canonical string
	original  string
}

// New builds a Name from an already canonical form without validation.
func New(canonical, original string) Name {
	return Name{canonical: canonical, original: original}
}

// Resolve normalizes raw into a canonical Name.
//
// raw may only contain letters, digits, spaces, hyphens and underscores and
// must contain at least one letter; anything else fails with
// apis.CodeInvalidNameFormat. Combining marks are accepted after a letter,
// since upper-casing some letters produces them ("ǰ" -> "J" + U+030C).
func Resolve(raw string) (Name, error) {
	letters := 0
	inLetter := false
	for _, r := range raw {
		switch {
		case unicode.IsLetter(r):
			letters++
			inLetter = true
		case unicode.IsMark(r) && inLetter:
		case unicode.IsDigit(r), r == ' ', r == '-', r == '_':
			inLetter = false
		default:
			return Name{}, apis.Errorf(apis.CodeInvalidNameFormat, "name %q contains %q", raw, r)
		}
	}
	if letters == 0 {
		return Name{}, apis.Errorf(apis.CodeInvalidNameFormat, "name %q has no letters", raw)
	}

	s := strings.Trim(raw, separators)
	if isCanonical(s) {
		return Name{canonical: s, original: raw}, nil
	}

	if hasUpper(s) && hasLower(s) {
		s = splitWords(s)
	}
	s = strings.NewReplacer(" ", "_", "-", "_").Replace(s)
	s = collapse(toUpper(s))

	return Name{canonical: s, original: raw}, nil
}

// MustResolve is like Resolve but panics on invalid input.
func MustResolve(raw string) Name {
	n, err := Resolve(raw)
	if err != nil {
		panic(err)
	}
	return n
}

// Canonicalize returns the canonical form of raw.
func Canonicalize(raw string) (string, error) {
	n, err := Resolve(raw)
	if err != nil {
		return "", err
	}
	return n.canonical, nil
}

// String returns the canonical form.
func (n Name) String() string { return n.canonical }

// Original returns the spelling Resolve was called with.
func (n Name) Original() string { return n.original }

// IsZero reports whether n is the zero Name.
func (n Name) IsZero() bool { return n.canonical == "" }

// Equal compares canonical forms.
func (n Name) Equal(other Name) bool { return n.canonical == other.canonical }

// IsSame resolves raw and compares it with n. Unresolvable input is never the same.
func (n Name) IsSame(raw string) bool {
	other, err := Resolve(raw)
	if err != nil {
		return false
	}
	return n.Equal(other)
}

// UpperSnakeCase returns FOO_BAR.
func (n Name) UpperSnakeCase() string { return n.canonical }

// LowerSnakeCase returns foo_bar.
func (n Name) LowerSnakeCase() string { return toLower(n.canonical) }

// PascalCase returns FooBar.
func (n Name) PascalCase() string {
	words := strings.Split(toLower(n.canonical), "_")
	title := cases.Title(language.Und, cases.NoLower)
	for i, w := range words {
		words[i] = title.String(w)
	}
	return strings.Join(words, "")
}

// CamelCase returns fooBar.
func (n Name) CamelCase() string {
	p := n.PascalCase()
	r, size := utf8.DecodeRuneInString(p)
	if r == utf8.RuneError {
		return p
	}
	return string(unicode.ToLower(r)) + p[size:]
}

// UpperKebabCase returns FOO-BAR.
func (n Name) UpperKebabCase() string { return strings.ReplaceAll(n.canonical, "_", "-") }

// LowerKebabCase returns foo-bar.
func (n Name) LowerKebabCase() string { return toLower(n.UpperKebabCase()) }

// UpperSpaceCase returns FOO BAR.
func (n Name) UpperSpaceCase() string { return strings.ReplaceAll(n.canonical, "_", " ") }

// LowerSpaceCase returns foo bar.
func (n Name) LowerSpaceCase() string { return toLower(n.UpperSpaceCase()) }

// isCanonical reports whether s already is UPPER_SNAKE_CASE.
func isCanonical(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == '_' || unicode.IsDigit(r) || unicode.IsMark(r) {
			continue
		}
		if !unicode.IsLetter(r) || unicode.IsLower(r) {
			return false
		}
	}
	return true
}

func hasUpper(s string) bool { return strings.IndexFunc(s, unicode.IsUpper) >= 0 }

func hasLower(s string) bool { return strings.IndexFunc(s, unicode.IsLower) >= 0 }

// splitWords inserts "_" at camel and Pascal case word boundaries:
// before an upper-case letter that follows a lower-case letter or a digit,
// and before the last upper-case letter of an acronym that starts a new word
// ("HTTPServer" -> "HTTP_Server"). Combining marks belong to the letter
// they follow.
func splitWords(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	var prev rune
	for i, r := range rs {
		if unicode.IsMark(r) {
			b.WriteRune(r)
			continue
		}
		if prev != 0 && unicode.IsUpper(r) {
			switch {
			case unicode.IsLower(prev), unicode.IsDigit(prev):
				b.WriteByte('_')
			case unicode.IsUpper(prev) && nextIsLower(rs[i+1:]):
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// nextIsLower reports whether the first non-mark rune of rs is lower case.
func nextIsLower(rs []rune) bool {
	for _, r := range rs {
		if !unicode.IsMark(r) {
			return unicode.IsLower(r)
		}
	}
	return false
}

// collapse squeezes runs of "_" into one.
func collapse(s string) string {
	if !strings.Contains(s, "__") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	prev := rune(0)
	for _, r := range s {
		if r == '_' && prev == '_' {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

// Casers are stateful and not safe for concurrent use, so each call gets its own.
func toUpper(s string) string { return cases.Upper(language.Und).String(s) }

func toLower(s string) string { return cases.Lower(language.Und).String(s) }
