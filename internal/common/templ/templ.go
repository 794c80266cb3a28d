// Copyright 2026 The JReleaser Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package templ

import (
	"bytes"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// BuiltInFuncs is a limited set of useful funcs, mostly string handling, added to the Go built-ins.
var BuiltInFuncs = template.FuncMap{
	"upper": func(s string) string {
		return strings.ToUpper(s)
	},
	"lower": func(s string) string {
		return strings.ToLower(s)
	},
	"capitalize": Capitalize,
	"replace":    strings.ReplaceAll,
	"trimPrefix": func(prefix, s string) string {
		return strings.TrimPrefix(s, prefix)
	},
	"trimSuffix": func(suffix, s string) string {
		return strings.TrimSuffix(s, suffix)
	},
}

// Parse parses t with the built-in funcs.
// Missing keys in map contexts render as empty strings.
func Parse(t string) (*template.Template, error) {
	return template.New("").Funcs(BuiltInFuncs).Option("missingkey=zero").Parse(t)
}

// Sprintt renders the Go template t with the given data in ctx.
func Sprintt(t string, ctx any) (string, error) {
	if !strings.Contains(t, "{{") {
		return t, nil
	}
	tmpl, err := Parse(t)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", err
	}
	return strings.ReplaceAll(buf.String(), "<no value>", ""), nil
}

// MustSprintt is like Sprintt but panics on errors.
func MustSprintt(t string, ctx any) string {
	s, err := Sprintt(t, ctx)
	if err != nil {
		panic(err)
	}
	return s
}

// Capitalize upper cases the first letter in s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
