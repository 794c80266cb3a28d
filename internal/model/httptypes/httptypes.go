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

// Package httptypes contains the enumerations used by HTTP based announcers,
// uploaders and downloaders.
package httptypes

import (
	"fmt"
	"strings"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
)

const (
	InvalidMethod Method = iota
	PUT
	POST
)

var methodString = map[Method]string{
	PUT:  "PUT",
	POST: "POST",
}

var stringMethod = map[string]Method{}

const (
	InvalidAuthorization Authorization = iota
	None
	Basic
	Bearer
)

var authorizationString = map[Authorization]string{
	None:   "NONE",
	Basic:  "BASIC",
	Bearer: "BEARER",
}

var stringAuthorization = map[string]Authorization{}

func init() {
	for k, v := range methodString {
		stringMethod[v] = k
	}
	for k, v := range authorizationString {
		stringAuthorization[v] = k
	}
}

// Method is a HTTP method.
type Method int

func (m Method) String() string {
	return methodString[m]
}

// IsZero reports whether m is not set.
func (m Method) IsZero() bool {
	return m == InvalidMethod
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	v, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMethod parses a string into a Method.
func ParseMethod(s string) (Method, error) {
	m := stringMethod[strings.ToUpper(strings.TrimSpace(s))]
	if m == InvalidMethod {
		return m, fmt.Errorf("invalid http method %q, must be one of %s", s, mapsh.KeysSorted(stringMethod))
	}
	return m, nil
}

// Authorization is a HTTP authorization scheme.
type Authorization int

func (a Authorization) String() string {
	return authorizationString[a]
}

// IsZero reports whether a is not set.
func (a Authorization) IsZero() bool {
	return a == InvalidAuthorization
}

// MarshalText implements encoding.TextMarshaler.
func (a Authorization) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Authorization) UnmarshalText(text []byte) error {
	v, err := ParseAuthorization(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAuthorization parses a string into an Authorization.
func ParseAuthorization(s string) (Authorization, error) {
	a := stringAuthorization[strings.ToUpper(strings.TrimSpace(s))]
	if a == InvalidAuthorization {
		return a, fmt.Errorf("invalid authorization %q, must be one of %s", s, mapsh.KeysSorted(stringAuthorization))
	}
	return a, nil
}
