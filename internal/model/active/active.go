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

// Package active contains the Active enumeration used to decide whether a
// configured feature takes part in a run.
package active

import (
	"fmt"
	"strings"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
)

// Active is the activation mode of a feature.
// The zero value, Unset, means that nothing has been configured.
type Active int

const (
	Unset Active = iota
	Always
	Never
	Release
	Prerelease
	ReleasePrerelease
	Snapshot
)

var activeString = map[Active]string{
	// The string values is what users can specify in the config.
	Always:            "ALWAYS",
	Never:             "NEVER",
	Release:           "RELEASE",
	Prerelease:        "PRERELEASE",
	ReleasePrerelease: "RELEASE_PRERELEASE",
	Snapshot:          "SNAPSHOT",
}

var stringActive = map[string]Active{}

func init() {
	for k, v := range activeString {
		stringActive[v] = k
	}
}

// Mode tells which kind of release is being made.
type Mode interface {
	IsSnapshot() bool
	IsPrerelease() bool
}

func (a Active) String() string {
	return activeString[a]
}

// IsZero reports whether a is unset.
func (a Active) IsZero() bool {
	return a == Unset
}

// Check resolves a against the given mode.
func (a Active) Check(mode Mode) bool {
	switch a {
	case Always:
		return true
	case Release:
		return !mode.IsSnapshot()
	case Prerelease:
		return mode.IsPrerelease()
	case ReleasePrerelease:
		return !mode.IsSnapshot() || mode.IsPrerelease()
	case Snapshot:
		return mode.IsSnapshot()
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Active) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Active) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Parse parses a string into an Active.
// It is case insensitive and accepts - in place of _.
// A blank string parses to Unset.
func Parse(s string) (Active, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unset, nil
	}
	key := strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
	a, found := stringActive[key]
	if !found {
		return Unset, fmt.Errorf("invalid active value %q, must be one of %s", s, mapsh.KeysSorted(stringActive))
	}
	return a, nil
}

// MustParse is like Parse but panics if the string is not a valid value.
func MustParse(s string) Active {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}
