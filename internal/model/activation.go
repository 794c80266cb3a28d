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

package model

import (
	"fmt"

	"github.com/jreleaser/jreleaser/internal/model/active"
)

// Activation decides whether a feature takes part in a run.
//
// It is either unset, an Active value, or the legacy enabled flag.
// The legacy flag is translated into ALWAYS or NEVER when Active is unset.
type Activation struct {
	Active active.Active `json:"active"`

	// Deprecated: use Active.
	Enabled *bool `json:"enabled" model:"omit"`
}

func (a *Activation) activation() *Activation {
	return a
}

// SetActive parses s and sets it as the Active value.
func (a *Activation) SetActive(s string) error {
	v, err := active.Parse(s)
	if err != nil {
		return newConfigError(KeyInvalidValue, err, "active")
	}
	a.Active = v
	return nil
}

// IsActiveSet reports whether either Active or the legacy flag is set.
func (a *Activation) IsActiveSet() bool {
	return !a.Active.IsZero() || a.Enabled != nil
}

// Effective returns the Active value to use, translating the legacy flag if needed.
// The legacy flag is reported to rc as deprecated.
func (a *Activation) Effective(rc RunContext, path string) active.Active {
	if a.Enabled != nil {
		rc.Deprecated(path+".enabled", fmt.Sprintf("%s.enabled has been deprecated, use %s.active instead", path, path))
		if a.Active.IsZero() {
			if *a.Enabled {
				return active.Always
			}
			return active.Never
		}
	}
	return a.Active
}

// IsEnabled resolves the activation for path against rc.
// This is computed on every call.
func (a *Activation) IsEnabled(rc RunContext, path string) bool {
	return a.Effective(rc, path).Check(rc)
}

// Migrate replaces the legacy enabled flag with its Active equivalent.
func (a *Activation) Migrate(rc RunContext, path string) {
	if a.Enabled == nil {
		return
	}
	a.Active = a.Effective(rc, path)
	a.Enabled = nil
}

// Timeouts holds network timeouts in seconds.
// A nil value means that the default should be used.
type Timeouts struct {
	ConnectTimeout *int `json:"connect_timeout"`
	ReadTimeout    *int `json:"read_timeout"`
}

// ConnectTimeoutOr returns the connect timeout or def if not set.
func (t *Timeouts) ConnectTimeoutOr(def int) int {
	if t.ConnectTimeout == nil {
		return def
	}
	return *t.ConnectTimeout
}

// ReadTimeoutOr returns the read timeout or def if not set.
func (t *Timeouts) ReadTimeoutOr(def int) int {
	if t.ReadTimeout == nil {
		return def
	}
	return *t.ReadTimeout
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Int returns a pointer to i.
func Int(i int) *int {
	return &i
}

// BoolOr returns *b or def if b is nil.
func BoolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
