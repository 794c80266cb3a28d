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
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/jreleaser/jreleaser/internal/model/active"
)

func TestRegistry(t *testing.T) {
	c := qt.New(t)

	var r Registry[*Webhook]
	c.Assert(r.Len(), qt.Equals, 0)

	first := NewWebhook("Releases")
	first.Webhook = "https://first.example.com"
	c.Assert(r.Add(first), qt.IsNil)

	second := NewWebhook(" releases ")
	second.Webhook = "https://second.example.com"
	second.MessageProperty = "content"
	c.Assert(r.Add(second), qt.IsNil)

	c.Assert(r.Len(), qt.Equals, 1)
	w, err := r.FindByName("RELEASES")
	c.Assert(err, qt.IsNil)
	c.Assert(w, qt.Equals, first)
	c.Assert(w.Webhook, qt.Equals, "https://first.example.com")
	c.Assert(w.MessageProperty, qt.Equals, "content")

	c.Assert(r.Add(NewWebhook("alerts")), qt.IsNil)
	c.Assert(r.Names(), qt.DeepEquals, []string{"Releases", "alerts"})

	_, err = r.FindByName("missing")
	c.Assert(err, qt.ErrorMatches, `webhook "missing" not found`)
	c.Assert(errors.Is(err, ErrNotFound), qt.IsTrue)
	c.Assert(IsConfigError(err), qt.IsTrue)

	_, err = r.FindByName("  ")
	c.Assert(errors.Is(err, ErrBlankName), qt.IsTrue)

	err = r.Add(NewWebhook(""))
	c.Assert(err, qt.ErrorMatches, "webhook name must not be blank")
}

func TestRegistryAsMap(t *testing.T) {
	c := qt.New(t)

	rc := newTestContext()

	var r Registry[*HTTPAnnouncer]
	a := NewHTTPAnnouncer("b")
	a.Password = "pw"
	a.Active = active.Always
	c.Assert(r.Add(a), qt.IsNil)
	c.Assert(r.Add(NewHTTPAnnouncer("a")), qt.IsNil)

	c.Assert(r.AsMap(rc, false).Keys(), qt.DeepEquals, []string{"b"})
	c.Assert(r.AsMap(rc, true).Keys(), qt.DeepEquals, []string{"b", "a"})
}
