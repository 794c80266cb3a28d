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

func TestActivation(t *testing.T) {
	c := qt.New(t)

	c.Run("Unset", func(c *qt.C) {
		rc := newTestContext()
		s := &Slack{}
		c.Assert(s.IsEnabled(rc), qt.IsFalse)
		c.Assert(s.IsActiveSet(), qt.IsFalse)
		c.Assert(rc.deprecated, qt.HasLen, 0)
	})

	c.Run("Legacy enabled", func(c *qt.C) {
		rc := newTestContext()
		s := &Slack{}
		s.Enabled = Bool(true)
		c.Assert(s.IsActiveSet(), qt.IsTrue)
		c.Assert(s.IsEnabled(rc), qt.IsTrue)
		c.Assert(rc.deprecated, qt.DeepEquals, []string{"announce.slack.enabled"})

		s.Enabled = Bool(false)
		c.Assert(s.IsEnabled(rc), qt.IsFalse)
	})

	c.Run("Active wins over legacy enabled", func(c *qt.C) {
		rc := newTestContext()
		s := &Slack{}
		s.Enabled = Bool(true)
		s.Active = active.Never
		c.Assert(s.IsEnabled(rc), qt.IsFalse)
	})

	c.Run("Mode", func(c *qt.C) {
		rc := newTestContext()
		s := &Slack{}
		s.Active = active.Release
		c.Assert(s.IsEnabled(rc), qt.IsTrue)
		rc.snapshot = true
		c.Assert(s.IsEnabled(rc), qt.IsFalse)

		// Not cached.
		s.Active = active.Snapshot
		c.Assert(s.IsEnabled(rc), qt.IsTrue)
	})

	c.Run("Migrate", func(c *qt.C) {
		rc := newTestContext()
		s := &Slack{}
		s.Enabled = Bool(false)
		s.Migrate(rc, s.ConfigPath())
		c.Assert(s.Active, qt.Equals, active.Never)
		c.Assert(s.Enabled, qt.IsNil)
		s.Migrate(rc, s.ConfigPath())
		c.Assert(rc.deprecated, qt.HasLen, 1)
	})

	c.Run("SetActive", func(c *qt.C) {
		s := &Slack{}
		c.Assert(s.SetActive(" release-prerelease "), qt.IsNil)
		c.Assert(s.Active, qt.Equals, active.ReleasePrerelease)

		err := s.SetActive("sometimes")
		c.Assert(err, qt.ErrorMatches, `invalid value for active: invalid active value "sometimes".*`)
		c.Assert(errors.Is(err, ErrInvalidValue), qt.IsTrue)
		c.Assert(s.Active, qt.Equals, active.ReleasePrerelease)
	})
}

func TestTimeouts(t *testing.T) {
	c := qt.New(t)

	var to Timeouts
	c.Assert(to.ConnectTimeoutOr(20), qt.Equals, 20)
	to.ConnectTimeout = Int(0)
	c.Assert(to.ConnectTimeoutOr(20), qt.Equals, 0)
	c.Assert(to.ReadTimeoutOr(60), qt.Equals, 60)
}
