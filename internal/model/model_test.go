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
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/jreleaser/jreleaser/internal/common/templ"
	"github.com/jreleaser/jreleaser/internal/model/active"
)

type testContext struct {
	snapshot   bool
	prerelease bool
	baseDir    string
	props      map[string]any
	deprecated []string
}

func newTestContext() *testContext {
	return &testContext{
		props: map[string]any{
			"projectName":    "app",
			"projectVersion": "1.2.3",
			"tagName":        "v1.2.3",
		},
	}
}

func (c *testContext) IsSnapshot() bool { return c.snapshot }
func (c *testContext) IsPrerelease() bool { return c.prerelease }
func (c *testContext) BaseDir() string { return c.baseDir }

func (c *testContext) Props() map[string]any {
	m := make(map[string]any, len(c.props))
	for k, v := range c.props {
		m[k] = v
	}
	return m
}

func (c *testContext) Render(tmpl string, props map[string]any) (string, error) {
	return templ.Sprintt(tmpl, props)
}

func (c *testContext) Deprecated(path, message string) {
	c.deprecated = append(c.deprecated, path)
}

func TestModelMergeLayers(t *testing.T) {
	c := qt.New(t)

	cli := New()
	cli.Project.Version = "2.0.0"

	env := New()
	env.Project.Version = "1.0.0"
	env.Announce.Slack.Token = "envtoken"

	file := New()
	file.Project.Name = "app"
	file.Announce.Slack.Active = active.Always
	file.Announce.Slack.Token = "filetoken"
	file.Announce.Slack.Channel = "#releases"

	defaults := New()
	defaults.Announce.Slack.Message = "default message"
	defaults.Announce.Slack.Channel = "#announce"

	cli.Merge(env)
	cli.Merge(file)
	cli.Merge(defaults)

	c.Assert(cli.Project.Version, qt.Equals, "2.0.0")
	c.Assert(cli.Project.Name, qt.Equals, "app")
	c.Assert(cli.Announce.Slack.Token, qt.Equals, "envtoken")
	c.Assert(cli.Announce.Slack.Channel, qt.Equals, "#releases")
	c.Assert(cli.Announce.Slack.Message, qt.Equals, "default message")
	c.Assert(cli.Announce.Slack.Active, qt.Equals, active.Always)

	// Sources are not modified.
	c.Assert(file.Announce.Slack.Message, qt.Equals, "")
}

func TestModelAsMapTopLevel(t *testing.T) {
	c := qt.New(t)

	m := New()
	m.Project.Name = "app"
	m.Release.Github = NewGithub()
	c.Assert(m.Init(), qt.IsNil)

	rc := newTestContext()
	c.Assert(m.AsMap(rc, false).Keys(), qt.DeepEquals, []string{"environment", "project", "release"})
	c.Assert(m.AsMap(rc, true).Keys(), qt.DeepEquals,
		[]string{"environment", "project", "release", "signing", "announce", "upload", "download", "packagers"})
}

func TestModelMigrate(t *testing.T) {
	c := qt.New(t)

	m := New()
	m.Announce.Enabled = Bool(true)
	m.Announce.Slack.Enabled = Bool(false)
	m.Announce.Discord.Enabled = Bool(true)
	m.Announce.Discord.Active = active.Snapshot
	nexus := NewHTTPUploader("nexus")
	nexus.Enabled = Bool(true)
	c.Assert(m.Upload.HTTP.Add(nexus), qt.IsNil)

	rc := newTestContext()
	m.Migrate(rc)

	c.Assert(m.Announce.Active, qt.Equals, active.Always)
	c.Assert(m.Announce.Enabled, qt.IsNil)
	c.Assert(m.Announce.Slack.Active, qt.Equals, active.Never)
	c.Assert(m.Announce.Discord.Active, qt.Equals, active.Snapshot)
	c.Assert(nexus.Active, qt.Equals, active.Always)
	c.Assert(rc.deprecated, qt.DeepEquals, []string{
		"announce.enabled",
		"announce.discord.enabled",
		"announce.slack.enabled",
		"upload.http.nexus.enabled",
	})
}
