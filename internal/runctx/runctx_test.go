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

package runctx

import (
	"testing"
	"time"

	"github.com/bep/logg"
	qt "github.com/frankban/quicktest"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/jreleaser/jreleaser/internal/common/logging"
	"github.com/jreleaser/jreleaser/internal/model"
)

func newModel(c *qt.C, version string) *model.JReleaserModel {
	m := model.New()
	m.Project.Name = "app"
	m.Project.Version = version
	m.Project.Snapshot.Label = "early-access"
	m.Project.ExtraProperties.Set("team", "core")
	m.Environment.Properties = map[string]string{"buildOs": "linux"}
	m.Release.Github = &model.GitService{Owner: "acme", Name: "app"}
	c.Assert(m.Init(), qt.IsNil)
	return m
}

func TestContextProps(t *testing.T) {
	c := qt.New(t)

	rc, err := New(newModel(c, "1.2.3"), Options{BaseDir: "/work"})
	c.Assert(err, qt.IsNil)

	c.Assert(rc.IsSnapshot(), qt.IsFalse)
	c.Assert(rc.IsPrerelease(), qt.IsFalse)
	c.Assert(rc.BaseDir(), qt.Equals, "/work")

	props := rc.Props()
	c.Assert(props["projectName"], qt.Equals, "app")
	c.Assert(props["projectNameCapitalized"], qt.Equals, "App")
	c.Assert(props["projectVersion"], qt.Equals, "1.2.3")
	c.Assert(props["projectVersionMajor"], qt.Equals, uint64(1))
	c.Assert(props["projectTeam"], qt.Equals, "core")
	c.Assert(props["buildOs"], qt.Equals, "linux")
	c.Assert(props["tagName"], qt.Equals, "v1.2.3")
	c.Assert(props["releaseName"], qt.Equals, "Release v1.2.3")
	c.Assert(props["releaseNotesUrl"], qt.Equals, "https://github.com/acme/app/releases/tag/v1.2.3")
	c.Assert(props["repoUrl"], qt.Equals, "https://github.com/acme/app")

	// Props returns a copy.
	props["projectName"] = "other"
	c.Assert(rc.Props()["projectName"], qt.Equals, "app")

	rc.SetProp("changelog", "- Fix bar")
	s, err := rc.Render("{{ .projectName }}: {{ .changelog }}", rc.Props())
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.Equals, "app: - Fix bar")
}

func TestContextMode(t *testing.T) {
	c := qt.New(t)

	c.Run("Snapshot", func(c *qt.C) {
		rc, err := New(newModel(c, "1.3.0-SNAPSHOT"), Options{})
		c.Assert(err, qt.IsNil)
		c.Assert(rc.IsSnapshot(), qt.IsTrue)
		c.Assert(rc.IsPrerelease(), qt.IsFalse)
		c.Assert(rc.Props()["tagName"], qt.Equals, "early-access")
		c.Assert(rc.Props()["projectSnapshot"], qt.Equals, true)
	})

	c.Run("Semver prerelease", func(c *qt.C) {
		rc, err := New(newModel(c, "1.3.0-rc.1"), Options{})
		c.Assert(err, qt.IsNil)
		c.Assert(rc.IsSnapshot(), qt.IsFalse)
		c.Assert(rc.IsPrerelease(), qt.IsTrue)
	})

	c.Run("Prerelease disabled", func(c *qt.C) {
		m := newModel(c, "1.3.0-rc.1")
		m.Release.Github.Prerelease.Enabled = model.Bool(false)
		rc, err := New(m, Options{})
		c.Assert(err, qt.IsNil)
		c.Assert(rc.IsPrerelease(), qt.IsFalse)
	})

	c.Run("Prerelease pattern", func(c *qt.C) {
		m := newModel(c, "1.3.0.beta")
		m.Release.Github.Prerelease.Pattern = ".*beta.*"
		rc, err := New(m, Options{})
		c.Assert(err, qt.IsNil)
		c.Assert(rc.IsPrerelease(), qt.IsTrue)
	})

	c.Run("No git service", func(c *qt.C) {
		m := model.New()
		m.Project.Version = "1.0.0"
		rc, err := New(m, Options{})
		c.Assert(err, qt.IsNil)
		_, found := rc.Props()["tagName"]
		c.Assert(found, qt.IsFalse)
	})

	c.Run("Invalid tag template", func(c *qt.C) {
		m := newModel(c, "1.0.0")
		m.Release.Github.TagName = "{{ .projectVersion "
		_, err := New(m, Options{})
		c.Assert(err, qt.ErrorMatches, "release.github.tag_name: .*")
	})
}

func TestContextDeprecated(t *testing.T) {
	c := qt.New(t)

	recorder := logging.NewRecorder()
	_, warnLog := logging.NewLevelLoggers(recorder)

	m := newModel(c, "1.0.0")
	m.Announce.Slack.Enabled = model.Bool(true)
	m.Announce.Discord.Enabled = model.Bool(true)

	rc, err := New(m, Options{WarnLog: warnLog})
	c.Assert(err, qt.IsNil)

	m.Migrate(rc)
	rc.Deprecated("announce.slack.enabled", "again")

	entries := recorder.Entries(logg.LevelWarn)
	c.Assert(entries, qt.HasLen, 2)
	c.Assert(entries[0].Fields["key"], qt.Equals, "announce.discord.enabled")
	c.Assert(entries[1].Fields["key"], qt.Equals, "announce.slack.enabled")
	c.Assert(rc.DeprecatedPaths(), qt.HasLen, 2)
}

func TestGitFacts(t *testing.T) {
	c := qt.New(t)

	fs := memfs.New()
	repo, err := git.Init(memory.NewStorage(), fs)
	c.Assert(err, qt.IsNil)

	facts, err := GitFactsFromRepo(repo)
	c.Assert(err, qt.IsNil)
	c.Assert(facts.CommitFullHash, qt.Equals, "")

	c.Assert(util.WriteFile(fs, "README.md", []byte("app"), 0o644), qt.IsNil)
	w, err := repo.Worktree()
	c.Assert(err, qt.IsNil)
	_, err = w.Add("README.md")
	c.Assert(err, qt.IsNil)
	when := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	h, err := w.Commit("Initial", &git.CommitOptions{Author: &object.Signature{Name: "joe", Email: "joe@example.org", When: when}})
	c.Assert(err, qt.IsNil)

	facts, err = GitFactsFromRepo(repo)
	c.Assert(err, qt.IsNil)
	c.Assert(facts.Branch, qt.Equals, "master")
	c.Assert(facts.CommitFullHash, qt.Equals, h.String())
	c.Assert(facts.CommitShortHash, qt.Equals, h.String()[:7])

	rc, err := New(newModel(c, "1.0.0"), Options{Git: facts})
	c.Assert(err, qt.IsNil)
	props := rc.Props()
	c.Assert(props["commitShortHash"], qt.Equals, h.String()[:7])
	c.Assert(props["branch"], qt.Equals, "master")
	c.Assert(props["commitTimestamp"], qt.Equals, "2026-03-01T10:00:00Z")
	c.Assert(rc.Git().Repo, qt.Equals, repo)
}

func TestLoadGitFactsNoRepository(t *testing.T) {
	c := qt.New(t)

	facts, err := LoadGitFacts(t.TempDir())
	c.Assert(err, qt.IsNil)
	c.Assert(facts.Repo, qt.IsNil)
}
