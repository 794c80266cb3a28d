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
)

func TestReleaseInit(t *testing.T) {
	c := qt.New(t)

	c.Run("Defaults", func(c *qt.C) {
		var r Release
		r.Github = &GitService{Owner: "jreleaser", Name: "app", Branch: "develop"}
		c.Assert(r.Init(), qt.IsNil)

		g := r.GitService()
		c.Assert(g, qt.Equals, r.Github)
		c.Assert(g.ServiceName(), qt.Equals, GithubName)
		c.Assert(g.Host, qt.Equals, "github.com")
		c.Assert(g.Branch, qt.Equals, "develop")
		c.Assert(g.TagName, qt.Equals, "v{{ .projectVersion }}")
		c.Assert(g.CommitAuthor.Name, qt.Equals, "jreleaserbot")
	})

	c.Run("None", func(c *qt.C) {
		var r Release
		c.Assert(r.Init(), qt.IsNil)
		c.Assert(r.GitService(), qt.IsNil)
	})

	c.Run("Multiple", func(c *qt.C) {
		var r Release
		r.Github = &GitService{}
		r.Gitea = &GitService{}
		err := r.Init()
		c.Assert(err, qt.ErrorMatches, "only one of github, gitea can be configured")
		c.Assert(errors.Is(err, &ConfigError{Key: KeyMultipleGitServices}), qt.IsTrue)
	})
}

func TestGitServiceResolved(t *testing.T) {
	c := qt.New(t)

	rc := newTestContext()
	delete(rc.props, "tagName")

	g := NewGithub()
	g.Owner = "jreleaser"
	g.Name = "app"

	tag, err := g.ResolvedTagName(rc)
	c.Assert(err, qt.IsNil)
	c.Assert(tag, qt.Equals, "v1.2.3")

	name, err := g.ResolvedReleaseName(rc)
	c.Assert(err, qt.IsNil)
	c.Assert(name, qt.Equals, "Release v1.2.3")

	urls, err := g.ResolvedURLs(rc)
	c.Assert(err, qt.IsNil)
	c.Assert(urls["repoUrl"], qt.Equals, "https://github.com/jreleaser/app")
	c.Assert(urls["repoCloneUrl"], qt.Equals, "https://github.com/jreleaser/app.git")
	c.Assert(urls["releaseNotesUrl"], qt.Equals, "https://github.com/jreleaser/app/releases/tag/v1.2.3")
	c.Assert(urls["apiEndpoint"], qt.Equals, "https://api.github.com")

	dl, err := g.ResolvedDownloadURL(rc, "app-1.2.3.zip")
	c.Assert(err, qt.IsNil)
	c.Assert(dl, qt.Equals, "https://github.com/jreleaser/app/releases/download/v1.2.3/app-1.2.3.zip")

	g.TagName = "{{ .projectVersion"
	_, err = g.ResolvedTagName(rc)
	c.Assert(err, qt.ErrorMatches, "release.github.tag_name: .*")
}

func TestPrerelease(t *testing.T) {
	c := qt.New(t)

	p := Prerelease{Pattern: `.*-(alpha|beta|rc)\d*`}
	c.Assert(p.IsPrerelease("1.0.0-rc1"), qt.IsTrue)
	c.Assert(p.IsPrerelease("1.0.0"), qt.IsFalse)

	p.Enabled = Bool(true)
	c.Assert(p.IsPrerelease("1.0.0"), qt.IsTrue)

	c.Assert((&Prerelease{Pattern: "("}).IsPrerelease("1.0.0"), qt.IsFalse)
}

func TestProjectSnapshot(t *testing.T) {
	c := qt.New(t)

	p := &Project{Version: "1.2.3-SNAPSHOT"}
	c.Assert(p.IsSnapshot(), qt.IsTrue)
	p.Version = "1.2.3-SNAPSHOT-1"
	c.Assert(p.IsSnapshot(), qt.IsFalse)
	p.Snapshot.Pattern = `.*-SNAPSHOT.*`
	c.Assert(p.IsSnapshot(), qt.IsTrue)

	p.Version = "1.2.3-rc.1"
	v, err := p.SemVer()
	c.Assert(err, qt.IsNil)
	c.Assert(v.Prerelease(), qt.Equals, "rc.1")
}
