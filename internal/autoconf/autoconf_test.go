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

package autoconf

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/storage/memory"

	"github.com/jreleaser/jreleaser/internal/model"
	"github.com/jreleaser/jreleaser/internal/model/active"
)

func newRepoWithOrigin(c *qt.C, url string) *git.Repository {
	repo, err := git.Init(memory.NewStorage(), memfs.New())
	c.Assert(err, qt.IsNil)
	if url != "" {
		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{url}})
		c.Assert(err, qt.IsNil)
	}
	return repo
}

func TestRegisterFlags(t *testing.T) {
	c := qt.New(t)

	var a ModelAutoConfigurer
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	a.RegisterFlags(fs)
	err := fs.Parse([]string{
		"-project-version", "1.0.0",
		"-update", "-update-section", "title", "-update-section", "body",
		"-file", "a.zip", "-glob", "dist/*.tar.gz",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(a.ProjectVersion, qt.Equals, "1.0.0")
	c.Assert(a.Update, qt.IsTrue)
	c.Assert(a.UpdateSections, qt.DeepEquals, []string{"title", "body"})
	c.Assert(a.Files, qt.DeepEquals, []string{"a.zip"})
	c.Assert(a.Globs, qt.DeepEquals, []string{"dist/*.tar.gz"})
}

func TestModel(t *testing.T) {
	c := qt.New(t)

	c.Run("From origin", func(c *qt.C) {
		a := ModelAutoConfigurer{
			ProjectVersion: "1.0.0",
			TagName:        "release-{{ .projectVersion }}",
			Draft:          true,
			Signing:        true,
		}
		m, err := a.Model(newRepoWithOrigin(c, "git@github.com:acme/app.git"))
		c.Assert(err, qt.IsNil)
		c.Assert(m.Project.Name, qt.Equals, "app")
		c.Assert(m.Signing.Active, qt.Equals, active.Always)
		c.Assert(m.Signing.Armored, qt.IsNil)
		g := m.Release.Github
		c.Assert(g, qt.Not(qt.IsNil))
		c.Assert(g.Host, qt.Equals, "github.com")
		c.Assert(g.Owner, qt.Equals, "acme")
		c.Assert(g.TagName, qt.Equals, "release-{{ .projectVersion }}")
		c.Assert(*g.Draft, qt.IsTrue)
		c.Assert(g.Overwrite, qt.IsNil)

		// Defaults are filled in later.
		c.Assert(m.Init(), qt.IsNil)
		c.Assert(g.ReleaseName, qt.Equals, "Release {{ .tagName }}")
	})

	c.Run("Flags win over origin", func(c *qt.C) {
		a := ModelAutoConfigurer{ProjectName: "tool", Repository: "group/sub/tool", Host: "gitlab.example.org"}
		m, err := a.Model(newRepoWithOrigin(c, "https://github.com/acme/app"))
		c.Assert(err, qt.IsNil)
		c.Assert(m.Release.Github, qt.IsNil)
		c.Assert(m.Release.Gitlab.Owner, qt.Equals, "group/sub")
		c.Assert(m.Release.Gitlab.Name, qt.Equals, "tool")
		c.Assert(m.Project.Name, qt.Equals, "tool")
	})

	c.Run("Gitea", func(c *qt.C) {
		a := ModelAutoConfigurer{}
		m, err := a.Model(newRepoWithOrigin(c, "https://codeberg.org/acme/app.git"))
		c.Assert(err, qt.IsNil)
		c.Assert(m.Release.Gitea.Host, qt.Equals, "codeberg.org")
	})

	c.Run("No origin", func(c *qt.C) {
		a := ModelAutoConfigurer{}
		_, err := a.Model(newRepoWithOrigin(c, ""))
		c.Assert(err, qt.ErrorMatches, "unable to determine the repository.*")
		_, err = a.Model(nil)
		c.Assert(err, qt.ErrorMatches, "unable to determine the repository.*")
	})

	c.Run("No origin with repository", func(c *qt.C) {
		a := ModelAutoConfigurer{Repository: "acme/app"}
		m, err := a.Model(nil)
		c.Assert(err, qt.IsNil)
		c.Assert(m.Release.Github.Host, qt.Equals, "github.com")
	})

	c.Run("Invalid repository", func(c *qt.C) {
		a := ModelAutoConfigurer{Repository: "app"}
		_, err := a.Model(nil)
		c.Assert(err, qt.ErrorMatches, `invalid repository "app", expected owner/name`)
	})
}

func TestParseRemoteURL(t *testing.T) {
	c := qt.New(t)

	for _, test := range []struct {
		url  string
		want Remote
	}{
		{"git@github.com:acme/app.git", Remote{Service: model.GithubName, Host: "github.com", Owner: "acme", Name: "app"}},
		{"https://github.com/acme/app", Remote{Service: model.GithubName, Host: "github.com", Owner: "acme", Name: "app"}},
		{"ssh://git@gitlab.com:2222/group/sub/app.git", Remote{Service: model.GitlabName, Host: "gitlab.com", Owner: "group/sub", Name: "app"}},
		{"https://git.example.org/acme/app.git/", Remote{Service: model.GiteaName, Host: "git.example.org", Owner: "acme", Name: "app"}},
	} {
		c.Run(test.url, func(c *qt.C) {
			r, err := ParseRemoteURL(test.url)
			c.Assert(err, qt.IsNil)
			c.Assert(r, qt.Equals, test.want)
		})
	}

	_, err := ParseRemoteURL("https://github.com/app")
	c.Assert(err, qt.ErrorMatches, `invalid remote URL .*, expected owner and name`)
	_, err = ParseRemoteURL("nocolon")
	c.Assert(err, qt.ErrorMatches, `invalid remote URL "nocolon"`)
}

func TestArtifacts(t *testing.T) {
	c := qt.New(t)

	dir := t.TempDir()
	for _, name := range []string{"dist/app.zip", "dist/app.tar.gz", "README.md", ".git/config"} {
		filename := filepath.Join(dir, filepath.FromSlash(name))
		c.Assert(os.MkdirAll(filepath.Dir(filename), 0o755), qt.IsNil)
		c.Assert(os.WriteFile(filename, []byte(name), 0o644), qt.IsNil)
	}

	a := ModelAutoConfigurer{
		Files: []string{"README.md", filepath.Join(dir, "dist", "app.zip")},
		Globs: []string{"dist/*", "**config"},
	}
	files, err := a.Artifacts(dir)
	c.Assert(err, qt.IsNil)
	c.Assert(files, qt.DeepEquals, []string{
		filepath.Join(dir, "README.md"),
		filepath.Join(dir, "dist", "app.tar.gz"),
		filepath.Join(dir, "dist", "app.zip"),
	})

	a = ModelAutoConfigurer{Files: []string{"missing.zip"}}
	_, err = a.Artifacts(dir)
	c.Assert(err, qt.ErrorIs, os.ErrNotExist)
}
