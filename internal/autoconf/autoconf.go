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

// Package autoconf builds a model from command line parameters alone,
// for releases made without a config file.
package autoconf

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"

	"github.com/jreleaser/jreleaser/internal/common/matchers"
	"github.com/jreleaser/jreleaser/internal/model"
	"github.com/jreleaser/jreleaser/internal/model/active"
)

// ModelAutoConfigurer translates command line parameters into a model layer.
// Only the parameters that are set end up in the model.
type ModelAutoConfigurer struct {
	ProjectName                  string
	ProjectVersion               string
	ProjectVersionPattern        string
	ProjectSnapshotPattern       string
	ProjectSnapshotLabel         string
	ProjectSnapshotFullChangelog bool

	// Owner/name of the repository, detected from the origin remote if not set.
	Repository string
	// The git service host, detected from the origin remote if not set.
	Host string

	Username          string
	TagName           string
	PreviousTagName   string
	ReleaseName       string
	Branch            string
	CommitAuthorName  string
	CommitAuthorEmail string
	Overwrite         bool
	Update            bool
	UpdateSections    []string
	SkipTag           bool
	SkipRelease       bool
	Draft             bool
	Prerelease        bool
	PrereleasePattern string
	Changelog         string
	Signing           bool
	Armored           bool

	// Files and glob patterns of the files to attach to the release.
	Files []string
	Globs []string
}

// RegisterFlags registers the auto configuration flags in fs.
func (a *ModelAutoConfigurer) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&a.ProjectName, "project-name", "", "The project name.")
	fs.StringVar(&a.ProjectVersion, "project-version", "", "The project version.")
	fs.StringVar(&a.ProjectVersionPattern, "project-version-pattern", "", "The project version pattern, e.g. SEMVER.")
	fs.StringVar(&a.ProjectSnapshotPattern, "project-snapshot-pattern", "", "The pattern matching snapshot versions.")
	fs.StringVar(&a.ProjectSnapshotLabel, "project-snapshot-label", "", "The tag used for snapshot releases.")
	fs.BoolVar(&a.ProjectSnapshotFullChangelog, "project-snapshot-full-changelog", false, "Generate the full changelog for snapshots.")
	fs.StringVar(&a.Repository, "repository", "", "The repository as owner/name, detected from the origin remote if not set.")
	fs.StringVar(&a.Host, "host", "", "The git service host, detected from the origin remote if not set.")
	fs.StringVar(&a.Username, "username", "", "The git service username.")
	fs.StringVar(&a.TagName, "tag-name", "", "The release tag.")
	fs.StringVar(&a.PreviousTagName, "previous-tag-name", "", "The previous release tag.")
	fs.StringVar(&a.ReleaseName, "release-name", "", "The release name.")
	fs.StringVar(&a.Branch, "branch", "", "The branch to release from.")
	fs.StringVar(&a.CommitAuthorName, "commit-author-name", "", "The name of the commit author.")
	fs.StringVar(&a.CommitAuthorEmail, "commit-author-email", "", "The email of the commit author.")
	fs.BoolVar(&a.Overwrite, "overwrite", false, "Overwrite an existing release.")
	fs.BoolVar(&a.Update, "update", false, "Update an existing release.")
	fs.Func("update-section", "A section to update, may be repeated.", func(s string) error {
		a.UpdateSections = append(a.UpdateSections, s)
		return nil
	})
	fs.BoolVar(&a.SkipTag, "skip-tag", false, "Skip creating the tag.")
	fs.BoolVar(&a.SkipRelease, "skip-release", false, "Skip creating the release.")
	fs.BoolVar(&a.Draft, "draft", false, "Create a draft release.")
	fs.BoolVar(&a.Prerelease, "prerelease", false, "Mark the release as a prerelease.")
	fs.StringVar(&a.PrereleasePattern, "prerelease-pattern", "", "The pattern matching prerelease versions.")
	fs.StringVar(&a.Changelog, "changelog", "", "The changelog file to use as release notes.")
	fs.BoolVar(&a.Signing, "sign", false, "Sign the files.")
	fs.BoolVar(&a.Armored, "armored", false, "Use ASCII armored signatures.")
	fs.Func("file", "A file to release, may be repeated.", func(s string) error {
		a.Files = append(a.Files, s)
		return nil
	})
	fs.Func("glob", "A glob pattern matching files to release, may be repeated.", func(s string) error {
		a.Globs = append(a.Globs, s)
		return nil
	})
}

// Model builds the command line model layer.
// repo is used to detect the git service and may be nil.
func (a *ModelAutoConfigurer) Model(repo *git.Repository) (*model.JReleaserModel, error) {
	m := model.New()

	p := &m.Project
	p.Name = a.ProjectName
	p.Version = a.ProjectVersion
	p.VersionPattern = a.ProjectVersionPattern
	p.Snapshot.Pattern = a.ProjectSnapshotPattern
	p.Snapshot.Label = a.ProjectSnapshotLabel
	p.Snapshot.FullChangelog = boolIfSet(a.ProjectSnapshotFullChangelog)

	if a.Signing {
		m.Signing.Active = active.Always
		m.Signing.Armored = boolIfSet(a.Armored)
	}

	remote, err := a.remote(repo)
	if err != nil {
		return nil, err
	}

	g := &model.GitService{}
	if p.Name == "" {
		p.Name = remote.Name
	}
	g.Host = remote.Host
	g.Owner = remote.Owner
	g.Name = remote.Name
	g.Username = a.Username
	g.TagName = a.TagName
	g.PreviousTagName = a.PreviousTagName
	g.ReleaseName = a.ReleaseName
	g.Branch = a.Branch
	g.CommitAuthor.Name = a.CommitAuthorName
	g.CommitAuthor.Email = a.CommitAuthorEmail
	g.Overwrite = boolIfSet(a.Overwrite)
	g.Update.Enabled = boolIfSet(a.Update)
	g.Update.Sections = a.UpdateSections
	g.SkipTag = boolIfSet(a.SkipTag)
	g.SkipRelease = boolIfSet(a.SkipRelease)
	g.Draft = boolIfSet(a.Draft)
	g.Sign = boolIfSet(a.Signing)
	g.Prerelease.Enabled = boolIfSet(a.Prerelease)
	g.Prerelease.Pattern = a.PrereleasePattern
	g.Changelog.External = a.Changelog

	switch remote.Service {
	case model.GithubName:
		m.Release.Github = g
	case model.GitlabName:
		m.Release.Gitlab = g
	case model.GiteaName:
		m.Release.Gitea = g
	}

	return m, nil
}

// boolIfSet returns a pointer to b if set, leaving false for the lower layers to decide.
func boolIfSet(b bool) *bool {
	if !b {
		return nil
	}
	return model.Bool(true)
}

// Remote describes the repository releases are published to.
type Remote struct {
	Service string
	Host    string
	Owner   string
	Name    string
}

func (a *ModelAutoConfigurer) remote(repo *git.Repository) (Remote, error) {
	var r Remote
	if a.Repository != "" {
		i := strings.LastIndex(a.Repository, "/")
		if i <= 0 || i == len(a.Repository)-1 {
			return r, fmt.Errorf("invalid repository %q, expected owner/name", a.Repository)
		}
		r.Owner, r.Name = a.Repository[:i], a.Repository[i+1:]
	}
	r.Host = a.Host

	if (r.Owner == "" || r.Host == "") && repo != nil {
		origin, err := repo.Remote(git.DefaultRemoteName)
		if err != nil && !errors.Is(err, git.ErrRemoteNotFound) {
			return r, err
		}
		if err == nil && len(origin.Config().URLs) > 0 {
			detected, err := ParseRemoteURL(origin.Config().URLs[0])
			if err != nil {
				return r, err
			}
			if r.Owner == "" {
				r.Owner, r.Name = detected.Owner, detected.Name
			}
			if r.Host == "" {
				r.Host = detected.Host
			}
		}
	}

	if r.Owner == "" {
		return r, errors.New("unable to determine the repository, set -repository or add an origin remote")
	}
	if r.Host == "" {
		r.Host = "github.com"
	}
	r.Service = ServiceForHost(r.Host)
	return r, nil
}

// ServiceForHost returns the git service key for host.
// Hosts that are neither GitHub nor GitLab are assumed to run Gitea.
func ServiceForHost(host string) string {
	host = strings.ToLower(host)
	switch {
	case strings.Contains(host, "github"):
		return model.GithubName
	case strings.Contains(host, "gitlab"):
		return model.GitlabName
	default:
		return model.GiteaName
	}
}

// ParseRemoteURL parses a git remote URL, e.g. git@github.com:owner/name.git
// or https://gitlab.com/group/subgroup/name.
func ParseRemoteURL(s string) (Remote, error) {
	var r Remote
	var p string
	if !strings.Contains(s, "://") {
		// scp like syntax.
		hostPart, path, ok := strings.Cut(s, ":")
		if !ok {
			return r, fmt.Errorf("invalid remote URL %q", s)
		}
		if i := strings.Index(hostPart, "@"); i != -1 {
			hostPart = hostPart[i+1:]
		}
		r.Host, p = hostPart, path
	} else {
		u, err := url.Parse(s)
		if err != nil {
			return r, fmt.Errorf("invalid remote URL %q: %w", s, err)
		}
		r.Host, p = u.Hostname(), u.Path
	}

	p = strings.TrimSuffix(strings.Trim(p, "/"), ".git")
	i := strings.LastIndex(p, "/")
	if r.Host == "" || i <= 0 {
		return r, fmt.Errorf("invalid remote URL %q, expected owner and name", s)
	}
	r.Owner, r.Name = p[:i], p[i+1:]
	r.Service = ServiceForHost(r.Host)
	return r, nil
}

// Artifacts returns the files to release, relative paths and globs resolved against baseDir.
// The result is sorted and without duplicates.
func (a *ModelAutoConfigurer) Artifacts(baseDir string) ([]string, error) {
	seen := make(map[string]bool)
	for _, f := range a.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(baseDir, f)
		}
		if _, err := os.Stat(f); err != nil {
			return nil, fmt.Errorf("file %q: %w", f, err)
		}
		seen[f] = true
	}

	if len(a.Globs) > 0 {
		m, err := matchers.Select(a.Globs, nil)
		if err != nil {
			return nil, err
		}
		err = filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == ".git" {
					return filepath.SkipDir
				}
				return nil
			}
			rel, err := filepath.Rel(baseDir, path)
			if err != nil {
				return err
			}
			if m.Match(filepath.ToSlash(rel)) {
				seen[path] = true
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}
