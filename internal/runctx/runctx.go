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
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/bep/logg"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/jreleaser/jreleaser/internal/common/logging"
	"github.com/jreleaser/jreleaser/internal/common/templ"
	"github.com/jreleaser/jreleaser/internal/model"
)

var _ model.RunContext = (*Context)(nil)

// GitFacts describes the state of the git repository the release is made from.
type GitFacts struct {
	// Repo is nil when not running inside a repository.
	Repo *git.Repository

	Branch          string
	CommitFullHash  string
	CommitShortHash string
	CommitTimestamp time.Time
}

// LoadGitFacts opens the repository containing dir.
// Zero facts are returned when dir is not inside a repository.
func LoadGitFacts(dir string) (*GitFacts, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return &GitFacts{}, nil
		}
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}
	return GitFactsFromRepo(repo)
}

// GitFactsFromRepo reads the head commit and branch of repo.
// A repository without commits gives facts without a commit.
func GitFactsFromRepo(repo *git.Repository) (*GitFacts, error) {
	facts := &GitFacts{Repo: repo}
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return facts, nil
		}
		return nil, err
	}
	if head.Name().IsBranch() {
		facts.Branch = head.Name().Short()
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}
	facts.CommitFullHash = commit.Hash.String()
	facts.CommitShortHash = facts.CommitFullHash[:7]
	facts.CommitTimestamp = commit.Committer.When
	return facts, nil
}

// Options for a new Context.
type Options struct {
	BaseDir string

	// WarnLog receives deprecation warnings.
	WarnLog logg.LevelLogger

	// DryRun is set when nothing should be published.
	DryRun bool

	// Can be nil.
	Git *GitFacts
}

// Context holds the state of a single run against a model.
type Context struct {
	m    *model.JReleaserModel
	opts Options

	snapshot   bool
	prerelease bool

	mu         sync.Mutex
	props      map[string]any
	deprecated map[string]bool
}

// New creates a new run context for m, resolving the mode and the template properties.
func New(m *model.JReleaserModel, opts Options) (*Context, error) {
	if opts.WarnLog == nil {
		_, opts.WarnLog = logging.NewLevelLoggers(logging.NewNoColoursHandler(io.Discard, io.Discard))
	}
	if opts.Git == nil {
		opts.Git = &GitFacts{}
	}

	c := &Context{
		m:          m,
		opts:       opts,
		props:      make(map[string]any),
		deprecated: make(map[string]bool),
	}

	c.snapshot = m.Project.IsSnapshot()
	if !c.snapshot {
		c.prerelease = isPrerelease(m)
	}

	if err := c.initProps(); err != nil {
		return nil, err
	}

	return c, nil
}

func isPrerelease(m *model.JReleaserModel) bool {
	if g := m.Release.GitService(); g != nil && (g.Prerelease.Enabled != nil || g.Prerelease.Pattern != "") {
		return g.Prerelease.IsPrerelease(m.Project.Version)
	}
	v, err := m.Project.SemVer()
	if err != nil {
		return false
	}
	return v.Prerelease() != ""
}

func (c *Context) initProps() error {
	p := &c.m.Project
	facts := c.opts.Git

	props := c.props
	for k, v := range c.m.Environment.Properties {
		props[k] = v
	}
	for k, v := range p.ExtraProperties.Prefixed("project") {
		props[k] = v
	}

	props["projectName"] = p.Name
	props["projectNameCapitalized"] = templ.Capitalize(p.Name)
	props["projectVersion"] = p.Version
	props["projectDescription"] = p.Description
	props["projectWebsite"] = p.Website
	props["projectLicense"] = p.License
	props["projectSnapshot"] = c.snapshot
	if v, err := semver.NewVersion(p.Version); err == nil {
		props["projectVersionMajor"] = v.Major()
		props["projectVersionMinor"] = v.Minor()
		props["projectVersionPatch"] = v.Patch()
		props["projectVersionPrerelease"] = v.Prerelease()
	}

	props["commitShortHash"] = facts.CommitShortHash
	props["commitFullHash"] = facts.CommitFullHash
	props["branch"] = facts.Branch
	if !facts.CommitTimestamp.IsZero() {
		props["commitTimestamp"] = facts.CommitTimestamp.UTC().Format(time.RFC3339)
	}

	g := c.m.Release.GitService()
	if g == nil {
		return nil
	}

	props["repoHost"] = g.Host
	props["repoOwner"] = g.Owner
	props["repoName"] = g.Name
	props["repoBranch"] = g.Branch

	if c.snapshot && p.Snapshot.Label != "" {
		props["tagName"] = p.Snapshot.Label
	} else {
		tag, err := g.ResolvedTagName(c)
		if err != nil {
			return err
		}
		props["tagName"] = tag
	}

	releaseName, err := g.ResolvedReleaseName(c)
	if err != nil {
		return err
	}
	props["releaseName"] = releaseName

	if g.PreviousTagName != "" {
		props["previousTagName"] = g.PreviousTagName
	}

	urls, err := g.ResolvedURLs(c)
	if err != nil {
		return err
	}
	for k, v := range urls {
		props[k] = v
	}

	return nil
}

// Model returns the model this run is made against.
func (c *Context) Model() *model.JReleaserModel {
	return c.m
}

// Git returns the repository facts.
func (c *Context) Git() *GitFacts {
	return c.opts.Git
}

// IsDryRun reports whether nothing should be published.
func (c *Context) IsDryRun() bool {
	return c.opts.DryRun
}

func (c *Context) IsSnapshot() bool {
	return c.snapshot
}

func (c *Context) IsPrerelease() bool {
	return c.prerelease
}

func (c *Context) BaseDir() string {
	return c.opts.BaseDir
}

// Props returns a copy of the template properties.
func (c *Context) Props() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := make(map[string]any, len(c.props))
	for k, v := range c.props {
		m[k] = v
	}
	return m
}

// SetProp sets the template property key, e.g. changelog once the release notes are known.
func (c *Context) SetProp(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.props[key] = value
}

func (c *Context) Render(tmpl string, props map[string]any) (string, error) {
	return templ.Sprintt(tmpl, props)
}

// Deprecated logs a warning the first time path is reported.
func (c *Context) Deprecated(path, message string) {
	c.mu.Lock()
	seen := c.deprecated[path]
	c.deprecated[path] = true
	c.mu.Unlock()
	if seen {
		return
	}
	c.opts.WarnLog.WithField("key", path).Log(logg.String(fmt.Sprintf("deprecated: %s", message)))
}

// DeprecatedPaths returns the reported deprecated paths.
func (c *Context) DeprecatedPaths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	paths := make([]string, 0, len(c.deprecated))
	for k := range c.deprecated {
		paths = append(paths, k)
	}
	return paths
}
