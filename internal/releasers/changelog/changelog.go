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

package changelog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/jreleaser/jreleaser/internal/common/matchers"
)

// DefaultTagPattern matches the tags considered when looking for the previous release.
const DefaultTagPattern = "v[0-9]*"

// CollectChanges collects changes according to the given options.
// If opts.ResolveUserName is set, it will be used to resolve Change.Username (e.g. GitHub login).
func CollectChanges(opts Options) (Changes, error) {
	c := &collector{opts: opts}
	return c.collect()
}

// GroupByTitleFunc groups g by title according to the grouping function f.
// If f returns false, that change item is not included in the result.
func GroupByTitleFunc(g Changes, f func(Change) (string, int, bool)) ([]TitleChanges, error) {
	var ngi []TitleChanges
	for _, gi := range g {
		title, i, ok := f(gi)
		if !ok {
			continue
		}
		idx := -1
		for j, ngi := range ngi {
			if ngi.Title == title {
				idx = j
				break
			}
		}
		if idx == -1 {
			ngi = append(ngi, TitleChanges{Title: title, ordinal: i + 1})
			idx = len(ngi) - 1
		}
		ngi[idx].Changes = append(ngi[idx].Changes, gi)
	}

	sort.SliceStable(ngi, func(i, j int) bool {
		return ngi[i].ordinal < ngi[j].ordinal
	})

	return ngi, nil
}

// Change represents a git commit.
type Change struct {
	// Fetched from git log.
	Hash    string
	Author  string
	Subject string
	Body    string

	Issues []int

	// Resolved from the git service.
	Username string
}

// Changes represents a list of git commits.
type Changes []Change

// Options for collecting changes.
type Options struct {
	// The repository to collect from.
	Repo *git.Repository

	// Can be nil.
	// ResolveUserName returns the username for the given author (email address) and commit sha.
	ResolveUserName func(commit, author string) (string, error)

	// All of these can be empty.
	PrevTag    string
	Tag        string
	Commitish  string
	TagPattern string
}

// TitleChanges represents a list of changes grouped by title.
type TitleChanges struct {
	Title   string
	Changes Changes

	ordinal int
}

type collector struct {
	opts Options
}

func (c *collector) collect() (Changes, error) {
	if c.opts.Repo == nil {
		return nil, errors.New("changelog: no repository")
	}

	to, err := c.resolveTo()
	if err != nil {
		return nil, err
	}

	var from plumbing.Hash
	if c.opts.PrevTag != "" {
		from, err = resolveTag(c.opts.Repo, c.opts.PrevTag)
		if err != nil {
			return nil, fmt.Errorf("prevTag %q does not exist", c.opts.PrevTag)
		}
	} else {
		from, _, err = c.versionTagBefore(to)
		if err != nil {
			return nil, err
		}
	}

	g, err := gitLog(c.opts.Repo, from, to)
	if err != nil {
		return nil, err
	}

	if c.opts.ResolveUserName != nil {
		for i, gi := range g {
			username, err := c.opts.ResolveUserName(gi.Hash, gi.Author)
			if err != nil {
				return nil, err
			}
			g[i].Username = username
		}
	}

	return g, nil
}

// PreviousTag returns the name of the closest version tag before the tag or commitish in opts.
// It returns an empty string if there is none.
func PreviousTag(opts Options) (string, error) {
	c := &collector{opts: opts}
	to, err := c.resolveTo()
	if err != nil {
		return "", err
	}
	_, name, err := c.versionTagBefore(to)
	return name, err
}

func (c *collector) resolveTo() (plumbing.Hash, error) {
	repo := c.opts.Repo
	if c.opts.Tag != "" {
		if h, err := resolveTag(repo, c.opts.Tag); err == nil {
			return h, nil
		}
		// Assume it hasn't been created yet.
	}
	if c.opts.Commitish != "" {
		h, err := repo.ResolveRevision(plumbing.Revision(c.opts.Commitish))
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("failed to resolve %q: %w", c.opts.Commitish, err)
		}
		return *h, nil
	}
	head, err := repo.Head()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return head.Hash(), nil
}

// versionTagBefore returns the closest tag matching the tag pattern
// reachable from the parents of to.
func (c *collector) versionTagBefore(to plumbing.Hash) (plumbing.Hash, string, error) {
	pattern := c.opts.TagPattern
	if pattern == "" {
		pattern = DefaultTagPattern
	}
	m, err := matchers.Glob(pattern)
	if err != nil {
		return plumbing.ZeroHash, "", err
	}

	tags, err := tagsByCommit(c.opts.Repo, m)
	if err != nil {
		return plumbing.ZeroHash, "", err
	}

	iter, err := c.opts.Repo.Log(&git.LogOptions{From: to})
	if err != nil {
		return plumbing.ZeroHash, "", err
	}
	defer iter.Close()

	var (
		found plumbing.Hash
		name  string
	)
	err = iter.ForEach(func(commit *object.Commit) error {
		if commit.Hash == to {
			return nil
		}
		if names, ok := tags[commit.Hash]; ok {
			found, name = commit.Hash, names[len(names)-1]
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return plumbing.ZeroHash, "", err
	}
	return found, name, nil
}

// tagsByCommit returns the sorted names of the tags matching m keyed by the commit they point to.
func tagsByCommit(repo *git.Repository, m matchers.Matcher) (map[plumbing.Hash][]string, error) {
	refs, err := repo.Tags()
	if err != nil {
		return nil, err
	}
	tags := make(map[plumbing.Hash][]string)
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if !m.Match(name) {
			return nil
		}
		h, err := resolveTag(repo, name)
		if err != nil {
			return err
		}
		tags[h] = append(tags[h], name)
		return nil
	})
	for _, names := range tags {
		sort.Strings(names)
	}
	return tags, err
}

// resolveTag returns the commit the tag points to, peeling annotated tags.
func resolveTag(repo *git.Repository, name string) (plumbing.Hash, error) {
	ref, err := repo.Tag(name)
	if err != nil {
		return plumbing.ZeroHash, err
	}
	if tag, err := repo.TagObject(ref.Hash()); err == nil {
		commit, err := tag.Commit()
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return commit.Hash, nil
	}
	return ref.Hash(), nil
}

func gitLog(repo *git.Repository, from, to plumbing.Hash) (Changes, error) {
	iter, err := repo.Log(&git.LogOptions{From: to})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var g Changes
	err = iter.ForEach(func(commit *object.Commit) error {
		if commit.Hash == from {
			return storer.ErrStop
		}
		g = append(g, commitToChange(commit))
		return nil
	})

	return g, err
}

func commitToChange(commit *object.Commit) Change {
	subject, body, _ := strings.Cut(strings.TrimSpace(commit.Message), "\n")
	body = strings.TrimSpace(body)
	return Change{
		Hash:    commit.Hash.String()[:7],
		Author:  commit.Author.Email,
		Subject: strings.TrimSpace(subject),
		Body:    body,
		Issues:  parseIssues(body),
	}
}

var issueRe = regexp.MustCompile(`(?i)(?:Updates?|Closes?|Fix.*|See) #(\d+)`)

func parseIssues(body string) []int {
	var i []int
	m := issueRe.FindAllStringSubmatch(body, -1)
	for _, mm := range m {
		issueID, err := strconv.Atoi(mm[1])
		if err != nil {
			continue
		}
		i = append(i, issueID)
	}
	return i
}
