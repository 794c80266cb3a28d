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
	"fmt"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

type testRepo struct {
	c    *qt.C
	repo *git.Repository
	fs   billy.Filesystem
	when time.Time
	n    int
}

func newTestRepo(c *qt.C) *testRepo {
	fs := memfs.New()
	repo, err := git.Init(memory.NewStorage(), fs)
	c.Assert(err, qt.IsNil)
	return &testRepo{c: c, repo: repo, fs: fs, when: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *testRepo) signature(email string) *object.Signature {
	r.when = r.when.Add(time.Minute)
	return &object.Signature{Name: strings.Split(email, "@")[0], Email: email, When: r.when}
}

func (r *testRepo) commit(email, message string) plumbing.Hash {
	r.n++
	name := fmt.Sprintf("file%d.txt", r.n)
	r.c.Assert(util.WriteFile(r.fs, name, []byte(message), 0o644), qt.IsNil)
	w, err := r.repo.Worktree()
	r.c.Assert(err, qt.IsNil)
	_, err = w.Add(name)
	r.c.Assert(err, qt.IsNil)
	h, err := w.Commit(message, &git.CommitOptions{Author: r.signature(email)})
	r.c.Assert(err, qt.IsNil)
	return h
}

func (r *testRepo) tag(name string, h plumbing.Hash) {
	_, err := r.repo.CreateTag(name, h, nil)
	r.c.Assert(err, qt.IsNil)
}

func (r *testRepo) annotatedTag(name string, h plumbing.Hash) {
	_, err := r.repo.CreateTag(name, h, &git.CreateTagOptions{Message: name, Tagger: r.signature("bot@example.org")})
	r.c.Assert(err, qt.IsNil)
}

func subjects(changes Changes) []string {
	var s []string
	for _, change := range changes {
		s = append(s, change.Subject)
	}
	return s
}

func TestCollectChanges(t *testing.T) {
	c := qt.New(t)

	r := newTestRepo(c)
	r.tag("v0.1.0", r.commit("joe@example.org", "Initial commit"))
	r.commit("joe@example.org", "Add foo\n\nCloses #12")
	h := r.commit("ann@example.org", "Fix bar\n\nFixes #13")
	r.annotatedTag("v0.2.0", h)
	r.tag("nightly", r.commit("ann@example.org", "Update docs"))

	c.Run("Untagged release", func(c *qt.C) {
		changes, err := CollectChanges(Options{Repo: r.repo, Tag: "v0.3.0"})
		c.Assert(err, qt.IsNil)
		c.Assert(subjects(changes), qt.DeepEquals, []string{"Update docs"})
		c.Assert(changes[0].Author, qt.Equals, "ann@example.org")
		c.Assert(changes[0].Hash, qt.HasLen, 7)
	})

	c.Run("Existing tag", func(c *qt.C) {
		changes, err := CollectChanges(Options{Repo: r.repo, Tag: "v0.2.0"})
		c.Assert(err, qt.IsNil)
		c.Assert(subjects(changes), qt.DeepEquals, []string{"Fix bar", "Add foo"})
		c.Assert(changes[0].Issues, qt.DeepEquals, []int{13})
		c.Assert(changes[1].Issues, qt.DeepEquals, []int{12})
		c.Assert(changes[1].Body, qt.Equals, "Closes #12")
	})

	c.Run("PrevTag", func(c *qt.C) {
		changes, err := CollectChanges(Options{Repo: r.repo, PrevTag: "v0.1.0"})
		c.Assert(err, qt.IsNil)
		c.Assert(subjects(changes), qt.DeepEquals, []string{"Update docs", "Fix bar", "Add foo"})
	})

	c.Run("PrevTag does not exist", func(c *qt.C) {
		_, err := CollectChanges(Options{Repo: r.repo, PrevTag: "v0.0.1"})
		c.Assert(err, qt.ErrorMatches, `prevTag "v0.0.1" does not exist`)
	})

	c.Run("First release", func(c *qt.C) {
		changes, err := CollectChanges(Options{Repo: r.repo, Tag: "v0.1.0"})
		c.Assert(err, qt.IsNil)
		c.Assert(subjects(changes), qt.DeepEquals, []string{"Initial commit"})
	})

	c.Run("Tag pattern", func(c *qt.C) {
		changes, err := CollectChanges(Options{Repo: r.repo, Tag: "v0.3.0", TagPattern: "none*"})
		c.Assert(err, qt.IsNil)
		c.Assert(changes, qt.HasLen, 4)
	})

	c.Run("ResolveUserName", func(c *qt.C) {
		changes, err := CollectChanges(Options{
			Repo: r.repo,
			Tag:  "v0.2.0",
			ResolveUserName: func(commit, author string) (string, error) {
				return strings.Split(author, "@")[0], nil
			},
		})
		c.Assert(err, qt.IsNil)
		c.Assert(changes[0].Username, qt.Equals, "ann")
		c.Assert(changes[1].Username, qt.Equals, "joe")
	})

	c.Run("No repository", func(c *qt.C) {
		_, err := CollectChanges(Options{})
		c.Assert(err, qt.ErrorMatches, "changelog: no repository")
	})
}

func TestPreviousTag(t *testing.T) {
	c := qt.New(t)

	r := newTestRepo(c)
	r.tag("v1.0.0", r.commit("joe@example.org", "First"))
	r.commit("joe@example.org", "Second")

	prev, err := PreviousTag(Options{Repo: r.repo, Tag: "v1.1.0"})
	c.Assert(err, qt.IsNil)
	c.Assert(prev, qt.Equals, "v1.0.0")

	prev, err = PreviousTag(Options{Repo: r.repo, Tag: "v1.0.0"})
	c.Assert(err, qt.IsNil)
	c.Assert(prev, qt.Equals, "")
}

func TestGroupByTitleFunc(t *testing.T) {
	c := qt.New(t)

	changes := Changes{
		{Subject: "Add foo"},
		{Subject: "Fix bar"},
		{Subject: "Add baz"},
		{Subject: "Merge branch"},
	}

	groups, err := GroupByTitleFunc(changes, func(change Change) (string, int, bool) {
		switch {
		case strings.HasPrefix(change.Subject, "Fix"):
			return "Bug fixes", 0, true
		case strings.HasPrefix(change.Subject, "Add"):
			return "Improvements", 1, true
		}
		return "", 0, false
	})
	c.Assert(err, qt.IsNil)
	c.Assert(groups, qt.HasLen, 2)
	c.Assert(groups[0].Title, qt.Equals, "Bug fixes")
	c.Assert(subjects(groups[1].Changes), qt.DeepEquals, []string{"Add foo", "Add baz"})
}

func TestParseIssues(t *testing.T) {
	c := qt.New(t)

	c.Assert(parseIssues("Closes #1\nUpdates #2\nSee #3"), qt.DeepEquals, []int{1, 2, 3})
	c.Assert(parseIssues("Nothing to see"), qt.IsNil)
}
