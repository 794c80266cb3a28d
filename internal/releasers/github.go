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

package releasers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-github/v45/github"
)

// Bodies above this are truncated.
const maxBodyLen = 100000

var (
	_ Client           = &GitHubClient{}
	_ UsernameResolver = &GitHubClient{}
)

// GitHubClient is a Client for GitHub and GitHub Enterprise.
type GitHubClient struct {
	client *github.Client

	usernameCacheMu sync.Mutex
	usernameCache   map[string]string
}

func (c *GitHubClient) ResolveUsername(ctx context.Context, sha, author string, info ReleaseInfo) (string, error) {
	c.usernameCacheMu.Lock()
	defer c.usernameCacheMu.Unlock()
	if username, ok := c.usernameCache[author]; ok {
		return username, nil
	}
	r, resp, err := c.client.Repositories.GetCommit(ctx, info.Owner, info.Repo, sha, nil)
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusUnprocessableEntity) {
			return "", nil
		}
		return "", err
	}
	if resp != nil && resp.StatusCode != http.StatusOK {
		return "", nil
	}

	if r.Author == nil || r.Author.Login == nil {
		return "", nil
	}

	c.usernameCache[author] = *r.Author.Login
	return c.usernameCache[author], nil
}

func (c *GitHubClient) GetReleaseByTag(ctx context.Context, info ReleaseInfo) (int64, bool, error) {
	release, resp, err := c.client.Repositories.GetReleaseByTag(ctx, info.Owner, info.Repo, info.Tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return 0, false, nil
		}
		return 0, false, err
	}

	return release.GetID(), true, nil
}

func (c *GitHubClient) CreateRelease(ctx context.Context, info ReleaseInfo) (int64, error) {
	rel, resp, err := c.client.Repositories.CreateRelease(ctx, info.Owner, info.Repo, newRepositoryRelease(info))
	if err != nil {
		return 0, err
	}

	if resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("github: unexpected status code: %d", resp.StatusCode)
	}

	return rel.GetID(), nil
}

func (c *GitHubClient) UpdateRelease(ctx context.Context, info ReleaseInfo, releaseID int64) error {
	_, _, err := c.client.Repositories.EditRelease(ctx, info.Owner, info.Repo, releaseID, newRepositoryRelease(info))
	return err
}

func (c *GitHubClient) DeleteRelease(ctx context.Context, info ReleaseInfo, releaseID int64) error {
	_, err := c.client.Repositories.DeleteRelease(ctx, info.Owner, info.Repo, releaseID)
	return err
}

func (c *GitHubClient) UploadAssetsFile(ctx context.Context, info ReleaseInfo, f *os.File, releaseID int64) error {
	_, resp, err := c.client.Repositories.UploadReleaseAsset(
		ctx,
		info.Owner,
		info.Repo,
		releaseID,
		&github.UploadOptions{
			Name: filepath.Base(f.Name()),
		},
		f,
	)
	if err == nil {
		return nil
	}

	if resp != nil && !isTemporaryHttpStatus(resp.StatusCode) {
		return err
	}

	return TemporaryError{err}
}

func newRepositoryRelease(info ReleaseInfo) *github.RepositoryRelease {
	s := func(s string) *string {
		if s == "" {
			return nil
		}
		return github.String(s)
	}

	body := info.Body
	if len(body) > maxBodyLen {
		body = body[:maxBodyLen]
	}

	return &github.RepositoryRelease{
		TagName:         s(info.Tag),
		TargetCommitish: s(info.Commitish),
		Name:            s(info.Name),
		Body:            s(body),
		Draft:           github.Bool(info.Draft),
		Prerelease:      github.Bool(info.Prerelease),
	}
}

// TemporaryError marks an error that may go away when retried.
type TemporaryError struct {
	error
}

func (e TemporaryError) Unwrap() error {
	return e.error
}

func (TemporaryError) Is(target error) bool {
	_, ok := target.(TemporaryError)
	return ok
}

// isTemporaryHttpStatus returns true if the status code is considered temporary, returning
// true if not sure.
func isTemporaryHttpStatus(status int) bool {
	switch status {
	case http.StatusUnprocessableEntity, http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return false
	default:
		return true
	}
}
