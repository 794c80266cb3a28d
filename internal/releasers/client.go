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
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/google/go-github/v45/github"
	"golang.org/x/oauth2"

	"github.com/jreleaser/jreleaser/internal/model"
)

// FakeToken makes NewClient return a FakeClient.
const FakeToken = "faketoken"

const defaultGitHubAPIEndpoint = "https://api.github.com"

// ReleaseInfo describes the release to create or update.
type ReleaseInfo struct {
	Owner      string
	Repo       string
	Tag        string
	Commitish  string
	Name       string
	Body       string
	Draft      bool
	Prerelease bool
}

// Client talks to a git hosting service.
type Client interface {
	// GetReleaseByTag returns the ID of the release for info.Tag, found is false if there is none.
	GetReleaseByTag(ctx context.Context, info ReleaseInfo) (id int64, found bool, err error)
	CreateRelease(ctx context.Context, info ReleaseInfo) (int64, error)
	UpdateRelease(ctx context.Context, info ReleaseInfo, releaseID int64) error
	DeleteRelease(ctx context.Context, info ReleaseInfo, releaseID int64) error
	UploadAssetsFile(ctx context.Context, info ReleaseInfo, f *os.File, releaseID int64) error
}

// UsernameResolver is an interface that allows to resolve the username of a commit.
type UsernameResolver interface {
	ResolveUsername(ctx context.Context, sha, author string, info ReleaseInfo) (string, error)
}

// Validate validates that a release can be made to g.
func Validate(g *model.GitService) error {
	if g == nil {
		return errors.New("release: no git service configured")
	}
	if g.ServiceName() != model.GithubName {
		return fmt.Errorf("release: only github is supported for now, got %s", g.ServiceName())
	}
	if g.Token == "" {
		return fmt.Errorf("release: missing token, set release.github.token or JRELEASER_GITHUB_TOKEN")
	}
	if g.Owner == "" || g.Name == "" {
		return fmt.Errorf("release: release.github.owner and release.github.name must be set")
	}
	return nil
}

// NewClient creates a client for the git service g.
// A FakeClient is returned when dryRun is set or the token is FakeToken.
func NewClient(ctx context.Context, g *model.GitService, dryRun bool) (Client, error) {
	if err := Validate(g); err != nil {
		return nil, err
	}

	// Set in tests to test the full-release command
	// and when running with the -dry-run flag.
	if dryRun || g.Token == FakeToken {
		return NewFakeClient(), nil
	}

	tokenSource := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: g.Token},
	)

	httpClient := oauth2.NewClient(ctx, tokenSource)

	client, err := newGitHubClient(httpClient, g.APIEndpoint)
	if err != nil {
		return nil, err
	}

	return &GitHubClient{
		client:        client,
		usernameCache: make(map[string]string),
	}, nil
}

func newGitHubClient(httpClient *http.Client, endpoint string) (*github.Client, error) {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if endpoint == "" || endpoint == defaultGitHubAPIEndpoint {
		return github.NewClient(httpClient), nil
	}
	return github.NewEnterpriseClient(endpoint, endpoint, httpClient)
}

// UploadAssetsFileWithRetries is a wrapper around UploadAssetsFile that retries on temporary errors.
func UploadAssetsFileWithRetries(ctx context.Context, client Client, info ReleaseInfo, releaseID int64, openFile func() (*os.File, error)) error {
	return withRetries(ctx, func() (error, bool) {
		f, err := openFile()
		if err != nil {
			return err, false
		}
		defer f.Close()
		err = client.UploadAssetsFile(ctx, info, f, releaseID)
		if err != nil && errors.Is(err, TemporaryError{}) {
			return err, true
		}
		return err, false
	})
}
