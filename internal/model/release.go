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
	"fmt"
	"regexp"
	"strings"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
	"github.com/jreleaser/jreleaser/pkg/api"
)

// Git service names.
const (
	GithubName = "github"
	GitlabName = "gitlab"
	GiteaName  = "gitea"
)

// CommitAuthor is the author of commits and tags created by a release.
type CommitAuthor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Prerelease decides whether a release is a prerelease.
type Prerelease struct {
	Enabled *bool  `json:"enabled"`
	Pattern string `json:"pattern"`
}

// IsPrerelease reports whether version is a prerelease.
// An explicit enabled flag wins over the pattern. An invalid pattern never matches.
func (p *Prerelease) IsPrerelease(version string) bool {
	if p.Enabled != nil {
		return *p.Enabled
	}
	if p.Pattern == "" {
		return false
	}
	re, err := regexp.Compile(p.Pattern)
	if err != nil {
		return false
	}
	return re.MatchString(version)
}

// Update controls updating an existing release.
type Update struct {
	Enabled  *bool    `json:"enabled"`
	Sections []string `json:"sections" model:"replace"`
}

// Changelog controls the release notes.
type Changelog struct {
	Enabled         *bool  `json:"enabled"`
	Links           *bool  `json:"links"`
	External        string `json:"external"`
	Formatted       string `json:"formatted"`
	Content         string `json:"content"`
	ContentTemplate string `json:"content_template"`
}

// GitService is a git hosting service that releases are published to.
type GitService struct {
	Host             string       `json:"host"`
	Owner            string       `json:"owner"`
	Name             string       `json:"name"`
	Username         string       `json:"username"`
	Token            string       `json:"token" model:"secret"`
	TagName          string       `json:"tag_name"`
	PreviousTagName  string       `json:"previous_tag_name"`
	ReleaseName      string       `json:"release_name"`
	Branch           string       `json:"branch"`
	Draft            *bool        `json:"draft"`
	Overwrite        *bool        `json:"overwrite"`
	SkipTag          *bool        `json:"skip_tag"`
	SkipRelease      *bool        `json:"skip_release"`
	Sign             *bool        `json:"sign"`
	RepoURL          string       `json:"repo_url"`
	RepoCloneURL     string       `json:"repo_clone_url"`
	CommitURL        string       `json:"commit_url"`
	DownloadURL      string       `json:"download_url"`
	ReleaseNotesURL  string       `json:"release_notes_url"`
	LatestReleaseURL string       `json:"latest_release_url"`
	IssueTrackerURL  string       `json:"issue_tracker_url"`
	APIEndpoint      string       `json:"api_endpoint"`
	CommitAuthor     CommitAuthor `json:"commit_author"`
	Prerelease       Prerelease   `json:"prerelease"`
	Update           Update       `json:"update"`
	Changelog        Changelog    `json:"changelog"`
	Timeouts
	ExtraProperties ExtraProperties `json:"extra_properties"`

	service   string
	immutable api.GitService
}

func newGitService(service string) *GitService {
	return &GitService{
		service:         service,
		TagName:         "v{{ .projectVersion }}",
		ReleaseName:     "Release {{ .tagName }}",
		Branch:          "main",
		RepoURL:         "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}",
		RepoCloneURL:    "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}.git",
		IssueTrackerURL: "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/issues",
		CommitAuthor: CommitAuthor{
			Name:  "jreleaserbot",
			Email: "jreleaser@kordamp.org",
		},
		Changelog: Changelog{
			Formatted: "ALWAYS",
		},
	}
}

// NewGithub creates a GitService with the GitHub defaults.
func NewGithub() *GitService {
	g := newGitService(GithubName)
	g.Host = "github.com"
	g.APIEndpoint = "https://api.github.com"
	g.CommitURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/commits"
	g.DownloadURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/releases/download/{{ .tagName }}/{{ .artifactFile }}"
	g.ReleaseNotesURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/releases/tag/{{ .tagName }}"
	g.LatestReleaseURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/releases/latest"
	return g
}

// NewGitlab creates a GitService with the GitLab defaults.
func NewGitlab() *GitService {
	g := newGitService(GitlabName)
	g.Host = "gitlab.com"
	g.APIEndpoint = "https://gitlab.com/api/v4"
	g.CommitURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/-/commits"
	g.DownloadURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/-/releases/{{ .tagName }}/downloads/{{ .artifactFile }}"
	g.ReleaseNotesURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/-/releases/{{ .tagName }}"
	g.LatestReleaseURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/-/releases/permalink/latest"
	g.IssueTrackerURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/-/issues"
	return g
}

// NewGitea creates a GitService with the Gitea defaults.
// Gitea is self hosted, so there is no default host.
func NewGitea() *GitService {
	g := newGitService(GiteaName)
	g.APIEndpoint = "https://{{ .repoHost }}/api/v1"
	g.CommitURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/commits"
	g.DownloadURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/releases/download/{{ .tagName }}/{{ .artifactFile }}"
	g.ReleaseNotesURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/releases/tag/{{ .tagName }}"
	g.LatestReleaseURL = "https://{{ .repoHost }}/{{ .repoOwner }}/{{ .repoName }}/releases/latest"
	return g
}

var gitServiceConstructors = map[string]func() *GitService{
	GithubName: NewGithub,
	GitlabName: NewGitlab,
	GiteaName:  NewGitea,
}

// ServiceName returns the name of the service, e.g. github.
func (g *GitService) ServiceName() string {
	return g.service
}

// IsDraft reports whether the release should be created as a draft.
func (g *GitService) IsDraft() bool { return BoolOr(g.Draft, false) }

// IsOverwrite reports whether an existing release should be deleted and recreated.
func (g *GitService) IsOverwrite() bool { return BoolOr(g.Overwrite, false) }

// IsSkipTag reports whether creating the tag should be skipped.
func (g *GitService) IsSkipTag() bool { return BoolOr(g.SkipTag, false) }

// IsSkipRelease reports whether creating the release should be skipped.
func (g *GitService) IsSkipRelease() bool { return BoolOr(g.SkipRelease, false) }

// IsSign reports whether the release assets should be signed.
func (g *GitService) IsSign() bool { return BoolOr(g.Sign, false) }

// IsUpdate reports whether an existing release should be updated.
func (g *GitService) IsUpdate() bool { return BoolOr(g.Update.Enabled, false) }

// IsChangelogEnabled reports whether release notes should be generated, default true.
func (g *GitService) IsChangelogEnabled() bool { return BoolOr(g.Changelog.Enabled, true) }

// Props returns the run properties with the repository properties and extra properties added.
func (g *GitService) Props(rc RunContext) map[string]any {
	props := templateProps(rc, g.service, &g.ExtraProperties)
	props["repoHost"] = g.Host
	props["repoOwner"] = g.Owner
	props["repoName"] = g.Name
	props["repoBranch"] = g.Branch
	return props
}

func (g *GitService) render(rc RunContext, field, tmpl string, props map[string]any) (string, error) {
	s, err := rc.Render(tmpl, props)
	if err != nil {
		return "", fmt.Errorf("release.%s.%s: %w", g.service, field, err)
	}
	return s, nil
}

// ResolvedTagName renders the tag name.
func (g *GitService) ResolvedTagName(rc RunContext) (string, error) {
	return g.render(rc, "tag_name", g.TagName, g.Props(rc))
}

// ResolvedReleaseName renders the release name, the tag name is available as tagName.
func (g *GitService) ResolvedReleaseName(rc RunContext) (string, error) {
	props, err := g.propsWithTag(rc)
	if err != nil {
		return "", err
	}
	return g.render(rc, "release_name", g.ReleaseName, props)
}

// ResolvedURLs renders the URL templates.
// The keys are the template property names, e.g. releaseNotesUrl.
func (g *GitService) ResolvedURLs(rc RunContext) (map[string]string, error) {
	props, err := g.propsWithTag(rc)
	if err != nil {
		return nil, err
	}
	urls := map[string]string{
		"repoUrl":          g.RepoURL,
		"repoCloneUrl":     g.RepoCloneURL,
		"commitsUrl":       g.CommitURL,
		"releaseNotesUrl":  g.ReleaseNotesURL,
		"latestReleaseUrl": g.LatestReleaseURL,
		"issueTrackerUrl":  g.IssueTrackerURL,
		"apiEndpoint":      g.APIEndpoint,
	}
	for k, v := range urls {
		s, err := g.render(rc, k, v, props)
		if err != nil {
			return nil, err
		}
		urls[k] = s
	}
	return urls, nil
}

// ResolvedDownloadURL renders the download URL for the artifact file.
func (g *GitService) ResolvedDownloadURL(rc RunContext, artifactFile string) (string, error) {
	props, err := g.propsWithTag(rc)
	if err != nil {
		return "", err
	}
	props["artifactFile"] = artifactFile
	return g.render(rc, "download_url", g.DownloadURL, props)
}

func (g *GitService) propsWithTag(rc RunContext) (map[string]any, error) {
	props := g.Props(rc)
	if _, found := props["tagName"]; !found {
		tag, err := g.ResolvedTagName(rc)
		if err != nil {
			return nil, err
		}
		props["tagName"] = tag
	}
	return props, nil
}

// Merge fills in the unset fields in g from src.
func (g *GitService) Merge(src *GitService) {
	Merge(g, src)
	if g.service == "" && src != nil {
		g.service = src.service
	}
}

func (g *GitService) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, g, full)
}

func (g *GitService) AsImmutable() api.GitService {
	if g.immutable == nil {
		g.immutable = gitServiceView{
			extraView:    extraView{e: &g.ExtraProperties},
			timeoutsView: timeoutsView{t: &g.Timeouts},
			g:            g,
		}
	}
	return g.immutable
}

// Release holds the git service to release to. At most one may be configured.
type Release struct {
	Github *GitService `json:"github"`
	Gitlab *GitService `json:"gitlab"`
	Gitea  *GitService `json:"gitea"`

	immutable api.Release
}

func (r *Release) services() []struct {
	name string
	svc  **GitService
} {
	return []struct {
		name string
		svc  **GitService
	}{
		{GithubName, &r.Github},
		{GitlabName, &r.Gitlab},
		{GiteaName, &r.Gitea},
	}
}

// GitService returns the configured git service, or nil if none.
func (r *Release) GitService() *GitService {
	for _, s := range r.services() {
		if *s.svc != nil {
			(*s.svc).service = s.name
			return *s.svc
		}
	}
	return nil
}

// Init validates that at most one git service is configured
// and fills in the service defaults.
func (r *Release) Init() error {
	var configured []string
	for _, s := range r.services() {
		if *s.svc == nil {
			continue
		}
		configured = append(configured, s.name)
	}
	if len(configured) > 1 {
		return newConfigError(KeyMultipleGitServices, nil, strings.Join(configured, ", "))
	}
	for _, s := range r.services() {
		if *s.svc != nil {
			(*s.svc).service = s.name
			Merge(*s.svc, gitServiceConstructors[s.name]())
		}
	}
	return nil
}

// Merge fills in the unset fields in r from src.
func (r *Release) Merge(src *Release) {
	Merge(r, src)
}

func (r *Release) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, r, full)
}

func (r *Release) AsImmutable() api.Release {
	if r.immutable == nil {
		r.immutable = releaseView{r: r}
	}
	return r.immutable
}

type releaseView struct {
	r *Release
}

func (v releaseView) GitService() api.GitService {
	if g := v.r.GitService(); g != nil {
		return g.AsImmutable()
	}
	return nil
}

type gitServiceView struct {
	extraView
	timeoutsView
	g *GitService
}

func (v gitServiceView) ServiceName() string { return v.g.service }
func (v gitServiceView) Host() string { return v.g.Host }
func (v gitServiceView) Owner() string { return v.g.Owner }
func (v gitServiceView) Name() string { return v.g.Name }
func (v gitServiceView) Username() string { return v.g.Username }
func (v gitServiceView) Token() string { return v.g.Token }
func (v gitServiceView) TagName() string { return v.g.TagName }
func (v gitServiceView) PreviousTagName() string { return v.g.PreviousTagName }
func (v gitServiceView) ReleaseName() string { return v.g.ReleaseName }
func (v gitServiceView) Branch() string { return v.g.Branch }
func (v gitServiceView) Draft() bool { return v.g.IsDraft() }
func (v gitServiceView) Overwrite() bool { return v.g.IsOverwrite() }
func (v gitServiceView) SkipTag() bool { return v.g.IsSkipTag() }
func (v gitServiceView) SkipRelease() bool { return v.g.IsSkipRelease() }
func (v gitServiceView) Sign() bool { return v.g.IsSign() }
func (v gitServiceView) RepoURL() string { return v.g.RepoURL }
func (v gitServiceView) RepoCloneURL() string { return v.g.RepoCloneURL }
func (v gitServiceView) CommitURL() string { return v.g.CommitURL }
func (v gitServiceView) DownloadURL() string { return v.g.DownloadURL }
func (v gitServiceView) ReleaseNotesURL() string { return v.g.ReleaseNotesURL }
func (v gitServiceView) LatestReleaseURL() string { return v.g.LatestReleaseURL }
func (v gitServiceView) IssueTrackerURL() string { return v.g.IssueTrackerURL }
func (v gitServiceView) APIEndpoint() string { return v.g.APIEndpoint }

func (v gitServiceView) CommitAuthor() api.CommitAuthor {
	return commitAuthorView{c: &v.g.CommitAuthor}
}

func (v gitServiceView) Prerelease() api.Prerelease { return prereleaseView{p: &v.g.Prerelease} }
func (v gitServiceView) Update() api.Update { return updateView{u: &v.g.Update} }
func (v gitServiceView) Changelog() api.Changelog { return changelogView{c: &v.g.Changelog} }

type prereleaseView struct {
	p *Prerelease
}

func (v prereleaseView) Enabled() bool { return BoolOr(v.p.Enabled, false) }
func (v prereleaseView) Pattern() string { return v.p.Pattern }

type updateView struct {
	u *Update
}

func (v updateView) Enabled() bool { return BoolOr(v.u.Enabled, false) }
func (v updateView) Sections() api.List[string] { return listView[string]{s: &v.u.Sections} }

type changelogView struct {
	c *Changelog
}

func (v changelogView) Enabled() bool { return BoolOr(v.c.Enabled, true) }
func (v changelogView) External() string { return v.c.External }
func (v changelogView) Formatted() string { return v.c.Formatted }
func (v changelogView) Content() string { return v.c.Content }
func (v changelogView) ContentTemplate() string { return v.c.ContentTemplate }
func (v changelogView) Links() bool { return BoolOr(v.c.Links, false) }
