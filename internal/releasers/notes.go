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
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jreleaser/jreleaser/internal/model"
	"github.com/jreleaser/jreleaser/internal/releasers/changelog"
	"github.com/jreleaser/jreleaser/internal/runctx"
	"github.com/jreleaser/jreleaser/staticfiles"
)

type releaseNotesData struct {
	ReleaseName     string
	Changes         changelog.Changes
	PreviousTagName string
	CompareURL      string
}

// ReleaseNotes resolves the release notes for g, in order of preference:
// the external file, the inline content, the content template and
// the notes generated from the commits since the previous tag.
// The generated notes are empty if the changelog is disabled or there is no repository.
func ReleaseNotes(ctx context.Context, rc *runctx.Context, g *model.GitService, resolver UsernameResolver) (string, error) {
	cl := g.Changelog
	props := g.Props(rc)

	switch {
	case cl.External != "":
		b, err := os.ReadFile(resolvePath(rc, cl.External))
		if err != nil {
			return "", fmt.Errorf("release.%s.changelog.external: %w", g.ServiceName(), err)
		}
		return string(b), nil
	case cl.Content != "":
		return rc.Render(cl.Content, props)
	case cl.ContentTemplate != "":
		b, err := os.ReadFile(resolvePath(rc, cl.ContentTemplate))
		if err != nil {
			return "", fmt.Errorf("release.%s.changelog.content_template: %w", g.ServiceName(), err)
		}
		return rc.Render(string(b), props)
	}

	facts := rc.Git()
	if !g.IsChangelogEnabled() || facts.Repo == nil {
		return "", nil
	}

	tag, _ := props["tagName"].(string)
	prevTag := g.PreviousTagName
	if prevTag == "" {
		var err error
		prevTag, err = changelog.PreviousTag(changelog.Options{Repo: facts.Repo, Tag: tag})
		if err != nil {
			return "", err
		}
	}

	opts := changelog.Options{
		Repo:    facts.Repo,
		Tag:     tag,
		PrevTag: prevTag,
	}
	if resolver != nil {
		info := ReleaseInfo{Owner: g.Owner, Repo: g.Name, Tag: tag}
		opts.ResolveUserName = func(commit, author string) (string, error) {
			return resolver.ResolveUsername(ctx, commit, author, info)
		}
	}

	changes, err := changelog.CollectChanges(opts)
	if err != nil {
		return "", err
	}

	repoURL, _ := props["repoUrl"].(string)
	links := model.BoolOr(cl.Links, false) && repoURL != ""
	for i, change := range changes {
		if change.Username != "" {
			changes[i].Author = "@" + change.Username
		}
		if links {
			changes[i].Hash = fmt.Sprintf("[%s](%s/commit/%s)", change.Hash, repoURL, change.Hash)
		}
	}

	data := releaseNotesData{
		ReleaseName:     fmt.Sprint(props["releaseName"]),
		Changes:         changes,
		PreviousTagName: prevTag,
	}
	if prevTag != "" && repoURL != "" {
		data.CompareURL = fmt.Sprintf("%s/compare/%s...%s", repoURL, prevTag, tag)
	}

	var buf bytes.Buffer
	if err := staticfiles.ReleaseNotesTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

func resolvePath(rc *runctx.Context, filename string) string {
	if filepath.IsAbs(filename) || rc.BaseDir() == "" {
		return filename
	}
	return filepath.Join(rc.BaseDir(), filename)
}
