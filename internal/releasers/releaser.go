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
	"os"
	"path/filepath"

	"github.com/bep/logg"
	"github.com/bep/workers"

	"github.com/jreleaser/jreleaser/internal/runctx"
)

// Options for Release.
type Options struct {
	Client    Client
	Workforce *workers.Workforce
	InfoLog   logg.LevelLogger

	// Assets are the files to upload with the release.
	Assets []string

	// OutDir is where the checksums file is written.
	OutDir string
}

// Result describes a completed release.
type Result struct {
	Skipped   bool
	ReleaseID int64
	Tag       string
	Notes     string
	Uploaded  []string
}

// Release creates or updates the release on the configured git service and uploads the assets
// together with a checksums file.
// An existing release is updated if update is enabled, replaced if overwrite is enabled, else
// it is an error.
func Release(ctx context.Context, rc *runctx.Context, opts Options) (Result, error) {
	var result Result

	g := rc.Model().Release.GitService()
	if g == nil {
		return result, fmt.Errorf("no git service configured")
	}
	infoLog := opts.InfoLog.WithField("service", g.ServiceName())

	if g.IsSkipRelease() {
		infoLog.Log(logg.String("Release is skipped"))
		result.Skipped = true
		return result, nil
	}

	resolver, _ := opts.Client.(UsernameResolver)
	notes, err := ReleaseNotes(ctx, rc, g, resolver)
	if err != nil {
		return result, fmt.Errorf("failed to create release notes: %w", err)
	}
	rc.SetProp("changelog", notes)

	props := rc.Props()
	info := ReleaseInfo{
		Owner:      g.Owner,
		Repo:       g.Name,
		Tag:        fmt.Sprint(props["tagName"]),
		Commitish:  g.Branch,
		Name:       fmt.Sprint(props["releaseName"]),
		Body:       notes,
		Draft:      g.IsDraft(),
		Prerelease: rc.IsPrerelease(),
	}
	result.Tag = info.Tag
	result.Notes = notes

	infoLog = infoLog.WithField("tag", info.Tag)

	releaseID, found, err := opts.Client.GetReleaseByTag(ctx, info)
	if err != nil {
		return result, fmt.Errorf("failed to look up release: %w", err)
	}

	switch {
	case found && g.IsUpdate():
		infoLog.Log(logg.String("Updating release"))
		if err := opts.Client.UpdateRelease(ctx, info, releaseID); err != nil {
			return result, fmt.Errorf("failed to update release: %w", err)
		}
	case found && g.IsOverwrite():
		infoLog.Log(logg.String("Replacing release"))
		if err := opts.Client.DeleteRelease(ctx, info, releaseID); err != nil {
			return result, fmt.Errorf("failed to delete release: %w", err)
		}
		found = false
	case found:
		return result, fmt.Errorf("release for tag %q already exists, enable update or overwrite", info.Tag)
	}

	if !found {
		infoLog.Log(logg.String("Creating release"))
		releaseID, err = opts.Client.CreateRelease(ctx, info)
		if err != nil {
			return result, fmt.Errorf("failed to create release: %w", err)
		}
	}
	result.ReleaseID = releaseID

	if len(opts.Assets) == 0 {
		return result, nil
	}

	assets := opts.Assets
	checksums, err := WriteChecksumsFile(opts.Workforce, filepath.Join(opts.OutDir, "checksums"), assets...)
	if err != nil {
		return result, err
	}
	assets = append(assets[:len(assets):len(assets)], checksums)

	r, ctx := opts.Workforce.Start(ctx)
	for _, filename := range assets {
		filename := filename
		r.Run(func() error {
			infoLog.WithField("file", filepath.Base(filename)).Log(logg.String("Uploading release file"))
			return UploadAssetsFileWithRetries(ctx, opts.Client, info, releaseID, func() (*os.File, error) {
				return os.Open(filename)
			})
		})
	}

	if err := r.Wait(); err != nil {
		return result, fmt.Errorf("failed to upload files: %w", err)
	}

	for _, filename := range assets {
		result.Uploaded = append(result.Uploaded, filepath.Base(filename))
	}

	return result, nil
}
