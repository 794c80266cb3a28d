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

// Package workflow runs the announce, upload, download and release steps of a run.
// Announcers, uploaders and downloaders are resolved into payloads and logged,
// only the release step talks to a remote service.
package workflow

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bep/logg"
	"github.com/bep/workers"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
	"github.com/jreleaser/jreleaser/internal/common/matchers"
	"github.com/jreleaser/jreleaser/internal/model"
	"github.com/jreleaser/jreleaser/internal/releasers"
	"github.com/jreleaser/jreleaser/internal/runctx"
)

// Step names.
const (
	StepAnnounce = "announce"
	StepUpload   = "upload"
	StepDownload = "download"
	StepRelease  = "release"
)

// Options for Workflows.
type Options struct {
	InfoLog   logg.LevelLogger
	Workforce *workers.Workforce

	// Glob patterns matched against the announcer, uploader and downloader names.
	// An empty Include selects all.
	Include []string
	Exclude []string

	// Artifacts are the files to upload and attach to the release.
	Artifacts []string

	// OutDir is where generated files are written.
	OutDir string
}

// Payload is what a single announcer, uploader or downloader resolved to.
type Payload struct {
	Step   string
	Type   string
	Name   string
	Values *mapsh.Ordered[string, string]
}

func newPayload(step, typ, name string) Payload {
	return Payload{Step: step, Type: typ, Name: name, Values: mapsh.NewOrdered[string, string]()}
}

func (p Payload) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", p.Step, p.Name)
	p.Values.Range(func(k, v string) bool {
		fmt.Fprintf(&sb, " %s=%q", k, v)
		return true
	})
	return sb.String()
}

// Workflows runs the steps against a run context.
type Workflows struct {
	rc       *runctx.Context
	opts     Options
	selected matchers.Matcher
}

// New creates a new Workflows.
func New(rc *runctx.Context, opts Options) (*Workflows, error) {
	selected, err := matchers.Select(opts.Include, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("invalid selection: %w", err)
	}
	if opts.OutDir == "" {
		opts.OutDir = filepath.Join(rc.BaseDir(), "out", "jreleaser")
	}
	return &Workflows{rc: rc, opts: opts, selected: selected}, nil
}

// Announce resolves the messages of the enabled and selected announcers.
func (w *Workflows) Announce(ctx context.Context) ([]Payload, error) {
	var announcers []model.Announcer
	for _, an := range w.rc.Model().Announce.EnabledAnnouncers(w.rc) {
		if w.selected.Match(an.GetName()) {
			announcers = append(announcers, an)
		}
	}
	return w.run(ctx, StepAnnounce, len(announcers), func(i int) (Payload, error) {
		return announcePayload(w.rc, announcers[i])
	})
}

func announcePayload(rc *runctx.Context, an model.Announcer) (Payload, error) {
	p := newPayload(StepAnnounce, an.Type(), an.GetName())
	var err error
	set := func(k string, f func() (string, error)) {
		if err != nil {
			return
		}
		var s string
		s, err = f()
		p.Values.Set(k, s)
	}

	switch a := an.(type) {
	case *model.SMTP:
		set("to", func() (string, error) { return a.To, nil })
		set("subject", func() (string, error) { return a.ResolvedSubject(rc) })
		set("message", func() (string, error) { return a.ResolvedMessage(rc) })
	case *model.Zulip:
		set("subject", func() (string, error) { return a.ResolvedSubject(rc) })
		set("message", func() (string, error) { return a.ResolvedMessage(rc) })
	case *model.Twitter:
		var statuses []string
		statuses, err = a.ResolvedStatuses(rc)
		for i, s := range statuses {
			p.Values.Set(fmt.Sprintf("status%d", i+1), s)
		}
	case *model.HTTPAnnouncer:
		set("method", func() (string, error) { return a.Method.String(), nil })
		set("url", func() (string, error) { return a.ResolvedURL(rc) })
		set("payload", func() (string, error) { return a.ResolvedPayload(rc) })
	case model.MessageAnnouncer:
		set("message", func() (string, error) { return a.ResolvedMessage(rc) })
	default:
		err = fmt.Errorf("announcer %s has nothing to send", an.GetName())
	}
	if err != nil {
		return p, fmt.Errorf("%s: %w", an.ConfigPath(), err)
	}
	return p, nil
}

// Upload resolves the destinations of the artifacts for the enabled and selected uploaders.
func (w *Workflows) Upload(ctx context.Context) ([]Payload, error) {
	var uploaders []model.Uploader
	for _, u := range w.rc.Model().Upload.EnabledUploaders(w.rc) {
		if w.selected.Match(u.GetName()) {
			uploaders = append(uploaders, u)
		}
	}
	return w.run(ctx, StepUpload, len(uploaders), func(i int) (Payload, error) {
		return uploadPayload(w.rc, uploaders[i], w.opts.Artifacts)
	})
}

func uploadPayload(rc *runctx.Context, u model.Uploader, artifacts []string) (Payload, error) {
	p := newPayload(StepUpload, u.Type(), u.GetName())
	for _, filename := range artifacts {
		artifact := map[string]any{
			"artifactFile":          filepath.Base(filename),
			"artifactFileName":      strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)),
			"artifactFileExtension": strings.TrimPrefix(filepath.Ext(filename), "."),
		}
		key := filepath.Base(filename)
		var (
			dest string
			err  error
		)
		switch uu := u.(type) {
		case *model.HTTPUploader:
			dest, err = uu.ResolvedUploadURL(rc, artifact)
			dest = uu.Method.String() + " " + dest
		case *model.S3Uploader:
			dest, err = uu.ResolvedPath(rc, artifact)
			dest = "s3://" + uu.Bucket + "/" + strings.TrimPrefix(dest, "/")
		case *model.ArtifactoryUploader:
			dest, err = artifactoryDestination(rc, uu, artifact)
		default:
			err = fmt.Errorf("unsupported uploader type %s", u.Type())
		}
		if err != nil {
			return p, fmt.Errorf("%s: %w", u.ConfigPath(), err)
		}
		if dest != "" {
			p.Values.Set(key, dest)
		}
	}
	return p, nil
}

// artifactoryDestination returns the URL of the first active repository accepting the artifact file type.
func artifactoryDestination(rc *runctx.Context, u *model.ArtifactoryUploader, artifact map[string]any) (string, error) {
	ext := fmt.Sprint(artifact["artifactFileExtension"])
	for _, r := range u.Repositories {
		if !r.Active.IsZero() && !r.Active.Check(rc) {
			continue
		}
		if len(r.FileTypes) > 0 && !containsFold(r.FileTypes, ext) {
			continue
		}
		props := rc.Props()
		for k, v := range artifact {
			props[k] = v
		}
		p, err := rc.Render(r.Path, props)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(u.Host, "/") + "/" + strings.TrimPrefix(p, "/"), nil
	}
	return "", nil
}

func containsFold(s []string, v string) bool {
	for _, ss := range s {
		if strings.EqualFold(ss, v) {
			return true
		}
	}
	return false
}

// Download resolves the assets of the enabled and selected downloaders.
func (w *Workflows) Download(ctx context.Context) ([]Payload, error) {
	var downloaders []model.Downloader
	for _, d := range w.rc.Model().Download.EnabledDownloaders(w.rc) {
		if w.selected.Match(d.GetName()) {
			downloaders = append(downloaders, d)
		}
	}
	return w.run(ctx, StepDownload, len(downloaders), func(i int) (Payload, error) {
		return downloadPayload(w.rc, downloaders[i], w.opts.OutDir)
	})
}

func downloadPayload(rc *runctx.Context, d model.Downloader, outDir string) (Payload, error) {
	p := newPayload(StepDownload, d.Type(), d.GetName())
	var base *model.DownloaderBase
	switch dd := d.(type) {
	case *model.HTTPDownloader:
		base = &dd.DownloaderBase
	case *model.FTPDownloader:
		base = &dd.DownloaderBase
		if dd.Host != "" {
			p.Values.Set("host", dd.Host)
		}
	default:
		return p, fmt.Errorf("unsupported downloader type %s", d.Type())
	}
	for i := range base.Assets {
		input, output, err := base.ResolvedAsset(rc, d.Type(), &base.Assets[i])
		if err != nil {
			return p, fmt.Errorf("%s: %w", d.ConfigPath(), err)
		}
		p.Values.Set(input, filepath.Join(outDir, StepDownload, d.GetName(), path.Clean("/" + output)))
	}
	return p, nil
}

// run resolves n payloads in parallel, keeping their order.
func (w *Workflows) run(ctx context.Context, step string, n int, f func(i int) (Payload, error)) ([]Payload, error) {
	infoLog := w.opts.InfoLog.WithField("step", step)
	if n == 0 {
		infoLog.Log(logg.String("Nothing to do"))
		return nil, nil
	}

	payloads := make([]Payload, n)
	r, _ := w.opts.Workforce.Start(ctx)
	for i := 0; i < n; i++ {
		i := i
		r.Run(func() error {
			p, err := f(i)
			if err != nil {
				return err
			}
			payloads[i] = p
			return nil
		})
	}
	if err := r.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	for _, p := range payloads {
		logCtx := infoLog.WithField(p.Type, p.Name)
		if w.rc.IsDryRun() {
			logCtx = logCtx.WithField("dryrun", true)
		}
		logCtx.Log(logg.String(p.String()))
	}

	return payloads, nil
}

// Release creates the release with client, attaching the artifacts.
func (w *Workflows) Release(ctx context.Context, client releasers.Client) (releasers.Result, error) {
	result, err := releasers.Release(ctx, w.rc, releasers.Options{
		Client:    client,
		Workforce: w.opts.Workforce,
		InfoLog:   w.opts.InfoLog.WithField("step", StepRelease),
		Assets:    w.opts.Artifacts,
		OutDir:    w.opts.OutDir,
	})
	if err != nil {
		return result, fmt.Errorf("%s: %w", StepRelease, err)
	}
	return result, nil
}

// FullRelease uploads, releases and announces, in that order.
func (w *Workflows) FullRelease(ctx context.Context, client releasers.Client) error {
	if _, err := w.Upload(ctx); err != nil {
		return err
	}
	if _, err := w.Release(ctx, client); err != nil {
		return err
	}
	_, err := w.Announce(ctx)
	return err
}
