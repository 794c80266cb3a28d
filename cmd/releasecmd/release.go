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

package releasecmd

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bep/logg"
	"github.com/jreleaser/jreleaser/cmd/corecmd"
	"github.com/jreleaser/jreleaser/internal/releasers"
	"github.com/peterbourgon/ff/v3/ffcli"
)

const commandName = "release"

// New returns a usable ffcli.Command for the release subcommand.
func New(core *corecmd.Core) *ffcli.Command {
	fs := flag.NewFlagSet(corecmd.CommandName+" "+commandName, flag.ExitOnError)

	releaser := NewReleaser(core)

	core.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       commandName,
		ShortUsage: corecmd.CommandName + " " + commandName + " [flags] <artifact>...",
		ShortHelp:  "Creates or updates the release on the git service and attaches the artifacts.",
		FlagSet:    fs,
		Exec:       releaser.Exec,
	}
}

// NewReleaser returns a new Releaser.
func NewReleaser(core *corecmd.Core) *Releaser {
	return &Releaser{
		core: core,
	}
}

// Releaser runs the release step.
type Releaser struct {
	core    *corecmd.Core
	infoLog logg.LevelLogger

	initOnce sync.Once
	initErr  error
}

func (r *Releaser) Init() error {
	r.initOnce.Do(func() {
		if err := r.core.Load(nil, false); err != nil {
			r.initErr = fmt.Errorf("%s: %w", commandName, err)
			return
		}
		r.infoLog = r.core.InfoLog.WithField("cmd", commandName)
	})
	return r.initErr
}

func (r *Releaser) Exec(ctx context.Context, args []string) error {
	if err := r.Init(); err != nil {
		return err
	}
	return Run(ctx, r.core, r.infoLog, args)
}

// Run releases the artifacts with the loaded model in core.
func Run(ctx context.Context, core *corecmd.Core, infoLog logg.LevelLogger, artifacts []string) error {
	artifacts, err := core.Artifacts(artifacts)
	if err != nil {
		return fmt.Errorf("%s: %w", commandName, err)
	}

	client, err := core.Client(ctx)
	if err != nil {
		return err
	}

	w, err := core.Workflows(artifacts)
	if err != nil {
		return err
	}

	result, err := w.Release(ctx, client)
	if err != nil {
		return err
	}
	if result.Skipped {
		return nil
	}

	logCtx := infoLog.WithField("tag", result.Tag)
	for _, name := range result.Uploaded {
		logCtx.WithField("file", name).Log(logg.String("Uploaded"))
	}
	logCtx.WithField("checksums", filepath.Join(core.OutDir, "checksums", releasers.ChecksumsFilename)).Log(logg.String("Released"))

	return nil
}
