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

package uploadcmd

import (
	"context"
	"flag"
	"fmt"
	"sync"

	"github.com/jreleaser/jreleaser/cmd/corecmd"
	"github.com/peterbourgon/ff/v3/ffcli"
)

const commandName = "upload"

// New returns a usable ffcli.Command for the upload subcommand.
func New(core *corecmd.Core) *ffcli.Command {
	fs := flag.NewFlagSet(corecmd.CommandName+" "+commandName, flag.ExitOnError)

	uploader := NewUploader(core)

	core.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       commandName,
		ShortUsage: corecmd.CommandName + " " + commandName + " [flags] <artifact>...",
		ShortHelp:  "Resolves the destinations of the artifacts for the enabled uploaders.",
		FlagSet:    fs,
		Exec:       uploader.Exec,
	}
}

// NewUploader returns a new Uploader.
func NewUploader(core *corecmd.Core) *Uploader {
	return &Uploader{
		core: core,
	}
}

// Uploader runs the upload step.
type Uploader struct {
	core *corecmd.Core

	initOnce sync.Once
	initErr  error
}

func (u *Uploader) Init() error {
	u.initOnce.Do(func() {
		if err := u.core.Load(nil, false); err != nil {
			u.initErr = fmt.Errorf("%s: %w", commandName, err)
		}
	})
	return u.initErr
}

func (u *Uploader) Exec(ctx context.Context, args []string) error {
	if err := u.Init(); err != nil {
		return err
	}
	artifacts, err := u.core.Artifacts(args)
	if err != nil {
		return fmt.Errorf("%s: %w", commandName, err)
	}
	w, err := u.core.Workflows(artifacts)
	if err != nil {
		return err
	}
	_, err = w.Upload(ctx)
	return err
}
