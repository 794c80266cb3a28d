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

package downloadcmd

import (
	"context"
	"flag"
	"fmt"
	"sync"

	"github.com/jreleaser/jreleaser/cmd/corecmd"
	"github.com/jreleaser/jreleaser/internal/workflow"
	"github.com/peterbourgon/ff/v3/ffcli"
)

const commandName = "download"

// New returns a usable ffcli.Command for the download subcommand.
func New(core *corecmd.Core) *ffcli.Command {
	fs := flag.NewFlagSet(corecmd.CommandName+" "+commandName, flag.ExitOnError)

	downloader := NewDownloader(core)

	core.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       commandName,
		ShortUsage: corecmd.CommandName + " " + commandName + " [flags]",
		ShortHelp:  "Resolves the assets of the enabled downloaders.",
		FlagSet:    fs,
		Exec:       downloader.Exec,
	}
}

// NewDownloader returns a new Downloader.
func NewDownloader(core *corecmd.Core) *Downloader {
	return &Downloader{
		core: core,
	}
}

// Downloader runs the download step.
type Downloader struct {
	core      *corecmd.Core
	workflows *workflow.Workflows

	initOnce sync.Once
	initErr  error
}

func (d *Downloader) Init() error {
	d.initOnce.Do(func() {
		if err := d.core.Load(nil, false); err != nil {
			d.initErr = fmt.Errorf("%s: %w", commandName, err)
			return
		}
		d.workflows, d.initErr = d.core.Workflows(nil)
	})
	return d.initErr
}

func (d *Downloader) Exec(ctx context.Context, args []string) error {
	if err := d.Init(); err != nil {
		return err
	}
	_, err := d.workflows.Download(ctx)
	return err
}
