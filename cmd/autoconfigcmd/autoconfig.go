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

package autoconfigcmd

import (
	"context"
	"flag"
	"fmt"
	"sync"

	"github.com/bep/logg"
	"github.com/jreleaser/jreleaser/cmd/corecmd"
	"github.com/jreleaser/jreleaser/cmd/releasecmd"
	"github.com/jreleaser/jreleaser/internal/autoconf"
	"github.com/jreleaser/jreleaser/internal/runctx"
	"github.com/peterbourgon/ff/v3/ffcli"
)

const commandName = "auto-config-release"

// New returns a usable ffcli.Command for the auto-config-release subcommand.
func New(core *corecmd.Core) *ffcli.Command {
	fs := flag.NewFlagSet(corecmd.CommandName+" "+commandName, flag.ExitOnError)

	r := &autoConfigReleaser{
		core: core,
	}
	r.conf.RegisterFlags(fs)

	core.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       commandName,
		ShortUsage: corecmd.CommandName + " " + commandName + " [flags]",
		ShortHelp:  "Creates a release configured from the command line only, no config file is read.",
		FlagSet:    fs,
		Exec:       r.Exec,
	}
}

type autoConfigReleaser struct {
	core    *corecmd.Core
	conf    autoconf.ModelAutoConfigurer
	infoLog logg.LevelLogger

	artifacts []string

	initOnce sync.Once
	initErr  error
}

func (r *autoConfigReleaser) Init() error {
	r.initOnce.Do(func() {
		r.initErr = r.init()
		if r.initErr != nil {
			r.initErr = fmt.Errorf("%s: %w", commandName, r.initErr)
		}
	})
	return r.initErr
}

func (r *autoConfigReleaser) init() error {
	facts, err := runctx.LoadGitFacts(r.core.BaseDir)
	if err != nil {
		return err
	}
	cli, err := r.conf.Model(facts.Repo)
	if err != nil {
		return err
	}
	if err := r.core.Load(cli, true); err != nil {
		return err
	}
	if r.artifacts, err = r.conf.Artifacts(r.core.BaseDir); err != nil {
		return err
	}
	r.infoLog = r.core.InfoLog.WithField("cmd", commandName)
	return nil
}

func (r *autoConfigReleaser) Exec(ctx context.Context, args []string) error {
	if err := r.Init(); err != nil {
		return err
	}
	return releasecmd.Run(ctx, r.core, r.infoLog, r.artifacts)
}
