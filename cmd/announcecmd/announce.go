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

package announcecmd

import (
	"context"
	"flag"
	"fmt"
	"sync"

	"github.com/jreleaser/jreleaser/cmd/corecmd"
	"github.com/jreleaser/jreleaser/internal/workflow"
	"github.com/peterbourgon/ff/v3/ffcli"
)

const commandName = "announce"

// New returns a usable ffcli.Command for the announce subcommand.
func New(core *corecmd.Core) *ffcli.Command {
	fs := flag.NewFlagSet(corecmd.CommandName+" "+commandName, flag.ExitOnError)

	announcer := NewAnnouncer(core)

	core.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       commandName,
		ShortUsage: corecmd.CommandName + " " + commandName + " [flags]",
		ShortHelp:  "Resolves the messages of the enabled announcers.",
		FlagSet:    fs,
		Exec:       announcer.Exec,
	}
}

// NewAnnouncer returns a new Announcer.
func NewAnnouncer(core *corecmd.Core) *Announcer {
	return &Announcer{
		core: core,
	}
}

// Announcer runs the announce step.
type Announcer struct {
	core      *corecmd.Core
	workflows *workflow.Workflows

	initOnce sync.Once
	initErr  error
}

func (a *Announcer) Init() error {
	a.initOnce.Do(func() {
		if err := a.core.Load(nil, false); err != nil {
			a.initErr = fmt.Errorf("%s: %w", commandName, err)
			return
		}
		a.workflows, a.initErr = a.core.Workflows(nil)
	})
	return a.initErr
}

func (a *Announcer) Exec(ctx context.Context, args []string) error {
	if err := a.Init(); err != nil {
		return err
	}
	_, err := a.workflows.Announce(ctx)
	return err
}
