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

package allcmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/jreleaser/jreleaser/cmd/announcecmd"
	"github.com/jreleaser/jreleaser/cmd/corecmd"
	"github.com/jreleaser/jreleaser/cmd/releasecmd"
	"github.com/jreleaser/jreleaser/cmd/uploadcmd"

	"github.com/bep/logg"
	"github.com/peterbourgon/ff/v3/ffcli"
)

const commandName = "full-release"

// New returns a usable ffcli.Command for the full-release subcommand.
func New(core *corecmd.Core) *ffcli.Command {
	fs := flag.NewFlagSet(corecmd.CommandName+" "+commandName, flag.ExitOnError)

	a := &all{
		core:      core,
		uploader:  uploadcmd.NewUploader(core),
		releaser:  releasecmd.NewReleaser(core),
		announcer: announcecmd.NewAnnouncer(core),
	}

	core.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       commandName,
		ShortUsage: corecmd.CommandName + " " + commandName + " [flags] <artifact>...",
		ShortHelp:  "Runs the commands upload, release and announce in sequence.",
		FlagSet:    fs,
		Exec:       a.Exec,
	}
}

type all struct {
	infoLog logg.LevelLogger
	core    *corecmd.Core

	uploader  *uploadcmd.Uploader
	releaser  *releasecmd.Releaser
	announcer *announcecmd.Announcer
}

func (a *all) Init() error {
	if err := a.core.Load(nil, false); err != nil {
		return fmt.Errorf("%s: %w", commandName, err)
	}
	a.infoLog = a.core.InfoLog.WithField("all", commandName)
	return nil
}

func (a *all) Exec(ctx context.Context, args []string) error {
	if err := a.Init(); err != nil {
		return err
	}

	commandHandlers := []corecmd.CommandHandler{
		a.uploader,
		a.releaser,
		a.announcer,
	}

	for _, commandHandler := range commandHandlers {
		if err := commandHandler.Init(); err != nil {
			return err
		}
	}

	for _, commandHandler := range commandHandlers {
		if err := commandHandler.Exec(ctx, args); err != nil {
			return err
		}
	}

	return nil
}
