package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/jreleaser/jreleaser/cmd/allcmd"
	"github.com/jreleaser/jreleaser/cmd/announcecmd"
	"github.com/jreleaser/jreleaser/cmd/autoconfigcmd"
	"github.com/jreleaser/jreleaser/cmd/configcmd"
	"github.com/jreleaser/jreleaser/cmd/corecmd"
	"github.com/jreleaser/jreleaser/cmd/downloadcmd"
	"github.com/jreleaser/jreleaser/cmd/releasecmd"
	"github.com/jreleaser/jreleaser/cmd/uploadcmd"
	"github.com/jreleaser/jreleaser/internal/common/errorsh"
	"github.com/jreleaser/jreleaser/internal/common/logging"
	"github.com/bep/logg"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
)

func main() {
	log.SetFlags(0)
	if err := parseAndRun(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func parseAndRun(args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Println("stacktrace from panic: \n" + string(debug.Stack()))
			err = fmt.Errorf("%v", r)
		}
	}()

	start := time.Now()

	var (
		coreCommand, core = corecmd.New()
		configCommand     = configcmd.New(core)
		announceCommand   = announcecmd.New(core)
		uploadCommand     = uploadcmd.New(core)
		downloadCommand   = downloadcmd.New(core)
		releaseCommand    = releasecmd.New(core)
		autoConfigCommand = autoconfigcmd.New(core)
		allCommand        = allcmd.New(core)
	)

	coreCommand.Subcommands = []*ffcli.Command{
		configCommand,
		announceCommand,
		uploadCommand,
		downloadCommand,
		releaseCommand,
		autoConfigCommand,
		allCommand,
	}

	coreCommand.Options = []ff.Option{
		ff.WithEnvVarPrefix(corecmd.EnvPrefix),
	}

	if err := coreCommand.Parse(args); err != nil {
		return fmt.Errorf("error parsing command line: %w", err)
	}

	if err := core.Init(); err != nil {
		return fmt.Errorf("error initializing: %w", err)
	}

	defer func() {
		elapsed := time.Since(start)
		core.InfoLog.Log(logg.String(fmt.Sprintf("Total in %s …", logging.FormatBuildDuration(elapsed))))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), core.Timeout)
	defer cancel()

	if err := coreCommand.Run(ctx); err != nil {
		if errorsh.IsShutdownError(err) {
			return fmt.Errorf("command aborted after %s: %w", core.Timeout, err)
		}
		return fmt.Errorf("error running command: %w", err)
	}

	return
}
