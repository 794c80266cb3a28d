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

package corecmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/bep/logg"
	"github.com/bep/logg/handlers/multi"
	"github.com/bep/workers"
	"github.com/jreleaser/jreleaser/internal/common/logging"
	"github.com/jreleaser/jreleaser/internal/config"
	"github.com/jreleaser/jreleaser/internal/model"
	"github.com/jreleaser/jreleaser/internal/releasers"
	"github.com/jreleaser/jreleaser/internal/runctx"
	"github.com/jreleaser/jreleaser/internal/workflow"
	"github.com/peterbourgon/ff/v3/ffcli"
)

type CommandHandler interface {
	Exec(ctx context.Context, args []string) error
	Init() error
}

const (

	// CommandName is the main command's binary name.
	CommandName = "jreleaser"

	// The prefix used for any flag overrides.
	EnvPrefix = config.EnvPrefix

	// The env file to look for in the base directory.
	EnvFile = "jreleaser.env"
)

// New constructs a usable ffcli.Command and an empty Core. The model
// is loaded by the subcommands, see Load.
func New() (*ffcli.Command, *Core) {
	var cfg Core

	fs := flag.NewFlagSet(CommandName, flag.ExitOnError)

	cfg.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       CommandName,
		ShortUsage: CommandName + " [flags] <subcommand> [flags] [<arg>...]",
		FlagSet:    fs,
		Exec:       cfg.Exec,
	}, &cfg
}

// Core holds common config settings and objects.
type Core struct {
	// The loaded model, set by Load.
	Model *model.JReleaserModel

	// The run context for Model, set by Load.
	Context *runctx.Context

	// The common Info logger.
	InfoLog logg.LevelLogger

	// The common Warn logger.
	WarnLog logg.LevelLogger

	// The common Error logger.
	ErrorLog logg.LevelLogger

	// No output to stdout.
	Quiet bool

	// Resolve everything, but publish nothing.
	DryRun bool

	// Names of the announcers, uploaders and downloaders to include or exclude.
	Select  stringFlags
	Exclude stringFlags

	// Absolute path to the project root.
	BaseDir string

	// Absolute path to the output directory.
	OutDir string

	// The config file to use, looked up in BaseDir if empty.
	ConfigFile string

	// Number of parallel tasks.
	NumWorkers int

	// Global timeout for all commands.
	Timeout time.Duration

	// The global workforce.
	Workforce *workers.Workforce

	stdOut     io.Writer
	logHandler logg.Handler
	fileEnv    map[string]string
}

// Exec function for this command.
func (c *Core) Exec(context.Context, []string) error {
	// The root command has no meaning, so if it gets executed,
	// display the usage text to the user instead.
	return flag.ErrHelp
}

// RegisterFlags registers the flag fields into the provided flag.FlagSet. This
// helper function allows subcommands to register the root flags into their
// flagsets, creating "global" flags that can be passed after any subcommand at
// the commandline.
func (c *Core) RegisterFlags(fs *flag.FlagSet) {
	numWorkers := runtime.NumCPU()
	if numWorkers > 6 {
		numWorkers = 6
	}
	fs.StringVar(&c.ConfigFile, "config", "", "The config file to use (defaults to jreleaser.{yml,yaml,toml,json} in -basedir).")
	fs.StringVar(&c.BaseDir, "basedir", "", "The project root (defaults to the current directory).")
	fs.StringVar(&c.OutDir, "out", "", "Directory to write generated files to (defaults to out/jreleaser in -basedir).")
	fs.Var(&c.Select, "select", "Glob matching the announcers, uploaders and downloaders to run, may be repeated.")
	fs.Var(&c.Exclude, "exclude", "Glob matching the announcers, uploaders and downloaders to skip, may be repeated.")
	fs.IntVar(&c.NumWorkers, "workers", numWorkers, "Number of parallel tasks.")
	fs.DurationVar(&c.Timeout, "timeout", 55*time.Minute, "Global timeout.")
	fs.BoolVar(&c.Quiet, "quiet", false, "Don't output anything to stdout.")
	fs.BoolVar(&c.DryRun, "dry-run", false, "Resolve everything, but don't publish anything.")
}

// Init sets up logging, the workforce and the env file.
// It is called after the flags are parsed.
func (c *Core) Init() error {
	if c.BaseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("error getting working directory: %w", err)
		}
		c.BaseDir = wd
	} else if !filepath.IsAbs(c.BaseDir) {
		abs, err := filepath.Abs(c.BaseDir)
		if err != nil {
			return err
		}
		c.BaseDir = abs
	}

	if c.OutDir == "" {
		c.OutDir = filepath.Join(c.BaseDir, "out", "jreleaser")
	} else if !filepath.IsAbs(c.OutDir) {
		c.OutDir = filepath.Join(c.BaseDir, c.OutDir)
	}

	if c.Quiet {
		c.stdOut = io.Discard
	} else {
		c.stdOut = os.Stdout
	}

	// Configure logging.
	if logging.IsTerminal(os.Stdout) {
		c.logHandler = logging.NewDefaultHandler(c.stdOut, os.Stderr)
	} else {
		c.logHandler = logging.NewNoColoursHandler(c.stdOut, os.Stderr)
	}
	c.setLoggers()

	// Note that OS env will override the env file.
	env, err := config.LoadEnvFile(filepath.Join(c.BaseDir, EnvFile))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error reading %s: %w", EnvFile, err)
	}
	c.fileEnv = env

	if c.NumWorkers < 1 {
		c.NumWorkers = runtime.NumCPU()
	}
	c.Workforce = workers.New(c.NumWorkers)

	return nil
}

// setLoggers (re)creates the loggers, shortening the base dir and masking the given secrets.
func (c *Core) setLoggers(secrets ...string) {
	handler := multi.New(
		// Replace the base dir (usually long path) in the log messages with a shorter version.
		logging.Replacer(strings.NewReplacer(c.BaseDir, "$BASEDIR")),
		logging.Replacer(logging.SecretMasker(model.HIDE, secrets...)),
		c.logHandler,
	)

	l := logg.New(
		logg.Options{
			Level:   logg.LevelInfo,
			Handler: handler,
		},
	)

	c.InfoLog = l.WithLevel(logg.LevelInfo).WithField("cmd", "core")
	c.WarnLog = l.WithLevel(logg.LevelWarn).WithField("cmd", "core")
	c.ErrorLog = l.WithLevel(logg.LevelError).WithField("cmd", "core")
}

// Lookup returns the lookup used for ${VAR} expansion and the environment layer.
func (c *Core) Lookup() config.LookupFunc {
	return config.Lookup(c.fileEnv)
}

// Load loads the model from the config file, the environment and cli,
// and creates the run context. cli may be nil.
// If noConfigFile is set, no config file is read.
func (c *Core) Load(cli *model.JReleaserModel, noConfigFile bool) error {
	if c.Context != nil {
		return nil
	}

	m, err := config.Load(config.Options{
		ConfigFile:   c.ConfigFile,
		NoConfigFile: noConfigFile,
		BaseDir:      c.BaseDir,
		Lookup:       c.Lookup(),
		CLI:          cli,
	})
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	c.setLoggers(model.Secrets(m)...)

	facts, err := runctx.LoadGitFacts(c.BaseDir)
	if err != nil {
		return fmt.Errorf("error reading git repository: %w", err)
	}

	rc, err := runctx.New(m, runctx.Options{
		BaseDir: c.BaseDir,
		WarnLog: c.WarnLog,
		DryRun:  c.DryRun,
		Git:     facts,
	})
	if err != nil {
		return err
	}
	m.Migrate(rc)

	c.Model = m
	c.Context = rc

	return nil
}

// Workflows creates the workflows for the loaded model.
func (c *Core) Workflows(artifacts []string) (*workflow.Workflows, error) {
	if c.Context == nil {
		return nil, fmt.Errorf("model not loaded")
	}
	return workflow.New(c.Context, workflow.Options{
		InfoLog:   c.InfoLog,
		Workforce: c.Workforce,
		Include:   c.Select,
		Exclude:   c.Exclude,
		Artifacts: artifacts,
		OutDir:    c.OutDir,
	})
}

// Artifacts resolves the given files against BaseDir.
// All of them must exist.
func (c *Core) Artifacts(files []string) ([]string, error) {
	artifacts := make([]string, len(files))
	for i, f := range files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(c.BaseDir, f)
		}
		if _, err := os.Stat(f); err != nil {
			return nil, fmt.Errorf("artifact %q: %w", f, err)
		}
		artifacts[i] = f
	}
	return artifacts, nil
}

// Client creates the release client for the configured git service.
func (c *Core) Client(ctx context.Context) (releasers.Client, error) {
	if c.Model == nil {
		return nil, fmt.Errorf("model not loaded")
	}
	return releasers.NewClient(ctx, c.Model.Release.GitService(), c.DryRun)
}

// Stdout is where command output goes, io.Discard if Quiet is set.
func (c *Core) Stdout() io.Writer {
	return c.stdOut
}

type stringFlags []string

func (s *stringFlags) String() string {
	return strings.Join(*s, "  ")
}

func (s *stringFlags) Set(value string) error {
	*s = append(*s, value)
	return nil
}
