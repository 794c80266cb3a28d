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

package configcmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sync"

	"github.com/jreleaser/jreleaser/cmd/corecmd"
	"github.com/jreleaser/jreleaser/internal/common/mapsh"
	"github.com/pelletier/go-toml/v2"
	"github.com/peterbourgon/ff/v3/ffcli"
	"gopkg.in/yaml.v3"
)

const commandName = "config"

// New returns a usable ffcli.Command for the config subcommand.
func New(core *corecmd.Core) *ffcli.Command {
	fs := flag.NewFlagSet(corecmd.CommandName+" "+commandName, flag.ExitOnError)

	printer := NewPrinter(core, fs)

	core.RegisterFlags(fs)

	return &ffcli.Command{
		Name:       commandName,
		ShortUsage: corecmd.CommandName + " " + commandName + " [flags]",
		ShortHelp:  "Prints the resolved configuration with secrets masked.",
		FlagSet:    fs,
		Exec:       printer.Exec,
	}
}

// NewPrinter returns a new Printer.
func NewPrinter(core *corecmd.Core, fs *flag.FlagSet) *Printer {
	p := &Printer{
		core: core,
	}

	fs.BoolVar(&p.full, "full", false, "Include disabled and unset entries.")
	fs.StringVar(&p.format, "format", "yaml", "Output format, one of yaml, toml or json.")

	return p
}

// Printer prints the resolved model.
type Printer struct {
	core *corecmd.Core

	// Flags
	full   bool
	format string

	initOnce sync.Once
	initErr  error
}

func (p *Printer) Init() error {
	p.initOnce.Do(func() {
		switch p.format {
		case "yaml", "yml", "toml", "json":
		default:
			p.initErr = fmt.Errorf("%s: invalid -format %q, must be one of yaml, toml or json", commandName, p.format)
			return
		}
		if err := p.core.Load(nil, false); err != nil {
			p.initErr = fmt.Errorf("%s: %w", commandName, err)
			return
		}
	})
	return p.initErr
}

func (p *Printer) Exec(ctx context.Context, args []string) error {
	if err := p.Init(); err != nil {
		return err
	}

	m := p.core.Model.AsMap(p.core.Context, p.full)
	if err := Write(p.core.Stdout(), p.format, m); err != nil {
		return fmt.Errorf("%s: %w", commandName, err)
	}

	return nil
}

// Write encodes m to w in the given format.
func Write(w io.Writer, format string, m *mapsh.Ordered[string, any]) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		// TOML has no null.
		return toml.NewEncoder(w).Encode(dropNil(mapsh.ToNested(m)))
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func dropNil(v any) any {
	switch vv := v.(type) {
	case map[string]any:
		for k, e := range vv {
			if e == nil {
				delete(vv, k)
				continue
			}
			vv[k] = dropNil(e)
		}
		return vv
	case []any:
		s := vv[:0]
		for _, e := range vv {
			if e != nil {
				s = append(s, dropNil(e))
			}
		}
		return s
	default:
		return v
	}
}
