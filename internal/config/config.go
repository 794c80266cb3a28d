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

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jreleaser/jreleaser/internal/model"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file format.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

// DefaultBaseName is the base name of the config file looked for when none is given.
const DefaultBaseName = "jreleaser"

// ErrNoConfigFile is returned by FindFile when no config file could be found.
var ErrNoConfigFile = errors.New("no config file found")

var candidateExtensions = []string{".yml", ".yaml", ".toml", ".json"}

// FormatFromFilename returns the format of filename given its extension.
func FormatFromFilename(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yml", ".yaml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("unsupported config file format %q", filepath.Ext(filename))
	}
}

// FindFile returns the first jreleaser.{yml,yaml,toml,json} found in dir.
func FindFile(dir string) (string, error) {
	for _, ext := range candidateExtensions {
		filename := filepath.Join(dir, DefaultBaseName+ext)
		if fi, err := os.Stat(filename); err == nil && !fi.IsDir() {
			return filename, nil
		}
	}
	return "", ErrNoConfigFile
}

// LoadFile decodes the config file filename into a model.
// Any ${VAR} is expanded using lookup before decoding.
func LoadFile(filename string, lookup LookupFunc) (*model.JReleaserModel, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening config file %q: %w", filename, err)
	}
	defer f.Close()

	m, err := Decode(f, format, lookup)
	if err != nil {
		msg := "error decoding config file"
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			line, col := decodeErr.Position()
			return nil, fmt.Errorf("%s %q:%d:%d %w:\n%s", msg, filename, line, col, err, decodeErr.String())
		}
		return nil, fmt.Errorf("%s %q: %w", msg, filename, err)
	}
	return m, nil
}

// Decode first expands any environment variables in r (${VAR}),
// then decodes it in the given format into a model.
func Decode(r io.Reader, format Format, lookup LookupFunc) (*model.JReleaserModel, error) {
	m, err := DecodeMap(r, format, lookup)
	if err != nil {
		return nil, err
	}
	return model.FromMap(m)
}

// DecodeMap is like Decode but stops at the generic map.
func DecodeMap(r io.Reader, format Format, lookup LookupFunc) (map[string]any, error) {
	// This is not the most effective, but it's certainly very simple.
	// And the config files should be fairly small.
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b = Expand(b, lookup)

	m := make(map[string]any)
	switch format {
	case TOML:
		err = toml.Unmarshal(b, &m)
	case YAML:
		err = yaml.Unmarshal(b, &m)
	case JSON:
		err = json.Unmarshal(b, &m)
	default:
		return nil, fmt.Errorf("unsupported config format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if m == nil {
		// An empty YAML document.
		m = make(map[string]any)
	}
	return m, nil
}

var varRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Expand replaces ${VAR} in b with its value from lookup.
// Unknown variables expand to the empty string.
// A bare $ is left alone, so Go template variables survive.
func Expand(b []byte, lookup LookupFunc) []byte {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return varRe.ReplaceAllFunc(b, func(m []byte) []byte {
		v, _ := lookup(string(m[2 : len(m)-1]))
		return []byte(v)
	})
}

// Layers holds the config layers in precedence order, highest first.
// Any of them may be nil.
type Layers struct {
	CLI      *model.JReleaserModel
	Env      *model.JReleaserModel
	File     *model.JReleaserModel
	Defaults *model.JReleaserModel
}

// Merge merges the layers into a new model, the first set value wins.
// The layers themselves are left untouched.
func (l Layers) Merge() *model.JReleaserModel {
	m := model.New()
	for _, layer := range []*model.JReleaserModel{l.CLI, l.Env, l.File, l.Defaults} {
		if layer != nil {
			m.Merge(layer)
		}
	}
	return m
}

// Options for Load.
type Options struct {
	// The config file to load.
	// If empty, FindFile is used to look in BaseDir.
	ConfigFile string

	// Skip the config file, e.g. when all config comes from the command line.
	NoConfigFile bool

	// The project root.
	BaseDir string

	// Looks up environment variables, defaults to the OS environment.
	Lookup LookupFunc

	// The command line layer, may be nil.
	CLI *model.JReleaserModel
}

// Load loads the config file and merges it with the command line, environment
// and defaults layers. The result is initialized.
func Load(opts Options) (*model.JReleaserModel, error) {
	if opts.Lookup == nil {
		opts.Lookup = os.LookupEnv
	}

	var file *model.JReleaserModel
	if !opts.NoConfigFile {
		filename := opts.ConfigFile
		if filename == "" {
			var err error
			if filename, err = FindFile(opts.BaseDir); err != nil {
				return nil, fmt.Errorf("%w in %q", err, opts.BaseDir)
			}
		} else if !filepath.IsAbs(filename) {
			filename = filepath.Join(opts.BaseDir, filename)
		}
		var err error
		if file, err = LoadFile(filename, opts.Lookup); err != nil {
			return nil, err
		}
	}

	base := Layers{CLI: opts.CLI, File: file}.Merge()
	// The git service must be known before the env layer can be built.
	if err := base.Release.Init(); err != nil {
		return nil, err
	}

	m := Layers{
		CLI:      opts.CLI,
		Env:      EnvLayer(base, opts.Lookup),
		File:     file,
		Defaults: Defaults(base),
	}.Merge()

	if err := m.Init(); err != nil {
		return nil, err
	}

	return m, nil
}
