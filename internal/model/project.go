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

package model

import (
	"regexp"

	"github.com/Masterminds/semver/v3"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
	"github.com/jreleaser/jreleaser/pkg/api"
)

// DefaultSnapshotPattern matches versions that are snapshots.
const DefaultSnapshotPattern = ".*-SNAPSHOT"

// Snapshot controls how snapshot versions are detected and released.
type Snapshot struct {
	Pattern       string `json:"pattern"`
	Label         string `json:"label"`
	FullChangelog *bool  `json:"full_changelog"`
}

// Project holds the project information.
type Project struct {
	Name            string   `json:"name"`
	Version         string   `json:"version"`
	VersionPattern  string   `json:"version_pattern"`
	Snapshot        Snapshot `json:"snapshot"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	Website         string   `json:"website"`
	License         string   `json:"license"`
	InceptionYear   string   `json:"inception_year"`
	Stereotype      string   `json:"stereotype"`
	Authors         []string `json:"authors" model:"replace"`
	Tags            []string `json:"tags" model:"replace"`

	ExtraProperties ExtraProperties `json:"extra_properties"`

	immutable api.Project
}

// IsSnapshot reports whether the project version matches the snapshot pattern.
// An invalid pattern never matches.
func (p *Project) IsSnapshot() bool {
	pattern := p.Snapshot.Pattern
	if pattern == "" {
		pattern = DefaultSnapshotPattern
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return false
	}
	return re.MatchString(p.Version)
}

// SemVer parses the project version as a semantic version.
func (p *Project) SemVer() (*semver.Version, error) {
	return semver.NewVersion(p.Version)
}

// Merge fills in the unset fields in p from src.
func (p *Project) Merge(src *Project) {
	Merge(p, src)
}

func (p *Project) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, p, full)
}

func (p *Project) AsImmutable() api.Project {
	if p.immutable == nil {
		p.immutable = projectView{extraView: extraView{e: &p.ExtraProperties}, p: p}
	}
	return p.immutable
}

type projectView struct {
	extraView
	p *Project
}

func (v projectView) Name() string { return v.p.Name }
func (v projectView) Version() string { return v.p.Version }
func (v projectView) VersionPattern() string { return v.p.VersionPattern }
func (v projectView) SnapshotPattern() string { return v.p.Snapshot.Pattern }
func (v projectView) Description() string { return v.p.Description }
func (v projectView) LongDescription() string { return v.p.LongDescription }
func (v projectView) Website() string { return v.p.Website }
func (v projectView) License() string { return v.p.License }
func (v projectView) InceptionYear() string { return v.p.InceptionYear }
func (v projectView) Stereotype() string { return v.p.Stereotype }
func (v projectView) Authors() api.List[string] { return listView[string]{s: &v.p.Authors} }
func (v projectView) Tags() api.List[string] { return listView[string]{s: &v.p.Tags} }

// Signing holds the signing configuration.
type Signing struct {
	Activation
	Armored    *bool  `json:"armored"`
	Mode       string `json:"mode"`
	PublicKey  string `json:"public_key"`
	SecretKey  string `json:"secret_key" model:"secret"`
	Passphrase string `json:"passphrase" model:"secret"`

	immutable api.Signing
}

func (s *Signing) ConfigPath() string { return "signing" }

func (s *Signing) IsEnabled(rc RunContext) bool {
	return s.Activation.IsEnabled(rc, s.ConfigPath())
}

// Merge fills in the unset fields in s from src.
func (s *Signing) Merge(src *Signing) {
	Merge(s, src)
}

func (s *Signing) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, s, full)
}

func (s *Signing) AsImmutable() api.Signing {
	if s.immutable == nil {
		s.immutable = signingView{activatableView: activatableView{a: &s.Activation}, s: s}
	}
	return s.immutable
}

type signingView struct {
	activatableView
	s *Signing
}

func (v signingView) Armored() bool { return BoolOr(v.s.Armored, false) }
func (v signingView) PublicKey() string { return v.s.PublicKey }
func (v signingView) SecretKey() string { return v.s.SecretKey }
func (v signingView) Passphrase() string { return v.s.Passphrase }

func (v signingView) Mode() string {
	if v.s.Mode == "" {
		return "MEMORY"
	}
	return v.s.Mode
}

// Environment holds the environment settings.
type Environment struct {
	// Variables is the path to a properties file with extra variables.
	Variables  string            `json:"variables"`
	Properties map[string]string `json:"properties" model:"bykey"`

	immutable api.Environment
}

// Merge fills in the unset fields in e from src.
func (e *Environment) Merge(src *Environment) {
	Merge(e, src)
}

func (e *Environment) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, e, full)
}

func (e *Environment) AsImmutable() api.Environment {
	if e.immutable == nil {
		e.immutable = environmentView{e: e}
	}
	return e.immutable
}

type environmentView struct {
	e *Environment
}

func (v environmentView) Variables() string { return v.e.Variables }

func (v environmentView) Properties() api.Map[string, string] {
	return goMapView[string]{m: &v.e.Properties}
}
