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
	"github.com/jreleaser/jreleaser/internal/common/mapsh"
	"github.com/jreleaser/jreleaser/internal/model/active"
	"github.com/jreleaser/jreleaser/pkg/api"
)

// Packager type keys.
const (
	BrewName  = "brew"
	ScoopName = "scoop"
)

// Packager is implemented by all packagers.
type Packager interface {
	Activatable
	Mapper
	Type() string
	ConfigPath() string
	packagerBase() *PackagerBase
}

// Repository is a git repository a packager publishes its manifest to, e.g. a Homebrew tap.
type Repository struct {
	Active   active.Active `json:"active"`
	Owner    string        `json:"owner"`
	Name     string        `json:"name"`
	TagName  string        `json:"tag_name"`
	Branch   string        `json:"branch"`
	Username string        `json:"username"`
	Token    string        `json:"token" model:"secret"`
}

// PackagerBase holds the fields shared by all packagers.
type PackagerBase struct {
	Activation
	ContinueOnError *bool           `json:"continue_on_error"`
	CommitAuthor    CommitAuthor    `json:"commit_author"`
	ExtraProperties ExtraProperties `json:"extra_properties"`
}

func (b *PackagerBase) packagerBase() *PackagerBase {
	return b
}

func packagerPath(name string) string {
	return "packagers." + name
}

// Brew publishes a Homebrew formula to a tap.
type Brew struct {
	PackagerBase
	FormulaName   string            `json:"formula_name"`
	MultiPlatform *bool             `json:"multi_platform"`
	Dependencies  map[string]string `json:"dependencies" model:"bykey"`
	Tap           Repository        `json:"tap"`

	immutable api.Brew
}

func (p *Brew) Type() string { return BrewName }
func (p *Brew) ConfigPath() string { return packagerPath(BrewName) }

func (p *Brew) IsEnabled(rc RunContext) bool {
	return p.Activation.IsEnabled(rc, p.ConfigPath())
}

// ResolvedFormulaName renders the formula name, default the capitalized project name.
func (p *Brew) ResolvedFormulaName(rc RunContext) (string, error) {
	name := p.FormulaName
	if name == "" {
		name = "{{ .projectNameCapitalized }}"
	}
	return rc.Render(name, templateProps(rc, BrewName, &p.ExtraProperties))
}

// Merge fills in the unset fields in p from src.
func (p *Brew) Merge(src *Brew) {
	Merge(p, src)
}

func (p *Brew) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, p, full)
}

func (p *Brew) AsImmutable() api.Brew {
	if p.immutable == nil {
		p.immutable = brewView{packagerView: newPackagerView(&p.PackagerBase, BrewName), p: p}
	}
	return p.immutable
}

// Scoop publishes a Scoop manifest to a bucket.
type Scoop struct {
	PackagerBase
	PackageName   string     `json:"package_name"`
	CheckverURL   string     `json:"checkver_url"`
	AutoupdateURL string     `json:"autoupdate_url"`
	Bucket        Repository `json:"bucket"`

	immutable api.Scoop
}

func (p *Scoop) Type() string { return ScoopName }
func (p *Scoop) ConfigPath() string { return packagerPath(ScoopName) }

func (p *Scoop) IsEnabled(rc RunContext) bool {
	return p.Activation.IsEnabled(rc, p.ConfigPath())
}

// Merge fills in the unset fields in p from src.
func (p *Scoop) Merge(src *Scoop) {
	Merge(p, src)
}

func (p *Scoop) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, p, full)
}

func (p *Scoop) AsImmutable() api.Scoop {
	if p.immutable == nil {
		p.immutable = scoopView{packagerView: newPackagerView(&p.PackagerBase, ScoopName), p: p}
	}
	return p.immutable
}

// Packagers holds all packagers.
type Packagers struct {
	Brew  Brew  `json:"brew"`
	Scoop Scoop `json:"scoop"`

	immutable api.Packagers
}

var packagers = map[string]func(p *Packagers) Packager{
	BrewName:  func(p *Packagers) Packager { return &p.Brew },
	ScoopName: func(p *Packagers) Packager { return &p.Scoop },
}

// FindPackager returns the packager with the given type key, e.g. brew.
func (p *Packagers) FindPackager(name string) (Packager, error) {
	key := normalizeName(name)
	if key == "" {
		return nil, newConfigError(KeyBlankName, nil, "packager")
	}
	get, found := packagers[key]
	if !found {
		return nil, newConfigError(KeyUnsupportedPackager, nil, name)
	}
	return get(p), nil
}

// All returns all packagers.
func (p *Packagers) All() []Packager {
	return []Packager{&p.Brew, &p.Scoop}
}

// EnabledPackagers returns the enabled packagers.
func (p *Packagers) EnabledPackagers(rc RunContext) []Packager {
	var enabled []Packager
	for _, pk := range p.All() {
		if pk.IsEnabled(rc) {
			enabled = append(enabled, pk)
		}
	}
	return enabled
}

// Migrate replaces all legacy enabled flags with their active equivalent.
func (p *Packagers) Migrate(rc RunContext) {
	for _, pk := range p.All() {
		pk.packagerBase().Migrate(rc, pk.ConfigPath())
	}
}

// Merge fills in the unset fields in p from src.
func (p *Packagers) Merge(src *Packagers) {
	Merge(p, src)
}

func (p *Packagers) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, p, full)
}

func (p *Packagers) AsImmutable() api.Packagers {
	if p.immutable == nil {
		p.immutable = packagersView{p: p}
	}
	return p.immutable
}

type packagersView struct {
	p *Packagers
}

func (v packagersView) Brew() api.Brew { return v.p.Brew.AsImmutable() }
func (v packagersView) Scoop() api.Scoop { return v.p.Scoop.AsImmutable() }

type packagerView struct {
	activatableView
	extraView
	b   *PackagerBase
	typ string
}

func newPackagerView(b *PackagerBase, typ string) packagerView {
	return packagerView{
		activatableView: activatableView{a: &b.Activation},
		extraView:       extraView{e: &b.ExtraProperties},
		b:               b,
		typ:             typ,
	}
}

func (v packagerView) Type() string { return v.typ }
func (v packagerView) ContinueOnError() bool { return BoolOr(v.b.ContinueOnError, false) }
func (v packagerView) CommitAuthor() api.CommitAuthor { return commitAuthorView{c: &v.b.CommitAuthor} }

type brewView struct {
	packagerView
	p *Brew
}

func (v brewView) FormulaName() string { return v.p.FormulaName }
func (v brewView) MultiPlatform() bool { return BoolOr(v.p.MultiPlatform, false) }
func (v brewView) Tap() api.Repository { return repositoryView{r: &v.p.Tap} }

func (v brewView) Dependencies() api.Map[string, string] {
	return goMapView[string]{m: &v.p.Dependencies}
}

type scoopView struct {
	packagerView
	p *Scoop
}

func (v scoopView) PackageName() string { return v.p.PackageName }
func (v scoopView) CheckverURL() string { return v.p.CheckverURL }
func (v scoopView) AutoupdateURL() string { return v.p.AutoupdateURL }
func (v scoopView) Bucket() api.Repository { return repositoryView{r: &v.p.Bucket} }

type repositoryView struct {
	r *Repository
}

func (v repositoryView) Active() string {
	if v.r.Active.IsZero() {
		return ""
	}
	return v.r.Active.String()
}

func (v repositoryView) Owner() string { return v.r.Owner }
func (v repositoryView) Name() string { return v.r.Name }
func (v repositoryView) TagName() string { return v.r.TagName }
func (v repositoryView) Branch() string { return v.r.Branch }
func (v repositoryView) Username() string { return v.r.Username }
func (v repositoryView) Token() string { return v.r.Token }
