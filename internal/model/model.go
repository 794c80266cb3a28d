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

// Package model holds the release configuration model.
//
// All entities are plain structs that are populated by decoding and layering
// configuration sources with Merge, where values already set win.
// The entities describe themselves with AsMap and expose read-only views with AsImmutable.
package model

import (
	"github.com/jreleaser/jreleaser/internal/common/mapsh"
	"github.com/jreleaser/jreleaser/pkg/api"
)

// JReleaserModel is the root of the configuration model.
type JReleaserModel struct {
	Environment Environment `json:"environment"`
	Project     Project     `json:"project"`
	Release     Release     `json:"release"`
	Signing     Signing     `json:"signing"`
	Announce    Announce    `json:"announce"`
	Upload      Upload      `json:"upload"`
	Download    Download    `json:"download"`
	Packagers   Packagers   `json:"packagers"`

	immutable api.Model
}

// New creates a new empty model.
func New() *JReleaserModel {
	return &JReleaserModel{}
}

// Merge fills in the unset fields in m from src.
func (m *JReleaserModel) Merge(src *JReleaserModel) {
	Merge(m, src)
}

// Migrate replaces all legacy enabled flags with their active equivalent,
// reporting each to rc as deprecated.
func (m *JReleaserModel) Migrate(rc RunContext) {
	m.Signing.Activation.Migrate(rc, m.Signing.ConfigPath())
	m.Announce.Migrate(rc)
	m.Upload.Migrate(rc)
	m.Download.Migrate(rc)
	m.Packagers.Migrate(rc)
}

// Init validates the model and fills in the derived defaults.
func (m *JReleaserModel) Init() error {
	return m.Release.Init()
}

// AsMap describes the model as an ordered map, see AsMap.
func (m *JReleaserModel) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, m, full)
}

func (m *JReleaserModel) AsImmutable() api.Model {
	if m.immutable == nil {
		m.immutable = modelView{m: m}
	}
	return m.immutable
}

type modelView struct {
	m *JReleaserModel
}

func (v modelView) Environment() api.Environment { return v.m.Environment.AsImmutable() }
func (v modelView) Project() api.Project { return v.m.Project.AsImmutable() }
func (v modelView) Release() api.Release { return v.m.Release.AsImmutable() }
func (v modelView) Signing() api.Signing { return v.m.Signing.AsImmutable() }
func (v modelView) Announce() api.Announce { return v.m.Announce.AsImmutable() }
func (v modelView) Upload() api.Upload { return v.m.Upload.AsImmutable() }
func (v modelView) Download() api.Download { return v.m.Download.AsImmutable() }
func (v modelView) Packagers() api.Packagers { return v.m.Packagers.AsImmutable() }
