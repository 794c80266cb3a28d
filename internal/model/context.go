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

import "github.com/jreleaser/jreleaser/internal/model/active"

const (
	// HIDE replaces secret values that are set.
	HIDE = "************"

	// UNSET replaces secret values that are blank or missing.
	UNSET = "**unset**"
)

// RunContext is what the model needs from the run it is part of.
type RunContext interface {
	active.Mode

	// BaseDir is the directory relative paths (e.g. templates) are resolved against.
	BaseDir() string

	// Props returns a fresh copy of the template properties of the run,
	// e.g. projectName and tagName.
	Props() map[string]any

	// Render renders the template tmpl with the given properties.
	Render(tmpl string, props map[string]any) (string, error)

	// Deprecated records that the config key at path uses a deprecated field.
	// Implementations report each path only once.
	Deprecated(path, message string)
}
