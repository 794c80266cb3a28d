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

package staticfiles

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/jreleaser/jreleaser/internal/common/templ"
)

var (
	//go:embed templates/release-notes.gotmpl
	releaseNotesTemplContent []byte

	//go:embed templates/announcement.gotmpl
	announcementTemplContent string

	// ReleaseNotesTemplate is the template for the release notes.
	ReleaseNotesTemplate *template.Template

	// DefaultAnnouncement is the message template used by announcers that have
	// neither a message nor a message template configured.
	DefaultAnnouncement = strings.TrimSpace(announcementTemplContent)
)

func init() {
	ReleaseNotesTemplate = template.Must(template.New("release-notes").Funcs(templ.BuiltInFuncs).Parse(string(releaseNotesTemplContent)))
}
