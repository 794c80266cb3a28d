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
	"github.com/jreleaser/jreleaser/internal/model"
	"github.com/jreleaser/jreleaser/internal/model/httptypes"
	"github.com/jreleaser/jreleaser/internal/model/mailtypes"
	"github.com/jreleaser/jreleaser/staticfiles"
)

const defaultSubject = "{{ .projectNameCapitalized }} {{ .projectVersion }} released!"

// Defaults builds the defaults config layer.
// Named entities get defaults for the names configured in base, which may be nil.
func Defaults(base *model.JReleaserModel) *model.JReleaserModel {
	m := model.New()
	msg := staticfiles.DefaultAnnouncement

	m.Project.Snapshot.Pattern = model.DefaultSnapshotPattern
	m.Project.Snapshot.Label = "early-access"
	m.Signing.Mode = "MEMORY"

	a := &m.Announce
	for _, mf := range []*model.MessageFields{
		&a.Discord.MessageFields,
		&a.Gitter.MessageFields,
		&a.GoogleChat.MessageFields,
		&a.Mastodon.MessageFields,
		&a.Mattermost.MessageFields,
		&a.Slack.MessageFields,
		&a.SMTP.MessageFields,
		&a.Teams.MessageFields,
		&a.Telegram.MessageFields,
		&a.Zulip.MessageFields,
	} {
		mf.Message = msg
	}
	a.Twitter.Status = msg
	a.SMTP.Transport = mailtypes.SMTP
	a.SMTP.MimeType = mailtypes.Text
	a.SMTP.Subject = defaultSubject
	a.Zulip.Subject = defaultSubject

	if base == nil {
		return m
	}

	for _, w := range base.Announce.Webhooks.All() {
		d := model.NewWebhook(w.Name)
		d.Message = msg
		d.MessageProperty = "text"
		_ = a.Webhooks.Add(d)
	}
	for _, h := range base.Announce.HTTP.All() {
		d := model.NewHTTPAnnouncer(h.Name)
		d.Method = httptypes.POST
		d.Authorization = httptypes.None
		d.BearerKeyword = "Bearer"
		_ = a.HTTP.Add(d)
	}
	for _, u := range base.Upload.HTTP.All() {
		d := model.NewHTTPUploader(u.Name)
		d.Method = httptypes.PUT
		d.Authorization = httptypes.None
		_ = m.Upload.HTTP.Add(d)
	}
	for _, u := range base.Upload.Artifactory.All() {
		d := model.NewArtifactoryUploader(u.Name)
		d.Authorization = httptypes.Bearer
		_ = m.Upload.Artifactory.Add(d)
	}

	return m
}
