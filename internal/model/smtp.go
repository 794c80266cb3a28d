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
	"github.com/jreleaser/jreleaser/internal/model/mailtypes"
	"github.com/jreleaser/jreleaser/pkg/api"
)

// SMTP sends the announcement by mail.
type SMTP struct {
	AnnouncerBase
	Transport  mailtypes.Transport `json:"transport"`
	Host       string              `json:"host"`
	Port       *int                `json:"port"`
	Auth       *bool               `json:"auth"`
	Username   string              `json:"username"`
	Password   string              `json:"password" model:"secret"`
	From       string              `json:"from"`
	To         string              `json:"to"`
	Cc         string              `json:"cc"`
	Bcc        string              `json:"bcc"`
	Subject    string              `json:"subject"`
	MimeType   mailtypes.MimeType  `json:"mime_type"`
	Properties map[string]string   `json:"properties" model:"bykey"`
	MessageFields

	immutable api.SMTP
}

func (a *SMTP) Type() string { return SMTPName }
func (a *SMTP) GetName() string { return SMTPName }
func (a *SMTP) ConfigPath() string { return announcePath(SMTPName) }

func (a *SMTP) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// SetTransport parses and sets the transport, e.g. SMTPS.
func (a *SMTP) SetTransport(s string) error {
	t, err := mailtypes.ParseTransport(s)
	if err != nil {
		return newConfigError(KeyInvalidValue, err, "transport")
	}
	a.Transport = t
	return nil
}

// SetMimeType parses and sets the mime type, e.g. HTML.
func (a *SMTP) SetMimeType(s string) error {
	m, err := mailtypes.ParseMimeType(s)
	if err != nil {
		return newConfigError(KeyInvalidValue, err, "mimeType")
	}
	a.MimeType = m
	return nil
}

// PortOr returns the port or the default for the transport.
func (a *SMTP) PortOr() int {
	if a.Port != nil {
		return *a.Port
	}
	if a.Transport == mailtypes.SMTPS {
		return 465
	}
	return 25
}

// Merge fills in the unset fields in a from src.
func (a *SMTP) Merge(src *SMTP) {
	Merge(a, src)
}

func (a *SMTP) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedSubject renders the subject.
func (a *SMTP) ResolvedSubject(rc RunContext) (string, error) {
	return rc.Render(a.Subject, templateProps(rc, SMTPName, &a.ExtraProperties))
}

// ResolvedMessage renders the message template or the inline message.
func (a *SMTP) ResolvedMessage(rc RunContext) (string, error) {
	return a.resolve(rc, templateProps(rc, SMTPName, &a.ExtraProperties))
}

func (a *SMTP) AsImmutable() api.SMTP {
	if a.immutable == nil {
		a.immutable = smtpView{
			messageAnnouncerView: newMessageAnnouncerView(&a.AnnouncerBase, SMTPName, SMTPName, &a.MessageFields),
			a:                    a,
		}
	}
	return a.immutable
}

type smtpView struct {
	messageAnnouncerView
	a *SMTP
}

func (v smtpView) Transport() string { return v.a.Transport.String() }
func (v smtpView) Host() string { return v.a.Host }
func (v smtpView) Port() int { return v.a.PortOr() }
func (v smtpView) Auth() bool { return BoolOr(v.a.Auth, false) }
func (v smtpView) Username() string { return v.a.Username }
func (v smtpView) Password() string { return v.a.Password }
func (v smtpView) From() string { return v.a.From }
func (v smtpView) To() string { return v.a.To }
func (v smtpView) Cc() string { return v.a.Cc }
func (v smtpView) Bcc() string { return v.a.Bcc }
func (v smtpView) Subject() string { return v.a.Subject }
func (v smtpView) MimeType() string { return v.a.MimeType.String() }

func (v smtpView) Properties() api.Map[string, string] {
	return goMapView[string]{m: &v.a.Properties}
}
