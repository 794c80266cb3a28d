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
	"github.com/jreleaser/jreleaser/internal/model/httptypes"
	"github.com/jreleaser/jreleaser/pkg/api"
)

const webhookPrefix = "webhook"

// Webhook is a named, generic webhook announcer.
type Webhook struct {
	NamedBase
	AnnouncerBase
	Webhook           string `json:"webhook" model:"secret"`
	MessageProperty   string `json:"message_property"`
	StructuredMessage *bool  `json:"structured_message"`
	MessageFields

	immutable api.Webhook
}

// NewWebhook creates a new webhook announcer with the given name.
func NewWebhook(name string) *Webhook {
	w := &Webhook{}
	w.Name = name
	return w
}

func (a *Webhook) Type() string { return WebhooksName }
func (a *Webhook) ConfigPath() string { return announcePath(WebhooksName + "." + a.Name) }

func (a *Webhook) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// Merge fills in the unset fields in a from src.
func (a *Webhook) Merge(src *Webhook) {
	Merge(a, src)
}

func (a *Webhook) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedMessage renders the message template or the inline message.
// A structured message is wrapped in a JSON object keyed by the message property.
func (a *Webhook) ResolvedMessage(rc RunContext) (string, error) {
	s, err := a.resolve(rc, templateProps(rc, webhookPrefix, &a.ExtraProperties))
	if err != nil {
		return "", err
	}
	if BoolOr(a.StructuredMessage, false) {
		return structuredMessage(a.MessageProperty, s)
	}
	return s, nil
}

func (a *Webhook) AsImmutable() api.Webhook {
	if a.immutable == nil {
		a.immutable = webhookView{
			webhookAnnouncerView: newWebhookAnnouncerView(&a.AnnouncerBase, a.Name, WebhooksName, &a.MessageFields, &a.Webhook),
			a:                    a,
		}
	}
	return a.immutable
}

type webhookView struct {
	webhookAnnouncerView
	a *Webhook
}

func (v webhookView) MessageProperty() string { return v.a.MessageProperty }
func (v webhookView) StructuredMessage() bool { return BoolOr(v.a.StructuredMessage, false) }

// HTTPAnnouncer is a named announcer that sends a templated payload to a URL.
type HTTPAnnouncer struct {
	NamedBase
	AnnouncerBase
	URL             string                  `json:"url"`
	Method          httptypes.Method        `json:"method"`
	Authorization   httptypes.Authorization `json:"authorization"`
	Username        string                  `json:"username"`
	Password        string                  `json:"password" model:"secret"`
	BearerKeyword   string                  `json:"bearer_keyword"`
	Headers         map[string]string       `json:"headers" model:"bykey"`
	Payload         string                  `json:"payload"`
	PayloadTemplate string                  `json:"payload_template"`

	immutable api.HTTPAnnouncer
}

// NewHTTPAnnouncer creates a new HTTP announcer with the given name.
func NewHTTPAnnouncer(name string) *HTTPAnnouncer {
	h := &HTTPAnnouncer{}
	h.Name = name
	return h
}

func (a *HTTPAnnouncer) Type() string { return HTTPName }
func (a *HTTPAnnouncer) ConfigPath() string { return announcePath(HTTPName + "." + a.Name) }

func (a *HTTPAnnouncer) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// SetMethod parses and sets the HTTP method.
func (a *HTTPAnnouncer) SetMethod(s string) error {
	m, err := httptypes.ParseMethod(s)
	if err != nil {
		return newConfigError(KeyInvalidValue, err, "method")
	}
	a.Method = m
	return nil
}

// SetAuthorization parses and sets the authorization scheme.
func (a *HTTPAnnouncer) SetAuthorization(s string) error {
	v, err := httptypes.ParseAuthorization(s)
	if err != nil {
		return newConfigError(KeyInvalidValue, err, "authorization")
	}
	a.Authorization = v
	return nil
}

// Merge fills in the unset fields in a from src.
func (a *HTTPAnnouncer) Merge(src *HTTPAnnouncer) {
	Merge(a, src)
}

func (a *HTTPAnnouncer) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedURL renders the URL.
func (a *HTTPAnnouncer) ResolvedURL(rc RunContext) (string, error) {
	return rc.Render(a.URL, templateProps(rc, HTTPName, &a.ExtraProperties))
}

// ResolvedPayload renders the payload template or the inline payload.
func (a *HTTPAnnouncer) ResolvedPayload(rc RunContext) (string, error) {
	props := templateProps(rc, HTTPName, &a.ExtraProperties)
	if a.PayloadTemplate != "" {
		return renderTemplateFile(rc, a.PayloadTemplate, props)
	}
	return rc.Render(a.Payload, props)
}

func (a *HTTPAnnouncer) AsImmutable() api.HTTPAnnouncer {
	if a.immutable == nil {
		a.immutable = httpAnnouncerView{
			announcerView: newAnnouncerView(&a.AnnouncerBase, a.Name, HTTPName),
			a:             a,
		}
	}
	return a.immutable
}

type httpAnnouncerView struct {
	announcerView
	a *HTTPAnnouncer
}

func (v httpAnnouncerView) URL() string { return v.a.URL }
func (v httpAnnouncerView) Method() string { return v.a.Method.String() }
func (v httpAnnouncerView) Authorization() string { return v.a.Authorization.String() }
func (v httpAnnouncerView) Username() string { return v.a.Username }
func (v httpAnnouncerView) Password() string { return v.a.Password }
func (v httpAnnouncerView) BearerKeyword() string { return v.a.BearerKeyword }
func (v httpAnnouncerView) Payload() string { return v.a.Payload }
func (v httpAnnouncerView) PayloadTemplate() string { return v.a.PayloadTemplate }

func (v httpAnnouncerView) Headers() api.Map[string, string] {
	return goMapView[string]{m: &v.a.Headers}
}
