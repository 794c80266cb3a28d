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
	"github.com/jreleaser/jreleaser/pkg/api"
)

// Discord announces to a Discord channel webhook.
type Discord struct {
	AnnouncerBase
	Webhook string `json:"webhook" model:"secret"`
	MessageFields

	immutable api.Discord
}

func (a *Discord) Type() string { return DiscordName }
func (a *Discord) GetName() string { return DiscordName }
func (a *Discord) ConfigPath() string { return announcePath(DiscordName) }

func (a *Discord) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// Merge fills in the unset fields in a from src.
func (a *Discord) Merge(src *Discord) {
	Merge(a, src)
}

func (a *Discord) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedMessage renders the message template or the inline message.
func (a *Discord) ResolvedMessage(rc RunContext) (string, error) {
	return a.resolve(rc, templateProps(rc, DiscordName, &a.ExtraProperties))
}

func (a *Discord) AsImmutable() api.Discord {
	if a.immutable == nil {
		a.immutable = newWebhookAnnouncerView(&a.AnnouncerBase, DiscordName, DiscordName, &a.MessageFields, &a.Webhook)
	}
	return a.immutable
}

// Gitter announces to a Gitter room webhook.
type Gitter struct {
	AnnouncerBase
	Webhook string `json:"webhook" model:"secret"`
	MessageFields

	immutable api.Gitter
}

func (a *Gitter) Type() string { return GitterName }
func (a *Gitter) GetName() string { return GitterName }
func (a *Gitter) ConfigPath() string { return announcePath(GitterName) }

func (a *Gitter) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// Merge fills in the unset fields in a from src.
func (a *Gitter) Merge(src *Gitter) {
	Merge(a, src)
}

func (a *Gitter) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedMessage renders the message template or the inline message.
func (a *Gitter) ResolvedMessage(rc RunContext) (string, error) {
	return a.resolve(rc, templateProps(rc, GitterName, &a.ExtraProperties))
}

func (a *Gitter) AsImmutable() api.Gitter {
	if a.immutable == nil {
		a.immutable = newWebhookAnnouncerView(&a.AnnouncerBase, GitterName, GitterName, &a.MessageFields, &a.Webhook)
	}
	return a.immutable
}

// GoogleChat announces to a Google Chat space webhook.
type GoogleChat struct {
	AnnouncerBase
	Webhook string `json:"webhook" model:"secret"`
	MessageFields

	immutable api.GoogleChat
}

func (a *GoogleChat) Type() string { return GoogleChatName }
func (a *GoogleChat) GetName() string { return GoogleChatName }
func (a *GoogleChat) ConfigPath() string { return announcePath(GoogleChatName) }

func (a *GoogleChat) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// Merge fills in the unset fields in a from src.
func (a *GoogleChat) Merge(src *GoogleChat) {
	Merge(a, src)
}

func (a *GoogleChat) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedMessage renders the message template or the inline message.
func (a *GoogleChat) ResolvedMessage(rc RunContext) (string, error) {
	return a.resolve(rc, templateProps(rc, GoogleChatName, &a.ExtraProperties))
}

func (a *GoogleChat) AsImmutable() api.GoogleChat {
	if a.immutable == nil {
		a.immutable = newWebhookAnnouncerView(&a.AnnouncerBase, GoogleChatName, GoogleChatName, &a.MessageFields, &a.Webhook)
	}
	return a.immutable
}

// Mattermost announces to a Mattermost incoming webhook.
type Mattermost struct {
	AnnouncerBase
	Webhook string `json:"webhook" model:"secret"`
	MessageFields

	immutable api.Mattermost
}

func (a *Mattermost) Type() string { return MattermostName }
func (a *Mattermost) GetName() string { return MattermostName }
func (a *Mattermost) ConfigPath() string { return announcePath(MattermostName) }

func (a *Mattermost) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// Merge fills in the unset fields in a from src.
func (a *Mattermost) Merge(src *Mattermost) {
	Merge(a, src)
}

func (a *Mattermost) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedMessage renders the message template or the inline message.
func (a *Mattermost) ResolvedMessage(rc RunContext) (string, error) {
	return a.resolve(rc, templateProps(rc, MattermostName, &a.ExtraProperties))
}

func (a *Mattermost) AsImmutable() api.Mattermost {
	if a.immutable == nil {
		a.immutable = newWebhookAnnouncerView(&a.AnnouncerBase, MattermostName, MattermostName, &a.MessageFields, &a.Webhook)
	}
	return a.immutable
}

// Teams announces to a Microsoft Teams connector webhook.
type Teams struct {
	AnnouncerBase
	Webhook string `json:"webhook" model:"secret"`
	MessageFields

	immutable api.Teams
}

func (a *Teams) Type() string { return TeamsName }
func (a *Teams) GetName() string { return TeamsName }
func (a *Teams) ConfigPath() string { return announcePath(TeamsName) }

func (a *Teams) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// Merge fills in the unset fields in a from src.
func (a *Teams) Merge(src *Teams) {
	Merge(a, src)
}

func (a *Teams) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedMessage renders the message template or the inline message.
func (a *Teams) ResolvedMessage(rc RunContext) (string, error) {
	return a.resolve(rc, templateProps(rc, TeamsName, &a.ExtraProperties))
}

func (a *Teams) AsImmutable() api.Teams {
	if a.immutable == nil {
		a.immutable = newWebhookAnnouncerView(&a.AnnouncerBase, TeamsName, TeamsName, &a.MessageFields, &a.Webhook)
	}
	return a.immutable
}
