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

// Mastodon posts a status to a Mastodon instance.
type Mastodon struct {
	AnnouncerBase
	Host        string `json:"host"`
	AccessToken string `json:"access_token" model:"secret"`
	MessageFields

	immutable api.Mastodon
}

func (a *Mastodon) Type() string { return MastodonName }
func (a *Mastodon) GetName() string { return MastodonName }
func (a *Mastodon) ConfigPath() string { return announcePath(MastodonName) }

func (a *Mastodon) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// Merge fills in the unset fields in a from src.
func (a *Mastodon) Merge(src *Mastodon) {
	Merge(a, src)
}

func (a *Mastodon) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedMessage renders the message template or the inline message.
func (a *Mastodon) ResolvedMessage(rc RunContext) (string, error) {
	return a.resolve(rc, templateProps(rc, MastodonName, &a.ExtraProperties))
}

func (a *Mastodon) AsImmutable() api.Mastodon {
	if a.immutable == nil {
		a.immutable = mastodonView{
			messageAnnouncerView: newMessageAnnouncerView(&a.AnnouncerBase, MastodonName, MastodonName, &a.MessageFields),
			a:                    a,
		}
	}
	return a.immutable
}

type mastodonView struct {
	messageAnnouncerView
	a *Mastodon
}

func (v mastodonView) Host() string { return v.a.Host }
func (v mastodonView) AccessToken() string { return v.a.AccessToken }

// Slack posts a message to a Slack channel, either with a bot token or a webhook.
type Slack struct {
	AnnouncerBase
	Token   string `json:"token" model:"secret"`
	Webhook string `json:"webhook" model:"secret"`
	Channel string `json:"channel"`
	MessageFields

	immutable api.Slack
}

func (a *Slack) Type() string { return SlackName }
func (a *Slack) GetName() string { return SlackName }
func (a *Slack) ConfigPath() string { return announcePath(SlackName) }

func (a *Slack) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// Merge fills in the unset fields in a from src.
func (a *Slack) Merge(src *Slack) {
	Merge(a, src)
}

func (a *Slack) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedMessage renders the message template or the inline message.
func (a *Slack) ResolvedMessage(rc RunContext) (string, error) {
	return a.resolve(rc, templateProps(rc, SlackName, &a.ExtraProperties))
}

func (a *Slack) AsImmutable() api.Slack {
	if a.immutable == nil {
		a.immutable = slackView{
			messageAnnouncerView: newMessageAnnouncerView(&a.AnnouncerBase, SlackName, SlackName, &a.MessageFields),
			a:                    a,
		}
	}
	return a.immutable
}

type slackView struct {
	messageAnnouncerView
	a *Slack
}

func (v slackView) Token() string { return v.a.Token }
func (v slackView) Webhook() string { return v.a.Webhook }
func (v slackView) Channel() string { return v.a.Channel }

// Telegram sends a message to a Telegram chat through a bot.
type Telegram struct {
	AnnouncerBase
	Token  string `json:"token" model:"secret"`
	ChatID string `json:"chat_id"`
	MessageFields

	immutable api.Telegram
}

func (a *Telegram) Type() string { return TelegramName }
func (a *Telegram) GetName() string { return TelegramName }
func (a *Telegram) ConfigPath() string { return announcePath(TelegramName) }

func (a *Telegram) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// Merge fills in the unset fields in a from src.
func (a *Telegram) Merge(src *Telegram) {
	Merge(a, src)
}

func (a *Telegram) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedMessage renders the message template or the inline message.
func (a *Telegram) ResolvedMessage(rc RunContext) (string, error) {
	return a.resolve(rc, templateProps(rc, TelegramName, &a.ExtraProperties))
}

func (a *Telegram) AsImmutable() api.Telegram {
	if a.immutable == nil {
		a.immutable = telegramView{
			messageAnnouncerView: newMessageAnnouncerView(&a.AnnouncerBase, TelegramName, TelegramName, &a.MessageFields),
			a:                    a,
		}
	}
	return a.immutable
}

type telegramView struct {
	messageAnnouncerView
	a *Telegram
}

func (v telegramView) Token() string { return v.a.Token }
func (v telegramView) ChatID() string { return v.a.ChatID }

// Zulip sends a stream message to a Zulip organization.
type Zulip struct {
	AnnouncerBase
	Account string `json:"account"`
	APIKey  string `json:"api_key" model:"secret"`
	APIHost string `json:"api_host"`
	Channel string `json:"channel"`
	Subject string `json:"subject"`
	MessageFields

	immutable api.Zulip
}

func (a *Zulip) Type() string { return ZulipName }
func (a *Zulip) GetName() string { return ZulipName }
func (a *Zulip) ConfigPath() string { return announcePath(ZulipName) }

func (a *Zulip) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// Merge fills in the unset fields in a from src.
func (a *Zulip) Merge(src *Zulip) {
	Merge(a, src)
}

func (a *Zulip) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedSubject renders the subject.
func (a *Zulip) ResolvedSubject(rc RunContext) (string, error) {
	return rc.Render(a.Subject, templateProps(rc, ZulipName, &a.ExtraProperties))
}

// ResolvedMessage renders the message template or the inline message.
func (a *Zulip) ResolvedMessage(rc RunContext) (string, error) {
	return a.resolve(rc, templateProps(rc, ZulipName, &a.ExtraProperties))
}

func (a *Zulip) AsImmutable() api.Zulip {
	if a.immutable == nil {
		a.immutable = zulipView{
			messageAnnouncerView: newMessageAnnouncerView(&a.AnnouncerBase, ZulipName, ZulipName, &a.MessageFields),
			a:                    a,
		}
	}
	return a.immutable
}

type zulipView struct {
	messageAnnouncerView
	a *Zulip
}

func (v zulipView) Account() string { return v.a.Account }
func (v zulipView) APIKey() string { return v.a.APIKey }
func (v zulipView) APIHost() string { return v.a.APIHost }
func (v zulipView) Channel() string { return v.a.Channel }
func (v zulipView) Subject() string { return v.a.Subject }
