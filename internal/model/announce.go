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

// Announce holds all announcers.
type Announce struct {
	Activation
	Discord    Discord                  `json:"discord"`
	Gitter     Gitter                   `json:"gitter"`
	GoogleChat GoogleChat               `json:"google_chat"`
	Mastodon   Mastodon                 `json:"mastodon"`
	Mattermost Mattermost               `json:"mattermost"`
	Slack      Slack                    `json:"slack"`
	SMTP       SMTP                     `json:"smtp"`
	Teams      Teams                    `json:"teams"`
	Telegram   Telegram                 `json:"telegram"`
	Twitter    Twitter                  `json:"twitter"`
	Zulip      Zulip                    `json:"zulip"`
	Webhooks   Registry[*Webhook]       `json:"webhooks"`
	HTTP       Registry[*HTTPAnnouncer] `json:"http"`

	immutable api.Announce
}

// announcers maps the type keys of the singleton announcers to their field in Announce.
// The order is the order announcers run in.
var announcers = []struct {
	name string
	get  func(a *Announce) Announcer
}{
	{DiscordName, func(a *Announce) Announcer { return &a.Discord }},
	{GitterName, func(a *Announce) Announcer { return &a.Gitter }},
	{GoogleChatName, func(a *Announce) Announcer { return &a.GoogleChat }},
	{MastodonName, func(a *Announce) Announcer { return &a.Mastodon }},
	{MattermostName, func(a *Announce) Announcer { return &a.Mattermost }},
	{SlackName, func(a *Announce) Announcer { return &a.Slack }},
	{SMTPName, func(a *Announce) Announcer { return &a.SMTP }},
	{TeamsName, func(a *Announce) Announcer { return &a.Teams }},
	{TelegramName, func(a *Announce) Announcer { return &a.Telegram }},
	{TwitterName, func(a *Announce) Announcer { return &a.Twitter }},
	{ZulipName, func(a *Announce) Announcer { return &a.Zulip }},
}

var announcerIndex = map[string]int{}

func init() {
	for i, a := range announcers {
		announcerIndex[a.name] = i
	}
	announcerIndex[MailName] = announcerIndex[SMTPName]
}

// AnnouncerNames returns the type keys of the singleton announcers followed by
// the registry keys, in run order.
func AnnouncerNames() []string {
	names := make([]string, 0, len(announcers)+2)
	for _, a := range announcers {
		names = append(names, a.name)
	}
	return append(names, WebhooksName, HTTPName)
}

func (a *Announce) ConfigPath() string { return "announce" }

func (a *Announce) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// FindAnnouncer returns the singleton announcer with the given type key, e.g. slack.
// The lookup trims and ignores case.
func (a *Announce) FindAnnouncer(name string) (Announcer, error) {
	key := normalizeName(name)
	if key == "" {
		return nil, newConfigError(KeyBlankName, nil, "announcer")
	}
	i, found := announcerIndex[key]
	if !found {
		return nil, newConfigError(KeyUnsupportedAnnouncer, nil, name)
	}
	return announcers[i].get(a), nil
}

// FindNamedAnnouncer returns the announcer with the given name in the registry
// for typ, which must be webhooks or http.
func (a *Announce) FindNamedAnnouncer(typ, name string) (Announcer, error) {
	switch normalizeName(typ) {
	case WebhooksName, "webhook":
		w, err := a.Webhooks.FindByName(name)
		if err != nil {
			return nil, err
		}
		return w, nil
	case HTTPName:
		h, err := a.HTTP.FindByName(name)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, newConfigError(KeyUnsupportedAnnouncer, nil, typ)
	}
}

// All returns all announcers, enabled or not, in run order.
func (a *Announce) All() []Announcer {
	all := make([]Announcer, 0, len(announcers)+a.Webhooks.Len()+a.HTTP.Len())
	for _, an := range announcers {
		all = append(all, an.get(a))
	}
	for _, w := range a.Webhooks.All() {
		all = append(all, w)
	}
	for _, h := range a.HTTP.All() {
		all = append(all, h)
	}
	return all
}

// EnabledAnnouncers returns the enabled announcers in run order.
// None are enabled if Announce itself is not.
func (a *Announce) EnabledAnnouncers(rc RunContext) []Announcer {
	if !a.IsEnabled(rc) {
		return nil
	}
	var enabled []Announcer
	for _, an := range a.All() {
		if an.IsEnabled(rc) {
			enabled = append(enabled, an)
		}
	}
	return enabled
}

// Merge fills in the unset fields in a from src.
func (a *Announce) Merge(src *Announce) {
	Merge(a, src)
}

// Migrate replaces all legacy enabled flags with their active equivalent.
func (a *Announce) Migrate(rc RunContext) {
	a.Activation.Migrate(rc, a.ConfigPath())
	for _, an := range a.All() {
		an.base().Migrate(rc, an.ConfigPath())
	}
}

func (a *Announce) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

func (a *Announce) AsImmutable() api.Announce {
	if a.immutable == nil {
		a.immutable = announceView{activatableView: activatableView{a: &a.Activation}, a: a}
	}
	return a.immutable
}

type announceView struct {
	activatableView
	a *Announce
}

func (v announceView) Discord() api.Discord { return v.a.Discord.AsImmutable() }
func (v announceView) Gitter() api.Gitter { return v.a.Gitter.AsImmutable() }
func (v announceView) GoogleChat() api.GoogleChat { return v.a.GoogleChat.AsImmutable() }
func (v announceView) Mastodon() api.Mastodon { return v.a.Mastodon.AsImmutable() }
func (v announceView) Mattermost() api.Mattermost { return v.a.Mattermost.AsImmutable() }
func (v announceView) Slack() api.Slack { return v.a.Slack.AsImmutable() }
func (v announceView) SMTP() api.SMTP { return v.a.SMTP.AsImmutable() }
func (v announceView) Teams() api.Teams { return v.a.Teams.AsImmutable() }
func (v announceView) Telegram() api.Telegram { return v.a.Telegram.AsImmutable() }
func (v announceView) Twitter() api.Twitter { return v.a.Twitter.AsImmutable() }
func (v announceView) Zulip() api.Zulip { return v.a.Zulip.AsImmutable() }

func (v announceView) Webhooks() api.Map[string, api.Webhook] {
	return newRegistryView(&v.a.Webhooks, func(w *Webhook) api.Webhook { return w.AsImmutable() })
}

func (v announceView) HTTP() api.Map[string, api.HTTPAnnouncer] {
	return newRegistryView(&v.a.HTTP, func(h *HTTPAnnouncer) api.HTTPAnnouncer { return h.AsImmutable() })
}
