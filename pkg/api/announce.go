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

package api

// Announcer is the common interface of all announcers.
type Announcer interface {
	Activatable
	Extra
	Timeouts
	Name() string
	Type() string
}

// MessageAnnouncer is an announcer that sends a message, inline or from a template file.
type MessageAnnouncer interface {
	Announcer
	Message() string
	MessageTemplate() string
}

// WebhookAnnouncer posts a message to a webhook URL.
type WebhookAnnouncer interface {
	MessageAnnouncer
	Webhook() string
}

type Discord interface{ WebhookAnnouncer }

type Gitter interface{ WebhookAnnouncer }

type GoogleChat interface{ WebhookAnnouncer }

type Mattermost interface{ WebhookAnnouncer }

type Teams interface{ WebhookAnnouncer }

type Mastodon interface {
	MessageAnnouncer
	Host() string
	AccessToken() string
}

type Slack interface {
	MessageAnnouncer
	Token() string
	Webhook() string
	Channel() string
}

type SMTP interface {
	MessageAnnouncer
	Transport() string
	Host() string
	Port() int
	Auth() bool
	Username() string
	Password() string
	From() string
	To() string
	Cc() string
	Bcc() string
	Subject() string
	MimeType() string
	Properties() Map[string, string]
}

type Telegram interface {
	MessageAnnouncer
	Token() string
	ChatID() string
}

type Twitter interface {
	Announcer
	ConsumerKey() string
	ConsumerSecret() string
	AccessToken() string
	AccessTokenSecret() string
	Status() string
	Statuses() List[string]
	StatusTemplate() string
}

type Zulip interface {
	MessageAnnouncer
	Account() string
	APIKey() string
	APIHost() string
	Channel() string
	Subject() string
}

// Webhook is a named generic webhook announcer.
type Webhook interface {
	WebhookAnnouncer
	MessageProperty() string
	StructuredMessage() bool
}

// HTTPAnnouncer is a named announcer that sends a templated payload over HTTP.
type HTTPAnnouncer interface {
	Announcer
	URL() string
	Method() string
	Authorization() string
	Username() string
	Password() string
	BearerKeyword() string
	Headers() Map[string, string]
	Payload() string
	PayloadTemplate() string
}

// Announce holds all announcers.
type Announce interface {
	Activatable
	Discord() Discord
	Gitter() Gitter
	GoogleChat() GoogleChat
	Mastodon() Mastodon
	Mattermost() Mattermost
	Slack() Slack
	SMTP() SMTP
	Teams() Teams
	Telegram() Telegram
	Twitter() Twitter
	Zulip() Zulip
	Webhooks() Map[string, Webhook]
	HTTP() Map[string, HTTPAnnouncer]
}
