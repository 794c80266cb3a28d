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
	"encoding/json"
	"os"
	"path/filepath"
)

// Announcer type keys.
const (
	DiscordName    = "discord"
	GitterName     = "gitter"
	GoogleChatName = "googlechat"
	MastodonName   = "mastodon"
	MattermostName = "mattermost"
	SlackName      = "slack"
	SMTPName       = "smtp"
	MailName       = "mail"
	TeamsName      = "teams"
	TelegramName   = "telegram"
	TwitterName    = "twitter"
	ZulipName      = "zulip"
	WebhooksName   = "webhooks"
	HTTPName       = "http"
)

// Announcer is implemented by all announcers.
type Announcer interface {
	Activatable
	Mapper
	// Type returns the type key, e.g. slack.
	Type() string
	// GetName returns the name, the type key for the singleton announcers.
	GetName() string
	// ConfigPath returns the path of the announcer in the config, e.g. announce.slack.
	ConfigPath() string
	base() *AnnouncerBase
}

// MessageAnnouncer is an Announcer that sends a single message.
type MessageAnnouncer interface {
	Announcer
	ResolvedMessage(rc RunContext) (string, error)
}

func announcePath(name string) string {
	return "announce." + name
}

// AnnouncerBase holds the fields shared by all announcers.
type AnnouncerBase struct {
	Activation
	Timeouts
	ExtraProperties ExtraProperties `json:"extra_properties"`
}

func (b *AnnouncerBase) base() *AnnouncerBase {
	return b
}

// NamedBase holds the name of entities kept in a Registry.
type NamedBase struct {
	Name string `json:"name" model:"omit"`
}

func (n *NamedBase) GetName() string {
	return n.Name
}

func (n *NamedBase) SetName(name string) {
	n.Name = name
}

// MessageFields holds an inline message or the path to a message template.
type MessageFields struct {
	Message         string `json:"message"`
	MessageTemplate string `json:"message_template"`
}

// resolve renders the message template file if set, else the inline message.
func (m *MessageFields) resolve(rc RunContext, props map[string]any) (string, error) {
	if m.MessageTemplate != "" {
		return renderTemplateFile(rc, m.MessageTemplate, props)
	}
	return rc.Render(m.Message, props)
}

// renderTemplateFile reads filename, relative to the base dir, and renders it.
func renderTemplateFile(rc RunContext, filename string, props map[string]any) (string, error) {
	p := filename
	if !filepath.IsAbs(p) {
		p = filepath.Join(rc.BaseDir(), p)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", newConfigError(KeyUnexpectedReadingTemplate, err, filename)
	}
	s, err := rc.Render(string(b), props)
	if err != nil {
		return "", newConfigError(KeyUnexpectedReadingTemplate, err, filename)
	}
	return s, nil
}

// templateProps returns the run properties with the extra properties added using prefix.
func templateProps(rc RunContext, prefix string, extra *ExtraProperties) map[string]any {
	props := rc.Props()
	if props == nil {
		props = make(map[string]any)
	}
	for k, v := range extra.Prefixed(prefix) {
		props[k] = v
	}
	return props
}

// structuredMessage wraps message in a JSON object, {"text": "message"} by default.
func structuredMessage(property, message string) (string, error) {
	if property == "" {
		property = "text"
	}
	b, err := json.Marshal(map[string]string{property: message})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
