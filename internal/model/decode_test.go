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
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/jreleaser/jreleaser/internal/model/active"
	"github.com/jreleaser/jreleaser/internal/model/httptypes"
	"github.com/jreleaser/jreleaser/internal/model/mailtypes"
)

func TestFromMap(t *testing.T) {
	c := qt.New(t)

	m, err := FromMap(map[string]any{
		"project": map[string]any{
			"name":    "app",
			"version": "1.2.3",
			"authors": []any{"Jane", "John"},
		},
		"release": map[string]any{
			"github": map[string]any{
				"owner":        "jreleaser",
				"commitAuthor": map[string]any{"name": "bot"},
			},
		},
		"announce": map[string]any{
			"active": "always",
			"slack": map[string]any{
				"active":          "release",
				"connectTimeout":  "20",
				"channel":         "#releases",
				"extraProperties": map[string]any{"someKey": "v"},
			},
			"mail": map[string]any{
				"transport": "smtps",
				"mime_type": "html",
			},
			"webhooks": map[string]any{
				"Zeta":  map[string]any{"webhook": "https://z.example.com"},
				"alpha": map[string]any{"webhook": "https://a.example.com", "structured-message": true},
			},
		},
		"upload": map[string]any{
			"http": map[string]any{
				"nexus": map[string]any{
					"active":    "always",
					"uploadUrl": "https://nexus.example.com",
					"method":    "post",
					"headers":   map[string]any{"X-Some_Header": "v"},
				},
			},
		},
		"download": map[string]any{
			"http": map[string]any{
				"assets": map[string]any{
					"assets": []any{
						map[string]any{"input": "https://example.com/a.zip", "unpack": map[string]any{"skipRootEntry": true}},
					},
				},
			},
		},
	})
	c.Assert(err, qt.IsNil)

	c.Assert(m.Project.Authors, qt.DeepEquals, []string{"Jane", "John"})
	c.Assert(m.Release.Github.Owner, qt.Equals, "jreleaser")
	c.Assert(m.Release.Github.CommitAuthor.Name, qt.Equals, "bot")
	c.Assert(m.Announce.Active, qt.Equals, active.Always)
	c.Assert(m.Announce.Slack.Active, qt.Equals, active.Release)
	c.Assert(*m.Announce.Slack.ConnectTimeout, qt.Equals, 20)
	c.Assert(m.Announce.Slack.Channel, qt.Equals, "#releases")
	v, _ := m.Announce.Slack.ExtraProperties.Get("someKey")
	c.Assert(v, qt.Equals, "v")
	c.Assert(m.Announce.SMTP.Transport, qt.Equals, mailtypes.SMTPS)
	c.Assert(m.Announce.SMTP.MimeType, qt.Equals, mailtypes.HTML)
	c.Assert(m.Announce.Webhooks.Names(), qt.DeepEquals, []string{"Zeta", "alpha"})
	alpha, err := m.Announce.Webhooks.FindByName("ALPHA")
	c.Assert(err, qt.IsNil)
	c.Assert(*alpha.StructuredMessage, qt.IsTrue)

	nexus, err := m.Upload.HTTP.FindByName("nexus")
	c.Assert(err, qt.IsNil)
	c.Assert(nexus.UploadURL, qt.Equals, "https://nexus.example.com")
	c.Assert(nexus.Method, qt.Equals, httptypes.POST)
	c.Assert(nexus.Headers, qt.DeepEquals, map[string]string{"X-Some_Header": "v"})

	assets, err := m.Download.HTTP.FindByName("assets")
	c.Assert(err, qt.IsNil)
	c.Assert(assets.Assets, qt.HasLen, 1)
	c.Assert(*assets.Assets[0].Unpack.SkipRootEntry, qt.IsTrue)
}

func TestFromMapLegacyEnabled(t *testing.T) {
	c := qt.New(t)

	rc := newTestContext()

	m, err := FromMap(map[string]any{
		"announce": map[string]any{
			"enabled": true,
			"discord": map[string]any{"enabled": "false"},
		},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(m.Announce.IsEnabled(rc), qt.IsTrue)
	c.Assert(m.Announce.Discord.IsEnabled(rc), qt.IsFalse)
	c.Assert(m.Announce.Discord.IsActiveSet(), qt.IsTrue)

	m.Migrate(rc)
	c.Assert(m.Announce.Active, qt.Equals, active.Always)
	c.Assert(m.Announce.Discord.Active, qt.Equals, active.Never)
}

func TestFromMapErrors(t *testing.T) {
	c := qt.New(t)

	_, err := FromMap(map[string]any{
		"announce": map[string]any{"slack": map[string]any{"active": "sometimes"}},
	})
	c.Assert(err, qt.ErrorMatches, `(?s)failed to decode config: .*invalid active value "sometimes".*`)

	_, err = FromMap(map[string]any{
		"announce": map[string]any{"slack": map[string]any{"chanel": "#typo"}},
	})
	c.Assert(err, qt.ErrorMatches, `(?s)failed to decode config: .*chanel.*`)

	_, err = FromMap(map[string]any{
		"announce": map[string]any{"pigeon": map[string]any{}},
	})
	c.Assert(err, qt.ErrorMatches, `(?s)failed to decode config: .*pigeon.*`)

	_, err = FromMap(map[string]any{
		"announce": map[string]any{"webhooks": map[string]any{" ": map[string]any{}}},
	})
	c.Assert(err, qt.ErrorMatches, `(?s)failed to decode config: .*webhook name must not be blank.*`)
}

func TestNormalizeKeys(t *testing.T) {
	c := qt.New(t)

	m := NormalizeKeys(map[string]any{
		"announce": map[string]any{
			"Mail": map[string]any{"mimeType": "TEXT"},
			"googleChat": map[string]any{
				"messageTemplate": "t.tpl",
				"extra_properties": map[string]any{"fooBar": 1},
			},
		},
		"unknownKey": 1,
	})

	c.Assert(m, qt.DeepEquals, map[string]any{
		"announce": map[string]any{
			"smtp": map[string]any{"mime_type": "TEXT"},
			"google_chat": map[string]any{
				"message_template": "t.tpl",
				"extra_properties": map[string]any{"fooBar": 1},
			},
		},
		"unknownKey": 1,
	})
}

func TestNormalizeKeysAliasCollision(t *testing.T) {
	c := qt.New(t)

	for i := 0; i < 20; i++ {
		m := NormalizeKeys(map[string]any{
			"announce": map[string]any{
				"mail": map[string]any{"host": "mail.example.org", "port": 25, "mimeType": "HTML"},
				"smtp": map[string]any{"host": "smtp.example.org", "port": 465},
				"SMTP": map[string]any{"host": "upper.example.org", "username": "u"},
			},
		})

		c.Assert(m, qt.DeepEquals, map[string]any{
			"announce": map[string]any{
				"smtp": map[string]any{
					"host":      "smtp.example.org",
					"port":      465,
					"mime_type": "HTML",
					"username":  "u",
				},
			},
		})
	}
}
