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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
	"github.com/jreleaser/jreleaser/internal/common/templ"
	"github.com/jreleaser/jreleaser/internal/model"
	"github.com/jreleaser/jreleaser/internal/model/active"
	"github.com/jreleaser/jreleaser/internal/model/mailtypes"
	"github.com/jreleaser/jreleaser/staticfiles"
)

type testContext struct{}

func (testContext) IsSnapshot() bool { return false }
func (testContext) IsPrerelease() bool { return false }
func (testContext) BaseDir() string { return "" }
func (testContext) Props() map[string]any { return map[string]any{"projectName": "app"} }
func (testContext) Deprecated(path, message string) {}
func (testContext) Render(tmpl string, props map[string]any) (string, error) {
	return templ.Sprintt(tmpl, props)
}

func lookupMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, found := m[key]
		return v, found
	}
}

var testLookup = lookupMap(map[string]string{
	"TEST_GITHUB_TOKEN": "ghp_test",
	"TEST_HOOK_ID":      "42",
})

func TestLoadFileFormats(t *testing.T) {
	c := qt.New(t)

	var maps []any
	for _, name := range []string{"jreleaser.yml", "jreleaser.toml", "jreleaser.json"} {
		c.Run(name, func(c *qt.C) {
			m, err := LoadFile(filepath.Join("testdata", name), testLookup)
			c.Assert(err, qt.IsNil)

			c.Assert(m.Project.Name, qt.Equals, "app")
			c.Assert(m.Project.Authors, qt.DeepEquals, []string{"Jane Doe"})
			team, _ := m.Project.ExtraProperties.Get("team")
			c.Assert(team, qt.Equals, "core")
			c.Assert(m.Release.Github.Token, qt.Equals, "ghp_test")
			c.Assert(m.Announce.Active, qt.Equals, active.Always)
			c.Assert(*m.Announce.Slack.ConnectTimeout, qt.Equals, 20)
			c.Assert(m.Announce.SMTP.Host, qt.Equals, "smtp.example.com")
			c.Assert(*m.Announce.SMTP.Enabled, qt.IsTrue)

			chat, err := m.Announce.Webhooks.FindByName("chat")
			c.Assert(err, qt.IsNil)
			c.Assert(chat.Webhook, qt.Equals, "https://chat.example.com/hooks/42")
			c.Assert(chat.Message, qt.Equals, "{{ $n := .projectName }}{{ $n }} released")
			c.Assert(*chat.StructuredMessage, qt.IsTrue)

			nexus, err := m.Upload.HTTP.FindByName("nexus")
			c.Assert(err, qt.IsNil)
			c.Assert(nexus.Username, qt.Equals, "deployer")

			maps = append(maps, mapsh.ToNested(m.AsMap(testContext{}, true)))
		})
	}

	c.Assert(maps, qt.HasLen, 3)
	c.Assert(maps[1], qt.DeepEquals, maps[0])
	c.Assert(maps[2], qt.DeepEquals, maps[0])
}

func TestLoadFileErrors(t *testing.T) {
	c := qt.New(t)

	dir := t.TempDir()
	write := func(name, content string) string {
		filename := filepath.Join(dir, name)
		c.Assert(os.WriteFile(filename, []byte(content), 0o644), qt.IsNil)
		return filename
	}

	_, err := LoadFile(write("bad.toml", "[project\nname = 1"), nil)
	c.Assert(err, qt.ErrorMatches, `(?s)error decoding config file ".*bad.toml":1:\d+ .*`)

	_, err = LoadFile(write("unknown.yml", "project:\n  nme: app\n"), nil)
	c.Assert(err, qt.ErrorMatches, `(?s)error decoding config file .*nme.*`)

	_, err = LoadFile(write("enum.yml", "announce:\n  slack:\n    active: sometimes\n"), nil)
	c.Assert(err, qt.ErrorMatches, `(?s).*invalid active value "sometimes".*`)

	_, err = LoadFile(write("config.ini", ""), nil)
	c.Assert(err, qt.ErrorMatches, `unsupported config file format ".ini"`)

	_, err = LoadFile(filepath.Join(dir, "missing.yml"), nil)
	c.Assert(errors.Is(err, os.ErrNotExist), qt.IsTrue)

	m, err := LoadFile(write("empty.yml", ""), nil)
	c.Assert(err, qt.IsNil)
	c.Assert(m.Project.Name, qt.Equals, "")
}

func TestFindFile(t *testing.T) {
	c := qt.New(t)

	dir := t.TempDir()
	_, err := FindFile(dir)
	c.Assert(err, qt.Equals, ErrNoConfigFile)

	c.Assert(os.WriteFile(filepath.Join(dir, "jreleaser.toml"), nil, 0o644), qt.IsNil)
	c.Assert(os.WriteFile(filepath.Join(dir, "jreleaser.yml"), nil, 0o644), qt.IsNil)
	filename, err := FindFile(dir)
	c.Assert(err, qt.IsNil)
	c.Assert(filepath.Base(filename), qt.Equals, "jreleaser.yml")
}

func TestExpand(t *testing.T) {
	c := qt.New(t)

	lookup := lookupMap(map[string]string{"A": "1", "B_2": "two"})
	c.Assert(string(Expand([]byte("${A}-${B_2}-${C}-$A-{{ $x }}"), lookup)), qt.Equals, "1-two--$A-{{ $x }}")
}

func TestLoad(t *testing.T) {
	c := qt.New(t)

	cli := model.New()
	cli.Project.Version = "3.0.0"

	m, err := Load(Options{
		ConfigFile: "jreleaser.yml",
		BaseDir:    "testdata",
		CLI:        cli,
		Lookup: lookupMap(map[string]string{
			"TEST_GITHUB_TOKEN":              "ghp_file",
			"JRELEASER_GITHUB_TOKEN":         "ghp_env",
			"JRELEASER_PROJECT_VERSION":      "2.0.0",
			"JRELEASER_SLACK_WEBHOOK":        "https://hooks.slack.com/x",
			"JRELEASER_HTTP_NEXUS_PASSWORD":  "secret",
			"JRELEASER_WEBHOOK_CHAT_WEBHOOK": "https://env.example.com",
			"JRELEASER_TELEGRAM_TOKEN":       " ",
		}),
	})
	c.Assert(err, qt.IsNil)

	c.Assert(m.Project.Version, qt.Equals, "3.0.0")
	c.Assert(m.Project.Snapshot.Pattern, qt.Equals, model.DefaultSnapshotPattern)

	g := m.Release.GitService()
	c.Assert(g, qt.Not(qt.IsNil))
	c.Assert(g.Token, qt.Equals, "ghp_env")
	c.Assert(g.Owner, qt.Equals, "jreleaser")
	c.Assert(g.TagName, qt.Equals, "v{{ .projectVersion }}")

	c.Assert(m.Announce.Slack.Webhook, qt.Equals, "https://hooks.slack.com/x")
	c.Assert(m.Announce.Slack.Message, qt.Equals, staticfiles.DefaultAnnouncement)
	c.Assert(m.Announce.Telegram.Token, qt.Equals, "")
	c.Assert(m.Announce.SMTP.MimeType, qt.Equals, mailtypes.Text)

	chat, err := m.Announce.Webhooks.FindByName("chat")
	c.Assert(err, qt.IsNil)
	c.Assert(chat.Webhook, qt.Equals, "https://env.example.com")
	c.Assert(chat.MessageProperty, qt.Equals, "text")
	c.Assert(strings.Contains(chat.Message, "$n"), qt.IsTrue)

	nexus, err := m.Upload.HTTP.FindByName("nexus")
	c.Assert(err, qt.IsNil)
	c.Assert(nexus.Password, qt.Equals, "secret")
	c.Assert(nexus.Username, qt.Equals, "deployer")

	c.Assert(cli.Release.Github, qt.IsNil)
}

func TestLoadNoConfigFile(t *testing.T) {
	c := qt.New(t)

	_, err := Load(Options{BaseDir: t.TempDir()})
	c.Assert(errors.Is(err, ErrNoConfigFile), qt.IsTrue)

	cli := model.New()
	cli.Project.Name = "app"
	m, err := Load(Options{NoConfigFile: true, CLI: cli, Lookup: lookupMap(nil)})
	c.Assert(err, qt.IsNil)
	c.Assert(m.Project.Name, qt.Equals, "app")
}

func TestLoadEnvFile(t *testing.T) {
	c := qt.New(t)

	env, err := LoadEnvFile(filepath.Join("testdata", "jreleaser.env"))
	c.Assert(err, qt.IsNil)
	c.Assert(env, qt.DeepEquals, map[string]string{
		"JRELEASER_SLACK_TOKEN":     "xoxb-from-file",
		"JRELEASER_PROJECT_VERSION": "9.9.9",
	})

	lookup := Lookup(env)
	v, found := lookup("JRELEASER_SLACK_TOKEN")
	c.Assert(found, qt.IsTrue)
	c.Assert(v, qt.Equals, "xoxb-from-file")
}

func TestEnvKey(t *testing.T) {
	c := qt.New(t)

	c.Assert(EnvKey("github", "token"), qt.Equals, "JRELEASER_GITHUB_TOKEN")
	c.Assert(EnvKey("googleChat", "webhook"), qt.Equals, "JRELEASER_GOOGLE_CHAT_WEBHOOK")
	c.Assert(EnvKey("s3", "my-bucket", "accessKeyId"), qt.Equals, "JRELEASER_S3_MY_BUCKET_ACCESS_KEY_ID")
	c.Assert(EnvKey("http", "NEXUS", "password"), qt.Equals, "JRELEASER_HTTP_NEXUS_PASSWORD")
}
