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
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/bep/helpers/envhelpers"
	"github.com/jreleaser/jreleaser/internal/model"
)

// EnvPrefix is the prefix of all environment variables read by JReleaser.
const EnvPrefix = "JRELEASER"

// LookupFunc looks up the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// LoadEnvFile reads KEY=VALUE lines from filename.
// Blank lines and lines starting with # are skipped, values may be quoted.
func LoadEnvFile(filename string) (map[string]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	env := make(map[string]string)
	sc := bufio.NewScanner(f)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		if !strings.Contains(line, "=") {
			return nil, fmt.Errorf("%s:%d: expected KEY=VALUE", filename, lineNo)
		}
		k, v := envhelpers.SplitEnvVar(line)
		env[strings.TrimSpace(k)] = strings.Trim(strings.TrimSpace(v), `"'`)
	}
	return env, sc.Err()
}

// Lookup returns a LookupFunc that looks in the OS environment first,
// then in the given env file values.
func Lookup(fileEnv map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		if v, found := os.LookupEnv(key); found {
			return v, true
		}
		v, found := fileEnv[key]
		return v, found
	}
}

// EnvKey returns the environment variable for the given key parts,
// e.g. EnvKey("google chat", "webhook") => JRELEASER_GOOGLE_CHAT_WEBHOOK.
func EnvKey(parts ...string) string {
	key := EnvPrefix
	for _, p := range parts {
		key += "_" + strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return unicode.ToUpper(r)
			}
			return '_'
		}, camelToSnake(p))
	}
	return key
}

func camelToSnake(s string) string {
	var b strings.Builder
	var prev rune
	for _, r := range s {
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) {
			b.WriteByte('_')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

type envBinding struct {
	key string
	set func(m *model.JReleaserModel, v string)
}

var envBindings = []envBinding{
	{EnvKey("project", "name"), func(m *model.JReleaserModel, v string) { m.Project.Name = v }},
	{EnvKey("project", "version"), func(m *model.JReleaserModel, v string) { m.Project.Version = v }},
	{EnvKey("project", "versionPattern"), func(m *model.JReleaserModel, v string) { m.Project.VersionPattern = v }},
	{EnvKey("project", "snapshot", "pattern"), func(m *model.JReleaserModel, v string) { m.Project.Snapshot.Pattern = v }},
	{EnvKey("gpg", "publicKey"), func(m *model.JReleaserModel, v string) { m.Signing.PublicKey = v }},
	{EnvKey("gpg", "secretKey"), func(m *model.JReleaserModel, v string) { m.Signing.SecretKey = v }},
	{EnvKey("gpg", "passphrase"), func(m *model.JReleaserModel, v string) { m.Signing.Passphrase = v }},
	{EnvKey(model.DiscordName, "webhook"), func(m *model.JReleaserModel, v string) { m.Announce.Discord.Webhook = v }},
	{EnvKey(model.GitterName, "webhook"), func(m *model.JReleaserModel, v string) { m.Announce.Gitter.Webhook = v }},
	{EnvKey("googleChat", "webhook"), func(m *model.JReleaserModel, v string) { m.Announce.GoogleChat.Webhook = v }},
	{EnvKey(model.MastodonName, "accessToken"), func(m *model.JReleaserModel, v string) { m.Announce.Mastodon.AccessToken = v }},
	{EnvKey(model.MattermostName, "webhook"), func(m *model.JReleaserModel, v string) { m.Announce.Mattermost.Webhook = v }},
	{EnvKey(model.SlackName, "token"), func(m *model.JReleaserModel, v string) { m.Announce.Slack.Token = v }},
	{EnvKey(model.SlackName, "webhook"), func(m *model.JReleaserModel, v string) { m.Announce.Slack.Webhook = v }},
	{EnvKey(model.MailName, "password"), func(m *model.JReleaserModel, v string) { m.Announce.SMTP.Password = v }},
	{EnvKey(model.TeamsName, "webhook"), func(m *model.JReleaserModel, v string) { m.Announce.Teams.Webhook = v }},
	{EnvKey(model.TelegramName, "token"), func(m *model.JReleaserModel, v string) { m.Announce.Telegram.Token = v }},
	{EnvKey(model.TelegramName, "chatId"), func(m *model.JReleaserModel, v string) { m.Announce.Telegram.ChatID = v }},
	{EnvKey(model.TwitterName, "consumerKey"), func(m *model.JReleaserModel, v string) { m.Announce.Twitter.ConsumerKey = v }},
	{EnvKey(model.TwitterName, "consumerSecret"), func(m *model.JReleaserModel, v string) { m.Announce.Twitter.ConsumerSecret = v }},
	{EnvKey(model.TwitterName, "accessToken"), func(m *model.JReleaserModel, v string) { m.Announce.Twitter.AccessToken = v }},
	{EnvKey(model.TwitterName, "accessTokenSecret"), func(m *model.JReleaserModel, v string) { m.Announce.Twitter.AccessTokenSecret = v }},
	{EnvKey(model.ZulipName, "apiKey"), func(m *model.JReleaserModel, v string) { m.Announce.Zulip.APIKey = v }},
	{EnvKey(model.BrewName, "github", "token"), func(m *model.JReleaserModel, v string) { m.Packagers.Brew.Tap.Token = v }},
	{EnvKey(model.ScoopName, "github", "token"), func(m *model.JReleaserModel, v string) { m.Packagers.Scoop.Bucket.Token = v }},
}

// EnvLayer builds the environment config layer.
// The git service and the named uploaders, downloaders and announcers
// configured in base decide which per entity variables are looked up,
// e.g. JRELEASER_GITHUB_TOKEN or JRELEASER_S3_RELEASES_SECRET_KEY.
func EnvLayer(base *model.JReleaserModel, lookup LookupFunc) *model.JReleaserModel {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	m := model.New()

	get := func(key string) (string, bool) {
		v, found := lookup(key)
		if !found || strings.TrimSpace(v) == "" {
			return "", false
		}
		return v, true
	}

	for _, b := range envBindings {
		if v, found := get(b.key); found {
			b.set(m, v)
		}
	}

	if base == nil {
		return m
	}

	if g := base.Release.GitService(); g != nil {
		svc := g.ServiceName()
		layer := &model.GitService{}
		var set bool
		if v, found := get(EnvKey(svc, "token")); found {
			layer.Token, set = v, true
		}
		if v, found := get(EnvKey(svc, "username")); found {
			layer.Username, set = v, true
		}
		if set {
			switch svc {
			case model.GithubName:
				m.Release.Github = layer
			case model.GitlabName:
				m.Release.Gitlab = layer
			case model.GiteaName:
				m.Release.Gitea = layer
			}
		}
	}

	named := func(typ, name string, fields map[string]*string) bool {
		var set bool
		for field, dst := range fields {
			if v, found := get(EnvKey(typ, name, field)); found {
				*dst, set = v, true
			}
		}
		return set
	}

	for _, w := range base.Announce.Webhooks.All() {
		e := model.NewWebhook(w.Name)
		if named("webhook", w.Name, map[string]*string{"webhook": &e.Webhook}) {
			_ = m.Announce.Webhooks.Add(e)
		}
	}
	for _, h := range base.Announce.HTTP.All() {
		e := model.NewHTTPAnnouncer(h.Name)
		if named("announce_http", h.Name, map[string]*string{"username": &e.Username, "password": &e.Password}) {
			_ = m.Announce.HTTP.Add(e)
		}
	}
	for _, u := range base.Upload.HTTP.All() {
		e := model.NewHTTPUploader(u.Name)
		if named(model.HTTPName, u.Name, map[string]*string{"username": &e.Username, "password": &e.Password}) {
			_ = m.Upload.HTTP.Add(e)
		}
	}
	for _, u := range base.Upload.S3.All() {
		e := model.NewS3Uploader(u.Name)
		if named(model.S3Name, u.Name, map[string]*string{
			"accessKeyId":  &e.AccessKeyID,
			"secretKey":    &e.SecretKey,
			"sessionToken": &e.SessionToken,
		}) {
			_ = m.Upload.S3.Add(e)
		}
	}
	for _, u := range base.Upload.Artifactory.All() {
		e := model.NewArtifactoryUploader(u.Name)
		if named(model.ArtifactoryName, u.Name, map[string]*string{"username": &e.Username, "password": &e.Password}) {
			_ = m.Upload.Artifactory.Add(e)
		}
	}
	for _, d := range base.Download.FTP.All() {
		e := model.NewFTPDownloader(d.Name)
		if named(model.FTPName, d.Name, map[string]*string{"username": &e.Username, "password": &e.Password}) {
			_ = m.Download.FTP.Add(e)
		}
	}
	for _, d := range base.Download.HTTP.All() {
		e := model.NewHTTPDownloader(d.Name)
		if named("download_http", d.Name, map[string]*string{"username": &e.Username, "password": &e.Password}) {
			_ = m.Download.HTTP.Add(e)
		}
	}

	return m
}
