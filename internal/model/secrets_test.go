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
)

func TestSecrets(t *testing.T) {
	c := qt.New(t)

	m := New()
	c.Assert(Secrets(m), qt.HasLen, 0)

	m.Release.Github = NewGithub()
	m.Release.Github.Token = "ghp_token"
	m.Announce.Twitter.ConsumerSecret = "consumer-secret"
	m.Announce.Twitter.AccessToken = " ghp_token "
	m.Announce.Slack.Webhook = "   "

	w := NewWebhook("events")
	w.Webhook = "https://hooks.example.org/abc"
	c.Assert(m.Announce.Webhooks.Add(w), qt.IsNil)

	s3 := NewS3Uploader("bucket")
	s3.SecretKey = "s3-secret"
	c.Assert(m.Upload.S3.Add(s3), qt.IsNil)

	c.Assert(Secrets(m), qt.DeepEquals, []string{
		"consumer-secret",
		"ghp_token",
		"https://hooks.example.org/abc",
		"s3-secret",
	})
}
