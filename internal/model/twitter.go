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
	"strings"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
	"github.com/jreleaser/jreleaser/pkg/api"
)

// Twitter posts one status or a thread of statuses.
type Twitter struct {
	AnnouncerBase
	ConsumerKey       string   `json:"consumer_key" model:"secret"`
	ConsumerSecret    string   `json:"consumer_secret" model:"secret"`
	AccessToken       string   `json:"access_token" model:"secret"`
	AccessTokenSecret string   `json:"access_token_secret" model:"secret"`
	Status            string   `json:"status"`
	Statuses          []string `json:"statuses" model:"replace"`
	StatusTemplate    string   `json:"status_template"`

	immutable api.Twitter
}

func (a *Twitter) Type() string { return TwitterName }
func (a *Twitter) GetName() string { return TwitterName }
func (a *Twitter) ConfigPath() string { return announcePath(TwitterName) }

func (a *Twitter) IsEnabled(rc RunContext) bool {
	return a.Activation.IsEnabled(rc, a.ConfigPath())
}

// Merge fills in the unset fields in a from src.
func (a *Twitter) Merge(src *Twitter) {
	Merge(a, src)
}

func (a *Twitter) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	return AsMap(rc, a, full)
}

// ResolvedStatuses renders the statuses to post in order.
// The status template wins over the statuses, which win over the single status.
// A status template is split into statuses on blank lines.
func (a *Twitter) ResolvedStatuses(rc RunContext) ([]string, error) {
	props := templateProps(rc, TwitterName, &a.ExtraProperties)
	if a.StatusTemplate != "" {
		s, err := renderTemplateFile(rc, a.StatusTemplate, props)
		if err != nil {
			return nil, err
		}
		var statuses []string
		for _, part := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
			if part = strings.TrimSpace(part); part != "" {
				statuses = append(statuses, part)
			}
		}
		return statuses, nil
	}
	sources := a.Statuses
	if len(sources) == 0 {
		sources = []string{a.Status}
	}
	statuses := make([]string, 0, len(sources))
	for _, src := range sources {
		s, err := rc.Render(src, props)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}

func (a *Twitter) AsImmutable() api.Twitter {
	if a.immutable == nil {
		a.immutable = twitterView{
			announcerView: newAnnouncerView(&a.AnnouncerBase, TwitterName, TwitterName),
			a:             a,
		}
	}
	return a.immutable
}

type twitterView struct {
	announcerView
	a *Twitter
}

func (v twitterView) ConsumerKey() string { return v.a.ConsumerKey }
func (v twitterView) ConsumerSecret() string { return v.a.ConsumerSecret }
func (v twitterView) AccessToken() string { return v.a.AccessToken }
func (v twitterView) AccessTokenSecret() string { return v.a.AccessTokenSecret }
func (v twitterView) Status() string { return v.a.Status }
func (v twitterView) Statuses() api.List[string] { return listView[string]{s: &v.a.Statuses} }
func (v twitterView) StatusTemplate() string { return v.a.StatusTemplate }
