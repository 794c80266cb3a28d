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
	"github.com/jreleaser/jreleaser/internal/common/templ"
	"github.com/jreleaser/jreleaser/pkg/api"
)

// ExtraProperties is a free form set of properties attached to an entity.
// The zero value is ready to use and keeps insertion order.
type ExtraProperties struct {
	props mapsh.Ordered[string, any]
}

// Set sets key to value.
func (e *ExtraProperties) Set(key string, value any) {
	e.props.Set(key, value)
}

// Get returns the value for key.
func (e *ExtraProperties) Get(key string) (any, bool) {
	return e.props.Get(key)
}

// SetAll replaces all properties with m. Keys are added in sorted order.
func (e *ExtraProperties) SetAll(m map[string]any) {
	e.props = mapsh.Ordered[string, any]{}
	e.AddAll(m)
}

// AddAll adds all entries in m, overwriting existing keys.
func (e *ExtraProperties) AddAll(m map[string]any) {
	for _, k := range mapsh.KeysSorted(m) {
		e.props.Set(k, m[k])
	}
}

// Len returns the number of properties.
func (e *ExtraProperties) Len() int {
	return e.props.Len()
}

// Ordered returns a copy of the properties.
func (e *ExtraProperties) Ordered() *mapsh.Ordered[string, any] {
	return e.props.Clone()
}

// Prefixed returns the properties keyed by prefix followed by the capitalized key,
// e.g. slackChannelColor for the key channelColor and the prefix slack.
func (e *ExtraProperties) Prefixed(prefix string) map[string]any {
	m := make(map[string]any, e.props.Len())
	e.props.Range(func(k string, v any) bool {
		if prefix == "" {
			m[k] = v
		} else {
			m[prefix+templ.Capitalize(k)] = v
		}
		return true
	})
	return m
}

// mergeFrom adds the entries in src that are not already set.
func (e *ExtraProperties) mergeFrom(src any) {
	s := src.(*ExtraProperties)
	if s == e {
		return
	}
	s.props.Range(func(k string, v any) bool {
		e.props.SetIfAbsent(k, v)
		return true
	})
}

func (e *ExtraProperties) decodeMap(m map[string]any, _ decodeFunc) error {
	e.SetAll(m)
	return nil
}

func (e *ExtraProperties) view() api.Map[string, any] {
	return orderedView[any]{o: &e.props}
}
