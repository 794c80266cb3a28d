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
	"golang.org/x/exp/slices"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
	"github.com/jreleaser/jreleaser/pkg/api"
)

type listView[T any] struct {
	s *[]T
}

func (l listView[T]) Len() int { return len(*l.s) }
func (l listView[T]) At(i int) T { return (*l.s)[i] }
func (l listView[T]) All() []T { return slices.Clone(*l.s) }

type mappedListView[T, V any] struct {
	s *[]T
	f func(*T) V
}

func (l mappedListView[T, V]) Len() int { return len(*l.s) }
func (l mappedListView[T, V]) At(i int) V { return l.f(&(*l.s)[i]) }

func (l mappedListView[T, V]) All() []V {
	all := make([]V, len(*l.s))
	for i := range *l.s {
		all[i] = l.At(i)
	}
	return all
}

// goMapView is a view of a Go map with the keys in sorted order.
type goMapView[V any] struct {
	m *map[string]V
}

func (v goMapView[V]) Len() int { return len(*v.m) }

func (v goMapView[V]) Get(k string) (V, bool) {
	val, found := (*v.m)[k]
	return val, found
}

func (v goMapView[V]) Keys() []string { return mapsh.KeysSorted(*v.m) }

func (v goMapView[V]) Range(f func(k string, v V) bool) {
	for _, k := range v.Keys() {
		if !f(k, (*v.m)[k]) {
			return
		}
	}
}

type orderedView[V any] struct {
	o *mapsh.Ordered[string, V]
}

func (v orderedView[V]) Len() int { return v.o.Len() }
func (v orderedView[V]) Get(k string) (V, bool) { return v.o.Get(k) }
func (v orderedView[V]) Keys() []string { return v.o.Keys() }
func (v orderedView[V]) Range(f func(k string, v V) bool) { v.o.Range(f) }

// registryView is a view of a Registry keyed by entity name.
type registryView[E Named, V any] struct {
	r *Registry[E]
	f func(E) V
}

func (v registryView[E, V]) Len() int { return v.r.Len() }

func (v registryView[E, V]) Get(name string) (V, bool) {
	e, found := v.r.Get(name)
	if !found {
		var zero V
		return zero, false
	}
	return v.f(e), true
}

func (v registryView[E, V]) Keys() []string { return v.r.Names() }

func (v registryView[E, V]) Range(f func(k string, v V) bool) {
	for _, e := range v.r.All() {
		if !f(e.GetName(), v.f(e)) {
			return
		}
	}
}

func newRegistryView[E Named, V any](r *Registry[E], f func(E) V) api.Map[string, V] {
	return registryView[E, V]{r: r, f: f}
}

// Shared building blocks for the entity views.

type activatableView struct {
	a *Activation
}

func (v activatableView) Active() string {
	if v.a.Active.IsZero() {
		return ""
	}
	return v.a.Active.String()
}

type extraView struct {
	e *ExtraProperties
}

func (v extraView) ExtraProperties() api.Map[string, any] {
	return v.e.view()
}

type timeoutsView struct {
	t *Timeouts
}

func (v timeoutsView) ConnectTimeout() int { return v.t.ConnectTimeoutOr(0) }
func (v timeoutsView) ReadTimeout() int { return v.t.ReadTimeoutOr(0) }

type commitAuthorView struct {
	c *CommitAuthor
}

func (v commitAuthorView) Name() string { return v.c.Name }
func (v commitAuthorView) Email() string { return v.c.Email }

type announcerView struct {
	activatableView
	extraView
	timeoutsView
	name, typ string
}

func newAnnouncerView(b *AnnouncerBase, name, typ string) announcerView {
	return announcerView{
		activatableView: activatableView{a: &b.Activation},
		extraView:       extraView{e: &b.ExtraProperties},
		timeoutsView:    timeoutsView{t: &b.Timeouts},
		name:            name,
		typ:             typ,
	}
}

func (v announcerView) Name() string { return v.name }
func (v announcerView) Type() string { return v.typ }

type messageAnnouncerView struct {
	announcerView
	m *MessageFields
}

func newMessageAnnouncerView(b *AnnouncerBase, name, typ string, m *MessageFields) messageAnnouncerView {
	return messageAnnouncerView{announcerView: newAnnouncerView(b, name, typ), m: m}
}

func (v messageAnnouncerView) Message() string { return v.m.Message }
func (v messageAnnouncerView) MessageTemplate() string { return v.m.MessageTemplate }

type webhookAnnouncerView struct {
	messageAnnouncerView
	webhook *string
}

func newWebhookAnnouncerView(b *AnnouncerBase, name, typ string, m *MessageFields, webhook *string) webhookAnnouncerView {
	return webhookAnnouncerView{messageAnnouncerView: newMessageAnnouncerView(b, name, typ, m), webhook: webhook}
}

func (v webhookAnnouncerView) Webhook() string { return *v.webhook }
