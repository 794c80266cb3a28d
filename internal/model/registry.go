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
	"reflect"
	"strings"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
)

// Named is implemented by entities that live in a Registry.
type Named interface {
	Mapper
	GetName() string
	SetName(name string)
}

// Registry holds named entities of the same kind in insertion order.
// Names are matched case insensitive. The zero value is ready to use.
type Registry[E Named] struct {
	entries mapsh.Ordered[string, E]
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add adds e to the registry.
// If an entity with the same name exists, e is merged into it with the existing values winning.
func (r *Registry[E]) Add(e E) error {
	key := normalizeName(e.GetName())
	if key == "" {
		return newConfigError(KeyBlankName, nil, kindOf[E]())
	}
	if existing, found := r.entries.Get(key); found {
		mergeAny(existing, e)
		return nil
	}
	r.entries.Set(key, e)
	return nil
}

// Get returns the entity with the given name.
func (r *Registry[E]) Get(name string) (E, bool) {
	return r.entries.Get(normalizeName(name))
}

// FindByName is like Get but returns a ConfigError if name is blank or not found.
func (r *Registry[E]) FindByName(name string) (E, error) {
	var zero E
	key := normalizeName(name)
	if key == "" {
		return zero, newConfigError(KeyBlankName, nil, kindOf[E]())
	}
	e, found := r.entries.Get(key)
	if !found {
		return zero, newConfigError(KeyNotFound, nil, kindOf[E](), name)
	}
	return e, nil
}

// Len returns the number of entities.
func (r *Registry[E]) Len() int {
	return r.entries.Len()
}

// All returns the entities in insertion order.
func (r *Registry[E]) All() []E {
	all := make([]E, 0, r.entries.Len())
	r.entries.Range(func(_ string, e E) bool {
		all = append(all, e)
		return true
	})
	return all
}

// Names returns the names of the entities in insertion order.
func (r *Registry[E]) Names() []string {
	names := make([]string, 0, r.entries.Len())
	r.entries.Range(func(_ string, e E) bool {
		names = append(names, e.GetName())
		return true
	})
	return names
}

// Merge merges src into r by name.
// Entities only in src are copied, entities in both are merged with r's values winning.
func (r *Registry[E]) Merge(src *Registry[E]) {
	if src == nil || src == r {
		return
	}
	src.entries.Range(func(key string, e E) bool {
		if existing, found := r.entries.Get(key); found {
			mergeAny(existing, e)
		} else {
			c := newEntity[E]()
			mergeAny(c, e)
			r.entries.Set(key, c)
		}
		return true
	})
}

func (r *Registry[E]) mergeFrom(src any) {
	r.Merge(src.(*Registry[E]))
}

// AsMap returns the entities keyed by name, see AsMap.
func (r *Registry[E]) AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any] {
	m := mapsh.NewOrdered[string, any]()
	r.entries.Range(func(_ string, e E) bool {
		em := e.AsMap(rc, full)
		if em.Len() > 0 || full {
			m.Set(e.GetName(), em)
		}
		return true
	})
	return m
}

func (r *Registry[E]) decodeMap(m map[string]any, decode decodeFunc) error {
	for _, name := range mapsh.KeysSorted(m) {
		e := newEntity[E]()
		if err := decode(m[name], e); err != nil {
			return err
		}
		if strings.TrimSpace(e.GetName()) == "" {
			e.SetName(name)
		}
		if err := r.Add(e); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry[E]) entityType() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

func newEntity[E any]() E {
	t := reflect.TypeOf((*E)(nil)).Elem()
	return reflect.New(t.Elem()).Interface().(E)
}

func kindOf[E any]() string {
	t := reflect.TypeOf((*E)(nil)).Elem()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return strings.ToLower(t.Name())
}

func (r *Registry[E]) entityValues() []any {
	values := make([]any, 0, r.entries.Len())
	r.entries.Range(func(_ string, e E) bool {
		values = append(values, e)
		return true
	})
	return values
}
