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
	"sort"
	"strings"
	"sync"
)

// entityTyper is implemented by containers of named entities.
type entityTyper interface {
	entityType() reflect.Type
}

var entityTyperType = reflect.TypeOf((*entityTyper)(nil)).Elem()

// keyAliases maps alternative keys to their canonical key per struct type.
var keyAliases = map[reflect.Type]map[string]string{
	reflect.TypeOf(Announce{}): {MailName: SMTPName},
}

var fieldKeysCache sync.Map // reflect.Type => map[string]string

// NormalizeKeys returns a copy of m with the keys of struct fields rewritten to
// their json tag names, so camelCase, kebab-case and snake_case keys are all accepted.
// Keys naming map entries, e.g. registry names or extra properties, are kept as is.
func NormalizeKeys(m map[string]any) map[string]any {
	return normalizeMap(m, reflect.TypeOf(JReleaserModel{}))
}

func normalizeMap(m map[string]any, t reflect.Type) map[string]any {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	out := make(map[string]any, len(m))

	switch {
	case t == extraPropertiesType:
		for k, v := range m {
			out[k] = v
		}
		return out
	case reflect.PtrTo(t).Implements(entityTyperType):
		et := reflect.New(t).Interface().(entityTyper).entityType()
		for k, v := range m {
			out[k] = normalizeValue(v, et)
		}
		return out
	case t.Kind() == reflect.Map:
		for k, v := range m {
			out[k] = normalizeValue(v, t.Elem())
		}
		return out
	case t.Kind() != reflect.Struct:
		return m
	}

	keys := fieldKeys(t)
	aliases := keyAliases[t]

	type entry struct {
		key       string
		f         fieldKey
		canonical bool
	}
	entries := make([]entry, 0, len(m))
	for k, v := range m {
		key := k
		if alias, found := aliases[normalizeName(k)]; found {
			key = alias
		}
		f, found := keys[foldKey(key)]
		if !found {
			// Left for the decoder to report.
			out[k] = v
			continue
		}
		entries = append(entries, entry{key: k, f: f, canonical: k == f.name})
	}

	// Keys spelling the same field, e.g. mail and smtp, are merged with
	// the canonical spelling first, then the rest in sorted order.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].canonical != entries[j].canonical {
			return entries[i].canonical
		}
		return entries[i].key < entries[j].key
	})
	for _, e := range entries {
		v := normalizeValue(m[e.key], e.f.typ)
		if existing, found := out[e.f.name]; found {
			v = mergeKeyMaps(existing, v)
		}
		out[e.f.name] = v
	}
	return out
}

// mergeKeyMaps adds the entries in src missing in dst.
// If either is not a map, dst is returned.
func mergeKeyMaps(dst, src any) any {
	dm, ok1 := dst.(map[string]any)
	sm, ok2 := src.(map[string]any)
	if !ok1 || !ok2 {
		return dst
	}
	out := make(map[string]any, len(dm)+len(sm))
	for k, v := range dm {
		out[k] = v
	}
	for k, v := range sm {
		if existing, found := out[k]; found {
			out[k] = mergeKeyMaps(existing, v)
			continue
		}
		out[k] = v
	}
	return out
}

func normalizeValue(v any, t reflect.Type) any {
	switch vv := v.(type) {
	case map[string]any:
		return normalizeMap(vv, t)
	case map[any]any:
		m := make(map[string]any, len(vv))
		for k, e := range vv {
			s, ok := k.(string)
			if !ok {
				return v
			}
			m[s] = e
		}
		return normalizeMap(m, t)
	case []any:
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Slice {
			return v
		}
		s := make([]any, len(vv))
		for i, e := range vv {
			s[i] = normalizeValue(e, t.Elem())
		}
		return s
	default:
		return v
	}
}

type fieldKey struct {
	name string
	typ  reflect.Type
}

// fieldKeys returns the fields of t keyed by their folded json tag name.
// Embedded structs are flattened.
func fieldKeys(t reflect.Type) map[string]fieldKey {
	if v, found := fieldKeysCache.Load(t); found {
		return v.(map[string]fieldKey)
	}
	keys := make(map[string]fieldKey)
	collectFieldKeys(t, keys)
	fieldKeysCache.Store(t, keys)
	return keys
}

func collectFieldKeys(t reflect.Type, keys map[string]fieldKey) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectFieldKeys(f.Type, keys)
			continue
		}
		opts := tagOptions(f)
		keys[foldKey(opts.name)] = fieldKey{name: opts.name, typ: f.Type}
	}
}

// foldKey folds connectTimeout, connect-timeout and connect_timeout to the same key.
func foldKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "").Replace(s)
}
