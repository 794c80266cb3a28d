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
	"encoding"
	"reflect"
	"strings"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
)

// Activatable is implemented by entities that can be switched on and off.
type Activatable interface {
	IsEnabled(rc RunContext) bool
	activation() *Activation
}

// Mapper is implemented by entities that can describe themselves as an ordered map.
type Mapper interface {
	AsMap(rc RunContext, full bool) *mapsh.Ordered[string, any]
}

var (
	extraPropertiesType = reflect.TypeOf(ExtraProperties{})
	activationType      = reflect.TypeOf(Activation{})
	mapperType          = reflect.TypeOf((*Mapper)(nil)).Elem()
	activatableType     = reflect.TypeOf((*Activatable)(nil)).Elem()
	textMarshalerType   = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
)

// AsMap describes the entity e as an ordered map, e.g. for the config command.
//
// If e is Activatable and not enabled, an empty map is returned unless full is set.
// Otherwise the keys are enabled and active, the fields in declaration order
// (camel cased) and extraProperties last. Secrets are masked with HIDE or UNSET.
func AsMap(rc RunContext, e any, full bool) *mapsh.Ordered[string, any] {
	props := mapsh.NewOrdered[string, any]()
	if e == nil {
		return props
	}

	if a, ok := e.(Activatable); ok {
		enabled := a.IsEnabled(rc)
		if !full && !enabled {
			return props
		}
		props.Set("enabled", enabled)
		if act := a.activation().Active; act.IsZero() {
			props.Set("active", nil)
		} else {
			props.Set("active", act.String())
		}
	}

	v := reflect.ValueOf(e)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return props
		}
		v = v.Elem()
	} else {
		cp := reflect.New(v.Type()).Elem()
		cp.Set(v)
		v = cp
	}

	var extra *ExtraProperties
	writeFields(rc, v, props, full, &extra)
	if extra != nil {
		props.Set("extraProperties", extra.Ordered())
	}

	return props
}

func writeFields(rc RunContext, v reflect.Value, props *mapsh.Ordered[string, any], full bool, extra **ExtraProperties) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Type == activationType {
			continue
		}
		if f.Type == extraPropertiesType {
			*extra = fv.Addr().Interface().(*ExtraProperties)
			continue
		}
		opts := tagOptions(f)
		if opts.omit {
			continue
		}
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			writeFields(rc, fv, props, full, extra)
			continue
		}
		if val, ok := asMapValue(rc, fv, opts, full); ok {
			props.Set(camelCase(opts.name), val)
		}
	}
}

func asMapValue(rc RunContext, v reflect.Value, opts fieldOptions, full bool) (any, bool) {
	if opts.secret {
		return mask(v), true
	}

	if v.CanAddr() && v.Addr().Type().Implements(mapperType) {
		m := v.Addr().Interface().(Mapper).AsMap(rc, full)
		if m.Len() == 0 && !full {
			return nil, false
		}
		return m, true
	}

	if v.Type().Implements(textMarshalerType) {
		if !isTruthfulValue(v) {
			return nil, true
		}
		b, _ := v.Interface().(encoding.TextMarshaler).MarshalText()
		return string(b), true
	}

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			if v.Type().Elem().Kind() == reflect.Struct {
				return nil, false
			}
			return nil, true
		}
		return asMapValue(rc, v.Elem(), opts, full)
	case reflect.Struct:
		if v.Addr().Type().Implements(activatableType) {
			m := AsMap(rc, v.Addr().Interface(), full)
			return m, m.Len() > 0 || full
		}
		return AsMap(rc, v.Addr().Interface(), full), true
	case reflect.Slice:
		s := make([]any, v.Len())
		for i := 0; i < v.Len(); i++ {
			s[i], _ = asMapValue(rc, v.Index(i), fieldOptions{}, full)
		}
		return s, true
	case reflect.Map:
		m := mapsh.NewOrdered[string, any]()
		keys := v.MapKeys()
		names := make(map[string]reflect.Value, len(keys))
		for _, k := range keys {
			names[k.String()] = k
		}
		for _, name := range mapsh.KeysSorted(names) {
			mv := v.MapIndex(names[name])
			if mv.Kind() == reflect.Struct {
				cp := reflect.New(mv.Type()).Elem()
				cp.Set(mv)
				mv = cp
			}
			if val, ok := asMapValue(rc, mv, fieldOptions{}, full); ok {
				m.Set(name, val)
			}
		}
		return m, true
	default:
		return v.Interface(), true
	}
}

func mask(v reflect.Value) string {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return UNSET
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.String && strings.TrimSpace(v.String()) == "" {
		return UNSET
	}
	if !isTruthfulValue(v) {
		return UNSET
	}
	return HIDE
}

// camelCase converts a snake_case config key to camelCase.
func camelCase(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	var sb strings.Builder
	upper := false
	for _, r := range s {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			sb.WriteString(strings.ToUpper(string(r)))
			upper = false
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
