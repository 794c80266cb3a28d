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
)

type entityLister interface {
	entityValues() []any
}

// Secrets returns the distinct non blank values of all secret fields in m, sorted.
// It is used to mask secrets in log output.
func Secrets(m *JReleaserModel) []string {
	seen := make(map[string]bool)
	collectSecrets(reflect.ValueOf(m), seen)
	secrets := make([]string, 0, len(seen))
	for s := range seen {
		secrets = append(secrets, s)
	}
	sort.Strings(secrets)
	return secrets
}

func collectSecrets(v reflect.Value, seen map[string]bool) {
	if !v.IsValid() {
		return
	}
	if v.CanInterface() {
		if l, ok := v.Interface().(entityLister); ok {
			for _, e := range l.entityValues() {
				collectSecrets(reflect.ValueOf(e), seen)
			}
			return
		}
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if !v.IsNil() {
			collectSecrets(v.Elem(), seen)
		}
	case reflect.Struct:
		if v.CanAddr() {
			if l, ok := v.Addr().Interface().(entityLister); ok {
				collectSecrets(reflect.ValueOf(l), seen)
				return
			}
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fv := v.Field(i)
			if tagOptions(f).secret {
				if fv.Kind() == reflect.String {
					if s := strings.TrimSpace(fv.String()); s != "" {
						seen[s] = true
					}
				}
				continue
			}
			collectSecrets(fv, seen)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			collectSecrets(v.Index(i), seen)
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			collectSecrets(iter.Value(), seen)
		}
	}
}
