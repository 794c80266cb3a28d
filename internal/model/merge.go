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
)

var (
	zeroType = reflect.TypeOf((*zeroer)(nil)).Elem()
)

type zeroer interface {
	IsZero() bool
}

// selfMerger is implemented by types that merge themselves,
// e.g. ExtraProperties and Registry.
type selfMerger interface {
	mergeFrom(src any)
}

// Merge fills in the unset fields in dst with the values from src.
//
// Values already set in dst win. The rules are:
//
//   - Scalars, strings and enums are copied if the dst value is not truthful.
//   - Pointers to scalars are copied if nil in dst.
//   - Nested structs are merged recursively in place.
//   - Activation is one value: it is copied as a whole if neither Active nor
//     the legacy enabled flag is set in dst.
//   - Slices are replaced if empty in dst (tag model:"replace" is the default for slices).
//   - Maps are merged by key (tag model:"bykey" is the default), use model:"replace"
//     to replace the map if empty in dst.
//
// Values taken from src are deep copied. Merge(x, x) is a no-op.
func Merge[T any](dst, src *T) {
	if dst == nil || src == nil || dst == src {
		return
	}
	mergeValue(reflect.ValueOf(dst).Elem(), reflect.ValueOf(src).Elem(), "")
}

// mergeAny is Merge for two pointers of the same type.
func mergeAny(dst, src any) {
	dv, sv := reflect.ValueOf(dst), reflect.ValueOf(src)
	if dv.Pointer() == sv.Pointer() {
		return
	}
	mergeValue(dv.Elem(), sv.Elem(), "")
}

// clone returns a deep copy of v.
func clone[T any](v *T) *T {
	c := new(T)
	mergeValue(reflect.ValueOf(c).Elem(), reflect.ValueOf(v).Elem(), "")
	return c
}

func cloneValue(v reflect.Value) reflect.Value {
	c := reflect.New(v.Type()).Elem()
	mergeValue(c, v, "")
	return c
}

func mergeValue(dst, src reflect.Value, policy string) {
	if dst.CanAddr() {
		if m, ok := dst.Addr().Interface().(selfMerger); ok {
			if !src.CanAddr() {
				cp := reflect.New(src.Type())
				cp.Elem().Set(src)
				src = cp.Elem()
			}
			m.mergeFrom(src.Addr().Interface())
			return
		}
	}

	switch dst.Kind() {
	case reflect.Struct:
		if dst.Type() == activationType {
			mergeActivation(dst, src)
			return
		}
		if dst.Type().Implements(zeroType) {
			if !isTruthfulValue(dst) && isTruthfulValue(src) {
				dst.Set(src)
			}
			return
		}
		t := dst.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			mergeValue(dst.Field(i), src.Field(i), tagOptions(f).policy)
		}
	case reflect.Ptr:
		if src.IsNil() {
			return
		}
		if !dst.IsNil() && dst.Pointer() == src.Pointer() {
			return
		}
		if dst.Type().Elem().Kind() == reflect.Struct {
			if dst.IsNil() {
				dst.Set(reflect.New(dst.Type().Elem()))
			}
			mergeValue(dst.Elem(), src.Elem(), policy)
			return
		}
		if dst.IsNil() {
			p := reflect.New(dst.Type().Elem())
			p.Elem().Set(cloneValue(src.Elem()))
			dst.Set(p)
		}
	case reflect.Slice:
		if dst.Len() > 0 || src.Len() == 0 {
			return
		}
		s := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			s.Index(i).Set(cloneValue(src.Index(i)))
		}
		dst.Set(s)
	case reflect.Map:
		if src.Len() == 0 {
			return
		}
		if policy == policyReplace {
			if dst.Len() > 0 {
				return
			}
			dst.Set(reflect.MakeMapWithSize(dst.Type(), src.Len()))
		} else if dst.IsNil() {
			dst.Set(reflect.MakeMapWithSize(dst.Type(), src.Len()))
		}
		iter := src.MapRange()
		for iter.Next() {
			k, sv := iter.Key(), iter.Value()
			dv := dst.MapIndex(k)
			if !dv.IsValid() {
				dst.SetMapIndex(k, cloneValue(sv))
				continue
			}
			if isMergeableKind(dv) {
				// Map values are not addressable.
				cp := reflect.New(dv.Type()).Elem()
				cp.Set(dv)
				mergeValue(cp, sv, "")
				dst.SetMapIndex(k, cp)
			}
		}
	case reflect.Interface:
		if dst.IsNil() && !src.IsNil() {
			dst.Set(src)
		}
	default:
		if !isTruthfulValue(dst) && isTruthfulValue(src) {
			dst.Set(src)
		}
	}
}

func mergeActivation(dst, src reflect.Value) {
	d := dst.Interface().(Activation)
	if d.IsActiveSet() {
		return
	}
	s := src.Interface().(Activation)
	d.Active = s.Active
	if s.Enabled != nil {
		d.Enabled = Bool(*s.Enabled)
	}
	dst.Set(reflect.ValueOf(d))
}

func isMergeableKind(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Struct:
		return true
	case reflect.Ptr:
		return v.Type().Elem().Kind() == reflect.Struct
	}
	return false
}

const (
	policyReplace = "replace"
	policyByKey   = "bykey"
)

type fieldOptions struct {
	name   string
	policy string
	secret bool
	omit   bool
}

// tagOptions reads the json and model struct tags of f.
//
// The model tag is a comma separated list of:
//
//	secret  - masked in AsMap.
//	replace - see Merge.
//	bykey   - see Merge.
//	omit    - left out of AsMap.
func tagOptions(f reflect.StructField) fieldOptions {
	var opts fieldOptions
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		opts.omit = true
	}
	opts.name = name
	if opts.name == "" {
		opts.name = f.Name
	}
	for _, o := range strings.Split(f.Tag.Get("model"), ",") {
		switch strings.TrimSpace(o) {
		case "secret":
			opts.secret = true
		case policyReplace:
			opts.policy = policyReplace
		case policyByKey:
			opts.policy = policyByKey
		case "omit":
			opts.omit = true
		}
	}
	return opts
}

// This is based on the "truthy" function used in the Hugo template system.
// The only difference is that this function returns true for empty non-nil slices and maps.
//
// isTruthfulValue returns whether the given value has a meaningful truth value.
// This is based on template.IsTrue in Go's stdlib, but also considers
// IsZero and any interface value will be unwrapped before it's considered
// for truthfulness.
func isTruthfulValue(val reflect.Value) (truth bool) {
	val = indirectInterface(val)

	if !val.IsValid() {
		return
	}

	if val.Type().Implements(zeroType) {
		return !val.Interface().(zeroer).IsZero()
	}

	switch val.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice:
		return !val.IsNil()
	case reflect.String:
		truth = val.Len() > 0
	case reflect.Bool:
		truth = val.Bool()
	case reflect.Complex64, reflect.Complex128:
		truth = val.Complex() != 0
	case reflect.Chan, reflect.Func, reflect.Ptr, reflect.Interface:
		truth = !val.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		truth = val.Int() != 0
	case reflect.Float32, reflect.Float64:
		truth = val.Float() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		truth = val.Uint() != 0
	case reflect.Struct:
		truth = true
	}

	return
}

func indirectInterface(v reflect.Value) reflect.Value {
	if v.Kind() != reflect.Interface {
		return v
	}
	if v.IsNil() {
		return reflect.Value{}
	}
	return v.Elem()
}
