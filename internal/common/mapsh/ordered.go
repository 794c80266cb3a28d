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

package mapsh

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Ordered is a map that keeps its keys in insertion order.
// The zero value is ready to use. A nil *Ordered behaves like an empty map for reads.
type Ordered[K comparable, V any] struct {
	keys []K
	m    map[K]V
}

// NewOrdered creates a new empty Ordered map.
func NewOrdered[K comparable, V any]() *Ordered[K, V] {
	return &Ordered[K, V]{}
}

// OrderedFromMap creates an Ordered map from m with the keys in sorted order.
func OrderedFromMap[K constraints.Ordered, V any](m map[K]V) *Ordered[K, V] {
	o := NewOrdered[K, V]()
	for _, k := range KeysSorted(m) {
		o.Set(k, m[k])
	}
	return o
}

// Set sets k to v. An existing key keeps its position.
func (o *Ordered[K, V]) Set(k K, v V) {
	if o.m == nil {
		o.m = make(map[K]V)
	}
	if _, found := o.m[k]; !found {
		o.keys = append(o.keys, k)
	}
	o.m[k] = v
}

// SetIfAbsent sets k to v if k is not already set and reports whether it did.
func (o *Ordered[K, V]) SetIfAbsent(k K, v V) bool {
	if o.Has(k) {
		return false
	}
	o.Set(k, v)
	return true
}

// Get returns the value for k.
func (o *Ordered[K, V]) Get(k K) (V, bool) {
	if o == nil || o.m == nil {
		var zero V
		return zero, false
	}
	v, found := o.m[k]
	return v, found
}

// Has reports whether k is set.
func (o *Ordered[K, V]) Has(k K) bool {
	_, found := o.Get(k)
	return found
}

// Delete removes k.
func (o *Ordered[K, V]) Delete(k K) {
	if !o.Has(k) {
		return
	}
	delete(o.m, k)
	i := slices.Index(o.keys, k)
	o.keys = slices.Delete(o.keys, i, i+1)
}

// Len returns the number of entries.
func (o *Ordered[K, V]) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in insertion order.
func (o *Ordered[K, V]) Keys() []K {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// Range calls f for each entry in insertion order until f returns false.
func (o *Ordered[K, V]) Range(f func(k K, v V) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !f(k, o.m[k]) {
			return
		}
	}
}

// Clone returns a shallow copy of o.
func (o *Ordered[K, V]) Clone() *Ordered[K, V] {
	c := NewOrdered[K, V]()
	o.Range(func(k K, v V) bool {
		c.Set(k, v)
		return true
	})
	return c
}

// ToMap returns the entries as a plain Go map.
func (o *Ordered[K, V]) ToMap() map[K]V {
	m := make(map[K]V, o.Len())
	o.Range(func(k K, v V) bool {
		m[k] = v
		return true
	})
	return m
}

// MarshalYAML implements yaml.Marshaler, preserving the key order.
func (o *Ordered[K, V]) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	var err error
	o.Range(func(k K, v V) bool {
		var kn, vn yaml.Node
		if err = kn.Encode(fmt.Sprint(k)); err != nil {
			return false
		}
		if err = vn.Encode(v); err != nil {
			return false
		}
		n.Content = append(n.Content, &kn, &vn)
		return true
	})
	return n, err
}

// MarshalJSON implements json.Marshaler, preserving the key order.
func (o *Ordered[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var err error
	i := 0
	o.Range(func(k K, v V) bool {
		if i > 0 {
			buf.WriteByte(',')
		}
		i++
		var b []byte
		if b, err = json.Marshal(fmt.Sprint(k)); err != nil {
			return false
		}
		buf.Write(b)
		buf.WriteByte(':')
		if b, err = json.Marshal(v); err != nil {
			return false
		}
		buf.Write(b)
		return true
	})
	if err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToNested converts o into plain maps recursively, suitable for encoders
// that cannot deal with custom map types.
func ToNested(v any) any {
	switch vv := v.(type) {
	case *Ordered[string, any]:
		m := make(map[string]any, vv.Len())
		vv.Range(func(k string, v any) bool {
			m[k] = ToNested(v)
			return true
		})
		return m
	case []any:
		s := make([]any, len(vv))
		for i, e := range vv {
			s[i] = ToNested(e)
		}
		return s
	default:
		return v
	}
}
