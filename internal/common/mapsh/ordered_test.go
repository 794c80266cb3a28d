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
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
	"gopkg.in/yaml.v3"
)

func TestOrdered(t *testing.T) {
	c := qt.New(t)

	o := NewOrdered[string, any]()
	o.Set("b", 1)
	o.Set("a", 2)
	o.Set("c", 3)
	o.Set("b", 4)

	c.Assert(o.Keys(), qt.DeepEquals, []string{"b", "a", "c"})
	v, found := o.Get("b")
	c.Assert(found, qt.IsTrue)
	c.Assert(v, qt.Equals, 4)
	c.Assert(o.SetIfAbsent("a", 5), qt.IsFalse)
	c.Assert(o.SetIfAbsent("d", 5), qt.IsTrue)

	o.Delete("a")
	c.Assert(o.Keys(), qt.DeepEquals, []string{"b", "c", "d"})
	c.Assert(o.Len(), qt.Equals, 3)

	var nilMap *Ordered[string, any]
	c.Assert(nilMap.Len(), qt.Equals, 0)
	c.Assert(nilMap.Has("a"), qt.IsFalse)

	c.Run("Zero value", func(c *qt.C) {
		var z Ordered[string, int]
		z.Set("x", 1)
		c.Assert(z.Len(), qt.Equals, 1)
	})
}

func TestOrderedFromMap(t *testing.T) {
	c := qt.New(t)

	o := OrderedFromMap(map[string]int{"c": 1, "a": 2, "b": 3})
	c.Assert(o.Keys(), qt.DeepEquals, []string{"a", "b", "c"})
}

func TestOrderedMarshal(t *testing.T) {
	c := qt.New(t)

	inner := NewOrdered[string, any]()
	inner.Set("z", "last")
	inner.Set("a", true)

	o := NewOrdered[string, any]()
	o.Set("name", "jreleaser")
	o.Set("nested", inner)

	b, err := json.Marshal(o)
	c.Assert(err, qt.IsNil)
	c.Assert(string(b), qt.Equals, `{"name":"jreleaser","nested":{"z":"last","a":true}}`)

	y, err := yaml.Marshal(o)
	c.Assert(err, qt.IsNil)
	c.Assert(string(y), qt.Equals, "name: jreleaser\nnested:\n    z: last\n    a: true\n")

	c.Assert(ToNested(o), qt.DeepEquals, map[string]any{
		"name":   "jreleaser",
		"nested": map[string]any{"z": "last", "a": true},
	})
}
