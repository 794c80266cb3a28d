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

package httptypes

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestParse(t *testing.T) {
	c := qt.New(t)

	m, err := ParseMethod("put")
	c.Assert(err, qt.IsNil)
	c.Assert(m, qt.Equals, PUT)

	_, err = ParseMethod("GET")
	c.Assert(err, qt.ErrorMatches, `invalid http method "GET", must be one of \[POST PUT\]`)

	a, err := ParseAuthorization(" bearer ")
	c.Assert(err, qt.IsNil)
	c.Assert(a, qt.Equals, Bearer)
	c.Assert(a.String(), qt.Equals, "BEARER")

	_, err = ParseAuthorization("digest")
	c.Assert(err, qt.ErrorMatches, `invalid authorization "digest", must be one of \[BASIC BEARER NONE\]`)
}
