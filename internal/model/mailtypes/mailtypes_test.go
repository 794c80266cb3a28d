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

package mailtypes

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestParse(t *testing.T) {
	c := qt.New(t)

	tr, err := ParseTransport("smtps")
	c.Assert(err, qt.IsNil)
	c.Assert(tr, qt.Equals, SMTPS)

	_, err = ParseTransport("bogus")
	c.Assert(err, qt.ErrorMatches, `invalid mail transport "bogus", must be one of \[SMTP SMTPS\]`)

	m, err := ParseMimeType("html")
	c.Assert(err, qt.IsNil)
	c.Assert(m, qt.Equals, HTML)
	c.Assert(m.Code(), qt.Equals, "text/html")

	var mt MimeType
	c.Assert(mt.UnmarshalText([]byte("xml")), qt.ErrorMatches, `invalid mime type "xml".*`)
	c.Assert(mt.IsZero(), qt.IsTrue)
}
