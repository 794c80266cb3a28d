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

package matchers

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

type nameMatcher string

func (m nameMatcher) Match(s string) bool {
	return s == string(m)
}

func TestOps(t *testing.T) {
	c := qt.New(t)

	slack, smtp := nameMatcher("slack"), nameMatcher("smtp")

	c.Assert(And(slack, smtp).Match("slack"), qt.IsFalse)
	c.Assert(And(slack, slack).Match("slack"), qt.IsTrue)
	c.Assert(And().Match("anything"), qt.IsTrue)

	c.Assert(Or(slack, smtp).Match("smtp"), qt.IsTrue)
	c.Assert(Or(slack, smtp).Match("zulip"), qt.IsFalse)
	c.Assert(Or().Match("slack"), qt.IsFalse)

	c.Assert(Not(slack).Match("slack"), qt.IsFalse)
	c.Assert(Not(slack).Match("smtp"), qt.IsTrue)

	c.Assert(MatchEverything.Match(""), qt.IsTrue)
}
