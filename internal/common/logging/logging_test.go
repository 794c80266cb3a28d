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

package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bep/logg"
	"github.com/bep/logg/handlers/multi"
	qt "github.com/frankban/quicktest"
)

func TestFormatBuildDuration(t *testing.T) {
	c := qt.New(t)

	c.Assert(FormatBuildDuration(150*time.Millisecond), qt.Equals, "150ms")
	c.Assert(FormatBuildDuration(2500*time.Millisecond), qt.Equals, "2.50s")
}

func TestReplacerAndMasker(t *testing.T) {
	c := qt.New(t)

	var out bytes.Buffer
	h := multi.New(
		Replacer(SecretMasker("****", "supersecret", "ab")),
		Replacer(strings.NewReplacer("/home/me/project", "$BASEDIR")),
		NewNoColoursHandler(&out, &out),
	)

	info, _ := NewLevelLoggers(h)
	info.WithField("cmd", "announce").WithField("dir", "/home/me/project/out").Log(logg.String("token supersecret ab"))

	c.Assert(out.String(), qt.Equals, "ANNOUNCE:\ttoken **** ab dir=$BASEDIR/out\n")
}

func TestNoColoursHandler(t *testing.T) {
	c := qt.New(t)

	var out, errOut bytes.Buffer
	info, warn := NewLevelLoggers(NewNoColoursHandler(&out, &errOut))

	info.WithField("cmd", "full-release").WithField("step", "upload").WithField("http", "nexus").Log(logg.String("Uploading"))
	info.WithField("step", "announce").WithField("message", "app released").Log(logg.String("Announcing"))
	info.Log(logg.String("Done"))
	warn.WithField("key", "announce.slack.enabled").Log(logg.String("deprecated"))

	c.Assert(out.String(), qt.Equals, "FULL-RELEASE/UPLOAD:\tUploading http=nexus\n"+
		"ANNOUNCE:\tAnnouncing message=\"app released\"\n"+
		"Done\n")
	c.Assert(errOut.String(), qt.Equals, "deprecated key=announce.slack.enabled\n")
}

func TestRecorder(t *testing.T) {
	c := qt.New(t)

	r := NewRecorder()
	info, warn := NewLevelLoggers(r)
	info.Log(logg.String("info"))
	warn.WithField("path", "announce.enabled").Log(logg.String("deprecated"))

	c.Assert(r.Entries(logg.LevelInfo), qt.HasLen, 2)
	warnings := r.Entries(logg.LevelWarn)
	c.Assert(warnings, qt.HasLen, 1)
	c.Assert(warnings[0].Message, qt.Equals, "deprecated")
	c.Assert(warnings[0].Fields["path"], qt.Equals, "announce.enabled")
}
