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
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/jreleaser/jreleaser/internal/model/active"
)

func TestUpload(t *testing.T) {
	c := qt.New(t)

	rc := newTestContext()

	var u Upload
	nexus := NewHTTPUploader("nexus")
	nexus.Active = active.Always
	nexus.UploadURL = "https://nexus.example.com/{{ .projectName }}/{{ .artifactFile }}"
	c.Assert(u.HTTP.Add(nexus), qt.IsNil)
	bucket := NewS3Uploader("bucket")
	bucket.Active = active.Snapshot
	c.Assert(u.S3.Add(bucket), qt.IsNil)

	found, err := u.FindUploader(" HTTP ", "Nexus")
	c.Assert(err, qt.IsNil)
	c.Assert(found, qt.Equals, Uploader(nexus))

	_, err = u.FindUploader("scp", "nexus")
	c.Assert(err, qt.ErrorMatches, `unsupported uploader "scp"`)
	c.Assert(errors.Is(err, ErrUnsupportedUploader), qt.IsTrue)
	_, err = u.FindUploader("s3", "nexus")
	c.Assert(errors.Is(err, ErrNotFound), qt.IsTrue)

	c.Assert(u.All(), qt.HasLen, 2)
	c.Assert(u.EnabledUploaders(rc), qt.HasLen, 0)
	u.Active = active.Always
	enabled := u.EnabledUploaders(rc)
	c.Assert(enabled, qt.HasLen, 1)
	c.Assert(enabled[0], qt.Equals, Uploader(nexus))

	c.Assert(nexus.IsArtifacts(), qt.IsTrue)
	c.Assert(nexus.IsChecksums(), qt.IsFalse)

	artifact := map[string]any{"artifactFile": "app-1.2.3.zip"}
	s, err := nexus.ResolvedUploadURL(rc, artifact)
	c.Assert(err, qt.IsNil)
	c.Assert(s, qt.Equals, "https://nexus.example.com/app/app-1.2.3.zip")

	p, err := bucket.ResolvedPath(rc, artifact)
	c.Assert(err, qt.IsNil)
	c.Assert(p, qt.Equals, "app/v1.2.3/app-1.2.3.zip")
}

func TestDownload(t *testing.T) {
	c := qt.New(t)

	rc := newTestContext()

	var d Download
	h := NewHTTPDownloader("assets")
	h.Assets = []Asset{
		{Input: "https://example.com/{{ .projectName }}-{{ .projectVersion }}.zip"},
		{Input: "https://example.com/notes.txt", Output: "{{ .projectName }}-notes.txt"},
	}
	c.Assert(d.HTTP.Add(h), qt.IsNil)

	_, err := d.FindDownloader("", "assets")
	c.Assert(errors.Is(err, ErrBlankName), qt.IsTrue)
	_, err = d.FindDownloader("scp", "assets")
	c.Assert(errors.Is(err, ErrUnsupportedDownloader), qt.IsTrue)
	found, err := d.FindDownloader("http", "ASSETS")
	c.Assert(err, qt.IsNil)
	c.Assert(found, qt.Equals, Downloader(h))

	input, output, err := h.ResolvedAsset(rc, HTTPName, &h.Assets[0])
	c.Assert(err, qt.IsNil)
	c.Assert(input, qt.Equals, "https://example.com/app-1.2.3.zip")
	c.Assert(output, qt.Equals, "app-1.2.3.zip")

	_, output, err = h.ResolvedAsset(rc, HTTPName, &h.Assets[1])
	c.Assert(err, qt.IsNil)
	c.Assert(output, qt.Equals, "app-notes.txt")
}

func TestPackagers(t *testing.T) {
	c := qt.New(t)

	rc := newTestContext()
	rc.props["projectNameCapitalized"] = "App"

	var p Packagers
	p.Brew.Active = active.Always

	brew, err := p.FindPackager("Brew")
	c.Assert(err, qt.IsNil)
	c.Assert(brew, qt.Equals, Packager(&p.Brew))
	_, err = p.FindPackager("chocolatey")
	c.Assert(err, qt.ErrorMatches, `unsupported packager "chocolatey"`)

	enabled := p.EnabledPackagers(rc)
	c.Assert(enabled, qt.HasLen, 1)
	c.Assert(enabled[0], qt.Equals, Packager(&p.Brew))

	name, err := p.Brew.ResolvedFormulaName(rc)
	c.Assert(err, qt.IsNil)
	c.Assert(name, qt.Equals, "App")
}
