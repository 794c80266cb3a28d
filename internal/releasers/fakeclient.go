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

package releasers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

var (
	_ Client           = &FakeClient{}
	_ UsernameResolver = &FakeClient{}
)

// FakeClient is a Client that prints what it would do and records the calls.
// Releases with a tag in Existing are reported as found.
type FakeClient struct {
	Out      io.Writer
	Existing map[string]int64

	mu        sync.Mutex
	releaseID int64
	calls     []string
	uploaded  []string
}

// NewFakeClient creates a FakeClient printing to stdout.
func NewFakeClient() *FakeClient {
	return &FakeClient{Out: os.Stdout}
}

func (c *FakeClient) record(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	c.calls = append(c.calls, s)
	if c.Out != nil {
		// Tests depend on this string.
		fmt.Fprintf(c.Out, "fake: %s\n", s)
	}
}

// Calls returns the calls made so far.
func (c *FakeClient) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// Uploaded returns the base names of the uploaded files.
func (c *FakeClient) Uploaded() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.uploaded...)
}

func (c *FakeClient) GetReleaseByTag(ctx context.Context, info ReleaseInfo) (int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("GetReleaseByTag: owner=%s repo=%s tag=%s", info.Owner, info.Repo, info.Tag)
	id, found := c.Existing[info.Tag]
	return id, found, nil
}

func (c *FakeClient) CreateRelease(ctx context.Context, info ReleaseInfo) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("CreateRelease: owner=%s repo=%s tag=%s name=%q draft=%t prerelease=%t", info.Owner, info.Repo, info.Tag, info.Name, info.Draft, info.Prerelease)
	c.releaseID++
	return c.releaseID, nil
}

func (c *FakeClient) UpdateRelease(ctx context.Context, info ReleaseInfo, releaseID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("UpdateRelease: owner=%s repo=%s tag=%s releaseID=%d", info.Owner, info.Repo, info.Tag, releaseID)
	c.releaseID = releaseID
	return nil
}

func (c *FakeClient) DeleteRelease(ctx context.Context, info ReleaseInfo, releaseID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("DeleteRelease: owner=%s repo=%s releaseID=%d", info.Owner, info.Repo, releaseID)
	return nil
}

func (c *FakeClient) UploadAssetsFile(ctx context.Context, info ReleaseInfo, f *os.File, releaseID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.releaseID != releaseID {
		return fmt.Errorf("fake: releaseID mismatch: %d != %d", c.releaseID, releaseID)
	}
	if f == nil {
		return fmt.Errorf("fake: nil file")
	}
	name := filepath.Base(f.Name())
	c.record("UploadAssetsFile: %s", name)
	c.uploaded = append(c.uploaded, name)
	return nil
}

func (c *FakeClient) ResolveUsername(ctx context.Context, sha, author string, info ReleaseInfo) (string, error) {
	return "", nil
}
