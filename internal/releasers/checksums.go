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
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bep/workers"
)

// ChecksumsFilename is the name of the checksums file uploaded with the release assets.
const ChecksumsFilename = "checksums_sha256.txt"

// CreateChecksumLines writes the SHA256 checksums as lowercase hex digits followed by
// two spaces and then the base of filename and returns a sorted slice.
func CreateChecksumLines(w *workers.Workforce, filenames ...string) ([]string, error) {
	var mu sync.Mutex
	var result []string

	r, _ := w.Start(context.Background())

	createChecksum := func(filename string) (string, error) {
		f, err := os.Open(filename)
		if err != nil {
			return "", err
		}
		defer f.Close()
		h := sha256.New()
		if _, err := io.Copy(h, f); err != nil {
			return "", err
		}
		return hex.EncodeToString(h.Sum(nil)), nil
	}

	for _, filename := range filenames {
		filename := filename
		r.Run(func() error {
			checksum, err := createChecksum(filename)
			if err != nil {
				return err
			}
			mu.Lock()
			result = append(result, checksum+"  "+filepath.Base(filename))
			mu.Unlock()
			return nil
		})
	}

	if err := r.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(result)

	return result, nil
}

// WriteChecksumsFile writes the checksums of filenames to ChecksumsFilename in dir
// and returns its full path.
func WriteChecksumsFile(w *workers.Workforce, dir string, filenames ...string) (string, error) {
	lines, err := CreateChecksumLines(w, filenames...)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(dir, ChecksumsFilename)
	if err := os.WriteFile(filename, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to create checksum file %q: %w", filename, err)
	}
	return filename, nil
}
