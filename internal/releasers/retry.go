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
	"math/rand"
	"time"

	"github.com/jreleaser/jreleaser/internal/common/errorsh"
)

const numRetries = 10

// Set in tests.
var firstRetryInterval = 77 * time.Millisecond

// withRetries calls f until it succeeds, it reports that it should not be retried,
// or numRetries is reached. The interval grows randomly between attempts.
func withRetries(ctx context.Context, f func() (err error, shouldTryAgain bool)) error {
	var (
		lastErr      error
		nextInterval = firstRetryInterval
	)

	for i := 0; i < numRetries; i++ {
		err, shouldTryAgain := f()
		if err == nil || !shouldTryAgain || errorsh.IsShutdownError(err) {
			return err
		}

		lastErr = err

		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(nextInterval):
		}
		nextInterval += time.Duration(rand.Int63n(int64(nextInterval)))
	}

	return lastErr
}
