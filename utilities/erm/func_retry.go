// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package erm

import (
	"context"
	"time"
)

// Retry calls fn until it succeeds or returns a non transient error.
// The wait doubles after each transient failure. The last error is returned when attempts are exhausted.
func Retry(ctx context.Context, attempts int, wait time.Duration, fn func() error) (err error) {
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		err = fn()
		if err == nil || Classify(err) != Transient {
			return err
		}
		if i == attempts-1 {
			break
		}
		timer := time.NewTimer(wait << uint(i))
		select {
		case <-ctx.Done():
			timer.Stop()
			return New(Canceled, "retry", ctx.Err())
		case <-timer.C:
		}
	}
	return err
}
