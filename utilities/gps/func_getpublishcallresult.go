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

package gps

import (
	"context"
	"sync"
	"sync/atomic"

	"cloud.google.com/go/pubsub"
)

// GetPublishCallResult func to be used in go routine to scale pubsub event publish
func GetPublishCallResult(ctx context.Context, publishResult *pubsub.PublishResult, waitgroup *sync.WaitGroup, pubSubErrNumber *uint64, pubSubMsgNumber *uint64, firstErr *error, mu *sync.Mutex) {
	defer waitgroup.Done()
	// No retry on pubsub publish as already implemented in the GO client
	if _, err := publishResult.Get(ctx); err != nil {
		atomic.AddUint64(pubSubErrNumber, 1)
		mu.Lock()
		if *firstErr == nil {
			*firstErr = err
		}
		mu.Unlock()
		return
	}
	atomic.AddUint64(pubSubMsgNumber, 1)
}
