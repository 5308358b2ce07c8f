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

package retention

import (
	"context"
	"time"

	"github.com/BrunoReboul/gcptopo/utilities/logging"
	"github.com/BrunoReboul/gcptopo/utilities/mon"
)

// Deleter deletes a batch of objects in one call
type Deleter interface {
	DeleteObjects(ctx context.Context, bucket string, keys []string) error
}

// Manager applies the retention window
type Manager struct {
	Deleter   Deleter
	Retention time.Duration
	Logger    logging.Logger
	Metrics   *mon.Metrics
}
