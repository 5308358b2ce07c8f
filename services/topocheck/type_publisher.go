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

package topocheck

import (
	"context"
	"fmt"

	"github.com/BrunoReboul/gcptopo/utilities/logging"
	"github.com/BrunoReboul/gcptopo/utilities/topology"
)

// LogPublisher summarizes snapshots in the log when no topic is configured
type LogPublisher struct {
	Logger logging.Logger
}

// Publish never fails
func (p LogPublisher) Publish(ctx context.Context, snapshot topology.Snapshot, runID string) error {
	components := make(map[string]int)
	for _, component := range snapshot.Components {
		components[component.Type]++
	}
	p.Logger.Log(logging.Entry{
		Message:     "topology snapshot",
		Description: fmt.Sprintf("relations %d components by type %v", len(snapshot.Relations), components),
		CheckID:     snapshot.CheckID,
		RunID:       runID,
		ObjectCount: len(snapshot.Components),
	})
	return nil
}
