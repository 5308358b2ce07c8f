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

package topology

import (
	"sync"
	"time"
)

// Emitter is what collectors need from a sink
type Emitter interface {
	EmitComponent(id string, componentType string, data map[string]interface{})
	EmitRelation(sourceID string, targetID string, relationType string, data map[string]interface{})
	// MarkSeen records key in the run seen set and reports whether it was new
	MarkSeen(key string) bool
}

// Sink materializes emitted components and relations into the current snapshot
type Sink struct {
	checkID string
	now     func() time.Time

	mu             sync.Mutex
	started        bool
	startTime      time.Time
	components     []Component
	componentIndex map[string]int
	relations      []Relation
	relationIndex  map[relationKey]int
	seen           map[string]struct{}
	dropped        int
}

// NewSink creates a sink for a check instance
func NewSink(checkID string) *Sink {
	return &Sink{
		checkID: checkID,
		now:     time.Now,
	}
}
