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

import "time"

// Component a node of the topology graph
type Component struct {
	ID   string                 `json:"id"`
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data"`
}

// Relation a directed typed edge between two components
type Relation struct {
	SourceID string                 `json:"source_id"`
	TargetID string                 `json:"target_id"`
	Type     string                 `json:"type"`
	Data     map[string]interface{} `json:"data"`
}

// ExternalID identity of a relation
func (r Relation) ExternalID() string {
	return r.SourceID + "-" + r.Type + "-" + r.TargetID
}

// Snapshot the topology produced by one check run
type Snapshot struct {
	CheckID    string      `json:"check_id"`
	StartTime  time.Time   `json:"start_time"`
	StopTime   time.Time   `json:"stop_time"`
	Components []Component `json:"components"`
	Relations  []Relation  `json:"relations"`
}

type relationKey struct {
	sourceID string
	targetID string
	typ      string
}
