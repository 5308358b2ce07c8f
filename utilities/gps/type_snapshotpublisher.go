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
	"cloud.google.com/go/pubsub"
)

// Message kinds, in attribute kind
const (
	KindStart     = "start"
	KindComponent = "component"
	KindRelation  = "relation"
	KindStop      = "stop"
)

// SnapshotPublisher publishes snapshots on a topic
type SnapshotPublisher struct {
	Topic *pubsub.Topic
}

// NewSnapshotPublisher keeps messages of a snapshot ordered by check id
func NewSnapshotPublisher(topic *pubsub.Topic) *SnapshotPublisher {
	topic.EnableMessageOrdering = true
	return &SnapshotPublisher{Topic: topic}
}
