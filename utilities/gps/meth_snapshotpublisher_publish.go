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
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"cloud.google.com/go/pubsub"
	"github.com/BrunoReboul/gcptopo/utilities/topology"
)

type header struct {
	CheckID    string `json:"checkId"`
	StartTime  string `json:"startTime"`
	StopTime   string `json:"stopTime,omitempty"`
	Components int    `json:"components"`
	Relations  int    `json:"relations"`
}

// Publish sends the snapshot and waits for every publish result
func (p *SnapshotPublisher) Publish(ctx context.Context, snapshot topology.Snapshot, runID string) error {
	h := header{
		CheckID:    snapshot.CheckID,
		StartTime:  snapshot.StartTime.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Components: len(snapshot.Components),
		Relations:  len(snapshot.Relations),
	}
	var payloads [][]byte
	var kinds []string
	add := func(kind string, v interface{}) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("json.Marshal %s: %w", kind, err)
		}
		payloads = append(payloads, data)
		kinds = append(kinds, kind)
		return nil
	}
	if err := add(KindStart, h); err != nil {
		return err
	}
	for _, component := range snapshot.Components {
		if err := add(KindComponent, component); err != nil {
			return err
		}
	}
	for _, relation := range snapshot.Relations {
		if err := add(KindRelation, relation); err != nil {
			return err
		}
	}
	h.StopTime = snapshot.StopTime.UTC().Format("2006-01-02T15:04:05Z07:00")
	if err := add(KindStop, h); err != nil {
		return err
	}

	var waitgroup sync.WaitGroup
	var mu sync.Mutex
	var pubSubErrNumber, pubSubMsgNumber uint64
	var firstErr error
	for i, data := range payloads {
		result := p.Topic.Publish(ctx, &pubsub.Message{
			Data:        data,
			OrderingKey: snapshot.CheckID,
			Attributes: map[string]string{
				"checkId":  snapshot.CheckID,
				"runId":    runID,
				"kind":     kinds[i],
				"sequence": strconv.Itoa(i),
			},
		})
		waitgroup.Add(1)
		go GetPublishCallResult(ctx, result, &waitgroup, &pubSubErrNumber, &pubSubMsgNumber, &firstErr, &mu)
	}
	waitgroup.Wait()
	if pubSubErrNumber > 0 {
		p.Topic.ResumePublish(snapshot.CheckID)
		return fmt.Errorf("%d of %d snapshot messages not published: %w", pubSubErrNumber, len(payloads), firstErr)
	}
	return nil
}
