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

package glo

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"cloud.google.com/go/logging"
	"cloud.google.com/go/logging/logadmin"
	"github.com/BrunoReboul/gcptopo/utilities/erm"
	"github.com/BrunoReboul/gcptopo/utilities/logsource"
	"google.golang.org/api/iterator"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type logEntry struct {
	InsertID  string    `json:"insertId"`
	LogName   string    `json:"logName"`
	Timestamp time.Time `json:"timestamp"`
	Resource  struct {
		Type   string            `json:"type,omitempty"`
		Labels map[string]string `json:"labels,omitempty"`
	} `json:"resource"`
	ProtoPayload json.RawMessage `json:"protoPayload,omitempty"`
}

// LookupEvents returns the newest matching entries as LogEntry JSON documents, oldest first
func (q *Querier) LookupEvents(ctx context.Context, req logsource.LookupRequest) (records [][]byte, err error) {
	it := q.Lister.Entries(ctx,
		logadmin.ProjectIDs([]string{req.ProjectID}),
		logadmin.Filter(BuildFilter(req)),
		logadmin.NewestFirst())
	for q.MaxEntries <= 0 || len(records) < q.MaxEntries {
		entry, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("logadmin.Entries %s: %w", req.Region, err)
		}
		record, err := toLogEntryJSON(entry)
		if err != nil {
			return nil, err
		}
		if record != nil {
			records = append(records, record)
		}
	}
	// the newest entries are selected, handlers apply them in the order they happened
	slices.Reverse(records)
	return records, nil
}

// toLogEntryJSON returns nil for entries without a proto payload
func toLogEntryJSON(entry *logging.Entry) ([]byte, error) {
	message, ok := entry.Payload.(proto.Message)
	if !ok {
		return nil, nil
	}
	payload, err := protojson.Marshal(message)
	if err != nil {
		return nil, erm.New(erm.Malformed, "protojson.Marshal", err)
	}
	var e logEntry
	e.InsertID = entry.InsertID
	e.LogName = entry.LogName
	e.Timestamp = entry.Timestamp.UTC()
	if entry.Resource != nil {
		e.Resource.Type = entry.Resource.Type
		e.Resource.Labels = entry.Resource.Labels
	}
	e.ProtoPayload = payload
	return json.Marshal(e)
}
