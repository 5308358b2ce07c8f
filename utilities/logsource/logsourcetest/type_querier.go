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

package logsourcetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/BrunoReboul/gcptopo/utilities/logsource"
)

// Querier is an in memory logsource.EventQuerier
type Querier struct {
	mu       sync.Mutex
	Records  map[string][][]byte
	Err      error
	Requests []logsource.LookupRequest
}

// NewQuerier returns a querier answering records for any region
func NewQuerier() *Querier {
	return &Querier{Records: make(map[string][][]byte)}
}

// Add appends a record returned for region
func (q *Querier) Add(region string, record string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.Records[region] = append(q.Records[region], []byte(record))
}

// LookupEvents implements logsource.EventQuerier
func (q *Querier) LookupEvents(ctx context.Context, req logsource.LookupRequest) ([][]byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.Requests = append(q.Requests, req)
	if q.Err != nil {
		return nil, q.Err
	}
	return q.Records[req.Region], nil
}

// Entry renders a Cloud Logging admin activity LogEntry
func Entry(insertID string, serviceName string, methodName string, resourceName string, timestamp string, request string) string {
	if request == "" {
		request = "{}"
	}
	return fmt.Sprintf(`{"insertId":"%s","logName":"projects/p/logs/cloudaudit.googleapis.com%%2Factivity","timestamp":"%s","resource":{"type":"audited_resource","labels":{"project_id":"p"}},"protoPayload":{"@type":"type.googleapis.com/google.cloud.audit.AuditLog","serviceName":"%s","methodName":"%s","resourceName":"%s","request":%s}}`,
		insertID, timestamp, serviceName, methodName, resourceName, request)
}
