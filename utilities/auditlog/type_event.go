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

package auditlog

import "time"

// Event is a normalized audit log entry. Do not mutate after Parse.
type Event struct {
	Service        string
	EventName      string
	Timestamp      time.Time
	Payload        map[string]interface{}
	InsertID       string
	LogName        string
	ResourceName   string
	ResourceType   string
	ResourceLabels map[string]string
	Region         string
	ProjectID      string
}

// logEntry mirrors the LogEntry fields that matter here.
// Severity is a string in exports, incompatible with both loggingpb and cloud.google.com/go/logging types.
type logEntry struct {
	InsertID  string    `json:"insertId"`
	LogName   string    `json:"logName"`
	Timestamp time.Time `json:"timestamp"`
	Resource  struct {
		Type   string            `json:"type"`
		Labels map[string]string `json:"labels"`
	} `json:"resource"`
	ProtoPayload map[string]interface{} `json:"protoPayload"`
}
