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

package logging

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

func TestUnitEntryString(t *testing.T) {
	var testCases = []struct {
		name         string
		entry        Entry
		wantSeverity string
	}{
		{"defaultSeverity", Entry{Message: "start"}, "INFO"},
		{"keepSeverity", Entry{Message: "fallback", Severity: "WARNING"}, "WARNING"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var decoded map[string]interface{}
			if err := json.Unmarshal([]byte(tc.entry.String()), &decoded); err != nil {
				t.Fatalf("entry is not JSON: %v", err)
			}
			if decoded["severity"] != tc.wantSeverity {
				t.Errorf("want severity %s got %v", tc.wantSeverity, decoded["severity"])
			}
			if _, ok := decoded["now"]; ok {
				t.Errorf("now should be omitted when nil")
			}
		})
	}
}

func TestUnitLoggerLog(t *testing.T) {
	var lines []string
	logger := Logger{
		MicroserviceName: "topocheck",
		InstanceName:     "topocheck_dev",
		Environment:      "dev",
		CheckID:          "gcp_topology:my-project",
		Print: func(v ...interface{}) {
			lines = append(lines, fmt.Sprint(v...))
		},
	}
	logger.Log(Entry{Severity: "NOTICE", Message: "start", Region: "europe-west1"})
	logger.With("other").WithRun("run-1").Log(Entry{Message: "finish"})
	if len(lines) != 2 {
		t.Fatalf("want 2 lines got %d", len(lines))
	}
	if strings.Contains(lines[0], `"run_id"`) {
		t.Errorf("run id should be omitted when empty, got %s", lines[0])
	}
	if !strings.Contains(lines[1], `"run_id":"run-1"`) {
		t.Errorf("missing run id in %s", lines[1])
	}
	if !strings.Contains(lines[0], `"check_id":"gcp_topology:my-project"`) {
		t.Errorf("missing check id in %s", lines[0])
	}
	if !strings.Contains(lines[0], `"microservice_name":"topocheck"`) {
		t.Errorf("missing microservice name in %s", lines[0])
	}
	if !strings.Contains(lines[1], `"check_id":"other"`) {
		t.Errorf("With should rebind check id, got %s", lines[1])
	}
}
