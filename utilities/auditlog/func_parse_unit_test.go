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

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/BrunoReboul/gcptopo/utilities/erm"
)

func makeEntry(insertID, service, method, resourceName, labels, timestamp string) string {
	return fmt.Sprintf(`{"insertId":"%s","logName":"projects/my-project/logs/cloudaudit.googleapis.com%%2Factivity","protoPayload":{"@type":"type.googleapis.com/google.cloud.audit.AuditLog","serviceName":"%s","methodName":"%s","resourceName":"%s","request":{"function":{"runtime":"go113"}}},"resource":{"type":"audited_resource","labels":%s},"timestamp":"%s","severity":"NOTICE"}`,
		insertID, service, method, resourceName, labels, timestamp)
}

func TestUnitParse(t *testing.T) {
	var testCases = []struct {
		name       string
		raw        string
		wantErr    error
		wantClass  erm.Class
		wantRegion string
	}{
		{
			name:       "regionLabel",
			raw:        makeEntry("1", "cloudfunctions.googleapis.com", "google.cloud.functions.v1.CloudFunctionsService.UpdateFunction", "projects/my-project/locations/europe-west1/functions/f1", `{"project_id":"my-project","region":"europe-west1"}`, "2021-06-11T05:18:05.123Z"),
			wantRegion: "europe-west1",
		},
		{
			name:       "zoneLabel",
			raw:        makeEntry("2", "compute.googleapis.com", "v1.compute.instances.insert", "projects/my-project/zones/us-central1-a/instances/vm1", `{"project_id":"my-project","zone":"us-central1-a"}`, "2021-06-11T05:18:05Z"),
			wantRegion: "us-central1",
		},
		{
			name:       "regionFromResourceName",
			raw:        makeEntry("3", "cloudfunctions.googleapis.com", "google.cloud.functions.v1.CloudFunctionsService.CreateFunction", "projects/my-project/locations/asia-east1/functions/f2", `{"project_id":"my-project"}`, "2021-06-11T05:18:05Z"),
			wantRegion: "asia-east1",
		},
		{
			name:       "global",
			raw:        makeEntry("4", "iam.googleapis.com", "google.iam.admin.v1.CreateServiceAccount", "projects/my-project/serviceAccounts/sa@my-project.iam.gserviceaccount.com", `{"project_id":"my-project"}`, "2021-06-11T05:18:05Z"),
			wantRegion: "global",
		},
		{
			name:      "invalidJSON",
			raw:       `{"insertId": "5", "protoPayload": `,
			wantClass: erm.Malformed,
		},
		{
			name:    "notAudit",
			raw:     `{"insertId":"6","textPayload":"hello","timestamp":"2021-06-11T05:18:05Z"}`,
			wantErr: ErrNotAuditEntry,
		},
		{
			name:      "noTimestamp",
			raw:       `{"insertId":"7","protoPayload":{"serviceName":"storage.googleapis.com","methodName":"storage.buckets.create"}}`,
			wantClass: erm.Malformed,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			event, err := Parse([]byte(tc.raw))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want %v got %v", tc.wantErr, err)
				}
				return
			}
			if tc.wantClass != erm.None {
				if erm.Classify(err) != tc.wantClass {
					t.Fatalf("want class %s got %v", tc.wantClass, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if event.Region != tc.wantRegion {
				t.Errorf("want region %s got %s", tc.wantRegion, event.Region)
			}
			if event.Timestamp.Location() != time.UTC {
				t.Errorf("timestamp should be UTC, got %v", event.Timestamp.Location())
			}
			if event.ProjectID != "my-project" {
				t.Errorf("want project my-project got %s", event.ProjectID)
			}
		})
	}
}

func TestUnitZoneToRegion(t *testing.T) {
	var tests = []struct {
		zone string
		want string
	}{
		{"europe-west1-b", "europe-west1"},
		{"us-central1-a", "us-central1"},
		{"europe-west1", "europe-west1"},
		{"global", "global"},
	}
	for _, test := range tests {
		t.Run(test.zone, func(t *testing.T) {
			if got := ZoneToRegion(test.zone); got != test.want {
				t.Errorf("Want %s got %s", test.want, got)
			}
		})
	}
}

func TestUnitEventGet(t *testing.T) {
	event, err := Parse([]byte(makeEntry("1", "cloudfunctions.googleapis.com", "google.cloud.functions.v1.CloudFunctionsService.UpdateFunction", "projects/p/locations/r/functions/f", `{}`, "2021-06-11T05:18:05Z")))
	if err != nil {
		t.Fatal(err)
	}
	if got := event.GetString("request", "function", "runtime"); got != "go113" {
		t.Errorf("want go113 got %s", got)
	}
	if got := event.GetString("request", "missing", "runtime"); got != "" {
		t.Errorf("want empty got %s", got)
	}
	if event.GetMap("request") == nil {
		t.Errorf("want request map")
	}
	if event.GetSlice("request") != nil {
		t.Errorf("request is not a slice")
	}
}
