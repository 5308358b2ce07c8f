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

package solution

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettings(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUnitLoad(t *testing.T) {
	path := writeSettings(t, `---
projectIDs:
  dev: my-project
regions:
  - global
  - europe-west1
apisToRun:
  - cloudfunctions.googleapis.com
retentionSeconds: 7200
retry:
  attempts: 5
`)
	settings, err := Load(path, "dev")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if settings.ProjectID != "my-project" {
		t.Errorf("want my-project got %s", settings.ProjectID)
	}
	if len(settings.Regions) != 2 || settings.Regions[1] != "europe-west1" {
		t.Errorf("unexpected regions %v", settings.Regions)
	}
	if settings.Retention() != 2*time.Hour {
		t.Errorf("want 2h retention got %v", settings.Retention())
	}
	if settings.IncrementalLookback() != time.Hour {
		t.Errorf("want default look back of 1h got %v", settings.IncrementalLookback())
	}
	if settings.Retry.Attempts != 5 || settings.RetryWait() != 500*time.Millisecond {
		t.Errorf("unexpected retry %+v", settings.Retry)
	}
	if settings.FullRefreshInterval() != 24*time.Hour {
		t.Errorf("want default full refresh of 24h got %v", settings.FullRefreshInterval())
	}
}

func TestUnitLoadInvalid(t *testing.T) {
	var tests = []struct {
		name    string
		content string
	}{
		{"noProject", "regions: [global]\n"},
		{"negativeRetention", "projectID: p\nretentionSeconds: -1\n"},
		{"noRegion", "projectID: p\nregions: []\n"},
		{"notYAML", "projectID: [p\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeSettings(t, tc.content), "dev"); err == nil {
				t.Errorf("want an error")
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), "dev"); err == nil {
		t.Errorf("want an error for a missing file")
	}
}
