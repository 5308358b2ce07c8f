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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BrunoReboul/gcptopo/utilities/solution"
)

func TestUnitCheckArguments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topocheck.yaml")
	var testCases = []struct {
		name         string
		args         []string
		wantInterval time.Duration
		wantOnce     bool
		wantSettings string
	}{
		{"defaults", nil, 5 * time.Minute, false, solution.SettingsFileName},
		{"once", []string{"-once", "-settings", "x.yaml", "-environment", "prd"}, 5 * time.Minute, true, "x.yaml"},
		{"interval", []string{"-interval", "90s"}, 90 * time.Second, false, solution.SettingsFileName},
		{"writeSettings", []string{"-write-settings", path}, 5 * time.Minute, false, solution.SettingsFileName},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			a := checkArguments(tc.args)
			if a.interval != tc.wantInterval || a.once != tc.wantOnce || a.settingsPath != tc.wantSettings {
				t.Errorf("unexpected arguments %+v", a)
			}
		})
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default settings not written: %v", err)
	}
	if !strings.Contains(string(content), "fullRefreshIntervalSeconds: 86400") {
		t.Errorf("want default refresh interval in written settings, got\n%s", content)
	}
}
