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
	"testing"

	"gopkg.in/yaml.v2"
)

func TestUnitSituate(t *testing.T) {
	type testcases []struct {
		Name        string
		Settings    Settings
		Environment string
		Want        map[string]string
	}
	var testCases testcases

	yamlBytes := []byte(`---
- name: perEnvironment
  settings:
    projectIDs:
      dev: blabladev
      prd: blablaprd
    logBucketNames:
      dev: blabla-logs-dev
      prd: blabla-logs-prd
  environment: prd
  want:
    projectID: blablaprd
    logBucketName: blabla-logs-prd
- name: noValueForEnvironment
  settings:
    projectID: blablaqa
    logBucketName: custom-logs
    projectIDs:
      dev: blabladev
  environment: qa
  want:
    projectID: blablaqa
    logBucketName: custom-logs
- name: derivedBucket
  settings:
    projectIDs:
      dev: blabladev
  environment: dev
  want:
    projectID: blabladev
    logBucketName: ""
`)
	err := yaml.Unmarshal(yamlBytes, &testCases)
	if err != nil {
		t.Fatalf("yaml.Unmarshal %v", err)
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			tc.Settings.Situate(tc.Environment)
			if tc.Settings.ProjectID != tc.Want["projectID"] {
				t.Errorf("projectID want %s have %s", tc.Want["projectID"], tc.Settings.ProjectID)
			}
			if tc.Settings.LogBucketName != tc.Want["logBucketName"] {
				t.Errorf("logBucketName want %s have %s", tc.Want["logBucketName"], tc.Settings.LogBucketName)
			}
			if tc.Settings.Environment != tc.Environment {
				t.Errorf("environment want %s have %s", tc.Environment, tc.Settings.Environment)
			}
		})
	}
}
