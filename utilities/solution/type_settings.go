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

import "time"

// Settings of a topology check instance
type Settings struct {
	ProjectID                  string            `yaml:"projectID,omitempty" valid:"isNotZeroValue"`
	ProjectIDs                 map[string]string `yaml:"projectIDs"`
	LogBucketName              string            `yaml:"logBucketName,omitempty"`
	LogBucketNames             map[string]string `yaml:"logBucketNames"`
	Regions                    []string          `yaml:"regions" valid:"isNotZeroValue"`
	FullRefreshIntervalSeconds int64             `yaml:"fullRefreshIntervalSeconds" valid:"isPositive"`
	IncrementalLookbackSeconds int64             `yaml:"incrementalLookbackSeconds" valid:"isPositive"`
	RetentionSeconds           int64             `yaml:"retentionSeconds" valid:"isPositive"`
	APIsToRun                  []string          `yaml:"apisToRun"`
	APIRequestsPerSecond       float64           `yaml:"apiRequestsPerSecond" valid:"isPositive"`
	Retry                      struct {
		Attempts         int64 `yaml:"attempts" valid:"isPositive"`
		WaitMilliseconds int64 `yaml:"waitMilliseconds" valid:"isPositive"`
	} `yaml:"retry"`
	AssetTypes        []string `yaml:"assetTypes"`
	SnapshotTopicName string   `yaml:"snapshotTopicName,omitempty"`
	MetricsAddress    string   `yaml:"metricsAddress,omitempty"`
	Environment       string   `yaml:"environment,omitempty"`
	InstanceName      string   `yaml:"instanceName,omitempty"`
}

// NewSettings returns settings holding the defaults
func NewSettings() *Settings {
	settings := &Settings{
		Regions:                    []string{"global"},
		FullRefreshIntervalSeconds: 86400,
		IncrementalLookbackSeconds: 3600,
		RetentionSeconds:           86400,
		APIRequestsPerSecond:       10,
		AssetTypes: []string{
			"cloudfunctions.googleapis.com/CloudFunction",
			"compute.googleapis.com/Instance",
			"compute.googleapis.com/Network",
			"storage.googleapis.com/Bucket",
			"pubsub.googleapis.com/Topic",
			"pubsub.googleapis.com/Subscription",
			"iam.googleapis.com/ServiceAccount",
		},
		InstanceName: "topocheck",
	}
	settings.Retry.Attempts = 3
	settings.Retry.WaitMilliseconds = 500
	return settings
}

// FullRefreshInterval as a duration
func (settings *Settings) FullRefreshInterval() time.Duration {
	return time.Duration(settings.FullRefreshIntervalSeconds) * time.Second
}

// IncrementalLookback as a duration
func (settings *Settings) IncrementalLookback() time.Duration {
	return time.Duration(settings.IncrementalLookbackSeconds) * time.Second
}

// Retention as a duration
func (settings *Settings) Retention() time.Duration {
	return time.Duration(settings.RetentionSeconds) * time.Second
}

// RetryWait as a duration
func (settings *Settings) RetryWait() time.Duration {
	return time.Duration(settings.Retry.WaitMilliseconds) * time.Millisecond
}
