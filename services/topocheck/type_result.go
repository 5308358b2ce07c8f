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

package topocheck

import (
	"time"

	"github.com/BrunoReboul/gcptopo/utilities/logsource"
	"github.com/BrunoReboul/gcptopo/utilities/topology"
)

// Status of a service check
type Status int

// Statuses, ordered by severity
const (
	OK Status = iota
	Warning
	Critical
)

func (s Status) String() string {
	switch s {
	case OK:
		return "OK"
	case Warning:
		return "WARNING"
	}
	return "CRITICAL"
}

// ServiceCheck is one status signal
type ServiceCheck struct {
	Name    string
	CheckID string
	RunID   string
	Status  Status
	Message string
	Tags    map[string]string
}

// RegionOutcome summarizes the collection of one region
type RegionOutcome struct {
	Region         string
	Path           logsource.Path
	FallbackReason logsource.FallbackReason
	Events         int
	FailedObjects  int
	Deleted        []string
	Err            error
}

// Result of a run
type Result struct {
	RunID      string
	Full       bool
	StartTime  time.Time
	StopTime   time.Time
	Snapshot   topology.Snapshot
	Regions    []RegionOutcome
	Handled    int
	Ignored    int
	Enumerated int
	Checks     []ServiceCheck
}

// Status returns the worst status of the run service checks
func (r Result) Status() Status {
	status := OK
	for _, serviceCheck := range r.Checks {
		if serviceCheck.Status > status {
			status = serviceCheck.Status
		}
	}
	return status
}

// Check returns the service check of a name
func (r Result) Check(name string) (ServiceCheck, bool) {
	for _, serviceCheck := range r.Checks {
		if serviceCheck.Name == name {
			return serviceCheck, true
		}
	}
	return ServiceCheck{}, false
}
