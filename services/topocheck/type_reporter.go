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
	"context"
	"fmt"

	"github.com/BrunoReboul/gcptopo/utilities/logging"
	"github.com/BrunoReboul/gcptopo/utilities/str"
)

// LogReporter prints service checks as structured log entries
type LogReporter struct {
	Logger logging.Logger
}

// Report prints one service check, non OK statuses use the matching severity
func (r LogReporter) Report(ctx context.Context, serviceCheck ServiceCheck) {
	severity := "INFO"
	switch serviceCheck.Status {
	case Warning:
		severity = "WARNING"
	case Critical:
		severity = "CRITICAL"
	}
	r.Logger.Log(logging.Entry{
		Severity:    severity,
		Message:     fmt.Sprintf("service check %s %s", serviceCheck.Name, serviceCheck.Status),
		Description: serviceCheck.Message + " " + str.FlattenMapStringString(serviceCheck.Tags),
		CheckID:     serviceCheck.CheckID,
		RunID:       serviceCheck.RunID,
	})
}
