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

package glo

import (
	"fmt"
	"strings"

	"github.com/BrunoReboul/gcptopo/utilities/logsource"
)

// BuildFilter returns the Cloud Logging filter of a lookup request
// Admin activity holds the mutating calls, data access holds the read only ones
func BuildFilter(req logsource.LookupRequest) string {
	logNames := []string{logName(req.ProjectID, "activity")}
	if req.ReadOnly {
		logNames = append(logNames, logName(req.ProjectID, "data_access"))
	}
	clauses := make([]string, 0, len(logNames))
	for _, name := range logNames {
		clauses = append(clauses, fmt.Sprintf("logName=%q", name))
	}
	filter := "(" + strings.Join(clauses, " OR ") + ")"
	if req.Region != "" && req.Region != "global" {
		filter += fmt.Sprintf(
			" AND (resource.labels.region=%q OR resource.labels.location=%q OR resource.labels.zone:%q OR protoPayload.resourceName:%q)",
			req.Region, req.Region, req.Region+"-", "/locations/"+req.Region+"/")
	}
	return filter
}

func logName(projectID string, stream string) string {
	return fmt.Sprintf("projects/%s/logs/cloudaudit.googleapis.com%%2F%s", projectID, stream)
}
