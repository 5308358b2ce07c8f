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

package collectors

import (
	"strings"

	"github.com/BrunoReboul/gcptopo/utilities/auditlog"
	"github.com/BrunoReboul/gcptopo/utilities/cai"
)

// SeenKey is the seen set key of one event applied to one resource
func SeenKey(id string, event *auditlog.Event) string {
	return id + "#" + event.InsertID
}

// componentData copies the fields common to every event driven component
func componentData(event *auditlog.Event, fields map[string]interface{}) map[string]interface{} {
	data := make(map[string]interface{}, len(fields)+5)
	for k, v := range fields {
		data[k] = v
	}
	data["region"] = event.Region
	data["projectId"] = event.ProjectID
	data["lastEvent"] = event.EventName
	data["lastEventTime"] = event.Timestamp
	if labels := cai.GetLabels(fields); len(labels) > 0 {
		data["tags"] = labels
	}
	return data
}

// computeLinkToID turns a compute self link or partial URL into a full resource name
func computeLinkToID(link string) string {
	if i := strings.Index(link, "/projects/"); i >= 0 {
		link = link[i+1:]
	}
	return cai.GetFullResourceName(Compute, link)
}
