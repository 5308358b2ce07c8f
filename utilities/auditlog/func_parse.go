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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BrunoReboul/gcptopo/utilities/erm"
)

// ErrNotAuditEntry is returned by Parse for valid entries without an audit payload
var ErrNotAuditEntry = fmt.Errorf("not an audit log entry")

// Parse normalizes one raw LogEntry
func Parse(raw []byte) (*Event, error) {
	var entry logEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, erm.New(erm.Malformed, "json.Unmarshal logEntry", err)
	}
	if entry.ProtoPayload == nil {
		return nil, ErrNotAuditEntry
	}
	service, _ := entry.ProtoPayload["serviceName"].(string)
	method, _ := entry.ProtoPayload["methodName"].(string)
	if service == "" || method == "" {
		return nil, ErrNotAuditEntry
	}
	if entry.Timestamp.IsZero() {
		return nil, erm.New(erm.Malformed, "parse", fmt.Errorf("entry %s has no timestamp", entry.InsertID))
	}
	event := &Event{
		Service:        service,
		EventName:      method,
		Timestamp:      entry.Timestamp.UTC(),
		Payload:        entry.ProtoPayload,
		InsertID:       entry.InsertID,
		LogName:        entry.LogName,
		ResourceType:   entry.Resource.Type,
		ResourceLabels: entry.Resource.Labels,
	}
	event.ResourceName, _ = entry.ProtoPayload["resourceName"].(string)
	event.ProjectID = entry.Resource.Labels["project_id"]
	event.Region = GetRegion(entry.Resource.Labels, event.ResourceName)
	return event, nil
}

// GetRegion finds the region of a resource from its monitored resource labels, else from its resource name
func GetRegion(labels map[string]string, resourceName string) string {
	for _, key := range []string{"region", "location"} {
		if value := labels[key]; value != "" {
			return value
		}
	}
	if zone := labels["zone"]; zone != "" {
		return ZoneToRegion(zone)
	}
	parts := strings.Split(resourceName, "/")
	for i := 0; i < len(parts)-1; i++ {
		switch parts[i] {
		case "locations", "regions":
			return parts[i+1]
		case "zones":
			return ZoneToRegion(parts[i+1])
		}
	}
	return "global"
}

// ZoneToRegion europe-west1-b => europe-west1
func ZoneToRegion(zone string) string {
	i := strings.LastIndex(zone, "-")
	if i <= 0 || strings.Count(zone, "-") < 2 {
		return zone
	}
	return zone[:i]
}
