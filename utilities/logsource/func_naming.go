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

package logsource

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// BucketPrefix is the fixed part of the derived bucket name
const BucketPrefix = "topo-logs"

// DefaultCategory is the admin activity audit log category
const DefaultCategory = "Activity"

const keyTimeLayout = "2006-01-02-15-04-05"

var keyRegexp = regexp.MustCompile(`^AuditLogs/[^/]+/[^/]+/[^/]+/(\d{4})/(\d{2})/(\d{2})/(\d{2})/[^/]+-(\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2})-([0-9a-fA-F-]{36})(?:\.json\.gz|\.gz|\.json)?$`)

// BucketName returns override when set, else topo-logs-<projectID>
func BucketName(projectID string, override string) string {
	if override != "" {
		return override
	}
	return fmt.Sprintf("%s-%s", BucketPrefix, projectID)
}

// Prefix returns the object prefix of a project, category and region
func Prefix(projectID string, category string, region string) string {
	return fmt.Sprintf("AuditLogs/%s/%s/%s/", projectID, category, region)
}

// ParseKey returns the timestamp embedded in an object name and false for foreign objects
func ParseKey(key string) (time.Time, bool) {
	m := keyRegexp.FindStringSubmatch(key)
	if m == nil {
		return time.Time{}, false
	}
	timestamp, err := time.ParseInLocation(keyTimeLayout, m[5], time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	if _, err := uuid.Parse(m[6]); err != nil {
		return time.Time{}, false
	}
	if timestamp.Format("2006/01/02/15") != m[1]+"/"+m[2]+"/"+m[3]+"/"+m[4] {
		return time.Time{}, false
	}
	return timestamp, true
}

// Cutoff is the later of the last full topology and now minus the look back
func Cutoff(lastFullTopology time.Time, now time.Time, lookback time.Duration) time.Time {
	cutoff := now.Add(-lookback)
	if lastFullTopology.After(cutoff) {
		return lastFullTopology
	}
	return cutoff
}
