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

package retention

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/BrunoReboul/gcptopo/utilities/logging"
	"github.com/BrunoReboul/gcptopo/utilities/logsource"
	"github.com/BrunoReboul/gcptopo/utilities/mon"
)

// Expired returns the manifest keys whose embedded timestamp is older than now minus retention, oldest first
func Expired(manifest []logsource.ManifestEntry, now time.Time, retention time.Duration) (keys []string) {
	limit := now.Add(-retention)
	entries := make([]logsource.ManifestEntry, 0, len(manifest))
	for _, entry := range manifest {
		if entry.Timestamp.Before(limit) {
			entries = append(entries, entry)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.Before(entries[j].Timestamp)
		}
		return entries[i].Key < entries[j].Key
	})
	for _, entry := range entries {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Cleanup issues one batch deletion of the expired objects, none when nothing expired
func (m *Manager) Cleanup(ctx context.Context, bucket string, manifest []logsource.ManifestEntry, now time.Time) (deleted []string, err error) {
	if m.Metrics == nil {
		m.Metrics = mon.Discard()
	}
	keys := Expired(manifest, now, m.Retention)
	if len(keys) == 0 {
		return nil, nil
	}
	if err := m.Deleter.DeleteObjects(ctx, bucket, keys); err != nil {
		m.Metrics.DeleteFailures.Inc()
		m.Logger.Log(logging.Entry{
			Severity:    "WARNING",
			Message:     "log objects deletion failed, retried next run",
			Description: err.Error(),
			Bucket:      bucket,
			ObjectCount: len(keys),
		})
		return nil, fmt.Errorf("DeleteObjects %s: %w", bucket, err)
	}
	m.Metrics.ObjectsDeleted.Add(float64(len(keys)))
	m.Logger.Log(logging.Entry{
		Message:     "expired log objects deleted",
		Bucket:      bucket,
		ObjectCount: len(keys),
	})
	return keys, nil
}
