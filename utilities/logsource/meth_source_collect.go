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
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/BrunoReboul/gcptopo/utilities/auditlog"
	"github.com/BrunoReboul/gcptopo/utilities/erm"
	"github.com/BrunoReboul/gcptopo/utilities/logging"
	"github.com/BrunoReboul/gcptopo/utilities/mon"
)

// Bucket returns the bucket name used by the source
func (s *Source) Bucket() string {
	return BucketName(s.ProjectID, s.BucketName)
}

// Collect returns the events of one region newer than cutoff
// A non nil error with a non nil batch means the batch is partial
func (s *Source) Collect(ctx context.Context, region string, cutoff time.Time) (*Batch, error) {
	if s.Metrics == nil {
		s.Metrics = mon.Discard()
	}
	category := s.Category
	if category == "" {
		category = DefaultCategory
	}
	batch := &Batch{Region: region, Bucket: s.Bucket(), Path: PathBucket}

	var enabled bool
	err := s.retry(ctx, func() (err error) {
		enabled, err = s.Store.VersioningEnabled(ctx, batch.Bucket)
		return err
	})
	if err != nil {
		if reason := fallbackReason(err); reason != NoFallback {
			return s.fallback(ctx, batch, reason, err)
		}
		return batch, fmt.Errorf("VersioningEnabled %s: %w", batch.Bucket, err)
	}
	if !enabled {
		return s.fallback(ctx, batch, VersioningDisabled, nil)
	}

	var objects []ObjectAttrs
	prefix := Prefix(s.ProjectID, category, region)
	err = s.retry(ctx, func() (err error) {
		objects, err = s.Store.List(ctx, batch.Bucket, prefix)
		return err
	})
	if err != nil {
		if reason := fallbackReason(err); reason != NoFallback {
			return s.fallback(ctx, batch, reason, err)
		}
		return batch, fmt.Errorf("List %s/%s: %w", batch.Bucket, prefix, err)
	}
	batch.Manifest = buildManifest(objects)

	seen := make(map[string]struct{})
	for _, entry := range batch.Manifest {
		if entry.Timestamp.Before(cutoff) {
			continue
		}
		if err := s.wait(ctx); err != nil {
			return batch, err
		}
		events, err := s.fetch(ctx, batch.Bucket, entry.Key)
		batch.Fetched = append(batch.Fetched, entry.Key)
		switch erm.Classify(err) {
		case erm.None:
			s.Metrics.ObjectsFetched.WithLabelValues("ok").Inc()
			batch.Events = appendUnique(batch.Events, seen, events)
		case erm.Authorization:
			s.Metrics.ObjectsFetched.WithLabelValues("error").Inc()
			batch.Events = nil
			batch.Manifest = nil
			batch.Fetched = nil
			return s.fallback(ctx, batch, AuthorizationDenied, err)
		case erm.Malformed:
			s.Metrics.ObjectsFetched.WithLabelValues("malformed").Inc()
			s.Logger.Log(logging.Entry{
				Severity:    "NOTICE",
				Message:     "malformed log object skipped",
				Description: err.Error(),
				Region:      region,
				Bucket:      batch.Bucket,
				ObjectName:  entry.Key,
				ErrorClass:  erm.Malformed.String(),
			})
		case erm.NotFound:
			s.Metrics.ObjectsFetched.WithLabelValues("missing").Inc()
			s.Logger.Log(logging.Entry{
				Severity:   "NOTICE",
				Message:    "log object vanished between list and get",
				Region:     region,
				Bucket:     batch.Bucket,
				ObjectName: entry.Key,
				ErrorClass: erm.NotFound.String(),
			})
		case erm.Canceled:
			return batch, err
		default:
			s.Metrics.ObjectsFetched.WithLabelValues("error").Inc()
			batch.FailedObjects++
			s.Logger.Log(logging.Entry{
				Severity:    "WARNING",
				Message:     "log object could not be read",
				Description: err.Error(),
				Region:      region,
				Bucket:      batch.Bucket,
				ObjectName:  entry.Key,
				ErrorClass:  erm.Classify(err).String(),
			})
		}
	}
	s.Metrics.EventsIngested.WithLabelValues(string(PathBucket)).Add(float64(len(batch.Events)))
	s.Logger.Log(logging.Entry{
		Message:     "log objects collected",
		Region:      region,
		Bucket:      batch.Bucket,
		ObjectCount: len(batch.Fetched),
		EventCount:  len(batch.Events),
	})
	return batch, nil
}

func (s *Source) fetch(ctx context.Context, bucket string, key string) (events []*auditlog.Event, err error) {
	err = s.retry(ctx, func() error {
		reader, err := s.Store.Get(ctx, bucket, key)
		if err != nil {
			return err
		}
		defer reader.Close()
		events, err = auditlog.DecodeEvents(reader)
		return err
	})
	return events, err
}

func (s *Source) fallback(ctx context.Context, batch *Batch, reason FallbackReason, cause error) (*Batch, error) {
	batch.Path = PathLookup
	batch.FallbackReason = reason
	s.Metrics.Fallbacks.WithLabelValues(string(reason)).Inc()
	description := ""
	if cause != nil {
		description = cause.Error()
	}
	s.Logger.Log(logging.Entry{
		Severity:    "WARNING",
		Message:     fmt.Sprintf("falling back to the audit log query API: %s", reason),
		Description: description,
		Region:      batch.Region,
		Bucket:      batch.Bucket,
	})
	if s.Querier == nil {
		return batch, fmt.Errorf("fallback %s: no event querier", reason)
	}
	var records [][]byte
	err := s.retry(ctx, func() (err error) {
		records, err = s.Querier.LookupEvents(ctx, LookupRequest{
			ProjectID: s.ProjectID,
			Region:    batch.Region,
			ReadOnly:  false,
		})
		return err
	})
	if err != nil {
		return batch, fmt.Errorf("LookupEvents %s: %w", batch.Region, err)
	}
	seen := make(map[string]struct{})
	for _, record := range records {
		event, err := auditlog.Parse(record)
		if err != nil {
			if !errors.Is(err, auditlog.ErrNotAuditEntry) {
				s.Logger.Log(logging.Entry{
					Severity:    "NOTICE",
					Message:     "malformed lookup record skipped",
					Description: err.Error(),
					Region:      batch.Region,
				})
			}
			continue
		}
		// the query filter is coarser than the event region
		if event.Region != batch.Region {
			continue
		}
		batch.Events = appendUnique(batch.Events, seen, []*auditlog.Event{event})
	}
	s.Metrics.EventsIngested.WithLabelValues(string(PathLookup)).Add(float64(len(batch.Events)))
	return batch, nil
}

func (s *Source) retry(ctx context.Context, fn func() error) error {
	return erm.Retry(ctx, s.RetryAttempts, s.RetryWait, fn)
}

func (s *Source) wait(ctx context.Context) error {
	if ctx.Err() != nil {
		return erm.New(erm.Canceled, "collect", ctx.Err())
	}
	if s.Limiter == nil {
		return nil
	}
	if err := s.Limiter.Wait(ctx); err != nil {
		return erm.New(erm.Canceled, "rate.Wait", err)
	}
	return nil
}

func fallbackReason(err error) FallbackReason {
	switch erm.Classify(err) {
	case erm.Authorization:
		return AuthorizationDenied
	case erm.NotFound:
		return BucketNotFound
	}
	return NoFallback
}

// buildManifest keeps the conforming objects sorted by embedded timestamp then key
func buildManifest(objects []ObjectAttrs) (manifest []ManifestEntry) {
	for _, object := range objects {
		timestamp, ok := ParseKey(object.Key)
		if !ok {
			continue
		}
		manifest = append(manifest, ManifestEntry{
			Key:          object.Key,
			LastModified: object.LastModified,
			Timestamp:    timestamp,
		})
	}
	sort.Slice(manifest, func(i, j int) bool {
		if !manifest[i].Timestamp.Equal(manifest[j].Timestamp) {
			return manifest[i].Timestamp.Before(manifest[j].Timestamp)
		}
		return manifest[i].Key < manifest[j].Key
	})
	return manifest
}

func appendUnique(events []*auditlog.Event, seen map[string]struct{}, more []*auditlog.Event) []*auditlog.Event {
	for _, event := range more {
		if event.InsertID != "" {
			if _, ok := seen[event.InsertID]; ok {
				continue
			}
			seen[event.InsertID] = struct{}{}
		}
		events = append(events, event)
	}
	return events
}
