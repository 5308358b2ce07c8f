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
	"io"
	"time"

	"github.com/BrunoReboul/gcptopo/utilities/auditlog"
	"github.com/BrunoReboul/gcptopo/utilities/logging"
	"github.com/BrunoReboul/gcptopo/utilities/mon"
	"golang.org/x/time/rate"
)

// ObjectAttrs describes one listed object
type ObjectAttrs struct {
	Key          string
	LastModified time.Time
}

// ObjectStore is the object storage surface used by the pipeline and the retention manager
type ObjectStore interface {
	VersioningEnabled(ctx context.Context, bucket string) (bool, error)
	List(ctx context.Context, bucket string, prefix string) ([]ObjectAttrs, error)
	Get(ctx context.Context, bucket string, key string) (io.ReadCloser, error)
	DeleteObjects(ctx context.Context, bucket string, keys []string) error
}

// LookupRequest selects the events returned by the point query API
type LookupRequest struct {
	ProjectID string
	Region    string
	ReadOnly  bool
}

// EventQuerier is the point query API, it returns raw LogEntry JSON documents
type EventQuerier interface {
	LookupEvents(ctx context.Context, req LookupRequest) ([][]byte, error)
}

// FallbackReason tells why the bucket path was abandoned
type FallbackReason string

// Fallback reasons
const (
	NoFallback          FallbackReason = ""
	AuthorizationDenied FallbackReason = "AuthorizationDenied"
	BucketNotFound      FallbackReason = "BucketNotFound"
	VersioningDisabled  FallbackReason = "VersioningDisabled"
)

// Path is the source of a batch
type Path string

// Paths
const (
	PathBucket Path = "bucket"
	PathLookup Path = "lookup"
)

// ManifestEntry is a log object following the naming convention
type ManifestEntry struct {
	Key          string
	LastModified time.Time
	Timestamp    time.Time
}

// Batch is the result of collecting one region
type Batch struct {
	Region         string
	Bucket         string
	Path           Path
	FallbackReason FallbackReason
	Events         []*auditlog.Event
	// Manifest lists every conforming object of the prefix, ascending, only on the bucket path
	Manifest      []ManifestEntry
	Fetched       []string
	FailedObjects int
}

// Source collects events for one project
type Source struct {
	Store         ObjectStore
	Querier       EventQuerier
	ProjectID     string
	BucketName    string
	Category      string
	Limiter       *rate.Limiter
	RetryAttempts int
	RetryWait     time.Duration
	Logger        logging.Logger
	Metrics       *mon.Metrics
}
