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

package logsourcetest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/gcptopo/utilities/logsource"
	"github.com/google/uuid"
)

var (
	errBucketNotExist = storage.ErrBucketNotExist
	errObjectNotExist = storage.ErrObjectNotExist
)

// Store is an in memory logsource.ObjectStore recording the calls it receives
type Store struct {
	mu            sync.Mutex
	Buckets       map[string]map[string][]byte
	Versioning    bool
	VersioningErr error
	ListErr       error
	GetErr        map[string]error
	DeleteErr     error
	Calls         []string
	Gets          []string
	Deletes       [][]string
}

// NewStore returns a store holding one versioned bucket
func NewStore(bucket string) *Store {
	return &Store{
		Buckets:    map[string]map[string][]byte{bucket: {}},
		Versioning: true,
		GetErr:     make(map[string]error),
	}
}

// Put adds an object
func (s *Store) Put(bucket string, key string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Buckets[bucket] == nil {
		s.Buckets[bucket] = make(map[string][]byte)
	}
	s.Buckets[bucket][key] = body
}

// CallCount returns how many times op was called
func (s *Store) CallCount(op string) (count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, call := range s.Calls {
		if call == op {
			count++
		}
	}
	return count
}

func (s *Store) record(op string) {
	s.Calls = append(s.Calls, op)
}

// VersioningEnabled implements logsource.ObjectStore
func (s *Store) VersioningEnabled(ctx context.Context, bucket string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("VersioningEnabled")
	if s.VersioningErr != nil {
		return false, s.VersioningErr
	}
	if _, ok := s.Buckets[bucket]; !ok {
		return false, fmt.Errorf("bucket %s: %w", bucket, errBucketNotExist)
	}
	return s.Versioning, nil
}

// List implements logsource.ObjectStore
func (s *Store) List(ctx context.Context, bucket string, prefix string) (objects []logsource.ObjectAttrs, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("List")
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	b, ok := s.Buckets[bucket]
	if !ok {
		return nil, fmt.Errorf("bucket %s: %w", bucket, errBucketNotExist)
	}
	for key := range b {
		if strings.HasPrefix(key, prefix) {
			objects = append(objects, logsource.ObjectAttrs{Key: key, LastModified: time.Unix(0, 0).UTC()})
		}
	}
	// listing order is lexical, not chronological
	sort.Slice(objects, func(i, j int) bool { return objects[i].Key > objects[j].Key })
	return objects, nil
}

// Get implements logsource.ObjectStore
func (s *Store) Get(ctx context.Context, bucket string, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Get")
	s.Gets = append(s.Gets, key)
	if err := s.GetErr[key]; err != nil {
		return nil, err
	}
	body, ok := s.Buckets[bucket][key]
	if !ok {
		return nil, fmt.Errorf("object %s: %w", key, errObjectNotExist)
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

// DeleteObjects implements logsource.ObjectStore
func (s *Store) DeleteObjects(ctx context.Context, bucket string, keys []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("DeleteObjects")
	s.Deletes = append(s.Deletes, append([]string(nil), keys...))
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	for _, key := range keys {
		delete(s.Buckets[bucket], key)
	}
	return nil
}

// Key returns a conforming object name for the admin activity log of a region
func Key(projectID string, region string, timestamp time.Time, ext string) string {
	timestamp = timestamp.UTC()
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(region+timestamp.String()))
	return fmt.Sprintf("%s%s/topo-logs-stream-1-%s-%s%s",
		logsource.Prefix(projectID, logsource.DefaultCategory, region),
		timestamp.Format("2006/01/02/15"),
		timestamp.Format("2006-01-02-15-04-05"),
		id.String(),
		ext)
}
