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

package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"cloud.google.com/go/storage"
	"github.com/BrunoReboul/gcptopo/utilities/logsource"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
)

// VersioningEnabled reports the bucket versioning status
func (s *Store) VersioningEnabled(ctx context.Context, bucket string) (bool, error) {
	attrs, err := s.Client.Bucket(bucket).Attrs(ctx)
	if err != nil {
		return false, fmt.Errorf("bucket.Attrs %s: %w", bucket, err)
	}
	return attrs.VersioningEnabled, nil
}

// List returns the objects under prefix
func (s *Store) List(ctx context.Context, bucket string, prefix string) (objects []logsource.ObjectAttrs, err error) {
	query := &storage.Query{Prefix: prefix}
	if err := query.SetAttrSelection([]string{"Name", "Updated"}); err != nil {
		return nil, fmt.Errorf("query.SetAttrSelection: %w", err)
	}
	it := s.Client.Bucket(bucket).Objects(ctx, query)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bucket.Objects %s/%s: %w", bucket, prefix, err)
		}
		objects = append(objects, logsource.ObjectAttrs{Key: attrs.Name, LastModified: attrs.Updated})
	}
	return objects, nil
}

// Get opens an object as stored, gzip content encoding is not transcoded
func (s *Store) Get(ctx context.Context, bucket string, key string) (io.ReadCloser, error) {
	reader, err := s.Client.Bucket(bucket).Object(key).ReadCompressed(true).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("object.NewReader %s/%s: %w", bucket, key, err)
	}
	return reader, nil
}

// DeleteObjects deletes a batch of objects, already deleted objects are not an error
func (s *Store) DeleteObjects(ctx context.Context, bucket string, keys []string) error {
	concurrency := s.DeleteConcurrency
	if concurrency < 1 {
		concurrency = defaultDeleteConcurrency
	}
	var mu sync.Mutex
	var errs []error
	var g errgroup.Group
	g.SetLimit(concurrency)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			err := s.Client.Bucket(bucket).Object(key).Delete(ctx)
			if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
				mu.Lock()
				errs = append(errs, fmt.Errorf("object.Delete %s/%s: %w", bucket, key, err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
