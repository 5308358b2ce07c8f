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
	"cloud.google.com/go/storage"
)

// defaultDeleteConcurrency bounds the parallel deletions of one batch
const defaultDeleteConcurrency = 16

// Store implements the log source object store on a Cloud Storage client
type Store struct {
	Client            *storage.Client
	DeleteConcurrency int
}

// NewStore wraps a storage client
func NewStore(client *storage.Client) *Store {
	return &Store{Client: client, DeleteConcurrency: defaultDeleteConcurrency}
}
