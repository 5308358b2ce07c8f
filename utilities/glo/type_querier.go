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
	"context"

	"cloud.google.com/go/logging"
	"cloud.google.com/go/logging/logadmin"
	// registers google.cloud.audit.AuditLog so that proto payloads can be unmarshalled
	_ "google.golang.org/genproto/googleapis/cloud/audit"
)

// EntryIterator yields log entries until iterator.Done
type EntryIterator interface {
	Next() (*logging.Entry, error)
}

// EntryLister is the part of the log admin client used by the querier
type EntryLister interface {
	Entries(ctx context.Context, opts ...logadmin.EntriesOption) EntryIterator
}

// Querier implements the log source event querier on Cloud Logging
type Querier struct {
	Lister     EntryLister
	MaxEntries int
}

type adminLister struct {
	client *logadmin.Client
}

func (l adminLister) Entries(ctx context.Context, opts ...logadmin.EntriesOption) EntryIterator {
	return l.client.Entries(ctx, opts...)
}

// NewQuerier wraps a log admin client
func NewQuerier(client *logadmin.Client) *Querier {
	return &Querier{Lister: adminLister{client: client}, MaxEntries: 1000}
}
