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

package cai

import (
	"context"

	asset "cloud.google.com/go/asset/apiv1"
	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
)

// AssetIterator yields assets until iterator.Done
type AssetIterator interface {
	Next() (*assetpb.Asset, error)
}

// AssetLister is the part of the asset client used by the enumerator
type AssetLister interface {
	ListAssets(ctx context.Context, req *assetpb.ListAssetsRequest) AssetIterator
}

// Enumerator emits one component per asset of the configured types
type Enumerator struct {
	Lister     AssetLister
	AssetTypes []string
}

type clientLister struct {
	client *asset.Client
}

func (l clientLister) ListAssets(ctx context.Context, req *assetpb.ListAssetsRequest) AssetIterator {
	return l.client.ListAssets(ctx, req)
}

// NewEnumerator wraps an asset client
func NewEnumerator(client *asset.Client, assetTypes []string) *Enumerator {
	return &Enumerator{
		Lister:     clientLister{client: client},
		AssetTypes: assetTypes,
	}
}
