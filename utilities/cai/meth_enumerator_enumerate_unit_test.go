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
	"errors"
	"testing"

	"github.com/BrunoReboul/gcptopo/utilities/erm"
	"github.com/BrunoReboul/gcptopo/utilities/topology"
	"google.golang.org/api/iterator"
	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

type fakeIterator struct {
	assets []*assetpb.Asset
	err    error
}

func (f *fakeIterator) Next() (*assetpb.Asset, error) {
	if len(f.assets) == 0 {
		if f.err != nil {
			return nil, f.err
		}
		return nil, iterator.Done
	}
	a := f.assets[0]
	f.assets = f.assets[1:]
	return a, nil
}

type fakeLister struct {
	it  *fakeIterator
	req *assetpb.ListAssetsRequest
}

func (f *fakeLister) ListAssets(ctx context.Context, req *assetpb.ListAssetsRequest) AssetIterator {
	f.req = req
	return f.it
}

func makeAsset(t *testing.T, name, assetType, location string) *assetpb.Asset {
	data, err := structpb.NewStruct(map[string]interface{}{"name": name, "labels": map[string]interface{}{"owner": "ops"}})
	if err != nil {
		t.Fatal(err)
	}
	return &assetpb.Asset{
		Name:      name,
		AssetType: assetType,
		Resource:  &assetpb.Resource{Data: data, Location: location},
	}
}

func TestUnitEnumerate(t *testing.T) {
	lister := &fakeLister{it: &fakeIterator{assets: []*assetpb.Asset{
		makeAsset(t, "//cloudfunctions.googleapis.com/projects/p/locations/europe-west1/functions/f1", "cloudfunctions.googleapis.com/CloudFunction", "europe-west1"),
		makeAsset(t, "//compute.googleapis.com/projects/p/zones/europe-west1-b/instances/vm1", "compute.googleapis.com/Instance", "europe-west1-b"),
		makeAsset(t, "//compute.googleapis.com/projects/p/zones/us-east1-c/instances/vm2", "compute.googleapis.com/Instance", "us-east1-c"),
		makeAsset(t, "//storage.googleapis.com/b1", "storage.googleapis.com/Bucket", "EU"),
		makeAsset(t, "//pubsub.googleapis.com/projects/p/topics/t1", "pubsub.googleapis.com/Topic", ""),
		makeAsset(t, "//pubsub.googleapis.com/projects/p/topics/t1", "pubsub.googleapis.com/Topic", ""),
	}}}
	e := &Enumerator{Lister: lister, AssetTypes: []string{"compute.googleapis.com/Instance"}}
	sink := topology.NewSink("test")
	sink.StartSnapshot()

	count, err := e.Enumerate(context.Background(), "p", []string{"europe-west1"}, sink)
	if err != nil {
		t.Fatalf("Enumerate: %v", err)
	}
	if count != 4 {
		t.Errorf("want 4 components got %d", count)
	}
	if lister.req.Parent != "projects/p" || lister.req.ContentType != assetpb.ContentType_RESOURCE || len(lister.req.AssetTypes) != 1 {
		t.Errorf("unexpected request %v", lister.req)
	}
	snapshot := sink.StopSnapshot()
	if len(snapshot.Components) != 4 {
		t.Fatalf("want 4 components in snapshot got %d", len(snapshot.Components))
	}
	if snapshot.Components[1].Type != "gcp.compute.instance" {
		t.Errorf("want gcp.compute.instance got %s", snapshot.Components[1].Type)
	}
	if GetLabels(snapshot.Components[0].Data)["owner"] != "ops" {
		t.Errorf("labels lost in %v", snapshot.Components[0].Data)
	}
}

func TestUnitEnumerateError(t *testing.T) {
	lister := &fakeLister{it: &fakeIterator{
		assets: []*assetpb.Asset{makeAsset(t, "//pubsub.googleapis.com/projects/p/topics/t1", "pubsub.googleapis.com/Topic", "")},
		err:    status.Error(codes.PermissionDenied, "denied"),
	}}
	e := &Enumerator{Lister: lister}
	sink := topology.NewSink("test")
	sink.StartSnapshot()
	count, err := e.Enumerate(context.Background(), "p", nil, sink)
	if count != 1 {
		t.Errorf("want 1 component before the error got %d", count)
	}
	if !erm.IsAuthorization(err) {
		t.Errorf("want authorization error got %v", err)
	}
	var classified *erm.ClassifiedError
	if !errors.As(err, &classified) {
		t.Errorf("want classified error got %T", err)
	}
}
