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
	"fmt"
	"strings"

	"github.com/BrunoReboul/gcptopo/utilities/auditlog"
	"github.com/BrunoReboul/gcptopo/utilities/erm"
	"github.com/BrunoReboul/gcptopo/utilities/topology"
	"google.golang.org/api/iterator"
	assetpb "google.golang.org/genproto/googleapis/cloud/asset/v1"
)

// Enumerate lists the project assets and emits the ones located in one of the regions, or global
func (e *Enumerator) Enumerate(ctx context.Context, projectID string, regions []string, emitter topology.Emitter) (count int, err error) {
	req := &assetpb.ListAssetsRequest{
		Parent:      "projects/" + projectID,
		AssetTypes:  e.AssetTypes,
		ContentType: assetpb.ContentType_RESOURCE,
	}
	it := e.Lister.ListAssets(ctx, req)
	for {
		a, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return count, erm.New(erm.Classify(err), "cai.ListAssets", fmt.Errorf("%s: %w", projectID, err))
		}
		if ctx.Err() != nil {
			return count, erm.New(erm.Canceled, "cai.ListAssets", ctx.Err())
		}
		data := make(map[string]interface{})
		var location string
		if a.Resource != nil {
			if a.Resource.Data != nil {
				data = a.Resource.Data.AsMap()
			}
			location = a.Resource.Location
		}
		if !inRegions(location, regions) {
			continue
		}
		id := a.Name
		if !emitter.MarkSeen(id) {
			continue
		}
		data["assetType"] = a.AssetType
		if location != "" {
			data["location"] = location
		}
		emitter.EmitComponent(id, GetComponentType(a.AssetType), data)
		count++
	}
	return count, nil
}

func inRegions(location string, regions []string) bool {
	// multi-region locations like EU or US are kept with the global ones
	if location == "" || location == "global" || !strings.Contains(location, "-") || len(regions) == 0 {
		return true
	}
	region := auditlog.ZoneToRegion(location)
	for _, r := range regions {
		if strings.EqualFold(r, region) || strings.EqualFold(r, location) {
			return true
		}
	}
	return false
}
