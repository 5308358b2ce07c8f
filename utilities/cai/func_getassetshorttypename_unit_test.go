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
	"testing"
)

func TestUnitGetAssetShortTypeName(t *testing.T) {
	var tests = []struct {
		name      string
		assetType string
		want      string
	}{
		{"k8srbacRole", "rbac.authorization.k8s.io/Role", "k8srbac-Role"},
		{"k8sPod", "k8s.io/Pod", "k8s-Pod"},
		{"cloudFunction", "cloudfunctions.googleapis.com/CloudFunction", "cloudfunctions-CloudFunction"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := GetAssetShortTypeName(test.assetType)
			if test.want != got {
				t.Errorf("Want %s got %s", test.want, got)
			}
		})
	}
}

func TestUnitGetComponentType(t *testing.T) {
	var tests = []struct {
		assetType string
		want      string
	}{
		{"cloudfunctions.googleapis.com/CloudFunction", "gcp.cloudfunctions.cloudfunction"},
		{"compute.googleapis.com/Instance", "gcp.compute.instance"},
		{"storage.googleapis.com/Bucket", "gcp.storage.bucket"},
		{"networking.k8s.io/Ingress", "gcp.k8snetworking.ingress"},
	}
	for _, test := range tests {
		t.Run(test.assetType, func(t *testing.T) {
			if got := GetComponentType(test.assetType); got != test.want {
				t.Errorf("Want %s got %s", test.want, got)
			}
		})
	}
}

func TestUnitGetFullResourceName(t *testing.T) {
	var tests = []struct {
		name         string
		serviceName  string
		resourceName string
		want         string
	}{
		{"function", "cloudfunctions.googleapis.com", "projects/p/locations/europe-west1/functions/f", "//cloudfunctions.googleapis.com/projects/p/locations/europe-west1/functions/f"},
		{"bucket", "storage.googleapis.com", "projects/_/buckets/b1", "//storage.googleapis.com/b1"},
		{"alreadyFull", "compute.googleapis.com", "//compute.googleapis.com/projects/p/global/networks/default", "//compute.googleapis.com/projects/p/global/networks/default"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := GetFullResourceName(test.serviceName, test.resourceName); got != test.want {
				t.Errorf("Want %s got %s", test.want, got)
			}
		})
	}
}
