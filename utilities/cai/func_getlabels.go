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

// GetLabels retrieves the labels of a resource data, e.g. owner of resolver contact
func GetLabels(data map[string]interface{}) map[string]string {
	labels := make(map[string]string)
	raw, ok := data["labels"].(map[string]interface{})
	if !ok {
		return labels
	}
	for key, value := range raw {
		if s, ok := value.(string); ok {
			labels[key] = s
		}
	}
	return labels
}
