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

package auditlog

// GetString walks the payload along path and returns the string found, or ""
func (e *Event) GetString(path ...string) string {
	value, _ := e.Get(path...).(string)
	return value
}

// GetMap walks the payload along path and returns the object found, or nil
func (e *Event) GetMap(path ...string) map[string]interface{} {
	value, _ := e.Get(path...).(map[string]interface{})
	return value
}

// GetSlice walks the payload along path and returns the array found, or nil
func (e *Event) GetSlice(path ...string) []interface{} {
	value, _ := e.Get(path...).([]interface{})
	return value
}

// Get walks the payload along path
func (e *Event) Get(path ...string) interface{} {
	var current interface{} = e.Payload
	for _, key := range path {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		current = m[key]
	}
	return current
}
