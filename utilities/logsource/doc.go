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

// Package logsource collects the audit events of a run
//
// Events are read from the log objects exported to a Cloud Storage bucket.
// When the bucket cannot be used, because access is denied, the bucket does not exist
// or its versioning is disabled, the events are queried from Cloud Logging instead.
// The choice is made once per region and run, the two paths are never mixed.
package logsource
