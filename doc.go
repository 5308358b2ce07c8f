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

/*
Package gcptopo keeps a cloud topology current from audit log events

# What

Build a snapshot of the Google Cloud resources of a project and the relations between them, then keep it up to date from the admin activity audit log instead of enumerating every resource on every run.

  - Full runs enumerate the project inventory on a long interval
  - Incremental runs replay the audit events delivered to a log bucket since the last full run
  - When the bucket cannot be used, the Cloud Logging query API is used instead

Why

  - Enumerating every resource is slow and costly on large projects
  - Audit events give near real time changes at a fraction of the API calls
*/
package gcptopo
