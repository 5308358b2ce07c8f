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
Package topocheck runs the Google Cloud topology check of one project

Each run rebuilds a topology snapshot. A run is full when forced, when no full run
succeeded yet, or when the full refresh interval elapsed since the last one. Otherwise it is incremental.

Both kinds read the audit events of every region, concurrently, from the exported log
objects or from the Cloud Logging API when the bucket cannot be used, and hand them to
the collector registry. A full run also enumerates the project assets.

Two service checks report the outcome: gcp_topology.execute for the full enumeration,
on full runs only, and gcp_topology.update for the event driven update, on every run.
*/
package topocheck
