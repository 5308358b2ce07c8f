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
Package auditlog normalizes Cloud Audit Logs entries

# Input

Cloud Logging LogEntry JSON documents, as exported by a log sink to Cloud
Storage or as re-encoded from the Logging API. Objects hold a sequence of
entries, newline separated or concatenated, optionally gzip compressed.

# Output

One Event per admin activity entry: service name, method name, UTC
timestamp and the decoded protoPayload.

Entries that are valid JSON but carry no audit payload are skipped.
Content that is not valid JSON, or that is truncated, is Malformed and
the whole object is rejected.
*/
package auditlog
