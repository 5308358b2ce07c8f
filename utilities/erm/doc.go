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
Package erm error management

Provider SDK errors come in many shapes: googleapi HTTP errors, gRPC
status errors, storage sentinel errors, network timeouts. Callers branch
on a Class, never on the error type or message.

# Classes

- Authorization: 401, 403, PermissionDenied, Unauthenticated. Not retried.

- NotFound: 404, NotFound, storage.ErrBucketNotExist, storage.ErrObjectNotExist. Not retried.

- Malformed: content that cannot be decoded. Not retried.

- Transient: 408, 429, 5xx, Unavailable, DeadlineExceeded from the server, network timeouts. Retried with backoff.

- Canceled: the caller context is done. Not retried.

- Other: anything else.
*/
package erm
